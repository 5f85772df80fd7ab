package environment

import (
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	// EnvVar is the process environment variable selecting the target.
	EnvVar = "ENVIRONMENT"
	// DefaultName is used when EnvVar is unset or empty.
	DefaultName = "prod-internal"
)

const (
	ModeInline = "inline"
	ModeFile   = "file"
)

// Config is the resolved target of a test run.
type Config struct {
	BaseURL     string `json:"baseUrl"`
	Description string `json:"description"`
}

// Resolver maps an environment name to exactly one Config.
type Resolver interface {
	Resolve(name string) (Config, error)
	Names() []string
}

// URL joins the base URL and an endpoint path.
func (c Config) URL(path string) string {
	return c.BaseURL + path
}

func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.BaseURL,
			validation.Required,
			is.URL,
			validation.By(validateBaseURL),
		),
		validation.Field(&c.Description, validation.Required),
	)
}

func validateBaseURL(value interface{}) error {
	baseURL, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}

	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return validation.NewError("validation_invalid_url", "must be a valid URL")
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return validation.NewError("validation_invalid_scheme", "URL must use http or https scheme")
	}

	if parsedURL.Host == "" {
		return validation.NewError("validation_missing_host", "URL must have a host")
	}

	return nil
}
