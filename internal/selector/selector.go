package selector

import (
	"errors"
	"log/slog"
	"math"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	ModeWeightedRandom     = "weighted-random"
	ModeWeightedRoundRobin = "weighted-round-robin"
)

var (
	ErrNoEndpoints   = errors.New("no endpoints to select from")
	ErrInvalidWeight = errors.New("endpoint weight must be a positive number")
)

// Endpoint is a request path relative to the environment base URL.
type Endpoint struct {
	URL    string  `mapstructure:"url" json:"url"`
	Weight float64 `mapstructure:"weight" json:"weight"`
}

type Selector interface {
	Select(endpoints []Endpoint) (Endpoint, error)
}

// New returns the selector for mode, falling back to weighted random.
func New(mode string, logger *slog.Logger) Selector {
	switch mode {
	case ModeWeightedRandom, "":
		return NewWeightedRandom(nil)
	case ModeWeightedRoundRobin:
		return NewWeightedRoundRobin()
	default:
		logger.Warn("Unknown selector mode, defaulting to weighted-random", slog.String("requested", mode))
		return NewWeightedRandom(nil)
	}
}

// TotalWeight sums the weights, failing on an empty list, a non-positive
// weight or a sum that overflows.
func TotalWeight(endpoints []Endpoint) (float64, error) {
	if len(endpoints) == 0 {
		return 0, ErrNoEndpoints
	}

	var total float64
	for _, ep := range endpoints {
		if !(ep.Weight > 0) || math.IsInf(ep.Weight, 0) {
			return 0, ErrInvalidWeight
		}
		total += ep.Weight
	}

	if math.IsInf(total, 0) {
		return 0, ErrInvalidWeight
	}

	return total, nil
}

// Pick walks the list subtracting each weight from draw and returns the first
// endpoint where the remainder reaches zero or below. draw is expected in
// [0, TotalWeight). A draw that never reaches zero selects the first endpoint.
func Pick(endpoints []Endpoint, draw float64) (Endpoint, error) {
	if _, err := TotalWeight(endpoints); err != nil {
		return Endpoint{}, err
	}

	remaining := draw
	for _, ep := range endpoints {
		remaining -= ep.Weight
		if remaining <= 0 {
			return ep, nil
		}
	}

	return endpoints[0], nil
}

func (e Endpoint) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.URL,
			validation.Required,
			is.RequestURI,
			validation.By(validatePath),
		),
		validation.Field(&e.Weight,
			validation.Required,
			validation.Min(0.0).Exclusive(),
		),
	)
}

// Validate checks a scenario's endpoint list.
func Validate(endpoints []Endpoint) error {
	return validation.Validate(endpoints,
		validation.Required,
		validation.Length(1, 0),
	)
}

func validatePath(value interface{}) error {
	path, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}

	if !strings.HasPrefix(path, "/") {
		return validation.NewError("validation_invalid_path", "must be a path starting with /")
	}

	return nil
}
