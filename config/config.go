package config

import (
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"

	"github.com/sportdeets/load-tests/internal/environment"
	"github.com/sportdeets/load-tests/internal/selector"
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

type ResolverConfig struct {
	Mode string `mapstructure:"mode"`
	Dir  string `mapstructure:"dir"`
}

type SelectorConfig struct {
	Mode string `mapstructure:"mode"`
}

type ProbeConfig struct {
	Timeout string `mapstructure:"timeout"`
}

type ResultsConfig struct {
	Dir string `mapstructure:"dir"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type Config struct {
	Environment string         `mapstructure:"environment"`
	Resolver    ResolverConfig `mapstructure:"resolver"`
	Selector    SelectorConfig `mapstructure:"selector"`
	Probe       ProbeConfig    `mapstructure:"probe"`
	Results     ResultsConfig  `mapstructure:"results"`
	Logging     LoggingConfig  `mapstructure:"logging"`
}

// Load reads config.yaml from ./config or the working directory when present,
// then applies environment variables (resolver.mode -> RESOLVER_MODE).
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("environment", environment.DefaultName)
	v.SetDefault("resolver.mode", environment.ModeInline)
	v.SetDefault("resolver.dir", "./environments")
	v.SetDefault("selector.mode", selector.ModeWeightedRandom)
	v.SetDefault("probe.timeout", "10s")
	v.SetDefault("results.dir", "./results")
	v.SetDefault("logging.level", LogLevelInfo)
	v.SetDefault("logging.format", LogFormatText)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := v.BindEnv("environment", environment.EnvVar); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Error("failed to read config file", slog.String("error", err.Error()))
			return nil, err
		}
		slog.Debug("config file not found, using defaults and environment variables")
	} else {
		slog.Debug("loaded config file", slog.String("file", v.ConfigFileUsed()))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		slog.Error("failed to unmarshal config", slog.String("error", err.Error()))
		return nil, err
	}

	// an exported but empty ENVIRONMENT still selects the default
	if cfg.Environment == "" {
		cfg.Environment = environment.DefaultName
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		return nil, err
	}

	return &cfg, nil
}

// ProbeTimeout is the parsed probe.timeout. Validate guarantees it parses.
func (c *Config) ProbeTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Probe.Timeout)
	return d
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Environment, validation.Required),
		validation.Field(&c.Resolver,
			validation.Required,
			validation.By(func(value interface{}) error {
				rc, ok := value.(ResolverConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a ResolverConfig")
				}
				return validation.ValidateStruct(&rc,
					validation.Field(&rc.Mode,
						validation.Required,
						validation.In(environment.ModeInline, environment.ModeFile),
					),
					validation.Field(&rc.Dir,
						validation.When(rc.Mode == environment.ModeFile, validation.Required),
					),
				)
			}),
		),
		validation.Field(&c.Selector,
			validation.Required,
			validation.By(func(value interface{}) error {
				sc, ok := value.(SelectorConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a SelectorConfig")
				}
				return validation.ValidateStruct(&sc,
					validation.Field(&sc.Mode,
						validation.Required,
						validation.In(selector.ModeWeightedRandom, selector.ModeWeightedRoundRobin),
					),
				)
			}),
		),
		validation.Field(&c.Probe,
			validation.Required,
			validation.By(func(value interface{}) error {
				pc, ok := value.(ProbeConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a ProbeConfig")
				}
				return validation.ValidateStruct(&pc,
					validation.Field(&pc.Timeout,
						validation.Required,
						validation.By(validateDuration),
					),
				)
			}),
		),
		validation.Field(&c.Results,
			validation.Required,
			validation.By(func(value interface{}) error {
				rc, ok := value.(ResultsConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a ResultsConfig")
				}
				return validation.ValidateStruct(&rc,
					validation.Field(&rc.Dir, validation.Required),
				)
			}),
		),
		validation.Field(&c.Logging,
			validation.Required,
			validation.By(func(value interface{}) error {
				lc, ok := value.(LoggingConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a LoggingConfig")
				}
				return validation.ValidateStruct(&lc,
					validation.Field(&lc.Level,
						validation.Required,
						validation.In(LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError),
					),
					validation.Field(&lc.Format,
						validation.Required,
						validation.In(LogFormatText, LogFormatJSON),
					),
				)
			}),
		),
	)
}

func validateDuration(value interface{}) error {
	durationStr, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}

	d, err := time.ParseDuration(durationStr)
	if err != nil {
		return validation.NewError("validation_invalid_duration", "must be a valid duration (e.g., 2s, 5m, 1h)")
	}

	if d <= 0 {
		return validation.NewError("validation_invalid_duration", "must be positive")
	}

	return nil
}
