// Package config loads workspace settings from YAML.
//
// Every field has a default, so an empty file (or no file) is valid. Values
// are validated after decoding; the first violation is reported with the
// YAML key it came from.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Defaults.
const (
	DefaultTickInterval = 500 * time.Millisecond
	DefaultHitRadius    = 20.0
	DefaultStrategy     = "heap"
	DefaultLogLevel     = "info"
)

// Config holds workspace settings.
type Config struct {
	// TickInterval is the replay cadence.
	TickInterval time.Duration `yaml:"tick_interval" validate:"gte=10ms,lte=10s"`

	// HitRadius is the distance within which a click selects a node instead
	// of creating one.
	HitRadius float64 `yaml:"hit_radius" validate:"gt=0"`

	// Directed is the initial directedness of a new graph.
	Directed bool `yaml:"directed"`

	// Strategy names the shortest-path extraction strategy.
	Strategy string `yaml:"strategy" validate:"oneof=heap linear"`

	// LogLevel is a zerolog level name.
	LogLevel string `yaml:"log_level" validate:"oneof=trace debug info warn error disabled"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		TickInterval: DefaultTickInterval,
		HitRadius:    DefaultHitRadius,
		Directed:     true,
		Strategy:     DefaultStrategy,
		LogLevel:     DefaultLogLevel,
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%w: %s=%v violates %s", ErrInvalid, fe.Field(), fe.Value(), constraint(fe))
	}

	return fmt.Errorf("%w: %v", ErrInvalid, err)
}

// Level returns the zerolog level for LogLevel.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}

	return lvl
}

func constraint(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}

	return fe.Tag() + "=" + fe.Param()
}
