// Package config loads engine and CLI settings from defaults, an optional
// YAML file and LVDESIGN_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/lvdesign/design"
	"github.com/katalvlaran/lvdesign/dsm"
	"github.com/katalvlaran/lvdesign/logging"
	"github.com/katalvlaran/lvdesign/requirements"
)

// EnvPrefix prefixes every environment override, e.g. LVDESIGN_LOG_LEVEL.
const EnvPrefix = "LVDESIGN"

// ErrInvalid is returned when a loaded setting is out of range.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds every setting of the engine and the CLI.
type Config struct {
	Catalog     string         `mapstructure:"catalog"`   // part catalog (YAML or JSON)
	Palette     string         `mapstructure:"palette"`   // valid type palette (XML)
	Tolerance   float64        `mapstructure:"tolerance"` // positioning tolerance, LDU
	Alpha       float64        `mapstructure:"alpha"`
	Beta        float64        `mapstructure:"beta"`
	Gamma       float64        `mapstructure:"gamma"` // 0 ⇒ 1/n
	Workers     int            `mapstructure:"workers"`
	Log         logging.Config `mapstructure:"log"`
	MetricsFile string         `mapstructure:"metrics_file"` // Prometheus text output, "" disables
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("catalog", "")
	v.SetDefault("palette", "")
	v.SetDefault("tolerance", design.DefaultTolerance)
	v.SetDefault("alpha", dsm.DefaultAlpha)
	v.SetDefault("beta", dsm.DefaultBeta)
	v.SetDefault("gamma", 0.0)
	v.SetDefault("workers", 4)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output_path", "")
	v.SetDefault("log.development", false)
	v.SetDefault("metrics_file", "")
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads path (if not empty) over the defaults and decodes the result.
func Load(path string) (Config, error) {
	v := New()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("Load: %w", err)
		}
	}

	return Decode(v)
}

// Decode unmarshals and validates v.
func Decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("Decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks ranges.
func (c Config) Validate() error {
	switch {
	case !finite(c.Tolerance) || c.Tolerance < 0:
		return fmt.Errorf("%w: tolerance %v", ErrInvalid, c.Tolerance)
	case !finite(c.Alpha) || !finite(c.Beta) || !finite(c.Gamma):
		return fmt.Errorf("%w: complexity weights must be finite", ErrInvalid)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers %d", ErrInvalid, c.Workers)
	}

	return nil
}

// ComplexityOptions maps the weights to dsm options.
func (c Config) ComplexityOptions() []dsm.Option {
	opts := []dsm.Option{dsm.WithAlpha(c.Alpha), dsm.WithBeta(c.Beta)}
	if c.Gamma != 0 {
		opts = append(opts, dsm.WithGamma(c.Gamma))
	}

	return opts
}

// RequirementOptions maps the tolerance to requirements options.
func (c Config) RequirementOptions() []requirements.Option {
	return []requirements.Option{requirements.WithTolerance(c.Tolerance)}
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
