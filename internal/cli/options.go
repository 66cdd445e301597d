package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/aretw0/sortscope/internal/config"
)

// RunOptions contains the per-invocation settings of the run command that
// are not part of the persistent configuration.
type RunOptions struct {
	Values   string
	Headless bool
	Debug    bool
	// Interactive enables keyboard controls on stdin during playback.
	Interactive bool
	NoBanner    bool
}

// LoadConfig reads the config file and environment, applies every flag the
// user set explicitly, and validates the result.
func LoadConfig(path string, flags *pflag.FlagSet) (config.Config, error) {
	cfg, err := config.Load(path, nil)
	if err != nil {
		return cfg, err
	}
	if err := ApplyFlags(&cfg, flags); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// ApplyFlags overlays flags that were changed on the command line.
// Flags that are not defined on the set are ignored.
func ApplyFlags(cfg *config.Config, flags *pflag.FlagSet) error {
	if flags == nil {
		return nil
	}
	var err error
	flags.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "algorithm":
			cfg.Algorithm, err = flags.GetString(f.Name)
		case "size":
			cfg.Size, err = flags.GetInt(f.Name)
		case "speed":
			cfg.Speed, err = flags.GetDuration(f.Name)
		case "seed":
			cfg.Seed, err = flags.GetUint64(f.Name)
		case "min":
			cfg.MinValue, err = flags.GetInt(f.Name)
		case "max":
			cfg.MaxValue, err = flags.GetInt(f.Name)
		case "json":
			var on bool
			if on, err = flags.GetBool(f.Name); on {
				cfg.Format = config.FormatJSON
			}
		case "compact":
			cfg.Compact, err = flags.GetBool(f.Name)
		case "color":
			cfg.Color, err = flags.GetString(f.Name)
		case "log-level":
			cfg.LogLevel, err = flags.GetString(f.Name)
		case "addr":
			cfg.Addr, err = flags.GetString(f.Name)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid flag: %w", err)
	}
	return nil
}
