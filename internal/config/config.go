// Package config loads sortscope settings from defaults, a YAML or JSON file
// and SORTSCOPE_* environment variables. Command-line flags are applied on
// top by the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/sortscope/pkg/domain"
	"github.com/aretw0/sortscope/pkg/generator"
	"github.com/aretw0/sortscope/pkg/runner"
)

// DefaultFile is read when no explicit path is given. It may be absent.
const DefaultFile = "sortscope.yaml"

// EnvPrefix prefixes every environment override, e.g. SORTSCOPE_SPEED.
const EnvPrefix = "SORTSCOPE_"

// Bounds of a generated array.
const (
	MinSize     = 10
	MaxSize     = generator.MaxElements
	DefaultSize = 50
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds every tunable setting.
type Config struct {
	Algorithm string        `mapstructure:"algorithm" yaml:"algorithm" json:"algorithm"`
	Size      int           `mapstructure:"size" yaml:"size" json:"size"`
	Speed     time.Duration `mapstructure:"speed" yaml:"speed" json:"speed"`
	Seed      uint64        `mapstructure:"seed" yaml:"seed" json:"seed"`
	MinValue  int           `mapstructure:"min_value" yaml:"min_value" json:"min_value"`
	MaxValue  int           `mapstructure:"max_value" yaml:"max_value" json:"max_value"`
	Format    string        `mapstructure:"format" yaml:"format" json:"format"`
	Compact   bool          `mapstructure:"compact" yaml:"compact" json:"compact"`
	Color     string        `mapstructure:"color" yaml:"color" json:"color"`
	LogLevel  string        `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Addr      string        `mapstructure:"addr" yaml:"addr" json:"addr"`
}

// Defaults returns the settings used when nothing else is configured.
func Defaults() Config {
	return Config{
		Algorithm: string(domain.DefaultAlgorithm),
		Size:      DefaultSize,
		Speed:     runner.DefaultInterval,
		MinValue:  generator.DefaultMinValue,
		MaxValue:  generator.DefaultMaxValue,
		Format:    FormatText,
		Color:     ColorAuto,
		LogLevel:  "info",
		Addr:      ":8080",
	}
}

// LookupEnv matches os.LookupEnv and can be replaced in tests.
type LookupEnv func(key string) (string, bool)

// Load layers the file at path and the environment over Defaults.
// An empty path reads DefaultFile if it exists; an explicit path must exist.
// Load does not validate; call Validate once flags are applied.
func Load(path string, lookup LookupEnv) (Config, error) {
	cfg := Defaults()

	raw, err := readFile(path)
	if err != nil {
		return cfg, err
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}
	for _, key := range keys() {
		if v, ok := lookup(EnvPrefix + strings.ToUpper(key)); ok {
			raw[key] = v
		}
	}

	if err := decode(raw, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func readFile(path string) (map[string]any, error) {
	raw := map[string]any{}
	optional := path == ""
	if optional {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return raw, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		err = json.Unmarshal(data, &raw)
	} else {
		err = yaml.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return raw, nil
}

func decode(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			millisecondsHook,
			mapstructure.StringToTimeDurationHookFunc(),
		),
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

var durationType = reflect.TypeOf(time.Duration(0))

// millisecondsHook reads bare numbers as milliseconds for duration fields.
func millisecondsHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != durationType {
		return data, nil
	}
	switch v := data.(type) {
	case int:
		return time.Duration(v) * time.Millisecond, nil
	case int64:
		return time.Duration(v) * time.Millisecond, nil
	case uint64:
		return time.Duration(v) * time.Millisecond, nil
	case float64:
		return time.Duration(v * float64(time.Millisecond)), nil
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return time.Duration(n) * time.Millisecond, nil
		}
	}
	return data, nil
}

// keys lists the mapstructure names of Config fields.
func keys() []string {
	t := reflect.TypeOf(Config{})
	out := make([]string, 0, t.NumField())
	for i := range t.NumField() {
		out = append(out, t.Field(i).Tag.Get("mapstructure"))
	}
	return out
}

// Validate reports the first setting out of range.
func (c Config) Validate() error {
	switch {
	case c.Size < MinSize || c.Size > MaxSize:
		return fmt.Errorf("size must be between %d and %d, got %d", MinSize, MaxSize, c.Size)
	case c.Speed < runner.MinInterval || c.Speed > runner.MaxInterval:
		return fmt.Errorf("speed must be between %s and %s, got %s", runner.MinInterval, runner.MaxInterval, c.Speed)
	case c.MinValue < generator.DefaultLimits.MinValue || c.MaxValue > generator.DefaultLimits.MaxValue:
		return fmt.Errorf("min_value and max_value must lie within [%d, %d], got [%d, %d]",
			generator.DefaultLimits.MinValue, generator.DefaultLimits.MaxValue, c.MinValue, c.MaxValue)
	case c.MinValue >= c.MaxValue:
		return fmt.Errorf("min_value (%d) must be below max_value (%d)", c.MinValue, c.MaxValue)
	case c.Format != FormatText && c.Format != FormatJSON:
		return fmt.Errorf("unknown format %q (want %s or %s)", c.Format, FormatText, FormatJSON)
	case c.Color != ColorAuto && c.Color != ColorAlways && c.Color != ColorNever:
		return fmt.Errorf("unknown color mode %q", c.Color)
	}
	return nil
}
