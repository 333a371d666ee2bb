package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/viant/xconv/format/text"
	ftime "github.com/viant/xconv/format/time"
	"github.com/viant/xconv/internal/logger"
)

// EnvPrefix prefixes environment variables overriding configuration
const EnvPrefix = "XCONV_"

// Config represents conversion toolkit configuration
type Config struct {
	// TrueValues lists texts evaluated as true, empty uses defaults
	TrueValues []string `koanf:"true_values"`
	// DateLayouts lists layouts tried by date text parser, empty uses defaults
	DateLayouts []string `koanf:"date_layouts"`
	// Location is IANA location name used for date texts without zone
	Location      string `koanf:"location"`
	CacheCapacity int    `koanf:"cache_capacity"`
	LogLevel      string `koanf:"log_level"`
	LogJSON       bool   `koanf:"log_json"`
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Location: "UTC",
		LogLevel: string(logger.WarnLevel),
	}
}

// Load loads defaults overridden by XCONV_* environment variables
func Load() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load default configuration: %w", err)
	}
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key string, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}
	ret := &Config{}
	if err := k.UnmarshalWithConf("", ret, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           ret,
			TagName:          "koanf",
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	return ret, nil
}

// LoadLocation returns configured location, UTC if not set
func (c *Config) LoadLocation() (*time.Location, error) {
	if c.Location == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Location)
	if err != nil {
		return nil, fmt.Errorf("invalid location %q: %w", c.Location, err)
	}
	return loc, nil
}

// Logger creates logger for configured level and format
func (c *Config) Logger() logger.Logger {
	return logger.New(&logger.Config{Level: logger.LogLevel(c.LogLevel), JSON: c.LogJSON})
}

// Apply applies configuration to process-wide truthy vocabulary, date parser and default logger
func (c *Config) Apply() error {
	loc, err := c.LoadLocation()
	if err != nil {
		return err
	}
	text.SetTrueValues(c.TrueValues...)
	ftime.SetLayouts(c.DateLayouts...)
	ftime.SetLocation(loc)
	logger.SetDefault(c.Logger())
	return nil
}
