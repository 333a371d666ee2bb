package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/xconv/format/text"
	ftime "github.com/viant/xconv/format/time"
	"github.com/viant/xconv/internal/logger"
)

func TestLoad(t *testing.T) {
	cfg, err := Load()
	require.Nil(t, err)
	assert.Equal(t, "UTC", cfg.Location)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Empty(t, cfg.TrueValues)

	t.Setenv("XCONV_TRUE_VALUES", "sure,yep")
	t.Setenv("XCONV_CACHE_CAPACITY", "64")
	t.Setenv("XCONV_LOG_LEVEL", "debug")
	t.Setenv("XCONV_LOCATION", "Europe/Warsaw")
	cfg, err = Load()
	require.Nil(t, err)
	assert.Equal(t, []string{"sure", "yep"}, cfg.TrueValues)
	assert.Equal(t, 64, cfg.CacheCapacity)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "Europe/Warsaw", cfg.Location)
}

func TestConfig_Apply(t *testing.T) {
	defer func() {
		_ = Default().Apply()
	}()
	cfg := Default()
	cfg.TrueValues = []string{"sure"}
	cfg.DateLayouts = []string{"02.01.2006"}
	require.Nil(t, cfg.Apply())
	assert.True(t, text.Truthy("Sure"))
	assert.False(t, text.Truthy("yes"))
	parsed, err := ftime.Parse("01.02.2023")
	require.Nil(t, err)
	assert.Equal(t, time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC), parsed)
	assert.NotNil(t, logger.Default())

	cfg.Location = "Nowhere/Invalid"
	assert.NotNil(t, cfg.Apply())
}
