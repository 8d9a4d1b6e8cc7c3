package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, "_08", config.Output.Suffix)
	assert.Equal(t, "    ", config.Output.Indent)
	assert.True(t, config.Convert.StrictValidation)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Setenv("CAMT_LOG_LEVEL", "debug")
	t.Setenv("CAMT_OUTPUT_SUFFIX", "_converted")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "_converted", config.Output.Suffix)
}

func TestValidateConfig(t *testing.T) {
	var config Config
	config.Log.Level = "verbose"
	config.Log.Format = "text"
	config.Output.Suffix = "_08"
	assert.Error(t, validateConfig(&config))

	config.Log.Level = "info"
	config.Log.Format = "xml"
	assert.Error(t, validateConfig(&config))

	config.Log.Format = "json"
	config.Output.Suffix = ""
	assert.Error(t, validateConfig(&config))

	config.Output.Suffix = "_08"
	assert.NoError(t, validateConfig(&config))
}

func TestGetEnv(t *testing.T) {
	t.Setenv("CAMT_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("CAMT_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("CAMT_TEST_MISSING", "fallback"))
}
