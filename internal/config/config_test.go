package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	assert.Equal(t, "gym_api", cfg.Database.Name)
	assert.Equal(t, "https://generativelanguage.googleapis.com/v1beta", cfg.Gemini.APIURL)
	assert.Equal(t, "gemini-1.5-flash", cfg.Gemini.Model)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-secret")
	t.Setenv("GEMINI_MODEL", "gemini-1.5-pro")
	t.Setenv("SERVER_ADDRESS", ":9090")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-1.5-pro", cfg.Gemini.Model)
	assert.Equal(t, ":9090", cfg.Server.Address)
}

func TestGeminiConfig_Validate(t *testing.T) {
	valid := GeminiConfig{
		APIURL: "https://generativelanguage.googleapis.com/v1beta",
		APIKey: "secret",
		Model:  "gemini-1.5-flash",
	}
	assert.NoError(t, valid.Validate())

	missingURL := valid
	missingURL.APIURL = ""
	assert.Error(t, missingURL.Validate())

	missingKey := valid
	missingKey.APIKey = ""
	assert.Error(t, missingKey.Validate())

	missingModel := valid
	missingModel.Model = ""
	assert.Error(t, missingModel.Validate())
}
