package config

import (
	"testing"

	"github.com/opensdd/feature-clone/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JIRA_URL", "")
	t.Setenv("JIRA_TOKEN", "")

	cfg := Load()
	assert.Equal(t, DefaultURL, cfg.URL)
	assert.Empty(t, cfg.Token)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("JIRA_URL", "https://jira.example.com")
	t.Setenv("JIRA_TOKEN", " secret ")

	cfg := Load()
	assert.Equal(t, "https://jira.example.com", cfg.URL)
	assert.Equal(t, "secret", cfg.Token)
	require.NoError(t, cfg.Validate())
}

func TestValidate_MissingToken(t *testing.T) {
	t.Parallel()
	err := Config{URL: DefaultURL}.Validate()
	require.Error(t, err)
	assert.True(t, core.IsConfigurationError(err))
	assert.Equal(t, MissingTokenMessage, err.Error())
}

func TestValidate_EmptyURL(t *testing.T) {
	t.Parallel()
	err := Config{Token: "t"}.Validate()
	require.Error(t, err)
	assert.True(t, core.IsConfigurationError(err))
}
