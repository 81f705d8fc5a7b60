// Package config reads the tracker connection settings from the environment.
package config

import (
	"strings"

	"github.com/opensdd/feature-clone/core"
	"github.com/spf13/viper"
)

// DefaultURL is the tracker used when JIRA_URL is not set.
const DefaultURL = "https://issues.redhat.com"

// MissingTokenMessage is shown when JIRA_TOKEN is absent.
const MissingTokenMessage = "Set JIRA_TOKEN environment variable to your JIRA personal access token"

const (
	envPrefix = "JIRA"

	varURL   = "url"
	varToken = "token"
)

// Config holds the tracker connection settings for one run.
type Config struct {
	URL   string
	Token string
}

// Load reads JIRA_URL and JIRA_TOKEN through a fresh viper instance so
// repeated loads (tests) never share state.
func Load() Config {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault(varURL, DefaultURL)

	return Config{
		URL:   strings.TrimSpace(v.GetString(varURL)),
		Token: strings.TrimSpace(v.GetString(varToken)),
	}
}

// Validate fails with a core.ConfigurationError when the run cannot talk to the tracker.
func (c Config) Validate() error {
	if c.Token == "" {
		return core.NewConfigurationError(MissingTokenMessage)
	}
	if c.URL == "" {
		return core.NewConfigurationError("JIRA_URL cannot be empty")
	}
	return nil
}
