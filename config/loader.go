package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	defaultPort            = 8090
	defaultAlertsURL       = "https://bustime.ttc.ca/gtfsrt/alerts"
	defaultFeedURLTemplate = "https://weather.gc.ca/rss/battleboard/%s_e.xml"
	defaultRegion          = "on61"
	defaultUserAgent       = "dashboard-feeds/1.0 (github.com/gnowak/dashboard)"
	defaultTimeoutMS       = 10000
)

// Default returns the configuration used when no config file is present:
// the TTC GTFS-RT alerts feed and the Environment Canada Toronto battleboard.
func Default() AppConfig {
	cfg := AppConfig{}
	applyDefaults(&cfg)
	return cfg
}

// Load reads and validates the application configuration. When path is empty
// it looks for config.yml in the working directory and falls back to
// Default() if none exists; an explicit path that cannot be read is an error.
func Load(path string) (AppConfig, error) {
	paths := []string{path}
	if path == "" {
		paths = []string{"config.yml", "./config/config.yml"}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		if path != "" {
			return AppConfig{}, err
		}
		return Default(), nil
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	applyDefaults(&cfg)
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPort
	}
	if cfg.Transit.AlertsURL == "" {
		cfg.Transit.AlertsURL = defaultAlertsURL
	}
	if cfg.Transit.UserAgent == "" {
		cfg.Transit.UserAgent = defaultUserAgent
	}
	if cfg.Transit.TimeoutMS == 0 {
		cfg.Transit.TimeoutMS = defaultTimeoutMS
	}
	if cfg.Weather.FeedURLTemplate == "" {
		cfg.Weather.FeedURLTemplate = defaultFeedURLTemplate
	}
	if cfg.Weather.DefaultRegion == "" {
		cfg.Weather.DefaultRegion = defaultRegion
	}
	if cfg.Weather.UserAgent == "" {
		cfg.Weather.UserAgent = defaultUserAgent
	}
	if cfg.Weather.TimeoutMS == 0 {
		cfg.Weather.TimeoutMS = defaultTimeoutMS
	}
}
