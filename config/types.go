package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// TransitConfig contains the GTFS-RT service-alerts feed configuration
type TransitConfig struct {
	AlertsURL string `yaml:"alertsURL" validate:"omitempty,url"`
	UserAgent string `yaml:"userAgent"`
	TimeoutMS int    `yaml:"timeoutMS" validate:"gte=0"`
}

// WeatherConfig contains the weather battleboard feed configuration
type WeatherConfig struct {
	// FeedURLTemplate must contain a single %s, replaced with the region code.
	FeedURLTemplate string `yaml:"feedURLTemplate"`
	DefaultRegion   string `yaml:"defaultRegion"`
	UserAgent       string `yaml:"userAgent"`
	TimeoutMS       int    `yaml:"timeoutMS" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server  ServerConfig  `yaml:"server" validate:"required"`
	Transit TransitConfig `yaml:"transit"`
	Weather WeatherConfig `yaml:"weather"`
}
