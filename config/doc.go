// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Upstream feed URLs, the default weather region, and user-agent strings are
// all configurable so tests can point the services at fake endpoints.
package config
