package config

import "time"

// Config holds runtime configuration for the companion server.
type Config struct {
	Port             string
	BackendBaseURL   string
	ServiceToken     string
	SessionKey       string
	SessionTTL       time.Duration
	ScheduleCacheTTL time.Duration
	SchedulePageSize int
	TeamsRefresh     time.Duration
	AllowedOrigins   []string
	Metrics          MetricsConfig
}

// MetricsConfig controls the optional metrics listener.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:             envOrDefault(envPort, defaultPort),
		BackendBaseURL:   envOrDefault(envBackendBaseURL, defaultBackendBaseURL),
		ServiceToken:     envOrDefault(envServiceToken, ""),
		SessionKey:       envOrDefault(envSessionKey, ""),
		SessionTTL:       durationEnvOrDefault(envSessionTTL, defaultSessionTTL),
		ScheduleCacheTTL: durationEnvOrDefault(envScheduleCacheTTL, defaultScheduleCacheTTL),
		SchedulePageSize: intEnvOrDefault(envSchedulePageSize, defaultSchedulePageSize),
		TeamsRefresh:     durationEnvOrDefault(envTeamsRefresh, defaultTeamsRefresh),
		AllowedOrigins:   listEnv(envAllowedOrigins),
		Metrics:          loadMetrics(),
	}
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsEnabled, false),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		OtlpEndpoint: envOrDefault(envOtlpEndpoint, ""),
		OtlpInsecure: boolEnvOrDefault(envOtlpInsecure, false),
	}
}
