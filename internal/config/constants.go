package config

import "time"

// Environment variable names.
const (
	envPort             = "PORT"
	envBackendBaseURL   = "BACKEND_BASE_URL"
	envServiceToken     = "BACKEND_SERVICE_TOKEN"
	envSessionKey       = "SESSION_SIGNING_KEY"
	envSessionTTL       = "SESSION_TTL"
	envScheduleCacheTTL = "SCHEDULE_CACHE_TTL"
	envSchedulePageSize = "SCHEDULE_PAGE_SIZE"
	envTeamsRefresh     = "TEAMS_REFRESH_INTERVAL"
	envAllowedOrigins   = "ALLOWED_ORIGINS"
	envMetricsEnabled   = "METRICS_ENABLED"
	envMetricsPort      = "METRICS_PORT"
	envOtlpEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtlpInsecure     = "OTEL_EXPORTER_OTLP_INSECURE"
)

// Defaults.
const (
	defaultPort             = "3000"
	defaultBackendBaseURL   = "http://localhost:8080/api"
	defaultSessionTTL       = 24 * time.Hour
	defaultScheduleCacheTTL = 10 * time.Minute
	defaultSchedulePageSize = 3
	defaultTeamsRefresh     = 6 * time.Hour
	defaultMetricsPort      = "9464"
)
