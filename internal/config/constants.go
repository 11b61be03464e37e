package config

import "time"

const (
	envPort           = "PORT"
	envLogLevel       = "LOG_LEVEL"
	envLogFormat      = "LOG_FORMAT"
	envAPIBaseURL     = "FIGHT_API_BASE_URL"
	envAPITimeout     = "FIGHT_API_TIMEOUT"
	envAPIMaxAttempts = "FIGHT_API_MAX_ATTEMPTS"
	envAPIRetryDelay  = "FIGHT_API_RETRY_DELAY"
	envAPIRevision    = "FIGHT_API_REVISION"
	envLookupLimit    = "EVENT_LOOKUP_CONCURRENCY"
	envRosterPageSize = "ROSTER_PAGE_SIZE"
	envSessionBackend = "SESSION_BACKEND"
	envSessionPath    = "SESSION_PATH"
	envProbeInterval  = "PROBE_INTERVAL"
	envProbeEnabled   = "PROBE_ENABLED"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"
	envDotEnvFile     = "DOTENV_FILE"
)

const (
	defaultPort        = "4000"
	defaultDotEnvFile  = ".env"
	defaultServiceName = "fightcard-service"
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
	defaultMetricsPort = "9090"

	// Mirrors the mobile client's API_CONFIG: 10s per attempt, 3 attempts, 1s apart.
	defaultAPIBaseURL     = "http://localhost:8000"
	defaultAPITimeout     = 10 * Duration(time.Second)
	defaultAPIMaxAttempts = 3
	defaultAPIRetryDelay  = 1 * Duration(time.Second)
	defaultAPIRevision    = "fight-id"

	defaultLookupLimit    = 4
	defaultRosterPageSize = 10
	defaultSessionBackend = "file"
	defaultSessionPath    = "data/session.json"
	defaultSQLitePath     = "data/session.db"
	defaultProbeInterval  = 1 * Duration(time.Minute)
	defaultProbeEnabled   = true
)
