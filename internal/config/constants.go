package config

import "time"

const (
	envPort               = "PORT"
	envHealthPollInterval = "HEALTH_POLL_INTERVAL"
	envScriptBloxBase     = "SCRIPTBLOX_API_BASE"
	envScriptBloxKey      = "SCRIPTBLOX_API_KEY"
	envScriptBloxTimeout  = "SCRIPTBLOX_TIMEOUT"
	envMinRequestInterval = "SCRIPTBLOX_MIN_REQUEST_INTERVAL"
	envMetricsPort        = "METRICS_PORT"
	envMetricsOn          = "METRICS_ENABLED"
	envOtelEndpoint       = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService        = "OTEL_SERVICE_NAME"
	envOtelInsecure       = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// Conservative sweep cadence: the health battery is six upstream calls
	// per cycle, so keep cycles well apart.
	defaultHealthPollInterval = 5 * Duration(time.Minute)
	defaultMetricsPort        = "9090"
)
