package config

// Config holds runtime configuration for the server.
type Config struct {
	Port               string
	HealthPollInterval Duration
	ScriptBlox         ScriptBloxConfig
	Metrics            MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:               envOrDefault(envPort, defaultPort),
		HealthPollInterval: durationEnvOrDefault(envHealthPollInterval, defaultHealthPollInterval),
		ScriptBlox:         loadScriptBlox(),
		Metrics:            loadMetrics(),
	}
}
