package config

import "time"

// ScriptBloxConfig holds upstream API settings, read once at construction.
type ScriptBloxConfig struct {
	BaseURL string
	APIKey  string
	Timeout Duration
	// MinRequestInterval spaces upstream data calls when set; zero disables
	// the rate-limit decorator.
	MinRequestInterval Duration
}

func loadScriptBlox() ScriptBloxConfig {
	return ScriptBloxConfig{
		BaseURL:            envOrDefault(envScriptBloxBase, ""),
		APIKey:             envOrDefault(envScriptBloxKey, ""),
		Timeout:            durationEnvOrDefault(envScriptBloxTimeout, 15*time.Second),
		MinRequestInterval: durationEnvOrDefault(envMinRequestInterval, 0),
	}
}
