package server

import (
	"log/slog"
	"net/http"

	"scriptblox-service/internal/config"
	"scriptblox-service/internal/metrics"
	"scriptblox-service/internal/providers"
	"scriptblox-service/internal/providers/scriptblox"
)

// buildProvider assembles the upstream provider chain: the ScriptBlox client
// at the bottom (no retries, no caching), an optional min-interval limiter,
// and the retrying decorator on top for the relay path.
func buildProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.CatalogProvider {
	client := scriptblox.NewClient(scriptblox.Config{
		BaseURL:    cfg.ScriptBlox.BaseURL,
		APIKey:     cfg.ScriptBlox.APIKey,
		HTTPClient: &http.Client{Timeout: cfg.ScriptBlox.Timeout},
	})

	var provider providers.CatalogProvider = client
	if cfg.ScriptBlox.MinRequestInterval > 0 {
		provider = providers.NewRateLimitedProvider(provider, cfg.ScriptBlox.MinRequestInterval, logger)
	}
	return providers.NewRetryingProvider(provider, logger, recorder, 0)
}
