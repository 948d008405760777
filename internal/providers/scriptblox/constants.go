package scriptblox

import "time"

const (
	providerName = "scriptblox"

	defaultBaseURL = "https://scriptblox.com/api"
	siteBaseURL    = "https://scriptblox.com"

	defaultPageSize    = 10
	maxPageSize        = 20
	defaultHTTPTimeout = 15 * time.Second

	// Known-good sample ids used by the health probe battery.
	sampleScriptID = "65a5c6c0ddf7e3bb89b21e6b"
	sampleGameID   = "920587237"
)
