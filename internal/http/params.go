package http

import (
	"net/url"
	"strconv"

	"scriptblox-service/internal/providers"
)

func parseSearchOptions(q url.Values) providers.SearchOptions {
	return providers.SearchOptions{
		Mode:      q.Get("mode"),
		Verified:  boolParam(q, "verified"),
		Key:       boolParam(q, "key"),
		Universal: boolParam(q, "universal"),
		Patched:   boolParam(q, "patched"),
		SortBy:    q.Get("sortBy"),
		Order:     q.Get("order"),
		Strict:    boolParam(q, "strict"),
		Exclude:   q.Get("exclude"),
		Page:      intParam(q, "page"),
		Max:       intParam(q, "max"),
	}
}

func parseBrowseOptions(q url.Values) providers.BrowseOptions {
	return providers.BrowseOptions{
		Game:      q.Get("game"),
		Mode:      q.Get("mode"),
		Verified:  boolParam(q, "verified"),
		Key:       boolParam(q, "key"),
		Universal: boolParam(q, "universal"),
		Patched:   boolParam(q, "patched"),
		SortBy:    q.Get("sortBy"),
		Order:     q.Get("order"),
		Exclude:   q.Get("exclude"),
		Page:      intParam(q, "page"),
		Max:       intParam(q, "max"),
	}
}

// boolParam returns nil when the parameter is absent or unrecognized, so "no
// preference" survives through to the upstream request.
func boolParam(q url.Values, name string) *bool {
	raw := q.Get(name)
	switch raw {
	case "1", "true", "yes":
		val := true
		return &val
	case "0", "false", "no":
		val := false
		return &val
	}
	return nil
}

func intParam(q url.Values, name string) int {
	raw := q.Get(name)
	if raw == "" {
		return 0
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return val
}
