package scriptblox

import (
	"context"
	"net/url"

	"golang.org/x/sync/errgroup"

	"scriptblox-service/internal/domain"
	"scriptblox-service/internal/providers"
)

type probe struct {
	name   string
	path   string
	params url.Values
}

// healthProbes is the fixed battery of representative endpoints swept by
// CheckHealth. It covers every upstream capability so an operator can tell
// "upstream is down" apart from "this deployment is blocked".
func healthProbes() []probe {
	return []probe{
		{name: "search", path: "/script/search", params: url.Values{"q": {"test"}, "max": {"1"}}},
		{name: "fetch", path: "/script/fetch", params: url.Values{"max": {"1"}}},
		{name: "trending", path: "/script/trending", params: url.Values{"max": {"1"}}},
		{name: "game", path: "/script/fetch", params: url.Values{"game": {sampleGameID}, "max": {"1"}}},
		{name: "script", path: "/script/" + sampleScriptID, params: nil},
		{name: "raw", path: "/script/raw/" + sampleScriptID, params: nil},
	}
}

// CheckHealth sweeps the probe battery concurrently and rolls the results up
// into an overall status. Probes complete in any order; a failed probe is a
// data point, not an error, so the returned error is always nil.
func (c *Client) CheckHealth(ctx context.Context) (domain.HealthReport, error) {
	probes := healthProbes()
	results := make([]domain.EndpointResult, len(probes))

	var group errgroup.Group
	for i, p := range probes {
		i, p := i, p
		group.Go(func() error {
			results[i] = c.runProbe(ctx, p)
			return nil
		})
	}
	_ = group.Wait()

	return domain.Rollup(results, c.now()), nil
}

func (c *Client) runProbe(ctx context.Context, p probe) domain.EndpointResult {
	result := domain.EndpointResult{Name: p.name}

	_, err := c.get(ctx, p.path, p.params)
	if err == nil {
		result.OK = true
		result.StatusCode = 200
		return result
	}

	if apiErr, ok := providers.AsAPIError(err); ok {
		result.StatusCode = apiErr.StatusCode
		result.Error = apiErr.Message
	} else {
		result.Error = err.Error()
	}
	return result
}
