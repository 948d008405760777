package scriptblox

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"scriptblox-service/internal/domain"
	"scriptblox-service/internal/providers"
)

// Config controls how the client reaches the ScriptBlox API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// Client fetches scripts from the ScriptBlox API and maps them to the
// canonical domain shape. It holds no mutable state after construction and
// is safe for concurrent use. It never retries and never caches.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a ScriptBlox client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
	}
}

// Search queries the upstream search endpoint. An empty query is forwarded
// as-is; upstream decides its semantics.
func (c *Client) Search(ctx context.Context, query string, opts providers.SearchOptions) (domain.Page, error) {
	page := clampPage(opts.Page)

	params := url.Values{}
	params.Set("q", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("max", strconv.Itoa(clampPageSize(opts.Max)))
	setCommonFilters(params, opts.Mode, opts.Exclude, opts.Verified, opts.Key, opts.Universal, opts.Patched)
	if opts.SortBy != "" {
		params.Set("sortBy", opts.SortBy)
	}
	if opts.Order != "" {
		params.Set("order", opts.Order)
	}
	if opts.Strict != nil {
		params.Set("strict", strconv.FormatBool(*opts.Strict))
	}

	body, err := c.get(ctx, "/script/search", params)
	if err != nil {
		return domain.Page{}, err
	}
	return decodeList(body, page)
}

// Browse fetches scripts through the filtered fetch endpoint, optionally
// narrowed to one game. The relevance sort key is search-only and dropped
// here.
func (c *Client) Browse(ctx context.Context, opts providers.BrowseOptions) (domain.Page, error) {
	page := clampPage(opts.Page)

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("max", strconv.Itoa(clampPageSize(opts.Max)))
	if opts.Game != "" {
		params.Set("game", opts.Game)
	}
	setCommonFilters(params, opts.Mode, opts.Exclude, opts.Verified, opts.Key, opts.Universal, opts.Patched)
	if opts.SortBy != "" && opts.SortBy != providers.SortRelevance {
		params.Set("sortBy", opts.SortBy)
	}
	if opts.Order != "" {
		params.Set("order", opts.Order)
	}

	body, err := c.get(ctx, "/script/fetch", params)
	if err != nil {
		return domain.Page{}, err
	}
	return decodeList(body, page)
}

// Script looks up a single record by id.
func (c *Client) Script(ctx context.Context, id string) (domain.Script, error) {
	body, err := c.get(ctx, "/script/"+id, nil)
	if err != nil {
		return domain.Script{}, err
	}

	var envelope scriptEnvelope
	if decodeErr := json.Unmarshal(body, &envelope); decodeErr == nil && envelope.Script != nil {
		return normalizeScript(envelope.Script), nil
	}

	// Some deployments return the record unwrapped.
	var raw rawScript
	if decodeErr := json.Unmarshal(body, &raw); decodeErr != nil {
		return domain.Script{}, fmt.Errorf("scriptblox: decode script response: %w", decodeErr)
	}
	return normalizeScript(raw), nil
}

// RawScript returns the unprocessed content body for one record. The body is
// an opaque string, exempt from normalization.
func (c *Client) RawScript(ctx context.Context, id string) (string, error) {
	body, err := c.get(ctx, "/script/raw/"+id, nil)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Trending fetches the trending list; upstream sorts by view count
// descending. The limit is clamped like every list page size.
func (c *Client) Trending(ctx context.Context, limit int) ([]domain.Script, error) {
	params := url.Values{}
	params.Set("max", strconv.Itoa(clampPageSize(limit)))

	body, err := c.get(ctx, "/script/trending", params)
	if err != nil {
		return nil, err
	}
	page, err := decodeList(body, 1)
	if err != nil {
		return nil, err
	}
	return page.Scripts, nil
}

// Version probes the upstream version endpoint. Deployments without the
// endpoint report "unknown" rather than an error.
func (c *Client) Version(ctx context.Context) (domain.VersionInfo, error) {
	body, err := c.get(ctx, "/version", nil)
	if err != nil {
		return domain.VersionInfo{Version: "unknown"}, nil
	}

	var parsed versionResponse
	if decodeErr := json.Unmarshal(body, &parsed); decodeErr != nil || parsed.Version == "" {
		return domain.VersionInfo{Version: "unknown"}, nil
	}
	return domain.VersionInfo{
		Version:           parsed.Version,
		Deprecated:        parsed.Deprecated,
		MigrationRequired: parsed.MigrationRequired,
	}, nil
}

// get performs one HTTP GET and returns the response body, classifying every
// failure into a *providers.APIError.
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if params != nil {
		req.URL.RawQuery = params.Encode()
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, classifyResponse(resp.StatusCode, body)
	}
	return body, nil
}

// setHeaders applies the fixed JSON-accept header set the upstream expects,
// plus the bearer credential when configured.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Referer", siteBaseURL+"/")
	req.Header.Set("Origin", siteBaseURL)
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}

// setCommonFilters applies the filter parameters shared by the list
// endpoints. Booleans are sent as 1/0 per the upstream contract; nil means
// "no preference" and is omitted.
func setCommonFilters(params url.Values, mode, exclude string, verified, key, universal, patched *bool) {
	if mode != "" {
		params.Set("mode", mode)
	}
	if exclude != "" {
		params.Set("exclude", exclude)
	}
	setBoolFilter(params, "verified", verified)
	setBoolFilter(params, "key", key)
	setBoolFilter(params, "universal", universal)
	setBoolFilter(params, "patched", patched)
}

func setBoolFilter(params url.Values, name string, val *bool) {
	if val == nil {
		return
	}
	if *val {
		params.Set(name, "1")
	} else {
		params.Set(name, "0")
	}
}

func decodeList(body []byte, page int) (domain.Page, error) {
	var envelope listEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return domain.Page{}, fmt.Errorf("scriptblox: decode list response: %w", err)
	}

	raws := envelope.scripts()
	scripts := make([]domain.Script, 0, len(raws))
	for _, raw := range raws {
		scripts = append(scripts, normalizeScript(raw))
	}

	return domain.Page{
		Scripts:    scripts,
		Page:       page,
		TotalPages: envelope.totalPages(),
	}, nil
}
