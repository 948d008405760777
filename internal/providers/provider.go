package providers

import (
	"context"

	"scriptblox-service/internal/domain"
)

// Sort keys accepted by the upstream list endpoints. SortRelevance is only
// honored by Search; Browse silently drops it.
const (
	SortViews     = "views"
	SortLikes     = "likeCount"
	SortDislikes  = "dislikeCount"
	SortCreated   = "createdAt"
	SortUpdated   = "updatedAt"
	SortRelevance = "accuracy"
)

// Sort orders.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Script modes.
const (
	ModeFree = "free"
	ModePaid = "paid"
)

// SearchOptions are the filters accepted by Search. Nil boolean pointers mean
// "no preference" and are omitted from the request entirely.
type SearchOptions struct {
	Mode      string
	Verified  *bool
	Key       *bool
	Universal *bool
	Patched   *bool
	SortBy    string
	Order     string
	Strict    *bool
	Exclude   string
	Page      int
	Max       int
}

// BrowseOptions are the filters accepted by Browse. Game narrows results to
// one game; the rest mirror SearchOptions minus the query-specific knobs.
type BrowseOptions struct {
	Game      string
	Mode      string
	Verified  *bool
	Key       *bool
	Universal *bool
	Patched   *bool
	SortBy    string
	Order     string
	Exclude   string
	Page      int
	Max       int
}

// CatalogProvider defines how upstream script data is fetched and normalized.
// Implementations classify every failure into a *APIError and never retry on
// their own.
type CatalogProvider interface {
	Search(ctx context.Context, query string, opts SearchOptions) (domain.Page, error)
	Browse(ctx context.Context, opts BrowseOptions) (domain.Page, error)
	Script(ctx context.Context, id string) (domain.Script, error)
	RawScript(ctx context.Context, id string) (string, error)
	Trending(ctx context.Context, limit int) ([]domain.Script, error)
	CheckHealth(ctx context.Context) (domain.HealthReport, error)
	Version(ctx context.Context) (domain.VersionInfo, error)
}
