package domain

// GameInfo describes the game a script targets.
type GameInfo struct {
	Name     string `json:"name"`
	ID       string `json:"gameId"`
	ImageURL string `json:"imageUrl"`
}

// OwnerInfo describes the script author.
type OwnerInfo struct {
	Username string `json:"username"`
	ID       string `json:"id"`
	Verified bool   `json:"verified"`
	Avatar   string `json:"profilePicture"`
	Status   string `json:"status"`
}

// Script is the canonical script shape exposed by the service. It is built
// once per upstream record and never mutated afterwards.
type Script struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Game        GameInfo  `json:"game"`
	Owner       OwnerInfo `json:"owner"`

	Verified   bool   `json:"verified"`
	Key        bool   `json:"key"`
	KeyLink    string `json:"keyLink"`
	ScriptType string `json:"scriptType"`
	Universal  bool   `json:"universal"`
	Patched    bool   `json:"patched"`
	Visibility string `json:"visibility"`

	ImageURL string   `json:"imageUrl"`
	Slug     string   `json:"slug"`
	Tags     []string `json:"tags"`
	Features string   `json:"features"`

	Views    int `json:"views"`
	Likes    int `json:"likes"`
	Dislikes int `json:"dislikes"`

	Liked     bool `json:"liked"`
	Disliked  bool `json:"disliked"`
	Favorited bool `json:"favorited"`

	// Matched holds the search terms that matched; populated by the search
	// endpoint only.
	Matched []string `json:"matched"`

	// Timestamps are passed through from upstream unparsed; empty when absent.
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`

	URL     string `json:"url"`
	Content string `json:"content"`
}

// Page wraps one page of scripts together with pagination metadata reported
// by upstream list endpoints.
type Page struct {
	Scripts    []Script `json:"scripts"`
	Page       int      `json:"page"`
	TotalPages int      `json:"totalPages"`
}
