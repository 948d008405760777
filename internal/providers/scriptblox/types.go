package scriptblox

// rawScript is the weakly-typed record shape returned by upstream. Field
// names and nesting vary release-to-release, so nothing beyond "JSON object"
// is assumed here; normalizeScript converts it to the canonical shape.
type rawScript map[string]any

// listEnvelope covers both the current wrapped shape ({"result": {...}}) and
// the flat shape older deployments returned.
type listEnvelope struct {
	Result     listResult  `json:"result"`
	Scripts    []rawScript `json:"scripts"`
	TotalPages int         `json:"totalPages"`
}

type listResult struct {
	TotalPages int         `json:"totalPages"`
	Scripts    []rawScript `json:"scripts"`
}

func (e listEnvelope) scripts() []rawScript {
	if e.Result.Scripts != nil {
		return e.Result.Scripts
	}
	return e.Scripts
}

func (e listEnvelope) totalPages() int {
	if e.Result.TotalPages > 0 {
		return e.Result.TotalPages
	}
	return e.TotalPages
}

type scriptEnvelope struct {
	Script rawScript `json:"script"`
}

type versionResponse struct {
	Version           string `json:"version"`
	Deprecated        bool   `json:"deprecated"`
	MigrationRequired bool   `json:"migration_required"`
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
