package scriptblox

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"scriptblox-service/internal/domain"
)

// Placeholder values applied when upstream omits a field entirely.
const (
	placeholderTitle       = "Untitled Script"
	placeholderDescription = "No description available"
	placeholderGameName    = "Unknown Game"
	placeholderGameID      = "N/A"
	placeholderOwner       = "Unknown"
	placeholderOwnerID     = "N/A"
	placeholderType        = "Unknown"
	placeholderVisibility  = "public"
	placeholderContent     = "No script content available"
)

// newPlaceholderID generates an identifier for records upstream returned
// without one. Overridable in tests.
var newPlaceholderID = func() string {
	return "unresolved-" + uuid.NewString()
}

// normalizeScript maps one raw upstream record to the canonical Script.
//
// Upstream has renamed fields across API versions while old deployments and
// cached responses still surface legacy names, so every field resolves
// through an ordered coalesce chain: current name first, then the known
// legacy alias, then the type-appropriate default. The function is pure and
// total; malformed input degrades to defaulted fields, never to an error.
func normalizeScript(raw rawScript) domain.Script {
	id := stringField(raw, "_id", "id")
	if id == "" {
		id = newPlaceholderID()
	}

	game := childObject(raw, "game")
	owner := childObject(raw, "owner")

	return domain.Script{
		ID:          id,
		Title:       stringFieldDefault(raw, placeholderTitle, "title"),
		Description: stringifyField(raw, placeholderDescription, "description", "features"),

		Game: domain.GameInfo{
			Name:     stringFieldDefault(game, placeholderGameName, "name"),
			ID:       stringFieldDefault(game, placeholderGameID, "gameId", "_id"),
			ImageURL: stringField(game, "imageUrl"),
		},
		Owner: domain.OwnerInfo{
			Username: stringFieldDefault(owner, placeholderOwner, "username"),
			ID:       stringFieldDefault(owner, placeholderOwnerID, "_id", "id"),
			Verified: boolField(owner, "verified"),
			Avatar:   stringField(owner, "profilePicture"),
			Status:   stringField(owner, "status"),
		},

		Verified:   boolField(raw, "verified"),
		Key:        boolField(raw, "key"),
		KeyLink:    stringField(raw, "keyLink"),
		ScriptType: stringFieldDefault(raw, placeholderType, "scriptType", "mode"),
		Universal:  boolField(raw, "isUniversal", "universal"),
		Patched:    boolField(raw, "isPatched", "patched"),
		Visibility: stringFieldDefault(raw, placeholderVisibility, "visibility"),

		ImageURL: stringField(raw, "image", "imageUrl"),
		Slug:     stringField(raw, "slug"),
		Tags:     stringList(raw, "tags"),
		Features: stringField(raw, "features"),

		Views:    intField(raw, "views"),
		Likes:    intField(raw, "likes", "likeCount"),
		Dislikes: intField(raw, "dislikes", "dislikeCount"),

		Liked:     boolField(raw, "liked"),
		Disliked:  boolField(raw, "disliked"),
		Favorited: boolField(raw, "isFav", "favorited"),

		Matched: stringList(raw, "matched"),

		CreatedAt: stringField(raw, "createdAt", "created"),
		UpdatedAt: stringField(raw, "updatedAt", "updated"),

		URL:     scriptURL(id),
		Content: stringFieldDefault(raw, placeholderContent, "script", "content"),
	}
}

func scriptURL(id string) string {
	return siteBaseURL + "/script/" + id
}

// stringField returns the first non-empty string among the candidate keys.
// Non-string values do not satisfy the chain here; callers needing
// stringification use stringifyField.
func stringField(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := m[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func stringFieldDefault(m map[string]any, def string, keys ...string) string {
	if s := stringField(m, keys...); s != "" {
		return s
	}
	return def
}

// stringifyField resolves like stringField but coerces present non-string
// values (nested objects, numbers) to their JSON text instead of dropping
// them. Display layers require a string and must never see raw structure.
func stringifyField(m map[string]any, def string, keys ...string) string {
	for _, key := range keys {
		val, ok := m[key]
		if !ok || val == nil {
			continue
		}
		switch v := val.(type) {
		case string:
			if v != "" {
				return v
			}
		default:
			if encoded, err := json.Marshal(v); err == nil {
				return string(encoded)
			}
			return fmt.Sprintf("%v", v)
		}
	}
	return def
}

// boolField resolves a flag through the candidate keys, accepting real
// booleans and the legacy truthy encodings (nonzero numbers, "1", "true").
// A false-ish value falls through to the next candidate, matching how the
// upstream aliases behaved.
func boolField(m map[string]any, keys ...string) bool {
	for _, key := range keys {
		if truthy(m[key]) {
			return true
		}
	}
	return false
}

func truthy(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case int:
		return v != 0
	case string:
		return v == "1" || strings.EqualFold(v, "true")
	}
	return false
}

// intField resolves a counter through the candidate keys. JSON numbers
// arrive as float64; numeric strings from legacy responses are tolerated.
func intField(m map[string]any, keys ...string) int {
	for _, key := range keys {
		switch v := m[key].(type) {
		case float64:
			if v != 0 {
				return int(v)
			}
		case int:
			if v != 0 {
				return v
			}
		case string:
			if n, err := strconv.Atoi(v); err == nil && n != 0 {
				return n
			}
		}
	}
	return 0
}

// stringList resolves an ordered string collection, defaulting to an empty
// (non-nil) slice. Non-string elements are skipped rather than failing the
// record.
func stringList(m map[string]any, keys ...string) []string {
	for _, key := range keys {
		items, ok := m[key].([]any)
		if !ok {
			// Already-canonical records decode as []any too, but guard the
			// direct shape for callers normalizing in-process values.
			if direct, isDirect := m[key].([]string); isDirect {
				out := make([]string, len(direct))
				copy(out, direct)
				return out
			}
			continue
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			if s, isString := item.(string); isString {
				out = append(out, s)
			}
		}
		return out
	}
	return []string{}
}

func childObject(m map[string]any, key string) map[string]any {
	if child, ok := m[key].(map[string]any); ok {
		return child
	}
	return map[string]any{}
}
