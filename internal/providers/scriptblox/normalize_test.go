package scriptblox

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"scriptblox-service/internal/domain"
)

func TestNormalizeScriptMapsFields(t *testing.T) {
	raw := rawScript{
		"_id":         "abc",
		"title":       "Foo",
		"description": "does things",
		"game": map[string]any{
			"name":     "Jailbreak",
			"gameId":   "606849621",
			"imageUrl": "https://images.example/jb.png",
		},
		"owner": map[string]any{
			"username": "scripter",
			"_id":      "owner-1",
			"verified": true,
		},
		"verified":  true,
		"key":       false,
		"likeCount": float64(5),
		"views":     float64(120),
		"tags":      []any{"gui", "farm"},
		"createdAt": "2024-01-02T15:04:05Z",
		"script":    "print('hi')",
	}

	got := normalizeScript(raw)

	if got.ID != "abc" || got.Title != "Foo" {
		t.Fatalf("unexpected identity fields: %+v", got)
	}
	if got.Likes != 5 || got.Dislikes != 0 || got.Views != 120 {
		t.Fatalf("unexpected counters: likes=%d dislikes=%d views=%d", got.Likes, got.Dislikes, got.Views)
	}
	if !got.Verified || got.Key {
		t.Fatalf("unexpected flags: %+v", got)
	}
	if got.Game.Name != "Jailbreak" || got.Game.ID != "606849621" {
		t.Fatalf("unexpected game info: %+v", got.Game)
	}
	if got.Owner.Username != "scripter" || !got.Owner.Verified {
		t.Fatalf("unexpected owner info: %+v", got.Owner)
	}
	if diff := cmp.Diff([]string{"gui", "farm"}, got.Tags); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}
	if got.URL != "https://scriptblox.com/script/abc" {
		t.Fatalf("unexpected url %s", got.URL)
	}
	if got.Content != "print('hi')" {
		t.Fatalf("unexpected content %q", got.Content)
	}
	if got.CreatedAt != "2024-01-02T15:04:05Z" || got.UpdatedAt != "" {
		t.Fatalf("unexpected timestamps: %q %q", got.CreatedAt, got.UpdatedAt)
	}
}

func TestNormalizeScriptEmptyRecordDefaultsEverything(t *testing.T) {
	restore := newPlaceholderID
	newPlaceholderID = func() string { return "unresolved-test" }
	defer func() { newPlaceholderID = restore }()

	got := normalizeScript(rawScript{})

	if got.ID != "unresolved-test" {
		t.Fatalf("expected placeholder id, got %q", got.ID)
	}
	if got.Title != "Untitled Script" || got.Description != "No description available" {
		t.Fatalf("unexpected placeholders: %+v", got)
	}
	if got.Game.Name != "Unknown Game" || got.Game.ID != "N/A" {
		t.Fatalf("unexpected game defaults: %+v", got.Game)
	}
	if got.Owner.Username != "Unknown" || got.Owner.ID != "N/A" || got.Owner.Verified {
		t.Fatalf("unexpected owner defaults: %+v", got.Owner)
	}
	if got.Views != 0 || got.Likes != 0 || got.Dislikes != 0 {
		t.Fatalf("expected zero counters: %+v", got)
	}
	if got.Verified || got.Key || got.Universal || got.Patched {
		t.Fatalf("expected false flags: %+v", got)
	}
	if got.Tags == nil || len(got.Tags) != 0 {
		t.Fatalf("expected empty non-nil tags, got %#v", got.Tags)
	}
	if got.Matched == nil || len(got.Matched) != 0 {
		t.Fatalf("expected empty non-nil matched, got %#v", got.Matched)
	}
	if got.URL != "https://scriptblox.com/script/unresolved-test" {
		t.Fatalf("expected url built from placeholder id, got %s", got.URL)
	}
	if got.Content != "No script content available" {
		t.Fatalf("unexpected content placeholder %q", got.Content)
	}
	if got.ScriptType != "Unknown" || got.Visibility != "public" {
		t.Fatalf("unexpected type/visibility defaults: %+v", got)
	}
}

func TestNormalizeScriptLegacyAliasEquivalence(t *testing.T) {
	cases := []struct {
		name    string
		current rawScript
		legacy  rawScript
	}{
		{
			name:    "likes vs likeCount",
			current: rawScript{"_id": "x", "likes": float64(7)},
			legacy:  rawScript{"_id": "x", "likeCount": float64(7)},
		},
		{
			name:    "dislikes vs dislikeCount",
			current: rawScript{"_id": "x", "dislikes": float64(3)},
			legacy:  rawScript{"_id": "x", "dislikeCount": float64(3)},
		},
		{
			name:    "isPatched vs patched",
			current: rawScript{"_id": "x", "isPatched": true},
			legacy:  rawScript{"_id": "x", "patched": true},
		},
		{
			name:    "isUniversal vs universal",
			current: rawScript{"_id": "x", "isUniversal": true},
			legacy:  rawScript{"_id": "x", "universal": true},
		},
		{
			name:    "createdAt vs created",
			current: rawScript{"_id": "x", "createdAt": "2023-06-01"},
			legacy:  rawScript{"_id": "x", "created": "2023-06-01"},
		},
		{
			name:    "_id vs id",
			current: rawScript{"_id": "x"},
			legacy:  rawScript{"id": "x"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(normalizeScript(tc.current), normalizeScript(tc.legacy)); diff != "" {
				t.Fatalf("alias forms normalized differently (-current +legacy):\n%s", diff)
			}
		})
	}
}

func TestNormalizeScriptBooleanCoercion(t *testing.T) {
	truthyValues := []any{true, float64(1), "1", "true"}
	for _, val := range truthyValues {
		got := normalizeScript(rawScript{"_id": "x", "patched": val})
		if !got.Patched {
			t.Fatalf("expected %v (%T) to coerce to true", val, val)
		}
	}

	falsyValues := []any{false, float64(0), "0", nil}
	for _, val := range falsyValues {
		raw := rawScript{"_id": "x"}
		if val != nil {
			raw["patched"] = val
		}
		got := normalizeScript(raw)
		if got.Patched {
			t.Fatalf("expected %v (%T) to coerce to false", val, val)
		}
	}
}

func TestNormalizeScriptStringifiesNonStringDescription(t *testing.T) {
	got := normalizeScript(rawScript{
		"_id":         "x",
		"description": map[string]any{"text": "nested"},
	})
	if got.Description != `{"text":"nested"}` {
		t.Fatalf("expected stringified description, got %q", got.Description)
	}

	got = normalizeScript(rawScript{"_id": "x", "description": float64(42)})
	if got.Description != "42" {
		t.Fatalf("expected numeric description stringified, got %q", got.Description)
	}
}

func TestNormalizeScriptDescriptionFallsBackToFeatures(t *testing.T) {
	got := normalizeScript(rawScript{"_id": "x", "features": "Auto farm, ESP"})
	if got.Description != "Auto farm, ESP" {
		t.Fatalf("expected features fallback, got %q", got.Description)
	}
}

func TestNormalizeScriptIdempotent(t *testing.T) {
	first := normalizeScript(rawScript{
		"_id":       "abc",
		"title":     "Foo",
		"likeCount": float64(5),
		"tags":      []any{"one"},
		"isPatched": true,
	})

	// Round-trip the canonical record through JSON, as a caller re-feeding a
	// canonical response would.
	encoded, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal canonical record: %v", err)
	}
	var reencoded rawScript
	if err := json.Unmarshal(encoded, &reencoded); err != nil {
		t.Fatalf("unmarshal canonical record: %v", err)
	}

	second := normalizeScript(reencoded)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("normalization not idempotent (-first +second):\n%s", diff)
	}
}

func TestNormalizeScriptScenarioMinimalRecord(t *testing.T) {
	got := normalizeScript(rawScript{"_id": "abc", "title": "Foo", "likeCount": float64(5)})

	want := struct {
		id       string
		title    string
		likes    int
		dislikes int
		verified bool
	}{"abc", "Foo", 5, 0, false}

	if got.ID != want.id || got.Title != want.title || got.Likes != want.likes || got.Dislikes != want.dislikes || got.Verified != want.verified {
		t.Fatalf("unexpected canonical record: %+v", got)
	}
	if len(got.Tags) != 0 {
		t.Fatalf("expected empty tags, got %#v", got.Tags)
	}
}

func TestNormalizeScriptSkipsNonStringTags(t *testing.T) {
	got := normalizeScript(rawScript{"_id": "x", "tags": []any{"ok", float64(3), "also"}})
	if diff := cmp.Diff([]string{"ok", "also"}, got.Tags); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeScriptTypeStability(t *testing.T) {
	// Hostile shapes for every field must still produce a fully typed record.
	got := normalizeScript(rawScript{
		"_id":   float64(99),
		"title": float64(1),
		"game":  "not-an-object",
		"owner": []any{"not", "an", "object"},
		"tags":  "not-a-list",
		"views": "not-a-number",
	})

	var _ domain.Script = got
	if got.Title != "Untitled Script" {
		t.Fatalf("expected non-string title to default, got %q", got.Title)
	}
	if got.Game.Name != "Unknown Game" {
		t.Fatalf("expected malformed game object to default, got %+v", got.Game)
	}
	if got.Views != 0 {
		t.Fatalf("expected non-numeric views to default to 0, got %d", got.Views)
	}
	if got.Tags == nil {
		t.Fatalf("expected non-nil tags")
	}
}
