package http

import (
	"net/url"
	"testing"
)

func TestBoolParamTriState(t *testing.T) {
	truthy := []string{"1", "true", "yes"}
	for _, raw := range truthy {
		got := boolParam(url.Values{"verified": {raw}}, "verified")
		if got == nil || !*got {
			t.Fatalf("raw %q: expected true, got %v", raw, got)
		}
	}

	falsy := []string{"0", "false", "no"}
	for _, raw := range falsy {
		got := boolParam(url.Values{"verified": {raw}}, "verified")
		if got == nil || *got {
			t.Fatalf("raw %q: expected false, got %v", raw, got)
		}
	}

	absent := []url.Values{
		{},
		{"verified": {""}},
		{"verified": {"maybe"}},
		{"verified": {"TRUE"}},
	}
	for _, q := range absent {
		if got := boolParam(q, "verified"); got != nil {
			t.Fatalf("query %v: expected nil, got %v", q, *got)
		}
	}
}

func TestIntParam(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"", 0},
		{"5", 5},
		{"-3", -3},
		{"junk", 0},
	}
	for _, tc := range cases {
		if got := intParam(url.Values{"page": {tc.raw}}, "page"); got != tc.want {
			t.Fatalf("raw %q: expected %d, got %d", tc.raw, tc.want, got)
		}
	}
}

func TestParseSearchOptions(t *testing.T) {
	q := url.Values{
		"mode":     {"free"},
		"verified": {"1"},
		"patched":  {"0"},
		"sortBy":   {"views"},
		"order":    {"desc"},
		"strict":   {"true"},
		"exclude":  {"abc"},
		"page":     {"3"},
		"max":      {"15"},
	}

	opts := parseSearchOptions(q)

	if opts.Mode != "free" || opts.SortBy != "views" || opts.Order != "desc" || opts.Exclude != "abc" {
		t.Fatalf("unexpected options %+v", opts)
	}
	if opts.Verified == nil || !*opts.Verified {
		t.Fatalf("expected verified=true")
	}
	if opts.Patched == nil || *opts.Patched {
		t.Fatalf("expected patched=false")
	}
	if opts.Key != nil || opts.Universal != nil {
		t.Fatalf("absent filters must stay nil: %+v", opts)
	}
	if opts.Strict == nil || !*opts.Strict {
		t.Fatalf("expected strict=true")
	}
	if opts.Page != 3 || opts.Max != 15 {
		t.Fatalf("unexpected paging %+v", opts)
	}
}

func TestParseBrowseOptions(t *testing.T) {
	q := url.Values{
		"game": {"920587237"},
		"max":  {"5"},
	}

	opts := parseBrowseOptions(q)

	if opts.Game != "920587237" || opts.Max != 5 {
		t.Fatalf("unexpected options %+v", opts)
	}
	if opts.Verified != nil {
		t.Fatalf("absent filters must stay nil")
	}
}
