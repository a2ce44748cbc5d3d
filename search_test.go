package emoji

import (
	"strings"
	"testing"
)

func TestSearchRocket(t *testing.T) {
	results := Search("rocket")
	if len(results) == 0 {
		t.Fatal("Search(rocket) returned nothing")
	}
	if !strings.Contains(results[0].Name(), "rocket") {
		t.Errorf("first result = %q, want a name containing %q", results[0].Name(), "rocket")
	}
}

// An exact name match ranks above longer names that also match.
func TestSearchExactNameFirst(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"rocket", "rocket"},
		{"ROCKET", "rocket"},
		{"star", "star"},
		{"red heart", "red heart"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			results := Search(tt.query)
			if len(results) == 0 {
				t.Fatalf("Search(%q) returned nothing", tt.query)
			}
			if results[0].Name() != tt.want {
				t.Errorf("Search(%q)[0].Name() = %q, want %q", tt.query, results[0].Name(), tt.want)
			}
		})
	}
}

// Queries match as subsequences of the name, not only substrings.
func TestSearchSubsequence(t *testing.T) {
	results := Search("rckt")
	found := false
	for _, e := range results {
		if e.Name() == "rocket" {
			found = true
			break
		}
	}
	if !found {
		t.Error("Search(rckt) did not match rocket")
	}
}

// Shortcodes are searched too: "thumbsup" is a shortcode, not a name.
func TestSearchShortcodes(t *testing.T) {
	results := Search("thumbsup")
	if len(results) == 0 {
		t.Fatal("Search(thumbsup) returned nothing")
	}
	if results[0].Name() != "thumbs up" {
		t.Errorf("first result = %q, want %q", results[0].Name(), "thumbs up")
	}
}

func TestSearchNoMatch(t *testing.T) {
	if got := Search("zzqqxyzzy"); len(got) != 0 {
		t.Errorf("Search(zzqqxyzzy) = %d results, want 0", len(got))
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	if got := Search(""); got != nil {
		t.Errorf("Search(\"\") = %d results, want nil", len(got))
	}
}

// Equal inputs produce identical orderings on every call.
func TestSearchDeterministic(t *testing.T) {
	a := Search("cat")
	b := Search("cat")
	if len(a) != len(b) {
		t.Fatalf("result lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("results differ at %d: %q vs %q", i, a[i].Name(), b[i].Name())
		}
	}
}

func TestSuggestShortcode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"exact", "rocket", "rocket", true},
		{"transposed", "rokcet", "rocket", true},
		{"dropped letter", "rocet", "rocket", true},
		{"too far", "xylophone_quartet", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SuggestShortcode(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("SuggestShortcode(%q) = %q, %v, want %q, %v", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}
