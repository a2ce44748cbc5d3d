package gemoji

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	const db = `[
  {"emoji":"👍","description":"thumbs up","aliases":["+1","thumbsup"]},
  {"emoji":"🚀","description":"rocket","aliases":["rocket"]},
  {"description":"octocat","aliases":["octocat"]}
]`
	aliases, err := Parse(strings.NewReader(db))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(aliases) != 2 {
		t.Fatalf("len(aliases) = %d, want 2 (custom images skipped)", len(aliases))
	}
	if got := aliases["👍"]; !slices.Equal(got, []string{"+1", "thumbsup"}) {
		t.Errorf("aliases[👍] = %q, want [+1 thumbsup]", got)
	}
	if got := aliases["🚀"]; !slices.Equal(got, []string{"rocket"}) {
		t.Errorf("aliases[🚀] = %q, want [rocket]", got)
	}
}

func TestParseDuplicateAlias(t *testing.T) {
	const db = `[
  {"emoji":"👍","aliases":["+1"]},
  {"emoji":"👎","aliases":["+1"]}
]`
	_, err := Parse(strings.NewReader(db))
	if !errors.Is(err, ErrDuplicateAlias) {
		t.Errorf("Parse error = %v, want ErrDuplicateAlias", err)
	}
}

func TestParseDecodeError(t *testing.T) {
	if _, err := Parse(strings.NewReader(`{"not":"an array"`)); err == nil {
		t.Error("Parse accepted malformed JSON")
	}
}
