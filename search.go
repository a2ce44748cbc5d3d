package emoji

import (
	"slices"
	"strings"

	"github.com/agext/levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// maxSuggestDistance bounds how far a shortcode may be from the input
// before SuggestShortcode gives up.
const maxSuggestDistance = 3

// Search returns the emojis matching the free text query, best match
// first. A query matches an emoji if every rune of the query appears, in
// order but not necessarily contiguously, in the emoji's name or in one
// of its shortcodes, ignoring case.
//
// Results are ordered by: exact name matches first, then ascending
// Levenshtein distance between the query and the matched string, then
// CLDR recommended order. The ordering is deterministic; the distance
// heuristic itself is not part of the package contract and may be tuned.
//
// An empty query matches nothing.
func Search(query string) []*Emoji {
	if query == "" {
		return nil
	}

	type match struct {
		e     *Emoji
		rank  int
		exact bool
	}
	matches := make([]match, 0, 64)

	for i := range emojis {
		e := &emojis[i]
		rank := fuzzy.RankMatchNormalizedFold(query, e.name)
		for _, s := range e.shortcodes {
			if r := fuzzy.RankMatchNormalizedFold(query, s); r >= 0 && (rank < 0 || r < rank) {
				rank = r
			}
		}
		if rank < 0 {
			continue
		}
		matches = append(matches, match{
			e:     e,
			rank:  rank,
			exact: strings.EqualFold(e.name, query),
		})
	}

	slices.SortFunc(matches, func(a, b match) int {
		if a.exact != b.exact {
			if a.exact {
				return -1
			}
			return 1
		}
		if a.rank != b.rank {
			return a.rank - b.rank
		}
		return int(a.e.pos) - int(b.e.pos)
	})

	out := make([]*Emoji, len(matches))
	for i, m := range matches {
		out[i] = m.e
	}

	Logger().Debug("emoji: search", "query", query, "matches", len(out))
	return out
}

// SuggestShortcode returns the known gemoji shortcode closest to s, for
// "did you mean" hints when GetByShortcode comes up empty. It returns
// false if no shortcode is within a small edit distance of s. Ties are
// broken by CLDR recommended order of the owning emoji.
func SuggestShortcode(s string) (string, bool) {
	if s == "" {
		return "", false
	}

	best := ""
	bestDist := maxSuggestDistance + 1
	for i := range emojis {
		for _, sc := range emojis[i].shortcodes {
			d := levenshtein.Distance(s, sc, nil)
			if d == 0 {
				return sc, true
			}
			if d < bestDist {
				best, bestDist = sc, d
			}
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}
