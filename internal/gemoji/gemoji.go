// Package gemoji decodes the GitHub gemoji database, the community
// shortcode feed consumed by cmd/emojigen.
//
// The feed is the db/emoji.json file of https://github.com/github/gemoji:
// a JSON array of objects with an "emoji" string and its "aliases". Custom
// GitHub images (octocat, shipit, ...) have no "emoji" field and are
// skipped.
package gemoji

import (
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrDuplicateAlias is returned when two records share an alias.
var ErrDuplicateAlias = errors.New("gemoji: duplicate alias")

// Emoji is one gemoji record.
type Emoji struct {
	Emoji   string   `json:"emoji"`
	Aliases []string `json:"aliases"`
}

// Parse decodes the gemoji database and returns emoji string -> aliases,
// preserving per-emoji alias order. Records without an emoji string are
// skipped. Parse fails if an alias is assigned to two emoji.
func Parse(r io.Reader) (map[string][]string, error) {
	var records []Emoji
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("gemoji: decode: %w", err)
	}

	aliases := make(map[string][]string, len(records))
	owner := make(map[string]string, len(records))
	for _, rec := range records {
		if rec.Emoji == "" {
			continue
		}
		for _, a := range rec.Aliases {
			if prev, ok := owner[a]; ok && prev != rec.Emoji {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateAlias, a)
			}
			owner[a] = rec.Emoji
		}
		aliases[rec.Emoji] = append(aliases[rec.Emoji], rec.Aliases...)
	}
	return aliases, nil
}
