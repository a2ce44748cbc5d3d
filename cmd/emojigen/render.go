package main

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"log/slog"
	"strconv"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/emoji/internal/unicode"
)

// Integrity errors. Any of these aborts generation.
var (
	ErrDuplicateEmoji     = errors.New("emojigen: duplicate emoji string")
	ErrDuplicateShortcode = errors.New("emojigen: duplicate shortcode")
	ErrUnknownGroup       = errors.New("emojigen: unknown group")
	ErrBadFamily          = errors.New("emojigen: malformed skin tone family")
)

// groupConsts are the Group constants of the root package. A group
// header that does not map onto one of these is an error: a new Unicode
// group means the root package needs a new constant first.
var groupConsts = map[string]bool{
	"GroupSmileysAndEmotion": true,
	"GroupPeopleAndBody":     true,
	"GroupAnimalsAndNature":  true,
	"GroupFoodAndDrink":      true,
	"GroupTravelAndPlaces":   true,
	"GroupActivities":        true,
	"GroupObjects":           true,
	"GroupSymbols":           true,
	"GroupFlags":             true,
}

// toneConsts are the SkinTone constants of the root package, indexed by
// tone value.
var toneConsts = [...]string{
	"SkinToneDefault",
	"SkinToneLight", "SkinToneMediumLight", "SkinToneMedium",
	"SkinToneMediumDark", "SkinToneDark",
	"SkinToneLightAndMediumLight", "SkinToneLightAndMedium",
	"SkinToneLightAndMediumDark", "SkinToneLightAndDark",
	"SkinToneMediumLightAndLight", "SkinToneMediumLightAndMedium",
	"SkinToneMediumLightAndMediumDark", "SkinToneMediumLightAndDark",
	"SkinToneMediumAndLight", "SkinToneMediumAndMediumLight",
	"SkinToneMediumAndMediumDark", "SkinToneMediumAndDark",
	"SkinToneMediumDarkAndLight", "SkinToneMediumDarkAndMediumLight",
	"SkinToneMediumDarkAndMedium", "SkinToneMediumDarkAndDark",
	"SkinToneDarkAndLight", "SkinToneDarkAndMediumLight",
	"SkinToneDarkAndMedium", "SkinToneDarkAndMediumDark",
}

// row is one rendered table entry.
type row struct {
	unicode.Entry
	Shortcodes []string
}

var titler = cases.Title(language.English)

// groupConst converts a CLDR group header to its Go constant name, e.g.
// "Smileys & Emotion" -> "GroupSmileysAndEmotion".
func groupConst(name string) string {
	var sb strings.Builder
	sb.WriteString("Group")
	for _, word := range strings.Fields(name) {
		if word == "&" {
			word = "and"
		}
		sb.WriteString(titler.String(word))
	}
	return sb.String()
}

// merge attaches gemoji shortcodes to the parsed entries and runs the
// integrity checks that must hold for the committed table.
func merge(entries []unicode.Entry, aliases map[string][]string, logger *slog.Logger) ([]row, error) {
	byString := make(map[string]int, 2*len(entries))
	for i, e := range entries {
		if _, ok := byString[e.Emoji]; ok {
			return nil, fmt.Errorf("%w: %q (%s)", ErrDuplicateEmoji, e.Emoji, e.Name)
		}
		byString[e.Emoji] = i
		for _, v := range e.Variations {
			if _, ok := byString[v]; ok {
				return nil, fmt.Errorf("%w: variation %q of %s", ErrDuplicateEmoji, v, e.Name)
			}
			byString[v] = i
		}
	}

	rows := make([]row, len(entries))
	for i, e := range entries {
		if !groupConsts[groupConst(e.Group)] {
			return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, e.Group)
		}
		if e.FamilyLen != 0 {
			if e.FamilyLen != 6 && e.FamilyLen != 26 {
				return nil, fmt.Errorf("%w: %s has %d members", ErrBadFamily, e.Name, e.FamilyLen)
			}
			if first := entries[e.FamilyIndex]; first.Tone != 0 {
				return nil, fmt.Errorf("%w: %s has no default representative", ErrBadFamily, e.Name)
			}
		}
		rows[i] = row{Entry: e}
	}

	seen := make(map[string]bool)
	for s, scs := range aliases {
		i, ok := byString[s]
		if !ok {
			logger.Warn("gemoji emoji not in dataset, skipping", "emoji", s, "aliases", scs)
			continue
		}
		for _, sc := range scs {
			if seen[sc] {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateShortcode, sc)
			}
			seen[sc] = true
		}
		rows[i].Shortcodes = scs
	}
	return rows, nil
}

var tablesTemplate = template.Must(template.New("tables").Parse(
	`// Code generated by emojigen; DO NOT EDIT.
//
// Sources:
//	{{.UnicodeSrc}}
//	{{.GemojiSrc}}

package emoji

// emojis holds every entry in CLDR recommended order. Skin tone
// variants immediately follow their default representative.
var emojis = [...]Emoji{
{{range .Lines}}	{{.}}
{{end}}}
`))

// render produces the formatted Go source for tables.go.
func render(rows []row, unicodeSrc, gemojiSrc string) ([]byte, error) {
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = entryLiteral(i, r)
	}

	var buf bytes.Buffer
	err := tablesTemplate.Execute(&buf, struct {
		UnicodeSrc, GemojiSrc string
		Lines                 []string
	}{unicodeSrc, gemojiSrc, lines})
	if err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}

// entryLiteral renders one Emoji composite literal. Zero fields are
// omitted to keep the table readable.
func entryLiteral(pos int, r row) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "{pos: %d, emoji: %s, name: %s, group: %s, version: UnicodeVersion{%d, %d}",
		pos, strconv.QuoteToASCII(r.Emoji), strconv.QuoteToASCII(r.Name),
		groupConst(r.Group), r.Major, r.Minor)
	if r.FamilyLen != 0 {
		if r.Tone != 0 {
			fmt.Fprintf(&sb, ", tone: %s", toneConsts[r.Tone])
		}
		fmt.Fprintf(&sb, ", familyIndex: %d, familyLen: %d", r.FamilyIndex, r.FamilyLen)
	}
	if len(r.Shortcodes) > 0 {
		fmt.Fprintf(&sb, ", shortcodes: []string{%s}", quoteList(r.Shortcodes))
	}
	if len(r.Variations) > 0 {
		fmt.Fprintf(&sb, ", variations: []string{%s}", quoteList(r.Variations))
	}
	sb.WriteString("},")
	return sb.String()
}

func quoteList(ss []string) string {
	quoted := make([]string, len(ss))
	for i, s := range ss {
		quoted[i] = strconv.QuoteToASCII(s)
	}
	return strings.Join(quoted, ", ")
}
