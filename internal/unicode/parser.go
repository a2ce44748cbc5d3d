package unicode

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// Sentinel errors for emoji-test.txt parsing.
var (
	// ErrMalformedLine is returned when a data line does not have the
	// "codepoints ; status # emoji Eversion name" shape.
	ErrMalformedLine = errors.New("unicode: malformed data line")

	// ErrUnknownStatus is returned for a status field outside the four
	// values defined by emoji-test.txt.
	ErrUnknownStatus = errors.New("unicode: unknown status")

	// ErrOrphanVariation is returned when a minimally-qualified or
	// unqualified line has no preceding fully-qualified entry.
	ErrOrphanVariation = errors.New("unicode: variation without fully-qualified entry")

	// ErrOrphanSkinTone is returned when a skin toned entry has no
	// preceding default entry to attach to.
	ErrOrphanSkinTone = errors.New("unicode: skin tone variant without default entry")
)

// Status is the qualification status of an emoji-test.txt line.
type Status int

const (
	FullyQualified Status = iota
	MinimallyQualified
	Unqualified
	Component
)

var statusNames = map[string]Status{
	"fully-qualified":     FullyQualified,
	"minimally-qualified": MinimallyQualified,
	"unqualified":         Unqualified,
	"component":           Component,
}

// Skin tone modifier runes U+1F3FB..U+1F3FF, in increasing darkness.
const (
	toneFirst = 0x1F3FB
	toneLast  = 0x1F3FF
)

// Tone values 1..5 are the single Fitzpatrick tones; 6..25 are the two
// person combinations ordered by the first person's tone, then the
// second's. 0 means no tone. The numbering matches the SkinTone enum of
// the root package.
const (
	singleTones = 5
	maxTone     = 25
)

// Entry is one fully-qualified emoji from the data file.
type Entry struct {
	Emoji   string
	Name    string
	Group   string // CLDR group header, e.g. "Smileys & Emotion"
	Major   int    // emoji version, e.g. E13.1 -> 13, 1
	Minor   int
	Tone    int  // 0 for no tone; see tone numbering above
	HasTone bool // true for every member of a skin tone family

	// Variations are the minimally-qualified and unqualified forms of
	// this entry (the sequence minus variation selectors).
	Variations []string

	// FamilyIndex and FamilyLen identify the skin tone family as a range
	// of entry indexes, starting at the default representative. Zero
	// FamilyLen means no family.
	FamilyIndex int
	FamilyLen   int
}

// Parse reads an emoji-test.txt data file and returns the fully-qualified
// entries in CLDR recommended order, with skin tone families linked and
// each family reordered into canonical tone progression.
func Parse(r io.Reader) ([]Entry, error) {
	entries, err := scan(r)
	if err != nil {
		return nil, err
	}
	return linkFamilies(entries), nil
}

// scan does the line-by-line pass: qualification handling, tone
// detection, variation attachment.
func scan(r io.Reader) ([]Entry, error) {
	var (
		entries  []Entry
		group    string
		lineno   int
		subStart int // index of the current subgroup's first entry
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "# group: "):
			group = strings.TrimPrefix(line, "# group: ")
			subStart = len(entries)
			continue
		case strings.HasPrefix(line, "# subgroup: "):
			subStart = len(entries)
			continue
		case strings.HasPrefix(line, "#"):
			continue
		}

		e, status, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}

		switch status {
		case Component:
			// Skin tone swatches, hair components. Not standalone emoji.
			continue

		case MinimallyQualified, Unqualified:
			if len(entries) == 0 {
				return nil, fmt.Errorf("line %d: %w", lineno, ErrOrphanVariation)
			}
			last := &entries[len(entries)-1]
			last.Variations = append(last.Variations, e.Emoji)
			continue

		case FullyQualified:
			e.Group = group
			if e.HasTone {
				// Mark the base this variant belongs to: the nearest
				// preceding tone-free entry of the subgroup. The base keeps
				// Tone == 0 after being marked, so later variants of the
				// same family still find it.
				base := -1
				for i := len(entries) - 1; i >= subStart; i-- {
					if entries[i].Tone == 0 {
						base = i
						break
					}
				}
				if base < 0 {
					return nil, fmt.Errorf("line %d: %w", lineno, ErrOrphanSkinTone)
				}
				entries[base].HasTone = true
			}
			entries = append(entries, e)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// parseLine parses one data line:
//
//	0023 FE0F 20E3 ; fully-qualified # #️⃣ E0.6 keycap: #
func parseLine(line string) (Entry, Status, error) {
	codepoints, rest, ok := strings.Cut(line, ";")
	if !ok {
		return Entry{}, 0, ErrMalformedLine
	}
	statusField, comment, ok := strings.Cut(rest, "#")
	if !ok {
		return Entry{}, 0, ErrMalformedLine
	}
	status, ok := statusNames[strings.TrimSpace(statusField)]
	if !ok {
		return Entry{}, 0, fmt.Errorf("%w: %q", ErrUnknownStatus, strings.TrimSpace(statusField))
	}

	var sb strings.Builder
	for _, cp := range strings.Fields(codepoints) {
		v, err := strconv.ParseUint(cp, 16, 32)
		if err != nil {
			return Entry{}, 0, fmt.Errorf("%w: bad code point %q", ErrMalformedLine, cp)
		}
		sb.WriteRune(rune(v))
	}

	// Comment is " <emoji> E<version> <name>".
	fields := strings.SplitN(strings.TrimSpace(comment), " ", 3)
	if len(fields) != 3 || !strings.HasPrefix(fields[1], "E") {
		return Entry{}, 0, ErrMalformedLine
	}
	major, minor, err := parseVersion(fields[1][1:])
	if err != nil {
		return Entry{}, 0, err
	}

	e := Entry{
		Emoji: sb.String(),
		Name:  fields[2],
		Major: major,
		Minor: minor,
	}
	e.Tone, e.HasTone, err = toneOf(e.Emoji)
	if err != nil {
		return Entry{}, 0, err
	}
	return e, status, nil
}

func parseVersion(s string) (major, minor int, err error) {
	maj, min, _ := strings.Cut(s, ".")
	major, err = strconv.Atoi(maj)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad version %q", ErrMalformedLine, s)
	}
	if min != "" {
		minor, err = strconv.Atoi(min)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: bad version %q", ErrMalformedLine, s)
		}
	}
	return major, minor, nil
}

// toneOf computes the tone value from the modifier runes in the sequence.
// Two modifiers of the same tone collapse to the single tone value, the
// way a lone modifier on a two person emoji applies to both persons.
func toneOf(s string) (tone int, has bool, err error) {
	var tones []int
	for _, r := range s {
		if r >= toneFirst && r <= toneLast {
			tones = append(tones, int(r-toneFirst)+1)
		}
	}
	switch len(tones) {
	case 0:
		return 0, false, nil
	case 1:
		return tones[0], true, nil
	case 2:
		a, b := tones[0], tones[1]
		if a == b {
			return a, true, nil
		}
		if b < a {
			b++
		}
		return singleTones + 1 + (a-1)*4 + (b - 2), true, nil
	default:
		return 0, false, fmt.Errorf("unicode: %d tone modifiers in %q", len(tones), s)
	}
}

// linkFamilies assigns FamilyIndex/FamilyLen and reorders each family
// into canonical tone progression (default, single tones, combinations).
// Families are contiguous in the data file: the default representative
// immediately precedes its variants.
func linkFamilies(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	for i := 0; i < len(entries); {
		if !entries[i].HasTone {
			out = append(out, entries[i])
			i++
			continue
		}

		// entries[i] is a family representative; collect the variants.
		j := i + 1
		for j < len(entries) && entries[j].Tone != 0 {
			j++
		}
		family := slices.Clone(entries[i:j])
		slices.SortStableFunc(family, func(a, b Entry) int {
			return a.Tone - b.Tone
		})
		start := len(out)
		for k := range family {
			family[k].FamilyIndex = start
			family[k].FamilyLen = len(family)
		}
		out = append(out, family...)
		i = j
	}
	return out
}
