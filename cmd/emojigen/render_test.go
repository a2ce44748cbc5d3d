package main

import (
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/emoji/internal/unicode"
)

func TestGroupConst(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Smileys & Emotion", "GroupSmileysAndEmotion"},
		{"People & Body", "GroupPeopleAndBody"},
		{"Animals & Nature", "GroupAnimalsAndNature"},
		{"Food & Drink", "GroupFoodAndDrink"},
		{"Travel & Places", "GroupTravelAndPlaces"},
		{"Activities", "GroupActivities"},
		{"Objects", "GroupObjects"},
		{"Symbols", "GroupSymbols"},
		{"Flags", "GroupFlags"},
	}
	for _, tt := range tests {
		if got := groupConst(tt.header); got != tt.want {
			t.Errorf("groupConst(%q) = %q, want %q", tt.header, got, tt.want)
		}
		if !groupConsts[tt.want] {
			t.Errorf("%q missing from groupConsts", tt.want)
		}
	}
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestMerge(t *testing.T) {
	entries := []unicode.Entry{
		{Emoji: "\U0001F600", Name: "grinning face", Group: "Smileys & Emotion", Major: 1},
		{Emoji: "☹️", Name: "frowning face", Group: "Smileys & Emotion", Minor: 7, Variations: []string{"☹"}},
	}
	aliases := map[string][]string{
		"\U0001F600": {"grinning"},
		"☹":          {"frowning_face"}, // keyed by the unqualified form
		"\U0001F999": {"llama"},         // not in the dataset, skipped
	}
	rows, err := merge(entries, aliases, discard())
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if got := rows[0].Shortcodes; len(got) != 1 || got[0] != "grinning" {
		t.Errorf("rows[0].Shortcodes = %q, want [grinning]", got)
	}
	if got := rows[1].Shortcodes; len(got) != 1 || got[0] != "frowning_face" {
		t.Errorf("rows[1].Shortcodes = %q, want [frowning_face]", got)
	}
}

func TestMergeErrors(t *testing.T) {
	tests := []struct {
		name    string
		entries []unicode.Entry
		aliases map[string][]string
		want    error
	}{
		{
			"duplicate emoji",
			[]unicode.Entry{
				{Emoji: "a", Name: "one", Group: "Flags"},
				{Emoji: "a", Name: "two", Group: "Flags"},
			},
			nil,
			ErrDuplicateEmoji,
		},
		{
			"duplicate shortcode across emoji",
			[]unicode.Entry{
				{Emoji: "a", Name: "one", Group: "Flags"},
				{Emoji: "b", Name: "two", Group: "Flags"},
			},
			map[string][]string{"a": {"x"}, "b": {"x"}},
			ErrDuplicateShortcode,
		},
		{
			"unknown group",
			[]unicode.Entry{{Emoji: "a", Name: "one", Group: "Extended-Pictographic"}},
			nil,
			ErrUnknownGroup,
		},
		{
			"wrong family size",
			[]unicode.Entry{
				{Emoji: "a", Name: "one", Group: "Flags", HasTone: true, FamilyIndex: 0, FamilyLen: 2},
				{Emoji: "b", Name: "one: light", Group: "Flags", Tone: 1, HasTone: true, FamilyIndex: 0, FamilyLen: 2},
			},
			nil,
			ErrBadFamily,
		},
		{
			"no default representative",
			[]unicode.Entry{
				{Emoji: "a", Name: "one: light", Group: "Flags", Tone: 1, HasTone: true, FamilyIndex: 0, FamilyLen: 6},
			},
			nil,
			ErrBadFamily,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := merge(tt.entries, tt.aliases, discard())
			if !errors.Is(err, tt.want) {
				t.Errorf("merge error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEntryLiteral(t *testing.T) {
	tests := []struct {
		name string
		pos  int
		r    row
		want string
	}{
		{
			"plain entry",
			0,
			row{Entry: unicode.Entry{Emoji: "\U0001F600", Name: "grinning face", Group: "Smileys & Emotion", Major: 1}},
			`{pos: 0, emoji: "\U0001f600", name: "grinning face", group: GroupSmileysAndEmotion, version: UnicodeVersion{1, 0}},`,
		},
		{
			"shortcodes and variations",
			7,
			row{
				Entry: unicode.Entry{
					Emoji: "☹️", Name: "frowning face", Group: "Smileys & Emotion",
					Minor: 7, Variations: []string{"☹"},
				},
				Shortcodes: []string{"frowning_face"},
			},
			`{pos: 7, emoji: "☹️", name: "frowning face", group: GroupSmileysAndEmotion, ` +
				`version: UnicodeVersion{0, 7}, shortcodes: []string{"frowning_face"}, variations: []string{"☹"}},`,
		},
		{
			"family representative",
			372,
			row{Entry: unicode.Entry{
				Emoji: "\U0001F44B", Name: "waving hand", Group: "People & Body",
				HasTone: true, FamilyIndex: 372, FamilyLen: 6,
			}},
			`{pos: 372, emoji: "\U0001f44b", name: "waving hand", group: GroupPeopleAndBody, version: UnicodeVersion{0, 0}, familyIndex: 372, familyLen: 6},`,
		},
		{
			"family member",
			373,
			row{Entry: unicode.Entry{
				Emoji: "\U0001F44B\U0001F3FB", Name: "waving hand: light skin tone", Group: "People & Body",
				Major: 1, Tone: 1, HasTone: true, FamilyIndex: 372, FamilyLen: 6,
			}},
			`{pos: 373, emoji: "\U0001f44b\U0001f3fb", name: "waving hand: light skin tone", group: GroupPeopleAndBody, version: UnicodeVersion{1, 0}, tone: SkinToneLight, familyIndex: 372, familyLen: 6},`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := entryLiteral(tt.pos, tt.r); got != tt.want {
				t.Errorf("entryLiteral:\n got %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestRender(t *testing.T) {
	rows := []row{
		{Entry: unicode.Entry{Emoji: "\U0001F600", Name: "grinning face", Group: "Smileys & Emotion", Major: 1}},
	}
	src, err := render(rows, "emoji-test.txt", "emoji.json")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	out := string(src)
	for _, want := range []string{
		"// Code generated by emojigen; DO NOT EDIT.",
		"package emoji",
		"var emojis = [...]Emoji{",
		`name: "grinning face"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered source missing %q", want)
		}
	}
}
