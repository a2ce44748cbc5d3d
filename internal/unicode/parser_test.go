package unicode

import (
	"errors"
	"strings"
	"testing"
)

const sample = `# emoji-test.txt
# Date: 2023-06-05
# group: Smileys & Emotion

# subgroup: face-smiling
1F600                                                  ; fully-qualified     # 😀 E1.0 grinning face

# subgroup: face-concerned
2639 FE0F                                              ; fully-qualified     # ☹️ E0.7 frowning face
2639                                                   ; unqualified         # ☹ E0.7 frowning face

# group: People & Body

# subgroup: hand-fingers-open
1F44B                                                  ; fully-qualified     # 👋 E0.6 waving hand
1F44B 1F3FB                                            ; fully-qualified     # 👋🏻 E1.0 waving hand: light skin tone
1F44B 1F3FC                                            ; fully-qualified     # 👋🏼 E1.0 waving hand: medium-light skin tone
1F44B 1F3FD                                            ; fully-qualified     # 👋🏽 E1.0 waving hand: medium skin tone
1F44B 1F3FE                                            ; fully-qualified     # 👋🏾 E1.0 waving hand: medium-dark skin tone
1F44B 1F3FF                                            ; fully-qualified     # 👋🏿 E1.0 waving hand: dark skin tone

# group: Component

# subgroup: skin-tone
1F3FB                                                  ; component           # 🏻 E1.0 light skin tone
`

func TestParse(t *testing.T) {
	entries, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	// Components are dropped: grinning face, frowning face, and the six
	// member waving hand family.
	if len(entries) != 8 {
		t.Fatalf("len(entries) = %d, want 8", len(entries))
	}

	grin := entries[0]
	if grin.Name != "grinning face" || grin.Group != "Smileys & Emotion" {
		t.Errorf("entries[0] = %q in %q", grin.Name, grin.Group)
	}
	if grin.Major != 1 || grin.Minor != 0 {
		t.Errorf("grinning face version = E%d.%d, want E1.0", grin.Major, grin.Minor)
	}
	if grin.Emoji != "\U0001F600" {
		t.Errorf("grinning face emoji = %q", grin.Emoji)
	}

	frown := entries[1]
	if frown.Emoji != "☹️" {
		t.Errorf("frowning face emoji = %q", frown.Emoji)
	}
	if frown.Minor != 7 {
		t.Errorf("frowning face minor version = %d, want 7", frown.Minor)
	}
	if len(frown.Variations) != 1 || frown.Variations[0] != "☹" {
		t.Errorf("frowning face variations = %q, want the unqualified form", frown.Variations)
	}
}

func TestParseSkinToneFamily(t *testing.T) {
	entries, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	family := entries[2:8]
	if family[0].Name != "waving hand" || family[0].Tone != 0 {
		t.Fatalf("family[0] = %q tone %d", family[0].Name, family[0].Tone)
	}
	for i, e := range family {
		if !e.HasTone {
			t.Errorf("family[%d] %q not marked as family member", i, e.Name)
		}
		if e.FamilyIndex != 2 || e.FamilyLen != 6 {
			t.Errorf("family[%d] linked to [%d,+%d), want [2,+6)", i, e.FamilyIndex, e.FamilyLen)
		}
		if e.Tone != i {
			t.Errorf("family[%d].Tone = %d, want %d", i, e.Tone, i)
		}
	}
}

// Variants arrive in file order; linkFamilies must emit them in tone
// order regardless.
func TestParseReordersFamily(t *testing.T) {
	const shuffled = `# group: People & Body
# subgroup: hand-fingers-open
1F44B ; fully-qualified # 👋 E0.6 waving hand
1F44B 1F3FC ; fully-qualified # 👋🏼 E1.0 waving hand: medium-light skin tone
1F44B 1F3FB ; fully-qualified # 👋🏻 E1.0 waving hand: light skin tone
`
	entries, err := Parse(strings.NewReader(shuffled))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3", len(entries))
	}
	for i, e := range entries {
		if e.Tone != i {
			t.Errorf("entries[%d].Tone = %d, want %d", i, e.Tone, i)
		}
	}
}

// Every variant of a family must attach to the same base: the nearest
// preceding tone-free entry of the subgroup, even after that base has
// been marked by an earlier variant, and even when another tone-free
// emoji precedes the family.
func TestParseFamilyBaseAttachment(t *testing.T) {
	const input = `# group: People & Body
# subgroup: hand-fingers-open
1F590 FE0F ; fully-qualified # 🖐️ E0.7 hand with fingers splayed
1F44B ; fully-qualified # 👋 E0.6 waving hand
1F44B 1F3FB ; fully-qualified # 👋🏻 E1.0 waving hand: light skin tone
1F44B 1F3FC ; fully-qualified # 👋🏼 E1.0 waving hand: medium-light skin tone
1F44B 1F3FD ; fully-qualified # 👋🏽 E1.0 waving hand: medium skin tone
`
	entries, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("len(entries) = %d, want 5", len(entries))
	}
	if splayed := entries[0]; splayed.HasTone || splayed.FamilyLen != 0 {
		t.Errorf("%q pulled into a family: tone %v, len %d",
			splayed.Name, splayed.HasTone, splayed.FamilyLen)
	}
	for i, e := range entries[1:] {
		if e.FamilyIndex != 1 || e.FamilyLen != 4 {
			t.Errorf("family member %d linked to [%d,+%d), want [1,+4)", i, e.FamilyIndex, e.FamilyLen)
		}
	}
}

func TestParseTwoPersonTones(t *testing.T) {
	tests := []struct {
		name string
		line string
		want int
	}{
		{"single", "1F44B 1F3FB ; fully-qualified # 👋🏻 E1.0 waving hand: light skin tone", 1},
		{"pair ascending", "1FAF1 1F3FB 200D 1FAF2 1F3FE ; fully-qualified # x E14.0 handshake: light skin tone, medium-dark skin tone", 8},
		{"pair descending", "1FAF1 1F3FF 200D 1FAF2 1F3FE ; fully-qualified # x E14.0 handshake: dark skin tone, medium-dark skin tone", 25},
		{"pair equal collapses", "1F469 1F3FD 200D 2764 FE0F 200D 1F468 1F3FD ; fully-qualified # x E13.1 couple with heart: woman, man, medium skin tone", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, status, err := parseLine(tt.line)
			if err != nil {
				t.Fatalf("parseLine: %v", err)
			}
			if status != FullyQualified {
				t.Fatalf("status = %v, want FullyQualified", status)
			}
			if !e.HasTone || e.Tone != tt.want {
				t.Errorf("Tone = %d (has %v), want %d", e.Tone, e.HasTone, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{
			"missing semicolon",
			"# group: Flags\n1F1FA 1F1F8 fully-qualified # 🇺🇸 E0.6 flag: United States\n",
			ErrMalformedLine,
		},
		{
			"unknown status",
			"# group: Flags\n1F1FA 1F1F8 ; overqualified # 🇺🇸 E0.6 flag: United States\n",
			ErrUnknownStatus,
		},
		{
			"orphan variation",
			"# group: Smileys & Emotion\n2639 ; unqualified # ☹ E0.7 frowning face\n",
			ErrOrphanVariation,
		},
		{
			"orphan skin tone",
			"# group: People & Body\n# subgroup: hand-fingers-open\n1F44B 1F3FB ; fully-qualified # 👋🏻 E1.0 waving hand: light skin tone\n",
			ErrOrphanSkinTone,
		},
		{
			"bad code point",
			"# group: Flags\nZZZZ ; fully-qualified # x E0.6 bogus\n",
			ErrMalformedLine,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse error = %v, want %v", err, tt.want)
			}
		})
	}
}
