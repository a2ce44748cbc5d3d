package emoji

import (
	"fmt"
	"strings"
	"testing"
)

func TestEmojiAccessors(t *testing.T) {
	e := Get("\U0001F680")
	if e == nil {
		t.Fatal("Get(rocket) = nil")
	}
	if e.String() != "\U0001F680" {
		t.Errorf("String() = %q, want %q", e.String(), "\U0001F680")
	}
	if e.Name() != "rocket" {
		t.Errorf("Name() = %q, want %q", e.Name(), "rocket")
	}
	if e.Group() != GroupTravelAndPlaces {
		t.Errorf("Group() = %v, want %v", e.Group(), GroupTravelAndPlaces)
	}
	if v := e.UnicodeVersion(); v.Major != 0 || v.Minor != 6 {
		t.Errorf("UnicodeVersion() = %v, want E0.6", v)
	}
	sc, ok := e.Shortcode()
	if !ok || sc != "rocket" {
		t.Errorf("Shortcode() = %q, %v, want %q, true", sc, ok, "rocket")
	}
	if _, ok := e.SkinTone(); ok {
		t.Error("SkinTone() reported a tone for rocket")
	}
	if e.SkinTones() != nil {
		t.Error("SkinTones() != nil for rocket")
	}
}

// Emoji implements fmt.Stringer, so entries print as the emoji itself.
func TestEmojiStringer(t *testing.T) {
	e := Get("\U0001F600")
	if e == nil {
		t.Fatal("Get(grinning face) = nil")
	}
	if s := fmt.Sprint(e); s != "\U0001F600" {
		t.Errorf("fmt.Sprint = %q, want %q", s, "\U0001F600")
	}
}

// The primary shortcode is the first one yielded by Shortcodes.
func TestShortcodeIsFirstOfShortcodes(t *testing.T) {
	for i := range emojis {
		e := &emojis[i]
		primary, ok := e.Shortcode()
		first, any := "", false
		for sc := range e.Shortcodes() {
			first, any = sc, true
			break
		}
		if ok != any || primary != first {
			t.Fatalf("%q: Shortcode() = %q, %v but Shortcodes() starts with %q, %v",
				e.Name(), primary, ok, first, any)
		}
	}
}

func TestSkinTonesRaisingHands(t *testing.T) {
	base := GetByShortcode("raised_hands")
	if base == nil {
		t.Fatal("GetByShortcode(raised_hands) = nil")
	}

	var family []*Emoji
	for v := range base.SkinTones() {
		family = append(family, v)
	}
	if len(family) != 6 {
		t.Fatalf("len(SkinTones()) = %d, want 6", len(family))
	}

	wantTones := []SkinTone{
		SkinToneDefault, SkinToneLight, SkinToneMediumLight,
		SkinToneMedium, SkinToneMediumDark, SkinToneDark,
	}
	for i, v := range family {
		tone, ok := v.SkinTone()
		if !ok || tone != wantTones[i] {
			t.Errorf("family[%d].SkinTone() = %v, %v, want %v", i, tone, ok, wantTones[i])
		}
	}

	// The first member is the base itself, with no modifier appended.
	if family[0] != base {
		t.Errorf("family[0] = %q, want the base entry", family[0].Name())
	}
	for _, v := range family[1:] {
		if !strings.HasPrefix(v.String(), base.String()) {
			t.Errorf("variant %q does not extend the base sequence", v.Name())
		}
	}
}

// skinToneOrder is the canonical family progression.
var skinToneOrder = []SkinTone{
	SkinToneDefault,
	SkinToneLight, SkinToneMediumLight, SkinToneMedium,
	SkinToneMediumDark, SkinToneDark,
	SkinToneLightAndMediumLight, SkinToneLightAndMedium,
	SkinToneLightAndMediumDark, SkinToneLightAndDark,
	SkinToneMediumLightAndLight, SkinToneMediumLightAndMedium,
	SkinToneMediumLightAndMediumDark, SkinToneMediumLightAndDark,
	SkinToneMediumAndLight, SkinToneMediumAndMediumLight,
	SkinToneMediumAndMediumDark, SkinToneMediumAndDark,
	SkinToneMediumDarkAndLight, SkinToneMediumDarkAndMediumLight,
	SkinToneMediumDarkAndMedium, SkinToneMediumDarkAndDark,
	SkinToneDarkAndLight, SkinToneDarkAndMediumLight,
	SkinToneDarkAndMedium, SkinToneDarkAndMediumDark,
}

// Every family has 6 or 26 members in canonical tone progression, and
// WithSkinTone round-trips between any member and the default.
func TestSkinToneFamilies(t *testing.T) {
	families := 0
	for e := range Iter() {
		if _, ok := e.SkinTone(); !ok {
			if e.SkinTones() != nil {
				t.Fatalf("%q: SkinTones() != nil without a tone", e.Name())
			}
			continue
		}
		families++

		var members []*Emoji
		for v := range e.SkinTones() {
			members = append(members, v)
		}
		if len(members) != 6 && len(members) != 26 {
			t.Fatalf("%q: family has %d members", e.Name(), len(members))
		}
		for i, v := range members {
			tone, ok := v.SkinTone()
			if !ok || tone != skinToneOrder[i] {
				t.Fatalf("%q: member %d has tone %v, want %v", e.Name(), i, tone, skinToneOrder[i])
			}
			got, ok := e.WithSkinTone(tone)
			if !ok || got != v {
				t.Fatalf("%q: WithSkinTone(%v) = %v, %v, want member %d", e.Name(), tone, got, ok, i)
			}
			back, ok := v.WithSkinTone(SkinToneDefault)
			if !ok || back != members[0] {
				t.Fatalf("%q: WithSkinTone(Default) from %v did not return the base", e.Name(), tone)
			}
		}
	}
	if families == 0 {
		t.Fatal("no skin tone families in dataset")
	}
}

func TestWithSkinToneUnavailable(t *testing.T) {
	rocket := Get("\U0001F680")
	if _, ok := rocket.WithSkinTone(SkinToneLight); ok {
		t.Error("WithSkinTone on a toneless emoji succeeded")
	}

	wave := GetByShortcode("wave")
	if wave == nil {
		t.Fatal("GetByShortcode(wave) = nil")
	}
	if _, ok := wave.WithSkinTone(SkinToneLightAndDark); ok {
		t.Error("single person emoji returned a two person combination")
	}
}
