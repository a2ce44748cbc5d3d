package emoji

import (
	"sync"
	"testing"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string // expected Name, "" for no match
	}{
		{"rocket", "\U0001F680", "rocket"},
		{"raised eyebrow", "\U0001F928", "face with raised eyebrow"},
		{"grinning face", "\U0001F600", "grinning face"},
		{"flag sequence", "\U0001F1FA\U0001F1F8", "flag: United States"},
		{"zwj sequence", "\U0001F441️‍\U0001F5E8️", "eye in speech bubble"},
		{"skin tone variant", "\U0001F64C\U0001F3FD", "raising hands: medium skin tone"},
		{"not an emoji", "hello", ""},
		{"empty string", "", ""},
		{"kaomoji", "ʕっ•ᴥ•ʔっ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Get(tt.input)
			if tt.want == "" {
				if got != nil {
					t.Fatalf("Get(%q) = %v, want nil", tt.input, got.Name())
				}
				return
			}
			if got == nil {
				t.Fatalf("Get(%q) = nil, want %q", tt.input, tt.want)
			}
			if got.Name() != tt.want {
				t.Errorf("Get(%q).Name() = %q, want %q", tt.input, got.Name(), tt.want)
			}
		})
	}
}

func TestGetRaisedEyebrowGroup(t *testing.T) {
	e := Get("\U0001F928")
	if e == nil {
		t.Fatal("Get(raised eyebrow) = nil")
	}
	if e.Group() != GroupSmileysAndEmotion {
		t.Errorf("Group() = %v, want %v", e.Group(), GroupSmileysAndEmotion)
	}
}

// Unqualified forms (no variation selector) resolve to the fully
// qualified entry.
func TestGetVariation(t *testing.T) {
	qualified := Get("☹️")
	unqualified := Get("☹")
	if qualified == nil || unqualified == nil {
		t.Fatal("frowning face lookup failed")
	}
	if qualified != unqualified {
		t.Errorf("Get(unqualified) = %v, want the qualified entry %v", unqualified, qualified)
	}
}

func TestGetRoundTrip(t *testing.T) {
	for i := range emojis {
		e := &emojis[i]
		if got := Get(e.String()); got != e {
			t.Fatalf("Get(%q) = %v, want entry %q", e.String(), got, e.Name())
		}
	}
}

func TestGetByShortcode(t *testing.T) {
	tests := []struct {
		name      string
		shortcode string
		want      string
	}{
		{"rocket", "rocket", "rocket"},
		{"thumbsup alias", "thumbsup", "thumbs up"},
		{"plus one alias", "+1", "thumbs up"},
		{"unknown", "nonexistent_xyz", ""},
		{"colons not stripped", ":rocket:", ""},
		{"case sensitive", "Rocket", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetByShortcode(tt.shortcode)
			if tt.want == "" {
				if got != nil {
					t.Fatalf("GetByShortcode(%q) = %v, want nil", tt.shortcode, got.Name())
				}
				return
			}
			if got == nil {
				t.Fatalf("GetByShortcode(%q) = nil, want %q", tt.shortcode, tt.want)
			}
			if got.Name() != tt.want {
				t.Errorf("GetByShortcode(%q).Name() = %q, want %q", tt.shortcode, got.Name(), tt.want)
			}
		})
	}
}

func TestGetByShortcodeRoundTrip(t *testing.T) {
	for i := range emojis {
		e := &emojis[i]
		for sc := range e.Shortcodes() {
			if got := GetByShortcode(sc); got != e {
				t.Fatalf("GetByShortcode(%q) = %v, want %q", sc, got, e.Name())
			}
		}
	}
}

func TestIterOrderAndUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	lastPos := -1
	count := 0
	for e := range Iter() {
		if seen[e.String()] {
			t.Fatalf("Iter yielded %q twice", e.Name())
		}
		seen[e.String()] = true
		if int(e.pos) <= lastPos {
			t.Fatalf("Iter out of order at %q: pos %d after %d", e.Name(), e.pos, lastPos)
		}
		lastPos = int(e.pos)
		count++
	}
	if count == 0 {
		t.Fatal("Iter yielded nothing")
	}
}

func TestIterFirstEmoji(t *testing.T) {
	for e := range Iter() {
		if e.Name() != "grinning face" {
			t.Errorf("first emoji = %q, want %q", e.Name(), "grinning face")
		}
		break
	}
}

// Iter must be restartable: collecting twice yields identical sequences.
func TestIterRestartable(t *testing.T) {
	collect := func() []*Emoji {
		var out []*Emoji
		for e := range Iter() {
			out = append(out, e)
		}
		return out
	}
	a, b := collect(), collect()
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sequence differs at %d: %q vs %q", i, a[i].Name(), b[i].Name())
		}
	}
}

func TestIterOnlyDefaultSkinTones(t *testing.T) {
	defaults := 0
	for e := range Iter() {
		tone, ok := e.SkinTone()
		if ok && tone != SkinToneDefault {
			t.Fatalf("Iter yielded non-default variant %q", e.Name())
		}
		if ok {
			defaults++
		}
	}
	if defaults == 0 {
		t.Fatal("Iter yielded no skin tone family representatives")
	}
}

// First use may happen from many goroutines at once; index construction
// must be safe and every caller must observe the same finished indexes.
func TestConcurrentFirstUse(t *testing.T) {
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if Get("\U0001F680") == nil {
				t.Error("Get(rocket) = nil")
			}
			if GetByShortcode("rocket") == nil {
				t.Error("GetByShortcode(rocket) = nil")
			}
			for e := range Iter() {
				_ = e.Name()
			}
		}()
	}
	wg.Wait()
}
