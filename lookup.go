package emoji

import (
	"iter"
	"sync"
	"time"
)

// Lookup indexes over the generated table. Built once, on first use; the
// table itself is never written after generation, so readers need no
// locking once ensureIndexes returns.
var (
	indexOnce      sync.Once
	unicodeIndex   map[string]*Emoji
	shortcodeIndex map[string]*Emoji
	groupIndex     [groupCount][]*Emoji
)

// ensureIndexes builds the lookup indexes exactly once. Safe to call
// concurrently; callers racing on first use all observe the finished
// indexes.
func ensureIndexes() {
	indexOnce.Do(buildIndexes)
}

func buildIndexes() {
	start := time.Now()

	unicodeIndex = make(map[string]*Emoji, 2*len(emojis))
	shortcodeIndex = make(map[string]*Emoji, len(emojis))
	for i := range emojis {
		e := &emojis[i]
		unicodeIndex[e.emoji] = e
		// Minimally qualified and unqualified forms resolve to the
		// fully qualified entry.
		for _, v := range e.variations {
			unicodeIndex[v] = e
		}
		for _, s := range e.shortcodes {
			shortcodeIndex[s] = e
		}
		if e.isDefault() {
			groupIndex[e.group] = append(groupIndex[e.group], e)
		}
	}

	Logger().Debug("emoji: lookup indexes built",
		"entries", len(emojis),
		"unicode_keys", len(unicodeIndex),
		"shortcodes", len(shortcodeIndex),
		"elapsed", time.Since(start))
}

// Get returns the emoji for the exact Unicode string s, or nil if s is
// not an emoji in the dataset. No normalization is performed, but
// minimally qualified and unqualified forms (the sequence without its
// U+FE0F variation selectors) resolve to the fully qualified entry:
//
//	emoji.Get("☹") == emoji.Get("☹️")
func Get(s string) *Emoji {
	ensureIndexes()
	return unicodeIndex[s]
}

// GetByShortcode returns the emoji for the gemoji shortcode s, or nil if
// no emoji has that shortcode. The match is exact and case-sensitive;
// pass the bare name without colons, e.g. "rocket" not ":rocket:".
func GetByShortcode(s string) *Emoji {
	ensureIndexes()
	return shortcodeIndex[s]
}

// Iter returns a lazy, restartable sequence over all emojis in the CLDR
// recommended order. Skin tone variants other than the default
// representative are excluded; reach them through SkinTones on the
// representative. Ranging over the sequence again restarts it from the
// beginning.
func Iter() iter.Seq[*Emoji] {
	return func(yield func(*Emoji) bool) {
		for i := range emojis {
			e := &emojis[i]
			if !e.isDefault() {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}
