package emoji

import "iter"

// Emoji is a single entry in the emoji dataset.
//
// An Emoji is immutable: every accessor returns data fixed at generation
// time, so values may be shared freely across goroutines. Entries are
// obtained from the package-level lookup functions; the zero value is not
// a valid Emoji.
type Emoji struct {
	pos         uint16
	emoji       string
	name        string
	group       Group
	version     UnicodeVersion
	tone        SkinTone
	familyIndex uint16
	familyLen   uint8
	shortcodes  []string
	variations  []string
}

// String returns the emoji as a string: the exact code point sequence
// including any variation selectors or skin tone modifiers.
func (e *Emoji) String() string { return e.emoji }

// Name returns the CLDR short name, e.g. "face with raised eyebrow".
func (e *Emoji) Name() string { return e.name }

// Group returns the top-level category this emoji belongs to.
func (e *Emoji) Group() Group { return e.group }

// UnicodeVersion returns the emoji specification version in which this
// entry was introduced.
func (e *Emoji) UnicodeVersion() UnicodeVersion { return e.version }

// Shortcode returns the primary gemoji shortcode for this emoji, e.g.
// "rocket" for U+1F680. The second return value is false if the emoji has
// no shortcode assigned.
func (e *Emoji) Shortcode() (string, bool) {
	if len(e.shortcodes) == 0 {
		return "", false
	}
	return e.shortcodes[0], true
}

// Shortcodes returns a sequence over all gemoji shortcodes assigned to
// this emoji, primary shortcode first. The sequence is empty if the emoji
// has none.
func (e *Emoji) Shortcodes() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, s := range e.shortcodes {
			if !yield(s) {
				return
			}
		}
	}
}

// SkinTone returns this emoji's position within its skin tone family.
// The second return value is false if the emoji has no skin tone
// variations; the default representative of a family reports
// (SkinToneDefault, true).
func (e *Emoji) SkinTone() (SkinTone, bool) {
	if e.familyLen == 0 {
		return SkinToneDefault, false
	}
	return e.tone, true
}

// SkinTones returns a sequence over every member of this emoji's skin
// tone family, starting with the default representative and following the
// canonical tone progression (see SkinTone). The sequence is restartable:
// ranging over it again starts from the beginning.
//
// SkinTones returns nil if the emoji has no skin tone variations.
func (e *Emoji) SkinTones() iter.Seq[*Emoji] {
	if e.familyLen == 0 {
		return nil
	}
	start, end := int(e.familyIndex), int(e.familyIndex)+int(e.familyLen)
	return func(yield func(*Emoji) bool) {
		for i := start; i < end; i++ {
			if !yield(&emojis[i]) {
				return
			}
		}
	}
}

// WithSkinTone returns the member of this emoji's skin tone family with
// the given tone. It returns false if the emoji has no skin tone
// variations, or if the family has no member with that tone (single
// person families have no two-tone combinations).
func (e *Emoji) WithSkinTone(tone SkinTone) (*Emoji, bool) {
	if e.familyLen == 0 {
		return nil, false
	}
	end := int(e.familyIndex) + int(e.familyLen)
	for i := int(e.familyIndex); i < end; i++ {
		if emojis[i].tone == tone {
			return &emojis[i], true
		}
	}
	return nil, false
}

// isDefault reports whether this entry is yielded by Iter: either it has
// no skin tone family, or it is the family's default representative.
func (e *Emoji) isDefault() bool {
	return e.familyLen == 0 || e.tone == SkinToneDefault
}
