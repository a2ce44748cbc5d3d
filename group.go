package emoji

import "iter"

// Group is a top-level emoji category from the Unicode CLDR data.
//
// The Component category of emoji-test.txt (skin tone swatches, hair
// components, regional indicators) carries no standalone emoji and is
// excluded from the dataset, so it has no Group value.
type Group int

const (
	GroupSmileysAndEmotion Group = iota
	GroupPeopleAndBody
	GroupAnimalsAndNature
	GroupFoodAndDrink
	GroupTravelAndPlaces
	GroupActivities
	GroupObjects
	GroupSymbols
	GroupFlags

	groupCount = iota
)

// groupNames maps Group to the CLDR group header names.
var groupNames = [groupCount]string{
	GroupSmileysAndEmotion: "Smileys & Emotion",
	GroupPeopleAndBody:     "People & Body",
	GroupAnimalsAndNature:  "Animals & Nature",
	GroupFoodAndDrink:      "Food & Drink",
	GroupTravelAndPlaces:   "Travel & Places",
	GroupActivities:        "Activities",
	GroupObjects:           "Objects",
	GroupSymbols:           "Symbols",
	GroupFlags:             "Flags",
}

// String returns the CLDR name of the group, e.g. "Smileys & Emotion".
func (g Group) String() string {
	if g < 0 || int(g) >= groupCount {
		return "Unknown"
	}
	return groupNames[g]
}

// ParseGroup returns the Group with the given CLDR name. It returns false
// if the name does not match any group. Matching is exact and
// case-sensitive.
func ParseGroup(name string) (Group, bool) {
	for g, n := range groupNames {
		if n == name {
			return Group(g), true
		}
	}
	return 0, false
}

// Groups returns a sequence over all groups in CLDR order.
func Groups() iter.Seq[Group] {
	return func(yield func(Group) bool) {
		for g := Group(0); int(g) < groupCount; g++ {
			if !yield(g) {
				return
			}
		}
	}
}

// Emojis returns a lazy, restartable sequence over the emojis in this
// group, in CLDR recommended order. Skin tone variants other than the
// default representative are excluded, matching Iter. An out of range
// group yields nothing.
func (g Group) Emojis() iter.Seq[*Emoji] {
	return func(yield func(*Emoji) bool) {
		if g < 0 || int(g) >= groupCount {
			return
		}
		ensureIndexes()
		for _, e := range groupIndex[g] {
			if !yield(e) {
				return
			}
		}
	}
}
