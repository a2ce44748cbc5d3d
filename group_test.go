package emoji

import "testing"

func TestGroupString(t *testing.T) {
	tests := []struct {
		group Group
		want  string
	}{
		{GroupSmileysAndEmotion, "Smileys & Emotion"},
		{GroupPeopleAndBody, "People & Body"},
		{GroupAnimalsAndNature, "Animals & Nature"},
		{GroupFoodAndDrink, "Food & Drink"},
		{GroupTravelAndPlaces, "Travel & Places"},
		{GroupActivities, "Activities"},
		{GroupObjects, "Objects"},
		{GroupSymbols, "Symbols"},
		{GroupFlags, "Flags"},
		{Group(-1), "Unknown"},
		{Group(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.group.String(); got != tt.want {
			t.Errorf("Group(%d).String() = %q, want %q", tt.group, got, tt.want)
		}
	}
}

func TestParseGroup(t *testing.T) {
	for g := range Groups() {
		got, ok := ParseGroup(g.String())
		if !ok || got != g {
			t.Errorf("ParseGroup(%q) = %v, %v, want %v", g.String(), got, ok, g)
		}
	}
	if _, ok := ParseGroup("Paperwork"); ok {
		t.Error("ParseGroup accepted an unknown name")
	}
	if _, ok := ParseGroup("smileys & emotion"); ok {
		t.Error("ParseGroup is not case-sensitive")
	}
}

func TestGroupEmojisMembership(t *testing.T) {
	for g := range Groups() {
		count := 0
		for e := range g.Emojis() {
			if e.Group() != g {
				t.Fatalf("%v.Emojis() yielded %q from group %v", g, e.Name(), e.Group())
			}
			count++
		}
		if count == 0 {
			t.Errorf("group %v has no emojis", g)
		}
	}
}

func TestGroupEmojisOutOfRange(t *testing.T) {
	for range Group(99).Emojis() {
		t.Fatal("out of range group yielded an emoji")
	}
}

// Concatenating every group's emojis in group order reproduces Iter
// exactly: the groups partition the representatives with no overlap and
// no omission.
func TestGroupsPartitionIter(t *testing.T) {
	var concat []*Emoji
	for g := range Groups() {
		for e := range g.Emojis() {
			concat = append(concat, e)
		}
	}
	var all []*Emoji
	for e := range Iter() {
		all = append(all, e)
	}
	if len(concat) != len(all) {
		t.Fatalf("groups yield %d emojis, Iter yields %d", len(concat), len(all))
	}
	for i := range all {
		if concat[i] != all[i] {
			t.Fatalf("order differs at %d: %q vs %q", i, concat[i].Name(), all[i].Name())
		}
	}
}

// Group members keep their relative order from the recommended order.
func TestGroupEmojisOrdered(t *testing.T) {
	for g := range Groups() {
		last := -1
		for e := range g.Emojis() {
			if int(e.pos) <= last {
				t.Fatalf("%v.Emojis() out of order at %q", g, e.Name())
			}
			last = int(e.pos)
		}
	}
}
