package emoji

import "testing"

func TestUnicodeVersionOrdering(t *testing.T) {
	tests := []struct {
		a, b UnicodeVersion
		want int
	}{
		{UnicodeVersion{13, 0}, UnicodeVersion{12, 0}, 1},
		{UnicodeVersion{12, 1}, UnicodeVersion{12, 0}, 1},
		{UnicodeVersion{12, 0}, UnicodeVersion{12, 0}, 0},
		{UnicodeVersion{12, 0}, UnicodeVersion{12, 1}, -1},
		{UnicodeVersion{11, 0}, UnicodeVersion{12, 1}, -1},
		{UnicodeVersion{0, 6}, UnicodeVersion{1, 0}, -1},
	}
	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got := tt.a.Less(tt.b); got != (tt.want < 0) {
			t.Errorf("%v.Less(%v) = %v, want %v", tt.a, tt.b, got, tt.want < 0)
		}
	}
}

func TestUnicodeVersionString(t *testing.T) {
	if got := (UnicodeVersion{13, 1}).String(); got != "E13.1" {
		t.Errorf("String() = %q, want %q", got, "E13.1")
	}
	if got := (UnicodeVersion{0, 6}).String(); got != "E0.6" {
		t.Errorf("String() = %q, want %q", got, "E0.6")
	}
}
