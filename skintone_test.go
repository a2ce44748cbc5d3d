package emoji

import "testing"

func TestSkinToneString(t *testing.T) {
	tests := []struct {
		tone SkinTone
		want string
	}{
		{SkinToneDefault, "Default"},
		{SkinToneLight, "Light"},
		{SkinToneDark, "Dark"},
		{SkinToneLightAndMediumLight, "LightAndMediumLight"},
		{SkinToneDarkAndMediumDark, "DarkAndMediumDark"},
		{SkinTone(-1), "Unknown"},
		{SkinTone(26), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.tone.String(); got != tt.want {
			t.Errorf("SkinTone(%d).String() = %q, want %q", tt.tone, got, tt.want)
		}
	}
}

func TestSkinToneCount(t *testing.T) {
	if skinToneCount != 26 {
		t.Errorf("skinToneCount = %d, want 26", skinToneCount)
	}
	for i := range skinToneCount {
		if skinToneNames[i] == "" {
			t.Errorf("SkinTone(%d) has no name", i)
		}
	}
}
