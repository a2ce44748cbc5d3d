package emoji

// SkinTone identifies an entry's position within its skin tone family.
//
// The five single tones follow the Fitzpatrick scale in increasing
// darkness. Two person emoji additionally have combined tones, ordered by
// the first person's tone and then the second's; a combination where both
// persons share a tone is represented by the single tone value.
//
// Families iterate in SkinTone order: Default, the five single tones,
// then the twenty combinations.
type SkinTone int

const (
	SkinToneDefault SkinTone = iota
	SkinToneLight
	SkinToneMediumLight
	SkinToneMedium
	SkinToneMediumDark
	SkinToneDark
	SkinToneLightAndMediumLight
	SkinToneLightAndMedium
	SkinToneLightAndMediumDark
	SkinToneLightAndDark
	SkinToneMediumLightAndLight
	SkinToneMediumLightAndMedium
	SkinToneMediumLightAndMediumDark
	SkinToneMediumLightAndDark
	SkinToneMediumAndLight
	SkinToneMediumAndMediumLight
	SkinToneMediumAndMediumDark
	SkinToneMediumAndDark
	SkinToneMediumDarkAndLight
	SkinToneMediumDarkAndMediumLight
	SkinToneMediumDarkAndMedium
	SkinToneMediumDarkAndDark
	SkinToneDarkAndLight
	SkinToneDarkAndMediumLight
	SkinToneDarkAndMedium
	SkinToneDarkAndMediumDark

	skinToneCount = iota
)

// skinToneNames maps SkinTone to string names.
var skinToneNames = [skinToneCount]string{
	SkinToneDefault:                  "Default",
	SkinToneLight:                    "Light",
	SkinToneMediumLight:              "MediumLight",
	SkinToneMedium:                   "Medium",
	SkinToneMediumDark:               "MediumDark",
	SkinToneDark:                     "Dark",
	SkinToneLightAndMediumLight:      "LightAndMediumLight",
	SkinToneLightAndMedium:           "LightAndMedium",
	SkinToneLightAndMediumDark:       "LightAndMediumDark",
	SkinToneLightAndDark:             "LightAndDark",
	SkinToneMediumLightAndLight:      "MediumLightAndLight",
	SkinToneMediumLightAndMedium:     "MediumLightAndMedium",
	SkinToneMediumLightAndMediumDark: "MediumLightAndMediumDark",
	SkinToneMediumLightAndDark:       "MediumLightAndDark",
	SkinToneMediumAndLight:           "MediumAndLight",
	SkinToneMediumAndMediumLight:     "MediumAndMediumLight",
	SkinToneMediumAndMediumDark:      "MediumAndMediumDark",
	SkinToneMediumAndDark:            "MediumAndDark",
	SkinToneMediumDarkAndLight:       "MediumDarkAndLight",
	SkinToneMediumDarkAndMediumLight: "MediumDarkAndMediumLight",
	SkinToneMediumDarkAndMedium:      "MediumDarkAndMedium",
	SkinToneMediumDarkAndDark:        "MediumDarkAndDark",
	SkinToneDarkAndLight:             "DarkAndLight",
	SkinToneDarkAndMediumLight:       "DarkAndMediumLight",
	SkinToneDarkAndMedium:            "DarkAndMedium",
	SkinToneDarkAndMediumDark:        "DarkAndMediumDark",
}

// String returns the name of the skin tone, e.g. "MediumLight".
func (t SkinTone) String() string {
	if t < 0 || int(t) >= skinToneCount {
		return "Unknown"
	}
	return skinToneNames[t]
}
