// Package unicode parses the Unicode emoji-test.txt data file into the
// ordered entry list consumed by cmd/emojigen.
//
// emoji-test.txt is published per emoji release at
// https://unicode.org/Public/emoji/<version>/emoji-test.txt. It lists
// every emoji sequence in CLDR recommended order, under "# group:" and
// "# subgroup:" headers, one sequence per line:
//
//	1F636 200D 1F32B FE0F ; fully-qualified # 😶‍🌫️ E13.1 face in clouds
//
// The parser keeps fully-qualified entries, attaches minimally-qualified
// and unqualified lines to the preceding fully-qualified entry as lookup
// variations, drops component entries (skin tone swatches, hair), and
// links skin tone variants to their default representative.
package unicode
