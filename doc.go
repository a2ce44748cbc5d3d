// Package emoji provides lookup, iteration, grouping, and fuzzy search
// over the Unicode emoji dataset.
//
// # Overview
//
// The package embeds a generated table of every fully qualified emoji in
// the Unicode CLDR recommended order, together with gemoji shortcodes and
// skin tone family links. All data is baked in at generation time; no
// network access or file I/O happens at runtime.
//
// # Quick Start
//
//	import "github.com/gogpu/emoji"
//
//	// Exact lookup by Unicode string.
//	rocket := emoji.Get("\U0001F680")
//	fmt.Println(rocket.Name()) // "rocket"
//
//	// Lookup by gemoji shortcode (bare name, no colons).
//	thumbs := emoji.GetByShortcode("thumbsup")
//
//	// Iterate all emojis in recommended order.
//	for e := range emoji.Iter() {
//	    fmt.Println(e, e.Name())
//	}
//
//	// Fuzzy search by name.
//	for _, e := range emoji.Search("rocket") {
//	    fmt.Println(e)
//	}
//
// # Skin Tones
//
// Iteration yields only the default representative of each skin tone
// family. Variants are reachable through the representative:
//
//	wave := emoji.GetByShortcode("wave")
//	for v := range wave.SkinTones() {
//	    fmt.Println(v, v.Name())
//	}
//
// # Concurrency
//
// The underlying table is immutable. Lookup indexes are built once, on
// first use, behind a sync.Once; every operation is safe for unlimited
// concurrent readers with no locking.
//
// # Dataset
//
// The table in tables.go is generated by cmd/emojigen from the Unicode
// emoji-test.txt data file and the gemoji shortcode database. Regenerate
// with:
//
//	go run ./cmd/emojigen -out tables.go
package emoji
