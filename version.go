package emoji

import "fmt"

// UnicodeVersion is the Unicode emoji specification version in which an
// entry was introduced, e.g. E14.0. Versions are totally ordered.
type UnicodeVersion struct {
	Major, Minor int
}

// String returns the version in the "E" notation used by the Unicode
// data files, e.g. "E14.0".
func (v UnicodeVersion) String() string {
	return fmt.Sprintf("E%d.%d", v.Major, v.Minor)
}

// Compare returns -1 if v is older than o, 0 if equal, and +1 if newer.
func (v UnicodeVersion) Compare(o UnicodeVersion) int {
	switch {
	case v.Major != o.Major:
		if v.Major < o.Major {
			return -1
		}
		return 1
	case v.Minor != o.Minor:
		if v.Minor < o.Minor {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports whether v is older than o.
func (v UnicodeVersion) Less(o UnicodeVersion) bool {
	return v.Compare(o) < 0
}
