// Package sample is the canonical Go rendition of the corpus fixture shape:
// a type holding a name, a guarded accessor, a counting function, and a
// package-level constant. External detection and extraction suites point
// their Go parsers at this package the same way they point at the embedded
// corpus files for other languages.
package sample

// Constant is the package-level marker value shared by every fixture in the
// corpus.
const Constant = "test_value"

// Holder stores a single name.
type Holder struct {
	name string
}

// New creates a Holder with the given name.
func New(name string) *Holder {
	return &Holder{name: name}
}

// NameIf returns the stored name when value is positive.
// For zero or negative values it returns "" and false.
func (h *Holder) NameIf(value int) (string, bool) {
	if value > 0 {
		return h.name, true
	}
	return "", false
}

// Count returns the number of items in the slice.
func Count(items []string) int {
	return len(items)
}
