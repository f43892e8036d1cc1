// Package collation orders display names the way a reader expects: case,
// accents and width are ignored, with byte order as the final tie-break.
package collation

import (
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var (
	mu       sync.Mutex
	collator = collate.New(language.Und, collate.Loose)
)

// Compare returns -1, 0 or 1. Zero only for identical strings.
func Compare(a, b string) int {
	mu.Lock()
	c := collator.CompareString(a, b)
	mu.Unlock()
	if c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// Equal reports whether a and b differ only in case, accents, width or
// surrounding space.
func Equal(a, b string) bool {
	mu.Lock()
	defer mu.Unlock()
	return collator.CompareString(strings.TrimSpace(a), strings.TrimSpace(b)) == 0
}
