package flashtext

import (
	"github.com/kljensen/snowball"
	"golang.org/x/text/cases"
)

// KeyFunc derives the trie key for a token's text. The processor applies
// the same KeyFunc to keyword tokens at insertion and to document tokens
// at query time, so two tokens match iff their derived keys are equal.
// A KeyFunc must be deterministic and idempotent, and must be safe for
// concurrent use since queries may run from multiple goroutines.
type KeyFunc func(string) string

// ExactKey returns the token text unchanged. This is the case-sensitive
// matching mode: tokens match only on byte equality.
func ExactKey(s string) string {
	return s
}

// FoldKey maps the token text to its full Unicode case-folded form, so
// "Maße", "MASSE" and "masse" all derive the same key. This is the
// case-insensitive matching mode.
//
// A fresh Caser is built per call because cases.Caser carries internal
// transform state and is not safe for concurrent use.
func FoldKey(s string) string {
	return cases.Fold().String(s)
}

// StemKey returns a KeyFunc that case-folds the token and then reduces it
// to its Snowball stem for the given language ("english", "german", ...).
// Keywords registered through a stemming processor match inflected forms
// of themselves, e.g. "program" matches "programs" and "programming".
// Tokens the stemmer cannot process (punctuation, digits) keep their
// folded form.
func StemKey(language string) KeyFunc {
	return func(s string) string {
		folded := cases.Fold().String(s)
		stemmed, err := snowball.Stem(folded, language, false)
		if err != nil {
			return folded
		}
		return stemmed
	}
}
