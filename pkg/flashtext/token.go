package flashtext

import (
	"github.com/rivo/uniseg"
)

// Token is a segment of a source string together with its half-open byte
// span [Start, End) in that string. Tokens produced from keyword
// registration and from document scanning are structurally identical.
type Token struct {
	Text  string
	Start int
	End   int
}

// Tokenize splits text into word-boundary tokens following Unicode
// Annex #29. The returned tokens cover every byte of text with no gaps
// and no overlaps, and spans are strictly increasing; separators
// (whitespace runs, punctuation) are tokens too.
func Tokenize(text string) []Token {
	if text == "" {
		return nil
	}

	// A rough pre-size: most tokens are a handful of bytes.
	tokens := make([]Token, 0, len(text)/4+1)

	offset := 0
	state := -1
	rest := text
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		tokens = append(tokens, Token{
			Text:  word,
			Start: offset,
			End:   offset + len(word),
		})
		offset += len(word)
	}

	return tokens
}
