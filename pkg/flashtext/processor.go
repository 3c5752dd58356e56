// Package flashtext extracts and replaces large sets of multi-token
// keywords in a single linear pass over the document. Keywords are stored
// as token paths in a trie, so matching cost scales with document length,
// not with the number of registered keywords.
//
// A KeywordProcessor is built once (insertions must be serialized by the
// caller) and may then be queried concurrently; extraction and
// replacement never mutate the trie.
package flashtext

import (
	"errors"
	"iter"
)

// ErrEmptyKeyword is returned when a keyword tokenizes to zero tokens,
// i.e. the empty string. No mutation happens in that case.
var ErrEmptyKeyword = errors.New("flashtext: keyword produces no tokens")

// KeywordProcessor stores keywords as token paths over a trie and scans
// documents against them with a leftmost-longest, non-overlapping policy.
// The matching mode (the KeyFunc) is fixed at construction.
type KeywordProcessor struct {
	root *node
	key  KeyFunc
	len  int
}

// NewKeywordProcessor creates an empty processor. With caseSensitive set,
// tokens match on exact text; otherwise tokens are compared by full
// Unicode case folding.
func NewKeywordProcessor(caseSensitive bool) *KeywordProcessor {
	if caseSensitive {
		return NewKeywordProcessorWithKeyFunc(ExactKey)
	}
	return NewKeywordProcessorWithKeyFunc(FoldKey)
}

// NewKeywordProcessorWithKeyFunc creates an empty processor with a custom
// token key derivation, e.g. StemKey for stem-insensitive matching.
func NewKeywordProcessorWithKeyFunc(fn KeyFunc) *KeywordProcessor {
	return &KeywordProcessor{
		root: newNode(),
		key:  fn,
	}
}

// Len returns the number of distinct keyword paths currently stored.
// Re-adding a keyword (or adding one that derives the same key sequence
// as an earlier keyword) overwrites its terminal and does not grow Len.
func (p *KeywordProcessor) Len() int {
	return p.len
}

// IsEmpty reports whether no keywords are stored.
func (p *KeywordProcessor) IsEmpty() bool {
	return p.len == 0
}

// AddKeyword registers keyword for matching. On match the keyword itself
// is returned and, during replacement, substituted unchanged.
func (p *KeywordProcessor) AddKeyword(keyword string) error {
	return p.AddKeywordWithCleanWord(keyword, keyword)
}

// AddKeywordWithCleanWord registers keyword for matching with cleanWord
// as its replacement text. Matches always report keyword exactly as
// passed here, regardless of how the document spells it. Registering the
// same keyword path again overwrites the earlier terminal: last write
// wins.
func (p *KeywordProcessor) AddKeywordWithCleanWord(keyword, cleanWord string) error {
	tokens := Tokenize(keyword)
	if len(tokens) == 0 {
		return ErrEmptyKeyword
	}

	keys := make([]string, len(tokens))
	for i, tok := range tokens {
		keys[i] = p.key(tok.Text)
	}

	if p.root.add(keys, keyword, cleanWord) {
		p.len++
	}
	return nil
}

// AddKeywords registers each keyword in turn, stopping at the first
// error.
func (p *KeywordProcessor) AddKeywords(keywords ...string) error {
	for _, kw := range keywords {
		if err := p.AddKeyword(kw); err != nil {
			return err
		}
	}
	return nil
}

// AddKeywordsFromSeq registers every keyword produced by seq, stopping at
// the first error.
func (p *KeywordProcessor) AddKeywordsFromSeq(seq iter.Seq[string]) error {
	for kw := range seq {
		if err := p.AddKeyword(kw); err != nil {
			return err
		}
	}
	return nil
}

// AddKeywordsWithCleanWordsFromSeq registers every (keyword, cleanWord)
// pair produced by seq in order, stopping at the first error. Later
// pairs win on colliding keyword paths.
func (p *KeywordProcessor) AddKeywordsWithCleanWordsFromSeq(seq iter.Seq2[string, string]) error {
	for kw, clean := range seq {
		if err := p.AddKeywordWithCleanWord(kw, clean); err != nil {
			return err
		}
	}
	return nil
}

// ExtractKeywords returns the registered keywords found in text, in
// document order. The sequence is lazy and restarts from the beginning
// each time it is ranged over.
func (p *KeywordProcessor) ExtractKeywords(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		e := newExtractor(p, text)
		for m, ok := e.next(); ok; m, ok = e.next() {
			if !yield(m.term.keyword) {
				return
			}
		}
	}
}

// ExtractKeywordsWithSpan is ExtractKeywords with the byte span of each
// occurrence in text. Spans are strictly increasing and never overlap.
func (p *KeywordProcessor) ExtractKeywordsWithSpan(text string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		e := newExtractor(p, text)
		for m, ok := e.next(); ok; m, ok = e.next() {
			if !yield(Match{Keyword: m.term.keyword, Start: m.start, End: m.end}) {
				return
			}
		}
	}
}

// ReplaceKeywords returns text with every matched keyword substituted by
// its replacement. Bytes not covered by a match, including separators and
// unmatched words, are copied verbatim, so with no keywords registered
// the result equals the input.
func (p *KeywordProcessor) ReplaceKeywords(text string) string {
	e := newExtractor(p, text)

	var out []byte
	prevEnd := 0
	for m, ok := e.next(); ok; m, ok = e.next() {
		if out == nil {
			out = make([]byte, 0, len(text))
		}
		out = append(out, text[prevEnd:m.start]...)
		out = append(out, m.term.replacement...)
		prevEnd = m.end
	}
	if out == nil {
		return text
	}
	return string(append(out, text[prevEnd:]...))
}
