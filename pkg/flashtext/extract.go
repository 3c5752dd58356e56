package flashtext

// Match is one keyword occurrence in a document: the keyword as it was
// registered and the half-open byte span [Start, End) it covers in the
// document passed to the query.
type Match struct {
	Keyword string
	Start   int
	End     int
}

// match is the engine-internal form carrying the terminal itself, so
// replacement can reach the clean word without a second lookup.
type match struct {
	term  *terminal
	start int
	end   int
}

// extractor walks the trie over a tokenized document and produces matches
// left to right. It is created per query; the trie is only read.
type extractor struct {
	tokens []Token
	keys   []string
	root   *node
	idx    int
}

// newExtractor tokenizes text and derives every token's key up front, so
// the scan folds each token at most once no matter how many candidate
// paths consult it.
func newExtractor(p *KeywordProcessor, text string) *extractor {
	tokens := Tokenize(text)
	keys := make([]string, len(tokens))
	for i, tok := range tokens {
		keys[i] = p.key(tok.Text)
	}
	return &extractor{
		tokens: tokens,
		keys:   keys,
		root:   p.root,
	}
}

// next returns the next match at or after the cursor, or ok=false when
// the document is exhausted.
//
// From each scan start the trie is descended token by token, remembering
// the deepest terminal passed. If one was seen, it is the leftmost-longest
// match: it is emitted and the cursor resumes immediately past its last
// token, so no token takes part in two matches. Otherwise the cursor
// advances one token. Each descent step is a single map lookup, so total
// work is bound by document length and match-path length, independent of
// how many keywords the trie stores.
func (e *extractor) next() (match, bool) {
	for e.idx < len(e.tokens) {
		cur := e.root
		start := e.idx

		var best match
		bestEnd := -1 // token index one past the best match, -1 = none

		for j := start; j < len(e.tokens); j++ {
			child := cur.child(e.keys[j])
			if child == nil {
				break
			}
			cur = child
			if cur.term != nil {
				best = match{
					term:  cur.term,
					start: e.tokens[start].Start,
					end:   e.tokens[j].End,
				}
				bestEnd = j + 1
			}
		}

		if bestEnd >= 0 {
			e.idx = bestEnd
			return best, true
		}
		e.idx = start + 1
	}
	return match{}, false
}
