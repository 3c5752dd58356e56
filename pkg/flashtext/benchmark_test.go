package flashtext

import (
	"fmt"
	"testing"
)

const benchText = "Hello, I love programming in Rust! It is nice, " +
	"but some days I still love Go and machine learning more than anything else. " +
	"New York is a city, natural language processing is a field, and this " +
	"sentence exists so documents are not trivially short."

func benchProcessor(b *testing.B, caseSensitive bool, extra int) *KeywordProcessor {
	b.Helper()
	p := NewKeywordProcessor(caseSensitive)
	err := p.AddKeywords("love", "Rust", "Hello", "New York", "machine learning", "natural language processing")
	if err != nil {
		b.Fatalf("AddKeywords: %v", err)
	}
	// Filler keywords that never occur in benchText.
	for i := 0; i < extra; i++ {
		if err := p.AddKeyword(fmt.Sprintf("filler keyword %d", i)); err != nil {
			b.Fatalf("AddKeyword: %v", err)
		}
	}
	return p
}

func BenchmarkTokenize(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Tokenize(benchText)
	}
}

func BenchmarkExtractKeywords(b *testing.B) {
	p := benchProcessor(b, true, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range p.ExtractKeywords(benchText) {
		}
	}
}

func BenchmarkExtractKeywords_CaseInsensitive(b *testing.B) {
	p := benchProcessor(b, false, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range p.ExtractKeywords(benchText) {
		}
	}
}

func BenchmarkReplaceKeywords(b *testing.B) {
	p := benchProcessor(b, true, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.ReplaceKeywords(benchText)
	}
}

// Extraction time over a fixed document should stay flat as the trie
// grows with keywords that never occur in it. Compare ns/op across the
// sub-benchmarks.
func BenchmarkExtractKeywords_TrieSize(b *testing.B) {
	for _, size := range []int{0, 1_000, 10_000, 100_000} {
		p := benchProcessor(b, true, size)
		b.Run(fmt.Sprintf("extra=%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				for range p.ExtractKeywords(benchText) {
				}
			}
		})
	}
}
