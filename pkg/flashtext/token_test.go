package flashtext

import (
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{
			input:    "Hello, I love programming in Rust!",
			expected: []string{"Hello", ",", " ", "I", " ", "love", " ", "programming", " ", "in", " ", "Rust", "!"},
		},
		{
			input:    "Maße",
			expected: []string{"Maße"},
		},
		{
			input:    "hello world",
			expected: []string{"hello", " ", "world"},
		},
		{
			input:    "123abc",
			expected: []string{"123abc"},
		},
		{
			input:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		result := Tokenize(tt.input)
		if len(result) != len(tt.expected) {
			t.Errorf("Tokenize(%q) returned %d tokens, want %d (%v)", tt.input, len(result), len(tt.expected), result)
			continue
		}
		for i, tok := range result {
			if tok.Text != tt.expected[i] {
				t.Errorf("Tokenize(%q)[%d].Text = %q, want %q", tt.input, i, tok.Text, tt.expected[i])
			}
		}
	}
}

// Spans must cover every byte of the input: gap-free, non-overlapping,
// strictly increasing, and the token text must equal the spanned bytes.
func TestTokenize_SpanCoverage(t *testing.T) {
	inputs := []string{
		"Hello, I love programming in Rust!",
		"Die Maße   sind groß!?",
		"a b",
		"...",
		"日本語 text mixed",
	}

	for _, input := range inputs {
		tokens := Tokenize(input)
		prevEnd := 0
		for i, tok := range tokens {
			if tok.Start != prevEnd {
				t.Errorf("Tokenize(%q)[%d] starts at %d, want %d", input, i, tok.Start, prevEnd)
			}
			if tok.End <= tok.Start {
				t.Errorf("Tokenize(%q)[%d] has empty or inverted span [%d, %d)", input, i, tok.Start, tok.End)
			}
			if got := input[tok.Start:tok.End]; got != tok.Text {
				t.Errorf("Tokenize(%q)[%d].Text = %q, but span [%d, %d) covers %q", input, i, tok.Text, tok.Start, tok.End, got)
			}
			prevEnd = tok.End
		}
		if prevEnd != len(input) {
			t.Errorf("Tokenize(%q) covers %d of %d bytes", input, prevEnd, len(input))
		}
	}
}

func TestTokenize_ByteOffsets(t *testing.T) {
	// "Maße" is 5 bytes (ß is 2), so spans are byte offsets, not runes.
	tokens := Tokenize("Maße gut")
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %v", tokens)
	}
	if tokens[0].End != 5 {
		t.Errorf("tokens[0].End = %d, want 5", tokens[0].End)
	}
	if tokens[2].Start != 6 || tokens[2].End != 9 {
		t.Errorf("tokens[2] span = [%d, %d), want [6, 9)", tokens[2].Start, tokens[2].End)
	}
}
