package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/kerem-kaynak/flashtext/internal/logger"
	"github.com/kerem-kaynak/flashtext/pkg/flashtext"
)

const (
	iterations = 100000
	warmup     = 1000
	boxWidth   = 62

	// ANSI color codes
	colorReset  = "\033[0m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorDim    = "\033[2m"
)

var line = strings.Repeat("─", boxWidth)

const document = "Hello, I love programming in Rust! New York has a lot of " +
	"machine learning jobs, but natural language processing pays the bills."

var keywords = []string{
	"love", "Rust", "Hello", "New York",
	"machine learning", "natural language processing",
}

func main() {
	log := logger.NewVerbose("benchmark")

	fmt.Printf("Iterations: %d (warmup: %d)\n", iterations, warmup)
	fmt.Println("Reference: 1 second = 1,000,000,000 ns")
	fmt.Println()

	// Processors of growing size over the same live keyword set. The
	// filler keywords never occur in the document.
	sizes := []int{0, 1000, 10000, 100000}
	procs := make([]*flashtext.KeywordProcessor, len(sizes))
	for i, size := range sizes {
		start := time.Now()
		p := flashtext.NewKeywordProcessor(true)
		if err := p.AddKeywords(keywords...); err != nil {
			log.Fatal("Adding keywords", "err", err)
		}
		for n := 0; n < size; n++ {
			if err := p.AddKeyword(fmt.Sprintf("filler keyword %d", n)); err != nil {
				log.Fatal("Adding filler keyword", "err", err)
			}
		}
		procs[i] = p
		log.Debug("Processor built", "keywords", p.Len(), "elapsed", time.Since(start).Round(time.Microsecond))
	}

	printHeader("EXTRACTION vs TRIE SIZE (should stay flat)")
	for i, size := range sizes {
		p := procs[i]
		bench(fmt.Sprintf("%d extra keywords", size), func() {
			for range p.ExtractKeywords(document) {
			}
		})
	}
	printFooter()
	fmt.Println()

	exact := procs[0]
	folded := flashtext.NewKeywordProcessor(false)
	if err := folded.AddKeywords(keywords...); err != nil {
		log.Fatal("Adding keywords", "err", err)
	}

	printHeader("COMPONENT BREAKDOWN")
	bench("Tokenize", func() {
		flashtext.Tokenize(document)
	})
	bench("FoldKey (per token)", func() {
		flashtext.FoldKey("Programming")
	})
	bench("Extract (exact)", func() {
		for range exact.ExtractKeywords(document) {
		}
	})
	bench("Extract (case-folded)", func() {
		for range folded.ExtractKeywords(document) {
		}
	})
	bench("Extract with spans", func() {
		for range exact.ExtractKeywordsWithSpan(document) {
		}
	})
	bench("Replace", func() {
		exact.ReplaceKeywords(document)
	})
	printFooter()
	fmt.Println()

	printHeader("BUILD THROUGHPUT")
	bench("AddKeyword (one token)", func() {
		q := flashtext.NewKeywordProcessor(true)
		q.AddKeyword("keyword")
	})
	bench("AddKeyword (five tokens)", func() {
		q := flashtext.NewKeywordProcessor(true)
		q.AddKeyword("multi token keyword")
	})
	printFooter()
}

func bench(name string, fn func()) {
	for i := 0; i < warmup; i++ {
		fn()
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		fn()
	}
	elapsed := time.Since(start)

	opsPerSec := float64(iterations) / elapsed.Seconds()
	nsPerOp := float64(elapsed.Nanoseconds()) / float64(iterations)

	// Truncate name if too long
	displayName := name
	if len(displayName) > 26 {
		displayName = displayName[:26]
	}

	// Format with colors - build plain string for padding, colored for display
	plain := fmt.Sprintf("  %-26s %10.0f ops/sec %8.0f ns", displayName, opsPerSec, nsPerOp)
	padded := padLine(plain)

	colored := fmt.Sprintf("  %-26s %s%10.0f%s ops/sec %s%8.0f%s ns",
		displayName,
		colorGreen, opsPerSec, colorReset,
		colorYellow, nsPerOp, colorReset)

	extraPad := len(padded) - len(plain)
	if extraPad > 0 {
		colored += strings.Repeat(" ", extraPad)
	}

	fmt.Println(colorDim + "│" + colorReset + colored + colorDim + "│" + colorReset)
}

func padLine(content string) string {
	if len(content) >= boxWidth {
		return content[:boxWidth]
	}
	return content + strings.Repeat(" ", boxWidth-len(content))
}

func printHeader(title string) {
	fmt.Println(colorDim + "┌" + line + "┐" + colorReset)
	printTitleRow("  " + title)
	fmt.Println(colorDim + "├" + line + "┤" + colorReset)
}

func printFooter() {
	fmt.Println(colorDim + "└" + line + "┘" + colorReset)
}

func printTitleRow(content string) {
	fmt.Println(colorDim + "│" + colorReset + colorCyan + padLine(content) + colorReset + colorDim + "│" + colorReset)
}
