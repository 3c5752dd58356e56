// Package dictionary loads keyword lists from files and registers them on
// a flashtext.KeywordProcessor. It also maintains an FST-backed
// vocabulary for fast membership checks over large keyword sets.
package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/kerem-kaynak/flashtext/pkg/flashtext"
)

// Entry is one keyword with an optional replacement. A blank CleanWord
// means the keyword replaces as itself.
type Entry struct {
	Keyword   string `msgpack:"keyword"`
	CleanWord string `msgpack:"clean_word,omitempty"`
}

// LoadFile reads a plain-text keyword list: one keyword per line, an
// optional "keyword=>clean word" replacement separator, blank lines and
// lines starting with # skipped.
func LoadFile(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var entries []Entry
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		keyword, clean, found := strings.Cut(line, "=>")
		if found {
			keyword = strings.TrimSpace(keyword)
			clean = strings.TrimSpace(clean)
			if keyword == "" {
				return nil, fmt.Errorf("dictionary: %s:%d: empty keyword before =>", path, lineNo)
			}
		} else {
			keyword = line
			clean = ""
		}
		entries = append(entries, Entry{Keyword: keyword, CleanWord: clean})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Register adds entries onto p in order, so later entries win on
// colliding keyword paths. Returns the number of distinct keyword paths
// the processor gained.
func Register(p *flashtext.KeywordProcessor, entries []Entry) (int, error) {
	before := p.Len()
	for _, e := range entries {
		var err error
		if e.CleanWord == "" {
			err = p.AddKeyword(e.Keyword)
		} else {
			err = p.AddKeywordWithCleanWord(e.Keyword, e.CleanWord)
		}
		if err != nil {
			return p.Len() - before, fmt.Errorf("dictionary: keyword %q: %w", e.Keyword, err)
		}
	}
	return p.Len() - before, nil
}

// RegisterFile loads path and registers its entries onto p.
func RegisterFile(p *flashtext.KeywordProcessor, path string) (int, error) {
	entries, err := LoadFile(path)
	if err != nil {
		return 0, err
	}
	return Register(p, entries)
}
