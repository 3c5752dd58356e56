package dictionary

import (
	"errors"
	"os"
	"sort"
	"sync"

	"github.com/blevesearch/vellum"
	lru "github.com/hashicorp/golang-lru/v2"
)

// lookupCacheSize bounds the Contains result cache. Entries are a string
// key and a bool, so even the full cache stays small.
const lookupCacheSize = 16384

// Vocabulary answers "is this keyword registered" over a large keyword
// set without touching the matching trie. The word set is kept in an FST
// on disk for compact storage and fast lookups, with an LRU cache over
// recent Contains results.
type Vocabulary struct {
	fst     *vellum.FST
	words   map[string]struct{} // Source of truth for modifications
	fstPath string
	cache   *lru.Cache[string, bool]
	mu      sync.RWMutex
}

// NewVocabulary builds an FST at fstPath from keywords and returns the
// vocabulary backed by it. An existing file at fstPath is overwritten.
func NewVocabulary(fstPath string, keywords []string) (*Vocabulary, error) {
	cache, _ := lru.New[string, bool](lookupCacheSize)
	v := &Vocabulary{
		words:   make(map[string]struct{}, len(keywords)),
		fstPath: fstPath,
		cache:   cache,
	}
	for _, kw := range keywords {
		v.words[kw] = struct{}{}
	}

	if err := v.rebuild(); err != nil {
		return nil, err
	}
	return v, nil
}

// OpenVocabulary opens an FST previously built by NewVocabulary and
// enumerates its keys so the vocabulary stays modifiable.
func OpenVocabulary(fstPath string) (*Vocabulary, error) {
	fst, err := vellum.Open(fstPath)
	if err != nil {
		return nil, err
	}

	words := make(map[string]struct{}, fst.Len())
	itr, err := fst.Iterator(nil, nil)
	for err == nil {
		key, _ := itr.Current()
		words[string(key)] = struct{}{}
		err = itr.Next()
	}
	if !errors.Is(err, vellum.ErrIteratorDone) {
		fst.Close()
		return nil, err
	}

	cache, _ := lru.New[string, bool](lookupCacheSize)
	return &Vocabulary{
		fst:     fst,
		words:   words,
		fstPath: fstPath,
		cache:   cache,
	}, nil
}

// Contains reports whether keyword is in the vocabulary. Lookups go
// through the LRU cache first; misses hit the FST.
func (v *Vocabulary) Contains(keyword string) bool {
	if hit, ok := v.cache.Get(keyword); ok {
		return hit
	}

	v.mu.RLock()
	_, exists, _ := v.fst.Get([]byte(keyword))
	// Fill the cache before releasing the lock, so a concurrent
	// rebuild's purge is ordered after this fill and can never be
	// overwritten by a pre-mutation answer.
	v.cache.Add(keyword, exists)
	v.mu.RUnlock()

	return exists
}

// Add inserts keyword and rebuilds the FST.
func (v *Vocabulary) Add(keyword string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.words[keyword] = struct{}{}
	return v.rebuildLocked()
}

// Remove deletes keyword and rebuilds the FST.
func (v *Vocabulary) Remove(keyword string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	delete(v.words, keyword)
	return v.rebuildLocked()
}

// Words returns the keywords in sorted order.
func (v *Vocabulary) Words() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.sortedWords()
}

// Len returns the number of keywords.
func (v *Vocabulary) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.words)
}

// Close releases the FST.
func (v *Vocabulary) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.fst != nil {
		err := v.fst.Close()
		v.fst = nil
		return err
	}
	return nil
}

// rebuild rebuilds the FST with locking.
func (v *Vocabulary) rebuild() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.rebuildLocked()
}

// rebuildLocked rebuilds the FST from the word set and reopens it.
// Caller must hold the write lock. FST keys must be inserted in sorted
// order.
func (v *Vocabulary) rebuildLocked() error {
	if v.fst != nil {
		v.fst.Close()
		v.fst = nil
	}
	v.cache.Purge()

	file, err := os.Create(v.fstPath)
	if err != nil {
		return err
	}

	builder, err := vellum.New(file, nil)
	if err != nil {
		file.Close()
		return err
	}

	for _, word := range v.sortedWords() {
		if err := builder.Insert([]byte(word), 0); err != nil {
			builder.Close()
			file.Close()
			return err
		}
	}

	if err := builder.Close(); err != nil {
		file.Close()
		return err
	}
	file.Close()

	fst, err := vellum.Open(v.fstPath)
	if err != nil {
		return err
	}
	v.fst = fst
	return nil
}

// sortedWords snapshots the word set in sorted order. Caller must hold a
// lock.
func (v *Vocabulary) sortedWords() []string {
	words := make([]string, 0, len(v.words))
	for word := range v.words {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}
