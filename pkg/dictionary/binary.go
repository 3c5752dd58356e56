package dictionary

import (
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

// binaryVersion is bumped whenever the container layout changes.
const binaryVersion = 1

// container is the on-disk msgpack envelope for a compiled keyword list.
type container struct {
	Version int     `msgpack:"version"`
	Entries []Entry `msgpack:"entries"`
}

// SaveBinary writes entries to path as a versioned msgpack container.
// Binary dictionaries load considerably faster than large text lists and
// preserve entry order, so last-write-wins semantics survive a round
// trip.
func SaveBinary(path string, entries []Entry) error {
	data, err := msgpack.Marshal(container{
		Version: binaryVersion,
		Entries: entries,
	})
	if err != nil {
		return fmt.Errorf("dictionary: encode %s: %w", path, err)
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadBinary reads a msgpack keyword container written by SaveBinary.
func LoadBinary(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c container
	if err := msgpack.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("dictionary: decode %s: %w", path, err)
	}
	if c.Version != binaryVersion {
		return nil, fmt.Errorf("dictionary: %s: unsupported version %d (want %d)", path, c.Version, binaryVersion)
	}
	return c.Entries, nil
}
