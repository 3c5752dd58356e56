package dictionary

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/kerem-kaynak/flashtext/pkg/flashtext"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keywords.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeTempFile(t, `# tech keywords
Rust
java_2e=>Java
  Go

# trailing comment
New York=>NYC
`)

	entries, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	expected := []Entry{
		{Keyword: "Rust"},
		{Keyword: "java_2e", CleanWord: "Java"},
		{Keyword: "Go"},
		{Keyword: "New York", CleanWord: "NYC"},
	}
	if !slices.Equal(entries, expected) {
		t.Errorf("LoadFile = %v, want %v", entries, expected)
	}
}

func TestLoadFile_EmptyKeywordBeforeArrow(t *testing.T) {
	path := writeTempFile(t, "=>nothing\n")
	if _, err := LoadFile(path); err == nil {
		t.Error("expected error for empty keyword before =>")
	}
}

func TestRegisterFile(t *testing.T) {
	path := writeTempFile(t, `love=>hate
Rust=>Java
Hello=>Hey
`)

	p := flashtext.NewKeywordProcessor(true)
	added, err := RegisterFile(p, path)
	if err != nil {
		t.Fatalf("RegisterFile: %v", err)
	}
	if added != 3 {
		t.Errorf("added = %d, want 3", added)
	}

	got := p.ReplaceKeywords("Hello, I love programming in Rust!")
	want := "Hey, I hate programming in Java!"
	if got != want {
		t.Errorf("ReplaceKeywords = %q, want %q", got, want)
	}
}

func TestRegister_LastEntryWins(t *testing.T) {
	p := flashtext.NewKeywordProcessor(false)
	added, err := Register(p, []Entry{
		{Keyword: "Foo", CleanWord: "first"},
		{Keyword: "foo", CleanWord: "second"},
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	// Both entries fold to the same keyword path.
	if added != 1 {
		t.Errorf("added = %d, want 1", added)
	}
	if got := p.ReplaceKeywords("FOO"); got != "second" {
		t.Errorf("ReplaceKeywords(\"FOO\") = %q, want %q", got, "second")
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.bin")
	entries := []Entry{
		{Keyword: "Rust"},
		{Keyword: "java_2e", CleanWord: "Java"},
		{Keyword: "New York", CleanWord: "NYC"},
	}

	if err := SaveBinary(path, entries); err != nil {
		t.Fatalf("SaveBinary: %v", err)
	}
	loaded, err := LoadBinary(path)
	if err != nil {
		t.Fatalf("LoadBinary: %v", err)
	}
	if !slices.Equal(loaded, entries) {
		t.Errorf("LoadBinary = %v, want %v", loaded, entries)
	}
}

func TestLoadBinary_BadData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.bin")
	if err := os.WriteFile(path, []byte("not msgpack at all"), 0o644); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	if _, err := LoadBinary(path); err == nil {
		t.Error("expected error for corrupt binary dictionary")
	}
}

func TestVocabulary(t *testing.T) {
	fstPath := filepath.Join(t.TempDir(), "vocab.fst")
	v, err := NewVocabulary(fstPath, []string{"love", "Rust", "Hello"})
	if err != nil {
		t.Fatalf("NewVocabulary: %v", err)
	}
	defer v.Close()

	if v.Len() != 3 {
		t.Errorf("Len() = %d, want 3", v.Len())
	}
	if !v.Contains("Rust") {
		t.Error("Contains(\"Rust\") = false")
	}
	// Second lookup is served from the cache; answer must not change.
	if !v.Contains("Rust") {
		t.Error("cached Contains(\"Rust\") = false")
	}
	if v.Contains("rust") {
		t.Error("Contains(\"rust\") = true, vocabulary keys are exact")
	}

	if err := v.Add("Go"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !v.Contains("Go") {
		t.Error("Contains(\"Go\") = false after Add")
	}

	if err := v.Remove("love"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if v.Contains("love") {
		t.Error("Contains(\"love\") = true after Remove")
	}

	want := []string{"Go", "Hello", "Rust"}
	if got := v.Words(); !slices.Equal(got, want) {
		t.Errorf("Words() = %v, want %v", got, want)
	}
}

// A mutation must invalidate earlier cached lookups: the rebuild purges
// the cache, and lookups fill it under the lock, so no pre-mutation
// answer can survive past Add or Remove.
func TestVocabulary_CacheCoherenceAfterMutation(t *testing.T) {
	fstPath := filepath.Join(t.TempDir(), "vocab.fst")
	v, err := NewVocabulary(fstPath, []string{"love", "Rust"})
	if err != nil {
		t.Fatalf("NewVocabulary: %v", err)
	}
	defer v.Close()

	// Prime the cache with both answers.
	if !v.Contains("love") {
		t.Fatal("Contains(\"love\") = false before Remove")
	}
	if v.Contains("Go") {
		t.Fatal("Contains(\"Go\") = true before Add")
	}

	if err := v.Remove("love"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if v.Contains("love") {
		t.Error("Contains(\"love\") = true after Remove, cached answer survived the rebuild")
	}

	if err := v.Add("Go"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !v.Contains("Go") {
		t.Error("Contains(\"Go\") = false after Add, cached answer survived the rebuild")
	}
}

func TestOpenVocabulary(t *testing.T) {
	fstPath := filepath.Join(t.TempDir(), "vocab.fst")
	v, err := NewVocabulary(fstPath, []string{"alpha", "beta"})
	if err != nil {
		t.Fatalf("NewVocabulary: %v", err)
	}
	if err := v.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := OpenVocabulary(fstPath)
	if err != nil {
		t.Fatalf("OpenVocabulary: %v", err)
	}
	defer reopened.Close()

	if reopened.Len() != 2 {
		t.Errorf("Len() = %d, want 2", reopened.Len())
	}
	if !reopened.Contains("alpha") || !reopened.Contains("beta") {
		t.Errorf("reopened vocabulary lost words: %v", reopened.Words())
	}
	if reopened.Contains("gamma") {
		t.Error("Contains(\"gamma\") = true")
	}
}
