package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/kerem-kaynak/flashtext/internal/logger"
	"github.com/kerem-kaynak/flashtext/pkg/dictionary"
)

func main() {
	if len(os.Args) < 3 {
		printUsage()
		os.Exit(1)
	}

	log := logger.New("dictmgr")

	dictPath := os.Args[1]
	command := os.Args[2]

	entries, err := loadAny(dictPath)
	if err != nil {
		log.Fatal("Loading dictionary", "path", dictPath, "err", err)
	}

	switch command {
	case "stats":
		distinct := make(map[string]struct{}, len(entries))
		replacements := 0
		for _, e := range entries {
			distinct[e.Keyword] = struct{}{}
			if e.CleanWord != "" {
				replacements++
			}
		}
		fmt.Printf("Dictionary: %s\n", dictPath)
		fmt.Printf("Entries: %d (distinct keywords: %d, with replacements: %d)\n",
			len(entries), len(distinct), replacements)

	case "contains":
		if len(os.Args) < 4 {
			log.Fatal("contains requires a keyword")
		}
		keyword := os.Args[3]
		vocab, err := buildVocabulary(dictPath, entries)
		if err != nil {
			log.Fatal("Building vocabulary", "err", err)
		}
		defer vocab.Close()

		if vocab.Contains(keyword) {
			fmt.Printf("%q exists in dictionary\n", keyword)
		} else {
			fmt.Printf("%q NOT in dictionary\n", keyword)
			os.Exit(1)
		}

	case "compile":
		vocab, err := buildVocabulary(dictPath, entries)
		if err != nil {
			log.Fatal("Building vocabulary", "err", err)
		}
		defer vocab.Close()
		fmt.Printf("FST compiled: %s (%d keywords)\n", fstPath(dictPath), vocab.Len())

	case "pack":
		out := replaceExt(dictPath, ".bin")
		if err := dictionary.SaveBinary(out, entries); err != nil {
			log.Fatal("Writing binary dictionary", "path", out, "err", err)
		}
		fmt.Printf("Packed %d entries into %s\n", len(entries), out)

	case "unpack":
		out := replaceExt(dictPath, ".txt")
		if err := writeText(out, entries); err != nil {
			log.Fatal("Writing text dictionary", "path", out, "err", err)
		}
		fmt.Printf("Unpacked %d entries into %s\n", len(entries), out)

	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

// loadAny reads a text or binary dictionary based on the extension.
func loadAny(path string) ([]dictionary.Entry, error) {
	if strings.HasSuffix(path, ".bin") {
		return dictionary.LoadBinary(path)
	}
	return dictionary.LoadFile(path)
}

func buildVocabulary(dictPath string, entries []dictionary.Entry) (*dictionary.Vocabulary, error) {
	keywords := make([]string, len(entries))
	for i, e := range entries {
		keywords[i] = e.Keyword
	}
	return dictionary.NewVocabulary(fstPath(dictPath), keywords)
}

func fstPath(dictPath string) string {
	return replaceExt(dictPath, ".fst")
}

func replaceExt(path, ext string) string {
	for _, old := range []string{".txt", ".bin", ".fst"} {
		if strings.HasSuffix(path, old) {
			return strings.TrimSuffix(path, old) + ext
		}
	}
	return path + ext
}

func writeText(path string, entries []dictionary.Entry) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, e := range entries {
		line := e.Keyword
		if e.CleanWord != "" {
			line += "=>" + e.CleanWord
		}
		if _, err := file.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return nil
}

func printUsage() {
	fmt.Println("Usage: dictmgr <keywords.txt|keywords.bin> <command> [args...]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  stats                   Show dictionary statistics")
	fmt.Println("  contains <keyword>      Check if a keyword exists (FST lookup)")
	fmt.Println("  compile                 Build the FST vocabulary next to the dictionary")
	fmt.Println("  pack                    Convert a text dictionary to msgpack")
	fmt.Println("  unpack                  Convert a msgpack dictionary to text")
}
