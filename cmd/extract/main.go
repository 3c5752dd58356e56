package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/kerem-kaynak/flashtext/internal/config"
	"github.com/kerem-kaynak/flashtext/internal/logger"
	"github.com/kerem-kaynak/flashtext/pkg/dictionary"
	"github.com/kerem-kaynak/flashtext/pkg/flashtext"
)

func main() {
	var (
		configPath    = flag.String("config", "", "TOML config file")
		caseSensitive = flag.Bool("case-sensitive", false, "match tokens exactly instead of case-folded")
		stemLanguage  = flag.String("stem", "", "stem tokens with the Snowball stemmer for this language")
		spans         = flag.Bool("spans", false, "print byte spans with each keyword")
		replace       = flag.Bool("replace", false, "print the text with keywords replaced instead of extracting")
	)
	flag.Usage = printUsage
	flag.Parse()

	log := logger.New("extract")

	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal("Loading config", "path", *configPath, "err", err)
		}
	}
	// Flags override config file settings.
	cfg.Matching.CaseSensitive = cfg.Matching.CaseSensitive || *caseSensitive
	if *stemLanguage != "" {
		cfg.Matching.StemLanguage = *stemLanguage
	}
	cfg.Output.Spans = cfg.Output.Spans || *spans
	cfg.Output.Replace = cfg.Output.Replace || *replace

	proc := newProcessor(cfg.Matching)

	dicts := append([]string{flag.Arg(0)}, cfg.Matching.Dictionaries...)
	total := 0
	for _, path := range dicts {
		added, err := registerDictionary(proc, path)
		if err != nil {
			log.Fatal("Loading keywords", "path", path, "err", err)
		}
		total += added
	}
	log.Info("Keywords loaded", "distinct", proc.Len(), "added", total)

	// Text on the command line: one shot.
	if flag.NArg() > 1 {
		emit(proc, cfg.Output, strings.Join(flag.Args()[1:], " "))
		return
	}

	// Interactive mode.
	fmt.Println("flashtext extract (interactive mode)")
	fmt.Println("Type a line of text, press Enter. Ctrl+C to exit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		text := scanner.Text()
		if text == "" {
			continue
		}
		emit(proc, cfg.Output, text)
	}
}

func newProcessor(m config.MatchingConfig) *flashtext.KeywordProcessor {
	if m.StemLanguage != "" {
		return flashtext.NewKeywordProcessorWithKeyFunc(flashtext.StemKey(m.StemLanguage))
	}
	return flashtext.NewKeywordProcessor(m.CaseSensitive)
}

// registerDictionary loads .bin files as msgpack containers and anything
// else as a plain text keyword list.
func registerDictionary(p *flashtext.KeywordProcessor, path string) (int, error) {
	if strings.HasSuffix(path, ".bin") {
		entries, err := dictionary.LoadBinary(path)
		if err != nil {
			return 0, err
		}
		return dictionary.Register(p, entries)
	}
	return dictionary.RegisterFile(p, path)
}

func emit(p *flashtext.KeywordProcessor, out config.OutputConfig, text string) {
	if out.Replace {
		fmt.Println(p.ReplaceKeywords(text))
		return
	}

	var result any
	if out.Spans {
		var matches []flashtext.Match
		for m := range p.ExtractKeywordsWithSpan(text) {
			matches = append(matches, m)
		}
		result = matches
	} else {
		var keywords []string
		for kw := range p.ExtractKeywords(text) {
			keywords = append(keywords, kw)
		}
		result = keywords
	}

	encoded, _ := json.Marshal(result)
	fmt.Println(string(encoded))
}

func printUsage() {
	fmt.Println("Usage: extract [flags] <keywords.txt|keywords.bin> [text...]")
	fmt.Println("       extract [flags] <keywords.txt|keywords.bin>   (interactive mode)")
	fmt.Println()
	fmt.Println("Flags:")
	flag.PrintDefaults()
}
