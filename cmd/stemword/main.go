// Command stemword stems words using the Snowball algorithms.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	stemmers "github.com/andreribeiro87/py-rust-stemmers-tuned"
	"github.com/andreribeiro87/py-rust-stemmers-tuned/analyzer"
	"github.com/andreribeiro87/py-rust-stemmers-tuned/cache"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("stemword", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Flags
	lang := fs.String("lang", "english", "Language (e.g., english, spanish)")
	parallel := fs.Bool("parallel", false, "Stem the batch across concurrent workers")
	htmlInput := fs.Bool("html", false, "Read an HTML document from stdin and stem its visible text (no positional words)")
	jsonOutput := fs.Bool("json", false, "Output result as JSON")
	output := fs.String("output", "", "Output file (default: stdout)")
	outputShort := fs.String("o", "", "Output file (short for --output)")
	cacheFile := fs.String("cache-file", "", "Warm the stem cache from a JSON snapshot before stemming")
	showVersion := fs.Bool("version", false, "Show version")
	showLanguages := fs.Bool("languages", false, "List supported languages")
	quiet := fs.Bool("quiet", false, "Suppress stats output")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", stemmers.Name, stemmers.FullVersion())
		return nil
	}

	if *showLanguages {
		for _, l := range stemmers.Languages() {
			fmt.Fprintf(stdout, "%-12s %s\n", l, stemmers.LanguageName(l))
		}
		return nil
	}

	// Handle -o alias for --output
	if *outputShort != "" && *output == "" {
		*output = *outputShort
	}

	if *cacheFile != "" {
		if _, err := cache.ImportFromFile(stemmers.SharedCache(), *cacheFile); err != nil {
			return fmt.Errorf("warming cache: %w", err)
		}
	}

	// Collect input words: positional args first, stdin otherwise.
	var words []string
	if *htmlInput {
		if fs.NArg() > 0 {
			return fmt.Errorf("--html reads the document from stdin; positional words are not accepted")
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		an, err := analyzer.New(*lang)
		if err != nil {
			return err
		}
		start := time.Now()
		roots, err := an.AnalyzeHTML(string(data))
		if err != nil {
			return err
		}
		return emit(stdout, stderr, *lang, nil, roots, time.Since(start), *jsonOutput, *quiet, *output)
	}

	if fs.NArg() > 0 {
		words = fs.Args()
	} else {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		words = strings.Fields(string(data))
	}

	s, err := stemmers.New(*lang)
	if err != nil {
		return err
	}

	start := time.Now()
	var roots []string
	if *parallel {
		roots = s.StemWordsParallel(words)
	} else {
		roots = s.StemWords(words)
	}
	elapsed := time.Since(start)

	return emit(stdout, stderr, *lang, words, roots, elapsed, *jsonOutput, *quiet, *output)
}

// jsonResult is the JSON output format.
type jsonResult struct {
	Language  string   `json:"language"`
	Words     []string `json:"words,omitempty"`
	Roots     []string `json:"roots"`
	Count     int      `json:"count"`
	ElapsedMs int64    `json:"elapsed_ms"`
}

func emit(stdout, stderr io.Writer, lang string, words, roots []string, elapsed time.Duration, jsonOut, quiet bool, outputPath string) error {
	var out io.Writer = stdout
	if outputPath != "" {
		f, err := os.Create(outputPath) // #nosec G304 - CLI tool writes user-specified files
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(jsonResult{
			Language:  lang,
			Words:     words,
			Roots:     roots,
			Count:     len(roots),
			ElapsedMs: elapsed.Milliseconds(),
		})
	}

	for _, root := range roots {
		fmt.Fprintln(out, root)
	}

	if !quiet {
		fmt.Fprintf(stderr, "stemmed %d words in %v (cache: %d entries)\n",
			len(roots), elapsed.Round(time.Microsecond), stemmers.SharedCache().Len())
	}

	return nil
}
