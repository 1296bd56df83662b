// Command srclangc is the CLI wrapper around the transpiler core. CLI
// wrapping sits outside the transpiler core itself; this
// file exists only to give the core pipeline, the compile cache, and the
// per-run correlation ID a real caller, in a plain os.Args CLI
// style: no flag/cobra library, manual argument scanning, a top-level
// recover that prints "Internal error" instead of a raw stack trace.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/mcgru/srclangc/internal/cache"
	"github.com/mcgru/srclangc/internal/config"
	"github.com/mcgru/srclangc/internal/idgen"
	"github.com/mcgru/srclangc/internal/pipeline"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	verbose, cachePath, positional := parseArgs(os.Args[1:])

	var c *cache.Cache
	if cachePath != "" {
		opened, err := cache.Open(cachePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening cache: %s\n", err)
			os.Exit(1)
		}
		defer opened.Close()
		c = opened
	}

	paths, err := resolveInputs(positional)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	if len(paths) == 0 {
		source, err := readStdin()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}
		if source == "" {
			return
		}
		if !compileAndPrint(source, "", verbose, c) {
			os.Exit(1)
		}
		return
	}

	ok := true
	for _, path := range paths {
		source, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %s\n", path, err)
			ok = false
			continue
		}
		if !compileAndPrint(string(source), path, verbose, c) {
			ok = false
		}
	}
	if !ok {
		os.Exit(1)
	}
}

// parseArgs scans args by hand, recognizing -v and -cache <path> in any
// position, and returns the remaining positional arguments (files or
// directories) in order.
func parseArgs(args []string) (verbose bool, cachePath string, positional []string) {
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-v", "--verbose":
			verbose = true
		case "-cache", "--cache":
			if i+1 < len(args) {
				i++
				cachePath = args[i]
			}
		default:
			positional = append(positional, args[i])
		}
	}
	return verbose, cachePath, positional
}

// resolveInputs expands any directory argument into the source files it
// contains (config.SourceFileExtensions), in directory-listing order.
func resolveInputs(positional []string) ([]string, error) {
	var paths []string
	for _, arg := range positional {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if !entry.IsDir() && isSourceFile(entry.Name()) {
				paths = append(paths, filepath.Join(arg, entry.Name()))
			}
		}
	}
	return paths, nil
}

func isSourceFile(name string) bool {
	for _, ext := range config.SourceFileExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func readStdin() (string, error) {
	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return "", fmt.Errorf("usage: %s <file>... or pipe source on stdin", os.Args[0])
	}
	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("error reading stdin: %w", err)
	}
	return string(input), nil
}

// compileAndPrint runs one source through the cache-then-pipeline path and
// writes the result to stdout. It reports false on any failure, having
// already printed the diagnostic to stderr.
func compileAndPrint(source, filePath string, verbose bool, c *cache.Cache) bool {
	id := idgen.New()

	var hash string
	if c != nil {
		hash = cache.Hash(source)
		if output, hit, err := c.Lookup(hash); err == nil && hit {
			printVerboseSummary(verbose, id, filePath, output, -1, true)
			fmt.Println(output)
			return true
		}
	}

	ctx := pipeline.New(source, filePath)
	result := pipeline.Standard().Run(ctx)
	if result.Failed() {
		for _, e := range result.Errors {
			fmt.Fprintf(os.Stderr, "- %s\n", e.Error())
		}
		return false
	}

	if c != nil {
		_ = c.Store(hash, result.Output, time.Now().Unix())
	}

	printVerboseSummary(verbose, id, filePath, result.Output, len(result.Statements), false)
	fmt.Println(result.Output)
	return true
}

func printVerboseSummary(verbose bool, id interface{ String() string }, filePath, output string, stmtCount int, cacheHit bool) {
	if !verbose {
		return
	}
	label := "miss"
	if cacheHit {
		label = "hit"
	}
	if isatty.IsTerminal(os.Stderr.Fd()) {
		color := "\033[33m" // yellow: miss
		if cacheHit {
			color = "\033[32m" // green: hit
		}
		label = color + label + "\033[0m"
	}
	name := filePath
	if name == "" {
		name = "<stdin>"
	}
	stmtText := "n/a"
	if stmtCount >= 0 {
		stmtText = fmt.Sprintf("%d", stmtCount)
	}
	fmt.Fprintf(os.Stderr, "[%s] %s: %s statements, %s (cache %s)\n", id.String(), name, stmtText, humanize.Bytes(uint64(len(output))), label)
}
