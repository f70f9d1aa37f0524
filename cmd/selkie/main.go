// Package main is the entry point for the selkie motion explorer, a
// terminal front end for trying out motions and selections on a file.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/selkie-editor/selkie/internal/config"
	"github.com/selkie-editor/selkie/internal/dispatcher"
	"github.com/selkie-editor/selkie/internal/script"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		scriptPath  string
		showVersion bool
	)
	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&scriptPath, "script", "", "Path to a Lua motion script")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Selkie - motion and selection explorer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: selkie [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("Selkie %s (%s)\n", version, commit)
		return 0
	}

	opts := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		opts = loaded
	}
	opts, err := config.ApplyEnv(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	registry := dispatcher.NewRegistry()
	if err := registry.BindDefaults(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.Keymap != "" {
		if err := dispatcher.LoadKeymapFile(registry, opts.Keymap); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	if scriptPath != "" {
		host := script.NewHost()
		defer host.Close()
		if err := host.LoadFile(scriptPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		if err := script.Bind(host, registry, nil); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	lines := []string{""}
	if path := flag.Arg(0); path != "" {
		lines, err = readLines(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	ex, err := newExplorer(lines, opts, registry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Live reload: a config change swaps the options under the
	// explorer's lock.
	if configPath != "" {
		watcher, werr := config.NewWatcher(configPath)
		if werr == nil {
			defer watcher.Close()
			watcher.OnChange(ex.setOptions)
		}
	}

	if err := ex.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines, nil
}
