// Copyright 2025 The WordFourth Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the analogy candidate server and CLI application.

WordFourth builds a first-order word-succession model from a text corpus and
enumerates candidate "fourth" words completing an analogy-like relation
between word pairs, using only local successor statistics. It can operate as
a MessagePack IPC server for integration with other tools, as an interactive
CLI for testing and debugging, or as a one-shot batch enumerator over the
whole corpus.

The model maps every word to the distinct set of words observed immediately
after it. For a query pair, the first elements of the left word's branch
pairs and the second elements of the right word's branch pairs are each
expanded one further hop through the successor graph, and the intersection
of the two pools is the candidate set.

# Usage

Start the server with a corpus file:

	wfourth -corpus corpus.txt

Use debug mode and run the interactive CLI:

	wfourth -corpus corpus.txt -c -d

Run the full-corpus batch enumeration and print it:

	wfourth -corpus corpus.txt -batch

Write the batch result as msgpack to a file:

	wfourth -corpus corpus.txt -batch -msgpack -o results.bin

The corpus path may be a single text file or a directory, in which case
every *.txt file inside is read in sorted filename order.

# Configuration

Runtime configuration is managed through a TOML file:

	[corpus]
	path = "corpus.txt"
	max_tokens = 0

	[query]
	max_candidates = 64
	cache_size = 4096
	enable_cache = true

	[cli]
	default_limit = 24
	default_no_filter = false
	suggest_limit = 8

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Requests carry an
ID that the response echoes back and an op selecting the operation:

	{"id": "req1", "op": "fourth", "l": "king", "r": "woman", "n": 16}
	{"id": "req2", "op": "root", "w": "king"}
	{"id": "req3", "op": "info"}

Unknown words are never errors; they yield empty candidate sets, the same
way they do everywhere else in the library.

# Command Line Flags

The following flags control application behavior:

	-corpus string
	    Corpus text file or directory of .txt files
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-batch
	    Run the full-corpus enumeration and exit
	-msgpack
	    Encode batch output as msgpack instead of text
	-o string
	    Batch output file (default stdout)
	-limit int
	    Number of candidates to display per set (CLI mode)
	-no-filter
	    Disable input filtering for debugging
	-tokens int
	    Maximum tokens to load from the corpus (0 for all)
	-config string
	    Custom config file path
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordfourth/internal/cli"
	"github.com/bastiangx/wordfourth/internal/utils"
	"github.com/bastiangx/wordfourth/pkg/analogy"
	"github.com/bastiangx/wordfourth/pkg/config"
	"github.com/bastiangx/wordfourth/pkg/corpus"
	"github.com/bastiangx/wordfourth/pkg/model"
	"github.com/bastiangx/wordfourth/pkg/results"
	"github.com/bastiangx/wordfourth/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0-beta"
	AppName = "wordfourth"
	gh      = "https://github.com/bastiangx/wordfourth"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to load the corpus and run the selected mode.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	// custom Flags
	showVersion := flag.Bool("version", false, "Show current version")
	corpusPath := flag.String("corpus", defaultConfig.Corpus.Path, "Corpus text file or directory of .txt files")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	batchMode := flag.Bool("batch", false, "Run the full-corpus enumeration and exit")
	msgpackOut := flag.Bool("msgpack", false, "Encode batch output as msgpack instead of text")
	outPath := flag.String("o", "", "Batch output file (default stdout)")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultLimit, "Number of candidates to display per set")
	noFilter := flag.Bool("no-filter", defaultConfig.CLI.DefaultNoFilter, "Disable input filtering (DBG only)")
	tokenLimit := flag.Int("tokens", defaultConfig.Corpus.MaxTokens, "Maximum tokens to load from the corpus (use 0 for all)")
	configPathFlag := flag.String("config", "", "Custom config file path")

	flag.Parse()

	if *showVersion {
		showVersionInfo()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	// Initialize path resolver for robust path handling
	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
		os.Exit(1)
	}

	configPath := *configPathFlag
	if configPath == "" {
		configPath, err = pathResolver.GetConfigPath("config.toml")
		if err != nil {
			log.Fatalf("Failed to determine config path: (%v)", err)
			os.Exit(1)
		}
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(configPath))

	appConfig, err := config.InitConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
		os.Exit(1)
	}

	resolvedCorpus, err := pathResolver.GetCorpusPath(*corpusPath)
	if err != nil {
		log.Fatalf("Failed to resolve corpus path: (%v)", err)
		os.Exit(1)
	}
	log.Debugf("Using corpus at: %s", resolvedCorpus)

	loader := corpus.NewLoader(resolvedCorpus, *tokenLimit)
	tokens, err := loader.Load()
	if err != nil {
		log.Fatalf("Failed to load corpus: %v", err)
		os.Exit(1)
	}

	mdl := model.Build(tokens)
	log.Debugf("Init model: tokens=[%d], vocab=[%d]", mdl.TokenCount(), mdl.VocabSize())

	var finder *analogy.Finder
	if appConfig.Query.EnableCache {
		finder = analogy.NewCachedFinder(mdl, appConfig.Query.CacheSize)
	} else {
		finder = analogy.NewFinder(mdl)
	}

	if *batchMode {
		if err := runBatch(finder, *outPath, *msgpackOut); err != nil {
			log.Fatalf("Batch enumeration failed: %v", err)
			os.Exit(1)
		}
		return
	}

	// CLI would be mainly used for testing and dbg purposes.
	// Any new features or changes should be tested in CLI mode first.
	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"limit", *limit,
			"noFilter", *noFilter)

		inputHandler := cli.NewInputHandler(finder, *limit, appConfig.CLI.SuggestLimit, *noFilter)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
			os.Exit(1)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(finder, appConfig)

	showStartupInfo(resolvedCorpus, mdl)

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// runBatch runs the full-corpus enumeration and writes it out.
func runBatch(finder *analogy.Finder, outPath string, asMsgpack bool) error {
	roots := results.Collect(finder)

	out := os.Stdout
	if outPath != "" {
		file, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to create output file %s: %w", outPath, err)
		}
		defer file.Close()
		out = file
	}

	if asMsgpack {
		return results.WriteMsgpack(out, roots)
	}
	return results.WriteText(out, roots)
}

// showVersionInfo prints the styled version banner.
func showVersionInfo() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()

	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ WordFourth ] Fourth-word candidates from corpus statistics!")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(corpusPath string, mdl *model.Model) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("============")
	println(" WordFourth ")
	println("============")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Infof("corpus: ( %s )", corpusPath)
	log.Infof("tokens: %d, vocab: %d", mdl.TokenCount(), mdl.VocabSize())
	log.Info("status: ready")
	println("============")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
