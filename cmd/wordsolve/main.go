// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wordsolve CLI and IPC server.

WordSolve narrows a five-letter word list with Wordle feedback and suggests
the guess that reveals the most information about the answer. Duplicate
letters are scored the way the game does: greens first, then yellows up to
the number of copies left in the answer.

# Usage

Solve interactively, typing each guess and its feedback:

	wordsolve
	> crane bgybb

Play against a known answer and print every step:

	wordsolve -answer trace

Rebuild the frequency file from a text corpus and exit:

	wordsolve -regen -corpus books.txt

Serve a session over msgpack on stdin/stdout:

	wordsolve -ipc

# Data files

The word list holds one word per line; '#' starts a comment. The frequency
file holds "word,score" lines, or a msgpack/YAML table when its extension is
.bin/.msgpack or .yaml/.yml. When the frequency file is missing or older than
the word list it is regenerated at startup, from -corpus when given and from
letter statistics of the word list otherwise.

# Configuration

Settings live in config.toml inside the user config dir and are created with
defaults on first run:

	[solver]
	max_eval_guesses = 900
	full_eval_limit = 1500
	max_steps = 6
	cache_size = 32

	[dict]
	words_path = "data/words.txt"
	frequency_path = "data/words_frequency.txt"
	auto_regenerate = true
	workers = 4

	[cli]
	default_limit = 10
	color = true

WORDSOLVE_WORDS, WORDSOLVE_FREQ and WORDSOLVE_CORPUS, set in the
environment or in a .env file, override the paths. Flags override both.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordsolve/internal/cli"
	"github.com/bastiangx/wordsolve/internal/utils"
	"github.com/bastiangx/wordsolve/pkg/config"
	"github.com/bastiangx/wordsolve/pkg/dictionary"
	"github.com/bastiangx/wordsolve/pkg/server"
	"github.com/bastiangx/wordsolve/pkg/solver"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	gh      = "https://github.com/bastiangx/wordsolve"
)

// sigHandler cancels ctx on the first signal and exits on the second.
func sigHandler(cancel context.CancelFunc) {
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		cancel()
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main only manages the flow; loading, solving and serving live in their packages.
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigHandler(cancel)

	showVersion := flag.Bool("version", false, "Show current version")
	wordsPath := flag.String("words", "", "Word list file (overrides config)")
	freqPath := flag.String("freq", "", "Frequency file (overrides config)")
	corpusPath := flag.String("corpus", "", "Text corpus used to regenerate frequencies")
	configPath := flag.String("config", "", "Path to a custom config.toml")
	envFile := flag.String("env", ".env", "dotenv file with WORDSOLVE_* overrides")
	limit := flag.Int("limit", 0, "Number of suggestions to show (default from config)")
	maxSteps := flag.Int("max-steps", 0, "Guess budget for a game (default from config)")
	answer := flag.String("answer", "", "Autoplay against this answer and exit")
	regen := flag.Bool("regen", false, "Regenerate the frequency file and exit")
	ipcMode := flag.Bool("ipc", false, "Serve a session over msgpack on stdin/stdout")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	debugMode := flag.Bool("d", false, "Toggle debug mode")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, activeConfig, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config: %s", config.GetActiveConfigPath(activeConfig))
	if err := cfg.ApplyEnv(*envFile); err != nil {
		log.Warnf("Ignoring env file %s: %v", *envFile, err)
	}
	applyFlags(cfg, *wordsPath, *freqPath, *corpusPath, *limit, *maxSteps, *noColor)

	pathResolver, err := utils.NewPathResolver(config.AppName)
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}
	resolvedWords := pathResolver.ResolveFile(cfg.Dict.WordsPath)
	resolvedFreq := pathResolver.ResolveSibling(resolvedWords, cfg.Dict.FreqPath)
	log.Debugf("Word list: %s, frequency file: %s", resolvedWords, resolvedFreq)

	words, err := dictionary.LoadWords(resolvedWords)
	if err != nil {
		log.Fatalf("Failed to load word list: %v", err)
	}

	if *regen {
		if err := regenerate(ctx, cfg, pathResolver, words, resolvedFreq); err != nil {
			log.Fatalf("Failed to regenerate frequencies: %v", err)
		}
		return
	}
	if stale, reason := dictionary.IsStale(resolvedWords, resolvedFreq, words); stale {
		if !cfg.Dict.AutoRegenerate {
			if !utils.FileExists(resolvedFreq) {
				log.Fatalf("Frequency file %s: %v (auto_regenerate is off)", resolvedFreq, dictionary.ErrFileNotFound)
			}
			log.Warnf("Frequency file is stale (%s); set dict.auto_regenerate or run -regen", reason)
		} else {
			log.Warnf("Regenerating frequency file: %s", reason)
			if err := regenerate(ctx, cfg, pathResolver, words, resolvedFreq); err != nil {
				log.Fatalf("Failed to regenerate frequencies: %v", err)
			}
		}
	}

	dict, err := dictionary.FromWords(words, resolvedFreq, cfg.Dict.DefaultScore)
	if err != nil {
		log.Fatalf("Failed to load frequencies: %v", err)
	}
	stats := dict.Stats()
	log.Debug("Dictionary loaded", "words", stats.Words, "scored", stats.Scored, "max", stats.MaxScore)

	s := solver.New(dict.Words(), dict, solver.Options{
		MaxEvalGuesses: cfg.Solver.MaxEvalGuesses,
		FullEvalLimit:  cfg.Solver.FullEvalLimit,
		CacheSize:      cfg.Solver.CacheSize,
	})
	renderer := cli.NewRenderer(cfg.CLI.Color)

	if *answer != "" {
		steps, solved, err := s.Autoplay(*answer, cfg.Solver.MaxSteps)
		if err != nil {
			log.Fatalf("Autoplay failed: %v", err)
		}
		fmt.Print(renderer.Autoplay(*answer, steps, solved))
		return
	}

	session := solver.NewSession(s)
	if *ipcMode {
		log.Debug("spawning IPC")
		srv := server.NewServer(session, dict, cfg.CLI.DefaultLimit)
		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
		return
	}

	inputHandler := cli.NewInputHandler(session, renderer, cfg.CLI.DefaultLimit, cfg.CLI.ShowWords, cfg.Solver.MaxSteps)
	inputHandler.SetCorrector(dict)
	if err := inputHandler.Start(); err != nil {
		log.Fatalf("CLI error: %v", err)
	}
}

// applyFlags lets explicitly set flags win over config and env.
func applyFlags(cfg *config.Config, words, freq, corpus string, limit, maxSteps int, noColor bool) {
	if words != "" {
		cfg.Dict.WordsPath = words
	}
	if freq != "" {
		cfg.Dict.FreqPath = freq
	}
	if corpus != "" {
		cfg.Dict.CorpusPath = corpus
	}
	if limit > 0 {
		cfg.CLI.DefaultLimit = limit
	}
	if maxSteps > 0 {
		cfg.Solver.MaxSteps = maxSteps
	}
	if noColor {
		cfg.CLI.Color = false
	}
}

// regenerate rebuilds the frequency file from the corpus when one is set,
// otherwise from letter statistics of the word list.
func regenerate(ctx context.Context, cfg *config.Config, pr *utils.PathResolver, words []string, freqPath string) error {
	var source dictionary.FrequencySource
	if cfg.Dict.CorpusPath != "" {
		corpus, err := dictionary.LoadCorpus(pr.ResolveFile(cfg.Dict.CorpusPath))
		if err != nil {
			return err
		}
		source = corpus
	} else {
		source = dictionary.NewLetterSource(words)
	}
	entries, err := dictionary.Regenerate(ctx, words, source, freqPath, cfg.Dict.Workers)
	if err != nil {
		return err
	}
	log.Printf("Wrote %s scores for %d words to %s", source.Name(), len(entries), freqPath)
	return nil
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ WordSolve ] Wordle helper that guesses for information")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}
