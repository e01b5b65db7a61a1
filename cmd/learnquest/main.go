// learnquest is a terminal adventure that quizzes the player on Python basics.
//
// Usage:
//
//	learnquest           - Start an interactive session
//	learnquest scores    - Show the top 10 high scores
//
// Tuning is read from ~/.learnquest/configs/quest.yaml or ./configs/quest.yaml
// when present, questions from questions.yaml in the same places.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/learnquest/internal/config"
	"github.com/vovakirdan/learnquest/internal/core"
	"github.com/vovakirdan/learnquest/internal/platform/tui"
	"github.com/vovakirdan/learnquest/internal/storage"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "learnquest",
	Short: "Learning Quest - a Python quiz adventure in your terminal",
	Long: `Learning Quest is a small adventure game: move around the field,
collect coins, dodge blocks and answer programming questions to reach
the next level before the clock runs out.

Available commands:
  scores   - View high scores

Examples:
  learnquest
  learnquest scores`,
	Args: cobra.NoArgs,
	RunE: runSession,
}

func init() {
	rootCmd.AddCommand(scoresCmd)
}

func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	questions, err := config.LoadQuestions("")
	if err != nil {
		return err
	}

	logger, closeLog := openLogger(cfg.Log)
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// A broken score store costs the leaderboard, not the game
	store, err := storage.Open(cfg.Scores)
	if err != nil {
		logger.Warn("high scores disabled", "backend", cfg.Scores.Backend, "path", cfg.Scores.Path, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: high scores disabled: %v\n", err)
	} else {
		defer store.Close()
	}

	err = tui.Run(tui.Options{
		Config:    cfg,
		Questions: questions,
		Store:     store,
		Logger:    logger,
		Runtime: core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			Seed:    cfg.Seed,
		},
	})
	if err != nil {
		logger.Error("session failed", "error", err)
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// openLogger writes to the configured log file since the TUI owns the
// terminal. Without a usable file logging is discarded.
func openLogger(cfg config.LogConfig) (*log.Logger, func()) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if cfg.Path != "" {
		if path, err := config.ExpandHome(cfg.Path); err == nil {
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
				if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
					w = f
					closeFn = func() { f.Close() }
				}
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "learnquest",
	})
	if level, err := log.ParseLevel(cfg.Level); err == nil {
		logger.SetLevel(level)
	}
	return logger, closeFn
}
