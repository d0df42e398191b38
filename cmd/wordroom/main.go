package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/gravitrone/wordroom/internal/cmd"
	"github.com/gravitrone/wordroom/internal/storage"
	"github.com/gravitrone/wordroom/internal/ui"
	"github.com/gravitrone/wordroom/internal/vocab"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &cmd.Options{}
	root := &cobra.Command{
		Use:   "wordroom",
		Short: "Wordroom - a vocabulary notebook",
		Long:  "Wordroom: look up words on Wordnik, keep notes on them, and browse your vocabulary.",
		RunE: func(c *cobra.Command, _ []string) error {
			return runTUI(c.Context(), opts)
		},
		Version:       cmd.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.DataFile, "data", "", "vocabulary data file")
	root.PersistentFlags().StringVar(&opts.Backend, "backend", "", "storage backend (json or sqlite)")

	root.AddCommand(cmd.KeyCmd())
	root.AddCommand(cmd.DefineCmd(opts))
	root.AddCommand(cmd.ExportCmd(opts))
	root.AddCommand(cmd.ImportCmd(opts))
	root.AddCommand(cmd.RandomCmd(opts))
	root.AddCommand(cmd.OpenCmd())
	root.AddCommand(cmd.AboutCmd(opts))
	return root
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func runTUI(ctx context.Context, opts *cmd.Options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if !isInteractiveTerminal(os.Stdin) || !isInteractiveTerminal(os.Stdout) {
		return fmt.Errorf("wordroom needs a terminal; see 'wordroom --help' for commands")
	}

	s, err := opts.Open()
	if err != nil {
		return err
	}
	loadErr := s.Load(ctx)
	if loadErr != nil && !errors.Is(loadErr, vocab.ErrMalformedData) && !errors.Is(loadErr, storage.ErrIO) {
		return loadErr
	}

	if path := os.Getenv("WORDROOM_DEBUG"); path != "" {
		f, err := tea.LogToFile(path, "wordroom")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	// The opener's own output would draw over the alt screen.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard

	app := ui.NewApp(s.Store, s.Backend, s.Client(), s.Config).
		WithLoadError(loadErr).
		WithVersion(cmd.Version)
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	if loadErr != nil {
		return nil
	}
	return s.Save(ctx)
}

func isInteractiveTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
