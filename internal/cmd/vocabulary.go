package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gravitrone/wordroom/internal/vocab"
)

// ExportCmd returns the `wordroom export` command.
func ExportCmd(opts *Options) *cobra.Command {
	var notes bool
	cmd := &cobra.Command{
		Use:   "export [word...]",
		Short: "Print the vocabulary as JSON, or notes for sharing",
		Long: "Print the vocabulary as a JSON object of words to notes. With words, only those " +
			"entries are printed. --notes prints the words and their notes as plain text.",
		RunE: func(c *cobra.Command, args []string) error {
			s, err := opts.Open()
			if err != nil {
				return err
			}
			if err := s.Load(c.Context()); err != nil {
				return err
			}

			entries, err := selectEntries(s.Store, args)
			if err != nil {
				return err
			}
			out := c.OutOrStdout()
			if notes {
				words := make([]string, 0, len(entries))
				for _, e := range entries {
					words = append(words, e.Word)
				}
				_, err := fmt.Fprintln(out, s.Store.ExportNotes(words))
				return err
			}
			return vocab.EncodeEntries(out, entries)
		},
	}
	cmd.Flags().BoolVar(&notes, "notes", false, "print words and notes as plain text")
	return cmd
}

// selectEntries returns the named entries in the given order, or all of them
// when no words are named.
func selectEntries(store *vocab.Store, words []string) ([]vocab.Entry, error) {
	if len(words) == 0 {
		return store.Entries(), nil
	}
	out := make([]vocab.Entry, 0, len(words))
	for _, w := range words {
		e, ok := store.Lookup(w)
		if !ok {
			return nil, fmt.Errorf("%q is not in the vocabulary", w)
		}
		out = append(out, e)
	}
	return out, nil
}

// ImportCmd returns the `wordroom import` command.
func ImportCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the vocabulary with a JSON export",
		Long:  "Replace the whole vocabulary with a JSON object of words to notes. Use - for stdin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			var in io.Reader = c.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open import: %w", err)
				}
				defer f.Close()
				in = f
			}

			s, err := opts.Open()
			if err != nil {
				return err
			}
			if err := s.Store.Load(in); err != nil {
				return fmt.Errorf("import %s: %w", args[0], err)
			}
			if err := s.Save(c.Context()); err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "imported %d words into %s\n", s.Store.Len(), s.Config.DataFile)
			return nil
		},
	}
}

// RandomCmd returns the `wordroom random` command.
func RandomCmd(opts *Options) *cobra.Command {
	var notes bool
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print a random word from the vocabulary",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			s, err := opts.Open()
			if err != nil {
				return err
			}
			if err := s.Load(c.Context()); err != nil {
				return err
			}
			word, err := s.Store.RandomWord()
			if errors.Is(err, vocab.ErrEmpty) {
				return fmt.Errorf("no words stored yet: %w", err)
			}
			if err != nil {
				return err
			}
			out := c.OutOrStdout()
			if notes {
				fmt.Fprintln(out, s.Store.ExportNotes([]string{word}))
				return nil
			}
			fmt.Fprintln(out, word)
			return nil
		},
	}
	cmd.Flags().BoolVar(&notes, "notes", false, "print the word's notes too")
	return cmd
}
