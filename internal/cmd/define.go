package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/gravitrone/wordroom/internal/api"
)

const defineWrapWidth = 80

// DefineCmd returns the `wordroom define` command.
func DefineCmd(opts *Options) *cobra.Command {
	var (
		plain  bool
		record bool
	)
	cmd := &cobra.Command{
		Use:   "define <word>",
		Short: "Look up a word on Wordnik",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			s, err := opts.Open()
			if err != nil {
				return err
			}

			def, err := s.Client().Define(c.Context(), args[0])
			if errors.Is(err, api.ErrMissingKey) {
				return err
			}
			if err != nil {
				return fmt.Errorf("define: %w", err)
			}

			if record && def.Found {
				if err := s.Load(c.Context()); err != nil {
					return err
				}
				if !s.Store.Has(def.Word) {
					if _, err := s.Store.SetNotes(def.Word, ""); err != nil {
						return err
					}
					if err := s.Save(c.Context()); err != nil {
						return err
					}
				}
			}

			md := def.Markdown()
			if plain {
				fmt.Fprint(c.OutOrStdout(), md)
				return nil
			}
			fmt.Fprintln(c.OutOrStdout(), renderTerminal(md))
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print markdown instead of styled text")
	cmd.Flags().BoolVar(&record, "save", false, "add a found word to the vocabulary history")
	return cmd
}

// renderTerminal styles markdown for the terminal, falling back to the raw
// text.
func renderTerminal(md string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(defineWrapWidth),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
