package cmd

import (
	"fmt"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/gravitrone/wordroom/internal/api"
	"github.com/gravitrone/wordroom/internal/config"
)

// Version is set at build time with -ldflags "-X ...cmd.Version=v1.2.3".
var Version = "dev"

// openURL opens a page in the system browser.
var openURL = browser.OpenURL

// AboutCmd returns the `wordroom about` command.
func AboutCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "about",
		Short: "Show version, attribution and file locations",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			s, err := opts.Open()
			if err != nil {
				return err
			}
			key := "not set (run 'wordroom key')"
			if s.Config.APIKey != "" {
				key = "set"
			}
			out := c.OutOrStdout()
			fmt.Fprintf(out, "wordroom %s\n", Version)
			fmt.Fprintf(out, "Definitions from Wordnik, %s\n\n", api.SiteURL)
			fmt.Fprintf(out, "data     %s (%s)\n", s.Config.DataFile, s.Config.Backend)
			fmt.Fprintf(out, "config   %s\n", config.Path())
			fmt.Fprintf(out, "api key  %s\n", key)
			return nil
		},
	}
}

// OpenCmd returns the `wordroom open` command.
func OpenCmd() *cobra.Command {
	var printOnly bool
	cmd := &cobra.Command{
		Use:   "open [word]",
		Short: "Open a word on wordnik.com",
		Long:  "Open the wordnik.com page for a word, or the site itself when no word is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			word := ""
			if len(args) == 1 {
				word = args[0]
			}
			url := api.WordURL(word)
			if printOnly {
				_, err := fmt.Fprintln(c.OutOrStdout(), url)
				return err
			}
			if err := openURL(url); err != nil {
				return fmt.Errorf("open %s: %w", url, err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&printOnly, "print", false, "print the URL instead of opening it")
	return cmd
}
