package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gravitrone/wordroom/internal/config"
)

// RunKeyPrompt stores a Wordnik API key. When key is empty it is read from
// in.
func RunKeyPrompt(in io.Reader, out io.Writer, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		fmt.Fprint(out, "wordnik api key: ")
		line, _ := bufio.NewReader(in).ReadString('\n')
		key = strings.TrimSpace(line)
	}
	if key == "" {
		return fmt.Errorf("api key is required")
	}

	if err := config.SaveAPIKey(key); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	fmt.Fprintf(out, "api key saved to %s\n", config.Path())
	return nil
}

// KeyCmd returns the `wordroom key` command.
func KeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "key [api-key]",
		Short: "Set the Wordnik API key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			key := ""
			if len(args) == 1 {
				key = args[0]
			}
			return RunKeyPrompt(c.InOrStdin(), c.OutOrStdout(), key)
		},
	}
}
