package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [output-root]",
	Short: "List corpora registered under an output root",
	Args:  cobra.ExactArgs(1),
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if converter == nil {
		return errors.New("convert service not configured")
	}

	names, err := converter.List(args[0])
	if err != nil {
		return fmt.Errorf("list failed: %w", err)
	}

	if len(names) == 0 {
		cmd.Println("No corpora registered.")
		return nil
	}

	for _, name := range names {
		cmd.Println(name)
	}
	return nil
}
