package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch [source] [output-root] [corpus-name]",
	Short: "Convert a corpus and keep it fresh as the source changes",
	Long: `Converts the source like the convert command, then keeps watching the
source tree and rewrites the corpus vertical file whenever a file
changes. Stops on interrupt.`,
	Args: cobra.ExactArgs(3),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&convertSingleDoc, "single-doc", false,
		"use the legacy <doc> boundary form (single-document corpora only)")
	watchCmd.Flags().BoolVar(&convertEscape, "escape", false,
		"escape markup-colliding tokens as XML entities")
	watchCmd.Flags().IntVar(&convertJobs, "jobs", 1,
		"number of concurrent tokenization workers")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if converter == nil {
		return errors.New("convert service not configured")
	}

	req, err := convertRequest(cmd, args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Watching %s; press Ctrl-C to stop.\n", req.SourcePath)

	if err := converter.Watch(ctx, req); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watch failed: %w", err)
	}

	cmd.Println("Watch stopped.")
	return nil
}
