package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/vertify/internal/core/domain"
	"github.com/custodia-labs/vertify/internal/core/ports/driving"
)

var (
	convertSingleDoc bool
	convertEscape    bool
	convertJobs      int
)

var convertCmd = &cobra.Command{
	Use:   "convert [source] [output-root] [corpus-name]",
	Short: "Convert raw text into a vertical corpus",
	Long: `Converts a raw text file, or every file under a directory tree, into
the vertical format and materializes the corpus under the output root.
The corpus name is displayed by the engine's user interface and may not
contain a path separator.`,
	Args: cobra.ExactArgs(3),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().BoolVar(&convertSingleDoc, "single-doc", false,
		"use the legacy <doc> boundary form (single-document corpora only)")
	convertCmd.Flags().BoolVar(&convertEscape, "escape", false,
		"escape markup-colliding tokens as XML entities")
	convertCmd.Flags().IntVar(&convertJobs, "jobs", 1,
		"number of concurrent tokenization workers")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	if converter == nil {
		return errors.New("convert service not configured")
	}

	req, err := convertRequest(cmd, args)
	if err != nil {
		return err
	}

	result, err := converter.Convert(context.Background(), req)
	if err != nil {
		return fmt.Errorf("convert failed: %w", err)
	}

	cmd.Printf("Corpus %q materialized: %d document(s), %d token(s).\n",
		req.CorpusName, result.Documents, result.Tokens)
	cmd.Printf("Vertical file written under %s.\n", result.VerticalPath)

	return nil
}

// convertRequest builds a request from arguments, flags and stored
// configuration. Flags win over config; the corpus name is validated
// here so a bad name fails before any conversion work starts.
func convertRequest(cmd *cobra.Command, args []string) (driving.ConvertRequest, error) {
	req := driving.ConvertRequest{
		SourcePath:   args[0],
		OutputRoot:   args[1],
		CorpusName:   args[2],
		SingleDoc:    convertSingleDoc,
		EscapeMarkup: convertEscape,
		Jobs:         convertJobs,
	}

	if err := domain.ValidateCorpusName(req.CorpusName); err != nil {
		return driving.ConvertRequest{}, fmt.Errorf("%w: %q", err, req.CorpusName)
	}

	if configStore != nil {
		if !cmd.Flags().Changed("single-doc") {
			req.SingleDoc = configStore.GetBool("convert.single_doc")
		}
		if !cmd.Flags().Changed("escape") {
			req.EscapeMarkup = configStore.GetBool("convert.escape")
		}
		if !cmd.Flags().Changed("jobs") {
			if jobs := configStore.GetInt("convert.jobs"); jobs > 0 {
				req.Jobs = jobs
			}
		}
	}

	return req, nil
}
