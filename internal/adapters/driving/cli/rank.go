package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	rankOutput string
	rankJSON   bool
)

var rankCmd = &cobra.Command{
	Use:   "rank <directory>",
	Short: "Rank collection sections for a persona",
	Long: `Selects the sections of a document collection most relevant to a
persona and their job to be done.

The first *.json file in the directory describes the collection:

  {"documents": ["a.pdf", "b.pdf"],
   "persona": "PhD Researcher in Computational Biology",
   "job_to_be_done": "Prepare a literature review"}

Without one, every PDF in the directory is ranked for the default persona
and job from settings. The result is written to the output directory; if
analysis fails a fallback result is written instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runRank,
}

func init() {
	rankCmd.Flags().StringVarP(&rankOutput, "output", "o", defaultOutputDir, "directory for the result file")
	rankCmd.Flags().BoolVar(&rankJSON, "json", false, "print the result as JSON")
	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	if collectionService == nil {
		return errors.New("collection service not configured")
	}

	result, err := collectionService.Run(cmd.Context(), args[0], rankOutput)
	if err != nil {
		return fmt.Errorf("rank failed: %w", err)
	}

	if rankJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	renderCollection(cmd, result)
	return nil
}
