package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	outlineOutput string
	outlineJSON   bool
)

var outlineCmd = &cobra.Command{
	Use:   "outline <file|directory>",
	Short: "Extract document titles and heading outlines",
	Long: `Extracts the title and H1/H2/H3 outline of PDF documents.

Given a directory, every supported file is processed and "<name>.json" is
written to the output directory. A document that cannot be read gets a
fallback outline and the batch continues.

Given a single file, the outline is printed, or written to the output
directory when --output is set.`,
	Args: cobra.ExactArgs(1),
	RunE: runOutline,
}

func init() {
	outlineCmd.Flags().StringVarP(&outlineOutput, "output", "o", defaultOutputDir, "directory for result files")
	outlineCmd.Flags().BoolVar(&outlineJSON, "json", false, "print the outline as JSON")
	rootCmd.AddCommand(outlineCmd)
}

func runOutline(cmd *cobra.Command, args []string) error {
	if outlineService == nil {
		return errors.New("outline service not configured")
	}

	input := args[0]
	info, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("input: %w", err)
	}
	ctx := cmd.Context()

	if info.IsDir() {
		report, err := outlineService.OutlineDirectory(ctx, input, outlineOutput)
		if err != nil {
			return fmt.Errorf("outline failed: %w", err)
		}
		renderBatch(cmd, report)
		return nil
	}

	if cmd.Flags().Changed("output") {
		report := outlineService.WriteOutline(ctx, input, outlineOutput)
		if report.Failed() {
			cmd.Printf("Wrote fallback outline to %s (%s)\n", report.Output, report.Err)
			return nil
		}
		cmd.Printf("Wrote %d headings to %s\n", report.Headings, report.Output)
		return nil
	}

	result, err := outlineService.Outline(ctx, input)
	if err != nil {
		return fmt.Errorf("outline failed: %w", err)
	}

	if outlineJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal outline: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	renderOutline(cmd, result)
	return nil
}
