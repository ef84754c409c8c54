package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var watchOutput string

var watchCmd = &cobra.Command{
	Use:   "watch <directory>",
	Short: "Outline documents as they arrive",
	Long: `Outlines every document already in the directory, then keeps
watching it and writes an outline for each PDF created or modified there.
Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", defaultOutputDir, "directory for result files")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if watchService == nil {
		return errors.New("watch service not configured")
	}

	cmd.Printf("Watching %s, writing outlines to %s\n", args[0], watchOutput)
	return watchService.Watch(cmd.Context(), args[0], watchOutput)
}
