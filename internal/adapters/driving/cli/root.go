// Package cli implements the docsift command line using cobra.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsift/internal/core/ports/driving"
	"github.com/custodia-labs/docsift/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// defaultOutputDir is where results are written when --output is not given.
const defaultOutputDir = "output"

var verbose bool

var (
	outlineService    driving.OutlineService
	collectionService driving.CollectionService
	watchService      driving.WatchService
	historyService    driving.HistoryService
	settingsService   driving.SettingsService
)

var rootCmd = &cobra.Command{
	Use:   "docsift",
	Short: "Document outlines and persona-driven section ranking",
	Long: `docsift reads PDFs and recovers their structure.

  outline  extracts each document's title and H1/H2/H3 headings
  rank     selects the sections of a collection that matter most to a
           persona and the job they need to get done`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress and timings to stderr")
}

// Services bundles the driving ports the commands call.
type Services struct {
	Outline    driving.OutlineService
	Collection driving.CollectionService
	Watch      driving.WatchService
	History    driving.HistoryService
	Settings   driving.SettingsService
}

// SetServices injects the services used by the commands.
func SetServices(s Services) {
	outlineService = s.Outline
	collectionService = s.Collection
	watchService = s.Watch
	historyService = s.History
	settingsService = s.Settings
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
