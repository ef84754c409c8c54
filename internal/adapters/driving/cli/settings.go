package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change outline caps, ranking limits, collection defaults
and batch concurrency. Settings live in ~/.docsift/config.toml.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a single setting by its dotted key, for example:

  docsift settings set ranking.max_sections 15
  docsift settings set collection.default_persona "Investment Analyst"`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List setting keys",
	RunE:  runSettingsKeys,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Outline]")
	cmd.Printf("  Max per page: %d\n", settings.Outline.MaxPerPage)
	cmd.Printf("  Max total: %d\n", settings.Outline.MaxTotal)
	cmd.Printf("  Min confidence: %.2f\n", settings.Outline.MinConfidence)
	cmd.Println()

	cmd.Println("[Ranking]")
	cmd.Printf("  Max sections: %d\n", settings.Ranking.MaxSections)
	cmd.Printf("  Max per document: %d\n", settings.Ranking.MaxPerDocument)
	cmd.Printf("  Min score: %.2f\n", settings.Ranking.MinScore)
	cmd.Println()

	cmd.Println("[Collection]")
	cmd.Printf("  Default persona: %s\n", settings.Collection.DefaultPersona)
	cmd.Printf("  Default job: %s\n", settings.Collection.DefaultJob)
	cmd.Printf("  Output file: %s\n", settings.Collection.OutputFile)
	cmd.Println()

	cmd.Println("[Batch]")
	cmd.Printf("  Workers: %d\n", settings.Batch.Workers)
	cmd.Println()

	cmd.Println("[Watch]")
	cmd.Printf("  Rate: %g/s\n", settings.Watch.Rate)
	cmd.Printf("  Burst: %d\n", settings.Watch.Burst)

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}
	cmd.Printf("%s = %s\n", args[0], args[1])
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	for _, key := range settingsService.Keys() {
		cmd.Println(key)
	}
	return nil
}
