package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soccerlab/rater-api/internal/services/export"
	"github.com/soccerlab/rater-api/internal/services/profiles"
	"github.com/soccerlab/rater-api/internal/services/ratings"
	"github.com/soccerlab/rater-api/pkg/config"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Flatten stored ratings and profiles into CSV tables",
	Long: `Run the data export without starting the server.

Every stored rating record becomes a row in ratings.csv, every profile a
row in users.csv, and a plain-text statistics report is written alongside
them. Empty record directories produce header-only tables and a report
with zero counts.

Example:
  rater-api export
  rater-api export --output ./output`,
	RunE: runExport,
}

var exportOutput string

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportOutput, "output", "", "output directory (overrides config)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	outputPath := cfg.Storage.ExportPath
	if exportOutput != "" {
		outputPath = exportOutput
	}

	ratingService := ratings.NewService(ratings.NewFilesystemStore(cfg.Storage.RatingsPath), cfg.Rating.Dimensions)
	profileService := profiles.NewService(profiles.NewFilesystemStore(cfg.Storage.ProfilesPath))
	exportService := export.NewService(ratingService, profileService, cfg.Rating.Dimensions, outputPath)

	summary, err := exportService.Run(context.Background())
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Exported %d ratings from %d raters across %d clips\n",
		summary.TotalRatings, summary.DistinctRaters, summary.DistinctClips)
	if summary.SkippedRatings > 0 || summary.SkippedProfiles > 0 {
		fmt.Fprintf(out, "Skipped %d malformed rating files and %d malformed profile files\n",
			summary.SkippedRatings, summary.SkippedProfiles)
	}
	fmt.Fprintf(out, "Tables:  %s\n         %s\n", summary.RatingsPath, summary.UsersPath)
	fmt.Fprintf(out, "Report:  %s\n", summary.ReportPath)
	return nil
}
