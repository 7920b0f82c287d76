package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"souhrn/internal/cli"
	"souhrn/internal/config"
	"souhrn/internal/core"
	"souhrn/internal/log"
	"souhrn/internal/render"
	"souhrn/internal/source/csvfile"
	"souhrn/internal/stats"
	"souhrn/internal/storage"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	archive := cli.InitArchive(logger, cfg.ArchiveDBPath)
	if archive != nil {
		defer archive.Close()
	}

	if err := run(context.Background(), cfg, logger, archive); err != nil {
		logger.Error("Summary generation failed", log.FieldError, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *log.Logger, archive *storage.SQLiteRepository) error {
	logger.Info("Reading activity data", log.FieldCSVPath, cfg.CSVPath)
	if cfg.Year != "" {
		logger.Info("Filtering for year", log.FieldYear, cfg.Year)
	}

	summary, err := stats.Aggregate(ctx, csvfile.New(cfg.CSVPath), cfg.YearFilter())
	if err != nil {
		return fmt.Errorf("aggregate activities: %w", err)
	}

	logger.Info("Activity summary computed",
		log.FieldYear, summary.Year,
		log.FieldActivities, summary.TotalActivities,
		"most_frequent", fmt.Sprintf("%s (%dx)", summary.MostFrequentType, summary.MostFrequentCount),
		"total_time", core.FormatTime(summary.TotalSeconds),
		"total_distance_km", core.FormatNumber(summary.TotalDistanceKm, 1),
		"total_elevation", core.FormatNumber(summary.TotalElevation, 0),
		"total_calories", core.FormatNumber(summary.TotalCalories, 0),
		"total_steps", core.FormatNumber(summary.TotalSteps, 0))

	outPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("garmin-%d.png", summary.Year))
	opts := render.Options{
		FontBoldPath:    cfg.FontBoldPath,
		FontRegularPath: cfg.FontRegularPath,
	}
	if _, err := render.WriteSummary(summary, outPath, opts); err != nil {
		return fmt.Errorf("render summary: %w", err)
	}

	if archive != nil {
		if _, err := archive.SaveSummary(ctx, summary, outPath); err != nil {
			return fmt.Errorf("archive summary: %w", err)
		}
	}

	return nil
}
