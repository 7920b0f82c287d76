// Package storage keeps an optional run history: every generated summary
// can be archived in a local SQLite database for later comparison across
// years and re-runs. The pipeline itself never reads this data back.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"souhrn/internal/core"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

// SummaryRun is one archived pipeline run.
type SummaryRun struct {
	ID        int64
	Summary   core.Summary
	ImagePath string
	CreatedAt time.Time
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// SaveSummary appends one run to the archive and returns its row id.
func (r *SQLiteRepository) SaveSummary(ctx context.Context, s core.Summary, imagePath string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO summaries (
			year, total_activities, most_frequent_type, most_frequent_count,
			total_seconds, total_distance_km, total_elevation, total_calories,
			total_steps, image_path, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.Year, s.TotalActivities, s.MostFrequentType, s.MostFrequentCount,
		s.TotalSeconds, s.TotalDistanceKm, s.TotalElevation, s.TotalCalories,
		s.TotalSteps, imagePath, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("insert summary: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("summary row id: %w", err)
	}

	slog.InfoContext(ctx, "Summary archived",
		"id", id,
		"year", s.Year,
		"activities", s.TotalActivities)

	return id, nil
}

// RunsForYear returns the archived runs for a year, newest first.
func (r *SQLiteRepository) RunsForYear(ctx context.Context, year int) ([]SummaryRun, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, year, total_activities, most_frequent_type, most_frequent_count,
		       total_seconds, total_distance_km, total_elevation, total_calories,
		       total_steps, image_path, created_at
		FROM summaries
		WHERE year = ?
		ORDER BY id DESC`, year)
	if err != nil {
		return nil, fmt.Errorf("query summaries: %w", err)
	}
	defer rows.Close()

	var runs []SummaryRun
	for rows.Next() {
		var run SummaryRun
		var createdAt string
		if err := rows.Scan(
			&run.ID, &run.Summary.Year, &run.Summary.TotalActivities,
			&run.Summary.MostFrequentType, &run.Summary.MostFrequentCount,
			&run.Summary.TotalSeconds, &run.Summary.TotalDistanceKm,
			&run.Summary.TotalElevation, &run.Summary.TotalCalories,
			&run.Summary.TotalSteps, &run.ImagePath, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		run.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate summaries: %w", err)
	}
	return runs, nil
}
