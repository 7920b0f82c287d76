package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	// Input
	CSVPath string
	Year    string // optional four-digit calendar year filter, "" = no filter

	// Output
	OutputDir string

	// Fonts
	FontBoldPath    string
	FontRegularPath string

	// Run-history archive (disabled when empty)
	ArchiveDBPath string
}

func Load() *Config {
	cfg := &Config{
		CSVPath: getEnv("CSV_PATH", filepath.Join("data", "Activities.csv")),
		Year:    getEnv("YEAR", ""),

		OutputDir: getEnv("OUTPUT_DIR", "data"),

		FontBoldPath:    getEnv("FONT_BOLD_PATH", "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"),
		FontRegularPath: getEnv("FONT_REGULAR_PATH", "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"),

		ArchiveDBPath: getEnv("ARCHIVE_DB_PATH", ""),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if c.CSVPath == "" {
		errors = append(errors, "CSV path cannot be empty")
	}

	if c.Year != "" {
		year, err := strconv.Atoi(c.Year)
		if err != nil {
			errors = append(errors, fmt.Sprintf("invalid year '%s': must be a number", c.Year))
		} else if year < 1000 || year > 9999 {
			errors = append(errors, fmt.Sprintf("invalid year %d: must be four digits", year))
		}
	}

	if c.OutputDir == "" {
		errors = append(errors, "output directory cannot be empty")
	} else if _, err := os.Stat(c.OutputDir); os.IsNotExist(err) {
		if err := os.MkdirAll(c.OutputDir, 0755); err != nil {
			errors = append(errors, fmt.Sprintf("cannot create output directory '%s': %v", c.OutputDir, err))
		}
	}

	// Check if directory exists or can be created
	if c.ArchiveDBPath != "" {
		dir := filepath.Dir(c.ArchiveDBPath)
		if dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					errors = append(errors, fmt.Sprintf("cannot create archive database directory '%s': %v", dir, err))
				}
			}
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// YearFilter returns the parsed year filter, or 0 when no filter is set.
// Call Validate first; an unparsable year reports 0 here.
func (c *Config) YearFilter() int {
	if c.Year == "" {
		return 0
	}
	year, err := strconv.Atoi(c.Year)
	if err != nil {
		return 0
	}
	return year
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
