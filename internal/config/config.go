// Package config defines the start list tool configuration and its loader.
//
// Conventions:
// - Defaults live in New; Load layers a YAML file and environment on top.
// - Validation failures wrap ErrInvalidConfig, loader failures ErrLoadConfig.
package config

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Columns maps athlete fields to the header names of the registration sheet.
type Columns struct {
	ID          string `koanf:"id"`
	Competition string `koanf:"competition"`
	Team        string `koanf:"team"`
	License     string `koanf:"license"`
	LastName    string `koanf:"last_name"`
	FirstName   string `koanf:"first_name"`
	Sex         string `koanf:"sex"`
	BirthDate   string `koanf:"birth_date"`
	Club        string `koanf:"club"`
}

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogJSON switches log output to JSON lines.
	LogJSON bool `koanf:"log_json"`

	// Input is the registration sheet (.xlsx, .xlsm or .csv).
	Input string `koanf:"input"`

	// Output is the start list CSV written for the timing software.
	Output string `koanf:"output"`

	// StartBib is the bib of the first team.
	StartBib int `koanf:"start_bib"`

	// Delimiter separates output columns; a single character.
	Delimiter string `koanf:"delimiter"`

	// Sheet selects the worksheet of an Excel input; empty means the first one.
	Sheet string `koanf:"sheet"`

	// MetricsFile, when set, receives the run metrics in Prometheus text format.
	MetricsFile string `koanf:"metrics_file"`

	// Columns maps athlete fields to input header names.
	Columns Columns `koanf:"columns"`
}

// New returns a Config holding the defaults.
func New() *Config {
	return &Config{
		LogLevel:  "info",
		Input:     "dist/xs.xlsx",
		Output:    "dist/teams.csv",
		StartBib:  1,
		Delimiter: ",",
		Columns:   DefaultColumns(),
	}
}

// DefaultColumns returns the headers of the federation registration export.
func DefaultColumns() Columns {
	return Columns{
		ID:          "id",
		Competition: "Competition",
		Team:        "Equipe",
		License:     "Numéro de licence fftri long",
		LastName:    "Nom",
		FirstName:   "Prénom",
		Sex:         "Sexe",
		BirthDate:   "Date de naissance",
		Club:        "Nom du club de la licence fftri",
	}
}

// DelimiterRune returns the output delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// Validate checks values that cannot be corrected silently.
func (c *Config) Validate() error {
	if c.StartBib < 0 {
		return fmt.Errorf("%w: start_bib must not be negative, got %d", ErrInvalidConfig, c.StartBib)
	}
	if utf8.RuneCountInString(c.Delimiter) != 1 || c.Delimiter == "\n" || c.Delimiter == "\r" || c.Delimiter == "\"" {
		return fmt.Errorf("%w: delimiter must be a single character, got %q", ErrInvalidConfig, c.Delimiter)
	}
	cols := map[string]string{
		"id":          c.Columns.ID,
		"competition": c.Columns.Competition,
		"team":        c.Columns.Team,
		"license":     c.Columns.License,
		"last_name":   c.Columns.LastName,
		"first_name":  c.Columns.FirstName,
		"sex":         c.Columns.Sex,
		"birth_date":  c.Columns.BirthDate,
		"club":        c.Columns.Club,
	}
	for key, name := range cols {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: columns.%s must not be empty", ErrInvalidConfig, key)
		}
	}
	return nil
}
