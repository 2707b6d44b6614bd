package config_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/okian/startlist/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.StartBib, convey.ShouldEqual, 1)
				convey.So(cfg.Output, convey.ShouldEqual, "dist/teams.csv")
				convey.So(cfg.Columns, convey.ShouldResemble, config.DefaultColumns())
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("STARTLIST_START_BIB", "100")
			_ = os.Setenv("STARTLIST_DELIMITER", ";")
			_ = os.Setenv("STARTLIST_LOG_LEVEL", "debug")
			_ = os.Setenv("STARTLIST_LOG_JSON", "true")
			_ = os.Setenv("STARTLIST_COLUMNS_TEAM", "Team")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.StartBib, convey.ShouldEqual, 100)
				convey.So(cfg.Delimiter, convey.ShouldEqual, ";")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.LogJSON, convey.ShouldBeTrue)
				convey.So(cfg.Columns.Team, convey.ShouldEqual, "Team")
				convey.So(cfg.Columns.LastName, convey.ShouldEqual, "Nom")
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
input: "inscriptions.xlsx"
output: "out/startlist.csv"
start_bib: 200
sheet: "Duo"
metrics_file: "out/metrics.prom"
columns:
  id: "Dossier"
  club: "Club"
`
			tmpFile := createTempConfigFile(t, yamlContent)

			_ = os.Setenv("STARTLIST_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file and keep other defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Input, convey.ShouldEqual, "inscriptions.xlsx")
				convey.So(cfg.Output, convey.ShouldEqual, "out/startlist.csv")
				convey.So(cfg.StartBib, convey.ShouldEqual, 200)
				convey.So(cfg.Sheet, convey.ShouldEqual, "Duo")
				convey.So(cfg.MetricsFile, convey.ShouldEqual, "out/metrics.prom")
				convey.So(cfg.Columns.ID, convey.ShouldEqual, "Dossier")
				convey.So(cfg.Columns.Club, convey.ShouldEqual, "Club")
				convey.So(cfg.Columns.Team, convey.ShouldEqual, "Equipe")
				convey.So(cfg.Delimiter, convey.ShouldEqual, ",")
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			tmpFile := createTempConfigFile(t, "start_bib: 200\ndelimiter: \";\"\n")

			_ = os.Setenv("STARTLIST_CONFIG", tmpFile)
			_ = os.Setenv("STARTLIST_START_BIB", "7")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.StartBib, convey.ShouldEqual, 7)
				convey.So(cfg.Delimiter, convey.ShouldEqual, ";")
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			tmpFile := createTempConfigFile(t, `invalid: yaml: content: [`)

			_ = os.Setenv("STARTLIST_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("STARTLIST_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("STARTLIST_START_BIB", "first")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with a negative start bib", func() {
			_ = os.Setenv("STARTLIST_START_BIB", "-3")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "start_bib")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with an empty delimiter", func() {
			_ = os.Setenv("STARTLIST_DELIMITER", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"STARTLIST_CONFIG",
		"STARTLIST_START_BIB",
		"STARTLIST_DELIMITER",
		"STARTLIST_LOG_LEVEL",
		"STARTLIST_LOG_JSON",
		"STARTLIST_COLUMNS_TEAM",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(t *testing.T, content string) string {
	tmpFile, err := os.CreateTemp(t.TempDir(), "startlist-config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tmpFile.WriteString(content); err != nil {
		t.Fatal(err)
	}
	if err := tmpFile.Close(); err != nil {
		t.Fatal(err)
	}
	return tmpFile.Name()
}
