// Package cli implements the pdctl command line application.
package cli

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/paretodecide/pdctl/pkg/config"
	"github.com/paretodecide/pdctl/pkg/data"
	"github.com/paretodecide/pdctl/pkg/logging"
)

const (
	appName      = "pdctl"
	appConfigKey = "app-config"

	formatJSON     = "json"
	formatYAML     = "yaml"
	formatTable    = "table"
	formatMarkdown = "markdown"
	formatCSV      = "csv"
)

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Prints verbose logs (optional, default: false)",
	}

	dbFilePathFlag = &cli.StringFlag{
		Name:  "db",
		Usage: fmt.Sprintf("Path to the Sqlite database file (optional, defaults to $HOME/.%s/%s)", appName, data.DataFileName),
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "Output format [json, yaml, table, markdown, csv]",
	}
)

// Execute creates and runs the CLI application.
func Execute() {
	logging.SetDefaultCLILogger("info")

	app := newApp()
	if err := app.Run(os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

type appConfig struct {
	Home   string
	Conf   *config.Config
	DB     *sql.DB
	Format string
}

func getConfig(c *cli.Context) *appConfig {
	return c.App.Metadata[appConfigKey].(*appConfig)
}

func newApp() *cli.App {
	return &cli.App{
		Name:                 appName,
		Version:              fmt.Sprintf("%s (%s - %s)", version, commit, date),
		Compiled:             time.Now(),
		EnableBashCompletion: true,
		HideHelpCommand:      true,
		Usage:                "Multi-criteria Pareto analysis with marginal gain sweet spot detection",
		Flags: []cli.Flag{
			debugFlag,
			dbFilePathFlag,
			formatFlag,
		},
		Commands: []*cli.Command{
			analyzeCmd,
			importCmd,
			queryCmd,
		},
		Before: func(c *cli.Context) error {
			if c.Bool(debugFlag.Name) {
				logging.SetDefaultCLILogger("debug")
			}

			home, created, err := config.GetOrCreateHomeDir(appName)
			if err != nil {
				return fmt.Errorf("resolving home dir: %w", err)
			}
			if created {
				slog.Debug("created app home", "path", home)
			}

			conf, err := config.ReadOrCreate(home)
			if err != nil {
				return fmt.Errorf("reading config: %w", err)
			}

			format := conf.Format
			if c.IsSet(formatFlag.Name) {
				format = c.String(formatFlag.Name)
			}
			switch format {
			case formatJSON, formatYAML, formatTable, formatMarkdown, formatCSV:
			default:
				return fmt.Errorf("unsupported output format: %s", format)
			}

			dbPath := c.String(dbFilePathFlag.Name)
			if dbPath == "" {
				dbPath = path.Join(home, data.DataFileName)
			}
			if err := data.Init(dbPath); err != nil {
				return fmt.Errorf("initializing database: %w", err)
			}
			db, err := data.GetDB(dbPath)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}

			c.App.Metadata[appConfigKey] = &appConfig{
				Home:   home,
				Conf:   conf,
				DB:     db,
				Format: format,
			}
			return nil
		},
		After: func(c *cli.Context) error {
			if cfg, ok := c.App.Metadata[appConfigKey].(*appConfig); ok && cfg.DB != nil {
				cfg.DB.Close()
			}
			return nil
		},
	}
}

// encode writes v to stdout in the structured output format. Table-style
// formats are handled by the individual commands.
func encode(format string, v any) error {
	if format == formatYAML {
		return yaml.NewEncoder(os.Stdout).Encode(v)
	}
	e := json.NewEncoder(os.Stdout)
	e.SetIndent("", "  ")
	return e.Encode(v)
}
