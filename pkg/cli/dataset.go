package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/paretodecide/pdctl/pkg/data"
	"github.com/paretodecide/pdctl/pkg/input"
)

const queryResultLimitDefault = 100

var (
	datasetNameFlag = &cli.StringFlag{
		Name:     "name",
		Usage:    "Dataset name",
		Required: true,
	}

	runIDFlag = &cli.Int64Flag{
		Name:     "id",
		Usage:    "Run ID",
		Required: true,
	}

	queryLimitFlag = &cli.IntFlag{
		Name:  "limit",
		Usage: "Limits number of results returned",
		Value: queryResultLimitDefault,
	}

	importCmd = &cli.Command{
		Name:      "import",
		Aliases:   []string{"i"},
		Usage:     "Parse an input document and store it as a named dataset",
		ArgsUsage: "[file]",
		Action:    cmdImport,
		Flags: []cli.Flag{
			datasetNameFlag,
			nameFieldFlag,
		},
	}

	queryCmd = &cli.Command{
		Name:    "query",
		Aliases: []string{"q"},
		Usage:   "List stored datasets and analysis runs",
		Subcommands: []*cli.Command{
			{
				Name:    "datasets",
				Usage:   "List stored datasets",
				Aliases: []string{"d"},
				Action:  cmdQueryDatasets,
				Flags:   []cli.Flag{queryLimitFlag},
			},
			{
				Name:    "runs",
				Usage:   "List recent analysis runs",
				Aliases: []string{"r"},
				Action:  cmdQueryRuns,
				Flags:   []cli.Flag{queryLimitFlag},
			},
			{
				Name:   "run",
				Usage:  "Re-emit the result document of a stored run",
				Action: cmdQueryRun,
				Flags:  []cli.Flag{runIDFlag},
			},
		},
	}
)

func cmdImport(c *cli.Context) error {
	cfg := getConfig(c)

	nameField := cfg.Conf.NameField
	if c.IsSet(nameFieldFlag.Name) {
		nameField = c.String(nameFieldFlag.Name)
	}

	file := c.Args().First()
	var (
		doc *input.Document
		err error
	)
	if file == "" || file == "-" {
		doc, err = input.Parse(os.Stdin, "", nameField)
	} else {
		var f *os.File
		if f, err = os.Open(file); err != nil {
			return fmt.Errorf("opening input file: %w", err)
		}
		defer f.Close()
		doc, err = input.Parse(f, file, nameField)
	}
	if err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}
	if len(doc.Items) == 0 {
		return fmt.Errorf("no items in input")
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding dataset: %w", err)
	}

	name := c.String(datasetNameFlag.Name)
	if err := data.SaveDataset(cfg.DB, name, len(doc.Items), b); err != nil {
		return fmt.Errorf("saving dataset: %w", err)
	}

	slog.Info("dataset saved", "name", name, "items", len(doc.Items))
	return nil
}

func cmdQueryDatasets(c *cli.Context) error {
	cfg := getConfig(c)
	list, err := data.ListDatasets(cfg.DB, queryLimit(c))
	if err != nil {
		return fmt.Errorf("failed to query datasets: %w", err)
	}
	return encode(cfg.Format, list)
}

func cmdQueryRuns(c *cli.Context) error {
	cfg := getConfig(c)
	list, err := data.ListRuns(cfg.DB, queryLimit(c))
	if err != nil {
		return fmt.Errorf("failed to query runs: %w", err)
	}
	return encode(cfg.Format, list)
}

func cmdQueryRun(c *cli.Context) error {
	cfg := getConfig(c)
	run, err := data.GetRun(cfg.DB, c.Int64(runIDFlag.Name))
	if err != nil {
		return fmt.Errorf("failed to query run: %w", err)
	}
	return encode(cfg.Format, run)
}

func queryLimit(c *cli.Context) int {
	limit := c.Int(queryLimitFlag.Name)
	if limit <= 0 || limit > queryResultLimitDefault {
		limit = queryResultLimitDefault
	}
	return limit
}
