package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/paretodecide/pdctl/pkg/data"
	"github.com/paretodecide/pdctl/pkg/decision"
	"github.com/paretodecide/pdctl/pkg/input"
)

var (
	maximizeFlag = &cli.StringFlag{
		Name:    "maximize",
		Aliases: []string{"M"},
		Usage:   "Comma-separated fields to maximize",
	}

	minimizeFlag = &cli.StringFlag{
		Name:    "minimize",
		Aliases: []string{"m"},
		Usage:   "Comma-separated fields to minimize",
	}

	criteriaFlag = &cli.StringFlag{
		Name:    "criteria",
		Aliases: []string{"c"},
		Usage:   `Combined criteria spec: "field:max,field:min,..."`,
	}

	weightsFlag = &cli.StringFlag{
		Name:  "weights",
		Usage: `Weight overrides: "field:weight,..."`,
	}

	sortByFlag = &cli.StringFlag{
		Name:  "sort-by",
		Usage: "Sort axis for marginal gain analysis (auto-detected from a single minimize field)",
	}

	sortDirFlag = &cli.StringFlag{
		Name:  "sort-dir",
		Usage: "Sort axis direction [asc, desc]",
		Value: string(decision.SortAsc),
	}

	thresholdFlag = &cli.Float64Flag{
		Name:  "threshold",
		Usage: fmt.Sprintf("Sweet spot gain score threshold (default: %v)", decision.GainThresholdDefault),
	}

	toleranceFlag = &cli.Float64Flag{
		Name:  "tolerance",
		Usage: fmt.Sprintf("Trap proximity as a fraction of the sort axis range (default: %v)", decision.TrapToleranceDefault),
	}

	segmentsFlag = &cli.IntFlag{
		Name:  "segments",
		Usage: fmt.Sprintf("Number of equal-width sort axis segments (default: %d)", decision.SegmentCountDefault),
	}

	nameFieldFlag = &cli.StringFlag{
		Name:  "name-field",
		Usage: `Item name field (default: "name")`,
	}

	datasetFlag = &cli.StringFlag{
		Name:  "dataset",
		Usage: "Analyze a stored dataset instead of a file",
	}

	noSaveFlag = &cli.BoolFlag{
		Name:  "no-save",
		Usage: "Do not record this run in the local database",
	}

	analyzeCmd = &cli.Command{
		Name:      "analyze",
		Aliases:   []string{"a"},
		Usage:     "Run Pareto analysis over an input document (JSON/CSV file, stdin, or stored dataset)",
		ArgsUsage: "[file]",
		Action:    cmdAnalyze,
		Flags: []cli.Flag{
			maximizeFlag,
			minimizeFlag,
			criteriaFlag,
			weightsFlag,
			sortByFlag,
			sortDirFlag,
			thresholdFlag,
			toleranceFlag,
			segmentsFlag,
			nameFieldFlag,
			datasetFlag,
			noSaveFlag,
		},
	}
)

func cmdAnalyze(c *cli.Context) error {
	cfg := getConfig(c)

	nameField := cfg.Conf.NameField
	if c.IsSet(nameFieldFlag.Name) {
		nameField = c.String(nameFieldFlag.Name)
	}

	doc, source, err := loadDocument(c, nameField)
	if err != nil {
		return err
	}

	criteria, err := input.BuildCriteria(doc, input.CriteriaSpec{
		Maximize: input.SplitFields(c.String(maximizeFlag.Name)),
		Minimize: input.SplitFields(c.String(minimizeFlag.Name)),
		Combined: c.String(criteriaFlag.Name),
		Weights:  c.String(weightsFlag.Name),
	})
	if err != nil {
		return fmt.Errorf("resolving criteria: %w", err)
	}
	if err := doc.CheckNumeric(criteria); err != nil {
		return fmt.Errorf("invalid input data: %w", err)
	}

	dcfg := decision.Config{
		Criteria:      criteria,
		SortField:     c.String(sortByFlag.Name),
		SortDirection: decision.SortDirection(c.String(sortDirFlag.Name)),
		GainThreshold: cfg.Conf.GainThreshold,
		TrapTolerance: cfg.Conf.TrapTolerance,
		Segments:      cfg.Conf.Segments,
	}
	if dcfg.SortField == "" {
		dcfg.SortField = doc.CostField
	}
	if c.IsSet(thresholdFlag.Name) {
		dcfg.GainThreshold = c.Float64(thresholdFlag.Name)
	}
	if c.IsSet(toleranceFlag.Name) {
		dcfg.TrapTolerance = c.Float64(toleranceFlag.Name)
	}
	if c.IsSet(segmentsFlag.Name) {
		dcfg.Segments = c.Int(segmentsFlag.Name)
	}

	res, err := decision.Analyze(doc.Items, dcfg)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if !c.Bool(noSaveFlag.Name) {
		recordRun(cfg, source, res)
	}

	if res.SortFieldAutoDetected {
		slog.Info("auto-detected sort axis", "field", res.SortField)
	}
	slog.Info("analysis complete",
		"total", res.Summary.Total,
		"pareto", res.Summary.ParetoCount,
		"ratio", res.Summary.ParetoRatio,
	)
	if res.SortField != "" {
		slog.Info("axis guidance",
			"sweet_spots", res.Summary.SweetSpots,
			"traps", res.Summary.Traps,
			"segments", res.Summary.Segments,
		)
	}

	switch cfg.Format {
	case formatTable:
		fmt.Fprintln(os.Stdout, renderTable(res, doc.Items))
	case formatMarkdown:
		fmt.Fprintln(os.Stdout, renderMarkdown(res, doc.Items))
	case formatCSV:
		fmt.Fprint(os.Stdout, renderCSV(res, doc.Items))
	default:
		if err := encode(cfg.Format, res); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}

// loadDocument reads the input document from a stored dataset, a file
// argument, or stdin ("-" or no argument).
func loadDocument(c *cli.Context, nameField string) (*input.Document, string, error) {
	cfg := getConfig(c)

	if ds := c.String(datasetFlag.Name); ds != "" {
		stored, err := data.GetDataset(cfg.DB, ds)
		if err != nil {
			return nil, "", fmt.Errorf("loading dataset: %w", err)
		}
		var doc input.Document
		if err := json.Unmarshal(stored.Document, &doc); err != nil {
			return nil, "", fmt.Errorf("decoding dataset %q: %w", ds, err)
		}
		return &doc, "dataset:" + ds, nil
	}

	file := c.Args().First()
	if file == "" || file == "-" {
		doc, err := input.Parse(os.Stdin, "", nameField)
		if err != nil {
			return nil, "", fmt.Errorf("reading stdin: %w", err)
		}
		return doc, "stdin", nil
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, "", fmt.Errorf("opening input file: %w", err)
	}
	defer f.Close()

	doc, err := input.Parse(f, file, nameField)
	if err != nil {
		return nil, "", fmt.Errorf("parsing %s: %w", file, err)
	}
	return doc, file, nil
}

// recordRun stores the run for later query. A store failure downgrades to
// a warning so it never masks a successful analysis.
func recordRun(cfg *appConfig, source string, res *decision.Result) {
	b, err := json.Marshal(res)
	if err != nil {
		slog.Warn("failed to marshal result for run history", "error", err)
		return
	}
	id, err := data.SaveRun(cfg.DB, &data.Run{
		Source:      source,
		SortField:   res.SortField,
		Total:       res.Summary.Total,
		ParetoCount: res.Summary.ParetoCount,
		ParetoRatio: res.Summary.ParetoRatio,
		Result:      b,
	})
	if err != nil {
		slog.Warn("failed to record run", "error", err)
		return
	}
	slog.Debug("run recorded", "id", id)
}
