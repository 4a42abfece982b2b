package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/unbound-force/ontostats/internal/dataset"
	"github.com/unbound-force/ontostats/internal/loader"
	"github.com/unbound-force/ontostats/internal/report"
	"github.com/unbound-force/ontostats/internal/store"
)

// logger is the application-wide structured logger (writes to stderr).
var logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: false,
})

// Set by build flags.
var version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "ontostats",
		Short: "Ontostats — stereotype statistics over model catalogs",
		Long: `Ontostats aggregates per-model stereotype counts from a model
catalog into dataset-wide statistics: totals, ratios, yearly trends,
normalized distributions, and categorical breakdowns, with built-in
consistency validation.`,
		Version: version,
	}

	root.AddCommand(newStatsCmd())
	root.AddCommand(newSchemaCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// statsParams holds the parsed flags for the stats command.
type statsParams struct {
	catalogPath string
	format      string
	outputDir   string
	snapshotDir string
	interactive bool
	stdout      io.Writer
}

// runStats is the extracted, testable body of the stats command.
func runStats(p statsParams) error {
	if p.format != "text" && p.format != "json" {
		return fmt.Errorf("invalid format %q: must be 'text' or 'json'", p.format)
	}

	d, err := loadDataset(p.catalogPath)
	if err != nil {
		return err
	}

	logger.Info("calculating dataset statistics", "dataset", d.Name(), "models", len(d.Models()))
	if err := d.CalculateAll(); err != nil {
		return err
	}
	logger.Info("all calculations validated", "dataset", d.Name())

	if p.outputDir != "" {
		if err := report.WriteCSVTree(p.outputDir, d); err != nil {
			return err
		}
		logger.Info("CSV tree written", "dir", p.outputDir)
	}

	if p.snapshotDir != "" {
		path, err := store.Save(p.snapshotDir, d)
		if err != nil {
			return err
		}
		logger.Info("snapshot saved", "path", path)
	}

	if p.interactive {
		return runInteractiveStats(d)
	}

	switch p.format {
	case "json":
		r, err := report.Build(d)
		if err != nil {
			return err
		}
		return report.WriteJSON(p.stdout, r)
	default:
		return report.WriteText(p.stdout, d)
	}
}

// loadDataset reads either a catalog file or a saved snapshot,
// depending on the file extension.
func loadDataset(path string) (*dataset.Dataset, error) {
	if strings.HasSuffix(path, store.Extension) {
		logger.Info("loading snapshot", "path", path)
		return store.Load(path)
	}

	logger.Info("loading catalog", "path", path)
	catalog, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	return dataset.New(catalog.Name, catalog.ClassVocabulary, catalog.RelationVocabulary, catalog.Models)
}

func newStatsCmd() *cobra.Command {
	var (
		format      string
		outputDir   string
		snapshotDir string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "stats <catalog>",
		Short: "Calculate and export dataset statistics",
		Long: `Calculate all dataset statistics for a model catalog (YAML or
JSON) or a previously saved snapshot, validate their consistency,
and print a summary.

With --out, the full derived state is additionally exported as a
CSV file tree.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(statsParams{
				catalogPath: args[0],
				format:      format,
				outputDir:   outputDir,
				snapshotDir: snapshotDir,
				interactive: interactive,
				stdout:      os.Stdout,
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "text",
		"output format: text or json")
	cmd.Flags().StringVar(&outputDir, "out", "",
		"directory for the exported CSV tree (default: no CSV export)")
	cmd.Flags().StringVar(&snapshotDir, "snapshot", "",
		"directory to save a dataset snapshot to (default: no snapshot)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false,
		"browse the summary in an interactive viewer")

	return cmd
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for ontostats JSON output",
		Long: `Print the JSON Schema (Draft 2020-12) that documents the
structure of ontostats stats --format=json output. Useful for
validating output or generating client types.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), report.Schema)
			return err
		},
	}
}
