package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/unbound-force/ontostats/internal/dataset"
	"github.com/unbound-force/ontostats/internal/taxonomy"
)

// WriteCSVTree exports every derived mapping of a calculated dataset
// as CSV files under outputDir, using the layout
// outputDir/<dataset>/... with per-case subdirectories for the
// stereotype statistic tables. All calculation passes must have run.
func WriteCSVTree(outputDir string, d *dataset.Dataset) error {
	datasetDir := filepath.Join(outputDir, d.Name())
	if err := os.MkdirAll(datasetDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	writers := []func(string, *dataset.Dataset) error{
		writeBasicData,
		writeModelData,
		writeStatistics,
		writeModelStatistics,
		writeStereotypeStatistics,
		writeYearTables,
		writeModelsByYear,
		writeCountsByYear,
		writeInvalids,
	}
	for _, write := range writers {
		if err := write(datasetDir, d); err != nil {
			return err
		}
	}

	// The cross-tabulation file sits next to the dataset directory.
	return writeCrossTab(filepath.Join(outputDir, d.Name()+"_analysis2.csv"), d)
}

// writeCSV writes rows to path, creating parent directories.
func writeCSV(path string, comma rune, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = comma
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// formatFloat renders a cell value without trailing zeros.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func writeBasicData(dir string, d *dataset.Dataset) error {
	rows := [][]string{{"model", "year", "total_class_number", "total_relation_number"}}
	for _, m := range d.Models() {
		rows = append(rows, []string{
			m.Name,
			strconv.Itoa(m.Year),
			strconv.Itoa(m.TotalClasses),
			strconv.Itoa(m.TotalRelations),
		})
	}
	return writeCSV(filepath.Join(dir, d.Name()+"_basic_data.csv"), ',', rows)
}

func writeModelData(dir string, d *dataset.Dataset) error {
	for _, kind := range []taxonomy.Kind{taxonomy.KindClass, taxonomy.KindRelation} {
		labels := d.Vocabulary(kind).Labels()
		rows := [][]string{append([]string{"model"}, labels...)}
		for _, m := range d.Models() {
			row := make([]string, 0, len(labels)+1)
			row = append(row, m.Name)
			counts := m.Stereotypes(kind)
			for _, label := range labels {
				row = append(row, strconv.Itoa(counts[label]))
			}
			rows = append(rows, row)
		}
		path := filepath.Join(dir, fmt.Sprintf("%s_%s_data.csv", d.Name(), kind))
		if err := writeCSV(path, ',', rows); err != nil {
			return err
		}
	}
	return nil
}

func writeStatistics(dir string, d *dataset.Dataset) error {
	statistics, err := d.Statistics()
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(statistics))
	for key := range statistics {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	rows := [][]string{{"metric", "value"}}
	for _, key := range keys {
		rows = append(rows, []string{key, formatFloat(statistics[key])})
	}
	return writeCSV(filepath.Join(dir, d.Name()+"_statistics.csv"), ',', rows)
}

func writeModelStatistics(dir string, d *dataset.Dataset) error {
	header := []string{"model"}
	for _, kind := range []string{"class", "relation"} {
		for _, name := range []string{"total", "stereotyped", "non_stereotyped", "ontouml", "non_ontouml"} {
			header = append(header, kind+"_"+name)
		}
	}
	rows := [][]string{header}

	classBreakdowns, err := d.Breakdowns(taxonomy.KindClass)
	if err != nil {
		return err
	}
	relationBreakdowns, err := d.Breakdowns(taxonomy.KindRelation)
	if err != nil {
		return err
	}

	for i := range classBreakdowns {
		c, r := classBreakdowns[i], relationBreakdowns[i]
		rows = append(rows, []string{
			c.Model,
			strconv.Itoa(c.Total), strconv.Itoa(c.Stereotyped), strconv.Itoa(c.NonStereotyped),
			strconv.Itoa(c.Ontouml), strconv.Itoa(c.NonOntouml),
			strconv.Itoa(r.Total), strconv.Itoa(r.Stereotyped), strconv.Itoa(r.NonStereotyped),
			strconv.Itoa(r.Ontouml), strconv.Itoa(r.NonOntouml),
		})
	}
	return writeCSV(filepath.Join(dir, d.Name()+"_models_statistics.csv"), ',', rows)
}

func writeStereotypeStatistics(dir string, d *dataset.Dataset) error {
	for _, caseKey := range dataset.StereoCases() {
		kind, clean := splitCaseKey(caseKey)
		tables, err := d.StereotypeStatistics(kind, clean)
		if err != nil {
			return err
		}

		names := make([]string, 0, len(tables))
		for name := range tables {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			t := tables[name]
			rows := [][]string{append([]string{"stereotype"}, t.Columns...)}
			for i, label := range t.RowLabels {
				row := make([]string, 0, len(t.Columns)+1)
				row = append(row, label)
				for _, v := range t.Cells[i] {
					row = append(row, formatFloat(v))
				}
				rows = append(rows, row)
			}
			path := filepath.Join(dir, caseKey, name+".csv")
			if err := writeCSV(path, ',', rows); err != nil {
				return err
			}
		}
	}
	return nil
}

// splitCaseKey parses a stereotype case key like "class_raw".
func splitCaseKey(caseKey string) (taxonomy.Kind, bool) {
	clean := false
	kind := caseKey
	if n := len(caseKey); n > 6 && caseKey[n-6:] == "_clean" {
		clean = true
		kind = caseKey[:n-6]
	} else if n > 4 && caseKey[n-4:] == "_raw" {
		kind = caseKey[:n-4]
	}
	return taxonomy.Kind(kind), clean
}

func writeYearTables(dir string, d *dataset.Dataset) error {
	for _, key := range dataset.YearTableKeys() {
		t, err := d.YearTable(key)
		if err != nil {
			return err
		}

		rows := [][]string{append([]string{"year"}, t.Labels...)}
		for i, year := range t.Years {
			row := make([]string, 0, len(t.Labels)+1)
			row = append(row, strconv.Itoa(year))
			for _, v := range t.Cells[i] {
				row = append(row, formatFloat(v))
			}
			rows = append(rows, row)
		}

		subdir := "class_raw"
		if strings.HasPrefix(key, "relation_") {
			subdir = "relation_raw"
		}
		path := filepath.Join(dir, subdir, "years_stereotypes_"+key+".csv")
		if err := writeCSV(path, ',', rows); err != nil {
			return err
		}
	}
	return nil
}

func writeModelsByYear(dir string, d *dataset.Dataset) error {
	modelsByYear, err := d.ModelsByYear()
	if err != nil {
		return err
	}
	rows := [][]string{{"year", "num_models", "ratio"}}
	for _, yc := range modelsByYear {
		rows = append(rows, []string{
			strconv.Itoa(yc.Year),
			strconv.Itoa(yc.NumModels),
			formatFloat(yc.Ratio),
		})
	}
	return writeCSV(filepath.Join(dir, "years_models_number.csv"), ',', rows)
}

func writeCountsByYear(dir string, d *dataset.Dataset) error {
	countsByYear, err := d.CountsByYear()
	if err != nil {
		return err
	}

	series := []string{"num", "ontouml", "none", "other"}
	header := []string{"year"}
	for _, kind := range []string{"class", "relation"} {
		for _, s := range series {
			base := s + "_" + kind
			header = append(header,
				base, "ratio_"+base, "cumulative_"+base, "cumulative_ratio_"+base)
			if s != "num" {
				header = append(header, "ratio_"+base+"_to_total", "cumulative_ratio_"+base+"_to_total")
			}
		}
	}
	rows := [][]string{header}

	for _, yc := range countsByYear {
		row := []string{strconv.Itoa(yc.Year)}
		for _, kyc := range []dataset.KindYearCounts{yc.Class, yc.Relation} {
			for _, cell := range []struct {
				name string
				c    dataset.SeriesCell
			}{
				{"num", kyc.Num}, {"ontouml", kyc.Ontouml},
				{"none", kyc.None}, {"other", kyc.Other},
			} {
				row = append(row,
					strconv.Itoa(cell.c.Count),
					formatFloat(cell.c.Ratio),
					strconv.Itoa(cell.c.Cumulative),
					formatFloat(cell.c.CumulativeRatio))
				if cell.name != "num" {
					row = append(row,
						formatFloat(cell.c.RatioToTotal),
						formatFloat(cell.c.CumulativeRatioToTotal))
				}
			}
		}
		rows = append(rows, row)
	}
	return writeCSV(filepath.Join(dir, "stereotypes_count_by_year.csv"), ',', rows)
}

func writeInvalids(dir string, d *dataset.Dataset) error {
	for _, kind := range []taxonomy.Kind{taxonomy.KindClass, taxonomy.KindRelation} {
		invalids, err := d.Invalids(kind)
		if err != nil {
			return err
		}

		labels := make([]string, 0, len(invalids))
		for label := range invalids {
			labels = append(labels, label)
		}
		sort.Strings(labels)

		// Semicolon-separated, matching the downstream consumers of
		// the invalid-stereotype files.
		rows := [][]string{{"stereotype", "accumulated_frequency", "model_coverage"}}
		for _, label := range labels {
			entry := invalids[label]
			rows = append(rows, []string{
				label,
				strconv.Itoa(entry.AccumulatedFrequency),
				strconv.Itoa(entry.ModelCoverage),
			})
		}
		path := filepath.Join(dir, fmt.Sprintf("%s_invalid_%s_stereotypes_metrics.csv", d.Name(), kind))
		if err := writeCSV(path, ';', rows); err != nil {
			return err
		}
	}
	return nil
}

func writeCrossTab(path string, d *dataset.Dataset) error {
	header := []string{"combination"}
	for _, kind := range []string{"class", "relation"} {
		for _, metric := range []string{"af", "mc", "ratio_af", "ratio_mc"} {
			header = append(header, kind+"_"+metric)
		}
	}
	rows := [][]string{header}

	tabs := make([]*dataset.CrossTab, 0, 2)
	for _, kind := range []taxonomy.Kind{taxonomy.KindClass, taxonomy.KindRelation} {
		ct, err := d.CrossTab(kind)
		if err != nil {
			return err
		}
		tabs = append(tabs, ct)
	}

	appendGroup := func(name string, metrics []taxonomy.GroupMetrics) {
		row := []string{name}
		for _, g := range metrics {
			row = append(row,
				strconv.Itoa(g.AF),
				strconv.Itoa(g.MC),
				formatFloat(g.RatioAF),
				formatFloat(g.RatioMC))
		}
		rows = append(rows, row)
	}

	for _, category := range taxonomy.Categories() {
		appendGroup(string(category), []taxonomy.GroupMetrics{
			tabs[0].Groups[category], tabs[1].Groups[category],
		})
	}
	appendGroup("all_ontouml", []taxonomy.GroupMetrics{tabs[0].AllOntouml, tabs[1].AllOntouml})
	appendGroup("all_none", []taxonomy.GroupMetrics{tabs[0].AllNone, tabs[1].AllNone})
	appendGroup("all_other", []taxonomy.GroupMetrics{tabs[0].AllOther, tabs[1].AllOther})

	return writeCSV(path, ',', rows)
}
