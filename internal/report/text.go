package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/unbound-force/ontostats/internal/dataset"
	"github.com/unbound-force/ontostats/internal/taxonomy"
)

// WriteText writes a human-readable styled summary of a calculated
// dataset: corpus totals, ratios, the categorical cross-tabulation,
// and the worst out-of-vocabulary labels. Degrades gracefully for
// pipes and CI.
func WriteText(w io.Writer, d *dataset.Dataset) error {
	s := DefaultStyles()

	fmt.Fprintln(w, s.Header.Render(fmt.Sprintf("=== Dataset %s ===", d.Name())))
	fmt.Fprintln(w, s.SubHeader.Render(fmt.Sprintf("    %d model(s)", len(d.Models()))))
	fmt.Fprintln(w)

	statistics, err := d.Statistics()
	if err != nil {
		return err
	}
	writeTotals(w, s, statistics)
	writeRatios(w, s, statistics)

	if err := writeCrossTabText(w, s, d); err != nil {
		return err
	}
	return writeInvalidsText(w, s, d)
}

// summaryTotals lists the headline totals in display order.
var summaryTotals = []string{
	"total_classes", "stereotyped_classes", "ontouml_classes",
	"total_relations", "stereotyped_relations", "ontouml_relations",
}

func writeTotals(w io.Writer, s Styles, statistics map[string]float64) {
	fmt.Fprintln(w, s.Header.Render("--- Totals ---"))
	for _, key := range summaryTotals {
		fmt.Fprintf(w, "%s  %.0f\n", s.SummaryLabel.Render(key+":"), statistics[key])
	}
	fmt.Fprintln(w)
}

func writeRatios(w io.Writer, s Styles, statistics map[string]float64) {
	keys := make([]string, 0, len(statistics))
	for key := range Ratios(statistics) {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Fprintln(w, s.Header.Render("--- Ratios ---"))
	for _, key := range keys {
		fmt.Fprintf(w, "%s  %.4f\n", s.SummaryLabel.Render(key+":"), statistics[key])
	}
	fmt.Fprintln(w)
}

// Ratios filters a statistics mapping down to its ratio entries,
// using the ratio calculator's key set as the source of truth.
func Ratios(statistics map[string]float64) map[string]float64 {
	out := make(map[string]float64)
	for key := range dataset.Ratios(dataset.Totals{}) {
		if value, ok := statistics[key]; ok {
			out[key] = value
		}
	}
	return out
}

func writeCrossTabText(w io.Writer, s Styles, d *dataset.Dataset) error {
	tabs := make(map[taxonomy.Kind]*dataset.CrossTab, 2)
	for _, kind := range []taxonomy.Kind{taxonomy.KindClass, taxonomy.KindRelation} {
		ct, err := d.CrossTab(kind)
		if err != nil {
			return err
		}
		tabs[kind] = ct
	}

	rows := make([][]string, 0, 11)
	appendRow := func(name string, class, relation taxonomy.GroupMetrics) {
		rows = append(rows, []string{
			name,
			strconv.Itoa(class.AF), strconv.Itoa(class.MC), fmt.Sprintf("%.4f", class.RatioMC),
			strconv.Itoa(relation.AF), strconv.Itoa(relation.MC), fmt.Sprintf("%.4f", relation.RatioMC),
		})
	}
	for _, category := range taxonomy.Categories() {
		appendRow(string(category),
			tabs[taxonomy.KindClass].Groups[category],
			tabs[taxonomy.KindRelation].Groups[category])
	}
	appendRow("all_ontouml", tabs[taxonomy.KindClass].AllOntouml, tabs[taxonomy.KindRelation].AllOntouml)
	appendRow("all_none", tabs[taxonomy.KindClass].AllNone, tabs[taxonomy.KindRelation].AllNone)
	appendRow("all_other", tabs[taxonomy.KindClass].AllOther, tabs[taxonomy.KindRelation].AllOther)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.TableHeader
			}
			return lipgloss.NewStyle()
		}).
		Headers("COMBINATION", "C.AF", "C.MC", "C.RATIO", "R.AF", "R.MC", "R.RATIO").
		Rows(rows...)

	fmt.Fprintln(w, s.Header.Render("--- Categorical cross-tabulation ---"))
	fmt.Fprintln(w, t)
	fmt.Fprintln(w)
	return nil
}

// maxInvalidRows bounds the invalid-label listing in the summary.
const maxInvalidRows = 10

func writeInvalidsText(w io.Writer, s Styles, d *dataset.Dataset) error {
	for _, kind := range []taxonomy.Kind{taxonomy.KindClass, taxonomy.KindRelation} {
		invalids, err := d.Invalids(kind)
		if err != nil {
			return err
		}
		if len(invalids) == 0 {
			fmt.Fprintln(w, s.Muted.Render(
				fmt.Sprintf("No invalid %s stereotypes found.", kind)))
			continue
		}

		labels := make([]string, 0, len(invalids))
		for label := range invalids {
			labels = append(labels, label)
		}
		// Most frequent first; ties alphabetical.
		sort.Slice(labels, func(i, j int) bool {
			fi := invalids[labels[i]].AccumulatedFrequency
			fj := invalids[labels[j]].AccumulatedFrequency
			if fi != fj {
				return fi > fj
			}
			return labels[i] < labels[j]
		})
		if len(labels) > maxInvalidRows {
			labels = labels[:maxInvalidRows]
		}

		fmt.Fprintln(w, s.Header.Render(
			fmt.Sprintf("--- Invalid %s stereotypes (top %d) ---", kind, len(labels))))
		for _, label := range labels {
			entry := invalids[label]
			fmt.Fprintf(w, "  %s  %s\n",
				s.renderLabel(label),
				s.Muted.Render(fmt.Sprintf("frequency=%d coverage=%d",
					entry.AccumulatedFrequency, entry.ModelCoverage)))
		}
		fmt.Fprintln(w)
	}
	return nil
}
