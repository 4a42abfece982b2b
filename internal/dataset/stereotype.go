package dataset

import (
	"github.com/unbound-force/ontostats/internal/stats"
	"github.com/unbound-force/ontostats/internal/taxonomy"
)

// stereoCaseKey names a stereotype statistics case, e.g. "class_raw"
// or "combined_clean".
func stereoCaseKey(kind taxonomy.Kind, clean bool) string {
	if clean {
		return string(kind) + "_clean"
	}
	return string(kind) + "_raw"
}

// StereoCases lists every stereotype statistics case key in export
// order.
func StereoCases() []string {
	return []string{
		"class_raw", "relation_raw", "combined_raw",
		"class_clean", "relation_clean", "combined_clean",
	}
}

// Stereotype statistic table names.
const (
	FrequencyAnalysis     = "frequency_analysis"
	DescriptiveStatistics = "descriptive_statistics"
)

// CalculateStereotypeStatistics builds the per-label statistic tables
// for every kind (class, relation, combined) in both the raw and the
// clean variant. Clean variants exclude the reserved "none"/"other"
// labels; combined sums class and relation counts over the union of
// both vocabularies.
func (d *Dataset) CalculateStereotypeStatistics() {
	cases := make(map[string]map[string]*Table, 6)
	for _, kind := range []taxonomy.Kind{taxonomy.KindClass, taxonomy.KindRelation, taxonomy.KindCombined} {
		for _, clean := range []bool{false, true} {
			cases[stereoCaseKey(kind, clean)] = d.stereotypeTables(kind, clean)
		}
	}
	d.stereoStats = cases
}

// labelCounts returns a model's per-label count for one kind, with
// combined summing both kinds.
func labelCounts(m *taxonomy.Model, kind taxonomy.Kind, label string) int {
	if kind == taxonomy.KindCombined {
		return m.ClassStereotypes[label] + m.RelationStereotypes[label]
	}
	return m.Stereotypes(kind)[label]
}

func (d *Dataset) stereotypeTables(kind taxonomy.Kind, clean bool) map[string]*Table {
	labels := d.Vocabulary(kind).Labels()
	if clean {
		kept := make([]string, 0, len(labels))
		for _, label := range labels {
			if label != taxonomy.LabelNone && label != taxonomy.LabelOther {
				kept = append(kept, label)
			}
		}
		labels = kept
	}

	// Per-label vectors of per-model counts.
	vectors := make([][]float64, len(labels))
	frequencies := make([]float64, len(labels))
	coverage := make([]float64, len(labels))
	totalFrequency := 0.0

	for i, label := range labels {
		vec := make([]float64, len(d.models))
		for j, m := range d.models {
			count := float64(labelCounts(m, kind, label))
			vec[j] = count
			frequencies[i] += count
			if count > 0 {
				coverage[i]++
			}
		}
		vectors[i] = vec
		totalFrequency += frequencies[i]
	}

	numModels := float64(len(d.models))

	frequency := &Table{
		RowLabels: labels,
		Columns:   []string{"frequency", "ratio", "model_coverage", "coverage_ratio"},
		Cells:     make([][]float64, len(labels)),
	}
	descriptive := &Table{
		RowLabels: labels,
		Columns:   stats.Names(),
		Cells:     make([][]float64, len(labels)),
	}

	for i := range labels {
		frequency.Cells[i] = []float64{
			frequencies[i],
			safeDiv(frequencies[i], totalFrequency),
			coverage[i],
			safeDiv(coverage[i], numModels),
		}
		descriptive.Cells[i] = stats.Describe(vectors[i]).Values()
	}

	return map[string]*Table{
		FrequencyAnalysis:     frequency,
		DescriptiveStatistics: descriptive,
	}
}
