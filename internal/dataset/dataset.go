// Package dataset implements the statistics-aggregation engine: it
// folds a collection of per-model stereotype counts into dataset-wide
// metrics (totals, ratios, yearly trends, normalized distributions,
// and categorical breakdowns) and validates their consistency.
//
// All derived state is recomputed from the model list by explicit
// calculation passes; querying it before its pass ran returns
// ErrNotCalculated. The passes are deterministic and read the models
// only, so a Dataset may be shared read-only once calculated.
package dataset

import (
	"github.com/unbound-force/ontostats/internal/taxonomy"
)

// Dataset owns an ordered sequence of models plus the derived state
// produced by the calculation passes.
type Dataset struct {
	name   string
	models []*taxonomy.Model

	classVocab    taxonomy.Vocabulary
	relationVocab taxonomy.Vocabulary

	// Derived state. Nil until the owning pass has run; each pass
	// overwrites its own state wholesale, never partially.
	statistics   map[string]float64
	breakdowns   map[taxonomy.Kind][]Breakdown
	stereoStats  map[string]map[string]*Table
	yearTables   map[string]*YearTable
	modelsByYear []YearModelCount
	countsByYear []YearCounts
	invalids     map[taxonomy.Kind]map[string]InvalidStereotype
	crossTabs    map[taxonomy.Kind]*CrossTab
}

// New builds a dataset over the given models. Every model is checked
// against the explicit vocabularies: a key-set mismatch or a negative
// count is an integrity error and no dataset is returned.
func New(name string, classVocab, relationVocab taxonomy.Vocabulary, models []*taxonomy.Model) (*Dataset, error) {
	for _, m := range models {
		if err := classVocab.Validate(m.ClassStereotypes); err != nil {
			return nil, integrityf("model %s class stereotypes: %v", m.Name, err)
		}
		if err := relationVocab.Validate(m.RelationStereotypes); err != nil {
			return nil, integrityf("model %s relation stereotypes: %v", m.Name, err)
		}
		for label, count := range m.InvalidClassStereotypes {
			if count < 0 {
				return nil, integrityf("model %s invalid class stereotype %q has negative count %d", m.Name, label, count)
			}
		}
		for label, count := range m.InvalidRelationStereotypes {
			if count < 0 {
				return nil, integrityf("model %s invalid relation stereotype %q has negative count %d", m.Name, label, count)
			}
		}
	}

	return &Dataset{
		name:          name,
		models:        models,
		classVocab:    classVocab,
		relationVocab: relationVocab,
	}, nil
}

// Name returns the dataset name.
func (d *Dataset) Name() string { return d.name }

// Models returns the dataset's models in input order. The returned
// slice must not be modified.
func (d *Dataset) Models() []*taxonomy.Model { return d.models }

// Vocabulary returns the shared stereotype vocabulary for a kind.
// KindCombined yields the union of the class and relation
// vocabularies.
func (d *Dataset) Vocabulary(kind taxonomy.Kind) taxonomy.Vocabulary {
	switch kind {
	case taxonomy.KindClass:
		return d.classVocab
	case taxonomy.KindRelation:
		return d.relationVocab
	default:
		return d.classVocab.Union(d.relationVocab)
	}
}

// CalculateAll runs every calculation pass in dependency order and
// finishes with the consistency validation.
func (d *Dataset) CalculateAll() error {
	d.CalculateStatistics()
	d.CalculateStereotypeStatistics()
	if err := d.CalculateYearly(); err != nil {
		return err
	}
	d.CalculateModelsByYear()
	d.CalculateCountsByYear()
	d.CalculateInvalids()
	d.CalculateCrossTab()
	return d.Validate()
}

// Statistics returns the flat metric-name to scalar mapping produced
// by CalculateStatistics.
func (d *Dataset) Statistics() (map[string]float64, error) {
	if d.statistics == nil {
		return nil, notCalculatedf("CalculateStatistics")
	}
	return d.statistics, nil
}

// Breakdowns returns the per-model category vectors for a kind,
// in model input order.
func (d *Dataset) Breakdowns(kind taxonomy.Kind) ([]Breakdown, error) {
	if d.breakdowns == nil {
		return nil, notCalculatedf("CalculateStatistics")
	}
	return d.breakdowns[kind], nil
}

// StereotypeStatistics returns the per-label statistic tables for a
// kind. Clean tables exclude the reserved labels.
func (d *Dataset) StereotypeStatistics(kind taxonomy.Kind, clean bool) (map[string]*Table, error) {
	if d.stereoStats == nil {
		return nil, notCalculatedf("CalculateStereotypeStatistics")
	}
	return d.stereoStats[stereoCaseKey(kind, clean)], nil
}

// YearTable returns the year-indexed stereotype table stored under
// the given case key (e.g. "class_ow", "relation_mw_overall").
func (d *Dataset) YearTable(key string) (*YearTable, error) {
	if d.yearTables == nil {
		return nil, notCalculatedf("CalculateYearly")
	}
	t, ok := d.yearTables[key]
	if !ok {
		return nil, integrityf("unknown year table key %q", key)
	}
	return t, nil
}

// ModelsByYear returns the per-year model counts, ascending by year.
func (d *Dataset) ModelsByYear() ([]YearModelCount, error) {
	if d.modelsByYear == nil {
		return nil, notCalculatedf("CalculateModelsByYear")
	}
	return d.modelsByYear, nil
}

// CountsByYear returns the per-year stereotype count breakdown,
// ascending by year.
func (d *Dataset) CountsByYear() ([]YearCounts, error) {
	if d.countsByYear == nil {
		return nil, notCalculatedf("CalculateCountsByYear")
	}
	return d.countsByYear, nil
}

// Invalids returns the out-of-vocabulary stereotype metrics for a
// kind.
func (d *Dataset) Invalids(kind taxonomy.Kind) (map[string]InvalidStereotype, error) {
	if d.invalids == nil {
		return nil, notCalculatedf("CalculateInvalids")
	}
	return d.invalids[kind], nil
}

// CrossTab returns the categorical cross-tabulation for a kind.
func (d *Dataset) CrossTab(kind taxonomy.Kind) (*CrossTab, error) {
	if d.crossTabs == nil {
		return nil, notCalculatedf("CalculateCrossTab")
	}
	return d.crossTabs[kind], nil
}

// safeDiv resolves division by zero to the uniform 0 sentinel used
// for every degenerate ratio in the engine.
func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// Table is a rectangular statistic table: rows are stereotype labels
// or models, columns are metrics.
type Table struct {
	// RowLabels names each row.
	RowLabels []string `json:"row_labels" msgpack:"row_labels"`

	// Columns names each metric column.
	Columns []string `json:"columns" msgpack:"columns"`

	// Cells holds one row per row label, aligned with Columns.
	Cells [][]float64 `json:"cells" msgpack:"cells"`
}
