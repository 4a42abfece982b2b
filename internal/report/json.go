package report

import (
	"encoding/json"
	"io"

	"github.com/unbound-force/ontostats/internal/dataset"
	"github.com/unbound-force/ontostats/internal/taxonomy"
)

// SchemaVersion is the semver of the JSON report schema.
const SchemaVersion = "1.0.0"

// Report is the machine-readable summary of a calculated dataset.
type Report struct {
	// Version is the report schema version.
	Version string `json:"version"`

	// Dataset is the dataset name.
	Dataset string `json:"dataset"`

	// NumModels is the corpus size.
	NumModels int `json:"num_models"`

	// Statistics is the flat metric-name to scalar mapping.
	Statistics map[string]float64 `json:"statistics"`

	// CrossTab maps "class"/"relation" to the categorical
	// cross-tabulation.
	CrossTab map[string]*dataset.CrossTab `json:"cross_tab"`

	// InvalidStereotypes maps "class"/"relation" to the
	// out-of-vocabulary label metrics.
	InvalidStereotypes map[string]map[string]dataset.InvalidStereotype `json:"invalid_stereotypes"`

	// ModelsByYear is the per-year model count, ascending by year.
	ModelsByYear []dataset.YearModelCount `json:"models_by_year"`
}

// Build assembles a report from a dataset's derived state. Every
// required pass must have run; a missing pass surfaces as the
// engine's not-yet-calculated error.
func Build(d *dataset.Dataset) (*Report, error) {
	statistics, err := d.Statistics()
	if err != nil {
		return nil, err
	}

	crossTab := make(map[string]*dataset.CrossTab, 2)
	invalids := make(map[string]map[string]dataset.InvalidStereotype, 2)
	for _, kind := range []taxonomy.Kind{taxonomy.KindClass, taxonomy.KindRelation} {
		ct, err := d.CrossTab(kind)
		if err != nil {
			return nil, err
		}
		crossTab[string(kind)] = ct

		inv, err := d.Invalids(kind)
		if err != nil {
			return nil, err
		}
		invalids[string(kind)] = inv
	}

	modelsByYear, err := d.ModelsByYear()
	if err != nil {
		return nil, err
	}

	return &Report{
		Version:            SchemaVersion,
		Dataset:            d.Name(),
		NumModels:          len(d.Models()),
		Statistics:         statistics,
		CrossTab:           crossTab,
		InvalidStereotypes: invalids,
		ModelsByYear:       modelsByYear,
	}, nil
}

// WriteJSON writes the report as formatted JSON.
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
