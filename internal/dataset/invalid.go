package dataset

import "github.com/unbound-force/ontostats/internal/taxonomy"

// InvalidStereotype accumulates the dataset-wide metrics of one
// out-of-vocabulary stereotype label.
type InvalidStereotype struct {
	// AccumulatedFrequency is the sum of the label's counts across
	// all models.
	AccumulatedFrequency int `json:"accumulated_frequency" msgpack:"accumulated_frequency"`

	// ModelCoverage is the number of distinct models reporting the
	// label with a positive count. A zero-count report adds no
	// coverage.
	ModelCoverage int `json:"model_coverage" msgpack:"model_coverage"`
}

// CalculateInvalids scans every model's invalid-stereotype mappings
// (class and relation separately) and accumulates per-label frequency
// and model coverage. Labels whose accumulated frequency is 0 across
// the whole dataset are omitted entirely.
func (d *Dataset) CalculateInvalids() {
	invalids := make(map[taxonomy.Kind]map[string]InvalidStereotype, 2)
	for _, kind := range []taxonomy.Kind{taxonomy.KindClass, taxonomy.KindRelation} {
		metrics := make(map[string]InvalidStereotype)
		for _, m := range d.models {
			for label, count := range m.InvalidStereotypes(kind) {
				if count == 0 {
					continue
				}
				entry := metrics[label]
				entry.AccumulatedFrequency += count
				entry.ModelCoverage++
				metrics[label] = entry
			}
		}
		invalids[kind] = metrics
	}
	d.invalids = invalids
}
