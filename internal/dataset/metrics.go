package dataset

import (
	"fmt"

	"github.com/unbound-force/ontostats/internal/stats"
	"github.com/unbound-force/ontostats/internal/taxonomy"
)

// Breakdown holds the five category counts of a single model for one
// stereotype kind.
type Breakdown struct {
	// Model is the model name.
	Model string `json:"model" msgpack:"model"`

	// Total is the sum of all stereotype counts.
	Total int `json:"total" msgpack:"total"`

	// Stereotyped is Total minus the "none" count.
	Stereotyped int `json:"stereotyped" msgpack:"stereotyped"`

	// NonStereotyped is the "none" count.
	NonStereotyped int `json:"non_stereotyped" msgpack:"non_stereotyped"`

	// Ontouml is Total minus "none" minus "other": the
	// recognized-vocabulary count.
	Ontouml int `json:"ontouml" msgpack:"ontouml"`

	// NonOntouml is "none" plus "other".
	NonOntouml int `json:"non_ontouml" msgpack:"non_ontouml"`
}

// breakdownFor computes a model's category counts for one kind.
func breakdownFor(m *taxonomy.Model, kind taxonomy.Kind) Breakdown {
	ontouml, none, other := m.CategoryCounts(kind)
	total := ontouml + none + other
	return Breakdown{
		Model:          m.Name,
		Total:          total,
		Stereotyped:    total - none,
		NonStereotyped: none,
		Ontouml:        ontouml,
		NonOntouml:     none + other,
	}
}

// vectorNames fixes the export order of the five category vectors.
var vectorNames = []string{"total", "stereotyped", "non_stereotyped", "ontouml", "non_ontouml"}

// vector extracts the named category vector across all breakdowns.
func vector(breakdowns []Breakdown, name string) []int {
	vec := make([]int, len(breakdowns))
	for i, b := range breakdowns {
		switch name {
		case "total":
			vec[i] = b.Total
		case "stereotyped":
			vec[i] = b.Stereotyped
		case "non_stereotyped":
			vec[i] = b.NonStereotyped
		case "ontouml":
			vec[i] = b.Ontouml
		default:
			vec[i] = b.NonOntouml
		}
	}
	return vec
}

// CalculateStatistics computes the per-model category vectors for
// both kinds, their dataset-wide totals and descriptive statistics,
// and the derived cross-category ratios. The resulting flat mapping
// replaces any prior statistics wholesale.
func (d *Dataset) CalculateStatistics() {
	breakdowns := map[taxonomy.Kind][]Breakdown{
		taxonomy.KindClass:    make([]Breakdown, len(d.models)),
		taxonomy.KindRelation: make([]Breakdown, len(d.models)),
	}
	for i, m := range d.models {
		breakdowns[taxonomy.KindClass][i] = breakdownFor(m, taxonomy.KindClass)
		breakdowns[taxonomy.KindRelation][i] = breakdownFor(m, taxonomy.KindRelation)
	}

	statistics := make(map[string]float64)
	totals := Totals{}

	for kind, plural := range map[taxonomy.Kind]string{
		taxonomy.KindClass:    "classes",
		taxonomy.KindRelation: "relations",
	} {
		for _, name := range vectorNames {
			vec := vector(breakdowns[kind], name)

			sum := 0
			for _, v := range vec {
				sum += v
			}
			totalKey := totalKeyFor(name, plural)
			statistics[totalKey] = float64(sum)
			totals.set(kind, name, sum)

			summary := stats.DescribeInts(vec)
			for j, statName := range stats.Names() {
				statistics[fmt.Sprintf("%s_%s_%s", kind, name, statName)] = summary.Values()[j]
			}
		}
	}

	for name, value := range Ratios(totals) {
		statistics[name] = value
	}

	d.breakdowns = breakdowns
	d.statistics = statistics
}

// totalKeyFor builds the dataset-total key for a category vector,
// e.g. ("stereotyped", "classes") -> "stereotyped_classes" and
// ("total", "classes") -> "total_classes".
func totalKeyFor(vectorName, plural string) string {
	if vectorName == "total" {
		return "total_" + plural
	}
	return vectorName + "_" + plural
}
