package dataset

import "github.com/unbound-force/ontostats/internal/taxonomy"

// CrossTab is the categorical cross-tabulation of one stereotype
// kind: the eight-way mutually exclusive partition plus the three
// independent all_* aggregates. The two are logically separate
// computations and are only joined at export time.
type CrossTab struct {
	// Groups holds the fixed-shape metrics of the eight mutually
	// exclusive categories.
	Groups map[taxonomy.Category]taxonomy.GroupMetrics `json:"groups" msgpack:"groups"`

	// AllOntouml, AllNone and AllOther are three independent binary
	// partitions over raw recognized/none/other frequencies. They
	// include every model unconditionally and are not exclusive with
	// each other or with Groups.
	AllOntouml taxonomy.GroupMetrics `json:"all_ontouml" msgpack:"all_ontouml"`
	AllNone    taxonomy.GroupMetrics `json:"all_none" msgpack:"all_none"`
	AllOther   taxonomy.GroupMetrics `json:"all_other" msgpack:"all_other"`

	// TotalStereotypes is the ratio_af denominator: the sum of every
	// model's stereotype count of this kind.
	TotalStereotypes int `json:"total_stereotypes" msgpack:"total_stereotypes"`

	// TotalModels is the ratio_mc denominator. For relations it
	// excludes models with zero relation stereotypes; for classes it
	// is the full model count.
	TotalModels int `json:"total_models" msgpack:"total_models"`
}

// CalculateCrossTab classifies every model into exactly one of the
// eight categories per kind, accumulating aggregate frequency and
// model coverage, and computes the three all_* aggregates. Models
// with zero stereotypes of a kind fall into no category but still
// contribute (zero) to the all_* frequencies.
func (d *Dataset) CalculateCrossTab() {
	d.crossTabs = map[taxonomy.Kind]*CrossTab{
		taxonomy.KindClass:    d.crossTabulate(taxonomy.KindClass),
		taxonomy.KindRelation: d.crossTabulate(taxonomy.KindRelation),
	}
}

func (d *Dataset) crossTabulate(kind taxonomy.Kind) *CrossTab {
	totalStereotypes := 0
	totalModels := 0
	for _, m := range d.models {
		total := m.TotalStereotypes(kind)
		totalStereotypes += total
		if kind == taxonomy.KindRelation {
			if total > 0 {
				totalModels++
			}
		} else {
			// Classes are assumed always present: every model counts.
			totalModels++
		}
	}

	af := make(map[taxonomy.Category]int, 8)
	mc := make(map[taxonomy.Category]int, 8)
	var allOntouml, allNone, allOther taxonomy.GroupMetrics

	for _, m := range d.models {
		ontouml, none, other := m.CategoryCounts(kind)

		allOntouml.AF += ontouml
		allNone.AF += none
		allOther.AF += other
		if ontouml > 0 {
			allOntouml.MC++
		}
		if none > 0 {
			allNone.MC++
		}
		if other > 0 {
			allOther.MC++
		}

		// Zero-stereotype models fall into none of the eight
		// categories (they do not land in the all-false one).
		if ontouml+none+other == 0 {
			continue
		}

		category := taxonomy.Classify(ontouml, none, other)
		af[category] += ontouml + none + other
		mc[category]++
	}

	groups := make(map[taxonomy.Category]taxonomy.GroupMetrics, 8)
	for _, category := range taxonomy.Categories() {
		groups[category] = groupMetrics(af[category], mc[category], totalStereotypes, totalModels)
	}

	finalizeAll := func(g taxonomy.GroupMetrics) taxonomy.GroupMetrics {
		return groupMetrics(g.AF, g.MC, totalStereotypes, totalModels)
	}

	return &CrossTab{
		Groups:           groups,
		AllOntouml:       finalizeAll(allOntouml),
		AllNone:          finalizeAll(allNone),
		AllOther:         finalizeAll(allOther),
		TotalStereotypes: totalStereotypes,
		TotalModels:      totalModels,
	}
}

// groupMetrics assembles a fixed-shape record with its ratios against
// the dataset denominators, resolving zero denominators to 0.
func groupMetrics(af, mc, totalStereotypes, totalModels int) taxonomy.GroupMetrics {
	return taxonomy.GroupMetrics{
		AF:      af,
		MC:      mc,
		RatioAF: safeDiv(float64(af), float64(totalStereotypes)),
		RatioMC: safeDiv(float64(mc), float64(totalModels)),
	}
}
