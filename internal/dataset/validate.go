package dataset

import (
	"math"

	"github.com/unbound-force/ontostats/internal/taxonomy"
)

// relTolerance is the relative tolerance for the consistency checks.
const relTolerance = 1e-5

// closeRel reports whether a and b are equal within the relative
// tolerance.
func closeRel(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= relTolerance*math.Max(math.Abs(a), math.Abs(b))
}

// Validate recomputes the expected cross-tabulation totals from the
// models' declared element counts and asserts the accumulated
// metrics are self-consistent. It is read-only: any violation is an
// integrity error that must halt the pipeline, never a condition to
// correct.
func (d *Dataset) Validate() error {
	if d.crossTabs == nil {
		return notCalculatedf("CalculateCrossTab")
	}

	for _, kind := range []taxonomy.Kind{taxonomy.KindClass, taxonomy.KindRelation} {
		ct := d.crossTabs[kind]

		// Expected AF comes from the declared element counts, an
		// independent source from the stereotype mappings.
		expectedAF := 0
		for _, m := range d.models {
			if kind == taxonomy.KindClass {
				expectedAF += m.TotalClasses
			} else {
				expectedAF += m.TotalRelations
			}
		}

		totalAF := 0
		totalMC := 0
		for _, category := range taxonomy.Categories() {
			totalAF += ct.Groups[category].AF
			totalMC += ct.Groups[category].MC
		}

		if !closeRel(float64(totalAF), float64(expectedAF)) {
			return integrityf("total AF for %s does not match: found %d, expected %d", kind, totalAF, expectedAF)
		}

		expectedMC := len(d.models)
		if kind == taxonomy.KindRelation {
			expectedMC = 0
			for _, m := range d.models {
				if m.TotalStereotypes(kind) > 0 {
					expectedMC++
				}
			}
		}
		if totalMC > expectedMC {
			return integrityf("total MC for %s exceeds the number of models: found %d, expected at most %d", kind, totalMC, expectedMC)
		}

		for _, category := range taxonomy.Categories() {
			g := ct.Groups[category]
			wantAF := safeDiv(float64(g.AF), float64(expectedAF))
			if !closeRel(g.RatioAF, wantAF) {
				return integrityf("AF ratio mismatch for %s category %s: found %g, expected %g", kind, category, g.RatioAF, wantAF)
			}
			wantMC := safeDiv(float64(g.MC), float64(expectedMC))
			if !closeRel(g.RatioMC, wantMC) {
				return integrityf("MC ratio mismatch for %s category %s: found %g, expected %g", kind, category, g.RatioMC, wantMC)
			}
		}

		allAF := ct.AllOntouml.AF + ct.AllNone.AF + ct.AllOther.AF
		if !closeRel(float64(allAF), float64(totalAF)) {
			return integrityf("mismatch in total AF for %s: found %d, sum of all_* %d", kind, totalAF, allAF)
		}

		// Degenerate empty datasets have all-zero all_* ratios by
		// the uniform 0 policy; the unity check only applies when
		// stereotypes exist.
		if expectedAF > 0 {
			allRatioAF := ct.AllOntouml.RatioAF + ct.AllNone.RatioAF + ct.AllOther.RatioAF
			if !closeRel(allRatioAF, 1.0) {
				return integrityf("sum of AF ratios for all_* in %s does not equal 1: found %g", kind, allRatioAF)
			}
		}
	}

	return nil
}
