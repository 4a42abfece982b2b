package dataset

import (
	"testing"

	"github.com/unbound-force/ontostats/internal/taxonomy"
)

func crossTabFor(t *testing.T, kind taxonomy.Kind) *CrossTab {
	t.Helper()
	d := testDataset(t)
	d.CalculateCrossTab()
	ct, err := d.CrossTab(kind)
	if err != nil {
		t.Fatal(err)
	}
	return ct
}

func TestCrossTab_ClassCategories(t *testing.T) {
	ct := crossTabFor(t, taxonomy.KindClass)

	// m1: ontouml + none present -> ontouml_and_not_other_and_none,
	// contributing its full 3 stereotypes.
	g := ct.Groups[taxonomy.OntoumlAndNotOtherAndNone]
	if g.AF != 3 || g.MC != 1 {
		t.Errorf("ontouml_and_not_other_and_none = AF %d, MC %d, want 3, 1", g.AF, g.MC)
	}

	// m2: only other -> not_ontouml_and_other_and_not_none.
	g = ct.Groups[taxonomy.NotOntoumlAndOtherAndNotNone]
	if g.AF != 3 || g.MC != 1 {
		t.Errorf("not_ontouml_and_other_and_not_none = AF %d, MC %d, want 3, 1", g.AF, g.MC)
	}

	// m3: only ontouml.
	g = ct.Groups[taxonomy.OntoumlAndNotOtherAndNotNone]
	if g.AF != 5 || g.MC != 1 {
		t.Errorf("ontouml_and_not_other_and_not_none = AF %d, MC %d, want 5, 1", g.AF, g.MC)
	}

	if ct.TotalStereotypes != 11 || ct.TotalModels != 3 {
		t.Errorf("denominators = %d stereotypes, %d models, want 11, 3",
			ct.TotalStereotypes, ct.TotalModels)
	}
}

func TestCrossTab_PartitionIsExhaustive(t *testing.T) {
	ct := crossTabFor(t, taxonomy.KindClass)

	totalAF, totalMC := 0, 0
	for _, category := range taxonomy.Categories() {
		totalAF += ct.Groups[category].AF
		totalMC += ct.Groups[category].MC
	}
	if totalAF != ct.TotalStereotypes {
		t.Errorf("category AF sum = %d, want %d", totalAF, ct.TotalStereotypes)
	}
	if totalMC != 3 {
		t.Errorf("category MC sum = %d, want 3", totalMC)
	}
}

func TestCrossTab_AllAggregates(t *testing.T) {
	ct := crossTabFor(t, taxonomy.KindClass)

	if ct.AllOntouml.AF != 7 || ct.AllOntouml.MC != 2 {
		t.Errorf("all_ontouml = AF %d, MC %d, want 7, 2", ct.AllOntouml.AF, ct.AllOntouml.MC)
	}
	if ct.AllNone.AF != 1 || ct.AllNone.MC != 1 {
		t.Errorf("all_none = AF %d, MC %d, want 1, 1", ct.AllNone.AF, ct.AllNone.MC)
	}
	if ct.AllOther.AF != 3 || ct.AllOther.MC != 1 {
		t.Errorf("all_other = AF %d, MC %d, want 3, 1", ct.AllOther.AF, ct.AllOther.MC)
	}
	// The three all_* frequencies partition the stereotype total.
	if sum := ct.AllOntouml.AF + ct.AllNone.AF + ct.AllOther.AF; sum != ct.TotalStereotypes {
		t.Errorf("all_* AF sum = %d, want %d", sum, ct.TotalStereotypes)
	}
}

func TestCrossTab_RelationExcludesEmptyModels(t *testing.T) {
	ct := crossTabFor(t, taxonomy.KindRelation)

	// m2 declares no relations; the MC denominator only counts the
	// two models with relation stereotypes.
	if ct.TotalModels != 2 {
		t.Errorf("relation TotalModels = %d, want 2", ct.TotalModels)
	}
	if ct.TotalStereotypes != 4 {
		t.Errorf("relation TotalStereotypes = %d, want 4", ct.TotalStereotypes)
	}

	// m1: material only; m3: material + none.
	if g := ct.Groups[taxonomy.OntoumlAndNotOtherAndNotNone]; g.AF != 1 || g.MC != 1 {
		t.Errorf("ontouml_and_not_other_and_not_none = AF %d, MC %d, want 1, 1", g.AF, g.MC)
	}
	if g := ct.Groups[taxonomy.OntoumlAndNotOtherAndNone]; g.AF != 3 || g.MC != 1 {
		t.Errorf("ontouml_and_not_other_and_none = AF %d, MC %d, want 3, 1", g.AF, g.MC)
	}
}

func TestCrossTab_Ratios(t *testing.T) {
	ct := crossTabFor(t, taxonomy.KindClass)

	g := ct.Groups[taxonomy.OntoumlAndNotOtherAndNotNone]
	if !almostEqual(g.RatioAF, 5.0/11.0) {
		t.Errorf("RatioAF = %f, want %f", g.RatioAF, 5.0/11.0)
	}
	if !almostEqual(g.RatioMC, 1.0/3.0) {
		t.Errorf("RatioMC = %f, want %f", g.RatioMC, 1.0/3.0)
	}
}
