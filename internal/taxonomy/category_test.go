package taxonomy

import "testing"

func TestClassify_AllEightCombinations(t *testing.T) {
	cases := []struct {
		ontouml, none, other int
		want                 Category
	}{
		{1, 1, 1, OntoumlAndOtherAndNone},
		{1, 0, 1, OntoumlAndOtherAndNotNone},
		{1, 1, 0, OntoumlAndNotOtherAndNone},
		{1, 0, 0, OntoumlAndNotOtherAndNotNone},
		{0, 1, 1, NotOntoumlAndOtherAndNone},
		{0, 0, 1, NotOntoumlAndOtherAndNotNone},
		{0, 1, 0, NotOntoumlAndNotOtherAndNone},
		{0, 0, 0, NotOntoumlAndNotOtherAndNot},
	}

	for _, c := range cases {
		got := Classify(c.ontouml, c.none, c.other)
		if got != c.want {
			t.Errorf("Classify(%d, %d, %d) = %s, want %s",
				c.ontouml, c.none, c.other, got, c.want)
		}
	}
}

func TestClassify_MagnitudeIrrelevant(t *testing.T) {
	// Only presence matters, not count magnitude.
	if Classify(100, 0, 0) != Classify(1, 0, 0) {
		t.Error("classification must be magnitude-independent")
	}
}

func TestCategories_CoversAllEight(t *testing.T) {
	categories := Categories()
	if len(categories) != 8 {
		t.Fatalf("Categories() returned %d entries, want 8", len(categories))
	}
	seen := make(map[Category]bool)
	for _, c := range categories {
		if seen[c] {
			t.Errorf("duplicate category %s", c)
		}
		seen[c] = true
	}
}
