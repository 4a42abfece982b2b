package dataset

import (
	"math"
	"testing"

	"github.com/unbound-force/ontostats/internal/taxonomy"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBreakdownFor_ClassCounts(t *testing.T) {
	m := testModels()[0] // kind:2, none:1, other:0
	b := breakdownFor(m, taxonomy.KindClass)

	if b.Model != "m1" {
		t.Errorf("Model = %q, want m1", b.Model)
	}
	if b.Total != 3 || b.Stereotyped != 2 || b.NonStereotyped != 1 {
		t.Errorf("Total/Stereotyped/NonStereotyped = %d/%d/%d, want 3/2/1",
			b.Total, b.Stereotyped, b.NonStereotyped)
	}
	if b.Ontouml != 2 || b.NonOntouml != 1 {
		t.Errorf("Ontouml/NonOntouml = %d/%d, want 2/1", b.Ontouml, b.NonOntouml)
	}
}

func TestCalculateStatistics_Totals(t *testing.T) {
	d := testDataset(t)
	d.CalculateStatistics()
	statistics, err := d.Statistics()
	if err != nil {
		t.Fatal(err)
	}

	// Class totals over m1+m2+m3: 3+3+5 elements, of which 7 carry a
	// recognized stereotype and 1 carries none.
	cases := map[string]float64{
		"total_classes":             11,
		"stereotyped_classes":       10,
		"non_stereotyped_classes":   1,
		"ontouml_classes":           7,
		"non_ontouml_classes":       4,
		"total_relations":           4,
		"stereotyped_relations":     3,
		"non_stereotyped_relations": 1,
		"ontouml_relations":         3,
	}
	for key, want := range cases {
		got, ok := statistics[key]
		if !ok {
			t.Errorf("missing statistic %q", key)
			continue
		}
		if !almostEqual(got, want) {
			t.Errorf("%s = %f, want %f", key, got, want)
		}
	}
}

func TestCalculateStatistics_DescriptiveKeys(t *testing.T) {
	d := testDataset(t)
	d.CalculateStatistics()
	statistics, _ := d.Statistics()

	if got := statistics["class_total_mean"]; !almostEqual(got, 11.0/3.0) {
		t.Errorf("class_total_mean = %f, want %f", got, 11.0/3.0)
	}
	if got := statistics["class_total_max"]; !almostEqual(got, 5) {
		t.Errorf("class_total_max = %f, want 5", got)
	}
	if got := statistics["relation_ontouml_median"]; !almostEqual(got, 1) {
		t.Errorf("relation_ontouml_median = %f, want 1", got)
	}
	if got := statistics["class_total_count"]; !almostEqual(got, 3) {
		t.Errorf("class_total_count = %f, want 3", got)
	}
}

func TestCalculateStatistics_RatiosMerged(t *testing.T) {
	d := testDataset(t)
	d.CalculateStatistics()
	statistics, _ := d.Statistics()

	if got := statistics["relations_per_class"]; !almostEqual(got, 4.0/11.0) {
		t.Errorf("relations_per_class = %f, want %f", got, 4.0/11.0)
	}
	if got := statistics["stereotyped_class_ratio"]; !almostEqual(got, 10.0/11.0) {
		t.Errorf("stereotyped_class_ratio = %f, want %f", got, 10.0/11.0)
	}
}

func TestBreakdowns_InputOrder(t *testing.T) {
	d := testDataset(t)
	d.CalculateStatistics()

	breakdowns, err := d.Breakdowns(taxonomy.KindRelation)
	if err != nil {
		t.Fatal(err)
	}
	if len(breakdowns) != 3 {
		t.Fatalf("got %d breakdowns, want 3", len(breakdowns))
	}
	for i, name := range []string{"m1", "m2", "m3"} {
		if breakdowns[i].Model != name {
			t.Errorf("breakdowns[%d].Model = %q, want %q", i, breakdowns[i].Model, name)
		}
	}
	// m3 relations: material:2, none:1 -> total 3, stereotyped 2.
	if breakdowns[2].Total != 3 || breakdowns[2].Stereotyped != 2 {
		t.Errorf("m3 relation Total/Stereotyped = %d/%d, want 3/2",
			breakdowns[2].Total, breakdowns[2].Stereotyped)
	}
}
