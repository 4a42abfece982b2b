package report

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/unbound-force/ontostats/internal/dataset"
	"github.com/unbound-force/ontostats/internal/taxonomy"
)

func testVocab(t *testing.T, labels ...string) taxonomy.Vocabulary {
	t.Helper()
	v, err := taxonomy.NewVocabulary(labels)
	if err != nil {
		t.Fatalf("NewVocabulary(%v) failed: %v", labels, err)
	}
	return v
}

func calculatedDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	models := []*taxonomy.Model{
		{
			Name: "m1", Year: 2015,
			TotalClasses: 3, TotalRelations: 1,
			ClassStereotypes:        map[string]int{"kind": 2, "none": 1, "other": 0},
			RelationStereotypes:     map[string]int{"material": 1, "none": 0, "other": 0},
			InvalidClassStereotypes: map[string]int{"Foo": 3},
		},
		{
			Name: "m2", Year: 2015,
			TotalClasses: 3, TotalRelations: 0,
			ClassStereotypes:    map[string]int{"kind": 0, "none": 0, "other": 3},
			RelationStereotypes: map[string]int{"material": 0, "none": 0, "other": 0},
		},
		{
			Name: "m3", Year: 2016,
			TotalClasses: 5, TotalRelations: 3,
			ClassStereotypes:    map[string]int{"kind": 5, "none": 0, "other": 0},
			RelationStereotypes: map[string]int{"material": 2, "none": 1, "other": 0},
		},
	}
	d, err := dataset.New("sample",
		testVocab(t, "kind", "none", "other"),
		testVocab(t, "material", "none", "other"),
		models)
	if err != nil {
		t.Fatalf("dataset.New failed: %v", err)
	}
	if err := d.CalculateAll(); err != nil {
		t.Fatalf("CalculateAll failed: %v", err)
	}
	return d
}

func TestBuild_AssemblesReport(t *testing.T) {
	d := calculatedDataset(t)
	r, err := Build(d)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if r.Version != SchemaVersion {
		t.Errorf("Version = %q, want %q", r.Version, SchemaVersion)
	}
	if r.Dataset != "sample" || r.NumModels != 3 {
		t.Errorf("Dataset/NumModels = %q/%d, want sample/3", r.Dataset, r.NumModels)
	}
	if r.Statistics["total_classes"] != 11 {
		t.Errorf("total_classes = %f, want 11", r.Statistics["total_classes"])
	}
	if r.CrossTab["class"] == nil || r.CrossTab["relation"] == nil {
		t.Error("cross-tab missing a kind")
	}
	if r.InvalidStereotypes["class"]["Foo"].AccumulatedFrequency != 3 {
		t.Error("invalid class stereotype Foo not carried into the report")
	}
	if len(r.ModelsByYear) != 2 {
		t.Errorf("ModelsByYear has %d entries, want 2", len(r.ModelsByYear))
	}
}

func TestBuild_FailsBeforeCalculation(t *testing.T) {
	d, err := dataset.New("sample",
		testVocab(t, "kind", "none", "other"),
		testVocab(t, "material", "none", "other"),
		nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Build(d); err == nil {
		t.Fatal("expected error for uncalculated dataset")
	}
}

func TestWriteJSON_ValidAgainstSchema(t *testing.T) {
	d := calculatedDataset(t)
	r, err := Build(d)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, r); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	sch, err := jsonschema.UnmarshalJSON(strings.NewReader(Schema))
	if err != nil {
		t.Fatalf("schema is not valid JSON: %v", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", sch); err != nil {
		t.Fatalf("adding schema resource: %v", err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		t.Fatalf("compiling schema: %v", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("report output is not valid JSON: %v", err)
	}
	if err := compiled.Validate(inst); err != nil {
		t.Errorf("report does not validate against schema: %v", err)
	}
}

func TestWriteText_ContainsSections(t *testing.T) {
	d := calculatedDataset(t)

	var buf bytes.Buffer
	if err := WriteText(&buf, d); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Dataset sample",
		"3 model(s)",
		"Totals",
		"total_classes",
		"Ratios",
		"Categorical cross-tabulation",
		"all_ontouml",
		"Invalid class stereotypes",
		"Foo",
		"No invalid relation stereotypes found.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text summary missing %q", want)
		}
	}
}

func readCSV(t *testing.T, path string, comma rune) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = comma
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return rows
}

func TestWriteCSVTree_Layout(t *testing.T) {
	d := calculatedDataset(t)
	dir := t.TempDir()
	if err := WriteCSVTree(dir, d); err != nil {
		t.Fatalf("WriteCSVTree failed: %v", err)
	}

	paths := []string{
		"sample/sample_basic_data.csv",
		"sample/sample_class_data.csv",
		"sample/sample_relation_data.csv",
		"sample/sample_statistics.csv",
		"sample/sample_models_statistics.csv",
		"sample/class_raw/frequency_analysis.csv",
		"sample/combined_clean/descriptive_statistics.csv",
		"sample/class_raw/years_stereotypes_class_ow.csv",
		"sample/relation_raw/years_stereotypes_relation_mw_yearly.csv",
		"sample/years_models_number.csv",
		"sample/stereotypes_count_by_year.csv",
		"sample/sample_invalid_class_stereotypes_metrics.csv",
		"sample_analysis2.csv",
	}
	for _, p := range paths {
		if _, err := os.Stat(filepath.Join(dir, p)); err != nil {
			t.Errorf("missing export %s: %v", p, err)
		}
	}
}

func TestWriteCSVTree_BasicData(t *testing.T) {
	d := calculatedDataset(t)
	dir := t.TempDir()
	if err := WriteCSVTree(dir, d); err != nil {
		t.Fatalf("WriteCSVTree failed: %v", err)
	}

	rows := readCSV(t, filepath.Join(dir, "sample", "sample_basic_data.csv"), ',')
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want header + 3 models", len(rows))
	}
	wantHeader := "model,year,total_class_number,total_relation_number"
	if strings.Join(rows[0], ",") != wantHeader {
		t.Errorf("header = %v, want %s", rows[0], wantHeader)
	}
	if strings.Join(rows[1], ",") != "m1,2015,3,1" {
		t.Errorf("first row = %v, want m1,2015,3,1", rows[1])
	}
}

func TestWriteCSVTree_CrossTabFile(t *testing.T) {
	d := calculatedDataset(t)
	dir := t.TempDir()
	if err := WriteCSVTree(dir, d); err != nil {
		t.Fatalf("WriteCSVTree failed: %v", err)
	}

	rows := readCSV(t, filepath.Join(dir, "sample_analysis2.csv"), ',')
	// Header + 8 categories + 3 all_* aggregates.
	if len(rows) != 12 {
		t.Fatalf("got %d rows, want 12", len(rows))
	}
	if rows[0][0] != "combination" || len(rows[0]) != 9 {
		t.Errorf("header = %v, want combination plus 8 metric columns", rows[0])
	}
	if rows[len(rows)-1][0] != "all_other" {
		t.Errorf("last row = %v, want all_other", rows[len(rows)-1])
	}

	// m3 is the only ontouml-only class model: AF 5, MC 1.
	found := false
	for _, row := range rows[1:] {
		if row[0] == "ontouml_and_not_other_and_not_none" {
			found = true
			if row[1] != "5" || row[2] != "1" {
				t.Errorf("class AF/MC = %s/%s, want 5/1", row[1], row[2])
			}
		}
	}
	if !found {
		t.Error("missing ontouml_and_not_other_and_not_none row")
	}
}

func TestWriteCSVTree_InvalidsUseSemicolon(t *testing.T) {
	d := calculatedDataset(t)
	dir := t.TempDir()
	if err := WriteCSVTree(dir, d); err != nil {
		t.Fatalf("WriteCSVTree failed: %v", err)
	}

	rows := readCSV(t, filepath.Join(dir, "sample", "sample_invalid_class_stereotypes_metrics.csv"), ';')
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header + Foo", len(rows))
	}
	if rows[1][0] != "Foo" || rows[1][1] != "3" || rows[1][2] != "1" {
		t.Errorf("Foo row = %v, want [Foo 3 1]", rows[1])
	}
}

func TestRatios_FiltersStatistics(t *testing.T) {
	statistics := map[string]float64{
		"relations_per_class": 0.5,
		"total_classes":       10,
		"class_total_mean":    2,
	}
	ratios := Ratios(statistics)
	if len(ratios) != 1 {
		t.Errorf("Ratios kept %d keys, want 1", len(ratios))
	}
	if ratios["relations_per_class"] != 0.5 {
		t.Errorf("relations_per_class = %f, want 0.5", ratios["relations_per_class"])
	}
}
