package dataset

import "github.com/unbound-force/ontostats/internal/taxonomy"

// Totals carries the ten dataset-wide category totals the ratio
// calculator derives from.
type Totals struct {
	Classes                 int
	Relations               int
	StereotypedClasses      int
	StereotypedRelations    int
	NonStereotypedClasses   int
	NonStereotypedRelations int
	OntoumlClasses          int
	OntoumlRelations        int
	NonOntoumlClasses       int
	NonOntoumlRelations     int
}

// set stores a category total by kind and vector name.
func (t *Totals) set(kind taxonomy.Kind, vectorName string, value int) {
	if kind == taxonomy.KindClass {
		switch vectorName {
		case "total":
			t.Classes = value
		case "stereotyped":
			t.StereotypedClasses = value
		case "non_stereotyped":
			t.NonStereotypedClasses = value
		case "ontouml":
			t.OntoumlClasses = value
		case "non_ontouml":
			t.NonOntoumlClasses = value
		}
		return
	}
	switch vectorName {
	case "total":
		t.Relations = value
	case "stereotyped":
		t.StereotypedRelations = value
	case "non_stereotyped":
		t.NonStereotypedRelations = value
	case "ontouml":
		t.OntoumlRelations = value
	case "non_ontouml":
		t.NonOntoumlRelations = value
	}
}

// Ratios derives the named cross-category ratios from the totals.
// Every zero denominator resolves to the uniform 0 sentinel; an
// empty dataset therefore yields all-zero ratios, never an error.
func Ratios(t Totals) map[string]float64 {
	classes := float64(t.Classes)
	relations := float64(t.Relations)

	return map[string]float64{
		"relations_per_class": safeDiv(relations, classes),
		"classes_per_relation": safeDiv(classes, relations),

		"stereotyped_class_ratio":        safeDiv(float64(t.StereotypedClasses), classes),
		"stereotyped_relation_ratio":     safeDiv(float64(t.StereotypedRelations), relations),
		"non_stereotyped_class_ratio":    safeDiv(float64(t.NonStereotypedClasses), classes),
		"non_stereotyped_relation_ratio": safeDiv(float64(t.NonStereotypedRelations), relations),

		"ontouml_class_ratio":        safeDiv(float64(t.OntoumlClasses), classes),
		"ontouml_relation_ratio":     safeDiv(float64(t.OntoumlRelations), relations),
		"non_ontouml_class_ratio":    safeDiv(float64(t.NonOntoumlClasses), classes),
		"non_ontouml_relation_ratio": safeDiv(float64(t.NonOntoumlRelations), relations),

		"stereotyped_relations_per_stereotyped_class": safeDiv(
			float64(t.StereotypedRelations), float64(t.StereotypedClasses)),
		"ontouml_relations_per_ontouml_class": safeDiv(
			float64(t.OntoumlRelations), float64(t.OntoumlClasses)),
	}
}
