package taxonomy

// Category is one of the eight mutually exclusive presence/absence
// combinations over the predicates "has >= 1 OntoUML stereotype",
// "has >= 1 other" and "has >= 1 none". A model with zero stereotypes
// of a kind belongs to no category at all.
type Category string

// Eight-way category constants, covering all 2^3 predicate
// combinations.
const (
	OntoumlAndOtherAndNone       Category = "ontouml_and_other_and_none"
	OntoumlAndOtherAndNotNone    Category = "ontouml_and_other_and_not_none"
	OntoumlAndNotOtherAndNone    Category = "ontouml_and_not_other_and_none"
	OntoumlAndNotOtherAndNotNone Category = "ontouml_and_not_other_and_not_none"
	NotOntoumlAndOtherAndNone    Category = "not_ontouml_and_other_and_none"
	NotOntoumlAndOtherAndNotNone Category = "not_ontouml_and_other_and_not_none"
	NotOntoumlAndNotOtherAndNone Category = "not_ontouml_and_not_other_and_none"
	NotOntoumlAndNotOtherAndNot  Category = "not_ontouml_and_not_other_and_not_none"
)

// categoryOrder fixes the export row order.
var categoryOrder = []Category{
	OntoumlAndOtherAndNone,
	OntoumlAndOtherAndNotNone,
	OntoumlAndNotOtherAndNone,
	OntoumlAndNotOtherAndNotNone,
	NotOntoumlAndOtherAndNone,
	NotOntoumlAndOtherAndNotNone,
	NotOntoumlAndNotOtherAndNone,
	NotOntoumlAndNotOtherAndNot,
}

// Categories returns the eight categories in stable export order.
// The returned slice must not be modified.
func Categories() []Category { return categoryOrder }

// Classify maps the three predicate totals to the single category the
// model falls into. Callers must exclude zero-stereotype models
// before classifying; Classify itself does not special-case them.
func Classify(ontouml, none, other int) Category {
	hasOntouml := ontouml > 0
	hasOther := other > 0
	hasNone := none > 0

	switch {
	case hasOntouml && hasOther && hasNone:
		return OntoumlAndOtherAndNone
	case hasOntouml && hasOther:
		return OntoumlAndOtherAndNotNone
	case hasOntouml && hasNone:
		return OntoumlAndNotOtherAndNone
	case hasOntouml:
		return OntoumlAndNotOtherAndNotNone
	case hasOther && hasNone:
		return NotOntoumlAndOtherAndNone
	case hasOther:
		return NotOntoumlAndOtherAndNotNone
	case hasNone:
		return NotOntoumlAndNotOtherAndNone
	default:
		return NotOntoumlAndNotOtherAndNot
	}
}

// GroupMetrics is the fixed-shape accumulation record attached to a
// category or an all_* aggregate: aggregate frequency (AF), model
// coverage (MC), and their ratios against the dataset denominators.
type GroupMetrics struct {
	// AF is the aggregate frequency: the total stereotype occurrence
	// count attributed to the group.
	AF int `json:"af" msgpack:"af"`

	// MC is the model coverage: the number of distinct models in the
	// group.
	MC int `json:"mc" msgpack:"mc"`

	// RatioAF is AF divided by the total stereotype count of the
	// kind (0 when the dataset has no stereotypes of the kind).
	RatioAF float64 `json:"ratio_af" msgpack:"ratio_af"`

	// RatioMC is MC divided by the number of models considered for
	// the kind (0 when none are).
	RatioMC float64 `json:"ratio_mc" msgpack:"ratio_mc"`
}
