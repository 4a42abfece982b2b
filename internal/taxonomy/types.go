// Package taxonomy defines the stereotype type system shared by the
// ontostats aggregation engine: stereotype kinds, vocabularies, the
// model record, and the eight-way categorical partition.
package taxonomy

import (
	"fmt"
	"sort"
)

// Kind selects which stereotype set of a model an operation works on.
type Kind string

// Stereotype kind constants.
const (
	KindClass    Kind = "class"
	KindRelation Kind = "relation"
	KindCombined Kind = "combined"
)

// Reserved stereotype labels. Every vocabulary carries both: "none"
// marks unlabeled elements, "other" marks labels outside the
// recognized OntoUML vocabulary.
const (
	LabelNone  = "none"
	LabelOther = "other"
)

// Model is a single structural model as supplied by the catalog
// loader. It is read-only input from the engine's perspective.
type Model struct {
	// Name identifies the model within its dataset.
	Name string `json:"name" yaml:"name" msgpack:"name"`

	// Year is the model's creation year, used as the grouping key
	// for yearly aggregation.
	Year int `json:"year" yaml:"year" msgpack:"year"`

	// TotalClasses and TotalRelations are the declared element
	// counts. The consistency validator checks aggregate frequencies
	// against these independently of the stereotype counts.
	TotalClasses   int `json:"total_classes" yaml:"total_classes" msgpack:"total_classes"`
	TotalRelations int `json:"total_relations" yaml:"total_relations" msgpack:"total_relations"`

	// ClassStereotypes and RelationStereotypes map stereotype label
	// to occurrence count. Both always include the reserved labels.
	ClassStereotypes    map[string]int `json:"class_stereotypes" yaml:"class_stereotypes" msgpack:"class_stereotypes"`
	RelationStereotypes map[string]int `json:"relation_stereotypes" yaml:"relation_stereotypes" msgpack:"relation_stereotypes"`

	// InvalidClassStereotypes and InvalidRelationStereotypes map
	// out-of-vocabulary labels to counts. May be nil.
	InvalidClassStereotypes    map[string]int `json:"invalid_class_stereotypes,omitempty" yaml:"invalid_class_stereotypes,omitempty" msgpack:"invalid_class_stereotypes"`
	InvalidRelationStereotypes map[string]int `json:"invalid_relation_stereotypes,omitempty" yaml:"invalid_relation_stereotypes,omitempty" msgpack:"invalid_relation_stereotypes"`
}

// Stereotypes returns the model's stereotype counts for the given
// kind. KindCombined is not a stored set and returns nil.
func (m *Model) Stereotypes(kind Kind) map[string]int {
	switch kind {
	case KindClass:
		return m.ClassStereotypes
	case KindRelation:
		return m.RelationStereotypes
	default:
		return nil
	}
}

// InvalidStereotypes returns the model's out-of-vocabulary counts
// for the given kind.
func (m *Model) InvalidStereotypes(kind Kind) map[string]int {
	switch kind {
	case KindClass:
		return m.InvalidClassStereotypes
	case KindRelation:
		return m.InvalidRelationStereotypes
	default:
		return nil
	}
}

// CategoryCounts splits the model's stereotype counts for a kind into
// the three predicate totals: recognized OntoUML labels, "none", and
// "other".
func (m *Model) CategoryCounts(kind Kind) (ontouml, none, other int) {
	for label, count := range m.Stereotypes(kind) {
		switch label {
		case LabelNone:
			none += count
		case LabelOther:
			other += count
		default:
			ontouml += count
		}
	}
	return ontouml, none, other
}

// TotalStereotypes is the sum of all stereotype counts of a kind.
func (m *Model) TotalStereotypes(kind Kind) int {
	total := 0
	for _, count := range m.Stereotypes(kind) {
		total += count
	}
	return total
}

// Vocabulary is an explicit, ordered stereotype label set. The order
// fixes the column order of every exported table, so all models of a
// dataset must share the exact label set.
type Vocabulary struct {
	labels []string
	index  map[string]int
}

// NewVocabulary builds a vocabulary from an ordered label list. The
// list must contain the reserved labels "none" and "other" and no
// duplicates.
func NewVocabulary(labels []string) (Vocabulary, error) {
	index := make(map[string]int, len(labels))
	for i, label := range labels {
		if _, dup := index[label]; dup {
			return Vocabulary{}, fmt.Errorf("duplicate stereotype label %q", label)
		}
		index[label] = i
	}
	for _, reserved := range []string{LabelNone, LabelOther} {
		if _, ok := index[reserved]; !ok {
			return Vocabulary{}, fmt.Errorf("vocabulary is missing reserved label %q", reserved)
		}
	}
	owned := make([]string, len(labels))
	copy(owned, labels)
	return Vocabulary{labels: owned, index: index}, nil
}

// Labels returns the vocabulary's labels in column order. The
// returned slice must not be modified.
func (v Vocabulary) Labels() []string { return v.labels }

// Len returns the number of labels in the vocabulary.
func (v Vocabulary) Len() int { return len(v.labels) }

// Contains reports whether the label is part of the vocabulary.
func (v Vocabulary) Contains(label string) bool {
	_, ok := v.index[label]
	return ok
}

// Validate checks a model's stereotype counts against the vocabulary:
// the key set must match exactly and every count must be
// non-negative. Both violations are data-integrity errors.
func (v Vocabulary) Validate(counts map[string]int) error {
	if len(counts) != len(v.labels) {
		return fmt.Errorf("expected %d stereotype labels, got %d", len(v.labels), len(counts))
	}
	for label, count := range counts {
		if _, ok := v.index[label]; !ok {
			return fmt.Errorf("unknown stereotype label %q", label)
		}
		if count < 0 {
			return fmt.Errorf("negative count %d for stereotype %q", count, label)
		}
	}
	return nil
}

// Vector flattens a validated count mapping into a slice aligned with
// the vocabulary's label order.
func (v Vocabulary) Vector(counts map[string]int) []int {
	vec := make([]int, len(v.labels))
	for label, count := range counts {
		if i, ok := v.index[label]; ok {
			vec[i] = count
		}
	}
	return vec
}

// Union merges two vocabularies, preserving the receiver's order and
// appending the other's extra labels in sorted order. Used for the
// combined class+relation statistics.
func (v Vocabulary) Union(other Vocabulary) Vocabulary {
	labels := make([]string, len(v.labels))
	copy(labels, v.labels)
	index := make(map[string]int, len(labels))
	for i, label := range labels {
		index[label] = i
	}
	var extra []string
	for _, label := range other.labels {
		if _, ok := index[label]; !ok {
			extra = append(extra, label)
		}
	}
	sort.Strings(extra)
	for _, label := range extra {
		index[label] = len(labels)
		labels = append(labels, label)
	}
	return Vocabulary{labels: labels, index: index}
}
