// Package loader reads model catalog files into the domain types the
// aggregation engine consumes.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/unbound-force/ontostats/internal/taxonomy"
)

// Catalog is a parsed model catalog: a named, ordered model corpus
// plus the explicit stereotype vocabularies all its models share.
type Catalog struct {
	// Name is the dataset name used for the output directory layout.
	Name string

	// ClassVocabulary and RelationVocabulary are the validated
	// shared label sets.
	ClassVocabulary    taxonomy.Vocabulary
	RelationVocabulary taxonomy.Vocabulary

	// Models holds the corpus in file order.
	Models []*taxonomy.Model
}

// catalogFile is the on-disk shape of a catalog.
type catalogFile struct {
	Name                string            `json:"name" yaml:"name"`
	ClassStereotypes    []string          `json:"class_stereotypes" yaml:"class_stereotypes"`
	RelationStereotypes []string          `json:"relation_stereotypes" yaml:"relation_stereotypes"`
	Models              []*taxonomy.Model `json:"models" yaml:"models"`
}

// Load reads a catalog from a YAML (.yaml/.yml) or JSON (.json) file
// and validates it. It returns the parsed catalog or an explicit
// error naming the offending model; it never returns a partially
// valid catalog.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %q: %w", path, err)
	}

	var file catalogFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parsing catalog %q: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parsing catalog %q: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("catalog %q: unsupported extension %q (want .yaml, .yml, or .json)", path, ext)
	}

	return build(path, file)
}

// build validates the parsed file and assembles the catalog.
func build(path string, file catalogFile) (*Catalog, error) {
	if file.Name == "" {
		file.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	classVocab, err := taxonomy.NewVocabulary(file.ClassStereotypes)
	if err != nil {
		return nil, fmt.Errorf("catalog %q class vocabulary: %w", path, err)
	}
	relationVocab, err := taxonomy.NewVocabulary(file.RelationStereotypes)
	if err != nil {
		return nil, fmt.Errorf("catalog %q relation vocabulary: %w", path, err)
	}

	seen := make(map[string]bool, len(file.Models))
	for _, m := range file.Models {
		if m.Name == "" {
			return nil, fmt.Errorf("catalog %q: model without a name", path)
		}
		if seen[m.Name] {
			return nil, fmt.Errorf("catalog %q: duplicate model name %q", path, m.Name)
		}
		seen[m.Name] = true

		if err := classVocab.Validate(m.ClassStereotypes); err != nil {
			return nil, fmt.Errorf("catalog %q model %q class stereotypes: %w", path, m.Name, err)
		}
		if err := relationVocab.Validate(m.RelationStereotypes); err != nil {
			return nil, fmt.Errorf("catalog %q model %q relation stereotypes: %w", path, m.Name, err)
		}
	}

	return &Catalog{
		Name:               file.Name,
		ClassVocabulary:    classVocab,
		RelationVocabulary: relationVocab,
		Models:             file.Models,
	}, nil
}
