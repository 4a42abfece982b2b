// Package store persists dataset snapshots as gzip-compressed
// msgpack files. A snapshot captures only the corpus and its
// vocabularies; derived state is recomputed on load, never stored.
package store

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/shamaton/msgpack/v2"

	"github.com/unbound-force/ontostats/internal/dataset"
	"github.com/unbound-force/ontostats/internal/taxonomy"
)

// Extension is the snapshot file extension.
const Extension = ".snapshot.gz"

// snapshot is the on-disk shape of a dataset.
type snapshot struct {
	Name           string            `msgpack:"name"`
	ClassLabels    []string          `msgpack:"class_labels"`
	RelationLabels []string          `msgpack:"relation_labels"`
	Models         []*taxonomy.Model `msgpack:"models"`
}

// Save writes a dataset snapshot to dir under the dataset's name.
// It returns the written file path.
func Save(dir string, d *dataset.Dataset) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating snapshot directory: %w", err)
	}

	snap := snapshot{
		Name:           d.Name(),
		ClassLabels:    d.Vocabulary(taxonomy.KindClass).Labels(),
		RelationLabels: d.Vocabulary(taxonomy.KindRelation).Labels(),
		Models:         d.Models(),
	}
	data, err := msgpack.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("encoding snapshot: %w", err)
	}

	path := filepath.Join(dir, d.Name()+Extension)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating snapshot %s: %w", path, err)
	}
	defer f.Close()

	zw := gzip.NewWriter(f)
	if _, err := zw.Write(data); err != nil {
		return "", fmt.Errorf("writing snapshot %s: %w", path, err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("finishing snapshot %s: %w", path, err)
	}
	return path, nil
}

// Load reads a snapshot file and rebuilds the dataset, re-running
// the construction-time integrity validation.
func Load(path string) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot %s: %w", path, err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("decompressing snapshot %s: %w", path, err)
	}
	defer zr.Close()

	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", path, err)
	}

	var snap snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot %s: %w", path, err)
	}

	classVocab, err := taxonomy.NewVocabulary(snap.ClassLabels)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s class vocabulary: %w", path, err)
	}
	relationVocab, err := taxonomy.NewVocabulary(snap.RelationLabels)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s relation vocabulary: %w", path, err)
	}

	return dataset.New(snap.Name, classVocab, relationVocab, snap.Models)
}
