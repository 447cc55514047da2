package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jmaurer/topoborders/pkg/adjacency"
)

// WriteNeighbors encodes a neighbor mapping as indented JSON and writes it
// to w. Map keys are emitted sorted and every neighbor list is pre-sorted,
// so the output is deterministic.
func WriteNeighbors(n adjacency.Neighbors, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(n); err != nil {
		return fmt.Errorf("encode neighbors: %w", err)
	}
	return nil
}

// MarshalNeighbors returns the indented JSON form of a neighbor mapping.
func MarshalNeighbors(n adjacency.Neighbors) ([]byte, error) {
	return json.MarshalIndent(n, "", "  ")
}

// UnmarshalNeighbors decodes a neighbor mapping from JSON bytes. Used to
// rehydrate cached pipeline results.
func UnmarshalNeighbors(data []byte) (adjacency.Neighbors, error) {
	var n adjacency.Neighbors
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	return n, nil
}

// ExportNeighbors writes a neighbor mapping to a JSON file at path.
func ExportNeighbors(n adjacency.Neighbors, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteNeighbors(n, f)
}
