package io

import (
	"encoding/json"
	"io"
	"os"
	"sort"

	"github.com/jmaurer/topoborders/pkg/errors"
	"github.com/jmaurer/topoborders/pkg/region"
	"github.com/jmaurer/topoborders/pkg/topology"
)

// ReadTopology decodes a topology document from r.
//
// ReadTopology returns a coded error if the JSON is malformed
// (INVALID_DOCUMENT) or the document has no "objects" entries
// (INVALID_DOCUMENT). The returned document is independent of r; ReadTopology
// does not close r.
func ReadTopology(r io.Reader) (*topology.Document, error) {
	var doc topology.Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode topology")
	}
	if len(doc.Objects) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "topology has no objects")
	}
	return &doc, nil
}

// ImportTopology reads a topology document from the file at path.
func ImportTopology(path string) (*topology.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open topology %s", path)
	}
	defer f.Close()
	return ReadTopology(f)
}

// SelectCollection picks the geometry collection to process. When name is
// non-empty it must exist in the document. When name is empty the document
// must contain exactly one object, which is then used; with several objects
// the choice is ambiguous and an OBJECT_NOT_FOUND error names the candidates.
func SelectCollection(doc *topology.Document, name string) (topology.Collection, error) {
	if name != "" {
		c, ok := doc.Objects[name]
		if !ok {
			return topology.Collection{}, errors.New(errors.ErrCodeObjectNotFound,
				"topology has no object %q (available: %v)", name, objectNames(doc))
		}
		return c, nil
	}

	if len(doc.Objects) != 1 {
		return topology.Collection{}, errors.New(errors.ErrCodeObjectNotFound,
			"topology has %d objects, pick one with --object (available: %v)",
			len(doc.Objects), objectNames(doc))
	}
	for _, c := range doc.Objects {
		return c, nil
	}
	return topology.Collection{}, errors.New(errors.ErrCodeInternal, "unreachable")
}

func objectNames(doc *topology.Document) []string {
	names := make([]string, 0, len(doc.Objects))
	for n := range doc.Objects {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ReadMetadata decodes a metadata table from r.
func ReadMetadata(r io.Reader) (region.Table, error) {
	var t region.Table
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode metadata")
	}
	return t, nil
}

// ImportMetadata reads a metadata table from the file at path.
func ImportMetadata(path string) (region.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open metadata %s", path)
	}
	defer f.Close()
	return ReadMetadata(f)
}
