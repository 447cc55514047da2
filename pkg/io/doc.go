// Package io loads topology and metadata documents and exports neighbor
// mappings.
//
// # Overview
//
// This package is the boundary between external JSON documents and the
// in-memory model. Both inputs are consumed exactly once per run:
//
//   - The topology document ([ReadTopology]) must be valid JSON with a
//     non-empty top-level "objects" map. The geometry collection to process
//     is picked afterwards with [SelectCollection].
//   - The metadata document ([ReadMetadata]) maps region display names to
//     records with an optional code field.
//
// Parse failures are fatal and carry coded errors from [pkg/errors]; no
// adjacency logic runs on a partially loaded input.
//
// # Export
//
// [WriteNeighbors] renders the final mapping as indented JSON. Object keys
// are emitted in sorted order by encoding/json and every neighbor list is
// already sorted, so identical inputs produce byte-identical output.
//
// [pkg/errors]: github.com/jmaurer/topoborders/pkg/errors
package io
