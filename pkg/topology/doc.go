// Package topology models topology-encoded map documents.
//
// # Overview
//
// A topology document stores polygon boundaries as references into a shared
// pool of polylines ("arcs"). Every boundary shared by two regions exists
// once in the pool and is referenced from both sides, which is what makes
// adjacency derivable without any coordinate math: two regions are neighbors
// exactly when their geometries reference at least one common arc.
//
// # Document Shape
//
// The document has a top-level "objects" map from collection name to a set
// of geometry records:
//
//	{
//	  "type": "Topology",
//	  "objects": {
//	    "africa": {
//	      "type": "GeometryCollection",
//	      "geometries": [
//	        {"id": "DZA", "properties": {"name": "Algeria", "alpha3": "DZA"}, "arcs": [[0, 1, 2]]}
//	      ]
//	    }
//	  }
//	}
//
// # Arc References
//
// Each geometry's "arcs" field is an arbitrarily nested array of integers.
// Nesting encodes ring and multi-polygon structure; the integers reference
// the shared arc pool. A negative reference means the arc is traversed in
// reverse: reference r denotes the arc with canonical id r when r >= 0, and
// ^r (that is, -r-1) when r < 0. [Canonical] undoes this encoding; adjacency
// depends only on the canonical id, never on direction.
//
// [ArcTree] holds the nested structure as a tagged union of leaf references
// and groups, and [ArcTree.Flatten] walks it with an explicit stack so
// nesting depth never threatens the goroutine stack.
//
// This package carries no coordinate data. The "arcs" pool itself (the
// coordinate payload of a full TopoJSON file) is ignored on decode.
package topology
