package adjacency

import (
	"slices"

	"github.com/jmaurer/topoborders/pkg/region"
	"github.com/jmaurer/topoborders/pkg/topology"
)

// =============================================================================
// Ownership - Arc Id → Owner Codes
// =============================================================================

// Ownership maps each canonical arc id to the set of region codes whose
// geometry traverses it. A single owner marks an internal boundary segment;
// two or more owners mark a shared border.
type Ownership map[int]map[string]struct{}

// add records code as an owner of arc id. Adding the same code twice has no
// effect: owners are a set, not a count, so a ring touching itself cannot
// fabricate an adjacency.
func (o Ownership) add(id int, code string) {
	owners, ok := o[id]
	if !ok {
		owners = make(map[string]struct{})
		o[id] = owners
	}
	owners[code] = struct{}{}
}

// SharedArcs returns the number of arcs owned by two or more regions.
func (o Ownership) SharedArcs() int {
	n := 0
	for _, owners := range o {
		if len(owners) > 1 {
			n++
		}
	}
	return n
}

// Index builds the arc-ownership table from a collection of geometries and
// the geometry-key → code table produced by region resolution. Geometries
// whose key is absent from codes are skipped; arc references are normalized
// to canonical ids before insertion, so a reference and its complement land
// on the same entry.
func Index(geoms []topology.Geometry, codes map[string]string) Ownership {
	own := make(Ownership)
	for _, g := range geoms {
		code, ok := codes[g.Key()]
		if !ok {
			continue
		}
		for _, ref := range g.Arcs.Flatten() {
			own.add(topology.Canonical(ref), code)
		}
	}
	return own
}

// =============================================================================
// Neighbors - Final Mapping
// =============================================================================

// Neighbors maps every recognized region code to the sorted list of distinct
// codes sharing at least one boundary arc with it. Symmetric by
// construction; no self entries; isolated regions map to an empty list.
type Neighbors map[string][]string

// Build collapses an ownership table into the neighbor mapping over the
// given universe. Every universe code is seeded as a key. For each arc with
// N ≥ 2 owners, every ordered pair of distinct owners becomes an edge, which
// yields the C(N,2) unordered edges and symmetry in one double loop. A code
// outside the universe is never a key, and is only written as a value under
// keys that are in the universe — so unrecognized codes cannot reach the
// output at all when both sides are guarded.
func Build(own Ownership, universe region.Universe) Neighbors {
	sets := make(map[string]map[string]struct{}, len(universe))
	for code := range universe {
		sets[code] = make(map[string]struct{})
	}

	for _, owners := range own {
		if len(owners) < 2 {
			continue
		}
		for a := range owners {
			set, ok := sets[a]
			if !ok {
				continue
			}
			for b := range owners {
				if a == b || !universe.Contains(b) {
					continue
				}
				set[b] = struct{}{}
			}
		}
	}

	out := make(Neighbors, len(sets))
	for code, set := range sets {
		list := make([]string, 0, len(set))
		for n := range set {
			list = append(list, n)
		}
		slices.Sort(list)
		out[code] = list
	}
	return out
}
