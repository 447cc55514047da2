package topology

import (
	"encoding/json"
	"fmt"
)

// =============================================================================
// ArcTree - Nested Arc References
// =============================================================================

// ArcTree is one node of a geometry's arc-reference structure: either a leaf
// holding a single arc reference, or a group of nested trees. The JSON form
// is an integer for a leaf and an array for a group, nested to any depth
// (rings, polygons with holes, multi-polygons).
//
// The zero value is an empty group and flattens to nothing.
type ArcTree struct {
	// Leaf reports whether this node is a single arc reference.
	Leaf bool
	// Ref is the raw (possibly negative) arc reference. Valid only when Leaf.
	Ref int
	// Group holds the nested trees. Valid only when !Leaf.
	Group []ArcTree
}

// UnmarshalJSON decodes either a bare integer (leaf) or an array of arc
// trees (group).
func (t *ArcTree) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '[' {
		var group []ArcTree
		if err := json.Unmarshal(data, &group); err != nil {
			return err
		}
		*t = ArcTree{Group: group}
		return nil
	}

	var ref int
	if err := json.Unmarshal(data, &ref); err != nil {
		return fmt.Errorf("arc reference: %w", err)
	}
	*t = ArcTree{Leaf: true, Ref: ref}
	return nil
}

// MarshalJSON is the inverse of UnmarshalJSON, for round-trip fidelity.
func (t ArcTree) MarshalJSON() ([]byte, error) {
	if t.Leaf {
		return json.Marshal(t.Ref)
	}
	if t.Group == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t.Group)
}

// Flatten returns every leaf reference in depth-first order, regardless of
// nesting depth. It walks the tree with an explicit stack rather than
// recursion, so the nesting depth of the input is a heap concern only.
func (t ArcTree) Flatten() []int {
	if t.Leaf {
		return []int{t.Ref}
	}

	var refs []int
	// Stack of pending nodes, pushed in reverse so leaves pop in input order.
	stack := make([]ArcTree, 0, len(t.Group))
	for i := len(t.Group) - 1; i >= 0; i-- {
		stack = append(stack, t.Group[i])
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.Leaf {
			refs = append(refs, n.Ref)
			continue
		}
		for i := len(n.Group) - 1; i >= 0; i-- {
			stack = append(stack, n.Group[i])
		}
	}
	return refs
}

// =============================================================================
// Canonical Arc Ids
// =============================================================================

// Canonical maps an arc reference to the non-negative id of the underlying
// arc. A negative reference encodes reversed traversal of arc ^ref, so ref
// and ^ref (equivalently -ref-1) name the same undirected arc.
func Canonical(ref int) int {
	if ref < 0 {
		return ^ref
	}
	return ref
}
