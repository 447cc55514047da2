// Package region resolves topology geometries to canonical region codes.
//
// Resolution runs an ordered chain of strategies over each geometry — the
// embedded code property first, then a metadata lookup by display name —
// followed by a forced-override pass for dataset quirks (territories that
// should be folded into a recognized parent region). The first strategy to
// produce a code wins; an override, when one matches, replaces whatever the
// chain produced. Geometries no rule can resolve are excluded from adjacency
// derivation entirely.
//
// The metadata table also defines the universe of recognized codes: every
// record with a non-empty code contributes a key to the final output, even
// when the region ends up with no neighbors.
package region
