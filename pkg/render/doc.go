// Package render turns neighbor mappings into Graphviz artifacts.
//
// The border graph is undirected: an edge between two region codes means
// they share at least one boundary arc. [ToDOT] emits each unordered pair
// once, and [RenderSVG] rasterizes the DOT through Graphviz. Isolated
// regions are included as edge-less nodes so the picture shows the full
// recognized universe.
package render
