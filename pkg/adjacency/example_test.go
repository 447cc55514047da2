package adjacency_test

import (
	"encoding/json"
	"fmt"

	"github.com/jmaurer/topoborders/pkg/adjacency"
	"github.com/jmaurer/topoborders/pkg/region"
	"github.com/jmaurer/topoborders/pkg/topology"
)

func ExampleBuild() {
	doc := `{
		"objects": {
			"demo": {
				"geometries": [
					{"id": "AAA", "arcs": [[5]]},
					{"id": "BBB", "arcs": [[-6]]},
					{"id": "CCC", "arcs": [[9]]}
				]
			}
		}
	}`
	var d topology.Document
	if err := json.Unmarshal([]byte(doc), &d); err != nil {
		panic(err)
	}
	geoms := d.Objects["demo"].Geometries

	// AAA and BBB reference arc 5 from opposite directions (-6 is the
	// complement of 5); CCC touches nothing shared.
	codes := map[string]string{"AAA": "AAA", "BBB": "BBB", "CCC": "CCC"}
	universe := region.Universe{"AAA": {}, "BBB": {}, "CCC": {}}

	neighbors := adjacency.Build(adjacency.Index(geoms, codes), universe)

	for _, code := range universe.Codes() {
		fmt.Printf("%s -> %v\n", code, neighbors[code])
	}
	// Output:
	// AAA -> [BBB]
	// BBB -> [AAA]
	// CCC -> []
}
