package io

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/jmaurer/topoborders/pkg/adjacency"
	"github.com/jmaurer/topoborders/pkg/errors"
)

const sampleTopology = `{
	"type": "Topology",
	"objects": {
		"africa": {
			"type": "GeometryCollection",
			"geometries": [
				{"id": "DZA", "properties": {"name": "Algeria", "alpha3": "DZA"}, "arcs": [[0, 1]]}
			]
		}
	}
}`

func TestReadTopology(t *testing.T) {
	doc, err := ReadTopology(strings.NewReader(sampleTopology))
	if err != nil {
		t.Fatalf("ReadTopology: %v", err)
	}
	if len(doc.Objects["africa"].Geometries) != 1 {
		t.Errorf("geometries = %d, want 1", len(doc.Objects["africa"].Geometries))
	}
}

func TestReadTopologyErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code errors.Code
	}{
		{"Malformed", `{not json`, errors.ErrCodeInvalidDocument},
		{"NoObjects", `{"type": "Topology"}`, errors.ErrCodeInvalidDocument},
		{"EmptyObjects", `{"objects": {}}`, errors.ErrCodeInvalidDocument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadTopology(strings.NewReader(tt.in))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %q, want %q", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestSelectCollection(t *testing.T) {
	doc, err := ReadTopology(strings.NewReader(sampleTopology))
	if err != nil {
		t.Fatal(err)
	}

	t.Run("ByName", func(t *testing.T) {
		c, err := SelectCollection(doc, "africa")
		if err != nil {
			t.Fatalf("SelectCollection: %v", err)
		}
		if len(c.Geometries) != 1 {
			t.Errorf("geometries = %d, want 1", len(c.Geometries))
		}
	})

	t.Run("SoleObjectDefault", func(t *testing.T) {
		if _, err := SelectCollection(doc, ""); err != nil {
			t.Errorf("SelectCollection with single object: %v", err)
		}
	})

	t.Run("UnknownName", func(t *testing.T) {
		_, err := SelectCollection(doc, "europe")
		if !errors.Is(err, errors.ErrCodeObjectNotFound) {
			t.Errorf("code = %q, want OBJECT_NOT_FOUND", errors.GetCode(err))
		}
	})

	t.Run("AmbiguousWithoutName", func(t *testing.T) {
		two, err := ReadTopology(strings.NewReader(`{"objects": {"a": {"geometries": []}, "b": {"geometries": []}}}`))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := SelectCollection(two, ""); !errors.Is(err, errors.ErrCodeObjectNotFound) {
			t.Errorf("code = %q, want OBJECT_NOT_FOUND", errors.GetCode(err))
		}
	})
}

func TestReadMetadata(t *testing.T) {
	in := `{"Algeria": {"alpha3": "DZA"}, "Somaliland": {}}`
	table, err := ReadMetadata(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadMetadata: %v", err)
	}
	if table["Algeria"].ResolvedCode() != "DZA" {
		t.Errorf("Algeria code = %q, want DZA", table["Algeria"].ResolvedCode())
	}
	if got := table.Universe().Codes(); !reflect.DeepEqual(got, []string{"DZA"}) {
		t.Errorf("universe = %v, want [DZA]", got)
	}

	if _, err := ReadMetadata(strings.NewReader(`[1, 2]`)); !errors.Is(err, errors.ErrCodeInvalidDocument) {
		t.Error("expected INVALID_DOCUMENT for non-object metadata")
	}
}

func TestWriteNeighborsDeterministic(t *testing.T) {
	n := adjacency.Neighbors{
		"DZA": {"LBY", "TUN"},
		"TUN": {"DZA", "LBY"},
		"LBY": {"DZA", "TUN"},
		"CPV": {},
	}

	var first bytes.Buffer
	if err := WriteNeighbors(n, &first); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		var again bytes.Buffer
		if err := WriteNeighbors(n, &again); err != nil {
			t.Fatal(err)
		}
		if first.String() != again.String() {
			t.Fatal("output not byte-identical across runs")
		}
	}

	// Keys come out sorted.
	out := first.String()
	if strings.Index(out, `"CPV"`) > strings.Index(out, `"DZA"`) {
		t.Error("keys not sorted in output")
	}
}

func TestNeighborsRoundTrip(t *testing.T) {
	n := adjacency.Neighbors{"AAA": {"BBB"}, "BBB": {"AAA"}, "CCC": {}}
	data, err := MarshalNeighbors(n)
	if err != nil {
		t.Fatal(err)
	}
	back, err := UnmarshalNeighbors(data)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(n, back) {
		t.Errorf("round trip = %v, want %v", back, n)
	}
}
