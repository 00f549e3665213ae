package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/mycok/uPartition/cograph/graph"
)

// graphFile describes a co-occurrence graph in toml:
//
//	[[vertices]]
//	key = "orders"
//	label = 0
//
//	[[edges]]
//	src = "orders"
//	dest = "customers"
//	weight = 5
type graphFile struct {
	Vertices []struct {
		Key   string `toml:"key"`
		Label int64  `toml:"label"`
	} `toml:"vertices"`

	Edges []struct {
		Src    string `toml:"src"`
		Dest   string `toml:"dest"`
		Label  string `toml:"label"`
		Weight int64  `toml:"weight"`
	} `toml:"edges"`
}

// importGraph upserts the vertices and edges listed in the file at path.
// Edges without a label get edgeLabel.
func importGraph(g graph.Graph, path, edgeLabel string) (int, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, fmt.Errorf("read graph file: %w", err)
	}

	var gf graphFile
	if err = toml.Unmarshal(data, &gf); err != nil {
		return 0, 0, fmt.Errorf("decode graph file: %w", err)
	}

	ids := make(map[string]*graph.Vertex, len(gf.Vertices))
	for _, fv := range gf.Vertices {
		v := &graph.Vertex{Key: fv.Key, Label: fv.Label}
		if err = g.UpsertVertex(v); err != nil {
			return 0, 0, fmt.Errorf("import vertex %q: %w", fv.Key, err)
		}

		ids[fv.Key] = v
	}

	for _, fe := range gf.Edges {
		src, dest := ids[fe.Src], ids[fe.Dest]
		if src == nil || dest == nil {
			return 0, 0, fmt.Errorf("import edge %q -> %q: %w", fe.Src, fe.Dest, graph.ErrUnknownEdgeVertices)
		}

		label := fe.Label
		if label == "" {
			label = edgeLabel
		}

		err = g.UpsertEdge(&graph.Edge{Src: src.ID, Dest: dest.ID, Label: label, Weight: fe.Weight})
		if err != nil {
			return 0, 0, fmt.Errorf("import edge %q -> %q: %w", fe.Src, fe.Dest, err)
		}
	}

	return len(ids), len(gf.Edges), nil
}
