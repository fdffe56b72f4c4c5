package cityroute

import (
	"math"

	"github.com/LdDl/ch"
	"github.com/pkg/errors"
)

// ContractedGraph answers shortest path queries using contraction hierarchies built over a *Graph.
// Distances are the same as ShortestPath gives; among several equally short paths another one may be picked
type ContractedGraph struct {
	source *Graph
	labels map[string]int64
	ids    []string
	engine ch.Graph
}

// NewContractedGraph prepares contraction hierarchies for given graph
func NewContractedGraph(g *Graph) (*ContractedGraph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	contracted := &ContractedGraph{
		source: g,
		labels: make(map[string]int64, g.Len()),
		ids:    make([]string, 0, g.Len()),
		engine: ch.Graph{},
	}
	for _, id := range g.order {
		label := int64(len(contracted.ids))
		err := contracted.engine.CreateVertex(label)
		if err != nil {
			return nil, errors.Wrapf(err, "Can not create vertex for '%s'", id)
		}
		contracted.labels[id] = label
		contracted.ids = append(contracted.ids, id)
	}

	// Parallel routes collapse into the lightest one
	type arc struct{ from, to int64 }
	weights := make(map[arc]float64)
	arcs := []arc{}
	for _, edge := range g.edges {
		from, to := contracted.labels[edge.From], contracted.labels[edge.To]
		for _, a := range []arc{{from, to}, {to, from}} {
			w, ok := weights[a]
			if !ok {
				arcs = append(arcs, a)
			}
			if !ok || edge.Weight < w {
				weights[a] = edge.Weight
			}
		}
	}
	for _, a := range arcs {
		if a.from == a.to {
			continue
		}
		err := contracted.engine.AddEdge(a.from, a.to, weights[a])
		if err != nil {
			return nil, errors.Wrapf(err, "Can not wrap '%s' and '%s' as edge", contracted.ids[a.from], contracted.ids[a.to])
		}
	}
	if g.Len() > 0 {
		contracted.engine.PrepareContractionHierarchies()
	}
	return contracted, nil
}

// ShortestPath returns minimum-weight path between two cities. Errors follow package-level ShortestPath
func (c *ContractedGraph) ShortestPath(start, end string) (PathResult, error) {
	labels := [2]int64{}
	for i, id := range []string{start, end} {
		label, ok := c.labels[id]
		if !ok {
			return PathResult{}, errors.Wrapf(ErrInvalidNode, "'%s'", id)
		}
		labels[i] = label
	}
	if start == end {
		return PathResult{Nodes: []string{start}, Distance: 0}, nil
	}
	cost, vertices := c.engine.ShortestPath(labels[0], labels[1])
	if cost < 0 || math.IsInf(cost, 1) || len(vertices) == 0 {
		return PathResult{}, errors.Wrapf(ErrNotFound, "from %s to %s", start, end)
	}
	nodes := make([]string, len(vertices))
	for i, v := range vertices {
		nodes[i] = c.ids[v]
	}
	return PathResult{
		Nodes:    nodes,
		Distance: cost,
	}, nil
}

// Graph returns graph the hierarchies have been built for
func (c *ContractedGraph) Graph() *Graph {
	return c.source
}
