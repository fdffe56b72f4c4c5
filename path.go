package cityroute

import (
	"strings"
)

// PathResult is an ordered sequence of cities from start to end inclusive and its total distance
type PathResult struct {
	Nodes    []string
	Distance float64
	// Settled is number of cities finalized by the search. Diagnostic only
	Settled int
}

// Router finds shortest paths between two cities
type Router interface {
	ShortestPath(start, end string) (PathResult, error)
}

// Start returns first city of the path
func (p PathResult) Start() string {
	if len(p.Nodes) == 0 {
		return ""
	}
	return p.Nodes[0]
}

// End returns last city of the path
func (p PathResult) End() string {
	if len(p.Nodes) == 0 {
		return ""
	}
	return p.Nodes[len(p.Nodes)-1]
}

// String returns cities joined with arrows, e.g. "Bishkek -> Tokmok -> Kant"
func (p PathResult) String() string {
	return strings.Join(p.Nodes, " -> ")
}

// Legs returns consecutive routes of the path with weights taken from the graph.
// The lightest parallel route is picked when several connect the same pair
func (p PathResult) Legs(g *Graph) []Edge {
	if len(p.Nodes) < 2 {
		return nil
	}
	legs := make([]Edge, 0, len(p.Nodes)-1)
	for i := 1; i < len(p.Nodes); i++ {
		from, to := p.Nodes[i-1], p.Nodes[i]
		leg := Edge{From: from, To: to, Weight: -1}
		for _, neighbor := range g.adjacency[from] {
			if neighbor.ID != to {
				continue
			}
			if leg.Weight < 0 || neighbor.Weight < leg.Weight {
				leg.Weight = neighbor.Weight
			}
		}
		legs = append(legs, leg)
	}
	return legs
}

// Geometry returns coordinates of the path's cities
func (p PathResult) Geometry(g *Graph) []GeoPoint {
	return g.points(p.Nodes)
}
