package cityroute

import (
	"math"

	"github.com/pkg/errors"
)

// Node is a named city with its coordinate
type Node struct {
	ID    string
	Point GeoPoint
}

// Edge is an undirected weighted route between two cities. Weight is in kilometers
type Edge struct {
	From   string
	To     string
	Weight float64
}

// Neighbor is a single adjacency entry: the city on the other end of a route and the route weight
type Neighbor struct {
	ID     string
	Weight float64
}

// GraphBuilder accumulates cities and routes. Call Build to obtain an immutable *Graph
type GraphBuilder struct {
	nodes     map[string]Node
	order     []string
	adjacency map[string][]Neighbor
	edges     []Edge
}

// NewGraphBuilder returns empty builder
func NewGraphBuilder() *GraphBuilder {
	return &GraphBuilder{
		nodes:     make(map[string]Node),
		adjacency: make(map[string][]Neighbor),
	}
}

// AddNode inserts city if it is not present yet. Re-adding an existing id is a no-op
// (a changed coordinate is ignored). Returns true when the city has been inserted
func (b *GraphBuilder) AddNode(id string, lat, lon float64) bool {
	if _, ok := b.nodes[id]; ok {
		return false
	}
	b.nodes[id] = Node{ID: id, Point: GeoPoint{Lat: lat, Lon: lon}}
	b.order = append(b.order, id)
	b.adjacency[id] = []Neighbor{}
	return true
}

// AddEdge inserts bidirectional route between two existing cities.
// Nothing is inserted when either endpoint is missing (ErrMalformedEdge) or weight is negative (ErrNegativeWeight).
// Callers who want lenient loading may ignore the error
func (b *GraphBuilder) AddEdge(id1, id2 string, weight float64) error {
	for _, id := range []string{id1, id2} {
		if _, ok := b.nodes[id]; !ok {
			return errors.Wrapf(ErrMalformedEdge, "route %s --> %s: '%s'", id1, id2, id)
		}
	}
	if weight < 0 || math.IsNaN(weight) {
		return errors.Wrapf(ErrNegativeWeight, "route %s --> %s: %v", id1, id2, weight)
	}
	b.adjacency[id1] = append(b.adjacency[id1], Neighbor{ID: id2, Weight: weight})
	b.adjacency[id2] = append(b.adjacency[id2], Neighbor{ID: id1, Weight: weight})
	b.edges = append(b.edges, Edge{From: id1, To: id2, Weight: weight})
	return nil
}

// Build returns snapshot of accumulated data. Further changes to the builder do not affect returned graph
func (b *GraphBuilder) Build() *Graph {
	g := &Graph{
		nodes:     make(map[string]Node, len(b.nodes)),
		order:     make([]string, len(b.order)),
		adjacency: make(map[string][]Neighbor, len(b.adjacency)),
		edges:     make([]Edge, len(b.edges)),
	}
	for id, node := range b.nodes {
		g.nodes[id] = node
	}
	copy(g.order, b.order)
	for id, neighbors := range b.adjacency {
		g.adjacency[id] = append(make([]Neighbor, 0, len(neighbors)), neighbors...)
	}
	copy(g.edges, b.edges)
	return g
}

// Graph is read-only set of cities and routes
type Graph struct {
	nodes     map[string]Node
	order     []string
	adjacency map[string][]Neighbor
	edges     []Edge
}

// Len returns number of cities
func (g *Graph) Len() int {
	return len(g.order)
}

// HasNode checks if city is known
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Node returns city by its id
func (g *Graph) Node(id string) (Node, bool) {
	node, ok := g.nodes[id]
	return node, ok
}

// Nodes returns cities in insertion order
func (g *Graph) Nodes() []Node {
	nodes := make([]Node, len(g.order))
	for i, id := range g.order {
		nodes[i] = g.nodes[id]
	}
	return nodes
}

// Edges returns routes in insertion order
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, len(g.edges))
	copy(edges, g.edges)
	return edges
}

// Neighbors returns copy of adjacency list for given city. Unknown city gives nil
func (g *Graph) Neighbors(id string) []Neighbor {
	neighbors, ok := g.adjacency[id]
	if !ok {
		return nil
	}
	return append(make([]Neighbor, 0, len(neighbors)), neighbors...)
}

// points returns coordinates of given cities. Unknown ids are skipped
func (g *Graph) points(ids []string) []GeoPoint {
	pts := make([]GeoPoint, 0, len(ids))
	for _, id := range ids {
		if node, ok := g.nodes[id]; ok {
			pts = append(pts, node.Point)
		}
	}
	return pts
}
