package cityroute

import (
	"container/heap"
	"math"

	"github.com/pkg/errors"
)

// Tree is a result of single-source Dijkstra run: best distances and predecessor links from the source city
type Tree struct {
	source   string
	distance map[string]float64
	prev     map[string]string
	settled  int
}

// Dijkstra computes shortest distances from start to every city of the graph
func Dijkstra(g *Graph, start string) (*Tree, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(start) {
		return nil, errors.Wrapf(ErrInvalidNode, "'%s'", start)
	}

	tree := &Tree{
		source:   start,
		distance: make(map[string]float64, g.Len()),
		prev:     make(map[string]string, g.Len()),
	}
	for _, id := range g.order {
		tree.distance[id] = math.Inf(1)
	}
	tree.distance[start] = 0

	pq := make(frontier, 0, g.Len())
	heap.Push(&pq, frontierItem{id: start, distance: 0})
	for pq.Len() > 0 {
		current := heap.Pop(&pq).(frontierItem)
		if current.distance > tree.distance[current.id] {
			// stale entry
			continue
		}
		tree.settled++
		for _, neighbor := range g.adjacency[current.id] {
			candidate := current.distance + neighbor.Weight
			if candidate < tree.distance[neighbor.ID] {
				tree.distance[neighbor.ID] = candidate
				tree.prev[neighbor.ID] = current.id
				heap.Push(&pq, frontierItem{id: neighbor.ID, distance: candidate})
			}
		}
	}
	return tree, nil
}

// Source returns city the tree has been grown from
func (t *Tree) Source() string {
	return t.source
}

// Distance returns best distance from the source. False is returned for unknown or unreachable city
func (t *Tree) Distance(id string) (float64, bool) {
	d, ok := t.distance[id]
	if !ok || math.IsInf(d, 1) {
		return 0, false
	}
	return d, true
}

// PathTo reconstructs path from the source to given city by walking predecessor links backwards
func (t *Tree) PathTo(end string) (PathResult, error) {
	d, ok := t.distance[end]
	if !ok {
		return PathResult{}, errors.Wrapf(ErrInvalidNode, "'%s'", end)
	}
	if math.IsInf(d, 1) {
		return PathResult{}, errors.Wrapf(ErrNotFound, "from %s to %s", t.source, end)
	}
	nodes := []string{end}
	for current := end; current != t.source; {
		current = t.prev[current]
		nodes = append(nodes, current)
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	return PathResult{
		Nodes:    nodes,
		Distance: d,
		Settled:  t.settled,
	}, nil
}

// ShortestPath returns minimum-weight path between two cities.
//
// ErrInvalidNode is returned when either city is unknown, ErrNotFound when cities are not connected.
// The graph is never modified
func ShortestPath(g *Graph, start, end string) (PathResult, error) {
	if g == nil {
		return PathResult{}, ErrNilGraph
	}
	for _, id := range []string{start, end} {
		if !g.HasNode(id) {
			return PathResult{}, errors.Wrapf(ErrInvalidNode, "'%s'", id)
		}
	}
	tree, err := Dijkstra(g, start)
	if err != nil {
		return PathResult{}, err
	}
	return tree.PathTo(end)
}

// ShortestPath is a shorthand for package-level ShortestPath so *Graph could be used as Router
func (g *Graph) ShortestPath(start, end string) (PathResult, error) {
	return ShortestPath(g, start, end)
}
