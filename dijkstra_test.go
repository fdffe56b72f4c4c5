package cityroute

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	ryan "github.com/RyanCarrier/dijkstra"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleGraph(t *testing.T) *Graph {
	t.Helper()
	g, err := SampleDataset().Graph()
	require.NoError(t, err)
	return g
}

func TestShortestPathBishkekKant(t *testing.T) {
	b := NewGraphBuilder()
	b.AddNode("Bishkek", 42.87, 74.59)
	b.AddNode("Tokmok", 42.84, 75.29)
	b.AddNode("Kant", 42.89, 74.85)
	require.NoError(t, b.AddEdge("Bishkek", "Tokmok", 70))
	require.NoError(t, b.AddEdge("Tokmok", "Kant", 20))

	result, err := ShortestPath(b.Build(), "Bishkek", "Kant")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bishkek", "Tokmok", "Kant"}, result.Nodes)
	assert.Equal(t, 90.0, result.Distance)
}

func TestShortestPathSample(t *testing.T) {
	g := sampleGraph(t)
	cases := []struct {
		start, end string
		nodes      []string
		distance   float64
	}{
		{"Bishkek", "Osh", []string{"Bishkek", "Tokmok", "Kant", "Osh"}, 390},
		{"Bishkek", "Kant", []string{"Bishkek", "Tokmok", "Kant"}, 90},
		{"Bishkek", "Karakol", []string{"Bishkek", "Tokmok", "Cholpon-Ata", "Karakol"}, 420},
		{"Osh", "Bishkek", []string{"Osh", "Kant", "Tokmok", "Bishkek"}, 390},
		{"Batken", "Jalal-Abad", []string{"Batken", "Osh", "Jalal-Abad"}, 350},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s-%s", tc.start, tc.end), func(t *testing.T) {
			result, err := ShortestPath(g, tc.start, tc.end)
			require.NoError(t, err)
			assert.Equal(t, tc.nodes, result.Nodes)
			assert.Equal(t, tc.distance, result.Distance)
			assert.LessOrEqual(t, result.Distance, bruteForce(g, tc.start, tc.end))
		})
	}
}

func TestShortestPathSameCity(t *testing.T) {
	g := sampleGraph(t)
	for _, node := range g.Nodes() {
		result, err := g.ShortestPath(node.ID, node.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{node.ID}, result.Nodes)
		assert.Equal(t, 0.0, result.Distance)
	}
}

func TestShortestPathInvalidNode(t *testing.T) {
	g := sampleGraph(t)
	for _, pair := range [][2]string{{"Atlantis", "Bishkek"}, {"Bishkek", "Atlantis"}, {"", ""}} {
		result, err := ShortestPath(g, pair[0], pair[1])
		assert.True(t, errors.Is(err, ErrInvalidNode), "%v: %v", pair, err)
		assert.Empty(t, result.Nodes)
	}
	_, err := ShortestPath(nil, "A", "B")
	assert.Equal(t, ErrNilGraph, err)
}

func TestShortestPathDisconnected(t *testing.T) {
	b := NewGraphBuilder()
	for _, id := range []string{"A", "B", "C", "D"} {
		b.AddNode(id, 0, 0)
	}
	require.NoError(t, b.AddEdge("A", "B", 1))
	require.NoError(t, b.AddEdge("C", "D", 1))

	result, err := ShortestPath(b.Build(), "A", "D")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Empty(t, result.Nodes)
	assert.Contains(t, err.Error(), "from A to D")
}

func TestShortestPathZeroWeightsAndParallelRoutes(t *testing.T) {
	b := NewGraphBuilder()
	for _, id := range []string{"A", "B", "C"} {
		b.AddNode(id, 0, 0)
	}
	require.NoError(t, b.AddEdge("A", "B", 10))
	require.NoError(t, b.AddEdge("A", "B", 3))
	require.NoError(t, b.AddEdge("B", "C", 0))
	g := b.Build()

	result, err := ShortestPath(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, result.Nodes)
	assert.Equal(t, 3.0, result.Distance)
	assert.Equal(t, []Edge{{From: "A", To: "B", Weight: 3}, {From: "B", To: "C", Weight: 0}}, result.Legs(g))
}

func TestDijkstraTree(t *testing.T) {
	g := sampleGraph(t)
	tree, err := Dijkstra(g, "Bishkek")
	require.NoError(t, err)
	assert.Equal(t, "Bishkek", tree.Source())

	d, ok := tree.Distance("Naryn")
	require.True(t, ok)
	assert.Equal(t, bruteForce(g, "Bishkek", "Naryn"), d)

	_, ok = tree.Distance("Atlantis")
	assert.False(t, ok)
	_, err = tree.PathTo("Atlantis")
	assert.True(t, errors.Is(err, ErrInvalidNode))

	_, err = Dijkstra(g, "Atlantis")
	assert.True(t, errors.Is(err, ErrInvalidNode))
}

func TestShortestPathRandomGraphs(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 200; iter++ {
		g := randomGraph(rng, 2+rng.Intn(6), rng.Float64(), 0)
		nodes := g.Nodes()
		for _, s := range nodes {
			for _, e := range nodes {
				result, err := ShortestPath(g, s.ID, e.ID)
				expected := bruteForce(g, s.ID, e.ID)
				if math.IsInf(expected, 1) {
					assert.True(t, errors.Is(err, ErrNotFound), "iter %d %s-%s: %v", iter, s.ID, e.ID, err)
					continue
				}
				require.NoError(t, err, "iter %d %s-%s", iter, s.ID, e.ID)
				assert.Equal(t, expected, result.Distance, "iter %d %s-%s", iter, s.ID, e.ID)
				assert.Equal(t, s.ID, result.Start())
				assert.Equal(t, e.ID, result.End())
				assertValidPath(t, g, result)
			}
		}
	}
}

func TestShortestPathAgainstRyanCarrier(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 100; iter++ {
		g := randomGraph(rng, 3+rng.Intn(10), rng.Float64(), 1)
		nodes := g.Nodes()
		index := make(map[string]int, len(nodes))
		oracle := ryan.NewGraph()
		for i, node := range nodes {
			index[node.ID] = i
			oracle.AddVertex(i)
		}
		for _, edge := range g.Edges() {
			oracle.AddArc(index[edge.From], index[edge.To], int64(edge.Weight))
			oracle.AddArc(index[edge.To], index[edge.From], int64(edge.Weight))
		}
		for _, s := range nodes {
			for _, e := range nodes {
				if s.ID == e.ID {
					continue
				}
				result, err := ShortestPath(g, s.ID, e.ID)
				best, oracleErr := oracle.Shortest(index[s.ID], index[e.ID])
				if oracleErr != nil {
					assert.True(t, errors.Is(err, ErrNotFound), "iter %d %s-%s: %v", iter, s.ID, e.ID, err)
					continue
				}
				require.NoError(t, err)
				assert.Equal(t, float64(best.Distance), result.Distance, "iter %d %s-%s", iter, s.ID, e.ID)
			}
		}
	}
}

// randomGraph returns graph with n cities and integral weights in [minWeight, minWeight+20).
// Density is a probability of every pair to be connected
func randomGraph(rng *rand.Rand, n int, density float64, minWeight int) *Graph {
	b := NewGraphBuilder()
	for i := 0; i < n; i++ {
		b.AddNode(fmt.Sprintf("N%d", i), rng.Float64(), rng.Float64())
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < density {
				_ = b.AddEdge(fmt.Sprintf("N%d", i), fmt.Sprintf("N%d", j), float64(minWeight+rng.Intn(20)))
			}
		}
	}
	return b.Build()
}

// bruteForce returns minimum total weight over all simple paths, +Inf when none exists
func bruteForce(g *Graph, start, end string) float64 {
	best := math.Inf(1)
	visited := map[string]bool{start: true}
	var walk func(current string, acc float64)
	walk = func(current string, acc float64) {
		if current == end {
			best = math.Min(best, acc)
			return
		}
		for _, neighbor := range g.Neighbors(current) {
			if visited[neighbor.ID] {
				continue
			}
			visited[neighbor.ID] = true
			walk(neighbor.ID, acc+neighbor.Weight)
			visited[neighbor.ID] = false
		}
	}
	walk(start, 0)
	return best
}

func assertValidPath(t *testing.T, g *Graph, p PathResult) {
	t.Helper()
	total := 0.0
	for _, leg := range p.Legs(g) {
		require.GreaterOrEqual(t, leg.Weight, 0.0, "no route %s --> %s", leg.From, leg.To)
		total += leg.Weight
	}
	assert.Equal(t, p.Distance, total)
}
