package cityroute

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// WriteRoster prints greeting, list of cities and list of routes
func WriteRoster(w io.Writer, g *Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	if _, err := fmt.Fprintln(w, "PUTI Logistic Application!"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "Cities we operate in:"); err != nil {
		return err
	}
	for _, node := range g.Nodes() {
		if _, err := fmt.Fprintln(w, node.ID); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "Our Routes:"); err != nil {
		return err
	}
	for _, edge := range g.Edges() {
		if _, err := fmt.Fprintf(w, "%s --> %s %skm\n", edge.From, edge.To, formatDistance(edge.Weight)); err != nil {
			return err
		}
	}
	return nil
}

// FormatPath returns summary line for found path
func FormatPath(p PathResult) string {
	return fmt.Sprintf("Shortest path: %s -> %s (length %s)", p.Start(), p.End(), formatDistance(p.Distance))
}

// DescribeError returns user-facing message for query failure
func DescribeError(start, end string, err error) string {
	switch {
	case errors.Is(err, ErrInvalidNode):
		return "City should exist. You can add the city."
	case errors.Is(err, ErrNotFound):
		return fmt.Sprintf("No path from %s to %s.", start, end)
	default:
		return err.Error()
	}
}

// formatDistance prints integral distances without fraction part
func formatDistance(d float64) string {
	return strconv.FormatFloat(d, 'f', -1, 64)
}
