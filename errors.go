package cityroute

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidNode start or end of a query is not a known city
	ErrInvalidNode = errors.New("city should exist")
	// ErrNotFound both cities are known but no route connects them
	ErrNotFound = errors.New("no path")
	// ErrMalformedEdge route references a city which has not been added
	ErrMalformedEdge = errors.New("route references unknown city")
	// ErrNegativeWeight route distance is negative or not a number
	ErrNegativeWeight = errors.New("route distance must be non-negative")
	// ErrNilGraph query against nil graph
	ErrNilGraph = errors.New("graph is nil")
	// ErrInvalidDataset dataset failed validation
	ErrInvalidDataset = errors.New("invalid dataset")
	// ErrUnknownEngine engine name is not one of EngineDijkstra / EngineContracted
	ErrUnknownEngine = errors.New("unknown engine")
)
