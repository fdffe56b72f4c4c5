package cityroute

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	// EngineDijkstra answers queries with plain Dijkstra over *Graph
	EngineDijkstra = "dijkstra"
	// EngineContracted answers queries with contraction hierarchies
	EngineContracted = "ch"
)

// Planner answers route queries over immutable graph
type Planner struct {
	graph   *Graph
	router  Router
	engine  string
	logger  *zap.Logger
	metrics *Metrics
}

func (p *Planner) String() string {
	return fmt.Sprintf(`
Route planner parameters:
	cities: %d
	routes: %d
	engine: '%s'
	metrics enabled?: %t
	`,
		p.graph.Len(),
		len(p.graph.edges),
		p.engine,
		p.metrics != nil,
	)
}

// NewPlanner creates planner for given graph. Dijkstra engine is used unless WithEngine says otherwise
func NewPlanner(g *Graph, options ...func(*Planner)) (*Planner, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	planner := &Planner{
		graph:  g,
		engine: EngineDijkstra,
		logger: zap.NewNop(),
	}
	for _, option := range options {
		option(planner)
	}
	switch strings.ToLower(planner.engine) {
	case EngineDijkstra, "":
		planner.engine = EngineDijkstra
		planner.router = g
	case EngineContracted:
		st := time.Now()
		contracted, err := NewContractedGraph(g)
		if err != nil {
			return nil, errors.Wrap(err, "Can't prepare contraction hierarchies")
		}
		planner.engine = EngineContracted
		planner.router = contracted
		planner.logger.Debug("contraction hierarchies prepared", zap.Duration("took", time.Since(st)))
	default:
		return nil, errors.Wrapf(ErrUnknownEngine, "'%s'", planner.engine)
	}
	return planner, nil
}

// WithEngine picks query engine: EngineDijkstra or EngineContracted
func WithEngine(engine string) func(*Planner) {
	return func(planner *Planner) {
		planner.engine = engine
	}
}

// WithLogger sets logger for query diagnostics
func WithLogger(logger *zap.Logger) func(*Planner) {
	return func(planner *Planner) {
		if logger != nil {
			planner.logger = logger
		}
	}
}

// WithMetrics enables query metrics
func WithMetrics(metrics *Metrics) func(*Planner) {
	return func(planner *Planner) {
		planner.metrics = metrics
	}
}

// Graph returns graph the planner works on
func (p *Planner) Graph() *Graph {
	return p.graph
}

// Engine returns name of the engine in use
func (p *Planner) Engine() string {
	return p.engine
}

// Route finds shortest path between two cities. Failures are reported, never fatal:
// the planner stays usable for subsequent queries
func (p *Planner) Route(start, end string) (PathResult, error) {
	st := time.Now()
	result, err := p.router.ShortestPath(start, end)
	took := time.Since(st)

	outcome := resultFound
	switch {
	case err == nil:
		p.logger.Info("route found",
			zap.String("start", start),
			zap.String("end", end),
			zap.Float64("distance", result.Distance),
			zap.Int("hops", len(result.Nodes)-1),
			zap.Int("settled", result.Settled),
			zap.Duration("took", took),
		)
	case errors.Is(err, ErrInvalidNode):
		outcome = resultInvalidNode
		p.logger.Warn("unknown city", zap.String("start", start), zap.String("end", end), zap.Error(err))
	case errors.Is(err, ErrNotFound):
		outcome = resultNotFound
		p.logger.Warn("no path", zap.String("start", start), zap.String("end", end))
	default:
		outcome = resultError
		p.logger.Error("route query failed", zap.String("start", start), zap.String("end", end), zap.Error(err))
	}

	if p.metrics != nil {
		p.metrics.Queries.WithLabelValues(outcome).Inc()
		p.metrics.QueryDuration.Observe(took.Seconds())
		if err == nil && p.engine == EngineDijkstra {
			p.metrics.SettledNodes.Observe(float64(result.Settled))
		}
	}
	return result, err
}
