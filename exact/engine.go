package exact

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/fcnkit/fcn/clocking"
	"github.com/fcnkit/fcn/coord"
	"github.com/fcnkit/fcn/fcnerr"
	"github.com/fcnkit/fcn/layout"
	"github.com/fcnkit/fcn/network"
	"github.com/fcnkit/fcn/obstruction"
	"github.com/fcnkit/fcn/pathfinding"
	"github.com/fcnkit/fcn/routing"
)

// Report summarizes one exact-engine run.
type Report struct {
	Dimension       coord.Dimension
	ExploredCount   int
	UnroutableEdges int
}

// Engine drives the §4.J search: over candidate dimensions in
// increasing-area order, attempt a full placement+routing; the first
// satisfiable dimension found wins, and any worker still exploring a
// strictly larger dimension is cancelled (§5's "first SAT supersedes
// strictly larger dimensions, smaller ones finish" rule). Concurrency is
// provided by golang.org/x/sync/errgroup, the same dependency the wider
// retrieved corpus reaches for worker-pool fan-out (see DESIGN.md); the
// teacher itself has no concurrent search of this shape to generalize
// from, so this is an enrichment from the broader pack rather than a
// teacher-grounded adaptation.
type Engine struct {
	Net    network.Network
	Scheme clocking.Scheme
	Config Config

	// Logger receives structured progress events for the dimension sweep
	// (start, per-dimension SAT/UNSAT, completion). Defaults to
	// slog.Default() when nil, following the logger-field-with-nil-default
	// convention of this module's retrieved pack's trace executor.
	Logger *slog.Logger
}

// NewEngine constructs an Engine with a nil Scheme, so the scheme is
// resolved from cfg at Run time. Setting the returned Engine's Scheme
// field (e.g. to an OpenScheme with an explicit zone table) overrides
// cfg's scheme selection.
func NewEngine(net network.Network, cfg Config) *Engine {
	return &Engine{Net: net, Config: cfg}
}

func (e *Engine) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}

// Run searches candidate dimensions from smallest to largest area,
// attempting a full placement and routing at each, and returns the first
// satisfiable layout found (or an error wrapping fcnerr.UnroutableObjective
// if every candidate up to Config.UpperBound fails).
func (e *Engine) Run(ctx context.Context) (*layout.Layout, Report, error) {
	hier, err := network.Levelize(e.Net)
	if err != nil {
		return nil, Report{}, err
	}

	scheme, err := e.resolveScheme()
	if err != nil {
		return nil, Report{}, err
	}

	budget := NewBudget(e.Config.Timeout)
	dims := e.candidateDimensions()
	e.logger().Info("exact: starting dimension search",
		slog.Int("candidates", len(dims)), slog.Int("threads", e.numThreads()))

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gCtx := errgroup.WithContext(runCtx)
	g.SetLimit(e.numThreads())

	tree := newSolverTree()
	var mu sync.Mutex
	var winner *layout.Layout
	var winnerDim coord.Dimension
	found := false
	explored := 0
	workerCancels := map[coord.Dimension]context.CancelFunc{}

	for _, dim := range dims {
		dim := dim
		mu.Lock()
		alreadyFound := found
		currentBest := winnerDim
		mu.Unlock()
		if alreadyFound && !lessDimension(dim, currentBest) {
			continue // a smaller-or-equal-area SAT already supersedes this candidate
		}
		if gCtx.Err() != nil {
			break
		}
		wCtx, wCancel := context.WithCancel(gCtx)
		mu.Lock()
		workerCancels[dim] = wCancel
		mu.Unlock()

		g.Go(func() error {
			defer wCancel()
			select {
			case <-wCtx.Done():
				return nil
			default:
			}
			if budget.Expired() {
				tree.setState(dim, StateTimeout)
				return nil
			}

			tree.nodeFor(dim)
			tree.setState(dim, StateConstrained)
			l, ok := e.attempt(wCtx, tree, e.Net, hier, scheme, dim, budget)

			mu.Lock()
			defer mu.Unlock()
			explored++
			if !ok {
				tree.setState(dim, StateUNSAT)
				e.logger().Debug("exact: dimension UNSAT", slog.Int("x", dim.X), slog.Int("y", dim.Y), slog.Int("z", dim.Z))
				return nil
			}
			tree.setState(dim, StateSAT)
			e.logger().Info("exact: dimension SAT", slog.Int("x", dim.X), slog.Int("y", dim.Y), slog.Int("z", dim.Z))
			if !found || lessDimension(dim, winnerDim) {
				found = true
				winner = l
				winnerDim = dim
				for d, stop := range workerCancels {
					if lessDimension(dim, d) {
						stop() // supersede every still-running strictly larger dimension
					}
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, Report{}, errors.Join(fcnerr.SolverError, err)
	}

	if !found {
		e.logger().Warn("exact: no satisfiable dimension found", slog.Int("explored", explored))
		return nil, Report{ExploredCount: explored}, errors.Join(fcnerr.UnroutableObjective,
			errors.New("exact: no dimension up to the configured upper bound admits a valid placement"))
	}
	e.logger().Info("exact: search complete",
		slog.Int("explored", explored), slog.Int("winner_x", winnerDim.X), slog.Int("winner_y", winnerDim.Y))
	return winner, Report{Dimension: winnerDim, ExploredCount: explored}, nil
}

// attempt tries a full placement (via SearchState) followed by routing
// every network edge as a pathfinding.Objective between the endpoints'
// placed tiles, committing each routed path into a fresh Layout. It
// returns (layout, true) only if every vertex placed and every edge
// routed without conflict. If dim's nearest ancestor in tree already holds
// a satisfiable placement, that placement seeds the search (§4.J.3
// incremental reuse); on success, dim's own placement is recorded so that
// a later, still-larger dimension can fork from it in turn.
func (e *Engine) attempt(ctx context.Context, tree *solverTree, net network.Network, hier network.Hierarchy, scheme clocking.Scheme, dim coord.Dimension, budget Budget) (*layout.Layout, bool) {
	if ctx.Err() != nil {
		return nil, false
	}
	grid := clocking.New(coord.NewGrid(dim, coord.Cartesian), scheme)
	search := NewSearchState(net, hier, grid)
	if parent := tree.parentPlacement(dim); parent != nil {
		search.seedFrom(parent)
	}
	if !search.Search(ctx, budget) {
		return nil, false
	}
	tree.setPlacement(dim, search)

	l := layout.New(grid)
	assignment := search.Assignment()
	for _, v := range net.Vertices() {
		c, ok := assignment[v]
		if !ok {
			return nil, false
		}
		l.PlaceVertex(c, string(v), string(net.Op(v)))
	}

	overlay := obstruction.New()
	for _, c := range assignment {
		overlay.ObstructCoordinate(c)
	}

	pg := pathfinding.NewGrid(grid).WithOverlay(overlay).WithCrossings(e.Config.Crossings)
	crossingsUsed := 0
	for _, edge := range net.Edges() {
		from, to := net.Source(edge), net.Target(edge)
		srcCoord, toCoord := assignment[from], assignment[to]
		if grid.IsDataFlowEdge(srcCoord, toCoord) {
			continue // direct neighbor, no intermediate wire tiles needed
		}
		objective := routing.Objective{Source: srcCoord, Target: toCoord}
		path, err := pathfinding.AStar(pg, objective, pathfinding.Manhattan, pathfinding.UnitCost)
		if err != nil || path.Empty() {
			return nil, false
		}
		if err := l.CommitPath(path); err != nil {
			return nil, false
		}
		for _, c := range path.Coordinates() {
			if c.Z == 1 {
				crossingsUsed++
			}
			overlay.ObstructCoordinate(c)
			overlay.MarkWire(coord.New(c.X, c.Y))
		}
	}
	if e.Config.CrossingsLimit > 0 && crossingsUsed > e.Config.CrossingsLimit {
		return nil, false
	}
	return l, true
}

func (e *Engine) resolveScheme() (clocking.Scheme, error) {
	switch {
	case e.Scheme != nil:
		return e.Scheme, nil
	case e.Config.TwoDDWave:
		return clocking.TwoDDWave4(), nil
	case e.Config.TopoliNano:
		return clocking.ToPoliNano(), nil
	case e.Config.SchemeName != "":
		return clocking.ByName(e.Config.SchemeName)
	default:
		return clocking.TwoDDWave4(), nil
	}
}

// candidateDimensions returns the dimensions to search: a single fixed
// square when Config.FixedSize is set (the caller already knows the
// target size and wants SAT/UNSAT for it alone, §6 "fixed-size mode"),
// otherwise every dimension up to the configured or inferred upper bound
// in increasing-area order.
func (e *Engine) candidateDimensions() []coord.Dimension {
	z := 0
	if e.Config.Crossings {
		z = 1
	}
	if e.Config.FixedSize > 0 {
		return []coord.Dimension{{X: e.Config.FixedSize, Y: e.Config.FixedSize, Z: z}}
	}
	return generateDimensions(e.upperBound(), e.Config.Crossings)
}

func (e *Engine) upperBound() int {
	if e.Config.UpperBound > 0 {
		return e.Config.UpperBound
	}
	return len(e.Net.Vertices())
}

func (e *Engine) numThreads() int {
	if e.Config.NumThreads > 0 {
		return e.Config.NumThreads
	}
	return 1
}
