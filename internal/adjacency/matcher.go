package adjacency

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"github.com/isschrack/tilemap2descriptionizzy/internal/tileset"
)

// Sentinel errors for configuration violations detected before matching runs.
var (
	// ErrTileSize indicates a non-positive tile size.
	ErrTileSize = errors.New("adjacency: tile size must be positive")
	// ErrTolerance indicates a negative color tolerance.
	ErrTolerance = errors.New("adjacency: tolerance must be non-negative")
	// ErrMatchRatio indicates a match ratio outside (0, 1].
	ErrMatchRatio = errors.New("adjacency: match ratio must be in (0, 1]")
	// ErrMetric indicates an unknown edge metric name.
	ErrMetric = errors.New("adjacency: unknown edge metric")
	// ErrDuplicateID indicates two tiles share an identifier, which would make
	// neighbor lists ambiguous.
	ErrDuplicateID = errors.New("adjacency: duplicate tile id")
)

// Config contains the tunable parameters of the matcher. The defaults were
// tuned empirically for hand-drawn tilesets with light anti-aliasing; callers
// with pixel-perfect art can drop Tolerance to 0 and raise MatchRatio to 1.
type Config struct {
	// TileSize is the shared side length of every tile. Required, positive.
	TileSize int

	// Tolerance is the maximum per-pixel color distance still counted as
	// matching. Non-negative. Defaults to 2.
	Tolerance float64

	// MatchRatio is the fraction of edge positions that must be within
	// Tolerance for two edges to be compatible, in (0, 1]. Defaults to 0.98.
	MatchRatio float64

	// Metric selects the per-pixel distance: MetricRGBA (default) or
	// MetricLab.
	Metric Metric

	// Workers caps the number of goroutines used for extraction and
	// matching. Zero or negative means GOMAXPROCS.
	Workers int
}

// DefaultConfig returns the default matcher configuration for the given tile
// size: tolerance 2, match ratio 0.98, RGBA metric.
func DefaultConfig(tileSize int) Config {
	return Config{
		TileSize:   tileSize,
		Tolerance:  2,
		MatchRatio: 0.98,
		Metric:     MetricRGBA,
	}
}

// validate reports the first configuration violation, if any.
func (c Config) validate() error {
	if c.TileSize <= 0 {
		return ErrTileSize
	}
	if c.Tolerance < 0 {
		return ErrTolerance
	}
	if c.MatchRatio <= 0 || c.MatchRatio > 1 {
		return ErrMatchRatio
	}
	switch c.Metric {
	case MetricRGBA, MetricLab, "":
	default:
		return ErrMetric
	}
	return nil
}

// workers resolves the effective worker count for n work items.
func (c Config) workers(n int) int {
	w := c.Workers
	if w <= 0 {
		w = runtime.GOMAXPROCS(0)
	}
	if w > n {
		w = n
	}
	if w < 1 {
		w = 1
	}
	return w
}

// Build populates the neighbor lists of every tile in ts from scratch.
//
// The graph is rebuilt on every invocation: existing lists are discarded
// first, so Build twice over the same tileset yields identical results. An
// empty (or nil) tileset is a valid no-op.
//
// Edge extraction runs in parallel per tile; matching partitions the outer
// tile loop across workers, so each tile's four lists are written by exactly
// one goroutine and no locking is needed. Cancellation is checked between
// outer-loop iterations: when ctx is cancelled, Build stops early and returns
// the context error, leaving the neighbor lists partially populated.
//
// Build returns a configuration error (ErrTileSize, ErrTolerance,
// ErrMatchRatio, ErrMetric, ErrDuplicateID) before any matching happens;
// there is no failure path inside the matching itself.
func Build(ctx context.Context, ts *tileset.Tileset, cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	if ts == nil || ts.Len() == 0 {
		return nil
	}

	seen := make(map[int]struct{}, ts.Len())
	for i := range ts.Tiles {
		if _, dup := seen[ts.Tiles[i].ID]; dup {
			return ErrDuplicateID
		}
		seen[ts.Tiles[i].ID] = struct{}{}
	}

	ts.ResetNeighbors()

	edges := extractAll(ts, cfg)
	return matchAll(ctx, ts, edges, cfg)
}

// extractAll derives edge colors for every tile concurrently. Each goroutine
// writes only its own slots of the result slice.
func extractAll(ts *tileset.Tileset, cfg Config) []EdgeColors {
	n := ts.Len()
	edges := make([]EdgeColors, n)

	var wg sync.WaitGroup
	for _, c := range chunks(n, cfg.workers(n)) {
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				edges[i] = ExtractEdges(ts.Tiles[i].Pixels, cfg.TileSize)
			}
		}(c[0], c[1])
	}
	wg.Wait()
	return edges
}

// matchAll runs the O(T²) pairwise comparison, partitioned over the outer
// loop so that tile A's neighbor lists have a single writer.
func matchAll(ctx context.Context, ts *tileset.Tileset, edges []EdgeColors, cfg Config) error {
	n := ts.Len()
	dist := distanceFor(cfg.Metric)

	var wg sync.WaitGroup
	for _, c := range chunks(n, cfg.workers(n)) {
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for a := lo; a < hi; a++ {
				if ctx.Err() != nil {
					return
				}
				matchTile(ts, edges, a, dist, cfg)
			}
		}(c[0], c[1])
	}
	wg.Wait()
	return ctx.Err()
}

// matchTile compares tile a against every other tile in input order and
// appends compatible tiles to a's directional lists.
func matchTile(ts *tileset.Tileset, edges []EdgeColors, a int, dist distanceFunc, cfg Config) {
	ta := &ts.Tiles[a]
	ea := edges[a]
	for b := 0; b < ts.Len(); b++ {
		tb := &ts.Tiles[b]
		if ta.ID == tb.ID {
			continue
		}
		eb := edges[b]

		// B above A: B's bottom border meets A's top border.
		if edgesMatch(ea.Top, eb.Bottom, dist, cfg.Tolerance, cfg.MatchRatio) {
			ta.Neighbors[tileset.DirUp] = append(ta.Neighbors[tileset.DirUp], tb.ID)
		}
		if edgesMatch(ea.Bottom, eb.Top, dist, cfg.Tolerance, cfg.MatchRatio) {
			ta.Neighbors[tileset.DirDown] = append(ta.Neighbors[tileset.DirDown], tb.ID)
		}
		if edgesMatch(ea.Left, eb.Right, dist, cfg.Tolerance, cfg.MatchRatio) {
			ta.Neighbors[tileset.DirLeft] = append(ta.Neighbors[tileset.DirLeft], tb.ID)
		}
		if edgesMatch(ea.Right, eb.Left, dist, cfg.Tolerance, cfg.MatchRatio) {
			ta.Neighbors[tileset.DirRight] = append(ta.Neighbors[tileset.DirRight], tb.ID)
		}
	}
}

// edgesMatch reports whether two border sequences are visually compatible:
// at least ratio of their positions must be within tolerance of each other.
// Sequences of differing or zero length never match.
func edgesMatch(e1, e2 []RGBA, dist distanceFunc, tolerance, ratio float64) bool {
	if len(e1) == 0 || len(e1) != len(e2) {
		return false
	}
	matched := 0
	for i := range e1 {
		if dist(e1[i], e2[i]) <= tolerance {
			matched++
		}
	}
	return float64(matched)/float64(len(e1)) >= ratio
}

// chunks splits n items into at most workers contiguous [lo, hi) ranges.
func chunks(n, workers int) [][2]int {
	if n <= 0 {
		return nil
	}
	size := (n + workers - 1) / workers
	out := make([][2]int, 0, workers)
	for lo := 0; lo < n; lo += size {
		hi := lo + size
		if hi > n {
			hi = n
		}
		out = append(out, [2]int{lo, hi})
	}
	return out
}
