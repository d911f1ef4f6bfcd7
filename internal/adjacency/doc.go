// Package adjacency builds the directional tile-compatibility graph for a
// tileset: for every tile and every cardinal direction, the list of tiles
// whose touching edge is visually compatible.
//
// The computation has two stages. Edge extraction derives, per tile, the four
// ordered border-pixel sequences (top, bottom, left, right). Matching then
// compares edges pairwise across all tiles: tile B is a right neighbor of
// tile A when A's right edge matches B's left edge, and so on for the other
// directions. Each direction is evaluated independently, so a pair may be
// related in zero, one, or several directions at once.
//
// Two edges match when at least a configurable fraction of their positions
// (default 98%) are within a configurable color distance of each other
// (default 2). This is a similarity test, not equality: it tolerates minor
// anti-aliasing noise while rejecting dissimilar edges.
//
// # Failure Semantics
//
// There is no fatal error path inside the matcher. A tile with a missing or
// malformed pixel buffer degrades to four empty edges, fails every comparison
// it participates in, and ends the run with four empty neighbor lists. Empty
// lists are a valid terminal state, not an error. The only user-visible
// failure is a configuration error raised by Build before matching begins.
//
// # Determinism
//
// Build is deterministic: neighbor lists preserve the input tile order, and
// repeated runs over the same tileset produce identical results, including
// when the work is spread across multiple goroutines.
package adjacency
