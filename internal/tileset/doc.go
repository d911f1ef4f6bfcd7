// Package tileset holds the tile data model and the tile supplier: slicing a
// source tileset image into fixed-size square tiles with stable identifiers.
//
// A Tileset is an arena that owns every tile of one run. Tiles never reference
// each other directly; adjacency is recorded as lists of tile IDs, which
// double as indices into the arena. This keeps the structure a flat multimap
// with O(1) neighbor dereference and no ownership cycles.
//
// # Coordinate System
//
// Tiles are cut row-major from the source image: tile 0 is the top-left cell,
// IDs increase left to right, then top to bottom. Within a tile, pixels are
// stored row-major as RGBA quads, one byte per channel, matching the layout
// of image.NRGBA.Pix.
//
// # Lifecycle
//
// Tiles are created once by Slice and never mutated afterwards except for
// their neighbor lists, which are populated by the adjacency package. A tile
// whose pixel buffer is missing or malformed is kept in the arena; it simply
// never matches anything.
package tileset
