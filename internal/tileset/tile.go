package tileset

// Direction identifies one of the four cardinal neighbor directions.
type Direction int

const (
	// DirUp selects neighbors that can sit directly above a tile.
	DirUp Direction = iota
	// DirDown selects neighbors that can sit directly below a tile.
	DirDown
	// DirLeft selects neighbors that can sit directly to the left of a tile.
	DirLeft
	// DirRight selects neighbors that can sit directly to the right of a tile.
	DirRight

	// NumDirections is the number of cardinal directions.
	NumDirections = 4
)

// String returns the lowercase name of the direction ("up", "down", "left",
// "right"), or "invalid" for out-of-range values.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "invalid"
	}
}

// Tile is one fixed-size square cell cut from the tileset image.
//
// Pixels holds row-major RGBA quads of side length Tileset.TileSize. A nil or
// short buffer is legal: such a tile participates in matching but never
// matches anything. Neighbors holds, per direction, the IDs of tiles whose
// touching edge is visually compatible; the lists are owned by the matcher
// and are empty (not nil) before matching runs.
type Tile struct {
	ID        int
	Col, Row  int
	Pixels    []uint8
	Neighbors [NumDirections][]int
}

// Tileset owns all tiles of a single run. TileSize is shared by every tile;
// comparing tiles across tilesets of differing sizes is not supported.
type Tileset struct {
	TileSize int
	Columns  int
	Rows     int
	Tiles    []Tile
}

// Len returns the number of tiles in the arena.
func (ts *Tileset) Len() int {
	if ts == nil {
		return 0
	}
	return len(ts.Tiles)
}

// Tile returns the tile with the given ID, or nil if the ID is out of range.
// IDs are assigned densely at slicing time, so ID and arena index coincide.
func (ts *Tileset) Tile(id int) *Tile {
	if ts == nil || id < 0 || id >= len(ts.Tiles) {
		return nil
	}
	return &ts.Tiles[id]
}

// ResetNeighbors replaces every neighbor list with an empty, non-nil slice.
// The matcher calls this before populating the graph so that a rebuild never
// observes stale entries and consumers can range over lists without nil
// checks.
func (ts *Tileset) ResetNeighbors() {
	for i := range ts.Tiles {
		for d := 0; d < NumDirections; d++ {
			ts.Tiles[i].Neighbors[d] = []int{}
		}
	}
}
