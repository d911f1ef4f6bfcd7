package tileset

import "testing"

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string
	}{
		{DirUp, "up"},
		{DirDown, "down"},
		{DirLeft, "left"},
		{DirRight, "right"},
		{Direction(99), "invalid"},
		{Direction(-1), "invalid"},
	}

	for _, tt := range tests {
		if got := tt.dir.String(); got != tt.want {
			t.Errorf("Direction(%d).String(): got %q, want %q", tt.dir, got, tt.want)
		}
	}
}

func TestTilesetTile(t *testing.T) {
	ts := &Tileset{
		TileSize: 4,
		Tiles:    []Tile{{ID: 0}, {ID: 1}, {ID: 2}},
	}

	if got := ts.Tile(1); got == nil || got.ID != 1 {
		t.Errorf("Tile(1): got %v, want tile with ID 1", got)
	}
	if got := ts.Tile(-1); got != nil {
		t.Errorf("Tile(-1): got %v, want nil", got)
	}
	if got := ts.Tile(3); got != nil {
		t.Errorf("Tile(3): got %v, want nil", got)
	}

	var none *Tileset
	if got := none.Tile(0); got != nil {
		t.Errorf("nil tileset Tile(0): got %v, want nil", got)
	}
	if got := none.Len(); got != 0 {
		t.Errorf("nil tileset Len(): got %d, want 0", got)
	}
}

func TestResetNeighbors(t *testing.T) {
	ts := &Tileset{
		TileSize: 4,
		Tiles:    []Tile{{ID: 0}, {ID: 1}},
	}
	ts.Tiles[0].Neighbors[DirRight] = []int{1, 1, 1}

	ts.ResetNeighbors()

	for i := range ts.Tiles {
		for d := 0; d < NumDirections; d++ {
			list := ts.Tiles[i].Neighbors[d]
			if list == nil {
				t.Errorf("tile %d %s: list is nil, want empty", i, Direction(d))
			}
			if len(list) != 0 {
				t.Errorf("tile %d %s: list has %d entries, want 0", i, Direction(d), len(list))
			}
		}
	}
}
