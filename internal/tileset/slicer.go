package tileset

import (
	"errors"
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
)

// ErrTileSize indicates a non-positive tile size was passed to Slice.
var ErrTileSize = errors.New("tileset: tile size must be positive")

// SliceOptions contains tunable parameters for slicing.
type SliceOptions struct {
	// BlurSigma, when positive, applies a Gaussian blur to the source image
	// before cutting tiles. A small sigma (0.5-1.0) suppresses anti-aliasing
	// noise along tile borders, which makes edge matching more forgiving
	// without raising the color tolerance. Zero disables the blur.
	BlurSigma float64
}

// DefaultSliceOptions returns SliceOptions with the blur disabled.
func DefaultSliceOptions() SliceOptions {
	return SliceOptions{}
}

// Slice cuts img into a row-major grid of square tiles of side tileSize and
// returns them as a Tileset with densely assigned IDs (0 = top-left).
//
// Only full tiles are produced: a right or bottom remainder narrower than
// tileSize is discarded. An image smaller than tileSize in either dimension
// yields an empty Tileset, which is a valid input for the matcher.
//
// Returns ErrTileSize if tileSize is not positive.
func Slice(img image.Image, tileSize int, opts SliceOptions) (*Tileset, error) {
	if tileSize <= 0 {
		return nil, ErrTileSize
	}

	src := img
	if opts.BlurSigma > 0 {
		src = blur.Gaussian(img, opts.BlurSigma)
	}

	bounds := src.Bounds()
	cols := bounds.Dx() / tileSize
	rows := bounds.Dy() / tileSize
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}

	ts := &Tileset{
		TileSize: tileSize,
		Columns:  cols,
		Rows:     rows,
		Tiles:    make([]Tile, 0, cols*rows),
	}

	id := 0
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			rect := image.Rect(
				bounds.Min.X+col*tileSize,
				bounds.Min.Y+row*tileSize,
				bounds.Min.X+(col+1)*tileSize,
				bounds.Min.Y+(row+1)*tileSize,
			)
			// imaging.Crop returns a tightly packed NRGBA image, so its Pix
			// buffer is exactly the row-major RGBA layout Tile expects.
			cell := imaging.Crop(src, rect)
			ts.Tiles = append(ts.Tiles, Tile{
				ID:     id,
				Col:    col,
				Row:    row,
				Pixels: cell.Pix,
			})
			id++
		}
	}

	ts.ResetNeighbors()
	return ts, nil
}
