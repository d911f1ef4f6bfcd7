// Package detect infers structural properties of a tileset image, currently
// the tile size. Tilesets rarely ship with their grid size attached, so the
// CLI uses this to fill in the tile size when the caller does not supply one.
package detect

import (
	"errors"
	"image"
	"math"
	"sort"
)

// Sentinel errors for tile-size inference.
var (
	// ErrEmptyImage indicates a zero-area input image.
	ErrEmptyImage = errors.New("detect: image has no pixels")
	// ErrNoCandidate indicates no size in the candidate range divides both
	// image dimensions.
	ErrNoCandidate = errors.New("detect: no candidate tile size divides the image dimensions")
)

// CandidateScore is one evaluated tile size with its boundary score.
type CandidateScore struct {
	// TileSize is the candidate side length in pixels.
	TileSize int `json:"tile_size"`
	// Score is the ratio of mean color discontinuity along the candidate's
	// grid lines to the mean discontinuity across the whole image. Values
	// well above 1 indicate the grid lines coincide with tile boundaries.
	Score float64 `json:"score"`
}

// TileSizeResult contains the inferred tile size and the scores of every
// candidate that was considered, sorted best first.
type TileSizeResult struct {
	TileSize   int              `json:"tile_size"`
	Score      float64          `json:"score"`
	Candidates []CandidateScore `json:"candidates"`
}

// InferTileSize guesses the tile size of a tileset image.
//
// Candidates are the sizes in [minSize, maxSize] that divide both image
// dimensions. Each candidate is scored by how much stronger the color
// discontinuity is along its grid lines than across the image on average:
// adjacent pixels inside a tile tend to be similar, while pixels straddling a
// tile boundary tend not to be. The highest-scoring candidate wins; on near
// ties the smaller size is preferred, since every multiple of the true tile
// size shares its boundary lines.
//
// Returns ErrEmptyImage for a zero-area image and ErrNoCandidate when the
// range contains no divisor of both dimensions.
func InferTileSize(img image.Image, minSize, maxSize int) (*TileSizeResult, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil, ErrEmptyImage
	}
	if minSize < 2 {
		minSize = 2
	}
	limit := w
	if h < limit {
		limit = h
	}
	if maxSize <= 0 || maxSize > limit {
		maxSize = limit
	}

	colDiff, rowDiff := discontinuity(img)

	var total float64
	for _, d := range colDiff {
		total += d
	}
	for _, d := range rowDiff {
		total += d
	}
	mean := total / float64(len(colDiff)+len(rowDiff))
	if mean == 0 {
		mean = math.SmallestNonzeroFloat64
	}

	var candidates []CandidateScore
	for s := minSize; s <= maxSize; s++ {
		if w%s != 0 || h%s != 0 {
			continue
		}
		var sum float64
		var count int
		for x := s; x < w; x += s {
			sum += colDiff[x-1]
			count++
		}
		for y := s; y < h; y += s {
			sum += rowDiff[y-1]
			count++
		}
		score := 1.0
		if count > 0 {
			score = (sum / float64(count)) / mean
		}
		candidates = append(candidates, CandidateScore{TileSize: s, Score: score})
	}
	if len(candidates) == 0 {
		return nil, ErrNoCandidate
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].TileSize < candidates[j].TileSize
	})

	// Multiples of the true tile size inherit its boundary lines and score
	// within a few percent of it, while its divisors sample mostly interior
	// seams and score far lower. Among candidates near the top score, prefer
	// the smallest size.
	best := candidates[0]
	top := best.Score
	for _, c := range candidates[1:] {
		if c.Score >= 0.8*top && c.TileSize < best.TileSize {
			best = c
		}
	}

	return &TileSizeResult{
		TileSize:   best.TileSize,
		Score:      best.Score,
		Candidates: candidates,
	}, nil
}

// discontinuity computes, per column seam and per row seam, the mean color
// distance between the adjacent pixels on either side. colDiff[x] holds the
// seam between columns x and x+1; rowDiff[y] the seam between rows y and y+1.
func discontinuity(img image.Image) (colDiff, rowDiff []float64) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	colDiff = make([]float64, w-1)
	rowDiff = make([]float64, h-1)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			if x+1 < w {
				r2, g2, b2, _ := img.At(bounds.Min.X+x+1, bounds.Min.Y+y).RGBA()
				colDiff[x] += channelDistance(r, g, b, r2, g2, b2)
			}
			if y+1 < h {
				r2, g2, b2, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y+1).RGBA()
				rowDiff[y] += channelDistance(r, g, b, r2, g2, b2)
			}
		}
	}
	for x := range colDiff {
		colDiff[x] /= float64(h)
	}
	for y := range rowDiff {
		rowDiff[y] /= float64(w)
	}
	return colDiff, rowDiff
}

// channelDistance is the Euclidean RGB distance between two pixels given as
// 16-bit color.RGBA channel values, scaled to the 0-255 range.
func channelDistance(r1, g1, b1, r2, g2, b2 uint32) float64 {
	dr := float64(r1>>8) - float64(r2>>8)
	dg := float64(g1>>8) - float64(g2>>8)
	db := float64(b1>>8) - float64(b2>>8)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}
