package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/isschrack/tilemap2descriptionizzy/internal/tileset"
)

// TileReport is the JSON shape of one tile in the build output: its identity,
// grid position, and the four directional neighbor ID lists.
type TileReport struct {
	ID    int   `json:"id"`
	Col   int   `json:"col"`
	Row   int   `json:"row"`
	Up    []int `json:"up"`
	Down  []int `json:"down"`
	Left  []int `json:"left"`
	Right []int `json:"right"`
}

// BuildResult is the JSON document emitted by the build command.
type BuildResult struct {
	Image      string       `json:"image"`
	TileSize   int          `json:"tile_size"`
	Columns    int          `json:"columns"`
	Rows       int          `json:"rows"`
	Tolerance  float64      `json:"tolerance"`
	MatchRatio float64      `json:"match_ratio"`
	Metric     string       `json:"metric"`
	TileCount  int          `json:"tile_count"`
	Relations  int          `json:"relations"`
	Tiles      []TileReport `json:"tiles"`
}

// newBuildResult flattens a matched tileset into the output document.
// Relations counts directed neighbor entries across all tiles and directions.
func newBuildResult(imagePath string, ts *tileset.Tileset, tolerance, matchRatio float64, metric string) *BuildResult {
	result := &BuildResult{
		Image:      imagePath,
		TileSize:   ts.TileSize,
		Columns:    ts.Columns,
		Rows:       ts.Rows,
		Tolerance:  tolerance,
		MatchRatio: matchRatio,
		Metric:     metric,
		TileCount:  ts.Len(),
		Tiles:      make([]TileReport, 0, ts.Len()),
	}
	for i := range ts.Tiles {
		t := &ts.Tiles[i]
		result.Tiles = append(result.Tiles, TileReport{
			ID:    t.ID,
			Col:   t.Col,
			Row:   t.Row,
			Up:    t.Neighbors[tileset.DirUp],
			Down:  t.Neighbors[tileset.DirDown],
			Left:  t.Neighbors[tileset.DirLeft],
			Right: t.Neighbors[tileset.DirRight],
		})
		for d := 0; d < tileset.NumDirections; d++ {
			result.Relations += len(t.Neighbors[d])
		}
	}
	return result
}

// writeJSON writes v as indented JSON to outPath, or to w when outPath is
// empty or "-".
func writeJSON(w io.Writer, outPath string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	data = append(data, '\n')

	if outPath == "" || outPath == "-" {
		_, err = w.Write(data)
		return err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return nil
}
