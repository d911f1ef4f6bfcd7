package cli

import (
	"github.com/spf13/cobra"

	"github.com/isschrack/tilemap2descriptionizzy/internal/detect"
	"github.com/isschrack/tilemap2descriptionizzy/internal/tileset"
)

// InfoResult is the JSON document emitted by the info command.
type InfoResult struct {
	Image      string                  `json:"image"`
	Width      int                     `json:"width"`
	Height     int                     `json:"height"`
	TileSize   int                     `json:"tile_size"`
	Score      float64                 `json:"score"`
	Columns    int                     `json:"columns"`
	Rows       int                     `json:"rows"`
	Candidates []detect.CandidateScore `json:"candidates"`
}

// newInfoCmd creates the info command: image dimensions plus the inferred
// tile size and grid, without building the adjacency graph.
func newInfoCmd() *cobra.Command {
	var minSize, maxSize int
	var outPath string

	cmd := &cobra.Command{
		Use:   "info IMAGE",
		Short: "Report tileset dimensions and the inferred tile size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, args[0], minSize, maxSize, outPath)
		},
	}

	cmd.Flags().IntVar(&minSize, "min-size", inferMinTileSize, "smallest candidate tile size")
	cmd.Flags().IntVar(&maxSize, "max-size", inferMaxTileSize, "largest candidate tile size")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", `output file ("" or "-" = stdout)`)

	return cmd
}

func runInfo(cmd *cobra.Command, imagePath string, minSize, maxSize int, outPath string) error {
	logger := loggerFromContext(cmd.Context())

	img, err := tileset.NewLoader().Open(imagePath)
	if err != nil {
		return err
	}
	bounds := img.Bounds()

	inferred, err := detect.InferTileSize(img, minSize, maxSize)
	if err != nil {
		return err
	}
	logger.Debugf("Scored %d tile size candidates", len(inferred.Candidates))

	result := &InfoResult{
		Image:      imagePath,
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
		TileSize:   inferred.TileSize,
		Score:      inferred.Score,
		Columns:    bounds.Dx() / inferred.TileSize,
		Rows:       bounds.Dy() / inferred.TileSize,
		Candidates: inferred.Candidates,
	}
	return writeJSON(cmd.OutOrStdout(), outPath, result)
}
