package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/isschrack/tilemap2descriptionizzy/internal/adjacency"
	"github.com/isschrack/tilemap2descriptionizzy/internal/detect"
	"github.com/isschrack/tilemap2descriptionizzy/internal/tileset"
)

// Candidate range used when inferring the tile size from the image.
const (
	inferMinTileSize = 4
	inferMaxTileSize = 128
)

// newBuildCmd creates the build command: slice a tileset image and emit its
// adjacency graph as JSON.
func newBuildCmd() *cobra.Command {
	cfg := defaultBuildConfig()
	var configPath, outPath string

	cmd := &cobra.Command{
		Use:   "build IMAGE",
		Short: "Build the edge-adjacency graph of a tileset image",
		Long: `Build slices the tileset image into square tiles and compares the border
pixels of every tile pair to decide which tiles may sit next to each other in
each cardinal direction. The graph is written as JSON to stdout or --out.

When --tile-size is omitted the tile size is inferred from the image's grid of
color discontinuities.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				fileCfg, err := loadConfigFile(configPath)
				if err != nil {
					return err
				}
				cfg.merge(fileCfg, cmd.Flags().Changed)
			}
			return runBuild(cmd, args[0], cfg, outPath)
		},
	}

	cmd.Flags().IntVarP(&cfg.TileSize, "tile-size", "s", 0, "tile side length in pixels (0 = infer from image)")
	cmd.Flags().Float64VarP(&cfg.Tolerance, "tolerance", "t", cfg.Tolerance, "max per-pixel color distance counted as matching")
	cmd.Flags().Float64VarP(&cfg.MatchRatio, "match-ratio", "r", cfg.MatchRatio, "fraction of edge pixels that must match, in (0,1]")
	cmd.Flags().StringVarP(&cfg.Metric, "metric", "m", cfg.Metric, `edge color metric: "rgba" or "lab"`)
	cmd.Flags().Float64Var(&cfg.BlurSigma, "blur-sigma", 0, "Gaussian pre-blur sigma (0 = off)")
	cmd.Flags().IntVar(&cfg.Workers, "workers", 0, "max worker goroutines (0 = one per CPU)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", `output file ("" or "-" = stdout)`)
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file with build parameters")

	return cmd
}

func runBuild(cmd *cobra.Command, imagePath string, cfg buildConfig, outPath string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	img, err := tileset.NewLoader().Open(imagePath)
	if err != nil {
		return err
	}
	bounds := img.Bounds()
	logger.Debugf("Loaded %s (%dx%d)", imagePath, bounds.Dx(), bounds.Dy())

	if cfg.TileSize == 0 {
		inferred, err := detect.InferTileSize(img, inferMinTileSize, inferMaxTileSize)
		if err != nil {
			return fmt.Errorf("tile size not given and could not be inferred: %w", err)
		}
		cfg.TileSize = inferred.TileSize
		logger.Infof("Inferred tile size %dpx (score %.2f)", inferred.TileSize, inferred.Score)
	}

	ts, err := tileset.Slice(img, cfg.TileSize, tileset.SliceOptions{BlurSigma: cfg.BlurSigma})
	if err != nil {
		return err
	}
	logger.Debugf("Sliced %d tiles (%dx%d grid)", ts.Len(), ts.Columns, ts.Rows)

	matchCfg := adjacency.Config{
		TileSize:   cfg.TileSize,
		Tolerance:  cfg.Tolerance,
		MatchRatio: cfg.MatchRatio,
		Metric:     adjacency.Metric(cfg.Metric),
		Workers:    cfg.Workers,
	}
	p := newProgress(logger)
	if err := adjacency.Build(ctx, ts, matchCfg); err != nil {
		return err
	}

	result := newBuildResult(imagePath, ts, cfg.Tolerance, cfg.MatchRatio, cfg.Metric)
	p.done(fmt.Sprintf("Matched %d tiles, %d directed relations", result.TileCount, result.Relations))

	return writeJSON(cmd.OutOrStdout(), outPath, result)
}
