package cli

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// buildConfig holds the tunable parameters of the build command. Values come
// from three layers with increasing precedence: built-in defaults, an
// optional TOML config file, and explicit flags.
type buildConfig struct {
	// TileSize is the tile side length in pixels. Zero means infer it from
	// the image.
	TileSize int `toml:"tile_size"`

	// Tolerance is the maximum per-pixel color distance still counted as
	// matching.
	Tolerance float64 `toml:"tolerance"`

	// MatchRatio is the fraction of edge positions that must be within
	// tolerance for two edges to be compatible.
	MatchRatio float64 `toml:"match_ratio"`

	// Metric selects the per-pixel color distance: "rgba" or "lab".
	Metric string `toml:"metric"`

	// BlurSigma applies a Gaussian pre-blur to the tileset before slicing
	// when positive.
	BlurSigma float64 `toml:"blur_sigma"`

	// Workers caps matcher parallelism. Zero means one per CPU.
	Workers int `toml:"workers"`
}

// defaultBuildConfig returns the built-in defaults: infer the tile size,
// tolerance 2, match ratio 0.98, RGBA metric, no blur.
func defaultBuildConfig() buildConfig {
	return buildConfig{
		Tolerance:  2,
		MatchRatio: 0.98,
		Metric:     "rgba",
	}
}

// loadConfigFile decodes a TOML config file into a buildConfig. Unknown keys
// are rejected so typos surface instead of silently keeping defaults.
func loadConfigFile(path string) (buildConfig, error) {
	var cfg buildConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return buildConfig{}, fmt.Errorf("failed to read config file: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return buildConfig{}, fmt.Errorf("unknown keys in config file %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// merge overlays file-provided values onto cfg for every flag the user did
// not set explicitly. changed reports whether a flag name was set on the
// command line.
func (c *buildConfig) merge(file buildConfig, changed func(name string) bool) {
	if !changed("tile-size") && file.TileSize != 0 {
		c.TileSize = file.TileSize
	}
	if !changed("tolerance") && file.Tolerance != 0 {
		c.Tolerance = file.Tolerance
	}
	if !changed("match-ratio") && file.MatchRatio != 0 {
		c.MatchRatio = file.MatchRatio
	}
	if !changed("metric") && file.Metric != "" {
		c.Metric = file.Metric
	}
	if !changed("blur-sigma") && file.BlurSigma != 0 {
		c.BlurSigma = file.BlurSigma
	}
	if !changed("workers") && file.Workers != 0 {
		c.Workers = file.Workers
	}
}
