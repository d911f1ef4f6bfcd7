package adjacency

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Metric selects the per-pixel color distance used by the matcher.
type Metric string

const (
	// MetricRGBA treats a pixel as a 4-D vector of R, G, B, A channels in
	// [0,255] and uses plain Euclidean distance. This is the default and the
	// space the default tolerance of 2 was tuned in.
	MetricRGBA Metric = "rgba"

	// MetricLab measures color difference in CIE-Lab space, which tracks
	// perceived difference better than RGB for hue shifts. The Lab distance
	// is scaled to the 0-255 range so the same tolerance values apply; alpha
	// is compared separately as an absolute channel difference.
	MetricLab Metric = "lab"
)

// distanceFunc returns the per-pixel distance between two samples.
type distanceFunc func(a, b RGBA) float64

// rgbaDistance is the Euclidean distance between two pixels treated as
// (R,G,B,A) vectors.
func rgbaDistance(a, b RGBA) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	da := float64(a.A) - float64(b.A)
	return math.Sqrt(dr*dr + dg*dg + db*db + da*da)
}

// labDistance is the CIE-Lab distance between two pixels, scaled to the same
// 0-255 range as rgbaDistance. Alpha does not participate in Lab, so the
// larger of the Lab distance and the absolute alpha difference is returned;
// a position only counts as matching when both are within tolerance.
func labDistance(a, b RGBA) float64 {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	d := ca.DistanceLab(cb) * 255
	da := math.Abs(float64(a.A) - float64(b.A))
	return math.Max(d, da)
}

// distanceFor maps a Metric to its implementation. Unknown metrics are
// rejected by Config validation before this is called.
func distanceFor(m Metric) distanceFunc {
	if m == MetricLab {
		return labDistance
	}
	return rgbaDistance
}
