package adjacency

import (
	"math"
	"testing"
)

func TestRGBADistance(t *testing.T) {
	tests := []struct {
		name string
		a, b RGBA
		want float64
	}{
		{"identical", RGBA{10, 20, 30, 255}, RGBA{10, 20, 30, 255}, 0},
		{"single channel", RGBA{0, 0, 0, 255}, RGBA{2, 0, 0, 255}, 2},
		{"alpha only", RGBA{0, 0, 0, 0}, RGBA{0, 0, 0, 5}, 5},
		{"two channels", RGBA{0, 0, 0, 255}, RGBA{3, 4, 0, 255}, 5},
		{"max distance", RGBA{0, 0, 0, 0}, RGBA{255, 255, 255, 255}, 510},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rgbaDistance(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("rgbaDistance(%v, %v): got %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRGBADistance_Symmetric(t *testing.T) {
	a := RGBA{10, 200, 30, 40}
	b := RGBA{250, 6, 90, 255}
	if d1, d2 := rgbaDistance(a, b), rgbaDistance(b, a); d1 != d2 {
		t.Errorf("distance not symmetric: %v vs %v", d1, d2)
	}
}

func TestLabDistance(t *testing.T) {
	if d := labDistance(RGBA{120, 30, 200, 255}, RGBA{120, 30, 200, 255}); d != 0 {
		t.Errorf("identical colors: got %v, want 0", d)
	}

	// Alpha does not exist in Lab space; it must still be compared.
	if d := labDistance(RGBA{120, 30, 200, 255}, RGBA{120, 30, 200, 100}); d < 155 {
		t.Errorf("alpha difference of 155 yielded distance %v", d)
	}

	// Strongly different hues must be far apart in Lab too.
	if d := labDistance(RGBA{255, 0, 0, 255}, RGBA{0, 0, 255, 255}); d <= 2 {
		t.Errorf("red vs blue: got %v, want well above tolerance", d)
	}
}

func TestDistanceFor(t *testing.T) {
	a := RGBA{1, 2, 3, 255}
	b := RGBA{4, 5, 6, 255}

	if got, want := distanceFor(MetricRGBA)(a, b), rgbaDistance(a, b); got != want {
		t.Errorf("MetricRGBA: got %v, want %v", got, want)
	}
	if got, want := distanceFor("")(a, b), rgbaDistance(a, b); got != want {
		t.Errorf("empty metric: got %v, want %v", got, want)
	}
	if got, want := distanceFor(MetricLab)(a, b), labDistance(a, b); got != want {
		t.Errorf("MetricLab: got %v, want %v", got, want)
	}
}
