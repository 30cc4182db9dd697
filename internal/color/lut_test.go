package color

import (
	"math"
	"testing"
)

// TestSRGBToLinearFastAccuracy checks the table against the exact curve.
func TestSRGBToLinearFastAccuracy(t *testing.T) {
	var maxError float32
	for i := 0; i <= 10000; i++ {
		s := float32(i) / 10000
		diff := float32(math.Abs(float64(SRGBToLinearFast(s) - SRGBToLinear(s))))
		maxError = max(maxError, diff)
		if diff > 1e-4 {
			t.Errorf("sRGB %v: fast=%v, exact=%v", s, SRGBToLinearFast(s), SRGBToLinear(s))
		}
	}
	t.Logf("Max sRGB→Linear error: %g", maxError)
}

func TestLinearToSRGBFastAccuracy(t *testing.T) {
	var maxError float32
	for i := 0; i <= 10000; i++ {
		l := float32(i) / 10000
		diff := float32(math.Abs(float64(LinearToSRGBFast(l) - LinearToSRGB(l))))
		maxError = max(maxError, diff)
		if diff > 1e-4 {
			t.Errorf("linear %v: fast=%v, exact=%v", l, LinearToSRGBFast(l), LinearToSRGB(l))
		}
	}
	t.Logf("Max Linear→sRGB error: %g", maxError)
}

func TestFastRoundTrip(t *testing.T) {
	for i := 0; i <= 255; i++ {
		s := float32(i) / 255
		got := LinearToSRGBFast(SRGBToLinearFast(s))
		if diff := math.Abs(float64(got - s)); diff > 0.5/255 {
			t.Errorf("%d/255 -> %v", i, got)
		}
	}
}

func TestFastEdgeCases(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want float32
	}{
		{"negative", -0.25, 0},
		{"zero", 0, 0},
		{"one", 1, 1},
		{"above one", 3, 1},
		{"NaN", float32(math.NaN()), 0},
		{"just below one", math.Nextafter32(1, 0), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SRGBToLinearFast(tt.in); !floatNear(got, tt.want, 1e-5) {
				t.Errorf("SRGBToLinearFast(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if got := LinearToSRGBFast(tt.in); !floatNear(got, tt.want, 1e-5) {
				t.Errorf("LinearToSRGBFast(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func BenchmarkSRGBToLinearFast(b *testing.B) {
	var sink float32
	for b.Loop() {
		for i := range 256 {
			sink += SRGBToLinearFast(float32(i) / 255)
		}
	}
	_ = sink
}

func BenchmarkSRGBToLinearExact(b *testing.B) {
	var sink float32
	for b.Loop() {
		for i := range 256 {
			sink += SRGBToLinear(float32(i) / 255)
		}
	}
	_ = sink
}
