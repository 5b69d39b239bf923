package geom

import (
	"math"
	"testing"
)

func TestAddSigned(t *testing.T) {
	tests := []struct {
		name string
		px   Pixel
		off  Offset
		want Pixel
	}{
		{"positive", Pixel{10, 10}, Offset{5, 2}, Pixel{15, 12}},
		{"negative", Pixel{10, 10}, Offset{-3, -10}, Pixel{7, 0}},
		{"underflow", Pixel{2, 0}, Offset{-5, -1}, Pixel{0, 0}},
		{"overflow", Pixel{math.MaxUint32 - 1, 0}, Offset{10, 0}, Pixel{math.MaxUint32, 0}},
		{"min int", Pixel{5, 5}, Offset{math.MinInt32, 0}, Pixel{0, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddSigned(tt.px, tt.off); got != tt.want {
				t.Errorf("AddSigned(%v, %v) = %v, want %v", tt.px, tt.off, got, tt.want)
			}
		})
	}
}

func TestToPixel(t *testing.T) {
	tests := []struct {
		v    Vec
		want Pixel
	}{
		{Vec{12.7, 3.2}, Pixel{12, 3}},
		{Vec{-4, 9}, Pixel{0, 9}},
		{Vec{float32(math.NaN()), 1}, Pixel{0, 1}},
	}

	for _, tt := range tests {
		if got := ToPixel(tt.v); got != tt.want {
			t.Errorf("ToPixel(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}

	if got := ToVec(Pixel{3, 4}); got != (Vec{3, 4}) {
		t.Errorf("ToVec = %v, want (3, 4)", got)
	}
}
