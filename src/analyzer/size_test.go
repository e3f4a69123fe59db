package analyzer

import (
	"strings"
	"testing"
)

func TestDetermineSize(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		chest  float64
		neck   float64
		want   string
	}{
		{
			name:   "all metrics agree on XS",
			weight: 2.0, chest: 20, neck: 12,
			want: "XS",
		},
		{
			name:   "all metrics agree on M",
			weight: 5.0, chest: 35, neck: 22,
			want: "M",
		},
		{
			name:   "chest majority wins outright",
			weight: 5.0, chest: 40, neck: 25, // votes [M, L, L, L]
			want: "L",
		},
		{
			name:   "two-way tie resolves to chest",
			weight: 3.0, chest: 33, neck: 16, // votes [S, M, M, S]
			want: "M",
		},
		{
			name:   "weight and neck cannot outvote chest pair",
			weight: 9.0, chest: 25, neck: 29, // votes [XL, S, S, XL]
			want: "S",
		},
		{
			name:   "all metrics agree on XL",
			weight: 10.0, chest: 50, neck: 30,
			want: "XL",
		},
		{
			name:   "weight boundary 2.5 kg is S",
			weight: 2.5, chest: 20, neck: 12, // votes [S, XS, XS, XS]
			want: "XS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetermineSize(tt.weight, tt.chest, tt.neck)
			if got.Category != tt.want {
				t.Errorf("DetermineSize(%v, %v, %v) = %q, want %q",
					tt.weight, tt.chest, tt.neck, got.Category, tt.want)
			}
			if got.Ranges != sizeRanges[tt.want] {
				t.Errorf("size_ranges = %+v, want %+v", got.Ranges, sizeRanges[tt.want])
			}
			if !strings.Contains(got.Recommendation, tt.want) {
				t.Errorf("recommendation %q does not mention size %q", got.Recommendation, tt.want)
			}
		})
	}
}

func TestSizeClassifierBoundaries(t *testing.T) {
	// Thresholds are half-open: the boundary value belongs to the next size up.
	if got := sizeByWeight(2.5); got != "S" {
		t.Errorf("sizeByWeight(2.5) = %q, want S", got)
	}
	if got := sizeByWeight(8.5); got != "XL" {
		t.Errorf("sizeByWeight(8.5) = %q, want XL", got)
	}
	if got := sizeByChest(24); got != "S" {
		t.Errorf("sizeByChest(24) = %q, want S", got)
	}
	if got := sizeByChest(45); got != "XL" {
		t.Errorf("sizeByChest(45) = %q, want XL", got)
	}
	if got := sizeByNeck(15); got != "S" {
		t.Errorf("sizeByNeck(15) = %q, want S", got)
	}
	if got := sizeByNeck(28); got != "XL" {
		t.Errorf("sizeByNeck(28) = %q, want XL", got)
	}
}
