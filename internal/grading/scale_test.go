package grading

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unigrade/unigrade-api/internal/models"
)

func TestBandForPercentageCoversEveryBand(t *testing.T) {
	scale := Default()

	for _, band := range scale.Bands() {
		for _, p := range []float64{band.Min, (band.Min + band.Max) / 2, band.Max} {
			got, ok := scale.BandForPercentage(p)
			require.True(t, ok, "expected %.1f to match a band", p)
			require.Equal(t, band.Label, got.Label, "percentage %.1f", p)
		}
	}
}

func TestBandForPercentageBoundaries(t *testing.T) {
	scale := Default()

	cases := []struct {
		percent float64
		label   string
		matched bool
	}{
		{100, "A+", true},
		{90, "A+", true},
		{89, "A", true},
		{80, "A", true},
		{79, "B+", true},
		{40, "C", true},
		{49, "C", true},
		{39, "F", true},
		{0, "F", true},
		// Fractional values between contiguous integer bands match
		// nothing; callers fall back to the lowest grade.
		{89.5, "", false},
		{-1, "", false},
		{100.5, "", false},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%.1f", tc.percent), func(t *testing.T) {
			band, ok := scale.BandForPercentage(tc.percent)
			require.Equal(t, tc.matched, ok)
			if tc.matched {
				require.Equal(t, tc.label, band.Label)
			}
		})
	}
}

func TestBandForPercentageFirstMatchWinsOnOverlap(t *testing.T) {
	// An overlapping table is a configuration error, but lookup must
	// stay deterministic: first band in configured order wins.
	scale := NewScale([]models.GradeBand{
		{Label: "A", MinPercent: 80, MaxPercent: 90, Points: 3.6, Position: 1},
		{Label: "B", MinPercent: 90, MaxPercent: 100, Points: 2.8, Position: 2},
	})

	band, ok := scale.BandForPercentage(90)
	require.True(t, ok)
	require.Equal(t, "A", band.Label)
}

func TestPointsForGrade(t *testing.T) {
	scale := Default()

	points, ok := scale.PointsForGrade("A+")
	require.True(t, ok)
	require.Equal(t, 4.0, points)

	points, ok = scale.PointsForGrade("F")
	require.True(t, ok)
	require.Equal(t, 0.0, points)

	_, ok = scale.PointsForGrade("Z")
	require.False(t, ok)
}

func TestOverallGradeFromCGPA(t *testing.T) {
	scale := Default()

	// A 4.0 CGPA maps to 40 percent under the x10 compatibility
	// scaling and therefore lands in the C band, not A+.
	require.Equal(t, "C", scale.OverallGradeFromCGPA(4.0))
	require.Equal(t, "C+", scale.OverallGradeFromCGPA(5.0))
	require.Equal(t, "A+", scale.OverallGradeFromCGPA(9.0))
	require.Equal(t, "F", scale.OverallGradeFromCGPA(0))
	require.Equal(t, "F", scale.OverallGradeFromCGPA(2.0))
	// Out of range falls back to F.
	require.Equal(t, "F", scale.OverallGradeFromCGPA(-1))
	require.Equal(t, "F", scale.OverallGradeFromCGPA(11))
}

func TestNewScaleOrdersByPosition(t *testing.T) {
	scale := NewScale([]models.GradeBand{
		{Label: "F", MinPercent: 0, MaxPercent: 39, Points: 0, Position: 7},
		{Label: "A+", MinPercent: 90, MaxPercent: 100, Points: 4.0, Position: 1},
	})

	bands := scale.Bands()
	require.Len(t, bands, 2)
	require.Equal(t, "A+", bands[0].Label)
	require.Equal(t, "F", bands[1].Label)
}
