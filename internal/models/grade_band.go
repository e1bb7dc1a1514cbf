package models

// GradeBand is one row of the grading scale: a percentage range mapped
// to a letter grade and its grade-point value. The table is loaded once
// at startup and treated as immutable configuration afterwards; editing
// it does not retroactively recompute existing results.
type GradeBand struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	Label      string  `gorm:"size:4;uniqueIndex;not null" json:"label"`
	MinPercent float64 `gorm:"not null" json:"min_percent"`
	MaxPercent float64 `gorm:"not null" json:"max_percent"`
	Points     float64 `gorm:"not null" json:"points"`
	Position   int     `gorm:"not null" json:"position"`
}
