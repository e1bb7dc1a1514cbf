package models

import "time"

// Course describes one offered course. Credits weight the grade-point
// averages; MaxMarks and PassMarks govern percentage totals and the
// per-mark pass/fail decision made at entry time.
type Course struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Code         string     `gorm:"size:32;uniqueIndex;not null" json:"code"`
	Name         string     `gorm:"size:255;not null" json:"name"`
	DepartmentID uint       `gorm:"not null;index" json:"department_id"`
	Semester     int        `gorm:"not null" json:"semester"`
	Credits      int        `json:"credits"`
	MaxMarks     int        `gorm:"not null" json:"max_marks"`
	PassMarks    int        `gorm:"not null" json:"pass_marks"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Department   Department `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"department"`
}
