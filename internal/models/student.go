package models

import "time"

// Student represents an enrolled student whose marks feed result generation.
type Student struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	RollNo       string     `gorm:"size:32;uniqueIndex;not null" json:"roll_no"`
	Name         string     `gorm:"size:255;not null" json:"name"`
	DepartmentID uint       `gorm:"not null;index" json:"department_id"`
	Semester     int        `gorm:"not null" json:"semester"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Department   Department `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"department"`
}
