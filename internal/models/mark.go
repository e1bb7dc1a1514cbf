package models

import "time"

// Mark records one student's score in one course. Grade and Status are
// derived at marks-entry time and consumed as-is by the result
// calculator; they are never recomputed here.
type Mark struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	StudentID     uint      `gorm:"not null;uniqueIndex:idx_marks_student_course" json:"student_id"`
	CourseID      uint      `gorm:"not null;uniqueIndex:idx_marks_student_course" json:"course_id"`
	MarksObtained float64   `gorm:"not null" json:"marks_obtained"`
	MaxMarks      int       `gorm:"not null" json:"max_marks"`
	Grade         string    `gorm:"size:4;not null" json:"grade"`
	Status        string    `gorm:"size:8;not null" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Student       Student   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"student"`
	Course        Course    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"course"`
}

const (
	// MarkStatusPass indicates the score met the course pass threshold.
	MarkStatusPass = "Pass"
	// MarkStatusFail indicates the score fell below the course pass threshold.
	MarkStatusFail = "Fail"
)
