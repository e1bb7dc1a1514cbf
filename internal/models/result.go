package models

import "time"

// Result is the generated outcome for one (student, semester). Rows are
// overwritten on regeneration, never versioned; Rank is assigned in bulk
// per department cohort and is nil until a rank run covers the row.
type Result struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	StudentID     uint      `gorm:"not null;uniqueIndex:idx_results_student_semester" json:"student_id"`
	Semester      int       `gorm:"not null;uniqueIndex:idx_results_student_semester" json:"semester"`
	TotalMarks    int       `gorm:"not null" json:"total_marks"`
	MarksObtained float64   `gorm:"not null" json:"marks_obtained"`
	Percentage    float64   `gorm:"not null" json:"percentage"`
	SGPA          float64   `gorm:"column:sgpa;not null" json:"sgpa"`
	CGPA          float64   `gorm:"column:cgpa;not null" json:"cgpa"`
	OverallGrade  string    `gorm:"size:4;not null" json:"overall_grade"`
	Status        string    `gorm:"size:8;not null" json:"status"`
	Rank          *int      `json:"rank"`
	GeneratedAt   time.Time `gorm:"not null" json:"generated_at"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Student       Student   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"student"`
}

const (
	// ResultStatusPass marks a semester with no failed course.
	ResultStatusPass = "Pass"
	// ResultStatusFail marks a semester containing at least one failed course.
	ResultStatusFail = "Fail"
	// ResultStatusNoData marks a semester with no recorded marks.
	ResultStatusNoData = "No Data"
)
