package dto

import (
	"time"

	"github.com/unigrade/unigrade-api/internal/models"
)

// GenerateResultRequest asks for result generation for one student semester.
type GenerateResultRequest struct {
	StudentID uint `json:"student_id" validate:"required,min=1"`
	Semester  int  `json:"semester" validate:"required,min=1,max=8"`
}

// CalculateRanksRequest asks for a rank recompute over one department cohort.
type CalculateRanksRequest struct {
	DepartmentID uint `json:"department_id" validate:"required,min=1"`
	Semester     int  `json:"semester" validate:"required,min=1,max=8"`
}

// MarkResponse is one course score inside a result bundle.
type MarkResponse struct {
	CourseID      uint    `json:"course_id"`
	CourseCode    string  `json:"course_code"`
	CourseName    string  `json:"course_name"`
	Credits       int     `json:"credits"`
	MarksObtained float64 `json:"marks_obtained"`
	MaxMarks      int     `json:"max_marks"`
	Grade         string  `json:"grade"`
	Status        string  `json:"status"`
}

// ResultResponse is the serialized representation of a stored result.
type ResultResponse struct {
	StudentID     uint      `json:"student_id"`
	Semester      int       `json:"semester"`
	TotalMarks    int       `json:"total_marks"`
	MarksObtained float64   `json:"marks_obtained"`
	Percentage    float64   `json:"percentage"`
	SGPA          float64   `json:"sgpa"`
	CGPA          float64   `json:"cgpa"`
	OverallGrade  string    `json:"overall_grade"`
	Status        string    `json:"status"`
	Rank          *int      `json:"rank"`
	GeneratedAt   time.Time `json:"generated_at"`
}

// ResultBundle is the full generation outcome: the persisted result plus
// the student and the marks it was computed from.
type ResultBundle struct {
	Student  StudentResponse `json:"student"`
	Semester int             `json:"semester"`
	Marks    []MarkResponse  `json:"marks"`
	Result   ResultResponse  `json:"result"`
}

// StudentResponse identifies the student a result belongs to.
type StudentResponse struct {
	ID         uint   `json:"id"`
	RollNo     string `json:"roll_no"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Semester   int    `json:"semester"`
}

// RankEntry reports one assigned rank after a cohort recompute.
type RankEntry struct {
	StudentID uint    `json:"student_id"`
	Semester  int     `json:"semester"`
	CGPA      float64 `json:"cgpa"`
	Rank      int     `json:"rank"`
}

// NewResultResponse converts a model into a DTO.
func NewResultResponse(model models.Result) ResultResponse {
	return ResultResponse{
		StudentID:     model.StudentID,
		Semester:      model.Semester,
		TotalMarks:    model.TotalMarks,
		MarksObtained: model.MarksObtained,
		Percentage:    model.Percentage,
		SGPA:          model.SGPA,
		CGPA:          model.CGPA,
		OverallGrade:  model.OverallGrade,
		Status:        model.Status,
		Rank:          model.Rank,
		GeneratedAt:   model.GeneratedAt,
	}
}

// NewResultResponseSlice converts a slice of models into DTOs.
func NewResultResponseSlice(results []models.Result) []ResultResponse {
	responses := make([]ResultResponse, 0, len(results))
	for _, result := range results {
		responses = append(responses, NewResultResponse(result))
	}

	return responses
}

// NewStudentResponse converts a model into a DTO.
func NewStudentResponse(model models.Student) StudentResponse {
	return StudentResponse{
		ID:         model.ID,
		RollNo:     model.RollNo,
		Name:       model.Name,
		Department: model.Department.Name,
		Semester:   model.Semester,
	}
}

// NewMarkResponseSlice converts marks with preloaded courses into DTOs.
func NewMarkResponseSlice(marks []models.Mark) []MarkResponse {
	responses := make([]MarkResponse, 0, len(marks))
	for _, mark := range marks {
		responses = append(responses, MarkResponse{
			CourseID:      mark.CourseID,
			CourseCode:    mark.Course.Code,
			CourseName:    mark.Course.Name,
			Credits:       mark.Course.Credits,
			MarksObtained: mark.MarksObtained,
			MaxMarks:      mark.MaxMarks,
			Grade:         mark.Grade,
			Status:        mark.Status,
		})
	}

	return responses
}
