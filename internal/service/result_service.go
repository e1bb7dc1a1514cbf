package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"

	"github.com/unigrade/unigrade-api/internal/dto"
	"github.com/unigrade/unigrade-api/internal/grading"
	"github.com/unigrade/unigrade-api/internal/models"
	"github.com/unigrade/unigrade-api/internal/repository"
)

// ErrStudentNotFound indicates the student was not located.
var ErrStudentNotFound = errors.New("student not found")

// ErrResultNotFound indicates no result has been generated for the requested semester.
var ErrResultNotFound = errors.New("result not found")

// ErrNoMarks indicates the semester has no recorded marks to compute from.
var ErrNoMarks = errors.New("no marks found for this semester")

// ErrNoCredits indicates the semester's courses carry zero total credits.
var ErrNoCredits = errors.New("total credits is zero")

// ErrNoTotalMarks indicates the semester's courses carry zero total max marks.
var ErrNoTotalMarks = errors.New("total marks is zero")

// PercentageBreakdown carries the percentage together with the totals it
// was derived from.
type PercentageBreakdown struct {
	Percentage    float64
	TotalMarks    int
	MarksObtained float64
}

// ResultService computes and persists semester results.
type ResultService interface {
	CalculateSGPA(ctx context.Context, studentID uint, semester int) (float64, error)
	CalculateCGPA(ctx context.Context, studentID uint, upToSemester int) (float64, error)
	CalculatePercentage(ctx context.Context, studentID uint, semester int) (PercentageBreakdown, error)
	OverallStatus(ctx context.Context, studentID uint, semester int) (string, error)
	GenerateResult(ctx context.Context, studentID uint, semester int) (dto.ResultBundle, error)
	GetResult(ctx context.Context, studentID uint, semester int) (dto.ResultResponse, error)
	Transcript(ctx context.Context, studentID uint) ([]dto.ResultResponse, error)
}

type resultService struct {
	students repository.StudentRepository
	marks    repository.MarkRepository
	results  repository.ResultRepository
	scale    grading.Scale
	logger   zerolog.Logger
	now      func() time.Time
}

// NewResultService constructs the result calculator.
func NewResultService(
	students repository.StudentRepository,
	marks repository.MarkRepository,
	results repository.ResultRepository,
	scale grading.Scale,
	logger zerolog.Logger,
) ResultService {
	return &resultService{
		students: students,
		marks:    marks,
		results:  results,
		scale:    scale,
		logger:   logger.With().Str("component", "result_service").Logger(),
		now:      time.Now,
	}
}

func (s *resultService) CalculateSGPA(ctx context.Context, studentID uint, semester int) (float64, error) {
	marks, err := s.marks.ListBySemester(ctx, studentID, semester)
	if err != nil {
		return 0, err
	}
	if len(marks) == 0 {
		return 0, ErrNoMarks
	}

	weightedPoints, credits := s.accumulate(marks)
	if credits == 0 {
		return 0, ErrNoCredits
	}

	return round2(weightedPoints / float64(credits)), nil
}

// CalculateCGPA is the credit-weighted average over every mark recorded
// in semesters 1..upToSemester, recomputed from scratch. It is not an
// average of per-semester SGPAs: points and credits are summed globally
// before the single division.
func (s *resultService) CalculateCGPA(ctx context.Context, studentID uint, upToSemester int) (float64, error) {
	var (
		weightedPoints float64
		credits        int
		found          bool
	)

	for semester := 1; semester <= upToSemester; semester++ {
		marks, err := s.marks.ListBySemester(ctx, studentID, semester)
		if err != nil {
			return 0, err
		}
		if len(marks) == 0 {
			continue
		}

		found = true
		points, semCredits := s.accumulate(marks)
		weightedPoints += points
		credits += semCredits
	}

	if !found {
		return 0, ErrNoMarks
	}
	if credits == 0 {
		return 0, ErrNoCredits
	}

	return round2(weightedPoints / float64(credits)), nil
}

func (s *resultService) CalculatePercentage(ctx context.Context, studentID uint, semester int) (PercentageBreakdown, error) {
	marks, err := s.marks.ListBySemester(ctx, studentID, semester)
	if err != nil {
		return PercentageBreakdown{}, err
	}
	if len(marks) == 0 {
		return PercentageBreakdown{}, ErrNoMarks
	}

	var breakdown PercentageBreakdown
	for _, mark := range marks {
		breakdown.TotalMarks += mark.MaxMarks
		breakdown.MarksObtained += mark.MarksObtained
	}

	if breakdown.TotalMarks == 0 {
		return PercentageBreakdown{}, ErrNoTotalMarks
	}

	breakdown.Percentage = round2(breakdown.MarksObtained / float64(breakdown.TotalMarks) * 100)
	return breakdown, nil
}

// OverallStatus is "Fail" as soon as any mark carries a failed status as
// recorded at entry time; it never re-derives pass/fail from raw scores.
func (s *resultService) OverallStatus(ctx context.Context, studentID uint, semester int) (string, error) {
	marks, err := s.marks.ListBySemester(ctx, studentID, semester)
	if err != nil {
		return "", err
	}
	if len(marks) == 0 {
		return models.ResultStatusNoData, nil
	}

	for _, mark := range marks {
		if mark.Status == models.MarkStatusFail {
			return models.ResultStatusFail, nil
		}
	}

	return models.ResultStatusPass, nil
}

func (s *resultService) GenerateResult(ctx context.Context, studentID uint, semester int) (dto.ResultBundle, error) {
	tracer := otel.Tracer("github.com/unigrade/unigrade-api/internal/service/result")
	ctx, span := tracer.Start(ctx, "result.generate")
	span.SetAttributes(
		attribute.Int64("result.student_id", int64(studentID)),
		attribute.Int("result.semester", semester),
	)
	defer span.End()

	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = ErrStudentNotFound
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "student_lookup_failed")
		return dto.ResultBundle{}, err
	}

	marks, err := s.marks.ListBySemester(ctx, studentID, semester)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "marks_lookup_failed")
		return dto.ResultBundle{}, err
	}

	sgpa, err := s.CalculateSGPA(ctx, studentID, semester)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "sgpa_failed")
		return dto.ResultBundle{}, err
	}

	// Best effort: a CGPA failure falls back to the semester SGPA
	// instead of failing the whole generation.
	cgpa, err := s.CalculateCGPA(ctx, studentID, semester)
	if err != nil {
		s.logger.Warn().Err(err).
			Uint("student_id", studentID).
			Int("semester", semester).
			Msg("cgpa calculation failed, falling back to sgpa")
		cgpa = sgpa
	}

	breakdown, err := s.CalculatePercentage(ctx, studentID, semester)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "percentage_failed")
		return dto.ResultBundle{}, err
	}

	status, err := s.OverallStatus(ctx, studentID, semester)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "status_failed")
		return dto.ResultBundle{}, err
	}

	result := models.Result{
		StudentID:     studentID,
		Semester:      semester,
		TotalMarks:    breakdown.TotalMarks,
		MarksObtained: breakdown.MarksObtained,
		Percentage:    breakdown.Percentage,
		SGPA:          sgpa,
		CGPA:          cgpa,
		OverallGrade:  s.scale.OverallGradeFromCGPA(cgpa),
		Status:        status,
		GeneratedAt:   s.now().UTC(),
	}

	if err := s.results.Upsert(ctx, &result); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "result_upsert_failed")
		return dto.ResultBundle{}, err
	}

	s.logger.Info().
		Uint("student_id", studentID).
		Int("semester", semester).
		Float64("sgpa", sgpa).
		Float64("cgpa", cgpa).
		Str("status", status).
		Msg("result generated")

	span.SetAttributes(
		attribute.Float64("result.sgpa", sgpa),
		attribute.Float64("result.cgpa", cgpa),
		attribute.String("result.status", status),
	)

	return dto.ResultBundle{
		Student:  dto.NewStudentResponse(student),
		Semester: semester,
		Marks:    dto.NewMarkResponseSlice(marks),
		Result:   dto.NewResultResponse(result),
	}, nil
}

func (s *resultService) GetResult(ctx context.Context, studentID uint, semester int) (dto.ResultResponse, error) {
	result, err := s.results.GetByStudentSemester(ctx, studentID, semester)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ResultResponse{}, ErrResultNotFound
		}
		return dto.ResultResponse{}, err
	}

	return dto.NewResultResponse(result), nil
}

func (s *resultService) Transcript(ctx context.Context, studentID uint) ([]dto.ResultResponse, error) {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	results, err := s.results.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return dto.NewResultResponseSlice(results), nil
}

// accumulate sums grade points weighted by course credits. Points come
// from the stored letter grade, never recomputed from the raw score; an
// unknown letter contributes zero points. Credits are consumed as the
// catalog recorded them, so a semester of zero-credit courses yields
// zero total credits and the caller reports it.
func (s *resultService) accumulate(marks []models.Mark) (weightedPoints float64, credits int) {
	for _, mark := range marks {
		courseCredits := mark.Course.Credits

		points, _ := s.scale.PointsForGrade(mark.Grade)
		weightedPoints += points * float64(courseCredits)
		credits += courseCredits
	}

	return weightedPoints, credits
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
