package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/unigrade/unigrade-api/internal/models"
)

// ResultRepository persists generated results and serves ranking cohorts.
type ResultRepository interface {
	GetByStudentSemester(ctx context.Context, studentID uint, semester int) (models.Result, error)
	ListByStudent(ctx context.Context, studentID uint) ([]models.Result, error)
	ListCohort(ctx context.Context, departmentID uint, semester int) ([]models.Result, error)
	Upsert(ctx context.Context, result *models.Result) error
	UpdateRank(ctx context.Context, resultID uint, rank int) error
}

type resultRepository struct {
	db *gorm.DB
}

// NewResultRepository constructs a result repository.
func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) GetByStudentSemester(ctx context.Context, studentID uint, semester int) (models.Result, error) {
	var result models.Result
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND semester = ?", studentID, semester).
		First(&result).Error
	if err != nil {
		return models.Result{}, err
	}

	return result, nil
}

func (r *resultRepository) ListByStudent(ctx context.Context, studentID uint) ([]models.Result, error) {
	var results []models.Result
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("semester").
		Find(&results).Error
	if err != nil {
		return nil, err
	}

	return results, nil
}

// ListCohort returns a department's results for one semester ordered by
// CGPA descending. Ties carry no secondary ordering; their relative
// order is whatever the backend returns.
func (r *resultRepository) ListCohort(ctx context.Context, departmentID uint, semester int) ([]models.Result, error) {
	var results []models.Result
	err := r.db.WithContext(ctx).
		Joins("JOIN students ON students.id = results.student_id").
		Where("students.department_id = ? AND results.semester = ?", departmentID, semester).
		Order("results.cgpa DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}

	return results, nil
}

// Upsert writes the result row for (student, semester), creating it on
// first generation and overwriting it on regeneration. The check and the
// write run in one transaction so concurrent generations cannot leave
// duplicate rows.
func (r *resultRepository) Upsert(ctx context.Context, result *models.Result) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Result
		err := tx.Where("student_id = ? AND semester = ?", result.StudentID, result.Semester).
			First(&existing).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return tx.Create(result).Error
			}
			return err
		}

		result.ID = existing.ID
		result.CreatedAt = existing.CreatedAt
		result.Rank = existing.Rank
		return tx.Save(result).Error
	})
}

func (r *resultRepository) UpdateRank(ctx context.Context, resultID uint, rank int) error {
	return r.db.WithContext(ctx).
		Model(&models.Result{}).
		Where("id = ?", resultID).
		Update("rank", rank).Error
}
