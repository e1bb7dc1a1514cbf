package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/unigrade/unigrade-api/internal/models"
)

// MarkRepository reads recorded marks. Marks are written by the entry
// workflow elsewhere; the calculator only consumes them.
type MarkRepository interface {
	ListBySemester(ctx context.Context, studentID uint, semester int) ([]models.Mark, error)
}

type markRepository struct {
	db *gorm.DB
}

// NewMarkRepository constructs a mark repository.
func NewMarkRepository(db *gorm.DB) MarkRepository {
	return &markRepository{db: db}
}

func (r *markRepository) ListBySemester(ctx context.Context, studentID uint, semester int) ([]models.Mark, error) {
	var marks []models.Mark
	err := r.db.WithContext(ctx).
		Preload("Course").
		Joins("JOIN courses ON courses.id = marks.course_id").
		Where("marks.student_id = ? AND courses.semester = ?", studentID, semester).
		Order("courses.code").
		Find(&marks).Error
	if err != nil {
		return nil, err
	}

	return marks, nil
}
