package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/unigrade/unigrade-api/internal/models"
)

// GradeBandRepository loads the grading scale configuration.
type GradeBandRepository interface {
	List(ctx context.Context) ([]models.GradeBand, error)
	SeedIfEmpty(ctx context.Context, bands []models.GradeBand) error
}

type gradeBandRepository struct {
	db *gorm.DB
}

// NewGradeBandRepository constructs a grade band repository.
func NewGradeBandRepository(db *gorm.DB) GradeBandRepository {
	return &gradeBandRepository{db: db}
}

func (r *gradeBandRepository) List(ctx context.Context) ([]models.GradeBand, error) {
	var bands []models.GradeBand
	if err := r.db.WithContext(ctx).Order("position").Find(&bands).Error; err != nil {
		return nil, err
	}

	return bands, nil
}

// SeedIfEmpty installs the shipped scale the first time the service runs
// against a fresh database. An already-configured table is left alone.
func (r *gradeBandRepository) SeedIfEmpty(ctx context.Context, bands []models.GradeBand) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.GradeBand{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		return tx.Create(&bands).Error
	})
}
