package service

import (
	"context"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/unigrade/unigrade-api/internal/dto"
	"github.com/unigrade/unigrade-api/internal/repository"
)

// RankService recomputes cohort ranks from stored results.
type RankService interface {
	CalculateRanks(ctx context.Context, departmentID uint, semester int) ([]dto.RankEntry, error)
}

type rankService struct {
	results repository.ResultRepository
	logger  zerolog.Logger
}

// NewRankService constructs the rank assigner.
func NewRankService(results repository.ResultRepository, logger zerolog.Logger) RankService {
	return &rankService{
		results: results,
		logger:  logger.With().Str("component", "rank_service").Logger(),
	}
}

// CalculateRanks assigns dense ranks 1,2,3,... over a department's
// semester results ordered by CGPA descending. Every run is a full
// recompute and overwrite; equal CGPAs keep whatever order the backend
// returned them in.
func (s *rankService) CalculateRanks(ctx context.Context, departmentID uint, semester int) ([]dto.RankEntry, error) {
	tracer := otel.Tracer("github.com/unigrade/unigrade-api/internal/service/rank")
	ctx, span := tracer.Start(ctx, "rank.calculate")
	span.SetAttributes(
		attribute.Int64("rank.department_id", int64(departmentID)),
		attribute.Int("rank.semester", semester),
	)
	defer span.End()

	cohort, err := s.results.ListCohort(ctx, departmentID, semester)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "cohort_lookup_failed")
		return nil, err
	}

	entries := make([]dto.RankEntry, 0, len(cohort))
	for i, result := range cohort {
		rank := i + 1
		if err := s.results.UpdateRank(ctx, result.ID, rank); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "rank_update_failed")
			return nil, err
		}

		entries = append(entries, dto.RankEntry{
			StudentID: result.StudentID,
			Semester:  result.Semester,
			CGPA:      result.CGPA,
			Rank:      rank,
		})
	}

	s.logger.Info().
		Uint("department_id", departmentID).
		Int("semester", semester).
		Int("ranked", len(entries)).
		Msg("cohort ranks recomputed")

	span.SetAttributes(attribute.Int("rank.cohort_size", len(entries)))
	return entries, nil
}
