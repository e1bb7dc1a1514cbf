package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/unigrade/unigrade-api/internal/dto"
	"github.com/unigrade/unigrade-api/internal/observability"
	"github.com/unigrade/unigrade-api/internal/service"
	"github.com/unigrade/unigrade-api/internal/utils"
)

// RankHandler wires rank recompute routes.
type RankHandler struct {
	service   service.RankService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewRankHandler constructs the handler.
func NewRankHandler(service service.RankService, validator *validator.Validate, logger zerolog.Logger) *RankHandler {
	return &RankHandler{
		service:   service,
		validator: validator,
		logger:    logger.With().Str("component", "rank_handler").Logger(),
	}
}

// Register attaches rank endpoints to the router group.
func (h *RankHandler) Register(router fiber.Router) {
	router.Post("", h.calculate)
}

func (h *RankHandler) calculate(c *fiber.Ctx) error {
	var payload dto.CalculateRanksRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	entries, err := h.service.CalculateRanks(c.Context(), payload.DepartmentID, payload.Semester)
	if err != nil {
		h.logger.Error().Err(err).Msg("rank recompute failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}

	observability.RankRuns().Inc()
	return utils.SendSuccess(c, "ranks calculated", entries)
}
