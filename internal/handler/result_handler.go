package handler

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/unigrade/unigrade-api/internal/dto"
	"github.com/unigrade/unigrade-api/internal/observability"
	"github.com/unigrade/unigrade-api/internal/service"
	"github.com/unigrade/unigrade-api/internal/utils"
)

// ResultHandler wires result HTTP routes.
type ResultHandler struct {
	service   service.ResultService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewResultHandler constructs the handler.
func NewResultHandler(service service.ResultService, validator *validator.Validate, logger zerolog.Logger) *ResultHandler {
	return &ResultHandler{
		service:   service,
		validator: validator,
		logger:    logger.With().Str("component", "result_handler").Logger(),
	}
}

// Register attaches result endpoints to the router group.
func (h *ResultHandler) Register(router fiber.Router) {
	router.Post("/generate", h.generate)
	router.Get("/:studentID/:semester", h.get)
}

// RegisterTranscript attaches the student transcript endpoint.
func (h *ResultHandler) RegisterTranscript(router fiber.Router) {
	router.Get("/:studentID/transcript", h.transcript)
}

func (h *ResultHandler) generate(c *fiber.Ctx) error {
	var payload dto.GenerateResultRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	bundle, err := h.service.GenerateResult(c.Context(), payload.StudentID, payload.Semester)
	if err != nil {
		outcome := "error"
		if errors.Is(err, service.ErrNoMarks) || errors.Is(err, service.ErrNoCredits) || errors.Is(err, service.ErrNoTotalMarks) {
			outcome = "no_data"
		}
		observability.ResultGenerations().WithLabelValues(outcome).Inc()
		return h.handleError(c, err)
	}

	observability.ResultGenerations().WithLabelValues("success").Inc()
	return utils.SendSuccess(c, "result generated", bundle)
}

func (h *ResultHandler) get(c *fiber.Ctx) error {
	studentID, err := parseUintParam(c, "studentID")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	semester, err := parseIntParam(c, "semester")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := h.service.GetResult(c.Context(), studentID, semester)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "result retrieved", result)
}

func (h *ResultHandler) transcript(c *fiber.Ctx) error {
	studentID, err := parseUintParam(c, "studentID")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	transcript, err := h.service.Transcript(c.Context(), studentID)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "transcript retrieved", transcript)
}

func (h *ResultHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrStudentNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "student not found")
	case errors.Is(err, service.ErrResultNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "result not found")
	case errors.Is(err, service.ErrNoMarks),
		errors.Is(err, service.ErrNoCredits),
		errors.Is(err, service.ErrNoTotalMarks):
		return utils.SendError(c, fiber.StatusUnprocessableEntity, err.Error())
	default:
		h.logger.Error().Err(err).Msg("result request failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}

func parseUintParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		return 0, errors.New("invalid " + name + " parameter")
	}

	return uint(value), nil
}

func parseIntParam(c *fiber.Ctx, name string) (int, error) {
	raw := c.Params(name)
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, errors.New("invalid " + name + " parameter")
	}

	return value, nil
}
