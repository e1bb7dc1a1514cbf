package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/unigrade/unigrade-api/internal/dto"
	"github.com/unigrade/unigrade-api/internal/service"
	"github.com/unigrade/unigrade-api/internal/utils"
)

type stubResultService struct {
	bundle     dto.ResultBundle
	result     dto.ResultResponse
	transcript []dto.ResultResponse
	err        error
}

func (s *stubResultService) CalculateSGPA(context.Context, uint, int) (float64, error) {
	return 0, s.err
}

func (s *stubResultService) CalculateCGPA(context.Context, uint, int) (float64, error) {
	return 0, s.err
}

func (s *stubResultService) CalculatePercentage(context.Context, uint, int) (service.PercentageBreakdown, error) {
	return service.PercentageBreakdown{}, s.err
}

func (s *stubResultService) OverallStatus(context.Context, uint, int) (string, error) {
	return "", s.err
}

func (s *stubResultService) GenerateResult(context.Context, uint, int) (dto.ResultBundle, error) {
	return s.bundle, s.err
}

func (s *stubResultService) GetResult(context.Context, uint, int) (dto.ResultResponse, error) {
	return s.result, s.err
}

func (s *stubResultService) Transcript(context.Context, uint) ([]dto.ResultResponse, error) {
	return s.transcript, s.err
}

func newTestApp(svc service.ResultService) *fiber.App {
	app := fiber.New()
	h := NewResultHandler(svc, validator.New(validator.WithRequiredStructEnabled()), zerolog.New(io.Discard))
	h.Register(app.Group("/results"))
	h.RegisterTranscript(app.Group("/students"))
	return app
}

func TestResultHandlerGenerateSuccess(t *testing.T) {
	stub := &stubResultService{bundle: dto.ResultBundle{Semester: 1, Result: dto.ResultResponse{SGPA: 3.5}}}
	app := newTestApp(stub)

	body, err := json.Marshal(dto.GenerateResultRequest{StudentID: 1, Semester: 1})
	require.NoError(t, err)
	req := httptest.NewRequest(fiber.MethodPost, "/results/generate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope utils.APIResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.True(t, envelope.Success)
	require.Equal(t, "result generated", envelope.Message)
}

func TestResultHandlerGenerateValidation(t *testing.T) {
	app := newTestApp(&stubResultService{})

	req := httptest.NewRequest(fiber.MethodPost, "/results/generate", bytes.NewReader([]byte(`{"student_id":0,"semester":9}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestResultHandlerGenerateNoMarks(t *testing.T) {
	app := newTestApp(&stubResultService{err: service.ErrNoMarks})

	body, err := json.Marshal(dto.GenerateResultRequest{StudentID: 1, Semester: 1})
	require.NoError(t, err)
	req := httptest.NewRequest(fiber.MethodPost, "/results/generate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var envelope utils.APIResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.False(t, envelope.Success)
	require.Equal(t, service.ErrNoMarks.Error(), envelope.Message)
}

func TestResultHandlerGetNotFound(t *testing.T) {
	app := newTestApp(&stubResultService{err: service.ErrResultNotFound})

	req := httptest.NewRequest(fiber.MethodGet, "/results/1/1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestResultHandlerGetBadParams(t *testing.T) {
	app := newTestApp(&stubResultService{})

	req := httptest.NewRequest(fiber.MethodGet, "/results/abc/1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestResultHandlerTranscript(t *testing.T) {
	stub := &stubResultService{transcript: []dto.ResultResponse{{Semester: 1}, {Semester: 2}}}
	app := newTestApp(stub)

	req := httptest.NewRequest(fiber.MethodGet, "/students/1/transcript", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}
