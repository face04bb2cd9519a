package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bantay/internal/delivery/http/validator"
	mockRepo "bantay/internal/mocks/repository"
	"bantay/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type inspectionHandlerFixtures struct {
	echo           *echo.Echo
	handler        *InspectionHandler
	inspectionRepo *mockRepo.MockInspectionRepository
	violationRepo  *mockRepo.MockViolationRepository
}

func createTestInspectionHandler(t *testing.T) inspectionHandlerFixtures {
	inspectionRepo := mockRepo.NewMockInspectionRepository(t)
	violationRepo := mockRepo.NewMockViolationRepository(t)
	service := impl.NewInspectionService(inspectionRepo, violationRepo)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := echo.New()
	e.Validator = validator.New()

	return inspectionHandlerFixtures{
		echo:           e,
		handler:        NewInspectionHandler(service, logger),
		inspectionRepo: inspectionRepo,
		violationRepo:  violationRepo,
	}
}

func TestInspectionHandler_Schedule_Success(t *testing.T) {
	fx := createTestInspectionHandler(t)

	fx.inspectionRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Inspection")).
		Return(nil)

	body := `{
		"tindahan_id": "` + uuid.New().String() + `",
		"inspection_type": "routine",
		"inspector_name": "Inspector Cruz",
		"inspection_date": "2026-09-15T09:00:00Z"
	}`
	req := httptest.NewRequest(http.MethodPost, "/inspections", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	require.NoError(t, fx.handler.Schedule(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"scheduled"`)
}

func TestInspectionHandler_List_NonNumericSkip(t *testing.T) {
	fx := createTestInspectionHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/inspections?skip=abc", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	require.NoError(t, fx.handler.List(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_PAGINATION")
}

func TestInspectionHandler_RecordViolation_SeverityOutOfRange(t *testing.T) {
	fx := createTestInspectionHandler(t)

	inspectionID := uuid.New()
	body := `{
		"violation_type": "no_permit",
		"description": "Operating without a permit",
		"severity": 6
	}`
	req := httptest.NewRequest(http.MethodPost, "/inspections/"+inspectionID.String()+"/violations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(inspectionID.String())

	err := fx.handler.RecordViolation(c)

	require.Error(t, err)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestInspectionHandler_RecordViolation_Success(t *testing.T) {
	fx := createTestInspectionHandler(t)

	inspectionID := uuid.New()

	fx.violationRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Violation")).
		Return(nil)

	body := `{
		"violation_type": "unsanitary_conditions",
		"description": "Uncovered food containers",
		"severity": 3
	}`
	req := httptest.NewRequest(http.MethodPost, "/inspections/"+inspectionID.String()+"/violations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(inspectionID.String())

	require.NoError(t, fx.handler.RecordViolation(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"is_resolved":false`)
	assert.Contains(t, rec.Body.String(), inspectionID.String())
}
