package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bantay/internal/delivery/http/validator"
	"bantay/internal/domain/entity"
	domainerrors "bantay/internal/domain/errors"
	"bantay/internal/domain/repository"
	mockRepo "bantay/internal/mocks/repository"
	mockService "bantay/internal/mocks/service"
	"bantay/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// tindahanHandlerFixtures wires the handler against the real service with
// mocked repositories.
type tindahanHandlerFixtures struct {
	echo           *echo.Echo
	handler        *TindahanHandler
	tindahanRepo   *mockRepo.MockTindahanRepository
	phoneValidator *mockService.MockPhoneValidator
	qrcodeService  *mockService.MockQRCodeService
}

func createTestTindahanHandler(t *testing.T) tindahanHandlerFixtures {
	tindahanRepo := mockRepo.NewMockTindahanRepository(t)
	phoneValidator := mockService.NewMockPhoneValidator(t)
	qrcodeService := mockService.NewMockQRCodeService(t)
	service := impl.NewTindahanService(tindahanRepo, phoneValidator, qrcodeService)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := echo.New()
	e.Validator = validator.New()

	return tindahanHandlerFixtures{
		echo:           e,
		handler:        NewTindahanHandler(service, logger),
		tindahanRepo:   tindahanRepo,
		phoneValidator: phoneValidator,
		qrcodeService:  qrcodeService,
	}
}

func fakeActiveTindahan(id uuid.UUID) *entity.Tindahan {
	return &entity.Tindahan{
		ID:               id,
		BusinessName:     "Aling Nena's Store",
		OwnerName:        "Nena Reyes",
		BusinessType:     entity.BusinessTypeTindahan,
		Address:          "123 Mabini St",
		BarangayZone:     "Zone 3",
		IsActive:         true,
		ComplianceStatus: entity.ComplianceStatusCompliant,
	}
}

func TestTindahanHandler_Register_Success(t *testing.T) {
	fx := createTestTindahanHandler(t)

	fx.tindahanRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Tindahan")).
		Return(nil)

	body := `{
		"business_name": "Aling Nena's Store",
		"owner_name": "Nena Reyes",
		"business_type": "tindahan",
		"address": "123 Mabini St",
		"barangay_zone": "Zone 3"
	}`
	req := httptest.NewRequest(http.MethodPost, "/tindahan", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	require.NoError(t, fx.handler.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, `"success":true`)
	assert.Contains(t, responseBody, "Aling Nena's Store")
	assert.Contains(t, responseBody, `"compliance_status":"compliant"`)
	assert.Contains(t, responseBody, `"is_active":true`)
}

func TestTindahanHandler_Register_MissingRequiredFields(t *testing.T) {
	fx := createTestTindahanHandler(t)

	body := `{"owner_name": "Nena Reyes"}`
	req := httptest.NewRequest(http.MethodPost, "/tindahan", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	err := fx.handler.Register(c)

	require.Error(t, err)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestTindahanHandler_Register_UnknownBusinessType(t *testing.T) {
	fx := createTestTindahanHandler(t)

	body := `{
		"business_name": "Aling Nena's Store",
		"owner_name": "Nena Reyes",
		"business_type": "mall",
		"address": "123 Mabini St",
		"barangay_zone": "Zone 3"
	}`
	req := httptest.NewRequest(http.MethodPost, "/tindahan", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	require.NoError(t, fx.handler.Register(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_BUSINESS_TYPE")
}

func TestTindahanHandler_List_DefaultsToActiveOnly(t *testing.T) {
	fx := createTestTindahanHandler(t)

	id := uuid.New()
	fx.tindahanRepo.EXPECT().
		List(mock.Anything, repository.ListParams{Skip: 0, Limit: repository.DefaultListLimit}, true).
		Return([]*entity.Tindahan{fakeActiveTindahan(id)}, nil)

	req := httptest.NewRequest(http.MethodGet, "/tindahan", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	require.NoError(t, fx.handler.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), id.String())
}

func TestTindahanHandler_List_ExplicitActiveOnlyFalse(t *testing.T) {
	fx := createTestTindahanHandler(t)

	inactive := fakeActiveTindahan(uuid.New())
	inactive.IsActive = false
	fx.tindahanRepo.EXPECT().
		List(mock.Anything, repository.ListParams{Skip: 0, Limit: repository.DefaultListLimit}, false).
		Return([]*entity.Tindahan{inactive}, nil)

	req := httptest.NewRequest(http.MethodGet, "/tindahan?active_only=false", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	require.NoError(t, fx.handler.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"is_active":false`)
}

func TestTindahanHandler_List_NonNumericLimit(t *testing.T) {
	fx := createTestTindahanHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/tindahan?limit=abc", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	require.NoError(t, fx.handler.List(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_PAGINATION")
}

func TestTindahanHandler_List_MalformedActiveOnly(t *testing.T) {
	fx := createTestTindahanHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/tindahan?active_only=yes-please", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	require.NoError(t, fx.handler.List(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_QUERY")
}

func TestTindahanHandler_Get_InvalidID(t *testing.T) {
	fx := createTestTindahanHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/tindahan/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, fx.handler.Get(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestTindahanHandler_Deactivate_NotFound(t *testing.T) {
	fx := createTestTindahanHandler(t)

	id := uuid.New()
	fx.tindahanRepo.EXPECT().
		Deactivate(mock.Anything, id).
		Return(repository.ErrTindahanNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/tindahan/"+id.String(), nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	err := fx.handler.Deactivate(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTindahanNotFound)
}

func TestTindahanHandler_PermitQR_Success(t *testing.T) {
	fx := createTestTindahanHandler(t)

	id := uuid.New()
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.tindahanRepo.EXPECT().
		FindByID(mock.Anything, id).
		Return(fakeActiveTindahan(id), nil)
	fx.qrcodeService.EXPECT().GeneratePermitQR(id).Return(png, nil)

	req := httptest.NewRequest(http.MethodGet, "/tindahan/"+id.String()+"/qrcode", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, fx.handler.PermitQR(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}
