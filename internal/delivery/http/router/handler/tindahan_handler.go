// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"bantay/internal/delivery/http/response"
	"bantay/internal/domain/entity"
	"bantay/internal/domain/repository"
	"bantay/internal/usecase"
	"bantay/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TindahanHandler holds dependencies for tindahan-related handlers.
type TindahanHandler struct {
	uc     usecase.TindahanUsecase
	logger *slog.Logger
}

// NewTindahanHandler is the constructor for TindahanHandler, injected by Fx.
func NewTindahanHandler(uc usecase.TindahanUsecase, logger *slog.Logger) *TindahanHandler {
	return &TindahanHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerTindahanRequest struct {
	BusinessName         string     `json:"business_name" validate:"required,max=100"`
	OwnerName            string     `json:"owner_name" validate:"required,max=100"`
	BusinessType         string     `json:"business_type" validate:"required"`
	Address              string     `json:"address" validate:"required,max=255"`
	ContactNumber        *string    `json:"contact_number" validate:"omitempty,max=20"`
	BarangayZone         string     `json:"barangay_zone" validate:"required,max=50"`
	BusinessPermitNumber *string    `json:"business_permit_number" validate:"omitempty,max=50"`
	PermitIssuedDate     *time.Time `json:"permit_issued_date"`
	PermitExpiryDate     *time.Time `json:"permit_expiry_date"`
}

type updateTindahanRequest struct {
	BusinessName         *string    `json:"business_name" validate:"omitempty,max=100"`
	OwnerName            *string    `json:"owner_name" validate:"omitempty,max=100"`
	BusinessType         *string    `json:"business_type"`
	Address              *string    `json:"address" validate:"omitempty,max=255"`
	ContactNumber        *string    `json:"contact_number" validate:"omitempty,max=20"`
	BarangayZone         *string    `json:"barangay_zone" validate:"omitempty,max=50"`
	BusinessPermitNumber *string    `json:"business_permit_number" validate:"omitempty,max=50"`
	PermitIssuedDate     *time.Time `json:"permit_issued_date"`
	PermitExpiryDate     *time.Time `json:"permit_expiry_date"`
	ComplianceStatus     *string    `json:"compliance_status"`
	IsActive             *bool      `json:"is_active"`
}

type tindahanResponse struct {
	ID                   uuid.UUID  `json:"id"`
	BusinessName         string     `json:"business_name"`
	OwnerName            string     `json:"owner_name"`
	BusinessType         string     `json:"business_type"`
	Address              string     `json:"address"`
	ContactNumber        *string    `json:"contact_number"`
	BarangayZone         string     `json:"barangay_zone"`
	IsActive             bool       `json:"is_active"`
	BusinessPermitNumber *string    `json:"business_permit_number"`
	PermitIssuedDate     *time.Time `json:"permit_issued_date"`
	PermitExpiryDate     *time.Time `json:"permit_expiry_date"`
	ComplianceStatus     string     `json:"compliance_status"`
	LastInspectionDate   *time.Time `json:"last_inspection_date"`
	NextInspectionDue    *time.Time `json:"next_inspection_due"`
	RegisteredAt         time.Time  `json:"registered_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

func toTindahanResponse(tindahan *entity.Tindahan) *tindahanResponse {
	return &tindahanResponse{
		ID:                   tindahan.ID,
		BusinessName:         tindahan.BusinessName,
		OwnerName:            tindahan.OwnerName,
		BusinessType:         tindahan.BusinessType.String(),
		Address:              tindahan.Address,
		ContactNumber:        tindahan.ContactNumber,
		BarangayZone:         tindahan.BarangayZone,
		IsActive:             tindahan.IsActive,
		BusinessPermitNumber: tindahan.BusinessPermitNumber,
		PermitIssuedDate:     tindahan.PermitIssuedDate,
		PermitExpiryDate:     tindahan.PermitExpiryDate,
		ComplianceStatus:     tindahan.ComplianceStatus.String(),
		LastInspectionDate:   tindahan.LastInspectionDate,
		NextInspectionDue:    tindahan.NextInspectionDue,
		RegisteredAt:         tindahan.RegisteredAt,
		UpdatedAt:            tindahan.UpdatedAt,
	}
}

// Register handles the tindahan registration request.
func (h *TindahanHandler) Register(c echo.Context) error {
	var req registerTindahanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	businessType := entity.BusinessType(req.BusinessType)
	if !businessType.IsValid() {
		return response.BadRequest(c, "INVALID_BUSINESS_TYPE", "Unknown business type")
	}

	tindahan, err := h.uc.Register(c.Request().Context(), &usecase.RegisterTindahanInput{
		BusinessName:         req.BusinessName,
		OwnerName:            req.OwnerName,
		BusinessType:         businessType,
		Address:              req.Address,
		ContactNumber:        req.ContactNumber,
		BarangayZone:         req.BarangayZone,
		BusinessPermitNumber: req.BusinessPermitNumber,
		PermitIssuedDate:     req.PermitIssuedDate,
		PermitExpiryDate:     req.PermitExpiryDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toTindahanResponse(tindahan), "Tindahan registered successfully")
}

// List handles tindahan listing with offset pagination. Deactivated records
// are excluded unless active_only=false is passed explicitly.
func (h *TindahanHandler) List(c echo.Context) error {
	skip, err := intQueryParam(c, "skip")
	if err != nil {
		return response.BadRequest(c, "INVALID_PAGINATION", "skip must be an integer")
	}
	limit, err := intQueryParam(c, "limit")
	if err != nil {
		return response.BadRequest(c, "INVALID_PAGINATION", "limit must be an integer")
	}
	activeOnly, err := boolQueryParam(c, "active_only", true)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "active_only must be a boolean")
	}
	params := repository.ListParams{Skip: skip, Limit: limit}.Normalize()

	tindahanList, err := h.uc.List(c.Request().Context(), &usecase.ListTindahanInput{
		Skip:       params.Skip,
		Limit:      params.Limit,
		ActiveOnly: activeOnly,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]*tindahanResponse, 0, len(tindahanList))
	for _, tindahan := range tindahanList {
		items = append(items, toTindahanResponse(tindahan))
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"items":      items,
		"pagination": util.NewPagination(params.Skip, params.Limit, len(items)),
	}, "")
}

// Get handles fetching a single tindahan by ID.
func (h *TindahanHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Tindahan ID must be a UUID")
	}

	tindahan, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTindahanResponse(tindahan), "")
}

// GetByName handles fetching a single tindahan by its unique business name.
func (h *TindahanHandler) GetByName(c echo.Context) error {
	businessName := c.Param("businessName")
	if businessName == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Business name is required")
	}

	tindahan, err := h.uc.GetByName(c.Request().Context(), businessName)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTindahanResponse(tindahan), "")
}

// Update handles a partial update of a tindahan record.
func (h *TindahanHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Tindahan ID must be a UUID")
	}

	var req updateTindahanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.UpdateTindahanInput{
		BusinessName:         req.BusinessName,
		OwnerName:            req.OwnerName,
		Address:              req.Address,
		ContactNumber:        req.ContactNumber,
		BarangayZone:         req.BarangayZone,
		BusinessPermitNumber: req.BusinessPermitNumber,
		PermitIssuedDate:     req.PermitIssuedDate,
		PermitExpiryDate:     req.PermitExpiryDate,
		IsActive:             req.IsActive,
	}
	if req.BusinessType != nil {
		businessType := entity.BusinessType(*req.BusinessType)
		if !businessType.IsValid() {
			return response.BadRequest(c, "INVALID_BUSINESS_TYPE", "Unknown business type")
		}
		input.BusinessType = &businessType
	}
	if req.ComplianceStatus != nil {
		status := entity.ComplianceStatus(*req.ComplianceStatus)
		if !status.IsValid() {
			return response.BadRequest(c, "INVALID_COMPLIANCE_STATUS", "Unknown compliance status")
		}
		input.ComplianceStatus = &status
	}

	tindahan, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTindahanResponse(tindahan), "Tindahan updated successfully")
}

// Deactivate handles the soft delete of a tindahan record.
func (h *TindahanHandler) Deactivate(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Tindahan ID must be a UUID")
	}

	if err := h.uc.Deactivate(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": id.String()}, "Tindahan deactivated successfully")
}

// PermitQR renders the PNG permit QR code for a tindahan.
func (h *TindahanHandler) PermitQR(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Tindahan ID must be a UUID")
	}

	png, err := h.uc.PermitQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
