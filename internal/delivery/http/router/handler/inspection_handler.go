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

// InspectionHandler holds dependencies for inspection and violation handlers.
type InspectionHandler struct {
	uc     usecase.InspectionUsecase
	logger *slog.Logger
}

// NewInspectionHandler is the constructor for InspectionHandler, injected by Fx.
func NewInspectionHandler(uc usecase.InspectionUsecase, logger *slog.Logger) *InspectionHandler {
	return &InspectionHandler{
		uc:     uc,
		logger: logger,
	}
}

type scheduleInspectionRequest struct {
	TindahanID     uuid.UUID `json:"tindahan_id" validate:"required"`
	InspectionType string    `json:"inspection_type" validate:"required"`
	InspectorName  string    `json:"inspector_name" validate:"required,max=100"`
	InspectionDate time.Time `json:"inspection_date" validate:"required"`
	Notes          *string   `json:"notes"`
}

type updateInspectionRequest struct {
	InspectionType *string    `json:"inspection_type"`
	InspectorName  *string    `json:"inspector_name" validate:"omitempty,max=100"`
	InspectionDate *time.Time `json:"inspection_date"`
	Status         *string    `json:"status"`
	Notes          *string    `json:"notes"`
}

type recordViolationRequest struct {
	ViolationType string `json:"violation_type" validate:"required"`
	Description   string `json:"description" validate:"required"`
	Severity      int    `json:"severity" validate:"required,min=1,max=5"`
}

type resolveViolationRequest struct {
	ResolutionNotes string     `json:"resolution_notes" validate:"required"`
	ResolutionDate  *time.Time `json:"resolution_date"`
}

type inspectionResponse struct {
	ID             uuid.UUID            `json:"id"`
	TindahanID     uuid.UUID            `json:"tindahan_id"`
	InspectionType string               `json:"inspection_type"`
	InspectorName  string               `json:"inspector_name"`
	InspectionDate time.Time            `json:"inspection_date"`
	Status         string               `json:"status"`
	Notes          *string              `json:"notes"`
	Violations     []*violationResponse `json:"violations,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

type violationResponse struct {
	ID              uuid.UUID  `json:"id"`
	InspectionID    uuid.UUID  `json:"inspection_id"`
	ViolationType   string     `json:"violation_type"`
	Description     string     `json:"description"`
	Severity        int        `json:"severity"`
	IsResolved      bool       `json:"is_resolved"`
	ResolutionNotes *string    `json:"resolution_notes"`
	ResolutionDate  *time.Time `json:"resolution_date"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func toInspectionResponse(inspection *entity.Inspection) *inspectionResponse {
	violations := make([]*violationResponse, 0, len(inspection.Violations))
	for _, violation := range inspection.Violations {
		violations = append(violations, toViolationResponse(violation))
	}

	return &inspectionResponse{
		ID:             inspection.ID,
		TindahanID:     inspection.TindahanID,
		InspectionType: inspection.InspectionType.String(),
		InspectorName:  inspection.InspectorName,
		InspectionDate: inspection.InspectionDate,
		Status:         inspection.Status.String(),
		Notes:          inspection.Notes,
		Violations:     violations,
		CreatedAt:      inspection.CreatedAt,
		UpdatedAt:      inspection.UpdatedAt,
	}
}

func toViolationResponse(violation *entity.Violation) *violationResponse {
	return &violationResponse{
		ID:              violation.ID,
		InspectionID:    violation.InspectionID,
		ViolationType:   violation.ViolationType.String(),
		Description:     violation.Description,
		Severity:        violation.Severity,
		IsResolved:      violation.IsResolved,
		ResolutionNotes: violation.ResolutionNotes,
		ResolutionDate:  violation.ResolutionDate,
		CreatedAt:       violation.CreatedAt,
		UpdatedAt:       violation.UpdatedAt,
	}
}

// Schedule handles scheduling a new inspection.
func (h *InspectionHandler) Schedule(c echo.Context) error {
	var req scheduleInspectionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid inspection input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	inspectionType := entity.InspectionType(req.InspectionType)
	if !inspectionType.IsValid() {
		return response.BadRequest(c, "INVALID_INSPECTION_TYPE", "Unknown inspection type")
	}

	inspection, err := h.uc.Schedule(c.Request().Context(), &usecase.ScheduleInspectionInput{
		TindahanID:     req.TindahanID,
		InspectionType: inspectionType,
		InspectorName:  req.InspectorName,
		InspectionDate: req.InspectionDate,
		Notes:          req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toInspectionResponse(inspection), "Inspection scheduled successfully")
}

// List handles inspection listing with offset pagination and an optional
// tindahan filter.
func (h *InspectionHandler) List(c echo.Context) error {
	skip, err := intQueryParam(c, "skip")
	if err != nil {
		return response.BadRequest(c, "INVALID_PAGINATION", "skip must be an integer")
	}
	limit, err := intQueryParam(c, "limit")
	if err != nil {
		return response.BadRequest(c, "INVALID_PAGINATION", "limit must be an integer")
	}
	params := repository.ListParams{Skip: skip, Limit: limit}.Normalize()

	input := &usecase.ListInspectionsInput{
		Skip:  params.Skip,
		Limit: params.Limit,
	}
	if raw := c.QueryParam("tindahan_id"); raw != "" {
		tindahanID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "tindahan_id must be a UUID")
		}
		input.TindahanID = &tindahanID
	}

	inspections, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]*inspectionResponse, 0, len(inspections))
	for _, inspection := range inspections {
		items = append(items, toInspectionResponse(inspection))
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"items":      items,
		"pagination": util.NewPagination(params.Skip, params.Limit, len(items)),
	}, "")
}

// Get handles fetching a single inspection with its violations.
func (h *InspectionHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Inspection ID must be a UUID")
	}

	inspection, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toInspectionResponse(inspection), "")
}

// Update handles a partial update of an inspection record.
func (h *InspectionHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Inspection ID must be a UUID")
	}

	var req updateInspectionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.UpdateInspectionInput{
		InspectorName:  req.InspectorName,
		InspectionDate: req.InspectionDate,
		Notes:          req.Notes,
	}
	if req.InspectionType != nil {
		inspectionType := entity.InspectionType(*req.InspectionType)
		if !inspectionType.IsValid() {
			return response.BadRequest(c, "INVALID_INSPECTION_TYPE", "Unknown inspection type")
		}
		input.InspectionType = &inspectionType
	}
	if req.Status != nil {
		status := entity.InspectionStatus(*req.Status)
		if !status.IsValid() {
			return response.BadRequest(c, "INVALID_INSPECTION_STATUS", "Unknown inspection status")
		}
		input.Status = &status
	}

	inspection, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toInspectionResponse(inspection), "Inspection updated successfully")
}

// RecordViolation handles logging a violation under an inspection.
func (h *InspectionHandler) RecordViolation(c echo.Context) error {
	inspectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Inspection ID must be a UUID")
	}

	var req recordViolationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid violation input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	violationType := entity.ViolationType(req.ViolationType)
	if !violationType.IsValid() {
		return response.BadRequest(c, "INVALID_VIOLATION_TYPE", "Unknown violation type")
	}

	violation, err := h.uc.RecordViolation(c.Request().Context(), inspectionID, &usecase.RecordViolationInput{
		ViolationType: violationType,
		Description:   req.Description,
		Severity:      req.Severity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toViolationResponse(violation), "Violation recorded successfully")
}

// ListViolations handles listing the violations under an inspection.
func (h *InspectionHandler) ListViolations(c echo.Context) error {
	inspectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Inspection ID must be a UUID")
	}

	violations, err := h.uc.ListViolations(c.Request().Context(), inspectionID)
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]*violationResponse, 0, len(violations))
	for _, violation := range violations {
		items = append(items, toViolationResponse(violation))
	}

	return response.Success(c, http.StatusOK, items, "")
}

// ResolveViolation handles marking a violation resolved.
func (h *InspectionHandler) ResolveViolation(c echo.Context) error {
	violationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Violation ID must be a UUID")
	}

	var req resolveViolationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resolution input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	violation, err := h.uc.ResolveViolation(c.Request().Context(), violationID, &usecase.ResolveViolationInput{
		ResolutionNotes: req.ResolutionNotes,
		ResolutionDate:  req.ResolutionDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toViolationResponse(violation), "Violation resolved successfully")
}
