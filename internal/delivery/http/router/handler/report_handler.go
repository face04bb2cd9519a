package handler

import (
	"fmt"
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

// ReportHandler holds dependencies for compliance report handlers.
type ReportHandler struct {
	uc     usecase.ReportUsecase
	logger *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler, injected by Fx.
func NewReportHandler(uc usecase.ReportUsecase, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		uc:     uc,
		logger: logger,
	}
}

type fileReportRequest struct {
	ReportType        string                    `json:"report_type" validate:"required"`
	ReportPeriodStart time.Time                 `json:"report_period_start" validate:"required"`
	ReportPeriodEnd   time.Time                 `json:"report_period_end" validate:"required"`
	BarangayZone      *string                   `json:"barangay_zone" validate:"omitempty,max=50"`
	GeneratedBy       string                    `json:"generated_by" validate:"required,max=100"`
	Summary           string                    `json:"summary" validate:"required"`
	Recommendations   *string                   `json:"recommendations"`
	Metrics           *entity.ComplianceMetrics `json:"metrics"`
}

type reportResponse struct {
	ID                uuid.UUID                 `json:"id"`
	ReferenceNumber   string                    `json:"reference_number"`
	ReportType        string                    `json:"report_type"`
	ReportPeriodStart time.Time                 `json:"report_period_start"`
	ReportPeriodEnd   time.Time                 `json:"report_period_end"`
	BarangayZone      *string                   `json:"barangay_zone"`
	GeneratedBy       string                    `json:"generated_by"`
	Summary           string                    `json:"summary"`
	Recommendations   *string                   `json:"recommendations"`
	Metrics           *entity.ComplianceMetrics `json:"metrics"`
	CreatedAt         time.Time                 `json:"created_at"`
	UpdatedAt         time.Time                 `json:"updated_at"`
}

func toReportResponse(report *entity.ComplianceReport) *reportResponse {
	return &reportResponse{
		ID:                report.ID,
		ReferenceNumber:   report.ReferenceNumber,
		ReportType:        report.ReportType.String(),
		ReportPeriodStart: report.ReportPeriodStart,
		ReportPeriodEnd:   report.ReportPeriodEnd,
		BarangayZone:      report.BarangayZone,
		GeneratedBy:       report.GeneratedBy,
		Summary:           report.Summary,
		Recommendations:   report.Recommendations,
		Metrics:           report.Metrics,
		CreatedAt:         report.CreatedAt,
		UpdatedAt:         report.UpdatedAt,
	}
}

// File handles filing a new compliance report.
func (h *ReportHandler) File(c echo.Context) error {
	var req fileReportRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid report input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	reportType := entity.ReportType(req.ReportType)
	if !reportType.IsValid() {
		return response.BadRequest(c, "INVALID_REPORT_TYPE", "Unknown report type")
	}

	report, err := h.uc.File(c.Request().Context(), &usecase.FileReportInput{
		ReportType:        reportType,
		ReportPeriodStart: req.ReportPeriodStart,
		ReportPeriodEnd:   req.ReportPeriodEnd,
		BarangayZone:      req.BarangayZone,
		GeneratedBy:       req.GeneratedBy,
		Summary:           req.Summary,
		Recommendations:   req.Recommendations,
		Metrics:           req.Metrics,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toReportResponse(report), "Report filed successfully")
}

// List handles report listing with offset pagination.
func (h *ReportHandler) List(c echo.Context) error {
	skip, err := intQueryParam(c, "skip")
	if err != nil {
		return response.BadRequest(c, "INVALID_PAGINATION", "skip must be an integer")
	}
	limit, err := intQueryParam(c, "limit")
	if err != nil {
		return response.BadRequest(c, "INVALID_PAGINATION", "limit must be an integer")
	}
	params := repository.ListParams{Skip: skip, Limit: limit}.Normalize()

	reports, err := h.uc.List(c.Request().Context(), &usecase.ListReportsInput{
		Skip:  params.Skip,
		Limit: params.Limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]*reportResponse, 0, len(reports))
	for _, report := range reports {
		items = append(items, toReportResponse(report))
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"items":      items,
		"pagination": util.NewPagination(params.Skip, params.Limit, len(items)),
	}, "")
}

// Get handles fetching a single report by ID.
func (h *ReportHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Report ID must be a UUID")
	}

	report, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toReportResponse(report), "")
}

// Export streams a report as an XLSX attachment.
func (h *ReportHandler) Export(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Report ID must be a UUID")
	}

	workbook, err := h.uc.Export(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="report-%s.xlsx"`, id))

	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", workbook)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
