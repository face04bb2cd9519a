// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bantay/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	TindahanHandler   *handler.TindahanHandler
	InspectionHandler *handler.InspectionHandler
	ReportHandler     *handler.ReportHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	tindahanHandler   *handler.TindahanHandler
	inspectionHandler *handler.InspectionHandler
	reportHandler     *handler.ReportHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		tindahanHandler:   params.TindahanHandler,
		inspectionHandler: params.InspectionHandler,
		reportHandler:     params.ReportHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Tindahan registration routes
	tindahanGroup := e.Group("/tindahan")
	{
		tindahanGroup.POST("", r.tindahanHandler.Register)
		tindahanGroup.GET("", r.tindahanHandler.List)
		tindahanGroup.GET("/name/:businessName", r.tindahanHandler.GetByName)
		tindahanGroup.GET("/:id", r.tindahanHandler.Get)
		tindahanGroup.PUT("/:id", r.tindahanHandler.Update)
		tindahanGroup.DELETE("/:id", r.tindahanHandler.Deactivate)
		tindahanGroup.GET("/:id/qrcode", r.tindahanHandler.PermitQR)
	}

	// Inspection routes, with violations nested under their inspection
	inspectionGroup := e.Group("/inspections")
	{
		inspectionGroup.POST("", r.inspectionHandler.Schedule)
		inspectionGroup.GET("", r.inspectionHandler.List)
		inspectionGroup.GET("/:id", r.inspectionHandler.Get)
		inspectionGroup.PUT("/:id", r.inspectionHandler.Update)
		inspectionGroup.POST("/:id/violations", r.inspectionHandler.RecordViolation)
		inspectionGroup.GET("/:id/violations", r.inspectionHandler.ListViolations)
	}

	// Violation resolution is addressed by the violation's own id
	e.PUT("/violations/:id/resolve", r.inspectionHandler.ResolveViolation)

	// Compliance report routes
	reportGroup := e.Group("/reports")
	{
		reportGroup.POST("", r.reportHandler.File)
		reportGroup.GET("", r.reportHandler.List)
		reportGroup.GET("/:id", r.reportHandler.Get)
		reportGroup.GET("/:id/export", r.reportHandler.Export)
	}
}
