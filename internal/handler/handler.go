package handler

import (
	"vault-pulse/internal/service"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

type Handler struct {
	tracer  trace.Tracer
	monitor *service.MonitorService
}

func New(tracer trace.Tracer, monitor *service.MonitorService) *Handler {
	return &Handler{
		tracer:  tracer,
		monitor: monitor,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)
	r.GET("/api/status", h.GetStatus)
	r.GET("/api/report", h.GetReport)
}
