package handler

import (
	"errors"
	"net/http"
	"strings"

	"vault-pulse/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// GetStatus godoc
// @Summary      Get the latest vault status
// @Description  Returns the latest extracted vault and market snapshot
// @Tags         status
// @Produce      json
// @Param        history  query  bool  false  "Include look-back aggregates"  default(false)
// @Success      200  {object}  domain.VaultStatus
// @Failure      502  {object}  map[string]string
// @Router       /api/status [get]
func (h *Handler) GetStatus(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-status")
	defer span.End()

	includeHistory := wantHistory(c)
	span.SetAttributes(attribute.Bool("history", includeHistory))

	status, err := h.monitor.GetStatus(ctx, includeHistory)
	if err != nil {
		c.JSON(upstreamStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, status)
}

// GetReport godoc
// @Summary      Get the rendered status report
// @Description  Returns the Telegram-Markdown report for the current status
// @Tags         status
// @Produce      plain
// @Param        history  query  bool  false  "Include look-back aggregates"  default(false)
// @Success      200  {string}  string
// @Failure      502  {object}  map[string]string
// @Router       /api/report [get]
func (h *Handler) GetReport(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-report")
	defer span.End()

	includeHistory := wantHistory(c)
	span.SetAttributes(attribute.Bool("history", includeHistory))

	message, err := h.monitor.BuildReport(ctx, includeHistory)
	if err != nil {
		c.JSON(upstreamStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.String(http.StatusOK, message)
}

func wantHistory(c *gin.Context) bool {
	return strings.EqualFold(c.Query("history"), "true")
}

func upstreamStatusCode(err error) int {
	var transport *domain.TransportError
	var remote *domain.RemoteQueryError
	var missing *domain.MissingVaultDataError
	if errors.As(err, &transport) || errors.As(err, &remote) || errors.As(err, &missing) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
