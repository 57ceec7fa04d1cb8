package analysis

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"legallens/internal/shared/server/respond"
)

// FallbackHeader marks responses whose summary came from the plain-text fallback.
const FallbackHeader = "X-Analysis-Fallback"

// Handler wires HTTP handlers to the analysis service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
}

func (h *Handler) analyze(c *gin.Context) {
	if h.Svc.LLM != nil {
		c.Set("provider", h.Svc.LLM.Name())
	}

	// The key is checked before the body so a missing key wins for any content.
	if err := h.Svc.Ready(); err != nil {
		respond.Error(c, http.StatusBadRequest, "config_error", err.Error())
		return
	}

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "payload_too_large", tooLargeMessage)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", invalidBodyMessage)
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", emptyContentMessage)
		return
	}

	out, err := h.Svc.Analyze(c.Request.Context(), req.Content)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyContent):
			respond.Error(c, http.StatusBadRequest, "validation_error", emptyContentMessage)
		case errors.Is(err, ErrNotConfigured):
			respond.Error(c, http.StatusBadRequest, "config_error", err.Error())
		default:
			msg := strings.TrimSpace(err.Error())
			if msg == "" {
				msg = GenericFailureMessage
			}
			respond.Error(c, http.StatusInternalServerError, "provider_error", msg)
		}
		return
	}

	c.Set("parseFallback", out.Fallback)
	if out.Fallback {
		c.Header(FallbackHeader, "true")
	}
	respond.OK(c, out.Result)
}
