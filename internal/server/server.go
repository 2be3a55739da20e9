// Package server exposes the scorecard pipeline over HTTP.
//
//	GET  /api/v1/health
//	POST /api/v1/scorecards  multipart "file" (PDF/TXT) or form "text"; returns the xlsx
//	POST /api/v1/payload     same inputs; returns the model payload text
package server

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/joseph-ayodele/om-scorecard/internal/common"
	"github.com/joseph-ayodele/om-scorecard/internal/deal"
	"github.com/joseph-ayodele/om-scorecard/internal/extract"
	"github.com/joseph-ayodele/om-scorecard/internal/pipeline"
)

// maxUploadSize bounds an uploaded OM (50MB).
const maxUploadSize = 50 << 20

// Processor is the pipeline surface the handlers need.
type Processor interface {
	Payload(ctx context.Context, src extract.Source) (string, error)
	BuildTo(ctx context.Context, src extract.Source, w io.Writer) (pipeline.Result, error)
	Filename(fields deal.Fields) string
}

// Handler holds the dependencies shared by every route.
type Handler struct {
	proc    Processor
	logger  *slog.Logger
	model   string
	started time.Time
}

func NewHandler(proc Processor, model string, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{proc: proc, logger: logger, model: model, started: time.Now()}
}

// Router wires the routes onto a fresh engine.
func Router(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), AccessLog(h.logger))

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", h.Health)
		v1.POST("/scorecards", h.CreateScorecard)
		v1.POST("/payload", h.Payload)
	}
	return r
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func (h *Handler) fail(c *gin.Context, err error) {
	code := common.Code(err)
	rid := common.RequestIDFromContext(c.Request.Context())
	h.logger.Error("server.request.failed", "req_id", rid, "path", c.FullPath(), "code", code.String(), "err", err)
	c.AbortWithStatusJSON(common.HTTPStatus(code), ErrorResponse{
		Error:     code.String(),
		Message:   err.Error(),
		RequestID: rid,
	})
}
