package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/joseph-ayodele/om-scorecard/internal/common"
	"github.com/joseph-ayodele/om-scorecard/internal/extract"
)

const (
	// FieldsHeader carries the normalized fields as compact JSON.
	FieldsHeader = "X-Scorecard-Fields"
	xlsxMIME     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type HealthResponse struct {
	Status string `json:"status"`
	Model  string `json:"model,omitempty"`
	Uptime string `json:"uptime"`
}

// Health reports liveness.
// GET /api/v1/health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
		Model:  h.model,
		Uptime: time.Since(h.started).Round(time.Second).String(),
	})
}

// CreateScorecard builds a scorecard and returns the workbook.
// POST /api/v1/scorecards
func (h *Handler) CreateScorecard(c *gin.Context) {
	src, err := readSource(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	var buf bytes.Buffer
	res, err := h.proc.BuildTo(c.Request.Context(), src, &buf)
	if err != nil {
		h.fail(c, err)
		return
	}
	fields, err := json.Marshal(res.Fields)
	if err != nil {
		h.fail(c, common.Internal("encode fields", err))
		return
	}

	c.Header(FieldsHeader, string(fields))
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": h.proc.Filename(res.Fields),
	}))
	c.Data(http.StatusOK, xlsxMIME, buf.Bytes())
}

type PayloadResponse struct {
	Payload string `json:"payload"`
	Length  int    `json:"length"`
}

// Payload returns the text the model would see.
// POST /api/v1/payload
func (h *Handler) Payload(c *gin.Context) {
	src, err := readSource(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	payload, err := h.proc.Payload(c.Request.Context(), src)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, PayloadResponse{Payload: payload, Length: len(payload)})
}

// readSource takes the multipart "file" part, falling back to the "text"
// form value.
func readSource(c *gin.Context) (extract.Source, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fh, err := c.FormFile("file")
	switch {
	case err == nil:
		f, err := fh.Open()
		if err != nil {
			return nil, common.InvalidArgument("open upload", errors.Join(common.ErrInvalidInput, err))
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, common.InvalidArgument("read upload", errors.Join(common.ErrInvalidInput, err))
		}
		return extract.BytesSource{Name: fh.Filename, Data: data}, nil
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return nil, common.InvalidArgument("upload exceeds 50MB", common.ErrInvalidInput)
		}
	}

	if text := c.PostForm("text"); strings.TrimSpace(text) != "" {
		return extract.TextSource(text), nil
	}
	return nil, common.InvalidArgument("provide a PDF/TXT upload as 'file' or raw text as 'text'", common.ErrInvalidInput)
}
