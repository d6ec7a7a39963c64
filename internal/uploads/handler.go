package uploads

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-generator/internal/extract"
	"resume-generator/internal/shared/server/respond"
	"resume-generator/internal/shared/telemetry"
	"resume-generator/internal/shared/util"
)

// DefaultMaxUploadBytes caps a resume upload when no limit is configured.
const DefaultMaxUploadBytes = 5 << 20

// Handler turns uploaded resume files into plain text.
type Handler struct {
	maxBytes int64
}

// NewHandler constructs a Handler. A non-positive limit uses the default.
func NewHandler(maxBytes int64) *Handler {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &Handler{maxBytes: maxBytes}
}

type parseResponse struct {
	Text     string `json:"text"`
	MimeType string `json:"mimeType"`
	FileName string `json:"fileName"`
}

// RegisterRoutes attaches upload routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/uploads/parse", h.parse)
}

func (h *Handler) parse(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+1<<20)

	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "file exceeds upload limit", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	if fh.Size <= 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is empty", nil)
		return
	}
	if fh.Size > h.maxBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "file exceeds upload limit", nil)
		return
	}

	name, err := util.SanitizeFileName(fh.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid file name", nil)
		return
	}

	f, err := fh.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unreadable file", nil)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxBytes))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unreadable file", nil)
		return
	}

	text, mime, err := extract.TextFromBytes(c.Request.Context(), data, fh.Header.Get("Content-Type"), name)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupported) {
			respond.Error(c, http.StatusUnsupportedMediaType, "unsupported_type", "file type is not supported", map[string]any{"mimeType": mime})
			return
		}
		telemetry.Warn("uploads.parse.failed", map[string]any{
			"error":      err,
			"file_name":  name,
			"mime":       mime,
			"size_bytes": fh.Size,
			"request_id": c.GetString("requestId"),
		})
		respond.Error(c, http.StatusUnprocessableEntity, "extract_failed", "could not read text from file", nil)
		return
	}

	telemetry.Info("uploads.parse.ok", map[string]any{
		"file_name":  name,
		"mime":       mime,
		"size_bytes": fh.Size,
		"chars":      len(text),
	})
	respond.OK(c, parseResponse{Text: strings.TrimSpace(text), MimeType: mime, FileName: name})
}
