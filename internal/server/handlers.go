// Package server provides HTTP handlers and server setup for the media categorizer.
package server

import (
	"errors"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"mediacat/internal/classify"
	"mediacat/internal/core"
	"mediacat/internal/observability"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "Simple Media Categorizer"

// Handler holds the HTTP handlers
type Handler struct{}

// NewHandler creates a new handler
func NewHandler() *Handler {
	return &Handler{}
}

// healthResponse keeps the health body's field order stable.
type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Health handles GET /health
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{
		Status:  "healthy",
		Service: ServiceName,
	})
}

// Classify handles POST /classify. The upload's payload bytes are never
// read; the decision uses only the part's Content-Type header and filename.
func (h *Handler) Classify(c echo.Context) error {
	up, err := fileUpload(c.Request())
	if err != nil {
		return handleError(c, err)
	}

	if up.Filename == "" {
		return handleError(c, core.NewEmptyFilenameError())
	}

	result := classify.Classify(up.ContentType, up.Filename)

	slog.Info("processing file", "filename", up.Filename, "content_type", result.ContentType)
	slog.Info("classified upload", "category", result.Category, "media_type", result.MediaType)

	observability.ClassificationsTotal.WithLabelValues(result.MediaType).Inc()

	return c.JSON(http.StatusOK, result)
}

// upload describes the file part of a classify request.
type upload struct {
	Filename    string
	ContentType string
}

// fileUpload scans the multipart stream for the first part named "file"
// that carries a filename parameter. A filename-less part named "file" is a
// plain form value, not an upload. Reading the stream directly keeps an
// empty filename parameter distinguishable from an absent file field, which
// net/http's parsed form folds together.
func fileUpload(r *http.Request) (*upload, error) {
	mr, err := r.MultipartReader()
	if err != nil {
		// Not a multipart request at all: same outcome as a missing field.
		return nil, core.NewMissingFileError()
	}

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return nil, core.NewMissingFileError()
		}
		if err != nil {
			return nil, core.NewInternalError(err)
		}

		if part.FormName() != "file" || !hasFilenameParam(part) {
			continue
		}

		return &upload{
			Filename:    part.FileName(),
			ContentType: part.Header.Get("Content-Type"),
		}, nil
	}
}

// hasFilenameParam reports whether the part's Content-Disposition carries a
// filename parameter, possibly empty.
func hasFilenameParam(part *multipart.Part) bool {
	_, params, err := mime.ParseMediaType(part.Header.Get("Content-Disposition"))
	if err != nil {
		return false
	}
	_, ok := params["filename"]
	return ok
}

// handleError converts service errors to the wire error shape
func handleError(c echo.Context, err error) error {
	var svcErr *core.ServiceError
	if errors.As(err, &svcErr) {
		observability.UploadsRejectedTotal.WithLabelValues(string(svcErr.Type)).Inc()
		if svcErr.HTTPStatusCode() >= http.StatusInternalServerError {
			slog.Error("error processing file", "error", svcErr.Message)
		}
		return c.JSON(svcErr.HTTPStatusCode(), svcErr.ToJSON())
	}

	// Fallback for unexpected errors
	observability.UploadsRejectedTotal.WithLabelValues(string(core.ErrorTypeInternal)).Inc()
	slog.Error("error processing file", "error", err)
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
