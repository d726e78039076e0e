package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/username/calendar-pdf-service/internal/calendar"
	"github.com/username/calendar-pdf-service/internal/drive"
	"github.com/username/calendar-pdf-service/internal/pdf"
)

// GenerateResponse is the success body of the generate operation
type GenerateResponse struct {
	FileID      string `json:"fileId"`
	WebViewLink string `json:"webViewLink"`
	Filename    string `json:"filename"`
	GeneratedAt string `json:"generatedAt"`
}

// Handler serves the calendar PDF endpoints
type Handler struct {
	renderer        pdf.Renderer
	uploader        drive.Uploader
	defaultFolderID string
	logger          *zap.Logger
}

// NewHandler creates a Handler with its collaborators injected
func NewHandler(renderer pdf.Renderer, uploader drive.Uploader, defaultFolderID string, logger *zap.Logger) *Handler {
	return &Handler{
		renderer:        renderer,
		uploader:        uploader,
		defaultFolderID: defaultFolderID,
		logger:          logger,
	}
}

// RegisterRoutes registers the PDF endpoints on the given group
func (h *Handler) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/generate", h.Generate)
	group.POST("/preview", h.Preview)
}

// Generate validates the request, renders the calendar, rasterizes it to
// PDF and uploads the result to Drive. The operation fails as one unit:
// a successful render followed by a failed upload is an error response.
func (h *Handler) Generate(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	html, err := calendar.RenderMonth(req.Year, req.Month, req.Overlay)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	pdfBytes, err := h.renderer.RenderPDF(c.Request.Context(), html)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	filename := req.Filename
	if filename == "" {
		filename = fmt.Sprintf("calendar_%d_%d.pdf", req.Year, req.Month)
	}
	folderID := req.OutputFolderID
	if folderID == "" {
		folderID = h.defaultFolderID
	}

	result, err := h.uploader.Upload(c.Request.Context(), pdfBytes, drive.FileMetadata{
		Filename:    filename,
		Description: req.Description,
		FolderID:    folderID,
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.logger.Info("Calendar PDF generated",
		zap.String("request_id", c.GetString(requestIDKey)),
		zap.Int("year", req.Year),
		zap.Int("month", req.Month),
		zap.Int("overlay_specs", len(req.Overlay)),
		zap.String("file_id", result.FileID))

	c.JSON(http.StatusOK, GenerateResponse{
		FileID:      result.FileID,
		WebViewLink: result.WebViewLink,
		Filename:    result.Filename,
		GeneratedAt: result.UploadedAt.Format(time.RFC3339),
	})
}

// Preview runs identical validation and rendering but answers with the raw
// HTML document instead of uploading a PDF.
func (h *Handler) Preview(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	html, err := calendar.RenderMonth(req.Year, req.Month, req.Overlay)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// bindRequest decodes and validates the request body, writing the error
// response itself on failure.
func (h *Handler) bindRequest(c *gin.Context) (*calendar.Request, bool) {
	var req calendar.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, h.logger, &calendar.ValidationError{
			Message: "Invalid JSON request body",
		})
		return nil, false
	}

	if err := calendar.ValidateRequest(&req); err != nil {
		writeError(c, h.logger, err)
		return nil, false
	}

	return &req, true
}
