package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/screensift/internal/classifier"
	"github.com/jonesrussell/screensift/internal/domain"
	"github.com/jonesrussell/screensift/internal/logger"
)

// Handler serves the classification API.
type Handler struct {
	classifier *classifier.Classifier
	logger     logger.Logger
	service    string
	version    string
}

func NewHandler(c *classifier.Classifier, log logger.Logger, service, version string) *Handler {
	if log == nil {
		log = logger.NewNop()
	}
	return &Handler{classifier: c, logger: log, service: service, version: version}
}

// ClassifyRequest carries OCR lines for classification. Geometry is optional;
// text-only clients may send bare lines with zero boxes.
type ClassifyRequest struct {
	ImageID     string        `json:"image_id"`
	Lines       []LineRequest `json:"lines" binding:"required"`
	ImageWidth  int           `json:"image_width"`
	ImageHeight int           `json:"image_height"`
}

type LineRequest struct {
	Text   string  `json:"text"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (req *ClassifyRequest) toRecord() *domain.OCRRecord {
	rec := &domain.OCRRecord{
		ImageWidth:  req.ImageWidth,
		ImageHeight: req.ImageHeight,
	}
	for _, l := range req.Lines {
		rec.Lines = append(rec.Lines, domain.OCRLine{
			Text:   l.Text,
			Bounds: domain.Box{X: l.X, Y: l.Y, Width: l.Width, Height: l.Height},
		})
	}
	return rec
}

// Classify handles POST /api/v1/classify.
func (h *Handler) Classify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	rec := req.toRecord()
	if err := rec.Validate(); err != nil {
		h.logger.Warn("rejected malformed record",
			logger.String("image_id", req.ImageID),
			logger.Error(err),
		)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result := h.classifier.Classify(rec)
	c.JSON(http.StatusOK, result)
}

// Weights handles GET /api/v1/weights, exposing the active tuning surface.
func (h *Handler) Weights(c *gin.Context) {
	c.JSON(http.StatusOK, h.classifier.Weights())
}

// Health handles GET /health.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Service: h.service,
		Version: h.version,
	})
}
