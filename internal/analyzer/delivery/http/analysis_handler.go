package http

import (
	"errors"
	"net/http"

	"golang-news-impact/internal/analyzer/dto"
	"golang-news-impact/internal/analyzer/service"
	"golang-news-impact/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AnalysisHandler handles HTTP requests for article analyses.
type AnalysisHandler struct {
	analyzerService service.AnalyzerService
	logger          *logger.Logger
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(analyzerService service.AnalyzerService, logger *logger.Logger) *AnalysisHandler {
	return &AnalysisHandler{analyzerService: analyzerService, logger: logger}
}

// RegisterRoutes registers the analysis routes to the Echo group.
func (h *AnalysisHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateAnalysis)
	g.POST("/batch", h.CreateBatchAnalysis)
	g.GET("/:id", h.GetAnalysis)
}

// CreateAnalysis godoc
// @Summary Analyze an article
// @Description Run sentiment, entity, impact and summary stages over one article
// @Tags analyses
// @Accept  json
// @Produce  json
// @Param   article  body    dto.ArticleRequest   true    "Article to analyze"
// @Success 201 {object} entity.Analysis
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /analyses [post]
func (h *AnalysisHandler) CreateAnalysis(c echo.Context) error {
	var req dto.ArticleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}

	analysis, err := h.analyzerService.Analyze(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, dto.ErrMissingField) {
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		}
		h.logger.Error("Failed to analyze article", logger.ErrorField(err), logger.StringField("article_id", req.ID()))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusCreated, analysis)
}

// CreateBatchAnalysis godoc
// @Summary Analyze a batch of articles
// @Description Malformed articles are reported individually and do not fail the request
// @Tags analyses
// @Accept  json
// @Produce  json
// @Param   articles  body    []dto.ArticleRequest   true    "Articles to analyze"
// @Success 200 {array} dto.AnalysisResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 413 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /analyses/batch [post]
func (h *AnalysisHandler) CreateBatchAnalysis(c echo.Context) error {
	var reqs []dto.ArticleRequest
	if err := c.Bind(&reqs); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}

	results, err := h.analyzerService.AnalyzeBatch(c.Request().Context(), reqs)
	if err != nil {
		if errors.Is(err, service.ErrBatchTooLarge) {
			return c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{Error: err.Error()})
		}
		h.logger.Error("Failed to analyze batch", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, results)
}

// GetAnalysis godoc
// @Summary Get an analysis by article ID
// @Description Get the latest analysis of an article
// @Tags analyses
// @Produce  json
// @Param   id  path    string true    "Article ID"
// @Success 200 {object} entity.Analysis
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /analyses/{id} [get]
func (h *AnalysisHandler) GetAnalysis(c echo.Context) error {
	analysis, err := h.analyzerService.GetAnalysis(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrAnalysisNotFound) {
			return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Analysis not found"})
		}
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, analysis)
}

// HealthCheck godoc
// @Summary Health check
// @Tags health
// @Produce  json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
