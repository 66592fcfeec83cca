package handler

import (
	"summa-reader/internal/logger"
	"summa-reader/internal/middleware"
	"summa-reader/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SummaHandler handles document navigation requests
type SummaHandler struct {
	service service.ReaderService
}

// NewSummaHandler creates a new SummaHandler instance
func NewSummaHandler(service service.ReaderService) *SummaHandler {
	return &SummaHandler{
		service: service,
	}
}

// GetStructure godoc
// @Summary Get the document summary
// @Description Returns title, languages, metadata and the list of parts
// @Tags summa
// @Produce json
// @Success 200 {object} dto.StructureResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /summa [get]
func (h *SummaHandler) GetStructure(c *fiber.Ctx) error {
	resp, err := h.service.GetStructure(c.UserContext())
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderETag, `"`+resp.DocumentVersion+`"`)
	return c.JSON(resp)
}

// GetOutline godoc
// @Summary Get the navigation outline
// @Description Returns every part with its derived question groups
// @Tags summa
// @Produce json
// @Success 200 {object} dto.OutlineResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /summa/outline [get]
func (h *SummaHandler) GetOutline(c *fiber.Ctx) error {
	resp, err := h.service.GetOutline(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetTotals godoc
// @Summary Compare declared and actual totals
// @Tags summa
// @Produce json
// @Success 200 {object} domain.Totals
// @Failure 503 {object} middleware.ErrorResponse
// @Router /summa/totals [get]
func (h *SummaHandler) GetTotals(c *fiber.Ctx) error {
	totals, err := h.service.VerifyTotals(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(totals)
}

// GetPart godoc
// @Summary Get a part
// @Description Returns a part with its questions and derived groups
// @Tags summa
// @Produce json
// @Param partId path string true "Part identifier" example(I-II)
// @Success 200 {object} dto.PartResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /summa/{partId} [get]
func (h *SummaHandler) GetPart(c *fiber.Ctx) error {
	partID := c.Locals(middleware.LocalPartID).(string)
	resp, err := h.service.GetPart(c.UserContext(), partID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuestion godoc
// @Summary Get a question
// @Description Returns a question with its articles and previous/next links
// @Tags summa
// @Produce json
// @Param partId path string true "Part identifier"
// @Param questionId path int true "Question number"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /summa/{partId}/{questionId} [get]
func (h *SummaHandler) GetQuestion(c *fiber.Ctx) error {
	partID := c.Locals(middleware.LocalPartID).(string)
	questionID := c.Locals(middleware.LocalQuestionID).(int)
	resp, err := h.service.GetQuestion(c.UserContext(), partID, questionID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetArticle godoc
// @Summary Get an article
// @Description Returns an article in one language. A missing language is reported with contentAvailable=false.
// @Tags summa
// @Produce json
// @Produce text/markdown
// @Param partId path string true "Part identifier"
// @Param questionId path int true "Question number"
// @Param articleId path int true "Article number"
// @Param lang query string false "Content language" default(es)
// @Param format query string false "json or markdown" default(json)
// @Success 200 {object} dto.ArticleResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /summa/{partId}/{questionId}/{articleId} [get]
func (h *SummaHandler) GetArticle(c *fiber.Ctx) error {
	partID := c.Locals(middleware.LocalPartID).(string)
	questionID := c.Locals(middleware.LocalQuestionID).(int)
	articleID := c.Locals(middleware.LocalArticleID).(int)
	lang := c.Locals(middleware.LocalLanguage).(string)

	switch c.Query("format", "json") {
	case "json":
	case "markdown", "md":
		text, err := h.service.GetArticleMarkdown(c.UserContext(), partID, questionID, articleID, lang)
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, "text/markdown; charset=utf-8")
		return c.SendString(text)
	default:
		return fiber.NewError(fiber.StatusBadRequest, "unsupported format")
	}

	resp, err := h.service.GetArticle(c.UserContext(), partID, questionID, articleID, lang)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Reload godoc
// @Summary Reload the document
// @Description Drops the cached document and loads it again from the source
// @Tags summa
// @Produce json
// @Success 200 {object} dto.ReloadResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /summa/reload [post]
func (h *SummaHandler) Reload(c *fiber.Ctx) error {
	resp, err := h.service.Reload(c.UserContext())
	if err != nil {
		logger.Get().Error("Failed to reload document", zap.Error(err))
		return err
	}
	return c.JSON(resp)
}
