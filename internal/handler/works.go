package handler

import (
	"net/url"
	"summa-reader/internal/domain"
	"summa-reader/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// WorksHandler serves the catalogue of works
type WorksHandler struct {
	catalog domain.WorkCatalog
}

// NewWorksHandler creates a new WorksHandler instance
func NewWorksHandler(catalog domain.WorkCatalog) *WorksHandler {
	return &WorksHandler{catalog: catalog}
}

// ListWorks godoc
// @Summary List works
// @Tags works
// @Produce json
// @Success 200 {object} dto.WorksResponse
// @Router /works [get]
func (h *WorksHandler) ListWorks(c *fiber.Ctx) error {
	works := h.catalog.ListWorks()
	return c.JSON(dto.WorksResponse{Works: works, Total: len(works)})
}

// GetWork godoc
// @Summary Get a work
// @Tags works
// @Produce json
// @Param workId path string true "Work slug"
// @Success 200 {object} domain.Work
// @Failure 404 {object} middleware.ErrorResponse
// @Router /works/{workId} [get]
func (h *WorksHandler) GetWork(c *fiber.Ctx) error {
	workID := c.Params("workId")
	work, ok := h.catalog.GetWorkByID(workID)
	if !ok {
		return domain.NewWorkNotFoundError(workID)
	}
	return c.JSON(work)
}

// ListCategories godoc
// @Summary List catalogue categories
// @Tags works
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Router /works/categories [get]
func (h *WorksHandler) ListCategories(c *fiber.Ctx) error {
	return c.JSON(dto.CategoriesResponse{Categories: h.catalog.Categories()})
}

// ListWorksByCategory godoc
// @Summary List works of a category
// @Tags works
// @Produce json
// @Param category path string true "Category name"
// @Success 200 {object} dto.WorksResponse
// @Router /works/categories/{category} [get]
func (h *WorksHandler) ListWorksByCategory(c *fiber.Ctx) error {
	category, err := url.PathUnescape(c.Params("category"))
	if err != nil {
		return domain.NewInvalidInputError("invalid category")
	}
	works := h.catalog.GetWorksByCategory(category)
	return c.JSON(dto.WorksResponse{Works: works, Total: len(works)})
}
