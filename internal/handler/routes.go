package handler

import (
	"summa-reader/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the API under /api. Static summa routes are registered
// before the parameterized ones so "outline" and "totals" never resolve as part ids.
func RegisterRoutes(app *fiber.App, summa *SummaHandler, works *WorksHandler, health *HealthHandler) {
	vm := middleware.NewValidationMiddleware()

	api := app.Group("/api")
	api.Get("/health", health.Check)

	worksGroup := api.Group("/works")
	worksGroup.Get("/", works.ListWorks)
	worksGroup.Get("/categories", works.ListCategories)
	worksGroup.Get("/categories/:category", works.ListWorksByCategory)
	worksGroup.Get("/:workId", vm.ValidateWorkID(), works.GetWork)

	summaGroup := api.Group("/summa")
	summaGroup.Get("/", summa.GetStructure)
	summaGroup.Get("/outline", summa.GetOutline)
	summaGroup.Get("/totals", summa.GetTotals)
	summaGroup.Post("/reload", summa.Reload)
	summaGroup.Get("/:partId", vm.ValidateAddress(), summa.GetPart)
	summaGroup.Get("/:partId/:questionId", vm.ValidateAddress(), summa.GetQuestion)
	summaGroup.Get("/:partId/:questionId/:articleId", vm.ValidateAddress(), summa.GetArticle)
}
