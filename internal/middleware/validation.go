package middleware

import (
	"summa-reader/internal/domain"
	"summa-reader/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the validation middleware
const (
	LocalPartID     = "validated_part_id"
	LocalQuestionID = "validated_question_id"
	LocalArticleID  = "validated_article_id"
	LocalLanguage   = "validated_lang"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateAddress validates the :partId, :questionId and :articleId path
// parameters that are present on the route and stores the parsed values.
func (vm *ValidationMiddleware) ValidateAddress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var errs domain.ValidationErrors

		partID := c.Params("partId")
		errs = append(errs, vm.validator.ValidatePartID(partID)...)

		questionID := 0
		if raw := c.Params("questionId"); raw != "" {
			id, qErrs := vm.validator.ParseID("questionId", raw)
			errs = append(errs, qErrs...)
			questionID = id
		}

		articleID := 0
		if raw := c.Params("articleId"); raw != "" {
			id, aErrs := vm.validator.ParseID("articleId", raw)
			errs = append(errs, aErrs...)
			articleID = id
		}

		lang := c.Query("lang")
		errs = append(errs, vm.validator.ValidateLanguage(lang)...)

		if len(errs) > 0 {
			return errs
		}

		c.Locals(LocalPartID, partID)
		c.Locals(LocalQuestionID, questionID)
		c.Locals(LocalArticleID, articleID)
		c.Locals(LocalLanguage, lang)
		return c.Next()
	}
}

// ValidateWorkID validates the :workId path parameter
func (vm *ValidationMiddleware) ValidateWorkID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if errs := vm.validator.ValidateWorkID(c.Params("workId")); len(errs) > 0 {
			return errs
		}
		return c.Next()
	}
}
