package validation

import (
	"regexp"
	"strconv"
	"strings"
	"summa-reader/internal/domain"
)

var (
	partIDPattern   = regexp.MustCompile(`^[A-Za-z0-9-]{1,16}$`)
	languagePattern = regexp.MustCompile(`^[a-z]{2}$`)
	slugPattern     = regexp.MustCompile(`^[a-z0-9-]{1,64}$`)
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidatePartID checks the part segment of an address (e.g. "I", "I-II")
func (v *Validator) ValidatePartID(partID string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if strings.TrimSpace(partID) == "" {
		return append(errors, domain.NewMissingFieldError("partId"))
	}
	if !partIDPattern.MatchString(partID) {
		errors = append(errors, domain.NewInvalidFormatError("partId", partID))
	}
	return errors
}

// ParseID parses a positive integer path segment
func (v *Validator) ParseID(field, raw string) (int, domain.ValidationErrors) {
	if strings.TrimSpace(raw) == "" {
		return 0, domain.ValidationErrors{domain.NewMissingFieldError(field)}
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, domain.ValidationErrors{domain.NewInvalidFormatError(field, raw)}
	}
	return id, nil
}

// ValidateLanguage accepts an empty value (primary language) or a two-letter code
func (v *Validator) ValidateLanguage(lang string) domain.ValidationErrors {
	if lang == "" || languagePattern.MatchString(lang) {
		return nil
	}
	return domain.ValidationErrors{domain.NewInvalidFormatError("lang", lang)}
}

// ValidateWorkID checks a catalogue slug
func (v *Validator) ValidateWorkID(workID string) domain.ValidationErrors {
	if strings.TrimSpace(workID) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("workId")}
	}
	if !slugPattern.MatchString(workID) {
		return domain.ValidationErrors{domain.NewInvalidFormatError("workId", workID)}
	}
	return nil
}
