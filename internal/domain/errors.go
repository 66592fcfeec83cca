package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Document errors
	CodeLoadError        ErrorCode = "LOAD_ERROR"
	CodePartNotFound     ErrorCode = "PART_NOT_FOUND"
	CodeQuestionNotFound ErrorCode = "QUESTION_NOT_FOUND"
	CodeArticleNotFound  ErrorCode = "ARTICLE_NOT_FOUND"
	CodeWorkNotFound     ErrorCode = "WORK_NOT_FOUND"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Err     error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the cause to errors.Is / errors.As
func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// WithContext attaches a detail to the error and returns it
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// IsNotFound reports whether the code is one of the not-found levels
func (e *DomainError) IsNotFound() bool {
	switch e.Code {
	case CodeNotFound, CodePartNotFound, CodeQuestionNotFound, CodeArticleNotFound, CodeWorkNotFound:
		return true
	}
	return false
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewLoadError(err error) *DomainError {
	return NewError(CodeLoadError, "Failed to load document", err)
}

func NewPartNotFoundError(partID string) *DomainError {
	return NewError(CodePartNotFound, fmt.Sprintf("Part not found: %s", partID), nil).
		WithContext("part_id", partID)
}

func NewQuestionNotFoundError(partID string, questionID int) *DomainError {
	return NewError(CodeQuestionNotFound, fmt.Sprintf("Question %d not found in part %s", questionID, partID), nil).
		WithContext("part_id", partID).
		WithContext("question_id", questionID)
}

func NewArticleNotFoundError(partID string, questionID, articleID int) *DomainError {
	return NewError(CodeArticleNotFound, fmt.Sprintf("Article %d not found in question %d of part %s", articleID, questionID, partID), nil).
		WithContext("part_id", partID).
		WithContext("question_id", questionID).
		WithContext("article_id", articleID)
}

func NewWorkNotFoundError(workID string) *DomainError {
	return NewError(CodeWorkNotFound, fmt.Sprintf("Work not found: %s", workID), nil).
		WithContext("work_id", workID)
}

// ValidationError describes one invalid request field
type ValidationError struct {
	Code    ErrorCode   `json:"code"`
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects the invalid fields of a request
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Code: CodeMissingField, Field: field, Message: "field is required"}
}

func NewInvalidFormatError(field string, value interface{}) ValidationError {
	return ValidationError{Code: CodeInvalidFormat, Field: field, Message: "invalid format", Value: value}
}
