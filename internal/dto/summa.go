package dto

import "summa-reader/internal/domain"

// StructureResponse summarizes the whole document
// @Description Document summary with its parts
type StructureResponse struct {
	Title           string          `json:"title"`
	Author          string          `json:"author"`
	Subtitle        string          `json:"subtitle"`
	Languages       []string        `json:"languages"`
	Metadata        domain.Metadata `json:"metadata"`
	Parts           []PartSummary   `json:"parts"`
	DocumentVersion string          `json:"documentVersion"`
}

// PartSummary is a part without its questions
type PartSummary struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle"`
	QuestionCount int    `json:"questionCount"`
	Path          string `json:"path"`
}

// QuestionSummary is a question with a preview of its first articles
type QuestionSummary struct {
	ID             int              `json:"id"`
	Title          string           `json:"title"`
	ArticleCount   int              `json:"articleCount"`
	ArticlePreview []ArticleSummary `json:"articlePreview,omitempty"`
	Path           string           `json:"path"`
}

// ArticleSummary is an article without content
type ArticleSummary struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Path  string `json:"path"`
}

// GroupResponse is a derived group of questions
type GroupResponse struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	StartQuestion int               `json:"startQuestion"`
	EndQuestion   int               `json:"endQuestion"`
	Questions     []QuestionSummary `json:"questions"`
}

// PartResponse is a part with its questions and groups
// @Description Part with questions, derived groups and ungrouped questions
type PartResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Subtitle    string            `json:"subtitle"`
	Description string            `json:"description,omitempty"`
	Questions   []QuestionSummary `json:"questions"`
	Groups      []GroupResponse   `json:"groups"`
	Ungrouped   []QuestionSummary `json:"ungrouped"`
	Breadcrumbs []domain.Crumb    `json:"breadcrumbs"`
}

// NavLink points at a neighbor. Exists is false when the target id is not in the document.
type NavLink struct {
	ID     int    `json:"id"`
	Title  string `json:"title,omitempty"`
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

// QuestionResponse is a question with its articles and navigation
// @Description Question with articles, identifier-based and positional navigation
type QuestionResponse struct {
	PartID             string           `json:"partId"`
	ID                 int              `json:"id"`
	Title              string           `json:"title"`
	Articles           []ArticleSummary `json:"articles"`
	Previous           *NavLink         `json:"previous"`
	Next               *NavLink         `json:"next"`
	PreviousByPosition *NavLink         `json:"previousByPosition"`
	NextByPosition     *NavLink         `json:"nextByPosition"`
	Breadcrumbs        []domain.Crumb   `json:"breadcrumbs"`
}

// ArticleResponse is an article in one language with navigation.
// Content is nil and ContentAvailable false when the language is missing.
// @Description Article content in one language
type ArticleResponse struct {
	PartID             string          `json:"partId"`
	QuestionID         int             `json:"questionId"`
	ID                 int             `json:"id"`
	Title              string          `json:"title"`
	Language           string          `json:"language"`
	ContentAvailable   bool            `json:"contentAvailable"`
	Content            *domain.Content `json:"content"`
	AvailableLanguages []string        `json:"availableLanguages"`
	Previous           *NavLink        `json:"previous"`
	Next               *NavLink        `json:"next"`
	Breadcrumbs        []domain.Crumb  `json:"breadcrumbs"`
}

// OutlinePart is one part of the navigation outline
type OutlinePart struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Groups    []GroupResponse   `json:"groups"`
	Ungrouped []QuestionSummary `json:"ungrouped"`
}

// OutlineResponse is the navigation tree of the whole document
type OutlineResponse struct {
	Title string        `json:"title"`
	Parts []OutlinePart `json:"parts"`
}

// ReloadResponse reports the document version after a reload
type ReloadResponse struct {
	DocumentVersion string `json:"documentVersion"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
