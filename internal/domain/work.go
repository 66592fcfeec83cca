package domain

// Work is an entry of the catalogue of works
type Work struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Href        string        `json:"href"`
	Icon        string        `json:"icon"`
	Content     string        `json:"content,omitempty"`
	Sections    []WorkSection `json:"sections,omitempty"`
}

// WorkSection is a section of a work description
type WorkSection struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Content     string           `json:"content"`
	Subsections []WorkSubsection `json:"subsections,omitempty"`
}

// WorkSubsection is a leaf section of a work description
type WorkSubsection struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// WorkCatalog is the read port for the catalogue of works
type WorkCatalog interface {
	ListWorks() []Work
	GetWorkByID(id string) (*Work, bool)
	GetWorksByCategory(category string) []Work
	Categories() []string
}
