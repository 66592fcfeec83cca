package dto

import "summa-reader/internal/domain"

// WorksResponse lists works of the catalogue
type WorksResponse struct {
	Works []domain.Work `json:"works"`
	Total int           `json:"total"`
}

// CategoriesResponse lists the catalogue categories
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// HealthResponse reports the state of the dependencies
type HealthResponse struct {
	Status   string `json:"status"`
	Cache    string `json:"cache"`
	Document string `json:"document"`
}
