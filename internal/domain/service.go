package domain

import "context"

// DocumentLoader fetches the full document. Every call fetches again.
type DocumentLoader interface {
	// LoadDocument returns the decoded document or a load error.
	// It never returns a partially constructed document.
	LoadDocument(ctx context.Context) (*Structure, error)

	// SourceID identifies where the document comes from (URL or path).
	SourceID() string
}
