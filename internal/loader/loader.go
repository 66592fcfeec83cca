package loader

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"summa-reader/internal/domain"
	"summa-reader/internal/logger"

	"github.com/zeebo/blake3"
	"go.uber.org/zap"
)

// LoadError is returned when the document cannot be fetched or decoded
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load document from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ErrMissingParts is the cause reported when the payload has no structure.parts
var ErrMissingParts = errors.New("document has no structure.parts")

// ErrMissingPrimaryContent is the cause reported when an article has no content in domain.PrimaryLanguage
var ErrMissingPrimaryContent = errors.New("article has no primary language content")

// Loader fetches and decodes the document from a Source. It does not cache.
type Loader struct {
	source Source
}

// NewLoader creates a Loader reading from source
func NewLoader(source Source) *Loader {
	return &Loader{source: source}
}

// SourceID implements domain.DocumentLoader
func (l *Loader) SourceID() string {
	return l.source.ID()
}

// LoadDocument implements domain.DocumentLoader
func (l *Loader) LoadDocument(ctx context.Context) (*domain.Structure, error) {
	data, err := l.source.Fetch(ctx)
	if err != nil {
		logger.Get().Error("Failed to fetch document", zap.String("source", l.source.ID()), zap.Error(err))
		return nil, &LoadError{Source: l.source.ID(), Err: err}
	}

	doc, err := Decode(data)
	if err != nil {
		logger.Get().Error("Failed to decode document", zap.String("source", l.source.ID()), zap.Error(err))
		return nil, &LoadError{Source: l.source.ID(), Err: err}
	}

	logger.Get().Debug("Document loaded",
		zap.String("source", l.source.ID()),
		zap.String("version", doc.Version),
		zap.Int("parts", len(doc.Structure.Parts)),
	)
	return doc, nil
}

// Decode parses a raw payload into a Structure and stamps its Version.
// The whole payload must be a single JSON document.
func Decode(data []byte) (*domain.Structure, error) {
	var doc domain.Structure
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid document payload: %w", err)
	}
	if doc.Structure.Parts == nil {
		return nil, ErrMissingParts
	}
	if err := checkPrimaryContent(&doc); err != nil {
		return nil, err
	}
	doc.Version = Version(data)
	return &doc, nil
}

func checkPrimaryContent(doc *domain.Structure) error {
	for _, part := range doc.Structure.Parts {
		for _, q := range part.Questions {
			for i := range q.Articles {
				if _, ok := q.Articles[i].ContentFor(domain.PrimaryLanguage); !ok {
					return fmt.Errorf("%w: %s %d.%d", ErrMissingPrimaryContent, part.ID, q.ID, q.Articles[i].ID)
				}
			}
		}
	}
	return nil
}

// Version hashes a raw payload with BLAKE3
func Version(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
