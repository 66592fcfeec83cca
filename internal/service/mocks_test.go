package service

import (
	"context"
	"sync/atomic"
	"time"

	"summa-reader/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- stubLoader ---
// stubLoader returns a fixed document (or error) and counts its loads
type stubLoader struct {
	id            string
	doc           *domain.Structure
	err           error
	calls         atomic.Int32
	canceledCalls atomic.Int32
}

func (l *stubLoader) SourceID() string { return l.id }

func (l *stubLoader) LoadDocument(ctx context.Context) (*domain.Structure, error) {
	l.calls.Add(1)
	if ctx.Err() != nil {
		l.canceledCalls.Add(1)
	}
	if l.err != nil {
		return nil, l.err
	}
	return l.doc, nil
}

func newStubLoader(doc *domain.Structure) *stubLoader {
	return &stubLoader{id: "file:///data/sumaDeTeologia.json", doc: doc}
}

func testArticles(ids ...int) []domain.Article {
	out := make([]domain.Article, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.Article{
			ID:    id,
			Title: "Artículo",
			Content: map[string]domain.Content{
				"es": {
					Objections: []domain.Objection{{ID: 1, Text: "Parece que no."}},
					SedContra:  "Pero en contra está...",
					Corpus:     "Respondo: Hay que decir...",
					Replies:    []domain.Reply{{ToObjection: 1, Text: "A la primera..."}},
				},
			},
		})
	}
	return out
}

// testDocument has part I with questions 1, 3 and 4 (a gap at 2) and part I-II with questions 1..6
func testDocument() *domain.Structure {
	return &domain.Structure{
		Title:     "Suma de Teología",
		Author:    "Santo Tomás de Aquino",
		Languages: []string{"es", "la"},
		Structure: domain.Body{Parts: []domain.Part{
			{ID: "I", Title: "Prima Pars", Questions: []domain.Question{
				{ID: 1, Title: "La doctrina sagrada", Articles: testArticles(1, 2, 3, 4, 5)},
				{ID: 3, Title: "La simplicidad de Dios", Articles: testArticles(1, 2)},
				{ID: 4, Title: "La perfección de Dios", Articles: testArticles(1)},
			}},
			{ID: "I-II", Title: "Prima Secundae", Questions: []domain.Question{
				{ID: 1, Title: "El fin último", Articles: testArticles(1)},
				{ID: 2, Title: "En qué consiste", Articles: testArticles(1)},
				{ID: 3, Title: "Qué es", Articles: testArticles(1)},
				{ID: 4, Title: "Lo que se requiere", Articles: testArticles(1)},
				{ID: 5, Title: "Su consecución", Articles: testArticles(1)},
				{ID: 6, Title: "Lo voluntario", Articles: testArticles(1)},
			}},
		}},
		Metadata: domain.Metadata{TotalQuestions: 9, TotalArticles: 14, LastUpdated: "2024-01-15"},
		Version:  "v1",
	}
}
