package domain

import "fmt"

func articles(ids ...int) []Article {
	out := make([]Article, 0, len(ids))
	for _, id := range ids {
		out = append(out, Article{
			ID:    id,
			Title: fmt.Sprintf("Artículo %d", id),
			Content: map[string]Content{
				PrimaryLanguage: {
					Objections: []Objection{{ID: 1, Text: "Parece que no."}},
					SedContra:  "Pero en contra está lo que dice...",
					Corpus:     "Respondo: Hay que decir que...",
					Replies:    []Reply{{ToObjection: 1, Text: "A la primera hay que decir..."}},
				},
			},
		})
	}
	return out
}

func questions(ids ...int) []Question {
	out := make([]Question, 0, len(ids))
	for _, id := range ids {
		out = append(out, Question{ID: id, Title: fmt.Sprintf("Cuestión %d", id), Articles: articles(1, 2)})
	}
	return out
}

// sampleDocument is one part "I" with questions 1..3, each with articles 1..2
func sampleDocument() *Structure {
	return &Structure{
		Title:     "Suma de Teología",
		Author:    "Santo Tomás de Aquino",
		Languages: []string{"es", "la"},
		Structure: Body{Parts: []Part{
			{ID: "I", Title: "Prima Pars", Questions: questions(1, 2, 3)},
		}},
		Metadata: Metadata{TotalQuestions: 3, TotalArticles: 6, LastUpdated: "2024-01-15"},
	}
}

// multiPartDocument has several parts with non-contiguous question ids
func multiPartDocument() *Structure {
	return &Structure{
		Title: "Suma de Teología",
		Structure: Body{Parts: []Part{
			{ID: "I", Title: "Prima Pars", Questions: questions(1, 2, 44, 50, 64, 65, 75)},
			{ID: "I-II", Title: "Prima Secundae", Questions: questions(1, 5, 6, 7)},
			{ID: "X", Title: "Sin tabla", Questions: questions(1, 2)},
		}},
	}
}
