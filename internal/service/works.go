package service

import "summa-reader/internal/domain"

// Catalogue categories
const (
	CategoryMainWorks  = "Obras Principales"
	CategoryTheology   = "Teología"
	CategoryPhilosophy = "Filosofía"
	CategoryBiography  = "Biografía"
)

var categories = []string{CategoryMainWorks, CategoryTheology, CategoryPhilosophy, CategoryBiography}

// workCatalog is the static catalogue of works
type workCatalog struct {
	works []domain.Work
}

// NewWorkCatalog returns the catalogue of works shown on the site
func NewWorkCatalog() domain.WorkCatalog {
	return &workCatalog{works: defaultWorks()}
}

// NewWorkCatalogFrom builds a catalogue over the given works
func NewWorkCatalogFrom(works []domain.Work) domain.WorkCatalog {
	return &workCatalog{works: works}
}

func (c *workCatalog) ListWorks() []domain.Work {
	out := make([]domain.Work, len(c.works))
	copy(out, c.works)
	return out
}

func (c *workCatalog) GetWorkByID(id string) (*domain.Work, bool) {
	for i := range c.works {
		if c.works[i].ID == id {
			w := c.works[i]
			return &w, true
		}
	}
	return nil, false
}

func (c *workCatalog) GetWorksByCategory(category string) []domain.Work {
	out := []domain.Work{}
	for _, w := range c.works {
		if w.Category == category {
			out = append(out, w)
		}
	}
	return out
}

func (c *workCatalog) Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

func defaultWorks() []domain.Work {
	return []domain.Work{
		{
			ID:          "summa-theologica",
			Title:       "Summa Theologica",
			Description: "La obra magna de la teología católica, síntesis completa de la doctrina cristiana.",
			Category:    CategoryMainWorks,
			Href:        "/obras/summa-theologica",
			Icon:        "book",
			Content:     "La Summa Theologica es la obra más importante de Santo Tomás de Aquino...",
			Sections: []domain.WorkSection{
				{
					ID:      "prima-pars",
					Title:   "Prima Pars",
					Content: "Trata sobre Dios y la creación...",
					Subsections: []domain.WorkSubsection{
						{ID: "de-deo", Title: "De Deo", Content: "Sobre la existencia y naturaleza de Dios..."},
						{ID: "de-trinitate", Title: "De Trinitate", Content: "Sobre la Santísima Trinidad..."},
					},
				},
				{ID: "prima-secundae", Title: "Prima Secundae", Content: "Trata sobre el fin del hombre y los actos humanos..."},
				{ID: "secunda-secundae", Title: "Secunda Secundae", Content: "Trata sobre las virtudes teologales y cardinales..."},
				{ID: "tertia-pars", Title: "Tertia Pars", Content: "Trata sobre Cristo y los sacramentos..."},
			},
		},
		{
			ID:          "summa-contra-gentiles",
			Title:       "Summa Contra Gentiles",
			Description: "Tratado apologético para la conversión de infieles y herejes.",
			Category:    CategoryMainWorks,
			Href:        "/obras/summa-contra-gentiles",
			Icon:        "users",
			Content:     "La Summa Contra Gentiles es un tratado apologético...",
		},
		{
			ID:          "comentarios-biblicos",
			Title:       "Comentarios Bíblicos",
			Description: "Exégesis profunda de las Sagradas Escrituras y los Evangelios.",
			Category:    CategoryMainWorks,
			Href:        "/obras/comentarios-biblicos",
			Icon:        "document",
			Content:     "Los comentarios bíblicos de Santo Tomás...",
		},
		{
			ID:          "aristoteles",
			Title:       "Comentarios a Aristóteles",
			Description: "Comentarios a las obras de Aristóteles y síntesis filosófica.",
			Category:    CategoryPhilosophy,
			Href:        "/filosofia/aristoteles",
			Icon:        "lightbulb",
			Content:     "Los comentarios a Aristóteles representan...",
		},
		{
			ID:          "tratados-teologicos",
			Title:       "Tratados Teológicos",
			Description: "Obras menores sobre temas específicos de teología y espiritualidad.",
			Category:    CategoryTheology,
			Href:        "/teologia/tratados",
			Icon:        "heart",
			Content:     "Los tratados teológicos incluyen...",
		},
		{
			ID:          "biografia",
			Title:       "Biografía",
			Description: "Vida, obra y legado del Doctor Angélico en la Iglesia y la cultura.",
			Category:    CategoryBiography,
			Href:        "/biografia",
			Icon:        "user",
			Content:     "Santo Tomás de Aquino nació en 1225...",
		},
	}
}
