package domain

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GroupSpec is one authored entry of the group table
type GroupSpec struct {
	ID            string `yaml:"id" json:"id"`
	Title         string `yaml:"title" json:"title"`
	StartQuestion int    `yaml:"start" json:"startQuestion"`
	EndQuestion   int    `yaml:"end" json:"endQuestion"`
}

// GroupTable maps a part identifier to its ordered group ranges.
// Ranges may overlap or leave gaps; the table is authored data and is not validated.
type GroupTable map[string][]GroupSpec

// DefaultGroupTable returns the hand-curated grouping of the four parts.
// A fresh copy is returned on every call.
func DefaultGroupTable() GroupTable {
	return GroupTable{
		"I": {
			{ID: "teologia", Title: "Teología", StartQuestion: 1, EndQuestion: 1},
			{ID: "dios-uno", Title: "Dios uno", StartQuestion: 2, EndQuestion: 26},
			{ID: "dios-trino", Title: "Dios trino", StartQuestion: 27, EndQuestion: 43},
			{ID: "dios-creador", Title: "Dios creador", StartQuestion: 44, EndQuestion: 74},
			{ID: "angeles", Title: "Ángeles", StartQuestion: 50, EndQuestion: 64},
			{ID: "hombre", Title: "Hombre", StartQuestion: 75, EndQuestion: 102},
			{ID: "cosmos", Title: "Cosmos", StartQuestion: 103, EndQuestion: 119},
		},
		"I-II": {
			{ID: "bienaventuranza", Title: "Bienaventuranza, fin del hombre", StartQuestion: 1, EndQuestion: 5},
			{ID: "actos-humanos", Title: "Actos humanos", StartQuestion: 7, EndQuestion: 21},
			{ID: "pasiones", Title: "Pasiones", StartQuestion: 22, EndQuestion: 48},
			{ID: "habitos", Title: "Hábitos", StartQuestion: 49, EndQuestion: 54},
			{ID: "virtud", Title: "Virtud", StartQuestion: 55, EndQuestion: 67},
			{ID: "dones", Title: "Dones", StartQuestion: 68, EndQuestion: 70},
			{ID: "vicio-pecado", Title: "Vicio y pecado", StartQuestion: 71, EndQuestion: 89},
			{ID: "ley-general", Title: "Ley en general", StartQuestion: 90, EndQuestion: 97},
			{ID: "ley-antigua", Title: "Ley antigua", StartQuestion: 98, EndQuestion: 105},
			{ID: "ley-nueva", Title: "Ley nueva", StartQuestion: 106, EndQuestion: 108},
			{ID: "gracia", Title: "Gracia", StartQuestion: 109, EndQuestion: 113},
			{ID: "merito", Title: "Mérito", StartQuestion: 114, EndQuestion: 114},
		},
		"II-II": {
			{ID: "fe", Title: "Fe", StartQuestion: 1, EndQuestion: 16},
			{ID: "esperanza", Title: "Esperanza", StartQuestion: 17, EndQuestion: 22},
			{ID: "caridad", Title: "Caridad", StartQuestion: 23, EndQuestion: 46},
			{ID: "prudencia", Title: "Prudencia", StartQuestion: 47, EndQuestion: 56},
			{ID: "justicia", Title: "Justicia", StartQuestion: 57, EndQuestion: 122},
			{ID: "fortaleza", Title: "Fortaleza", StartQuestion: 123, EndQuestion: 140},
			{ID: "templanza", Title: "Templanza", StartQuestion: 141, EndQuestion: 170},
			{ID: "carismas", Title: "Carismas", StartQuestion: 171, EndQuestion: 178},
			{ID: "estados-vida", Title: "Estados de vida", StartQuestion: 179, EndQuestion: 189},
		},
		"III": {
			{ID: "encarnacion", Title: "Encarnación", StartQuestion: 1, EndQuestion: 6},
			{ID: "cualidades", Title: "Cualidades de Cristo", StartQuestion: 7, EndQuestion: 26},
			{ID: "vida-cristo", Title: "Vida de Cristo", StartQuestion: 27, EndQuestion: 59},
			{ID: "sacramentos-general", Title: "Sacramentos en general", StartQuestion: 60, EndQuestion: 65},
			{ID: "bautismo", Title: "Bautismo", StartQuestion: 66, EndQuestion: 71},
			{ID: "confirmacion", Title: "Confirmación", StartQuestion: 72, EndQuestion: 72},
			{ID: "eucaristia", Title: "Eucaristía", StartQuestion: 73, EndQuestion: 83},
			{ID: "penitencia", Title: "Penitencia", StartQuestion: 84, EndQuestion: 90},
		},
	}
}

// LoadGroupTable reads a group table from a YAML file of the form
//
//	I:
//	  - {id: teologia, title: Teología, start: 1, end: 1}
func LoadGroupTable(path string) (GroupTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read group table %s: %w", path, err)
	}
	table := GroupTable{}
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse group table %s: %w", path, err)
	}
	return table, nil
}

// BuildGroups derives the groups of a part from the table.
// Parts absent from the table get no groups. Questions keep the part order;
// a question may land in several groups or in none. The part is not modified.
func BuildGroups(part *Part, table GroupTable) []QuestionGroup {
	if part == nil {
		return []QuestionGroup{}
	}
	ranges, ok := table[part.ID]
	if !ok {
		return []QuestionGroup{}
	}

	groups := make([]QuestionGroup, 0, len(ranges))
	for _, r := range ranges {
		group := QuestionGroup{
			ID:            r.ID,
			Title:         r.Title,
			StartQuestion: r.StartQuestion,
			EndQuestion:   r.EndQuestion,
			Questions:     []Question{},
		}
		for _, q := range part.Questions {
			if group.Contains(q.ID) {
				group.Questions = append(group.Questions, q)
			}
		}
		groups = append(groups, group)
	}
	return groups
}

// UngroupedQuestions returns the questions of the part that fall in no group
func UngroupedQuestions(part *Part, groups []QuestionGroup) []Question {
	if part == nil {
		return []Question{}
	}
	out := []Question{}
	for _, q := range part.Questions {
		grouped := false
		for _, g := range groups {
			if g.Contains(q.ID) {
				grouped = true
				break
			}
		}
		if !grouped {
			out = append(out, q)
		}
	}
	return out
}

// WithGroups returns a shallow copy of the part carrying its derived groups
func WithGroups(part *Part, table GroupTable) *Part {
	if part == nil {
		return nil
	}
	cp := *part
	cp.Groups = BuildGroups(part, table)
	return &cp
}
