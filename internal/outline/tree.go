// Package outline prints the document as a text tree of parts, groups and questions.
package outline

import (
	"fmt"

	"summa-reader/internal/domain"

	"github.com/disiqueira/gotree/v3"
)

// UngroupedLabel heads the questions that fall in no group
const UngroupedLabel = "(sin grupo)"

// Options control how much of the tree is printed
type Options struct {
	// PartID limits the tree to one part when set
	PartID string
	// Articles adds the articles below each question
	Articles bool
}

// Render builds the tree. It reports a missing part instead of printing an empty tree.
func Render(doc *domain.Structure, table domain.GroupTable, opts Options) (string, error) {
	if doc == nil {
		return "", fmt.Errorf("no document")
	}
	root := gotree.New(doc.Title)

	parts := doc.Structure.Parts
	if opts.PartID != "" {
		part, ok := domain.FindPart(doc, opts.PartID)
		if !ok {
			return "", domain.NewPartNotFoundError(opts.PartID)
		}
		parts = []domain.Part{*part}
	}

	for i := range parts {
		addPart(root, &parts[i], table, opts)
	}
	return root.Print(), nil
}

func addPart(root gotree.Tree, part *domain.Part, table domain.GroupTable, opts Options) {
	node := root.Add(fmt.Sprintf("Parte %s: %s", part.ID, part.Title))
	groups := domain.BuildGroups(part, table)

	if len(groups) == 0 {
		for _, q := range part.Questions {
			addQuestion(node, q, opts)
		}
		return
	}
	for _, g := range groups {
		gnode := node.Add(fmt.Sprintf("%d-%d %s", g.StartQuestion, g.EndQuestion, g.Title))
		for _, q := range g.Questions {
			addQuestion(gnode, q, opts)
		}
	}
	if ungrouped := domain.UngroupedQuestions(part, groups); len(ungrouped) > 0 {
		unode := node.Add(UngroupedLabel)
		for _, q := range ungrouped {
			addQuestion(unode, q, opts)
		}
	}
}

func addQuestion(parent gotree.Tree, q domain.Question, opts Options) {
	node := parent.Add(fmt.Sprintf("Q.%d %s", q.ID, q.Title))
	if !opts.Articles {
		return
	}
	for _, a := range q.Articles {
		node.Add(fmt.Sprintf("Art.%d %s", a.ID, a.Title))
	}
}
