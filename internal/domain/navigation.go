package domain

import "fmt"

// ArticleNav holds the position-based neighbors of an article in its question
type ArticleNav struct {
	Index    int
	Previous *Article
	Next     *Article
}

// HasPrevious reports whether a previous article exists
func (n ArticleNav) HasPrevious() bool { return n.Previous != nil }

// HasNext reports whether a next article exists
func (n ArticleNav) HasNext() bool { return n.Next != nil }

// ArticleNeighbors finds the article by id and returns the elements at index-1 and index+1.
// Index is -1 and both neighbors are absent when the article is not in the question.
func ArticleNeighbors(question *Question, articleID int) ArticleNav {
	nav := ArticleNav{Index: -1}
	if question == nil {
		return nav
	}
	for i := range question.Articles {
		if question.Articles[i].ID == articleID {
			nav.Index = i
			break
		}
	}
	if nav.Index < 0 {
		return nav
	}
	if nav.Index > 0 {
		nav.Previous = &question.Articles[nav.Index-1]
	}
	if nav.Index < len(question.Articles)-1 {
		nav.Next = &question.Articles[nav.Index+1]
	}
	return nav
}

// QuestionNav holds the identifier-based neighbors of a question.
// PrevID/NextID are zero when there is no link. The ids are computed by
// arithmetic and may not exist in the part; Prev/Next are set only when they do.
type QuestionNav struct {
	PrevID int
	NextID int
	Prev   *Question
	Next   *Question
}

// HasPrevious reports whether a previous link is offered
func (n QuestionNav) HasPrevious() bool { return n.PrevID > 0 }

// HasNext reports whether a next link is offered
func (n QuestionNav) HasNext() bool { return n.NextID > 0 }

// QuestionNeighbors links to id-1 when id > 1 and to id+1 when id is below
// the number of questions in the part. It compares identifiers, not positions,
// so with ids [1,3,4] the next link from 1 points at 2, which does not exist.
func QuestionNeighbors(part *Part, questionID int) QuestionNav {
	nav := QuestionNav{}
	if part == nil {
		return nav
	}
	if questionID > 1 {
		nav.PrevID = questionID - 1
		nav.Prev, _ = part.Question(nav.PrevID)
	}
	if questionID < len(part.Questions) {
		nav.NextID = questionID + 1
		nav.Next, _ = part.Question(nav.NextID)
	}
	return nav
}

// PositionalQuestionNeighbors returns the questions stored before and after the
// given one in the part, skipping identifier gaps.
func PositionalQuestionNeighbors(part *Part, questionID int) (prev, next *Question) {
	if part == nil {
		return nil, nil
	}
	for i := range part.Questions {
		if part.Questions[i].ID != questionID {
			continue
		}
		if i > 0 {
			prev = &part.Questions[i-1]
		}
		if i < len(part.Questions)-1 {
			next = &part.Questions[i+1]
		}
		return prev, next
	}
	return nil, nil
}

// Crumb is one step of a breadcrumb trail
type Crumb struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// WorkLabel is the label of the root crumb
const WorkLabel = "Suma de Teología"

// Breadcrumbs builds the trail from the work down to the deepest non-nil node.
func Breadcrumbs(part *Part, question *Question, article *Article) []Crumb {
	crumbs := []Crumb{{Label: WorkLabel, Path: "/"}}
	if part == nil {
		return crumbs
	}
	crumbs = append(crumbs, Crumb{Label: "Parte " + part.ID, Path: PartPath(part.ID)})
	if question == nil {
		return crumbs
	}
	crumbs = append(crumbs, Crumb{
		Label: fmt.Sprintf("Cuestión %d", question.ID),
		Path:  QuestionPath(part.ID, question.ID),
	})
	if article == nil {
		return crumbs
	}
	return append(crumbs, Crumb{
		Label: fmt.Sprintf("Artículo %d", article.ID),
		Path:  ArticlePath(part.ID, question.ID, article.ID),
	})
}

// PartPath is the address of a part
func PartPath(partID string) string { return "/" + partID }

// QuestionPath is the address of a question
func QuestionPath(partID string, questionID int) string {
	return fmt.Sprintf("/%s/%d", partID, questionID)
}

// ArticlePath is the address of an article
func ArticlePath(partID string, questionID, articleID int) string {
	return fmt.Sprintf("/%s/%d/%d", partID, questionID, articleID)
}
