package domain

// FindPart scans the parts of doc for the given identifier.
// The returned pointer refers to the stored part and must not be mutated.
func FindPart(doc *Structure, partID string) (*Part, bool) {
	if doc == nil {
		return nil, false
	}
	parts := doc.Structure.Parts
	for i := range parts {
		if parts[i].ID == partID {
			return &parts[i], true
		}
	}
	return nil, false
}

// FindQuestion locates a question inside a part. A missing part yields no question.
func FindQuestion(doc *Structure, partID string, questionID int) (*Question, bool) {
	part, ok := FindPart(doc, partID)
	if !ok {
		return nil, false
	}
	return part.Question(questionID)
}

// FindArticle resolves the full (part, question, article) key.
func FindArticle(doc *Structure, partID string, questionID, articleID int) (*Article, bool) {
	question, ok := FindQuestion(doc, partID, questionID)
	if !ok {
		return nil, false
	}
	return question.Article(articleID)
}

// Question returns the question with the given id
func (p *Part) Question(questionID int) (*Question, bool) {
	if p == nil {
		return nil, false
	}
	for i := range p.Questions {
		if p.Questions[i].ID == questionID {
			return &p.Questions[i], true
		}
	}
	return nil, false
}

// Article returns the article with the given id
func (q *Question) Article(articleID int) (*Article, bool) {
	if q == nil {
		return nil, false
	}
	for i := range q.Articles {
		if q.Articles[i].ID == articleID {
			return &q.Articles[i], true
		}
	}
	return nil, false
}

// Locate resolves as much of the key as exists and reports the first level that
// failed, so callers can tell a missing part from a missing question or article.
// articleID <= 0 stops the lookup at the question level; questionID <= 0 stops it at the part.
func Locate(doc *Structure, partID string, questionID, articleID int) (Location, error) {
	loc := Location{}
	part, ok := FindPart(doc, partID)
	if !ok {
		return loc, NewPartNotFoundError(partID)
	}
	loc.Part = part
	if questionID <= 0 && articleID <= 0 {
		return loc, nil
	}
	question, ok := part.Question(questionID)
	if !ok {
		return loc, NewQuestionNotFoundError(partID, questionID)
	}
	loc.Question = question
	if articleID <= 0 {
		return loc, nil
	}
	article, ok := question.Article(articleID)
	if !ok {
		return loc, NewArticleNotFoundError(partID, questionID, articleID)
	}
	loc.Article = article
	return loc, nil
}

// Location is the result of resolving a composite key
type Location struct {
	Part     *Part
	Question *Question
	Article  *Article
}
