package domain

import "time"

// PrimaryLanguage is the only content language guaranteed on every article.
const PrimaryLanguage = "es"

// Structure is the root of the Summa document
type Structure struct {
	Title     string   `json:"title"`
	Author    string   `json:"author"`
	Subtitle  string   `json:"subtitle"`
	Languages []string `json:"languages"`
	Structure Body     `json:"structure"`
	Metadata  Metadata `json:"metadata"`

	// Version is the hash of the raw payload the document was decoded from.
	// It is set by the loader and never read from the source.
	Version string `json:"-"`
}

// Body holds the ordered parts of the document
type Body struct {
	Parts []Part `json:"parts"`
}

// Metadata carries the declared totals of the document
type Metadata struct {
	TotalQuestions int    `json:"totalQuestions"`
	TotalArticles  int    `json:"totalArticles"`
	LastUpdated    string `json:"lastUpdated"`
}

// LastUpdatedTime parses LastUpdated, accepting RFC3339 or a plain date.
func (m Metadata) LastUpdatedTime() (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, m.LastUpdated); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Part is a top-level division (Prima Pars, Prima Secundae, ...)
type Part struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Subtitle    string     `json:"subtitle"`
	Description string     `json:"description,omitempty"`
	Questions   []Question `json:"questions"`

	// Groups is derived by BuildGroups and never decoded from the source.
	Groups []QuestionGroup `json:"-"`
}

// Question is addressed by an integer id that is unique within its part
type Question struct {
	ID       int       `json:"id"`
	Title    string    `json:"title"`
	Articles []Article `json:"articles,omitempty"`
}

// Article is the leaf carrying the content, keyed by language code
type Article struct {
	ID      int                `json:"id"`
	Title   string             `json:"title"`
	Content map[string]Content `json:"content"`
}

// ContentFor returns the content in the given language.
// A missing language is an expected case and reported through ok.
func (a *Article) ContentFor(lang string) (Content, bool) {
	if a == nil || a.Content == nil {
		return Content{}, false
	}
	c, ok := a.Content[lang]
	return c, ok
}

// Languages lists the language codes the article has content for
func (a *Article) Languages() []string {
	if a == nil {
		return nil
	}
	langs := make([]string, 0, len(a.Content))
	if _, ok := a.Content[PrimaryLanguage]; ok {
		langs = append(langs, PrimaryLanguage)
	}
	for _, lang := range []string{"la", "en"} {
		if _, ok := a.Content[lang]; ok {
			langs = append(langs, lang)
		}
	}
	for lang := range a.Content {
		if lang != PrimaryLanguage && lang != "la" && lang != "en" {
			langs = append(langs, lang)
		}
	}
	return langs
}

// Content holds the four parts of an article in one language.
// Every field is optional and must be checked on its own.
type Content struct {
	Objections []Objection `json:"objections,omitempty"`
	SedContra  string      `json:"sed_contra,omitempty"`
	Corpus     string      `json:"corpus,omitempty"`
	Replies    []Reply     `json:"replies,omitempty"`
}

func (c Content) HasObjections() bool { return len(c.Objections) > 0 }
func (c Content) HasSedContra() bool  { return c.SedContra != "" }
func (c Content) HasCorpus() bool     { return c.Corpus != "" }
func (c Content) HasReplies() bool    { return len(c.Replies) > 0 }

// Empty reports whether no field is present
func (c Content) Empty() bool {
	return !c.HasObjections() && !c.HasSedContra() && !c.HasCorpus() && !c.HasReplies()
}

// ReplyTo returns the reply answering the given objection, if any
func (c Content) ReplyTo(objectionID int) (Reply, bool) {
	for _, r := range c.Replies {
		if r.ToObjection == objectionID {
			return r, true
		}
	}
	return Reply{}, false
}

// Objection is an argument against the thesis of the article
type Objection struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

// Reply answers one objection. ToObjection is not validated against the objections.
type Reply struct {
	ToObjection int    `json:"to_objection"`
	Text        string `json:"text"`
}

// QuestionGroup is a named range of questions inside a part.
// It is derived for navigation and never persisted.
type QuestionGroup struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	StartQuestion int        `json:"startQuestion"`
	EndQuestion   int        `json:"endQuestion"`
	Questions     []Question `json:"questions"`
}

// Contains reports whether the question id falls in the inclusive range
func (g QuestionGroup) Contains(questionID int) bool {
	return questionID >= g.StartQuestion && questionID <= g.EndQuestion
}

// Totals compares the declared metadata counts with the actual tree
type Totals struct {
	DeclaredQuestions int  `json:"declaredQuestions"`
	ActualQuestions   int  `json:"actualQuestions"`
	DeclaredArticles  int  `json:"declaredArticles"`
	ActualArticles    int  `json:"actualArticles"`
	Consistent        bool `json:"consistent"`
}

// VerifyTotals counts questions and articles and compares them with the metadata.
// The mismatch is reported, not enforced.
func (s *Structure) VerifyTotals() Totals {
	t := Totals{}
	if s == nil {
		t.Consistent = true
		return t
	}
	t.DeclaredQuestions = s.Metadata.TotalQuestions
	t.DeclaredArticles = s.Metadata.TotalArticles
	for _, p := range s.Structure.Parts {
		t.ActualQuestions += len(p.Questions)
		for _, q := range p.Questions {
			t.ActualArticles += len(q.Articles)
		}
	}
	t.Consistent = t.DeclaredQuestions == t.ActualQuestions && t.DeclaredArticles == t.ActualArticles
	return t
}

// SupportsLanguage reports whether lang is listed in the document languages
func (s *Structure) SupportsLanguage(lang string) bool {
	if s == nil {
		return false
	}
	for _, l := range s.Languages {
		if l == lang {
			return true
		}
	}
	return false
}
