package service

import (
	"context"
	"errors"
	"summa-reader/internal/domain"
	"summa-reader/internal/dto"
	"summa-reader/internal/export"
	"summa-reader/internal/logger"

	"go.uber.org/zap"
)

// articlePreviewSize is how many articles a question summary lists
const articlePreviewSize = 3

// ReaderService defines the read operations over the document
type ReaderService interface {
	GetStructure(ctx context.Context) (*dto.StructureResponse, error)
	GetOutline(ctx context.Context) (*dto.OutlineResponse, error)
	GetPart(ctx context.Context, partID string) (*dto.PartResponse, error)
	GetQuestion(ctx context.Context, partID string, questionID int) (*dto.QuestionResponse, error)
	GetArticle(ctx context.Context, partID string, questionID, articleID int, lang string) (*dto.ArticleResponse, error)
	GetArticleMarkdown(ctx context.Context, partID string, questionID, articleID int, lang string) (string, error)
	VerifyTotals(ctx context.Context) (*domain.Totals, error)
	Reload(ctx context.Context) (*dto.ReloadResponse, error)
}

// readerService implements ReaderService
type readerService struct {
	loader   domain.DocumentLoader
	cache    DocumentCache
	table    domain.GroupTable
	exporter *export.MarkdownExporter
}

// NewReaderService creates a reader. A nil cache loads the document on every call;
// a nil table uses domain.DefaultGroupTable.
func NewReaderService(loader domain.DocumentLoader, cache DocumentCache, table domain.GroupTable) ReaderService {
	if cache == nil {
		cache = NewNoopDocumentCache()
	}
	if table == nil {
		table = domain.DefaultGroupTable()
	}
	return &readerService{
		loader:   loader,
		cache:    cache,
		table:    table,
		exporter: export.NewMarkdownExporter(),
	}
}

func (s *readerService) document(ctx context.Context) (*domain.Structure, error) {
	doc, err := s.cache.Get(ctx, s.loader)
	if err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return nil, domainErr
		}
		logger.Get().Error("ReaderService: document unavailable", zap.String("source", s.loader.SourceID()), zap.Error(err))
		return nil, domain.NewLoadError(err)
	}
	return doc, nil
}

// GetStructure implements ReaderService
func (s *readerService) GetStructure(ctx context.Context) (*dto.StructureResponse, error) {
	doc, err := s.document(ctx)
	if err != nil {
		return nil, err
	}

	parts := make([]dto.PartSummary, 0, len(doc.Structure.Parts))
	for _, p := range doc.Structure.Parts {
		parts = append(parts, dto.PartSummary{
			ID:            p.ID,
			Title:         p.Title,
			Subtitle:      p.Subtitle,
			QuestionCount: len(p.Questions),
			Path:          domain.PartPath(p.ID),
		})
	}
	return &dto.StructureResponse{
		Title:           doc.Title,
		Author:          doc.Author,
		Subtitle:        doc.Subtitle,
		Languages:       doc.Languages,
		Metadata:        doc.Metadata,
		Parts:           parts,
		DocumentVersion: doc.Version,
	}, nil
}

// GetOutline implements ReaderService
func (s *readerService) GetOutline(ctx context.Context) (*dto.OutlineResponse, error) {
	doc, err := s.document(ctx)
	if err != nil {
		return nil, err
	}

	out := &dto.OutlineResponse{Title: doc.Title, Parts: make([]dto.OutlinePart, 0, len(doc.Structure.Parts))}
	for i := range doc.Structure.Parts {
		part := &doc.Structure.Parts[i]
		groups := domain.BuildGroups(part, s.table)
		out.Parts = append(out.Parts, dto.OutlinePart{
			ID:        part.ID,
			Title:     part.Title,
			Groups:    groupResponses(part.ID, groups, false),
			Ungrouped: questionSummaries(part.ID, domain.UngroupedQuestions(part, groups), false),
		})
	}
	return out, nil
}

// GetPart implements ReaderService
func (s *readerService) GetPart(ctx context.Context, partID string) (*dto.PartResponse, error) {
	doc, err := s.document(ctx)
	if err != nil {
		return nil, err
	}

	loc, err := domain.Locate(doc, partID, 0, 0)
	if err != nil {
		return nil, err
	}
	part := domain.WithGroups(loc.Part, s.table)

	return &dto.PartResponse{
		ID:          part.ID,
		Title:       part.Title,
		Subtitle:    part.Subtitle,
		Description: part.Description,
		Questions:   questionSummaries(part.ID, part.Questions, true),
		Groups:      groupResponses(part.ID, part.Groups, false),
		Ungrouped:   questionSummaries(part.ID, domain.UngroupedQuestions(part, part.Groups), false),
		Breadcrumbs: domain.Breadcrumbs(part, nil, nil),
	}, nil
}

// GetQuestion implements ReaderService
func (s *readerService) GetQuestion(ctx context.Context, partID string, questionID int) (*dto.QuestionResponse, error) {
	if questionID <= 0 {
		return nil, domain.NewQuestionNotFoundError(partID, questionID)
	}
	doc, err := s.document(ctx)
	if err != nil {
		return nil, err
	}

	loc, err := domain.Locate(doc, partID, questionID, 0)
	if err != nil {
		return nil, err
	}
	part, question := loc.Part, loc.Question

	nav := domain.QuestionNeighbors(part, question.ID)
	prevPos, nextPos := domain.PositionalQuestionNeighbors(part, question.ID)

	resp := &dto.QuestionResponse{
		PartID:             part.ID,
		ID:                 question.ID,
		Title:              question.Title,
		Articles:           articleSummaries(part.ID, question.ID, question.Articles),
		PreviousByPosition: questionLink(part.ID, prevPos),
		NextByPosition:     questionLink(part.ID, nextPos),
		Breadcrumbs:        domain.Breadcrumbs(part, question, nil),
	}
	if nav.HasPrevious() {
		resp.Previous = questionIDLink(part.ID, nav.PrevID, nav.Prev)
	}
	if nav.HasNext() {
		resp.Next = questionIDLink(part.ID, nav.NextID, nav.Next)
	}
	return resp, nil
}

// GetArticle implements ReaderService
func (s *readerService) GetArticle(ctx context.Context, partID string, questionID, articleID int, lang string) (*dto.ArticleResponse, error) {
	if lang == "" {
		lang = domain.PrimaryLanguage
	}
	if questionID <= 0 {
		return nil, domain.NewQuestionNotFoundError(partID, questionID)
	}
	if articleID <= 0 {
		return nil, domain.NewArticleNotFoundError(partID, questionID, articleID)
	}
	doc, err := s.document(ctx)
	if err != nil {
		return nil, err
	}

	loc, err := domain.Locate(doc, partID, questionID, articleID)
	if err != nil {
		return nil, err
	}
	part, question, article := loc.Part, loc.Question, loc.Article

	resp := &dto.ArticleResponse{
		PartID:             part.ID,
		QuestionID:         question.ID,
		ID:                 article.ID,
		Title:              article.Title,
		Language:           lang,
		AvailableLanguages: article.Languages(),
		Breadcrumbs:        domain.Breadcrumbs(part, question, article),
	}
	if content, ok := article.ContentFor(lang); ok {
		resp.ContentAvailable = true
		resp.Content = &content
	} else {
		logger.Get().Debug("Article content unavailable in language",
			zap.String("part", part.ID),
			zap.Int("question", question.ID),
			zap.Int("article", article.ID),
			zap.String("lang", lang),
		)
	}

	nav := domain.ArticleNeighbors(question, article.ID)
	resp.Previous = articleLink(part.ID, question.ID, nav.Previous)
	resp.Next = articleLink(part.ID, question.ID, nav.Next)
	return resp, nil
}

// GetArticleMarkdown implements ReaderService
func (s *readerService) GetArticleMarkdown(ctx context.Context, partID string, questionID, articleID int, lang string) (string, error) {
	if lang == "" {
		lang = domain.PrimaryLanguage
	}
	doc, err := s.document(ctx)
	if err != nil {
		return "", err
	}
	loc, err := domain.Locate(doc, partID, questionID, articleID)
	if err != nil {
		return "", err
	}
	if loc.Article == nil {
		return "", domain.NewArticleNotFoundError(partID, questionID, articleID)
	}
	out, err := s.exporter.Article(partID, questionID, loc.Article, lang)
	if err != nil {
		return "", domain.NewInternalError("failed to render article", err)
	}
	return out, nil
}

// VerifyTotals implements ReaderService
func (s *readerService) VerifyTotals(ctx context.Context) (*domain.Totals, error) {
	doc, err := s.document(ctx)
	if err != nil {
		return nil, err
	}
	totals := doc.VerifyTotals()
	if !totals.Consistent {
		logger.Get().Warn("Declared totals do not match the document",
			zap.Int("declared_questions", totals.DeclaredQuestions),
			zap.Int("actual_questions", totals.ActualQuestions),
			zap.Int("declared_articles", totals.DeclaredArticles),
			zap.Int("actual_articles", totals.ActualArticles),
		)
	}
	return &totals, nil
}

// Reload implements ReaderService
func (s *readerService) Reload(ctx context.Context) (*dto.ReloadResponse, error) {
	if err := s.cache.Invalidate(ctx, s.loader.SourceID()); err != nil {
		return nil, err
	}
	doc, err := s.document(ctx)
	if err != nil {
		return nil, err
	}
	logger.Get().Info("Document reloaded", zap.String("source", s.loader.SourceID()), zap.String("version", doc.Version))
	return &dto.ReloadResponse{DocumentVersion: doc.Version}, nil
}

func questionSummaries(partID string, questions []domain.Question, withPreview bool) []dto.QuestionSummary {
	out := make([]dto.QuestionSummary, 0, len(questions))
	for _, q := range questions {
		summary := dto.QuestionSummary{
			ID:           q.ID,
			Title:        q.Title,
			ArticleCount: len(q.Articles),
			Path:         domain.QuestionPath(partID, q.ID),
		}
		if withPreview {
			n := len(q.Articles)
			if n > articlePreviewSize {
				n = articlePreviewSize
			}
			summary.ArticlePreview = articleSummaries(partID, q.ID, q.Articles[:n])
		}
		out = append(out, summary)
	}
	return out
}

func articleSummaries(partID string, questionID int, articles []domain.Article) []dto.ArticleSummary {
	out := make([]dto.ArticleSummary, 0, len(articles))
	for _, a := range articles {
		out = append(out, dto.ArticleSummary{
			ID:    a.ID,
			Title: a.Title,
			Path:  domain.ArticlePath(partID, questionID, a.ID),
		})
	}
	return out
}

func groupResponses(partID string, groups []domain.QuestionGroup, withPreview bool) []dto.GroupResponse {
	out := make([]dto.GroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.GroupResponse{
			ID:            g.ID,
			Title:         g.Title,
			StartQuestion: g.StartQuestion,
			EndQuestion:   g.EndQuestion,
			Questions:     questionSummaries(partID, g.Questions, withPreview),
		})
	}
	return out
}

func questionLink(partID string, q *domain.Question) *dto.NavLink {
	if q == nil {
		return nil
	}
	return questionIDLink(partID, q.ID, q)
}

func questionIDLink(partID string, id int, q *domain.Question) *dto.NavLink {
	link := &dto.NavLink{ID: id, Path: domain.QuestionPath(partID, id)}
	if q != nil {
		link.Title = q.Title
		link.Exists = true
	}
	return link
}

func articleLink(partID string, questionID int, a *domain.Article) *dto.NavLink {
	if a == nil {
		return nil
	}
	return &dto.NavLink{
		ID:     a.ID,
		Title:  a.Title,
		Path:   domain.ArticlePath(partID, questionID, a.ID),
		Exists: true,
	}
}
