package service

import (
	"context"
	"errors"
	"testing"

	"summa-reader/internal/domain"
	"summa-reader/internal/loader"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireCode(t *testing.T, err error, code domain.ErrorCode) {
	t.Helper()
	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr), "expected DomainError, got %v", err)
	assert.Equal(t, code, domainErr.Code)
}

func TestReaderService_GetStructure(t *testing.T) {
	svc := NewReaderService(newStubLoader(testDocument()), nil, nil)

	resp, err := svc.GetStructure(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Suma de Teología", resp.Title)
	assert.Equal(t, "v1", resp.DocumentVersion)
	require.Len(t, resp.Parts, 2)
	assert.Equal(t, "I", resp.Parts[0].ID)
	assert.Equal(t, 3, resp.Parts[0].QuestionCount)
	assert.Equal(t, "/I-II", resp.Parts[1].Path)
}

func TestReaderService_LoadFailure(t *testing.T) {
	cause := &loader.LoadError{Source: "x", Err: &loader.StatusError{StatusCode: 500}}
	svc := NewReaderService(&stubLoader{id: "x", err: cause}, nil, nil)

	_, err := svc.GetStructure(context.Background())
	requireCode(t, err, domain.CodeLoadError)

	var statusErr *loader.StatusError
	assert.True(t, errors.As(err, &statusErr))
}

func TestReaderService_GetPart(t *testing.T) {
	svc := NewReaderService(newStubLoader(testDocument()), nil, nil)

	resp, err := svc.GetPart(context.Background(), "I")
	require.NoError(t, err)
	assert.Len(t, resp.Questions, 3)
	assert.Len(t, resp.Questions[0].ArticlePreview, articlePreviewSize)
	assert.Equal(t, 5, resp.Questions[0].ArticleCount)
	assert.Len(t, resp.Questions[2].ArticlePreview, 1)

	require.NotEmpty(t, resp.Groups)
	assert.Equal(t, "teologia", resp.Groups[0].ID)
	assert.Len(t, resp.Groups[0].Questions, 1)
	assert.Len(t, resp.Groups[1].Questions, 2)
	assert.Empty(t, resp.Ungrouped)
	assert.Len(t, resp.Breadcrumbs, 2)

	_, err = svc.GetPart(context.Background(), "IV")
	requireCode(t, err, domain.CodePartNotFound)
}

func TestReaderService_GetPart_CustomTable(t *testing.T) {
	table := domain.GroupTable{"I-II": {{ID: "g", Title: "Grupo", StartQuestion: 1, EndQuestion: 5}}}
	svc := NewReaderService(newStubLoader(testDocument()), nil, table)

	resp, err := svc.GetPart(context.Background(), "I-II")
	require.NoError(t, err)
	require.Len(t, resp.Groups, 1)
	assert.Len(t, resp.Groups[0].Questions, 5)
	require.Len(t, resp.Ungrouped, 1)
	assert.Equal(t, 6, resp.Ungrouped[0].ID)

	resp, err = svc.GetPart(context.Background(), "I")
	require.NoError(t, err)
	assert.Empty(t, resp.Groups)
	assert.Len(t, resp.Ungrouped, 3)
}

func TestReaderService_GetQuestion_Navigation(t *testing.T) {
	svc := NewReaderService(newStubLoader(testDocument()), nil, nil)
	ctx := context.Background()

	resp, err := svc.GetQuestion(ctx, "I", 1)
	require.NoError(t, err)
	assert.Nil(t, resp.Previous)
	require.NotNil(t, resp.Next)
	assert.Equal(t, 2, resp.Next.ID)
	assert.False(t, resp.Next.Exists)
	assert.Equal(t, "/I/2", resp.Next.Path)
	require.NotNil(t, resp.NextByPosition)
	assert.Equal(t, 3, resp.NextByPosition.ID)
	assert.True(t, resp.NextByPosition.Exists)
	assert.Len(t, resp.Articles, 5)

	resp, err = svc.GetQuestion(ctx, "I", 3)
	require.NoError(t, err)
	assert.Nil(t, resp.Next)
	assert.Equal(t, 4, resp.NextByPosition.ID)
	assert.Equal(t, 1, resp.PreviousByPosition.ID)

	resp, err = svc.GetQuestion(ctx, "I-II", 6)
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Previous.ID)
	assert.True(t, resp.Previous.Exists)
	assert.Nil(t, resp.Next)
}

func TestReaderService_GetQuestion_NotFound(t *testing.T) {
	stub := newStubLoader(testDocument())
	svc := NewReaderService(stub, nil, nil)
	ctx := context.Background()

	_, err := svc.GetQuestion(ctx, "I", 2)
	requireCode(t, err, domain.CodeQuestionNotFound)
	_, err = svc.GetQuestion(ctx, "IV", 1)
	requireCode(t, err, domain.CodePartNotFound)

	calls := stub.calls.Load()
	_, err = svc.GetQuestion(ctx, "I", 0)
	requireCode(t, err, domain.CodeQuestionNotFound)
	assert.Equal(t, calls, stub.calls.Load(), "non-positive ids are rejected before loading")
}

func TestReaderService_GetArticle(t *testing.T) {
	svc := NewReaderService(newStubLoader(testDocument()), nil, nil)
	ctx := context.Background()

	resp, err := svc.GetArticle(ctx, "I", 1, 1, "")
	require.NoError(t, err)
	assert.Equal(t, "es", resp.Language)
	assert.True(t, resp.ContentAvailable)
	require.NotNil(t, resp.Content)
	assert.Equal(t, "Respondo: Hay que decir...", resp.Content.Corpus)
	assert.Nil(t, resp.Previous)
	assert.Equal(t, 2, resp.Next.ID)
	assert.Equal(t, "/I/1/2", resp.Next.Path)
	assert.Len(t, resp.Breadcrumbs, 4)

	resp, err = svc.GetArticle(ctx, "I", 1, 5, "es")
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Previous.ID)
	assert.Nil(t, resp.Next)

	resp, err = svc.GetArticle(ctx, "I", 1, 3, "la")
	require.NoError(t, err)
	assert.False(t, resp.ContentAvailable)
	assert.Nil(t, resp.Content)
	assert.Equal(t, []string{"es"}, resp.AvailableLanguages)
}

func TestReaderService_GetArticle_NotFound(t *testing.T) {
	svc := NewReaderService(newStubLoader(testDocument()), nil, nil)
	ctx := context.Background()

	_, err := svc.GetArticle(ctx, "I", 3, 9, "es")
	requireCode(t, err, domain.CodeArticleNotFound)
	_, err = svc.GetArticle(ctx, "I", 9, 1, "es")
	requireCode(t, err, domain.CodeQuestionNotFound)
	_, err = svc.GetArticle(ctx, "II", 1, 1, "es")
	requireCode(t, err, domain.CodePartNotFound)
	_, err = svc.GetArticle(ctx, "I", 1, -1, "es")
	requireCode(t, err, domain.CodeArticleNotFound)
}

func TestReaderService_GetArticleMarkdown(t *testing.T) {
	svc := NewReaderService(newStubLoader(testDocument()), nil, nil)

	out, err := svc.GetArticleMarkdown(context.Background(), "I", 3, 2, "")
	require.NoError(t, err)
	assert.Contains(t, out, "# Artículo 2")
	assert.Contains(t, out, "Respondo: Hay que decir")

	_, err = svc.GetArticleMarkdown(context.Background(), "I", 3, 0, "")
	requireCode(t, err, domain.CodeArticleNotFound)
}

func TestReaderService_GetOutline(t *testing.T) {
	svc := NewReaderService(newStubLoader(testDocument()), nil, nil)

	resp, err := svc.GetOutline(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Parts, 2)
	assert.Len(t, resp.Parts[0].Groups, len(domain.DefaultGroupTable()["I"]))
	assert.Empty(t, resp.Parts[0].Groups[0].Questions[0].ArticlePreview)
	require.Len(t, resp.Parts[1].Ungrouped, 1)
	assert.Equal(t, 6, resp.Parts[1].Ungrouped[0].ID)
}

func TestReaderService_VerifyTotals(t *testing.T) {
	doc := testDocument()
	doc.Metadata.TotalArticles = 1000
	svc := NewReaderService(newStubLoader(doc), nil, nil)

	totals, err := svc.VerifyTotals(context.Background())
	require.NoError(t, err)
	assert.False(t, totals.Consistent)
	assert.Equal(t, 14, totals.ActualArticles)
	assert.Equal(t, 9, totals.ActualQuestions)
}

func TestReaderService_Reload(t *testing.T) {
	stub := newStubLoader(testDocument())
	svc := NewReaderService(stub, NewMemoryDocumentCache(), nil)
	ctx := context.Background()

	_, err := svc.GetStructure(ctx)
	require.NoError(t, err)
	_, err = svc.GetStructure(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(1), stub.calls.Load())

	resp, err := svc.Reload(ctx)
	require.NoError(t, err)
	assert.Equal(t, "v1", resp.DocumentVersion)
	assert.Equal(t, int32(2), stub.calls.Load())
}
