package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindPart_RoundTrip(t *testing.T) {
	doc := multiPartDocument()
	for i := range doc.Structure.Parts {
		want := &doc.Structure.Parts[i]
		got, ok := FindPart(doc, want.ID)
		require.True(t, ok, "part %s", want.ID)
		assert.Same(t, want, got)
	}
}

func TestFindPart_Unknown(t *testing.T) {
	got, ok := FindPart(sampleDocument(), "IV")
	assert.False(t, ok)
	assert.Nil(t, got)

	got, ok = FindPart(nil, "I")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestFindQuestion_RoundTrip(t *testing.T) {
	doc := multiPartDocument()
	for i := range doc.Structure.Parts {
		part := &doc.Structure.Parts[i]
		for j := range part.Questions {
			want := &part.Questions[j]
			got, ok := FindQuestion(doc, part.ID, want.ID)
			require.True(t, ok)
			assert.Same(t, want, got)
		}
		got, ok := FindQuestion(doc, part.ID, -1)
		assert.False(t, ok)
		assert.Nil(t, got)
	}
}

func TestFindQuestion_UnknownPart(t *testing.T) {
	_, ok := FindQuestion(sampleDocument(), "II-II", 1)
	assert.False(t, ok)
}

func TestFindArticle_RoundTrip(t *testing.T) {
	doc := multiPartDocument()
	for i := range doc.Structure.Parts {
		part := &doc.Structure.Parts[i]
		for j := range part.Questions {
			q := &part.Questions[j]
			for k := range q.Articles {
				want := &q.Articles[k]
				got, ok := FindArticle(doc, part.ID, q.ID, want.ID)
				require.True(t, ok)
				assert.Same(t, want, got)
			}
		}
	}
}

func TestFindArticle_Scenario(t *testing.T) {
	doc := sampleDocument()

	article, ok := FindArticle(doc, "I", 2, 1)
	require.True(t, ok)
	assert.Equal(t, 1, article.ID)
	assert.Same(t, &doc.Structure.Parts[0].Questions[1].Articles[0], article)

	tests := []struct {
		name       string
		partID     string
		questionID int
		articleID  int
	}{
		{"unknown question", "I", 5, 1},
		{"unknown part", "II", 2, 1},
		{"unknown article", "I", 2, 9},
		{"negative ids", "I", -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindArticle(doc, tt.partID, tt.questionID, tt.articleID)
			assert.False(t, ok)
			assert.Nil(t, got)
		})
	}
}

func TestLocate_ReportsFailingLevel(t *testing.T) {
	doc := sampleDocument()

	tests := []struct {
		name       string
		partID     string
		questionID int
		articleID  int
		wantCode   ErrorCode
	}{
		{"part", "IV", 1, 1, CodePartNotFound},
		{"question", "I", 7, 1, CodeQuestionNotFound},
		{"article", "I", 1, 7, CodeArticleNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Locate(doc, tt.partID, tt.questionID, tt.articleID)
			var domainErr *DomainError
			require.True(t, errors.As(err, &domainErr))
			assert.Equal(t, tt.wantCode, domainErr.Code)
			assert.True(t, domainErr.IsNotFound())
		})
	}
}

func TestLocate_StopsAtRequestedLevel(t *testing.T) {
	doc := sampleDocument()

	loc, err := Locate(doc, "I", 0, 0)
	require.NoError(t, err)
	assert.NotNil(t, loc.Part)
	assert.Nil(t, loc.Question)

	loc, err = Locate(doc, "I", 3, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, loc.Question.ID)
	assert.Nil(t, loc.Article)

	loc, err = Locate(doc, "I", 3, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, loc.Article.ID)
}
