package validation

import (
	"testing"

	"summa-reader/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePartID(t *testing.T) {
	v := NewValidator()

	for _, id := range []string{"I", "I-II", "II-II", "III", "suppl"} {
		assert.Empty(t, v.ValidatePartID(id), id)
	}

	errs := v.ValidatePartID("")
	require.Len(t, errs, 1)
	assert.Equal(t, domain.CodeMissingField, errs[0].Code)

	errs = v.ValidatePartID("I II")
	require.Len(t, errs, 1)
	assert.Equal(t, domain.CodeInvalidFormat, errs[0].Code)
	assert.Equal(t, "I II", errs[0].Value)

	assert.NotEmpty(t, v.ValidatePartID("averyveryverylongpartid"))
}

func TestParseID(t *testing.T) {
	v := NewValidator()

	id, errs := v.ParseID("questionId", "42")
	assert.Empty(t, errs)
	assert.Equal(t, 42, id)

	tests := []struct {
		raw      string
		wantCode domain.ErrorCode
	}{
		{"", domain.CodeMissingField},
		{"abc", domain.CodeInvalidFormat},
		{"0", domain.CodeInvalidFormat},
		{"-3", domain.CodeInvalidFormat},
		{"1.5", domain.CodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			id, errs := v.ParseID("articleId", tt.raw)
			assert.Zero(t, id)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantCode, errs[0].Code)
			assert.Equal(t, "articleId", errs[0].Field)
		})
	}
}

func TestValidateLanguage(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.ValidateLanguage(""))
	assert.Empty(t, v.ValidateLanguage("la"))
	assert.NotEmpty(t, v.ValidateLanguage("ES"))
	assert.NotEmpty(t, v.ValidateLanguage("spa"))
}

func TestValidateWorkID(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.ValidateWorkID("summa-theologica"))
	assert.Equal(t, domain.CodeMissingField, v.ValidateWorkID(" ")[0].Code)
	assert.Equal(t, domain.CodeInvalidFormat, v.ValidateWorkID("Summa_Theologica")[0].Code)
}
