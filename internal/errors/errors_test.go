package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DerivesCategoryFromCode(t *testing.T) {
	tests := []struct {
		code     string
		category Category
	}{
		{ErrCodeConfigNotFound, CategoryConfig},
		{ErrCodeConfigInvalid, CategoryConfig},
		{ErrCodeContentNotFound, CategoryContent},
		{ErrCodeContentParse, CategoryContent},
		{ErrCodeInvalidInput, CategoryValidation},
		{ErrCodeInternal, CategoryInternal},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := New(tt.code, "boom", nil)
			assert.Equal(t, tt.category, err.Category)
		})
	}
}

func TestError_Format(t *testing.T) {
	err := New(ErrCodeContentParse, "bad yaml", nil)
	assert.Equal(t, "[ERR_202_CONTENT_PARSE] bad yaml", err.Error())
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := stderrors.New("underlying")
	err := Wrap(ErrCodeContentParse, cause)

	require.NotNil(t, err)
	assert.Equal(t, "underlying", err.Message)
	assert.ErrorIs(t, err, cause)
}

func TestWrap_NilReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(ErrCodeInternal, nil))
}

func TestIs_MatchesByCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", ContentError("parse failed", nil))
	target := &SearchError{Code: ErrCodeContentParse}
	assert.ErrorIs(t, err, target)
}

func TestWithDetail(t *testing.T) {
	err := ConfigError("missing field", nil).
		WithDetail("field", "content_dir").
		WithDetail("file", "config.yaml")

	assert.Equal(t, "content_dir", err.Details["field"])
	assert.Equal(t, "config.yaml", err.Details["file"])
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, ErrCodeInvalidInput, GetCode(ValidationError("bad", nil)))
	assert.Equal(t, "", GetCode(stderrors.New("plain")))
}
