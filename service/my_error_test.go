package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMyError(t *testing.T) {
	inner := errors.New("underlying")
	e := NewMyError(ErrBadParameter, "invalid member", inner)
	require.NotNil(t, e)
	assert.Equal(t, ErrBadParameter, e.Code)
	assert.Equal(t, "invalid member", e.Message)
	assert.Same(t, inner, e.Inner)
	assert.Equal(t, "bad_parameter invalid member: underlying", e.Error())
	assert.ErrorIs(t, e, inner)
}

func TestMyError_ErrorWithoutInner(t *testing.T) {
	assert.Equal(t, "entity_not_found no entry", NewEntityNotFoundError("no entry", nil).Error())
}

func TestCodedConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *MyError
		code string
		is   func(error) bool
	}{
		{name: "internal", err: NewInternalServerError("store failed", nil), code: ErrInternalServerError, is: IsInternalServerError},
		{name: "not_found", err: NewEntityNotFoundError("gone", nil), code: ErrEntityNotFound, is: IsEntityNotFoundError},
		{name: "bad_parameter", err: NewBadParameterError("bad", nil), code: ErrBadParameter, is: IsBadParameterError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.code, ToMyErrorCode(tt.err))
			assert.True(t, tt.is(tt.err))
			assert.True(t, tt.is(fmt.Errorf("wrapped: %w", tt.err)))
		})
	}
}

func TestCodedConstructors_KeepInnerMyError(t *testing.T) {
	inner := NewBadParameterError("bad", nil)
	got := NewInternalServerError("outer", inner)
	assert.Same(t, inner, got)
	assert.True(t, IsBadParameterError(got))
}

func TestToMyError_WithOrdinaryError(t *testing.T) {
	assert.Nil(t, ToMyError(errors.New("plain")))
	assert.Equal(t, "", ToMyErrorCode(errors.New("plain")))
	assert.False(t, IsMyError(errors.New("plain"), ""))
	assert.False(t, IsInternalServerError(nil))
}
