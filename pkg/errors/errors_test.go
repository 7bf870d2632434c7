package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloneKeepsIdentityForIs(t *testing.T) {
	err := Clone(ErrNotFound, "consultation not found")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "consultation not found", err.Message)
	assert.Equal(t, "resource not found", ErrNotFound.Message)
}

func TestWrapUnwraps(t *testing.T) {
	cause := errors.New("socket closed")
	err := Wrap(cause, ErrStorage.Code, ErrStorage.Status, "failed")
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrStorage)
	assert.Equal(t, "failed: socket closed", err.Error())
}

func TestFromError(t *testing.T) {
	assert.Nil(t, FromError(nil))
	assert.Equal(t, http.StatusInternalServerError, FromError(errors.New("x")).Status)

	v := WithDetails(ErrValidation, []string{"name"})
	assert.Same(t, v, FromError(v))
	assert.Nil(t, ErrValidation.Details)
}
