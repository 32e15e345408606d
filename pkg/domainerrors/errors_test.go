package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	err := New(CodeNotFound, "Affaire non trouvée")
	assert.True(t, Is(err, CodeNotFound))
	assert.False(t, Is(err, CodeBadRequest))

	wrapped := fmt.Errorf("handler: %w", err)
	assert.True(t, Is(wrapped, CodeNotFound))

	assert.False(t, Is(errors.New("plain"), CodeNotFound))
	assert.False(t, Is(nil, CodeNotFound))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(CodeInternal, "list whistleblowers", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, ToHTTPStatus(CodeNotFound))
	assert.Equal(t, http.StatusBadRequest, ToHTTPStatus(CodeBadRequest))
	assert.Equal(t, http.StatusInternalServerError, ToHTTPStatus(CodeInternal))
	assert.Equal(t, http.StatusInternalServerError, ToHTTPStatus(Code("mystery")))
}
