package core

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingFileError(t *testing.T) {
	err := NewMissingFileError()

	assert.Equal(t, http.StatusBadRequest, err.HTTPStatusCode())
	assert.Equal(t, "No file provided", err.Message)
	assert.Equal(t, map[string]string{"error": "No file provided"}, err.ToJSON())
}

func TestEmptyFilenameError(t *testing.T) {
	err := NewEmptyFilenameError()

	assert.Equal(t, http.StatusBadRequest, err.HTTPStatusCode())
	assert.Equal(t, "Empty filename", err.Message)
	assert.Equal(t, map[string]string{"error": "Empty filename"}, err.ToJSON())
}

func TestInternalError(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := NewInternalError(cause)

	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatusCode())
	assert.Equal(t, "unexpected EOF", err.Message)
	assert.Equal(t, map[string]string{"error": "unexpected EOF"}, err.ToJSON())
	assert.ErrorIs(t, err, cause)
}

func TestServiceErrorAs(t *testing.T) {
	var wrapped error = NewEmptyFilenameError()

	var svcErr *ServiceError
	require.ErrorAs(t, wrapped, &svcErr)
	assert.Equal(t, ErrorTypeEmptyFilename, svcErr.Type)
}

func TestDefaultStatusCodes(t *testing.T) {
	tests := []struct {
		typ  ErrorType
		want int
	}{
		{ErrorTypeMissingFile, http.StatusBadRequest},
		{ErrorTypeEmptyFilename, http.StatusBadRequest},
		{ErrorTypeInternal, http.StatusInternalServerError},
		{ErrorType("something_else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		err := &ServiceError{Type: tt.typ, Message: "x"}
		assert.Equal(t, tt.want, err.HTTPStatusCode(), "type %s", tt.typ)
	}
}
