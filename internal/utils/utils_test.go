package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserContext(t *testing.T) {
	t.Run("SetUserContext and GetUserIDFromContext", func(t *testing.T) {
		ctx := SetUserContext(context.Background(), "user-100", "user@example.com")

		id, ok := GetUserIDFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, "user-100", id)
		assert.Equal(t, "user@example.com", GetUserEmailFromContext(ctx))
	})

	t.Run("GetUserIDFromContext with empty context", func(t *testing.T) {
		_, ok := GetUserIDFromContext(context.Background())
		assert.False(t, ok)
		assert.Equal(t, "", GetUserEmailFromContext(context.Background()))
	})

	t.Run("Empty id is not a user", func(t *testing.T) {
		_, ok := GetUserIDFromContext(SetUserContext(context.Background(), "", ""))
		assert.False(t, ok)
	})
}

func TestPointers(t *testing.T) {
	p := StrPtr("value")
	require.NotNil(t, p)
	assert.Equal(t, "value", *p)
	assert.Equal(t, "value", PtrString(p))
	assert.Equal(t, "", PtrString(nil))
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSON(w, map[string]int{"count": 2}, http.StatusCreated)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"count": 2}`, w.Body.String())
}

func TestWriteJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSONError(w, "Product not found", http.StatusNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Product not found", body["message"])
}
