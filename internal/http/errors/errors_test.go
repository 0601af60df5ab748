package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError_AppError(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteError(rr, ErrUserNotFound.WithDetail("id 7"))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "USER_NOT_FOUND", body["code"])
	assert.Equal(t, "id 7", body["detail"])
}

func TestWriteError_PlainErrorHidesCause(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteError(rr, stderrors.New("redis exploded"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "redis exploded")
}

func TestFromError_Unwraps(t *testing.T) {
	wrapped := fmt.Errorf("controller: %w", ErrInvalidJSON)
	assert.Same(t, ErrInvalidJSON, FromError(wrapped))

	cause := stderrors.New("boom")
	e := FromError(cause)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", e.Code)
	assert.ErrorIs(t, e, cause)
}

func TestWithDetail_DoesNotMutateBase(t *testing.T) {
	_ = ErrBadRequest.WithDetail("x").WithCause(stderrors.New("y"))
	assert.Empty(t, ErrBadRequest.Detail)
	assert.Nil(t, ErrBadRequest.Err)
	assert.Equal(t, "[BAD_REQUEST] The request has invalid syntax or missing parameters.", ErrBadRequest.Error())
}
