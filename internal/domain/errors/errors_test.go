package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorConstructors(t *testing.T) {
	e := NotFound("job not found")
	assert.Equal(t, http.StatusNotFound, e.Status)
	assert.Equal(t, "NOT_FOUND", e.Code)
	assert.True(t, errors.Is(e, ErrNotFound))

	c := Conflict("duplicate id")
	assert.Equal(t, http.StatusConflict, c.Status)
	assert.True(t, errors.Is(c, ErrAlreadyExists))
}

func TestAppErrorMessages(t *testing.T) {
	wrapped := errors.New("pq: connection refused")
	e := InternalError(wrapped)
	assert.Equal(t, "pq: connection refused", e.Error())

	noCause := NewAppError(http.StatusBadRequest, "INVALID_INPUT", "bad field", nil)
	assert.Equal(t, "bad field", noCause.Error())
}
