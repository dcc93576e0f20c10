package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/mtarp-portal/internal/model"
)

func TestStatusMapsSentinels(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, Status(fmt.Errorf("load: %w", model.ErrViewStateNotFound)))
	assert.Equal(t, http.StatusBadRequest, Status(fmt.Errorf("parse: %w", model.ErrUnknownTab)))
	assert.Equal(t, http.StatusBadRequest, Status(NewInvalidRequestError("bad")))
	assert.Equal(t, http.StatusInternalServerError, Status(errors.New("boom")))
}

func TestWriteErrorBody(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteError(rr, model.ErrUnknownTab)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, CodeUnknownTab, body.Error.Code)
}
