package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotelpos/shared/constant"
	"hotelpos/shared/failure"
	"hotelpos/transport/http/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]string{"id": "o-1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, constant.ContentTypeJSON, rec.Header().Get(constant.RequestHeaderContentType))
	assert.Equal(t, map[string]any{"id": "o-1"}, decode(t, rec)["data"])
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "failure keeps its message",
			err:      failure.Conflict("stay already closed"),
			wantCode: http.StatusConflict,
			wantMsg:  "stay already closed",
		},
		{
			name:     "internal error is masked",
			err:      errors.New("pq: connection refused"),
			wantCode: http.StatusInternalServerError,
			wantMsg:  http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantMsg, decode(t, rec)["error"])
		})
	}
}

func TestWithFile(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithFile(rec, constant.ContentTypePDF, "ticket.pdf", []byte("%PDF-1.3"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constant.ContentTypePDF, rec.Header().Get(constant.RequestHeaderContentType))
	assert.Equal(t, `attachment; filename="ticket.pdf"`, rec.Header().Get(constant.RequestHeaderContentDisposition))
	assert.Equal(t, "%PDF-1.3", rec.Body.String())
}

func TestWithRequestLimitExceeded(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithRequestLimitExceeded(rec)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, constant.ResponseErrorRequestLimitExceeded, decode(t, rec)["message"])
}

type recordingScope struct {
	traced []error
}

func (s *recordingScope) TraceError(err error) {
	s.traced = append(s.traced, err)
}

func TestFail(t *testing.T) {
	scope := &recordingScope{}
	rec := httptest.NewRecorder()
	err := failure.NotFound("room not found")

	response.Fail(rec, scope, err, "get room")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "room not found", decode(t, rec)["error"])
	assert.Equal(t, []error{err}, scope.traced)
}
