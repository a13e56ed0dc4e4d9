package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{ErrUnregisteredASIN, http.StatusBadRequest},
		{ErrUnresolvedMapping, http.StatusBadRequest},
		{ErrIntegrationNotLinked, http.StatusPreconditionFailed},
		{ErrDatabaseOperation, http.StatusInternalServerError},
		{ErrExternalService, http.StatusBadGateway},
		{ErrCommunication, http.StatusServiceUnavailable},
		{"XYZ_999", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.code))
		})
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrUnregisteredASIN, "ASIN sem cadastro", map[string]any{"unregisteredAsins": []string{"B0XYZ"}})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Code    string              `json:"code"`
		Message string              `json:"message"`
		Details map[string][]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrUnregisteredASIN, body.Code)
	assert.Equal(t, []string{"B0XYZ"}, body.Details["unregisteredAsins"])
}
