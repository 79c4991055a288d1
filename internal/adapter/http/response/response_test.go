package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEcho() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeFailure(t *testing.T, rec *httptest.ResponseRecorder) ErrorDetail {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	return *resp.Error
}

func TestHealth(t *testing.T) {
	c, rec := setupEcho()

	require.NoError(t, Health(c, 12))

	assert.Equal(t, http.StatusOK, rec.Code)
	var result HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "ok", result.Status)
	assert.Equal(t, 12, result.ChartEntries)
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name        string
		write       func(echo.Context) error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "bad request",
			write:       func(c echo.Context) error { return BadRequest(c, "Invalid input") },
			wantStatus:  http.StatusBadRequest,
			wantCode:    CodeInvalidRequest,
			wantMessage: "Invalid input",
		},
		{
			name:        "invalid body",
			write:       InvalidRequestBody,
			wantStatus:  http.StatusBadRequest,
			wantCode:    CodeInvalidRequest,
			wantMessage: MsgInvalidRequestBody,
		},
		{
			name:        "validation with message",
			write:       func(c echo.Context) error { return ValidationErrorWithMessage(c, "topN is invalid") },
			wantStatus:  http.StatusBadRequest,
			wantCode:    CodeValidationError,
			wantMessage: "topN is invalid",
		},
		{
			name:        "not found",
			write:       func(c echo.Context) error { return NotFound(c, "no such route") },
			wantStatus:  http.StatusNotFound,
			wantCode:    CodeNotFound,
			wantMessage: "no such route",
		},
		{
			name:        "internal error",
			write:       InternalServerError,
			wantStatus:  http.StatusInternalServerError,
			wantCode:    CodeInternalError,
			wantMessage: MsgInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := setupEcho()

			require.NoError(t, tt.write(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			detail := decodeFailure(t, rec)
			assert.Equal(t, tt.wantCode, detail.Code)
			assert.Equal(t, tt.wantMessage, detail.Message)
			assert.Empty(t, detail.Details)
		})
	}
}

func TestValidationError(t *testing.T) {
	c, rec := setupEcho()

	err := ValidationError(c, map[string]string{
		"origin": "origin is required",
		"topN":   "topN must be between 1 and 50",
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	detail := decodeFailure(t, rec)
	assert.Equal(t, CodeValidationError, detail.Code)
	assert.Equal(t, MsgValidationFailed, detail.Message)
	assert.Equal(t, "origin is required", detail.Details["origin"])
	assert.Equal(t, "topN must be between 1 and 50", detail.Details["topN"])
}

func TestOK(t *testing.T) {
	c, rec := setupEcho()

	require.NoError(t, OK(c, map[string]int{"total": 3}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total": 3}`, rec.Body.String())
}
