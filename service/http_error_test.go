package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorContext(method string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/v1/routes/abc", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeErrResponse(t *testing.T, rec *httptest.ResponseRecorder) *MyError {
	t.Helper()
	var body ErrResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.NotNil(t, body.Error)
	return body.Error
}

func TestNewErrorCodeToStatusCodeMaps(t *testing.T) {
	m := NewErrorCodeToStatusCodeMaps()
	assert.Equal(t, http.StatusBadRequest, m[ErrBadParameter])
	assert.Equal(t, http.StatusNotFound, m[ErrEntityNotFound])
	assert.Equal(t, http.StatusInternalServerError, m[ErrInternalServerError])
}

func TestHTTPErrorHandler_Handler(t *testing.T) {
	reqErr := echo.NewHTTPError(http.StatusBadRequest, "request has an error").SetInternal(&openapi3filter.RequestError{Err: assert.AnError})

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{name: "my_error_bad_parameter", err: NewBadParameterError("member is required", nil), wantStatus: http.StatusBadRequest, wantCode: ErrBadParameter, wantMsg: "member is required"},
		{name: "my_error_not_found", err: NewEntityNotFoundError("no entry", nil), wantStatus: http.StatusNotFound, wantCode: ErrEntityNotFound, wantMsg: "no entry"},
		{name: "my_error_internal", err: NewInternalServerError("store failed", assert.AnError), wantStatus: http.StatusInternalServerError, wantCode: ErrInternalServerError, wantMsg: "store failed"},
		{name: "plain_error", err: assert.AnError, wantStatus: http.StatusInternalServerError, wantCode: ErrInternalServerError, wantMsg: "an internal server error has occurred"},
		{name: "openapi_request_error", err: reqErr, wantStatus: http.StatusBadRequest, wantCode: ErrBadParameter, wantMsg: "request has an error"},
		{name: "echo_not_found", err: echo.ErrNotFound, wantStatus: http.StatusNotFound, wantCode: ErrEntityNotFound, wantMsg: "Not Found"},
		{name: "echo_internal", err: echo.NewHTTPError(http.StatusServiceUnavailable, "draining"), wantStatus: http.StatusServiceUnavailable, wantCode: ErrInternalServerError, wantMsg: "draining"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newErrorContext(http.MethodGet)
			NewHTTPErrorHandler(NewErrorCodeToStatusCodeMaps(), log.NewNopLogger()).Handler(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeErrResponse(t, rec)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}

func TestHTTPErrorHandler_Handler_Head(t *testing.T) {
	c, rec := newErrorContext(http.MethodHead)
	NewHTTPErrorHandler(NewErrorCodeToStatusCodeMaps(), log.NewNopLogger()).Handler(NewEntityNotFoundError("gone", nil), c)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHTTPErrorHandler_Handler_Committed(t *testing.T) {
	c, rec := newErrorContext(http.MethodGet)
	require.NoError(t, c.NoContent(http.StatusOK))
	NewHTTPErrorHandler(NewErrorCodeToStatusCodeMaps(), log.NewNopLogger()).Handler(assert.AnError, c)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterErrorHandler(t *testing.T) {
	e := echo.New()
	RegisterErrorHandler(e, log.NewNopLogger())
	require.NotNil(t, e.HTTPErrorHandler)
}
