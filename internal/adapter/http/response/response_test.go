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

func setupEcho() (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return e, c, rec
}

func TestHealth(t *testing.T) {
	_, c, rec := setupEcho()

	err := Health(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var result HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "ok", result.Status)
}

func TestBadRequest(t *testing.T) {
	_, c, rec := setupEcho()

	err := BadRequest(c, "Invalid input")

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var result ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, CodeInvalidRequest, result.Code)
	assert.Equal(t, "Invalid input", result.Message)
}

func TestInvalidRequestBody(t *testing.T) {
	_, c, rec := setupEcho()

	err := InvalidRequestBody(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var result ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, CodeInvalidRequest, result.Code)
	assert.Equal(t, MsgInvalidRequestBody, result.Message)
}

func TestValidationError(t *testing.T) {
	_, c, rec := setupEcho()

	details := map[string]string{
		"origin":   "must be a 3-letter IATA code",
		"triptype": "must be one-way or round-trip",
	}
	err := ValidationError(c, details)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var result ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, CodeValidationError, result.Code)
	assert.Equal(t, MsgValidationFailed, result.Message)
	assert.Equal(t, "must be a 3-letter IATA code", result.Details["origin"])
	assert.Equal(t, "must be one-way or round-trip", result.Details["triptype"])
}

func TestValidationErrorWithMessage(t *testing.T) {
	_, c, rec := setupEcho()

	err := ValidationErrorWithMessage(c, "Custom validation message")

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var result ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, CodeValidationError, result.Code)
	assert.Equal(t, "Custom validation message", result.Message)
}

func TestNoResults(t *testing.T) {
	_, c, rec := setupEcho()

	err := NoResults(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var result ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, CodeNoResults, result.Code)
	assert.Equal(t, MsgNoResults, result.Message)
}

func TestRateLimited(t *testing.T) {
	_, c, rec := setupEcho()

	err := RateLimited(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var result ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, CodeRateLimited, result.Code)
	assert.Equal(t, MsgRateLimited, result.Message)
}

func TestUpstreamUnavailable(t *testing.T) {
	_, c, rec := setupEcho()

	err := UpstreamUnavailable(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var result ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, CodeUpstreamError, result.Code)
	assert.Equal(t, MsgUpstreamError, result.Message)
}

func TestGatewayTimeout(t *testing.T) {
	_, c, rec := setupEcho()

	err := GatewayTimeout(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)

	var result ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, CodeTimeout, result.Code)
	assert.Equal(t, MsgTimeout, result.Message)
}

func TestRequestCancelled(t *testing.T) {
	_, c, rec := setupEcho()

	err := RequestCancelled(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)

	var result ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, CodeTimeout, result.Code)
	assert.Equal(t, MsgRequestCancelled, result.Message)
}

func TestInternalServerError(t *testing.T) {
	_, c, rec := setupEcho()

	err := InternalServerError(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var result ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, CodeInternalError, result.Code)
	assert.Equal(t, MsgInternalError, result.Message)
}

func TestSearchResult(t *testing.T) {
	_, c, rec := setupEcho()

	payload := map[string]string{"id": "abc"}
	err := SearchResult(c, payload)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var result map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "abc", result["id"])
}
