package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/acmehq/invoicehub/lib/responses"
	"github.com/acmehq/invoicehub/lib/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// Malformed credentials must be rejected before any database access: the
// test service has no database connection.
func postAuth(t *testing.T, body *AuthRequestBody) *httptest.ResponseRecorder {
	e := echo.New()
	var buf bytes.Buffer
	assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, "/auth", &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	svc := &service.InvoicehubService{Config: &service.Config{JWTSecret: []byte("test-secret")}}
	controller := NewAuthController(svc)
	assert.NoError(t, controller.Auth(c))
	return rec
}

func TestAuthRejectsMalformedEmail(t *testing.T) {
	rec := postAuth(t, &AuthRequestBody{Email: "not-an-email", Password: "secret123"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var response responses.ErrorResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, "Invalid credentials.", response.Message)
}

func TestAuthRejectsShortPassword(t *testing.T) {
	rec := postAuth(t, &AuthRequestBody{Email: "user@example.com", Password: "12345"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRejectsEmptyBody(t *testing.T) {
	rec := postAuth(t, &AuthRequestBody{})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var response responses.ErrorResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, "Invalid credentials.", response.Message)
}
