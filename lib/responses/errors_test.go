package responses

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestAuthRejectionsNotAllowedForSentry(t *testing.T) {
	authErrResponse := echo.NewHTTPError(http.StatusUnauthorized, echo.Map{
		"error":   true,
		"code":    1,
		"message": "Invalid credentials.",
	})

	isAllowed := isErrAllowedForSentry(authErrResponse)
	assert.False(t, isAllowed)
}

func TestOtherHTTPErrorsAllowedForSentry(t *testing.T) {
	badRequestResponse := echo.NewHTTPError(http.StatusBadRequest, echo.Map{
		"error":   true,
		"code":    8,
		"message": "Bad arguments",
	})

	isAllowed := isErrAllowedForSentry(badRequestResponse)
	assert.True(t, isAllowed)
}

func TestNonHTTPErrorsAllowedForSentry(t *testing.T) {
	err := errors.New("random error")

	isAllowed := isErrAllowedForSentry(err)
	assert.True(t, isAllowed)
}
