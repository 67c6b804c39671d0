package responses

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error          bool   `json:"error"`
	Code           int    `json:"code"`
	Message        string `json:"message"`
	HttpStatusCode int    `json:"-"`
}

// MutationResult is the structured outcome of a form mutation: field errors
// keyed by input name plus a summary message. Validation failures never
// propagate as raised errors, they are always rendered as one of these.
type MutationResult struct {
	Errors  map[string][]string `json:"errors,omitempty"`
	Message string              `json:"message,omitempty"`
}

var GeneralServerError = ErrorResponse{
	Error:          true,
	Code:           6,
	Message:        "Something went wrong.",
	HttpStatusCode: 500,
}

var BadArgumentsError = ErrorResponse{
	Error:          true,
	Code:           8,
	Message:        "Bad arguments",
	HttpStatusCode: 400,
}

var InvalidCredentialsError = ErrorResponse{
	Error:          true,
	Code:           1,
	Message:        "Invalid credentials.",
	HttpStatusCode: 401,
}

var EmailTakenError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "email already exists",
	HttpStatusCode: 400,
}

var InvoiceNotFoundError = ErrorResponse{
	Error:          true,
	Code:           3,
	Message:        "invoice not found",
	HttpStatusCode: 404,
}

// Persistence failures are reported with one fixed message per operation,
// the underlying database error is logged but never exposed.
var CreateInvoiceDatabaseError = MutationResult{
	Message: "Database Error: Failed to Create Invoice.",
}

var UpdateInvoiceDatabaseError = MutationResult{
	Message: "Database Error: Failed to Update Invoice.",
}

var DeleteInvoiceDatabaseError = MutationResult{
	Message: "Database Error: Failed to Delete Invoice.",
}

var DeletedInvoice = MutationResult{
	Message: "Deleted Invoice.",
}

func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	c.Logger().Error(err)
	if isErrAllowedForSentry(err) {
		if hub := sentryecho.GetHubFromContext(c); hub != nil {
			hub.WithScope(func(scope *sentry.Scope) {
				scope.SetExtra("UserID", c.Get("UserID"))
				hub.CaptureException(err)
			})
		}
	}
	if he, ok := err.(*echo.HTTPError); ok {
		c.JSON(he.Code, he.Message)
		return
	}
	c.JSON(http.StatusInternalServerError, GeneralServerError)
}

// auth rejections are user errors, not system faults
func isErrAllowedForSentry(err error) bool {
	he, ok := err.(*echo.HTTPError)
	if !ok {
		return true
	}
	return he.Code != http.StatusUnauthorized
}
