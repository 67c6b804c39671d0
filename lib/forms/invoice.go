package forms

import (
	"math"
	"strconv"

	"github.com/acmehq/invoicehub/lib/responses"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// InvoiceParams is the raw form submission, string-typed the way HTML forms
// produce it. Validation coerces it into an InvoicePayload or rejects it with
// per-field messages, it never returns a raised error.
type InvoiceParams struct {
	CustomerID string `json:"customerId" form:"customerId"`
	Amount     string `json:"amount" form:"amount"`
	Status     string `json:"status" form:"status"`
}

// InvoicePayload is the accepted, coerced shape of a create/update submission.
type InvoicePayload struct {
	CustomerID  string
	AmountCents int64
	Status      string
}

// The upper bound keeps the cent value inside int64, amounts beyond it
// would wrap negative in AmountToCents.
type invoiceSchema struct {
	CustomerID string  `validate:"required"`
	Amount     float64 `validate:"required,gt=0,lt=92233720368547758"`
	Status     string  `validate:"required,oneof=pending paid"`
}

var invoiceFieldNames = map[string]string{
	"CustomerID": "customerId",
	"Amount":     "amount",
	"Status":     "status",
}

var invoiceFieldMessages = map[string]string{
	"CustomerID": "Please select a customer.",
	"Amount":     "Please enter an amount greater than $0.",
	"Status":     "Please select an invoice status.",
}

// ValidateCreate checks a create submission. On failure the returned
// MutationResult carries the field messages and the create context summary.
func (p InvoiceParams) ValidateCreate() (*InvoicePayload, *responses.MutationResult) {
	return p.validate("Missing Fields. Failed to Create Invoice.")
}

// ValidateUpdate checks an update submission. The date field is not part of
// update input, it stays immutable on the stored invoice.
func (p InvoiceParams) ValidateUpdate() (*InvoicePayload, *responses.MutationResult) {
	return p.validate("Missing Fields. Failed to Update Invoice.")
}

func (p InvoiceParams) validate(failureMessage string) (*InvoicePayload, *responses.MutationResult) {
	// non-numeric amounts coerce to 0 and fail the gt=0 rule
	amount, err := strconv.ParseFloat(p.Amount, 64)
	if err != nil {
		amount = 0
	}
	schema := invoiceSchema{
		CustomerID: p.CustomerID,
		Amount:     amount,
		Status:     p.Status,
	}
	if err := validate.Struct(&schema); err != nil {
		fieldErrors := map[string][]string{}
		for _, fieldError := range err.(validator.ValidationErrors) {
			field := fieldError.StructField()
			fieldErrors[invoiceFieldNames[field]] = append(fieldErrors[invoiceFieldNames[field]], invoiceFieldMessages[field])
		}
		return nil, &responses.MutationResult{
			Errors:  fieldErrors,
			Message: failureMessage,
		}
	}
	return &InvoicePayload{
		CustomerID:  schema.CustomerID,
		AmountCents: AmountToCents(schema.Amount),
		Status:      schema.Status,
	}, nil
}

// AmountToCents converts a dollar amount into minor currency units. Rounding
// keeps 12.34 to 1234 and back exact across repeated create/update cycles.
func AmountToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CentsToAmount is the inverse of AmountToCents, used when redisplaying
// stored invoices.
func CentsToAmount(cents int64) float64 {
	return float64(cents) / 100
}
