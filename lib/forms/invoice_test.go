package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCreateAcceptsValidSubmission(t *testing.T) {
	params := InvoiceParams{
		CustomerID: "3958dc9e-712f-4377-85e9-fec4b6a6442a",
		Amount:     "12.34",
		Status:     "pending",
	}

	payload, fieldErrors := params.ValidateCreate()
	assert.Nil(t, fieldErrors)
	assert.Equal(t, "3958dc9e-712f-4377-85e9-fec4b6a6442a", payload.CustomerID)
	assert.Equal(t, int64(1234), payload.AmountCents)
	assert.Equal(t, "pending", payload.Status)
}

func TestValidateCreateRejectsMissingCustomer(t *testing.T) {
	params := InvoiceParams{
		Amount: "10",
		Status: "paid",
	}

	payload, fieldErrors := params.ValidateCreate()
	assert.Nil(t, payload)
	assert.Equal(t, []string{"Please select a customer."}, fieldErrors.Errors["customerId"])
	assert.Equal(t, "Missing Fields. Failed to Create Invoice.", fieldErrors.Message)
}

func TestValidateCreateRejectsZeroAmount(t *testing.T) {
	params := InvoiceParams{
		CustomerID: "c1",
		Amount:     "0",
		Status:     "pending",
	}

	payload, fieldErrors := params.ValidateCreate()
	assert.Nil(t, payload)
	assert.Equal(t, []string{"Please enter an amount greater than $0."}, fieldErrors.Errors["amount"])
}

func TestValidateCreateCoercesNonNumericAmountToZero(t *testing.T) {
	params := InvoiceParams{
		CustomerID: "c1",
		Amount:     "not-a-number",
		Status:     "pending",
	}

	payload, fieldErrors := params.ValidateCreate()
	assert.Nil(t, payload)
	assert.Equal(t, []string{"Please enter an amount greater than $0."}, fieldErrors.Errors["amount"])
}

func TestValidateCreateRejectsNegativeAmount(t *testing.T) {
	params := InvoiceParams{
		CustomerID: "c1",
		Amount:     "-5",
		Status:     "pending",
	}

	payload, fieldErrors := params.ValidateCreate()
	assert.Nil(t, payload)
	assert.Equal(t, []string{"Please enter an amount greater than $0."}, fieldErrors.Errors["amount"])
}

func TestValidateCreateRejectsAmountBeyondCentsRange(t *testing.T) {
	params := InvoiceParams{
		CustomerID: "c1",
		Amount:     "1e300",
		Status:     "pending",
	}

	payload, fieldErrors := params.ValidateCreate()
	assert.Nil(t, payload)
	assert.Equal(t, []string{"Please enter an amount greater than $0."}, fieldErrors.Errors["amount"])
}

func TestValidateCreateAcceptsLargeAmountWithinCentsRange(t *testing.T) {
	params := InvoiceParams{
		CustomerID: "c1",
		Amount:     "1000000000",
		Status:     "paid",
	}

	payload, fieldErrors := params.ValidateCreate()
	assert.Nil(t, fieldErrors)
	assert.Equal(t, int64(100000000000), payload.AmountCents)
	assert.Greater(t, payload.AmountCents, int64(0))
}

func TestValidateCreateRejectsUnknownStatus(t *testing.T) {
	params := InvoiceParams{
		CustomerID: "c1",
		Amount:     "10",
		Status:     "overdue",
	}

	payload, fieldErrors := params.ValidateCreate()
	assert.Nil(t, payload)
	assert.Equal(t, []string{"Please select an invoice status."}, fieldErrors.Errors["status"])
}

func TestValidateCreateReportsAllMissingFields(t *testing.T) {
	payload, fieldErrors := InvoiceParams{}.ValidateCreate()
	assert.Nil(t, payload)
	assert.Len(t, fieldErrors.Errors, 3)
	assert.Equal(t, []string{"Please select a customer."}, fieldErrors.Errors["customerId"])
	assert.Equal(t, []string{"Please enter an amount greater than $0."}, fieldErrors.Errors["amount"])
	assert.Equal(t, []string{"Please select an invoice status."}, fieldErrors.Errors["status"])
}

func TestValidateUpdateUsesUpdateFailureContext(t *testing.T) {
	_, fieldErrors := InvoiceParams{}.ValidateUpdate()
	assert.Equal(t, "Missing Fields. Failed to Update Invoice.", fieldErrors.Message)
}

func TestAmountCentsRoundTrip(t *testing.T) {
	assert.Equal(t, int64(1234), AmountToCents(12.34))
	assert.Equal(t, 12.34, CentsToAmount(1234))

	// repeated cycles stay exact
	amount := 19.99
	for i := 0; i < 100; i++ {
		amount = CentsToAmount(AmountToCents(amount))
	}
	assert.Equal(t, 19.99, amount)
}
