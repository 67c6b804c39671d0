package controllers

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/acmehq/invoicehub/common"
	"github.com/acmehq/invoicehub/db/models"
	"github.com/acmehq/invoicehub/lib/forms"
	"github.com/acmehq/invoicehub/lib/responses"
	"github.com/acmehq/invoicehub/lib/service"
	"github.com/acmehq/invoicehub/lib/views"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite"
)

// The service deliberately has no database connection: any persistence
// attempt on a rejected submission would panic the test.
func newInvoiceTestContext(t *testing.T, form url.Values) (echo.Context, *httptest.ResponseRecorder, *InvoiceController) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/dashboard/invoices", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	controller := NewInvoiceController(&service.InvoicehubService{})
	return c, rec, controller
}

func TestCreateInvoiceRejectsZeroAmount(t *testing.T) {
	form := url.Values{}
	form.Set("customerId", "c1")
	form.Set("amount", "0")
	form.Set("status", "pending")
	c, rec, controller := newInvoiceTestContext(t, form)

	assert.NoError(t, controller.Create(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	result := &responses.MutationResult{}
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(result))
	assert.Equal(t, []string{"Please enter an amount greater than $0."}, result.Errors["amount"])
	assert.Equal(t, "Missing Fields. Failed to Create Invoice.", result.Message)
}

func TestCreateInvoiceRejectsMissingFields(t *testing.T) {
	c, rec, controller := newInvoiceTestContext(t, url.Values{})

	assert.NoError(t, controller.Create(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	result := &responses.MutationResult{}
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(result))
	assert.Equal(t, []string{"Please select a customer."}, result.Errors["customerId"])
	assert.Equal(t, []string{"Please enter an amount greater than $0."}, result.Errors["amount"])
	assert.Equal(t, []string{"Please select an invoice status."}, result.Errors["status"])
}

func TestCreateInvoiceRejectsInvalidStatus(t *testing.T) {
	form := url.Values{}
	form.Set("customerId", "c1")
	form.Set("amount", "10.50")
	form.Set("status", "overdue")
	c, rec, controller := newInvoiceTestContext(t, form)

	assert.NoError(t, controller.Create(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	result := &responses.MutationResult{}
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(result))
	assert.Equal(t, []string{"Please select an invoice status."}, result.Errors["status"])
}

func TestUpdateInvoiceRejectsInvalidSubmission(t *testing.T) {
	e := echo.New()
	form := url.Values{}
	form.Set("customerId", "c1")
	form.Set("amount", "abc")
	form.Set("status", "paid")
	req := httptest.NewRequest(http.MethodPut, "/dashboard/invoices/inv-1", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("inv-1")
	controller := NewInvoiceController(&service.InvoicehubService{})

	assert.NoError(t, controller.Update(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	result := &responses.MutationResult{}
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(result))
	assert.Equal(t, []string{"Please enter an amount greater than $0."}, result.Errors["amount"])
	assert.Equal(t, "Missing Fields. Failed to Update Invoice.", result.Message)
}

// Delete runs against an in-memory sqlite database so the handler exercises
// the real query path, including the nonexistent-id case.
func newDeleteTestController(t *testing.T) (*InvoiceController, *service.InvoicehubService) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	sqlDB, err := sql.Open("sqlite", dsn)
	assert.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	db := bun.NewDB(sqlDB, sqlitedialect.New())
	_, err = db.NewCreateTable().
		Model((*models.Invoice)(nil)).
		Exec(context.Background())
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	listCache, err := views.NewCache(10, time.Minute)
	assert.NoError(t, err)

	svc := &service.InvoicehubService{
		Config:        &service.Config{},
		DB:            db,
		ListCache:     listCache,
		InvoicePubSub: service.NewPubsub(),
	}
	return NewInvoiceController(svc), svc
}

func newDeleteTestContext(invoiceId string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/dashboard/invoices/"+invoiceId, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(invoiceId)
	return c, rec
}

func TestDeleteInvoiceConfirmsAndInvalidatesListCache(t *testing.T) {
	controller, svc := newDeleteTestController(t)
	invoice, err := svc.CreateInvoice(context.Background(), forms.InvoicePayload{
		CustomerID:  "3958dc9e-712f-4377-85e9-fec4b6a6442a",
		AmountCents: 1234,
		Status:      "pending",
	})
	assert.NoError(t, err)
	svc.ListCache.Set(common.InvoiceListRoute, []byte(`[{"stale":true}]`))

	c, rec := newDeleteTestContext(invoice.ID)
	assert.NoError(t, controller.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	result := &responses.MutationResult{}
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(result))
	assert.Equal(t, "Deleted Invoice.", result.Message)

	_, cached := svc.ListCache.Get(common.InvoiceListRoute)
	assert.False(t, cached)
}

func TestDeleteInvoiceWithUnknownIdStillConfirms(t *testing.T) {
	controller, _ := newDeleteTestController(t)

	c, rec := newDeleteTestContext("0b6e5ba0-4c0e-4b62-9d77-3d2f3bb1a001")
	assert.NoError(t, controller.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	result := &responses.MutationResult{}
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(result))
	assert.Equal(t, "Deleted Invoice.", result.Message)
}
