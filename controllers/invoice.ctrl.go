package controllers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/acmehq/invoicehub/common"
	"github.com/acmehq/invoicehub/db/models"
	"github.com/acmehq/invoicehub/lib/forms"
	"github.com/acmehq/invoicehub/lib/responses"
	"github.com/acmehq/invoicehub/lib/service"
	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
	"github.com/skip2/go-qrcode"
)

// InvoiceController : Invoice controller struct
type InvoiceController struct {
	svc *service.InvoicehubService
}

func NewInvoiceController(svc *service.InvoicehubService) *InvoiceController {
	return &InvoiceController{svc: svc}
}

type Invoice struct {
	ID         string  `json:"id"`
	CustomerID string  `json:"customer_id"`
	Amount     float64 `json:"amount"`
	Status     string  `json:"status"`
	Date       string  `json:"date"`
}

type ListInvoicesResponseBody struct {
	Invoices []Invoice `json:"invoices"`
}

// Create validates a submission, persists it and redirects to the invoice
// list. Field errors render as a structured result, persistence failures as
// one fixed message.
func (controller *InvoiceController) Create(c echo.Context) error {
	var params forms.InvoiceParams
	if err := c.Bind(&params); err != nil {
		c.Logger().Errorf("Failed to load create invoice request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	payload, fieldErrors := params.ValidateCreate()
	if fieldErrors != nil {
		return c.JSON(http.StatusUnprocessableEntity, fieldErrors)
	}

	if _, err := controller.svc.CreateInvoice(c.Request().Context(), *payload); err != nil {
		c.Logger().Errorf("Failed to create invoice: %v", err)
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, responses.CreateInvoiceDatabaseError)
	}

	controller.svc.ListCache.Invalidate(common.InvoiceListRoute)
	return c.Redirect(http.StatusSeeOther, common.InvoiceListRoute)
}

// Update rewrites an existing invoice. The date stays untouched.
func (controller *InvoiceController) Update(c echo.Context) error {
	var params forms.InvoiceParams
	if err := c.Bind(&params); err != nil {
		c.Logger().Errorf("Failed to load update invoice request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	payload, fieldErrors := params.ValidateUpdate()
	if fieldErrors != nil {
		return c.JSON(http.StatusUnprocessableEntity, fieldErrors)
	}

	if _, err := controller.svc.UpdateInvoice(c.Request().Context(), c.Param("id"), *payload); err != nil {
		c.Logger().Errorf("Failed to update invoice %s: %v", c.Param("id"), err)
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, responses.UpdateInvoiceDatabaseError)
	}

	controller.svc.ListCache.Invalidate(common.InvoiceListRoute)
	return c.Redirect(http.StatusSeeOther, common.InvoiceListRoute)
}

// Delete removes an invoice and confirms with a message instead of a
// redirect. Deleting an id that is already gone reports success.
func (controller *InvoiceController) Delete(c echo.Context) error {
	if err := controller.svc.DeleteInvoice(c.Request().Context(), c.Param("id")); err != nil {
		c.Logger().Errorf("Failed to delete invoice %s: %v", c.Param("id"), err)
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, responses.DeleteInvoiceDatabaseError)
	}

	controller.svc.ListCache.Invalidate(common.InvoiceListRoute)
	return c.JSON(http.StatusOK, responses.DeletedInvoice)
}

// List serves the invoice list, from the view cache when it is warm.
func (controller *InvoiceController) List(c echo.Context) error {
	if body, ok := controller.svc.ListCache.Get(common.InvoiceListRoute); ok {
		return c.JSONBlob(http.StatusOK, body)
	}

	invoices, err := controller.svc.Invoices(c.Request().Context())
	if err != nil {
		return err
	}

	response := ListInvoicesResponseBody{Invoices: make([]Invoice, len(invoices))}
	for i, invoice := range invoices {
		response.Invoices[i] = newInvoiceResponse(&invoice)
	}
	body, err := json.Marshal(&response)
	if err != nil {
		return err
	}

	controller.svc.ListCache.Set(common.InvoiceListRoute, body)
	return c.JSONBlob(http.StatusOK, body)
}

func (controller *InvoiceController) Get(c echo.Context) error {
	invoice, err := controller.svc.FindInvoice(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, responses.InvoiceNotFoundError)
		}
		return err
	}
	response := newInvoiceResponse(invoice)
	return c.JSON(http.StatusOK, &response)
}

// PaymentQR renders the invoice's payment link as a PNG QR code.
func (controller *InvoiceController) PaymentQR(c echo.Context) error {
	invoice, err := controller.svc.FindInvoice(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, responses.InvoiceNotFoundError)
		}
		return err
	}

	png, err := qrcode.Encode(fmt.Sprintf("%s/%s", controller.svc.Config.PaymentPageUrl, invoice.ID), qrcode.Medium, 256)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/png", png)
}

func newInvoiceResponse(invoice *models.Invoice) Invoice {
	return Invoice{
		ID:         invoice.ID,
		CustomerID: invoice.CustomerID,
		Amount:     forms.CentsToAmount(invoice.Amount),
		Status:     invoice.Status,
		Date:       invoice.Date,
	}
}
