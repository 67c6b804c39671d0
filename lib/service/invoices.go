package service

import (
	"context"
	"time"

	"github.com/acmehq/invoicehub/common"
	"github.com/acmehq/invoicehub/db/models"
	"github.com/acmehq/invoicehub/lib/forms"
	"github.com/google/uuid"
)

// CreateInvoice inserts a validated submission. The id and the date are
// assigned here and never change afterwards.
func (svc *InvoicehubService) CreateInvoice(ctx context.Context, payload forms.InvoicePayload) (*models.Invoice, error) {
	invoice := &models.Invoice{
		ID:         uuid.NewString(),
		CustomerID: payload.CustomerID,
		Amount:     payload.AmountCents,
		Status:     payload.Status,
		Date:       time.Now().Format("2006-01-02"),
	}

	if _, err := svc.DB.NewInsert().Model(invoice).Exec(ctx); err != nil {
		return nil, err
	}

	svc.InvoicePubSub.Publish(common.InvoiceEventCreated, *invoice)
	return invoice, nil
}

// UpdateInvoice rewrites customer, amount and status of an existing invoice.
func (svc *InvoicehubService) UpdateInvoice(ctx context.Context, invoiceId string, payload forms.InvoicePayload) (*models.Invoice, error) {
	invoice, err := svc.FindInvoice(ctx, invoiceId)
	if err != nil {
		return nil, err
	}
	invoice.CustomerID = payload.CustomerID
	invoice.Amount = payload.AmountCents
	invoice.Status = payload.Status

	if _, err := svc.DB.NewUpdate().
		Model(invoice).
		Column("customer_id", "amount", "status", "updated_at").
		WherePK().
		Exec(ctx); err != nil {
		return nil, err
	}

	svc.InvoicePubSub.Publish(common.InvoiceEventUpdated, *invoice)
	return invoice, nil
}

// DeleteInvoice removes an invoice by id. Deleting an id that does not exist
// is a no-op, not an error.
func (svc *InvoicehubService) DeleteInvoice(ctx context.Context, invoiceId string) error {
	if _, err := svc.DB.NewDelete().
		Model((*models.Invoice)(nil)).
		Where("id = ?", invoiceId).
		Exec(ctx); err != nil {
		return err
	}

	svc.InvoicePubSub.Publish(common.InvoiceEventDeleted, models.Invoice{ID: invoiceId})
	return nil
}

func (svc *InvoicehubService) FindInvoice(ctx context.Context, invoiceId string) (*models.Invoice, error) {
	var invoice models.Invoice

	err := svc.DB.NewSelect().Model(&invoice).Where("id = ?", invoiceId).Limit(1).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (svc *InvoicehubService) Invoices(ctx context.Context) ([]models.Invoice, error) {
	invoices := []models.Invoice{}

	err := svc.DB.NewSelect().
		Model(&invoices).
		OrderExpr("date DESC, created_at DESC").
		Limit(100).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return invoices, nil
}
