package service

import (
	"context"

	"github.com/acmehq/invoicehub/db/models"
)

// Customers returns all customers, used to populate the invoice form's
// customer select.
func (svc *InvoicehubService) Customers(ctx context.Context) ([]models.Customer, error) {
	customers := []models.Customer{}

	err := svc.DB.NewSelect().Model(&customers).OrderExpr("name ASC").Scan(ctx)
	if err != nil {
		return nil, err
	}
	return customers, nil
}

func (svc *InvoicehubService) FindCustomer(ctx context.Context, customerId string) (*models.Customer, error) {
	var customer models.Customer

	err := svc.DB.NewSelect().Model(&customer).Where("id = ?", customerId).Limit(1).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &customer, nil
}
