package controllers

import (
	"net/http"

	"github.com/acmehq/invoicehub/lib/service"
	"github.com/labstack/echo/v4"
)

// CustomerController : Customer controller struct
type CustomerController struct {
	svc *service.InvoicehubService
}

func NewCustomerController(svc *service.InvoicehubService) *CustomerController {
	return &CustomerController{svc: svc}
}

type Customer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url,omitempty"`
}

type ListCustomersResponseBody struct {
	Customers []Customer `json:"customers"`
}

// List returns all customers, it backs the invoice form's customer select.
func (controller *CustomerController) List(c echo.Context) error {
	customers, err := controller.svc.Customers(c.Request().Context())
	if err != nil {
		return err
	}

	response := ListCustomersResponseBody{Customers: make([]Customer, len(customers))}
	for i, customer := range customers {
		response.Customers[i] = Customer{
			ID:       customer.ID,
			Name:     customer.Name,
			Email:    customer.Email,
			ImageURL: customer.ImageURL,
		}
	}
	return c.JSON(http.StatusOK, &response)
}
