package controllers

import (
	"net/http"

	"github.com/acmehq/invoicehub/lib/service"
	"github.com/labstack/echo/v4"
)

// HomeController : Home controller struct
type HomeController struct {
	svc *service.InvoicehubService
}

func NewHomeController(svc *service.InvoicehubService) *HomeController {
	return &HomeController{svc: svc}
}

type HomeResponseBody struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Url         string `json:"url"`
}

func (controller *HomeController) Home(c echo.Context) error {
	branding := controller.svc.Config.Branding
	return c.JSON(http.StatusOK, &HomeResponseBody{
		Title:       branding.Title,
		Description: branding.Desc,
		Url:         branding.Url,
	})
}
