package transport

import (
	"github.com/acmehq/invoicehub/controllers"
	"github.com/acmehq/invoicehub/lib/service"
	"github.com/labstack/echo/v4"
)

func RegisterEndpoints(svc *service.InvoicehubService, e *echo.Echo, secured *echo.Group, securedWithStrictRateLimit *echo.Group, strictRateLimitMiddleware echo.MiddlewareFunc, adminMw echo.MiddlewareFunc, logMw echo.MiddlewareFunc) {
	e.GET("/", controllers.NewHomeController(svc).Home)
	e.GET("/health", controllers.NewHealthController().Check)
	e.POST("/auth", controllers.NewAuthController(svc).Auth, strictRateLimitMiddleware, logMw)

	if svc.Config.AllowAccountCreation {
		e.POST("/users", controllers.NewCreateUserController(svc).CreateUser, strictRateLimitMiddleware, adminMw, logMw)
	}

	invoiceCtrl := controllers.NewInvoiceController(svc)
	customerCtrl := controllers.NewCustomerController(svc)

	secured.GET("/dashboard/invoices", invoiceCtrl.List)
	secured.GET("/dashboard/invoices/:id", invoiceCtrl.Get)
	secured.GET("/dashboard/invoices/:id/qr", invoiceCtrl.PaymentQR)
	secured.GET("/dashboard/customers", customerCtrl.List)
	securedWithStrictRateLimit.POST("/dashboard/invoices", invoiceCtrl.Create)
	securedWithStrictRateLimit.PUT("/dashboard/invoices/:id", invoiceCtrl.Update)
	securedWithStrictRateLimit.DELETE("/dashboard/invoices/:id", invoiceCtrl.Delete)
}
