package controllers

import (
	"net/http"
	"strings"

	"github.com/acmehq/invoicehub/lib/responses"
	"github.com/acmehq/invoicehub/lib/service"
	"github.com/labstack/echo/v4"
)

// CreateUserController : Create user controller struct
type CreateUserController struct {
	svc *service.InvoicehubService
}

func NewCreateUserController(svc *service.InvoicehubService) *CreateUserController {
	return &CreateUserController{svc: svc}
}

type CreateUserRequestBody struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password"`
	Name     string `json:"name" form:"name"`
}
type CreateUserResponseBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// CreateUser : Provision a dashboard user. The plain text password is
// returned once, only the hash is stored.
func (controller *CreateUserController) CreateUser(c echo.Context) error {

	var body CreateUserRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load create user request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	user, err := controller.svc.CreateUser(c.Request().Context(), body.Email, body.Password, body.Name)
	if err != nil {
		c.Logger().Errorf("Failed to create user: %v", err)
		if strings.Contains(err.Error(), "duplicate") && strings.Contains(err.Error(), "email") {
			return c.JSON(http.StatusBadRequest, responses.EmailTakenError)
		}
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	var ResponseBody CreateUserResponseBody
	ResponseBody.Email = user.Email
	ResponseBody.Password = user.Password
	ResponseBody.Name = user.Name

	return c.JSON(http.StatusOK, &ResponseBody)
}
