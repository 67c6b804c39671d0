package service

import (
	"github.com/acmehq/invoicehub/lib/views"
	"github.com/labstack/gommon/random"
	"github.com/uptrace/bun"
	"github.com/ziflex/lecho/v3"
)

const alphaNumBytes = random.Alphanumeric

// InvoicehubService is constructed once at process start and passed by
// reference to the request handlers. It owns no request state.
type InvoicehubService struct {
	Config        *Config
	DB            *bun.DB
	Logger        *lecho.Logger
	ListCache     *views.Cache
	InvoicePubSub *Pubsub
}
