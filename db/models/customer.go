package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Customer : Customer Model
//
// Customers are referenced by invoices and only read from this layer,
// they are provisioned out of band.
type Customer struct {
	bun.BaseModel `bun:"table:customers"`

	ID        string    `json:"id" bun:",pk,type:uuid"`
	Name      string    `json:"name" bun:",notnull"`
	Email     string    `json:"email" bun:",notnull"`
	ImageURL  string    `json:"image_url" bun:"image_url,nullzero"`
	CreatedAt time.Time `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
}
