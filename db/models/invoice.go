package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// Invoice : Invoice Model
//
// Amount is kept in minor currency units (cents) so repeated
// create/update cycles never accumulate floating point drift.
// Date is assigned at creation and immutable afterwards.
type Invoice struct {
	bun.BaseModel `bun:"table:invoices"`

	ID         string       `json:"id" bun:",pk,type:uuid"`
	CustomerID string       `json:"customer_id" bun:"customer_id,notnull,type:uuid"`
	Customer   *Customer    `json:"-" bun:"rel:belongs-to,join:customer_id=id"`
	Amount     int64        `json:"amount" bun:",notnull"`
	Status     string       `json:"status" bun:",notnull,default:'pending'"`
	Date       string       `json:"date" bun:",notnull"`
	CreatedAt  time.Time    `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt  bun.NullTime `json:"updated_at"`
}

func (i *Invoice) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		i.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*Invoice)(nil)
