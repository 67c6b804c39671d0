package common

const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"

	InvoiceEventCreated = "invoice.created"
	InvoiceEventUpdated = "invoice.updated"
	InvoiceEventDeleted = "invoice.deleted"

	// InvoiceListRoute is the key of the cached list view. Every successful
	// mutation releases exactly this entry.
	InvoiceListRoute = "/dashboard/invoices"
)

var InvoiceEvents = []string{
	InvoiceEventCreated,
	InvoiceEventUpdated,
	InvoiceEventDeleted,
}
