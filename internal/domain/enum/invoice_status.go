package enum

// InvoiceStatus represents the payment status of an invoice
type InvoiceStatus string

const (
	InvoiceStatusPaid   InvoiceStatus = "PAID"
	InvoiceStatusUnpaid InvoiceStatus = "UNPAID"
)

// StatusForDue derives the invoice status from the outstanding amount in cents.
// An invoice is UNPAID exactly when something is still owed.
func StatusForDue(amountDue int64) InvoiceStatus {
	if amountDue > 0 {
		return InvoiceStatusUnpaid
	}
	return InvoiceStatusPaid
}
