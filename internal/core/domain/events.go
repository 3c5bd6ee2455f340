package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Source events raised by the collaborating business modules (POS sync,
// invoicing, purchasing). The ledger core consumes these payloads through the
// posting adapters; it never reaches into the collaborators' own storage.

// SaleEvent is a completed POS sale.
type SaleEvent struct {
	SaleID        string          `json:"saleID"`
	BranchID      string          `json:"branchID"`
	ReceiptNumber string          `json:"receiptNumber"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	OccurredAt    time.Time       `json:"occurredAt"`
}

// InvoiceEvent is an issued customer invoice.
type InvoiceEvent struct {
	InvoiceID     string          `json:"invoiceID"`
	BranchID      string          `json:"branchID"`
	InvoiceNumber string          `json:"invoiceNumber"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxTotal      decimal.Decimal `json:"taxTotal"`
	Total         decimal.Decimal `json:"total"`
	Date          time.Time       `json:"date"`
}

// BillEvent is a received vendor bill.
type BillEvent struct {
	BillID     string          `json:"billID"`
	BranchID   string          `json:"branchID"`
	BillNumber string          `json:"billNumber"`
	VendorName string          `json:"vendorName"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	TaxAmount  decimal.Decimal `json:"taxAmount"`
	Total      decimal.Decimal `json:"total"`
	Date       time.Time       `json:"date"`
}
