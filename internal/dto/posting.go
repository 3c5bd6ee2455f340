package dto

import (
	"time"

	"github.com/calyxerp/calyx_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PostSaleRequest is the payload the POS sync module sends for a completed sale.
type PostSaleRequest struct {
	SaleID        string          `json:"saleID" binding:"required"`
	BranchID      string          `json:"branchID" binding:"required"`
	ReceiptNumber string          `json:"receiptNumber" binding:"required"`
	Subtotal      decimal.Decimal `json:"subtotal" binding:"required"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total" binding:"required"`
	OccurredAt    time.Time       `json:"occurredAt" binding:"required"`
}

// PostInvoiceRequest is the payload the invoicing module sends when an invoice
// is issued.
type PostInvoiceRequest struct {
	InvoiceID     string          `json:"invoiceID" binding:"required"`
	BranchID      string          `json:"branchID" binding:"required"`
	InvoiceNumber string          `json:"invoiceNumber" binding:"required"`
	Subtotal      decimal.Decimal `json:"subtotal" binding:"required"`
	TaxTotal      decimal.Decimal `json:"taxTotal"`
	Total         decimal.Decimal `json:"total" binding:"required"`
	Date          time.Time       `json:"date" binding:"required"`
}

// PostBillRequest is the payload the purchasing module sends for a vendor bill.
type PostBillRequest struct {
	BillID     string          `json:"billID" binding:"required"`
	BranchID   string          `json:"branchID" binding:"required"`
	BillNumber string          `json:"billNumber" binding:"required"`
	VendorName string          `json:"vendorName" binding:"required"`
	Subtotal   decimal.Decimal `json:"subtotal" binding:"required"`
	TaxAmount  decimal.Decimal `json:"taxAmount"`
	Total      decimal.Decimal `json:"total" binding:"required"`
	Date       time.Time       `json:"date" binding:"required"`
}

// ToSaleEvent converts the request into the domain event.
func (r *PostSaleRequest) ToSaleEvent() domain.SaleEvent {
	return domain.SaleEvent{
		SaleID:        r.SaleID,
		BranchID:      r.BranchID,
		ReceiptNumber: r.ReceiptNumber,
		Subtotal:      r.Subtotal,
		Tax:           r.Tax,
		Total:         r.Total,
		OccurredAt:    r.OccurredAt,
	}
}

// ToInvoiceEvent converts the request into the domain event.
func (r *PostInvoiceRequest) ToInvoiceEvent() domain.InvoiceEvent {
	return domain.InvoiceEvent{
		InvoiceID:     r.InvoiceID,
		BranchID:      r.BranchID,
		InvoiceNumber: r.InvoiceNumber,
		Subtotal:      r.Subtotal,
		TaxTotal:      r.TaxTotal,
		Total:         r.Total,
		Date:          r.Date,
	}
}

// ToBillEvent converts the request into the domain event.
func (r *PostBillRequest) ToBillEvent() domain.BillEvent {
	return domain.BillEvent{
		BillID:     r.BillID,
		BranchID:   r.BranchID,
		BillNumber: r.BillNumber,
		VendorName: r.VendorName,
		Subtotal:   r.Subtotal,
		TaxAmount:  r.TaxAmount,
		Total:      r.Total,
		Date:       r.Date,
	}
}
