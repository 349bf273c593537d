package documents

// Discount types accepted on an invoice.
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// LineItem is a single billable row on an invoice.
type LineItem struct {
	Description string  `json:"description" validate:"required"`
	Quantity    float64 `json:"quantity" validate:"gt=0"`
	UnitPrice   float64 `json:"unitPrice" validate:"gte=0"`
}

// Invoice holds the validated invoice form as submitted by the browser.
type Invoice struct {
	CompanyName    string `json:"companyName" validate:"required"`
	CompanyEmail   string `json:"companyEmail" validate:"omitempty,email"`
	CompanyAddress string `json:"companyAddress"`
	CompanyLogo    string `json:"companyLogo"`

	ClientName    string `json:"clientName" validate:"required"`
	ClientEmail   string `json:"clientEmail" validate:"omitempty,email"`
	ClientAddress string `json:"clientAddress"`

	InvoiceNumber string `json:"invoiceNumber" validate:"required"`
	InvoiceDate   string `json:"invoiceDate" validate:"required"`
	DueDate       string `json:"dueDate" validate:"required"`

	LineItems []LineItem `json:"lineItems" validate:"min=1,dive"`

	DiscountType  string  `json:"discountType" validate:"omitempty,oneof=percentage fixed"`
	DiscountValue float64 `json:"discountValue" validate:"gte=0"`
	TaxRate       float64 `json:"taxRate" validate:"gte=0,lte=100"`

	Notes               string `json:"notes"`
	PaymentInstructions string `json:"paymentInstructions"`
}

// Normalize fills form defaults before validation and rendering.
func (inv *Invoice) Normalize() {
	if inv.DiscountType == "" {
		inv.DiscountType = DiscountPercentage
	}
}

// Totals is the computed money breakdown for an invoice.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Taxable  float64 `json:"taxable"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// LineItemAmount returns quantity times unit price for one row.
func LineItemAmount(item LineItem) float64 {
	return item.Quantity * item.UnitPrice
}

// ComputeTotals derives the invoice money breakdown. It is the single
// source of truth shared by the preview endpoint and the PDF template,
// so the two always agree.
func ComputeTotals(inv *Invoice) Totals {
	var subtotal float64
	for _, item := range inv.LineItems {
		subtotal += LineItemAmount(item)
	}

	var discount float64
	switch inv.DiscountType {
	case DiscountFixed:
		discount = inv.DiscountValue
		if discount > subtotal {
			discount = subtotal
		}
	default:
		discount = subtotal * (inv.DiscountValue / 100)
	}

	taxable := subtotal - discount
	tax := taxable * (inv.TaxRate / 100)

	return Totals{
		Subtotal: subtotal,
		Discount: discount,
		Taxable:  taxable,
		Tax:      tax,
		Total:    taxable + tax,
	}
}
