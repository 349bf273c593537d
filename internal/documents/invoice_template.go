package documents

import (
	"bytes"
	"fmt"
	"html/template"
)

var invoiceTmpl = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"currency": FormatCurrency,
	"date":     FormatDate,
	"amount":   LineItemAmount,
}).Parse(invoiceTemplateHTML))

type invoiceView struct {
	Inv    *Invoice
	Totals Totals
}

// RenderInvoiceHTML produces the full HTML document submitted to the
// rendering API for PDF generation. Totals embedded here come from
// ComputeTotals, identical to the preview endpoint's arithmetic.
func RenderInvoiceHTML(inv *Invoice) (string, error) {
	var buf bytes.Buffer
	view := invoiceView{Inv: inv, Totals: ComputeTotals(inv)}
	if err := invoiceTmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("failed to render invoice template: %w", err)
	}
	return buf.String(), nil
}

const invoiceTemplateHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body {
  font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
  color: #374151;
  line-height: 1.5;
  background: white;
}
.invoice { max-width: 800px; margin: 0 auto; padding: 48px; }
.muted { font-size: 14px; color: #6b7280; }
.heading { font-size: 11px; font-weight: 600; color: #9ca3af; text-transform: uppercase; letter-spacing: 0.05em; margin-bottom: 8px; }
th { text-align: right; padding: 12px 0; font-size: 11px; font-weight: 600; color: #9ca3af; text-transform: uppercase; letter-spacing: 0.05em; }
td { padding: 12px 0; border-bottom: 1px solid #e5e7eb; text-align: right; color: #111827; }
</style>
</head>
<body>
<div class="invoice">
  <div style="display: flex; justify-content: space-between; align-items: flex-start; margin-bottom: 48px; padding-bottom: 24px; border-bottom: 2px solid #e5e7eb;">
    <div>
      {{if .Inv.CompanyLogo}}<img src="{{.Inv.CompanyLogo}}" alt="Company logo" style="height: 48px; width: auto; object-fit: contain; margin-bottom: 8px;" />{{end}}
      <h2 style="font-size: 20px; font-weight: 700; color: #111827; margin-bottom: 4px;">{{.Inv.CompanyName}}</h2>
      {{if .Inv.CompanyEmail}}<p class="muted">{{.Inv.CompanyEmail}}</p>{{end}}
      {{if .Inv.CompanyAddress}}<p class="muted" style="white-space: pre-line; margin-top: 4px;">{{.Inv.CompanyAddress}}</p>{{end}}
    </div>
    <div style="text-align: right;">
      <h1 style="font-size: 32px; font-weight: 700; color: #111827;">INVOICE</h1>
      <p style="font-size: 16px; color: #6b7280; margin-top: 4px;">#{{.Inv.InvoiceNumber}}</p>
    </div>
  </div>

  <div style="display: flex; justify-content: space-between; margin-bottom: 40px;">
    <div>
      <h3 class="heading">Bill To</h3>
      <p style="font-weight: 500; color: #111827; font-size: 16px;">{{.Inv.ClientName}}</p>
      {{if .Inv.ClientEmail}}<p class="muted">{{.Inv.ClientEmail}}</p>{{end}}
      {{if .Inv.ClientAddress}}<p class="muted" style="white-space: pre-line; margin-top: 4px;">{{.Inv.ClientAddress}}</p>{{end}}
    </div>
    <div style="text-align: right;">
      <div style="margin-bottom: 8px;">
        <span class="muted">Invoice Date: </span>
        <span style="font-size: 14px; font-weight: 500; color: #111827;">{{date .Inv.InvoiceDate}}</span>
      </div>
      <div>
        <span class="muted">Due Date: </span>
        <span style="font-size: 14px; font-weight: 500; color: #111827;">{{date .Inv.DueDate}}</span>
      </div>
    </div>
  </div>

  <table style="width: 100%; border-collapse: collapse; margin-bottom: 32px;">
    <thead>
      <tr style="border-bottom: 2px solid #e5e7eb;">
        <th style="text-align: left;">Description</th>
        <th style="width: 80px;">Qty</th>
        <th style="width: 100px;">Price</th>
        <th style="width: 120px;">Amount</th>
      </tr>
    </thead>
    <tbody>
      {{range .Inv.LineItems}}
      <tr>
        <td style="text-align: left;">{{.Description}}</td>
        <td>{{.Quantity}}</td>
        <td>{{currency .UnitPrice}}</td>
        <td style="font-weight: 500;">{{currency (amount .)}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>

  <div style="display: flex; justify-content: flex-end; margin-bottom: 40px;">
    <div style="width: 280px;">
      <div style="display: flex; justify-content: space-between; padding: 8px 0;">
        <span style="color: #6b7280;">Subtotal</span>
        <span style="font-weight: 500; color: #111827;">{{currency .Totals.Subtotal}}</span>
      </div>
      {{if gt .Totals.Discount 0.0}}
      <div style="display: flex; justify-content: space-between; padding: 8px 0;">
        <span style="color: #6b7280;">Discount{{if eq .Inv.DiscountType "percentage"}} ({{.Inv.DiscountValue}}%){{end}}</span>
        <span style="font-weight: 500; color: #16a34a;">-{{currency .Totals.Discount}}</span>
      </div>
      {{end}}
      {{if gt .Inv.TaxRate 0.0}}
      <div style="display: flex; justify-content: space-between; padding: 8px 0;">
        <span style="color: #6b7280;">Tax ({{.Inv.TaxRate}}%)</span>
        <span style="font-weight: 500; color: #111827;">{{currency .Totals.Tax}}</span>
      </div>
      {{end}}
      <div style="display: flex; justify-content: space-between; padding: 16px 0; border-top: 2px solid #111827; margin-top: 8px;">
        <span style="font-size: 18px; font-weight: 700; color: #111827;">Total</span>
        <span style="font-size: 18px; font-weight: 700; color: #111827;">{{currency .Totals.Total}}</span>
      </div>
    </div>
  </div>

  {{if or .Inv.Notes .Inv.PaymentInstructions}}
  <div style="border-top: 1px solid #e5e7eb; padding-top: 24px;">
    {{if .Inv.Notes}}
    <div style="margin-bottom: 16px;">
      <h3 class="heading">Notes</h3>
      <p class="muted" style="white-space: pre-line;">{{.Inv.Notes}}</p>
    </div>
    {{end}}
    {{if .Inv.PaymentInstructions}}
    <div>
      <h3 class="heading">Payment Instructions</h3>
      <p class="muted" style="white-space: pre-line;">{{.Inv.PaymentInstructions}}</p>
    </div>
    {{end}}
  </div>
  {{end}}
</div>
</body>
</html>
`
