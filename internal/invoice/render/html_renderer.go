package render

import (
	"bytes"
	"html/template"
)

const invoiceHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Invoice {{.Invoice.Number}}</title>
  <style>
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 32px;
      font-family: "Helvetica Neue", Arial, sans-serif;
      color: #111827;
      background: #ffffff;
    }
    .invoice {
      max-width: 820px;
      margin: 0 auto;
    }
    .header {
      display: flex;
      justify-content: space-between;
      align-items: flex-start;
      border-bottom: 2px solid #2196f3;
      padding-bottom: 16px;
      margin-bottom: 24px;
    }
    .meta {
      text-align: right;
      font-size: 14px;
    }
    .label {
      color: #6b7280;
      text-transform: uppercase;
      letter-spacing: 0.04em;
      font-size: 11px;
    }
    .section { margin-bottom: 24px; }
    table {
      width: 100%;
      border-collapse: collapse;
      font-size: 14px;
    }
    th, td {
      padding: 10px;
      border-bottom: 1px solid #e5e7eb;
      text-align: left;
    }
    th {
      text-transform: uppercase;
      font-size: 11px;
      letter-spacing: 0.04em;
      color: #6b7280;
    }
    .totals {
      margin-top: 12px;
      text-align: right;
      font-size: 14px;
    }
    .totals .grand {
      font-size: 16px;
      color: #2196f3;
    }
    .footer {
      border-top: 1px solid #e5e7eb;
      padding-top: 16px;
      font-size: 12px;
      color: #6b7280;
    }
  </style>
</head>
<body>
  <div class="invoice">
    <div class="header">
      <div>
        <div><strong>{{.Company.Name}}</strong></div>
        <div>{{.Company.Address}}</div>
        <div>{{.Company.Contact}}</div>
      </div>
      <div class="meta">
        <div class="label">Invoice</div>
        <div><strong>{{.Invoice.Number}}</strong></div>
        <div>Date: {{formatDate .Invoice.InvoiceDate}}</div>
      </div>
    </div>

    <div class="section">
      <div class="label">Billed To</div>
      <div>{{.Customer.Name}}</div>
      <div>{{.Customer.Phone}}</div>
      {{if .Customer.Email}}<div>{{.Customer.Email}}</div>{{end}}
      {{if .Customer.Address}}<div>{{.Customer.Address}}</div>{{end}}
    </div>

    <div class="section">
      <table>
        <thead>
          <tr>
            <th>Product</th>
            <th>Description</th>
            <th>Qty</th>
            <th>Price</th>
            <th>Amount</th>
          </tr>
        </thead>
        <tbody>
          {{range .Items}}
          <tr>
            <td>{{.ProductName}}</td>
            <td>{{.Description}}</td>
            <td>{{.Quantity}}</td>
            <td>{{formatMoney .Price}}</td>
            <td>{{formatMoney .Amount}}</td>
          </tr>
          {{end}}
        </tbody>
      </table>
      <div class="totals">
        <div>Subtotal: {{formatMoney .Invoice.SubTotal}}</div>
        {{if not .Invoice.Discount.IsZero}}<div>Discount: -{{formatMoney .Invoice.Discount}}</div>{{end}}
        <div class="grand">Total: <strong>{{formatMoney .Invoice.Total}}</strong></div>
      </div>
    </div>

    <div class="footer">
      <div>Thank you for your business!</div>
      <div>Terms: Payment due upon receipt. Warranty covers manufacturing defects for 14 days.</div>
    </div>
  </div>
</body>
</html>
`

type HTMLRenderer struct {
	tpl *template.Template
}

func NewHTMLRenderer() *HTMLRenderer {
	funcs := template.FuncMap{
		"formatMoney": formatMoney,
		"formatDate":  formatDate,
	}
	return &HTMLRenderer{
		tpl: template.Must(template.New("invoice").Funcs(funcs).Parse(invoiceHTMLTemplate)),
	}
}

func (r *HTMLRenderer) RenderHTML(input RenderInput) (string, error) {
	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, input); err != nil {
		return "", err
	}
	return buf.String(), nil
}
