package mail

import (
	"bytes"
	"html/template"
	"time"

	"github.com/shopspring/decimal"

	"github.com/teklifhq/offerd/internal/models"
)

// The email body is a fixed template: offer number, customer greeting, the
// item table, grand total and validity date. Rendering is a pure function of
// the offer aggregate.
var bodyTpl = template.Must(template.New("offer_email").Funcs(template.FuncMap{
	"currency": Currency,
	"formatDate": func(t time.Time) string {
		return t.Format("02/01/2006")
	},
}).Parse(`<html><body>
<h2>Teklif: {{.OfferNumber}}</h2>
<p>Sayın {{.CustomerName}},</p>
<p>Talebiniz doğrultusunda hazırladığımız teklif aşağıdadır:</p>
<table border="1" style="border-collapse: collapse; width: 100%;">
<tr><th>Açıklama</th><th>Adet</th><th>Birim Fiyat</th><th>Toplam</th></tr>
{{range .Items}}<tr><td>{{.Description}}</td><td>{{.Quantity}}</td><td>{{currency .UnitPrice}}</td><td>{{currency .TotalPrice}}</td></tr>
{{end}}</table>
<p><strong>Toplam Tutar: {{currency .TotalAmount}}</strong></p>
<p>Teklif Geçerlilik Tarihi: {{formatDate .DueDate}}</p>
<p>Teşekkür ederiz.</p>
</body></html>
`))

// Currency renders a fixed-point amount as Turkish lira with two decimals.
func Currency(d decimal.Decimal) string {
	return "₺" + d.StringFixed(2)
}

// OfferBody renders the HTML email body for a fully-loaded offer.
func OfferBody(o *models.Offer) (string, error) {
	var buf bytes.Buffer
	if err := bodyTpl.Execute(&buf, o); err != nil {
		return "", err
	}
	return buf.String(), nil
}
