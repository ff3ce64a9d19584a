// Package pdf renders the one-page offer document.
package pdf

import (
	"fmt"
	"strconv"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/teklifhq/offerd/internal/models"
)

// Offer renders an A4 document for a fully-loaded offer (Company and Items
// populated): company header, offer metadata, item table and a grand-total
// footer spanning the first three columns. Pure function of the aggregate.
func Offer(o *models.Offer) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(20).
		WithTopMargin(20).
		WithRightMargin(20).
		WithDefaultFont(&props.Font{Size: 12}).
		Build()
	m := maroto.New(cfg)

	m.AddRow(9, text.NewCol(12, o.Company.Name, props.Text{Size: 18, Style: fontstyle.Bold}))
	m.AddRow(6, text.NewCol(12, o.Company.Address))
	m.AddRow(6, text.NewCol(12, fmt.Sprintf("Telefon: %s  E-posta: %s", o.Company.Phone, o.Company.Email)))
	m.AddRow(5, line.NewCol(12))

	m.AddRow(6, text.NewCol(12, "Teklif No: "+o.OfferNumber, props.Text{Style: fontstyle.Bold}))
	m.AddRow(6, text.NewCol(12, "Tarih: "+o.OfferDate.Format("02.01.2006")))
	m.AddRow(6, text.NewCol(12, "Müşteri: "+o.CustomerName))
	m.AddRow(6, text.NewCol(12, "Adres: "+o.CustomerAddress))
	m.AddRow(5, line.NewCol(12))

	m.AddRow(7,
		text.NewCol(6, "Açıklama", props.Text{Style: fontstyle.Bold}),
		text.NewCol(2, "Adet", props.Text{Style: fontstyle.Bold, Align: align.Center}),
		text.NewCol(2, "Birim Fiyat", props.Text{Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(2, "Toplam", props.Text{Style: fontstyle.Bold, Align: align.Right}),
	)
	for _, it := range o.Items {
		m.AddRow(6,
			text.NewCol(6, it.Description),
			text.NewCol(2, strconv.Itoa(it.Quantity), props.Text{Align: align.Center}),
			text.NewCol(2, currency(it.UnitPrice), props.Text{Align: align.Right}),
			text.NewCol(2, currency(it.TotalPrice), props.Text{Align: align.Right}),
		)
	}
	m.AddRow(7,
		text.NewCol(10, "Toplam", props.Text{Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(2, currency(o.TotalAmount), props.Text{Style: fontstyle.Bold, Align: align.Right}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

func currency(d decimal.Decimal) string {
	return "₺" + d.StringFixed(2)
}
