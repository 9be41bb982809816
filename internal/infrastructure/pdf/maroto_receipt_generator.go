// Package pdf implementa el recibo imprimible de una venta del POS.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre tienda  │  N° Recibo + Fecha                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TIENDA: Dirección / Tel          CLIENTE: Nombre + Tel     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Subtotal                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL + Medio de pago                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/pos-pro/internal/application/sales"
	"github.com/tu-usuario/pos-pro/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReceiptGenerator implementa sales.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF genera el PDF del recibo y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(
	_ context.Context,
	sale *entity.Sale,
	productNames map[string]string,
	store sales.StoreInfo,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo "+sale.ReceiptNumber, true).
		WithAuthor(store.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sale, store))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(sale, store))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(sale, productNames) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(sale, store))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar PDF del recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(sale *entity.Sale, store sales.StoreInfo) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(store.Name, props.Text{Size: 14, Style: fontstyle.Bold, Color: colorPrimary}),
			text.New("Recibo de venta", props.Text{Top: 7, Size: 8, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Recibo N° "+sale.ReceiptNumber, props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Right}),
			text.New(sale.CreatedAt.Format("2006-01-02 15:04"), props.Text{Top: 6, Size: 8, Align: align.Right, Color: colorGray}),
		),
	)
}

func partiesRow(sale *entity.Sale, store sales.StoreInfo) core.Row {
	customer := sale.CustomerName
	if customer == "" {
		customer = "Consumidor final"
	}
	left := store.Address
	if store.Phone != "" {
		left += "  Tel: " + store.Phone
	}
	right := customer
	if sale.CustomerPhone != "" {
		right += "  Tel: " + sale.CustomerPhone
	}
	return row.New(8).Add(
		col.New(6).Add(text.New(left, props.Text{Size: 8, Color: colorGray})),
		col.New(6).Add(text.New("Cliente: "+right, props.Text{Size: 8, Align: align.Right})),
	)
}

func tableHeaderRow() core.Row {
	return row.New(7).Add(
		col.New(2).Add(text.New("Cant", props.Text{Size: 8, Style: fontstyle.Bold})),
		col.New(5).Add(text.New("Producto", props.Text{Size: 8, Style: fontstyle.Bold})),
		col.New(2).Add(text.New("P. Unit", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right})),
		col.New(3).Add(text.New("Subtotal", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right})),
	)
}

func tableItemRows(sale *entity.Sale, productNames map[string]string) []core.Row {
	rows := make([]core.Row, 0, len(sale.Items))
	for _, item := range sale.Items {
		name := "Producto eliminado"
		if item.ProductID != nil {
			if n, ok := productNames[*item.ProductID]; ok {
				name = n
			}
		}
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New(fmt.Sprintf("%d", item.Quantity), props.Text{Size: 8})),
			col.New(5).Add(text.New(name, props.Text{Size: 8})),
			col.New(2).Add(text.New(item.UnitPrice.StringFixed(2), props.Text{Size: 8, Align: align.Right})),
			col.New(3).Add(text.New(item.Subtotal.StringFixed(2), props.Text{Size: 8, Align: align.Right})),
		))
	}
	return rows
}

func totalRow(sale *entity.Sale, store sales.StoreInfo) core.Row {
	payment := sale.PaymentMethod
	if payment == "" {
		payment = "Cash"
	}
	return row.New(10).Add(
		col.New(6).Add(text.New("Medio de pago: "+payment, props.Text{Top: 2, Size: 8, Color: colorGray})),
		col.New(6).Add(
			text.New("TOTAL "+store.Currency+" "+sale.TotalAmount.StringFixed(2),
				props.Text{Top: 1, Size: 12, Style: fontstyle.Bold, Align: align.Right, Color: colorPrimary}),
		),
	)
}
