package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta registrada en el POS. ReceiptNumber es único
// (constraint en DB); CreatedAt es inmutable una vez persistida.
// Una venta posee una colección ordenada y no vacía de SaleItems;
// eliminar la venta elimina sus items en cascada.
type Sale struct {
	ID            string
	ReceiptNumber string
	TotalAmount   decimal.Decimal // debe igualar la suma de subtotales de los items
	PaymentMethod string          // normalizado a capitalización canónica ("Cash", "Card")
	CustomerName  string
	CustomerPhone string
	CreatedBy     string // referencia débil al usuario creador
	CreatedAt     time.Time
	Items         []SaleItem
}

// SaleItem es una línea de venta. ProductID es referencia débil: si el
// producto se elimina, la línea sobrevive con la referencia en null.
// Subtotal siempre se recalcula en el servidor como UnitPrice × Quantity.
type SaleItem struct {
	ID        string
	SaleID    string
	ProductID *string
	Quantity  int
	UnitPrice decimal.Decimal // snapshot del precio al momento de la venta
	Subtotal  decimal.Decimal
}

// ComputeSubtotal calcula UnitPrice × Quantity con 2 decimales, descartando
// cualquier subtotal que haya enviado el cliente.
func (i *SaleItem) ComputeSubtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity))).Round(2)
}
