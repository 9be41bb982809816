package entity

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// skuPattern caracteres permitidos en un SKU ya normalizado.
var skuPattern = regexp.MustCompile(`^[A-Z0-9_-]+$`)

// NormalizeSKU recorta espacios y pasa a mayúsculas. Es idempotente:
// NormalizeSKU(NormalizeSKU(x)) == NormalizeSKU(x).
func NormalizeSKU(sku string) string {
	return strings.ToUpper(strings.TrimSpace(sku))
}

// ValidSKU reporta si el SKU (ya normalizado) cumple el charset [A-Z0-9_-].
func ValidSKU(sku string) bool {
	return skuPattern.MatchString(sku)
}

// Product representa un producto del catálogo con su stock actual.
// Stock nunca es negativo: el descuento por venta se hace con
// GREATEST(stock - qty, 0) en la base de datos.
type Product struct {
	ID           string
	Name         string
	Description  string
	SKU          string // único, normalizado con NormalizeSKU
	CategoryID   string // referencia débil; vacío si la categoría fue eliminada
	Price        decimal.Decimal // precio de venta, >= 0 y >= Cost
	Cost         *decimal.Decimal
	Stock        int
	ReorderLevel int
	ImageURL     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// LowStock reporta si el producto está en o por debajo de su nivel de reorden.
func (p *Product) LowStock() bool {
	return p.Stock <= p.ReorderLevel
}
