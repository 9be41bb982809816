package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailySales ingresos y número de órdenes de un día.
type DailySales struct {
	Date    time.Time
	Revenue decimal.Decimal
	Orders  int
}

// PaymentMethodTotal distribución de ventas por medio de pago.
type PaymentMethodTotal struct {
	Method string
	Total  decimal.Decimal
	Count  int
}

// TopProduct producto más vendido por cantidad.
type TopProduct struct {
	ProductID string
	Name      string
	Quantity  int
	Revenue   decimal.Decimal
}

// SalesTotals agregado global de ventas.
type SalesTotals struct {
	Revenue decimal.Decimal
	Orders  int
}

// UserSalesStats ventas acumuladas por usuario creador.
type UserSalesStats struct {
	Count int
	Total decimal.Decimal
}

// AnalyticsRepository consultas de agregación para el dashboard.
type AnalyticsRepository interface {
	DailySales(from, to time.Time) ([]DailySales, error)
	PaymentMethodTotals() ([]PaymentMethodTotal, error)
	TopProducts(limit int) ([]TopProduct, error)
	Totals() (SalesTotals, error)
	TotalsSince(t time.Time) (SalesTotals, error)
	SalesStatsByUser() (map[string]UserSalesStats, error)
}
