package dto

import "github.com/shopspring/decimal"

// DailySalesPoint ingresos y órdenes de un día (serie de 7 días).
type DailySalesPoint struct {
	Day     string          `json:"day"` // Mon, Tue, ...
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int             `json:"orders"`
}

// PaymentMethodSlice distribución por medio de pago.
type PaymentMethodSlice struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
	Count int             `json:"count"`
}

// TopProductEntry producto más vendido.
type TopProductEntry struct {
	Name    string          `json:"name"`
	Sales   int             `json:"sales"`
	Revenue decimal.Decimal `json:"revenue"`
}

// LowStockEntry producto en o bajo su nivel de reorden.
type LowStockEntry struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Stock        int    `json:"stock"`
	ReorderLevel int    `json:"reorder_level"`
}

// AnalyticsStatistics agregados globales y del día.
type AnalyticsStatistics struct {
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalOrders   int             `json:"total_orders"`
	TodayRevenue  decimal.Decimal `json:"today_revenue"`
	TodayOrders   int             `json:"today_orders"`
	AvgOrderValue decimal.Decimal `json:"avg_order_value"`
}

// AnalyticsResponse respuesta completa del dashboard.
type AnalyticsResponse struct {
	DailySales     []DailySalesPoint    `json:"daily_sales"`
	PaymentMethods []PaymentMethodSlice `json:"payment_methods"`
	TopProducts    []TopProductEntry    `json:"top_products"`
	Statistics     AnalyticsStatistics  `json:"statistics"`
	LowStock       []LowStockEntry      `json:"low_stock_products"`
}
