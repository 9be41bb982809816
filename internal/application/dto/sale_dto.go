package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordSaleRequest entrada para registrar una venta.
// Subtotal no se acepta del cliente: siempre se recalcula en el servidor.
type RecordSaleRequest struct {
	ReceiptNumber string          `json:"receipt_number" validate:"required"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentMethod string          `json:"payment_method"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
	Items         []SaleItemInput `json:"items" validate:"required,min=1"`
}

// SaleItemInput línea de venta enviada por el cliente.
type SaleItemInput struct {
	ProductID string          `json:"product"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// SaleItemResponse línea de venta con subtotal calculado por el servidor.
type SaleItemResponse struct {
	ID        string          `json:"id"`
	ProductID *string         `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleResponse venta completa: cabecera más items en orden de entrada.
type SaleResponse struct {
	ID            string             `json:"id"`
	ReceiptNumber string             `json:"receipt_number"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	PaymentMethod string             `json:"payment_method,omitempty"`
	CustomerName  string             `json:"customer_name,omitempty"`
	CustomerPhone string             `json:"customer_phone,omitempty"`
	CreatedBy     string             `json:"created_by,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	Items         []SaleItemResponse `json:"items"`
}

// SaleListResponse listado de ventas, más recientes primero.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
