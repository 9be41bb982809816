package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name         string           `json:"name" validate:"required,min=1,max=255"`
	Description  string           `json:"description"`
	SKU          string           `json:"sku" validate:"required,min=1,max=100"`
	CategoryID   string           `json:"category_id"`
	Price        decimal.Decimal  `json:"price"`
	Cost         *decimal.Decimal `json:"cost"`
	Stock        int              `json:"stock"`
	ReorderLevel *int             `json:"reorder_level"`
	ImageURL     string           `json:"image_url"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Description  *string          `json:"description"`
	SKU          *string          `json:"sku"`
	CategoryID   *string          `json:"category_id"`
	Price        *decimal.Decimal `json:"price"`
	Cost         *decimal.Decimal `json:"cost"`
	Stock        *int             `json:"stock"`
	ReorderLevel *int             `json:"reorder_level"`
	ImageURL     *string          `json:"image_url"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	SKU          string           `json:"sku"`
	CategoryID   string           `json:"category_id,omitempty"`
	Price        decimal.Decimal  `json:"price"`
	Cost         *decimal.Decimal `json:"cost,omitempty"`
	Stock        int              `json:"stock"`
	ReorderLevel int              `json:"reorder_level"`
	ImageURL     string           `json:"image_url,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// UploadImageResponse URL pública de la imagen subida.
type UploadImageResponse struct {
	URL string `json:"url"`
}
