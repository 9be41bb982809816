package repository

import "github.com/tu-usuario/pos-pro/internal/domain/entity"

// ProductRepository puerto de persistencia para productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	ListLowStock(limit int) ([]*entity.Product, error)
	Delete(id string) error

	// DecrementStock descuenta qty del stock de forma atómica en la base
	// de datos (stock = GREATEST(stock - qty, 0)) y devuelve el stock
	// resultante. El clamp en cero es silencioso: nunca error, nunca negativo.
	DecrementStock(productID string, qty int) (int, error)
}
