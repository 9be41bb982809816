package repository

import "github.com/tu-usuario/pos-pro/internal/domain/entity"

// SaleRepository puerto de persistencia para ventas y sus líneas.
type SaleRepository interface {
	// CreateHeader inserta la cabecera. Un receipt_number duplicado
	// devuelve domain.ErrDuplicate (constraint único en DB).
	CreateHeader(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	GetByID(id string) (*entity.Sale, error)
	// List devuelve ventas con sus items, más recientes primero.
	List(limit, offset int) ([]*entity.Sale, error)
	Delete(id string) error
}
