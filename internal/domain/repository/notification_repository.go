package repository

import "github.com/tu-usuario/pos-pro/internal/domain/entity"

// NotificationRepository puerto de persistencia para notificaciones.
type NotificationRepository interface {
	// CreateLowStock inserta una notificación low_stock para el producto
	// si no existe una sin leer (índice único parcial + ON CONFLICT DO
	// NOTHING). Devuelve true si insertó.
	CreateLowStock(n *entity.Notification) (bool, error)
	Create(n *entity.Notification) error
	List(limit, offset int) ([]*entity.Notification, error)
	// MarkRead marca la notificación como leída; si el ID no existe
	// devuelve domain.ErrNotFound.
	MarkRead(id string) error
}
