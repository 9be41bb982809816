package entity

import "time"

// Tipos de notificación.
const (
	NotificationLowStock = "low_stock"
	NotificationSale     = "sale"
	NotificationSystem   = "system"
)

// Notification es un aviso interno. Para low_stock existe a lo sumo una
// notificación sin leer por producto (índice único parcial en DB).
type Notification struct {
	ID        string
	Type      string // low_stock, sale, system
	Message   string
	ProductID *string
	Read      bool
	CreatedAt time.Time
}
