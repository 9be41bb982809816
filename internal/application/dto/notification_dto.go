package dto

import "time"

// NotificationResponse salida de una notificación.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	ProductID *string   `json:"product_id,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// ScanResponse resultado del escaneo de stock bajo.
type ScanResponse struct {
	Created int `json:"created"`
	Scanned int `json:"scanned"`
}
