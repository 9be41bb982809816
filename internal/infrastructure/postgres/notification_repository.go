package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/pos-pro/internal/domain"
	"github.com/tu-usuario/pos-pro/internal/domain/entity"
	"github.com/tu-usuario/pos-pro/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación de NotificationRepository sobre PostgreSQL.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador de notificaciones.
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// CreateLowStock inserta la notificación solo si el producto no tiene ya una
// low_stock sin leer. El índice único parcial
// (product_id WHERE type='low_stock' AND read=false) cierra la carrera
// check-then-insert: bajo concurrencia el segundo insert cae en DO NOTHING.
func (r *NotificationRepo) CreateLowStock(n *entity.Notification) (bool, error) {
	query := `
		INSERT INTO notifications (id, type, message, product_id, read, created_at)
		VALUES ($1, 'low_stock', $2, $3, false, $4)
		ON CONFLICT (product_id) WHERE type = 'low_stock' AND read = false
		DO NOTHING`
	tag, err := r.q.Exec(context.Background(), query, n.ID, n.Message, n.ProductID, n.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("insert low stock notification: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Create persiste una notificación genérica (sale, system).
func (r *NotificationRepo) Create(n *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, type, message, product_id, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query, n.ID, n.Type, n.Message, n.ProductID, n.Read, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// List lista notificaciones, más recientes primero.
func (r *NotificationRepo) List(limit, offset int) ([]*entity.Notification, error) {
	query := `
		SELECT id, type, message, product_id, read, created_at
		FROM notifications ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.ID, &n.Type, &n.Message, &n.ProductID, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// MarkRead marca una notificación como leída. ID inexistente devuelve
// domain.ErrNotFound.
func (r *NotificationRepo) MarkRead(id string) error {
	tag, err := r.q.Exec(context.Background(), `UPDATE notifications SET read = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
