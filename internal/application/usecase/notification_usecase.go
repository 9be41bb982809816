package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/pos-pro/internal/application/dto"
	"github.com/tu-usuario/pos-pro/internal/domain/entity"
	"github.com/tu-usuario/pos-pro/internal/domain/repository"
)

// NotificationUseCase listado, marcado de lectura y escaneo de stock bajo.
// El escaneo es bajo demanda (no hay scheduler) e idempotente por producto:
// el índice único parcial en DB garantiza a lo sumo una low_stock sin leer
// por producto aun bajo invocaciones concurrentes.
type NotificationUseCase struct {
	notifRepo   repository.NotificationRepository
	productRepo repository.ProductRepository
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(notifRepo repository.NotificationRepository, productRepo repository.ProductRepository) *NotificationUseCase {
	return &NotificationUseCase{notifRepo: notifRepo, productRepo: productRepo}
}

// ScanLowStock recorre los productos en o bajo su nivel de reorden y crea una
// notificación por cada uno que no tenga ya una sin leer.
func (uc *NotificationUseCase) ScanLowStock() (*dto.ScanResponse, error) {
	products, err := uc.productRepo.ListLowStock(100)
	if err != nil {
		return nil, err
	}
	created := 0
	for _, p := range products {
		id := p.ID
		n := &entity.Notification{
			ID:        uuid.New().String(),
			Type:      entity.NotificationLowStock,
			Message:   fmt.Sprintf("Stock bajo: %s (%d unidades, nivel de reorden %d)", p.Name, p.Stock, p.ReorderLevel),
			ProductID: &id,
			CreatedAt: time.Now(),
		}
		inserted, err := uc.notifRepo.CreateLowStock(n)
		if err != nil {
			return nil, err
		}
		if inserted {
			created++
		}
	}
	return &dto.ScanResponse{Created: created, Scanned: len(products)}, nil
}

// List lista notificaciones, más recientes primero.
func (uc *NotificationUseCase) List(limit, offset int) ([]dto.NotificationResponse, error) {
	list, err := uc.notifRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		items = append(items, dto.NotificationResponse{
			ID:        n.ID,
			Type:      n.Type,
			Message:   n.Message,
			ProductID: n.ProductID,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	return items, nil
}

// MarkRead marca una notificación como leída.
func (uc *NotificationUseCase) MarkRead(id string) error {
	return uc.notifRepo.MarkRead(id)
}
