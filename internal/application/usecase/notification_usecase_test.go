package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pos-pro/internal/application/usecase"
	"github.com/tu-usuario/pos-pro/internal/domain"
	"github.com/tu-usuario/pos-pro/internal/domain/entity"
)

// fakeNotificationRepo emula el índice único parcial: a lo sumo una low_stock
// sin leer por producto.
type fakeNotificationRepo struct {
	all []*entity.Notification
}

func (r *fakeNotificationRepo) CreateLowStock(n *entity.Notification) (bool, error) {
	for _, e := range r.all {
		if e.Type == entity.NotificationLowStock && !e.Read &&
			e.ProductID != nil && n.ProductID != nil && *e.ProductID == *n.ProductID {
			return false, nil
		}
	}
	r.all = append(r.all, n)
	return true, nil
}

func (r *fakeNotificationRepo) Create(n *entity.Notification) error {
	r.all = append(r.all, n)
	return nil
}

func (r *fakeNotificationRepo) List(limit, offset int) ([]*entity.Notification, error) {
	return r.all, nil
}

func (r *fakeNotificationRepo) MarkRead(id string) error {
	for _, e := range r.all {
		if e.ID == id {
			e.Read = true
			return nil
		}
	}
	return domain.ErrNotFound
}

// El escaneo es idempotente: repetirlo sin cambios de stock no crea alertas
// nuevas, y marcar como leída rehabilita la siguiente alerta.
func TestScanLowStock_IdempotentePorProducto(t *testing.T) {
	products := newFakeProductRepo()
	require.NoError(t, products.Create(&entity.Product{
		ID: "p-1", Name: "Café", SKU: "CAFE-1", Stock: 2, ReorderLevel: 10,
	}))
	require.NoError(t, products.Create(&entity.Product{
		ID: "p-2", Name: "Azúcar", SKU: "AZU-1", Stock: 50, ReorderLevel: 10,
	}))

	notifs := &fakeNotificationRepo{}
	uc := usecase.NewNotificationUseCase(notifs, products)

	out, err := uc.ScanLowStock()
	require.NoError(t, err)
	assert.Equal(t, 1, out.Created, "solo p-1 está en stock bajo")
	assert.Equal(t, 1, out.Scanned)

	// Segundo escaneo: la alerta sin leer ya existe, no se duplica.
	out, err = uc.ScanLowStock()
	require.NoError(t, err)
	assert.Equal(t, 0, out.Created)
	assert.Len(t, notifs.all, 1)

	// Leída la alerta, el siguiente escaneo puede crear una nueva.
	require.NoError(t, uc.MarkRead(notifs.all[0].ID))
	out, err = uc.ScanLowStock()
	require.NoError(t, err)
	assert.Equal(t, 1, out.Created)
	assert.Len(t, notifs.all, 2)
}

// Marcar como leída una notificación inexistente devuelve ErrNotFound, que
// el handler traduce a 404.
func TestMarkRead_IDInexistente(t *testing.T) {
	uc := usecase.NewNotificationUseCase(&fakeNotificationRepo{}, newFakeProductRepo())

	err := uc.MarkRead("33333333-3333-3333-3333-333333333333")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
