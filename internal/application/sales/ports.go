package sales

import (
	"context"

	"github.com/tu-usuario/pos-pro/internal/domain/entity"
	"github.com/tu-usuario/pos-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que cabecera, items y descuentos
// de stock se confirman o deshacen juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// StoreInfo datos de la tienda que aparecen en el recibo impreso.
type StoreInfo struct {
	Name     string
	Address  string
	Phone    string
	Currency string
}

// ReceiptPDFGenerator genera el recibo imprimible de una venta.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, sale *entity.Sale, productNames map[string]string, store StoreInfo) ([]byte, error)
}
