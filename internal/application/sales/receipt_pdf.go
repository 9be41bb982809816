package sales

import (
	"context"
	"fmt"

	"github.com/tu-usuario/pos-pro/internal/domain"
	"github.com/tu-usuario/pos-pro/internal/domain/repository"
)

// ReceiptPDFUseCase genera el recibo imprimible (PDF) de una venta.
type ReceiptPDFUseCase struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	generator   ReceiptPDFGenerator
	store       StoreInfo
}

// NewReceiptPDFUseCase construye el caso de uso inyectando el generador y los
// datos de la tienda que van en el encabezado del recibo.
func NewReceiptPDFUseCase(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	generator ReceiptPDFGenerator,
	store StoreInfo,
) *ReceiptPDFUseCase {
	return &ReceiptPDFUseCase{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		generator:   generator,
		store:       store,
	}
}

// DownloadReceiptPDF recupera la venta, resuelve los nombres de producto que
// aún existan (las líneas con producto eliminado se imprimen como "Producto
// eliminado") y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la venta no existe.
func (uc *ReceiptPDFUseCase) DownloadReceiptPDF(ctx context.Context, saleID string) (pdfBytes []byte, filename string, err error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}

	names := make(map[string]string)
	for _, item := range sale.Items {
		if item.ProductID == nil {
			continue
		}
		if _, ok := names[*item.ProductID]; ok {
			continue
		}
		product, err := uc.productRepo.GetByID(*item.ProductID)
		if err != nil {
			return nil, "", fmt.Errorf("recibo: obtener producto: %w", err)
		}
		if product != nil {
			names[*item.ProductID] = product.Name
		}
	}

	pdfBytes, err = uc.generator.GenerateReceiptPDF(ctx, sale, names, uc.store)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: generar PDF: %w", err)
	}
	return pdfBytes, "recibo_" + sale.ReceiptNumber + ".pdf", nil
}
