package sales

import (
	"github.com/tu-usuario/pos-pro/internal/application/dto"
	"github.com/tu-usuario/pos-pro/internal/domain/entity"
	"github.com/tu-usuario/pos-pro/internal/domain/repository"
)

// SaleQueryUseCase consultas de ventas (solo lectura, sin transacción).
type SaleQueryUseCase struct {
	saleRepo repository.SaleRepository
}

// NewSaleQueryUseCase construye el caso de uso.
func NewSaleQueryUseCase(saleRepo repository.SaleRepository) *SaleQueryUseCase {
	return &SaleQueryUseCase{saleRepo: saleRepo}
}

// List lista ventas con sus items, más recientes primero.
func (uc *SaleQueryUseCase) List(limit, offset int) (*dto.SaleListResponse, error) {
	list, err := uc.saleRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// GetByID obtiene una venta por ID. Devuelve nil si no existe.
func (uc *SaleQueryUseCase) GetByID(id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	return toSaleResponse(sale), nil
}

// Delete elimina una venta y sus items (cascada en la DB). El stock no se
// repone: anular una venta es una corrección contable, no una devolución.
func (uc *SaleQueryUseCase) Delete(id string) error {
	return uc.saleRepo.Delete(id)
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal,
		})
	}
	return &dto.SaleResponse{
		ID:            s.ID,
		ReceiptNumber: s.ReceiptNumber,
		TotalAmount:   s.TotalAmount,
		PaymentMethod: s.PaymentMethod,
		CustomerName:  s.CustomerName,
		CustomerPhone: s.CustomerPhone,
		CreatedBy:     s.CreatedBy,
		CreatedAt:     s.CreatedAt,
		Items:         items,
	}
}
