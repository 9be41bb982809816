package sales

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"github.com/tu-usuario/pos-pro/internal/application/dto"
	"github.com/tu-usuario/pos-pro/internal/domain"
	"github.com/tu-usuario/pos-pro/internal/domain/entity"
	"github.com/tu-usuario/pos-pro/internal/domain/repository"
)

// RecordSaleUseCase registra una venta con sus líneas y descuenta stock en una
// sola transacción. Si algo falla después de crear la cabecera, todo se
// deshace: nunca queda visible una venta con un subconjunto de sus items.
type RecordSaleUseCase struct {
	txRunner TxRunner
}

// NewRecordSaleUseCase construye el caso de uso.
func NewRecordSaleUseCase(txRunner TxRunner) *RecordSaleUseCase {
	return &RecordSaleUseCase{txRunner: txRunner}
}

var titleCaser = cases.Title(language.Und)

// NormalizePaymentMethod recorta espacios y lleva a capitalización canónica
// ("  credit card " -> "Credit Card"). Cadena vacía queda vacía.
func NormalizePaymentMethod(method string) string {
	method = strings.TrimSpace(method)
	if method == "" {
		return ""
	}
	return titleCaser.String(strings.ToLower(method))
}

// RecordSale valida la entrada, recalcula subtotales en el servidor y persiste
// cabecera, items y descuentos de stock de forma atómica.
//
// Reglas:
//   - receipt_number requerido y único (duplicado -> domain.ErrDuplicate).
//   - items no vacío; quantity > 0; unit_price >= 0.
//   - subtotal = unit_price × quantity, con 2 decimales; se descarta cualquier
//     subtotal enviado por el cliente.
//   - total_amount debe igualar la suma de subtotales recalculados.
//   - el producto de cada línea es referencia débil: si el ID no resuelve, la
//     línea se guarda sin producto y no se descuenta stock.
//   - el descuento de stock es atómico en DB y se clampa en cero sin error.
func (uc *RecordSaleUseCase) RecordSale(ctx context.Context, userID string, in dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	receipt := strings.TrimSpace(in.ReceiptNumber)
	if receipt == "" {
		return nil, domain.NewValidationError("receipt_number", "es requerido")
	}
	if len(in.Items) == 0 {
		return nil, domain.NewValidationError("items", "la venta debe tener al menos un item")
	}

	total := decimal.Zero
	for i, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, domain.NewValidationError("items", "quantity debe ser mayor que cero")
		}
		if item.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.NewValidationError("items", "unit_price no puede ser negativo")
		}
		line := entity.SaleItem{Quantity: item.Quantity, UnitPrice: in.Items[i].UnitPrice.Round(2)}
		total = total.Add(line.ComputeSubtotal())
	}
	if !in.TotalAmount.Round(2).Equal(total) {
		return nil, domain.NewValidationError("total_amount", "no coincide con la suma de subtotales ("+total.StringFixed(2)+")")
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		ReceiptNumber: receipt,
		TotalAmount:   total,
		PaymentMethod: NormalizePaymentMethod(in.PaymentMethod),
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerPhone: strings.TrimSpace(in.CustomerPhone),
		CreatedBy:     userID,
		CreatedAt:     now,
	}

	err := uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := saleRepo.CreateHeader(sale); err != nil {
			return err
		}
		for _, item := range in.Items {
			line := &entity.SaleItem{
				ID:        uuid.New().String(),
				SaleID:    sale.ID,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice.Round(2),
			}
			line.Subtotal = line.ComputeSubtotal()

			// Referencia débil al producto: un ID ausente, no parseable o
			// que no resuelve deja la línea sin producto en lugar de fallar
			// la venta. El parse previo evita que un ID malformado reviente
			// la columna uuid en la consulta.
			var product *entity.Product
			if _, parseErr := uuid.Parse(item.ProductID); item.ProductID != "" && parseErr == nil {
				p, err := productRepo.GetByID(item.ProductID)
				if err != nil {
					return err
				}
				product = p
			}
			if product != nil {
				line.ProductID = &product.ID
			}
			if err := saleRepo.CreateItem(line); err != nil {
				return err
			}
			if product != nil {
				if _, err := productRepo.DecrementStock(product.ID, line.Quantity); err != nil {
					return err
				}
			}
			sale.Items = append(sale.Items, *line)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}
