package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-pro/internal/application/dto"
	"github.com/tu-usuario/pos-pro/internal/domain"
	"github.com/tu-usuario/pos-pro/internal/domain/entity"
	"github.com/tu-usuario/pos-pro/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El descuento de stock por
// venta NO pasa por aquí: lo hace el registrador de ventas dentro de su tx.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// validatePricing aplica las reglas monetarias: price >= 0 y, si hay cost,
// price >= cost.
func validatePricing(price decimal.Decimal, cost *decimal.Decimal) error {
	if price.LessThan(decimal.Zero) {
		return domain.NewValidationError("price", "no puede ser negativo")
	}
	if cost != nil {
		if cost.LessThan(decimal.Zero) {
			return domain.NewValidationError("cost", "no puede ser negativo")
		}
		if price.LessThan(*cost) {
			return domain.NewValidationError("price", "debe ser mayor o igual al costo")
		}
	}
	return nil
}

// Create crea un producto. El SKU se normaliza en el servidor (trim +
// mayúsculas) y debe cumplir el charset [A-Z0-9_-].
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	sku := entity.NormalizeSKU(in.SKU)
	if !entity.ValidSKU(sku) {
		return nil, domain.NewValidationError("sku", "solo mayúsculas, números, - y _")
	}
	if err := validatePricing(in.Price.Round(2), in.Cost); err != nil {
		return nil, err
	}
	if in.Stock < 0 {
		return nil, domain.NewValidationError("stock", "no puede ser negativo")
	}
	existing, _ := uc.repo.GetBySKU(sku)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	reorder := 10
	if in.ReorderLevel != nil {
		reorder = *in.ReorderLevel
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Description:  in.Description,
		SKU:          sku,
		CategoryID:   in.CategoryID,
		Price:        in.Price.Round(2),
		Cost:         in.Cost,
		Stock:        in.Stock,
		ReorderLevel: reorder,
		ImageURL:     in.ImageURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto con semántica parcial (PATCH). Re-aplica la
// normalización de SKU y la regla price >= cost sobre el estado resultante.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.SKU != nil {
		sku := entity.NormalizeSKU(*in.SKU)
		if !entity.ValidSKU(sku) {
			return nil, domain.NewValidationError("sku", "solo mayúsculas, números, - y _")
		}
		product.SKU = sku
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.Price != nil {
		product.Price = in.Price.Round(2)
	}
	if in.Cost != nil {
		product.Cost = in.Cost
	}
	if err := validatePricing(product.Price, product.Cost); err != nil {
		return nil, err
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.NewValidationError("stock", "no puede ser negativo")
		}
		product.Stock = *in.Stock
	}
	if in.ReorderLevel != nil {
		product.ReorderLevel = *in.ReorderLevel
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto. Las líneas de venta que lo referencian
// sobreviven con la referencia en null (SET NULL en DB).
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		SKU:          p.SKU,
		CategoryID:   p.CategoryID,
		Price:        p.Price,
		Cost:         p.Cost,
		Stock:        p.Stock,
		ReorderLevel: p.ReorderLevel,
		ImageURL:     p.ImageURL,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
