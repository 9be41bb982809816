package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pos-pro/internal/application/dto"
	"github.com/tu-usuario/pos-pro/internal/application/usecase"
	"github.com/tu-usuario/pos-pro/internal/domain"
	"github.com/tu-usuario/pos-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	byID  map[string]*entity.Product
	bySKU map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		byID:  make(map[string]*entity.Product),
		bySKU: make(map[string]*entity.Product),
	}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	if _, ok := r.bySKU[p.SKU]; ok {
		return domain.ErrDuplicate
	}
	r.byID[p.ID] = p
	r.bySKU[p.SKU] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error)   { return r.byID[id], nil }
func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) { return r.bySKU[sku], nil }

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.byID[p.ID] = p
	return nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }

func (r *fakeProductRepo) ListLowStock(limit int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.byID {
		if p.LowStock() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error { return nil }

func (r *fakeProductRepo) DecrementStock(productID string, qty int) (int, error) {
	p, ok := r.byID[productID]
	if !ok {
		return 0, domain.ErrNotFound
	}
	p.Stock -= qty
	if p.Stock < 0 {
		p.Stock = 0
	}
	return p.Stock, nil
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

// El SKU se normaliza en el servidor: trim + mayúsculas, idempotente.
func TestProductCreate_NormalizaSKU(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	out, err := uc.Create(dto.CreateProductRequest{
		Name:  "Café molido",
		SKU:   "  abc-123 ",
		Price: dec("10.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "ABC-123", out.SKU)

	// Normalizar lo ya normalizado no cambia nada.
	assert.Equal(t, "ABC-123", entity.NormalizeSKU(out.SKU))
}

func TestProductCreate_SKUConCharsetInvalido(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create(dto.CreateProductRequest{
		Name:  "Té",
		SKU:   "abc 123!",
		Price: dec("5.00"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"el SKU solo admite [A-Z0-9_-] tras normalizar")
}

// SKU duplicado tras normalizar: "abc-1" y " ABC-1 " son el mismo producto.
func TestProductCreate_SKUDuplicadoTrasNormalizar(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create(dto.CreateProductRequest{Name: "A", SKU: "abc-1", Price: dec("1.00")})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateProductRequest{Name: "B", SKU: " ABC-1 ", Price: dec("1.00")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// price >= cost cuando hay costo declarado.
func TestProductCreate_PrecioMenorQueCosto(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	cost := dec("1200.00")

	_, err := uc.Create(dto.CreateProductRequest{
		Name:  "Impresora",
		SKU:   "IMP-1",
		Price: dec("500.00"),
		Cost:  &cost,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "price", vErr.Field)
}

func TestProductCreate_PrecioNegativo(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create(dto.CreateProductRequest{Name: "X", SKU: "X-1", Price: dec("-1.00")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// reorder_level por defecto es 10 cuando no se envía.
func TestProductCreate_ReorderLevelPorDefecto(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	out, err := uc.Create(dto.CreateProductRequest{Name: "Y", SKU: "Y-1", Price: dec("1.00")})
	require.NoError(t, err)
	assert.Equal(t, 10, out.ReorderLevel)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Update
// ──────────────────────────────────────────────────────────────────────────────

// La regla price >= cost se evalúa sobre el estado resultante del PATCH.
func TestProductUpdate_ReglaDePreciosSobreEstadoResultante(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	cost := dec("100.00")
	created, err := uc.Create(dto.CreateProductRequest{
		Name: "Z", SKU: "Z-1", Price: dec("150.00"), Cost: &cost,
	})
	require.NoError(t, err)

	// Bajar solo el precio por debajo del costo existente debe fallar.
	lower := dec("50.00")
	_, err = uc.Update(created.ID, dto.UpdateProductRequest{Price: &lower})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_Inexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	name := "nuevo"
	out, err := uc.Update("no-existe", dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, out, "actualizar un producto inexistente devuelve nil")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de entidad
// ──────────────────────────────────────────────────────────────────────────────

func TestLowStock(t *testing.T) {
	p := entity.Product{Stock: 5, ReorderLevel: 10}
	assert.True(t, p.LowStock())

	p = entity.Product{Stock: 10, ReorderLevel: 10}
	assert.True(t, p.LowStock(), "el umbral es inclusivo: stock == reorder_level")

	p = entity.Product{Stock: 11, ReorderLevel: 10}
	assert.False(t, p.LowStock())
}
