package sales_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pos-pro/internal/application/dto"
	"github.com/tu-usuario/pos-pro/internal/application/sales"
	"github.com/tu-usuario/pos-pro/internal/domain"
	"github.com/tu-usuario/pos-pro/internal/domain/entity"
	"github.com/tu-usuario/pos-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeSaleRepo guarda cabeceras e items en memoria. Simula el constraint
// único de receipt_number devolviendo domain.ErrDuplicate.
type fakeSaleRepo struct {
	headers []*entity.Sale
	items   []*entity.SaleItem
	// failOnItem hace fallar CreateItem en la línea n (base 0), para simular
	// un error a mitad de transacción.
	failOnItem int
}

func newFakeSaleRepo() *fakeSaleRepo { return &fakeSaleRepo{failOnItem: -1} }

func (r *fakeSaleRepo) CreateHeader(sale *entity.Sale) error {
	for _, h := range r.headers {
		if h.ReceiptNumber == sale.ReceiptNumber {
			return domain.ErrDuplicate
		}
	}
	r.headers = append(r.headers, sale)
	return nil
}

func (r *fakeSaleRepo) CreateItem(item *entity.SaleItem) error {
	if r.failOnItem >= 0 && len(r.items) == r.failOnItem {
		return errors.New("fallo inyectado")
	}
	r.items = append(r.items, item)
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	for _, h := range r.headers {
		if h.ID == id {
			return h, nil
		}
	}
	return nil, nil
}

func (r *fakeSaleRepo) List(limit, offset int) ([]*entity.Sale, error) { return r.headers, nil }
func (r *fakeSaleRepo) Delete(id string) error                         { return nil }

// fakeProductRepo productos en memoria con decremento clampado en cero,
// igual que el UPDATE atómico real.
type fakeProductRepo struct {
	products map[string]*entity.Product
	// getByIDErr simula el error de la DB al consultar, por ejemplo un ID
	// que no castea a uuid en la columna.
	getByIDErr error
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	m := make(map[string]*entity.Product)
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductRepo{products: m}
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if r.getByIDErr != nil {
		return nil, r.getByIDErr
	}
	return r.products[id], nil
}

func (r *fakeProductRepo) DecrementStock(productID string, qty int) (int, error) {
	p, ok := r.products[productID]
	if !ok {
		return 0, domain.ErrNotFound
	}
	p.Stock -= qty
	if p.Stock < 0 {
		p.Stock = 0
	}
	return p.Stock, nil
}

func (r *fakeProductRepo) Create(p *entity.Product) error                { return nil }
func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error)  { return nil, nil }
func (r *fakeProductRepo) Update(p *entity.Product) error                { return nil }
func (r *fakeProductRepo) List(l, o int) ([]*entity.Product, error)      { return nil, nil }
func (r *fakeProductRepo) ListLowStock(l int) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Delete(id string) error                        { return nil }

// fakeTxRunner ejecuta la función con los fakes. Si la función falla,
// descarta lo escrito, igual que un ROLLBACK.
type fakeTxRunner struct {
	saleRepo    *fakeSaleRepo
	productRepo *fakeProductRepo
	rolledBack  bool
}

func (tx *fakeTxRunner) Run(ctx context.Context, fn func(repository.SaleRepository, repository.ProductRepository) error) error {
	headersBefore := len(tx.saleRepo.headers)
	itemsBefore := len(tx.saleRepo.items)
	if err := fn(tx.saleRepo, tx.productRepo); err != nil {
		tx.saleRepo.headers = tx.saleRepo.headers[:headersBefore]
		tx.saleRepo.items = tx.saleRepo.items[:itemsBefore]
		tx.rolledBack = true
		return err
	}
	return nil
}

// IDs con forma de uuid: la referencia a producto solo se consulta cuando
// el ID parsea como uuid.
const (
	productID = "11111111-1111-1111-1111-111111111111"
	missingID = "22222222-2222-2222-2222-222222222222"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func buildUseCase(saleRepo *fakeSaleRepo, productRepo *fakeProductRepo) (*sales.RecordSaleUseCase, *fakeTxRunner) {
	tx := &fakeTxRunner{saleRepo: saleRepo, productRepo: productRepo}
	return sales.NewRecordSaleUseCase(tx), tx
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RecordSale
// ──────────────────────────────────────────────────────────────────────────────

// Camino feliz: subtotales recalculados en el servidor y stock descontado.
func TestRecordSale_RecalculaSubtotalesYDescuentaStock(t *testing.T) {
	product := &entity.Product{ID: productID, Name: "Café", Stock: 50}
	saleRepo := newFakeSaleRepo()
	uc, _ := buildUseCase(saleRepo, newFakeProductRepo(product))

	out, err := uc.RecordSale(context.Background(), "u-1", dto.RecordSaleRequest{
		ReceiptNumber: "R-001",
		TotalAmount:   dec("30.00"),
		PaymentMethod: "  cash ",
		Items: []dto.SaleItemInput{
			{ProductID: productID, Quantity: 3, UnitPrice: dec("10.00")},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "R-001", out.ReceiptNumber)
	assert.Equal(t, "Cash", out.PaymentMethod,
		"el método de pago se normaliza a capitalización canónica")
	require.Len(t, out.Items, 1)
	assert.True(t, out.Items[0].Subtotal.Equal(dec("30.00")),
		"subtotal = unit_price × quantity, calculado en el servidor")
	assert.Equal(t, 47, product.Stock, "3 unidades descontadas de 50")
}

// El clamp en cero es silencioso: vender 8 con stock 5 deja stock 0 sin error.
func TestRecordSale_StockInsuficienteSeClampaEnCero(t *testing.T) {
	product := &entity.Product{ID: productID, Name: "Té", Stock: 5}
	uc, _ := buildUseCase(newFakeSaleRepo(), newFakeProductRepo(product))

	_, err := uc.RecordSale(context.Background(), "u-1", dto.RecordSaleRequest{
		ReceiptNumber: "R-002",
		TotalAmount:   dec("16.00"),
		Items: []dto.SaleItemInput{
			{ProductID: productID, Quantity: 8, UnitPrice: dec("2.00")},
		},
	})
	require.NoError(t, err, "el stock insuficiente no es un error de venta")
	assert.Equal(t, 0, product.Stock, "el stock nunca queda negativo")
}

// total_amount que no cuadra con la suma recalculada → error de validación 400.
func TestRecordSale_TotalQueNoCuadraEsRechazado(t *testing.T) {
	saleRepo := newFakeSaleRepo()
	uc, _ := buildUseCase(saleRepo, newFakeProductRepo())

	_, err := uc.RecordSale(context.Background(), "u-1", dto.RecordSaleRequest{
		ReceiptNumber: "R-003",
		TotalAmount:   dec("99.99"),
		Items: []dto.SaleItemInput{
			{Quantity: 3, UnitPrice: dec("10.00")},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "total_amount", vErr.Field)
	assert.Empty(t, saleRepo.headers, "nada debe persistirse")
}

// receipt_number duplicado → domain.ErrDuplicate y ninguna línea visible.
func TestRecordSale_ReciboDuplicadoRetornaConflicto(t *testing.T) {
	saleRepo := newFakeSaleRepo()
	uc, tx := buildUseCase(saleRepo, newFakeProductRepo())

	req := dto.RecordSaleRequest{
		ReceiptNumber: "R-004",
		TotalAmount:   dec("10.00"),
		Items: []dto.SaleItemInput{
			{Quantity: 1, UnitPrice: dec("10.00")},
		},
	}
	_, err := uc.RecordSale(context.Background(), "u-1", req)
	require.NoError(t, err)

	_, err = uc.RecordSale(context.Background(), "u-1", req)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.True(t, tx.rolledBack, "la segunda venta debe deshacerse completa")
	assert.Len(t, saleRepo.headers, 1)
	assert.Len(t, saleRepo.items, 1)
}

// Referencia débil: producto inexistente deja la línea sin producto y no
// descuenta stock, en lugar de fallar la venta.
func TestRecordSale_ProductoInexistenteNoRompeLaVenta(t *testing.T) {
	uc, _ := buildUseCase(newFakeSaleRepo(), newFakeProductRepo())

	out, err := uc.RecordSale(context.Background(), "u-1", dto.RecordSaleRequest{
		ReceiptNumber: "R-005",
		TotalAmount:   dec("5.00"),
		Items: []dto.SaleItemInput{
			{ProductID: missingID, Quantity: 1, UnitPrice: dec("5.00")},
		},
	})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Nil(t, out.Items[0].ProductID,
		"la línea queda sin producto cuando el ID no resuelve")
}

// Un ID de producto que no parsea como uuid nunca llega a la DB: la línea
// queda sin producto en lugar de reventar la consulta sobre la columna uuid.
func TestRecordSale_ProductoMalformadoNoConsultaLaDB(t *testing.T) {
	productRepo := newFakeProductRepo()
	productRepo.getByIDErr = errors.New("invalid input syntax for type uuid")
	uc, _ := buildUseCase(newFakeSaleRepo(), productRepo)

	out, err := uc.RecordSale(context.Background(), "u-1", dto.RecordSaleRequest{
		ReceiptNumber: "R-010",
		TotalAmount:   dec("5.00"),
		Items: []dto.SaleItemInput{
			{ProductID: "abc", Quantity: 1, UnitPrice: dec("5.00")},
		},
	})
	require.NoError(t, err, "el ID malformado se trata como línea sin producto")
	require.Len(t, out.Items, 1)
	assert.Nil(t, out.Items[0].ProductID)
}

// Un fallo a mitad de los items deshace la venta completa: nunca queda
// visible una venta parcial.
func TestRecordSale_FalloParcialDeshaceTodo(t *testing.T) {
	saleRepo := newFakeSaleRepo()
	saleRepo.failOnItem = 1 // falla la segunda línea
	uc, tx := buildUseCase(saleRepo, newFakeProductRepo())

	_, err := uc.RecordSale(context.Background(), "u-1", dto.RecordSaleRequest{
		ReceiptNumber: "R-006",
		TotalAmount:   dec("25.00"),
		Items: []dto.SaleItemInput{
			{Quantity: 1, UnitPrice: dec("10.00")},
			{Quantity: 3, UnitPrice: dec("5.00")},
		},
	})
	require.Error(t, err)
	assert.True(t, tx.rolledBack)
	assert.Empty(t, saleRepo.headers, "la cabecera no debe sobrevivir al rollback")
	assert.Empty(t, saleRepo.items, "ningún item debe sobrevivir al rollback")
}

// Validaciones de entrada previas a la transacción.
func TestRecordSale_EntradaInvalida(t *testing.T) {
	uc, _ := buildUseCase(newFakeSaleRepo(), newFakeProductRepo())
	ctx := context.Background()

	_, err := uc.RecordSale(ctx, "u-1", dto.RecordSaleRequest{
		TotalAmount: dec("1.00"),
		Items:       []dto.SaleItemInput{{Quantity: 1, UnitPrice: dec("1.00")}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "receipt_number vacío")

	_, err = uc.RecordSale(ctx, "u-1", dto.RecordSaleRequest{
		ReceiptNumber: "R-007",
		TotalAmount:   dec("0.00"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "venta sin items")

	_, err = uc.RecordSale(ctx, "u-1", dto.RecordSaleRequest{
		ReceiptNumber: "R-008",
		TotalAmount:   dec("1.00"),
		Items:         []dto.SaleItemInput{{Quantity: 0, UnitPrice: dec("1.00")}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantity cero")

	_, err = uc.RecordSale(ctx, "u-1", dto.RecordSaleRequest{
		ReceiptNumber: "R-009",
		TotalAmount:   dec("1.00"),
		Items:         []dto.SaleItemInput{{Quantity: 1, UnitPrice: dec("-1.00")}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "unit_price negativo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests NormalizePaymentMethod
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizePaymentMethod(t *testing.T) {
	assert.Equal(t, "Cash", sales.NormalizePaymentMethod("  cash "))
	assert.Equal(t, "Credit Card", sales.NormalizePaymentMethod("CREDIT CARD"))
	assert.Equal(t, "Nequi", sales.NormalizePaymentMethod("nequi"))
	assert.Equal(t, "", sales.NormalizePaymentMethod("   "))
}
