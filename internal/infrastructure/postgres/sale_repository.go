package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/pos-pro/internal/domain"
	"github.com/tu-usuario/pos-pro/internal/domain/entity"
	"github.com/tu-usuario/pos-pro/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// CreateHeader inserta la cabecera de la venta. Un receipt_number duplicado
// viola el constraint único y se mapea a domain.ErrDuplicate.
func (r *SaleRepo) CreateHeader(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, receipt_number, total_amount, payment_method, customer_name, customer_phone, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	var createdBy *string
	if sale.CreatedBy != "" {
		createdBy = &sale.CreatedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ReceiptNumber, sale.TotalAmount, nullIfEmpty(sale.PaymentMethod),
		nullIfEmpty(sale.CustomerName), nullIfEmpty(sale.CustomerPhone), createdBy, sale.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem inserta una línea de venta con su subtotal ya calculado.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, product_id, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SaleID, item.ProductID, item.Quantity, item.UnitPrice, item.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// GetByID obtiene una venta con sus items en orden de inserción.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, receipt_number, total_amount, payment_method, customer_name, customer_phone, created_by, created_at
		FROM sales WHERE id = $1`
	sale, err := scanSale(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	items, err := r.itemsFor(sale.ID)
	if err != nil {
		return nil, err
	}
	sale.Items = items
	return sale, nil
}

// List devuelve ventas con sus items, más recientes primero.
func (r *SaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT id, receipt_number, total_amount, payment_method, customer_name, customer_phone, created_by, created_at
		FROM sales ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, sale)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, sale := range list {
		items, err := r.itemsFor(sale.ID)
		if err != nil {
			return nil, err
		}
		sale.Items = items
	}
	return list, nil
}

// Delete elimina una venta; sus items caen en cascada (ON DELETE CASCADE).
func (r *SaleRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}

func (r *SaleRepo) itemsFor(saleID string) ([]entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, product_id, quantity, unit_price, subtotal
		FROM sale_items WHERE sale_id = $1 ORDER BY seq`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var items []entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	var payment, custName, custPhone, createdBy *string
	err := row.Scan(&s.ID, &s.ReceiptNumber, &s.TotalAmount, &payment, &custName, &custPhone, &createdBy, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	s.PaymentMethod = deref(payment)
	s.CustomerName = deref(custName)
	s.CustomerPhone = deref(custPhone)
	s.CreatedBy = deref(createdBy)
	return &s, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
