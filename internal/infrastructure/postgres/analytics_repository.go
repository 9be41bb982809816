package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-pro/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de agregación sobre sales/sale_items para el dashboard.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// DailySales ingresos y órdenes por día en [from, to). Los días se cortan en
// UTC, sin depender del TimeZone de la sesión, para que coincidan con las
// claves de fecha que arma el caso de uso.
func (r *AnalyticsRepo) DailySales(from, to time.Time) ([]repository.DailySales, error) {
	query := `
		SELECT date_trunc('day', created_at AT TIME ZONE 'UTC') AS day, COALESCE(SUM(total_amount), 0), COUNT(*)
		FROM sales WHERE created_at >= $1 AND created_at < $2
		GROUP BY day ORDER BY day`
	rows, err := r.q.Query(context.Background(), query, from, to)
	if err != nil {
		return nil, fmt.Errorf("daily sales: %w", err)
	}
	defer rows.Close()
	var list []repository.DailySales
	for rows.Next() {
		var d repository.DailySales
		if err := rows.Scan(&d.Date, &d.Revenue, &d.Orders); err != nil {
			return nil, fmt.Errorf("scan daily sales: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// PaymentMethodTotals distribución de ventas por medio de pago, mayor primero.
func (r *AnalyticsRepo) PaymentMethodTotals() ([]repository.PaymentMethodTotal, error) {
	query := `
		SELECT COALESCE(payment_method, ''), COALESCE(SUM(total_amount), 0), COUNT(*)
		FROM sales GROUP BY payment_method ORDER BY 2 DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("payment method totals: %w", err)
	}
	defer rows.Close()
	var list []repository.PaymentMethodTotal
	for rows.Next() {
		var m repository.PaymentMethodTotal
		if err := rows.Scan(&m.Method, &m.Total, &m.Count); err != nil {
			return nil, fmt.Errorf("scan payment method: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// TopProducts productos más vendidos por cantidad. Ignora líneas cuyo
// producto fue eliminado (referencia en null).
func (r *AnalyticsRepo) TopProducts(limit int) ([]repository.TopProduct, error) {
	query := `
		SELECT p.id, p.name, COALESCE(SUM(si.quantity), 0), COALESCE(SUM(si.subtotal), 0)
		FROM sale_items si JOIN products p ON p.id = si.product_id
		GROUP BY p.id, p.name ORDER BY 3 DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()
	var list []repository.TopProduct
	for rows.Next() {
		var t repository.TopProduct
		if err := rows.Scan(&t.ProductID, &t.Name, &t.Quantity, &t.Revenue); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Totals agregado global de ventas.
func (r *AnalyticsRepo) Totals() (repository.SalesTotals, error) {
	return r.totalsWhere(`SELECT COALESCE(SUM(total_amount), 0), COUNT(*) FROM sales`)
}

// TotalsSince agregado de ventas desde t (inclusive).
func (r *AnalyticsRepo) TotalsSince(t time.Time) (repository.SalesTotals, error) {
	var out repository.SalesTotals
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(total_amount), 0), COUNT(*) FROM sales WHERE created_at >= $1`, t,
	).Scan(&out.Revenue, &out.Orders)
	if err != nil {
		return out, fmt.Errorf("totals since: %w", err)
	}
	return out, nil
}

func (r *AnalyticsRepo) totalsWhere(query string) (repository.SalesTotals, error) {
	var out repository.SalesTotals
	err := r.q.QueryRow(context.Background(), query).Scan(&out.Revenue, &out.Orders)
	if err != nil {
		return out, fmt.Errorf("sales totals: %w", err)
	}
	return out, nil
}

// SalesStatsByUser ventas acumuladas por usuario creador.
func (r *AnalyticsRepo) SalesStatsByUser() (map[string]repository.UserSalesStats, error) {
	query := `
		SELECT created_by, COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM sales WHERE created_by IS NOT NULL GROUP BY created_by`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("sales stats by user: %w", err)
	}
	defer rows.Close()
	out := make(map[string]repository.UserSalesStats)
	for rows.Next() {
		var userID string
		var count int
		var total decimal.Decimal
		if err := rows.Scan(&userID, &count, &total); err != nil {
			return nil, fmt.Errorf("scan user stats: %w", err)
		}
		out[userID] = repository.UserSalesStats{Count: count, Total: total}
	}
	return out, rows.Err()
}
