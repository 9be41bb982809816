package usecase

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-pro/internal/application/dto"
	"github.com/tu-usuario/pos-pro/internal/domain/repository"
)

// AnalyticsUseCase arma el dashboard: serie diaria de 7 días, distribución
// por medio de pago, top de productos, agregados y productos con stock bajo.
type AnalyticsUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	productRepo   repository.ProductRepository
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(analyticsRepo repository.AnalyticsRepository, productRepo repository.ProductRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{analyticsRepo: analyticsRepo, productRepo: productRepo}
}

// Dashboard calcula todas las secciones del tablero en una sola respuesta.
// Los cortes de día son en UTC, la misma zona en la que agrupa la DB.
func (uc *AnalyticsUseCase) Dashboard() (*dto.AnalyticsResponse, error) {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	from := today.AddDate(0, 0, -6)

	daily, err := uc.analyticsRepo.DailySales(from, today.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	// La serie siempre trae 7 puntos: días sin ventas aparecen en cero.
	byDate := make(map[string]repository.DailySales, len(daily))
	for _, d := range daily {
		byDate[d.Date.UTC().Format("2006-01-02")] = d
	}
	points := make([]dto.DailySalesPoint, 0, 7)
	for i := 0; i < 7; i++ {
		date := from.AddDate(0, 0, i)
		key := date.Format("2006-01-02")
		d := byDate[key]
		revenue := d.Revenue
		if revenue.IsZero() {
			revenue = decimal.Zero
		}
		points = append(points, dto.DailySalesPoint{
			Day:     date.Format("Mon"),
			Date:    key,
			Revenue: revenue,
			Orders:  d.Orders,
		})
	}

	methods, err := uc.analyticsRepo.PaymentMethodTotals()
	if err != nil {
		return nil, err
	}
	slices := make([]dto.PaymentMethodSlice, 0, len(methods))
	for _, m := range methods {
		name := m.Method
		if name == "" {
			name = "Cash"
		}
		slices = append(slices, dto.PaymentMethodSlice{Name: name, Value: m.Total, Count: m.Count})
	}

	top, err := uc.analyticsRepo.TopProducts(5)
	if err != nil {
		return nil, err
	}
	topEntries := make([]dto.TopProductEntry, 0, len(top))
	for _, t := range top {
		topEntries = append(topEntries, dto.TopProductEntry{Name: t.Name, Sales: t.Quantity, Revenue: t.Revenue})
	}

	totals, err := uc.analyticsRepo.Totals()
	if err != nil {
		return nil, err
	}
	todayTotals, err := uc.analyticsRepo.TotalsSince(today)
	if err != nil {
		return nil, err
	}
	avg := decimal.Zero
	if totals.Orders > 0 {
		avg = totals.Revenue.Div(decimal.NewFromInt(int64(totals.Orders))).Round(2)
	}

	lowStock, err := uc.productRepo.ListLowStock(10)
	if err != nil {
		return nil, err
	}
	lowEntries := make([]dto.LowStockEntry, 0, len(lowStock))
	for _, p := range lowStock {
		lowEntries = append(lowEntries, dto.LowStockEntry{
			ID:           p.ID,
			Name:         p.Name,
			Stock:        p.Stock,
			ReorderLevel: p.ReorderLevel,
		})
	}

	return &dto.AnalyticsResponse{
		DailySales:     points,
		PaymentMethods: slices,
		TopProducts:    topEntries,
		Statistics: dto.AnalyticsStatistics{
			TotalRevenue:  totals.Revenue,
			TotalOrders:   totals.Orders,
			TodayRevenue:  todayTotals.Revenue,
			TodayOrders:   todayTotals.Orders,
			AvgOrderValue: avg,
		},
		LowStock: lowEntries,
	}, nil
}
