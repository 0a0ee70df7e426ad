package reports

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
	"github.com/jhoicas/bodega-api/internal/domain/stock"
)

// Ventanas móviles y centinelas de los reportes.
const (
	turnoverWindowDays  = 90
	deadStockWindowDays = 180
	// maxMonthsOfStock es el centinela para "sin consumo": runway infinito
	// representado como un máximo acotado, nunca como error de división.
	maxMonthsOfStock = 999
)

// ReportUseCase vistas derivadas de solo lectura sobre el libro de
// movimientos y el directorio de artículos. No muta estado.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
	movRepo    repository.StockMovementRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reportRepo repository.ReportRepository, movRepo repository.StockMovementRepository) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo, movRepo: movRepo}
}

// LowStockList devuelve los artículos cuyo nivel no es InStock, ordenados por
// severidad (agotados primero) y luego por quantity/threshold ascendente (los
// más cercanos a cero primero). Umbral 0 cuenta como lo más severo dentro de
// su grupo; la razón nunca se evalúa como división real contra cero.
func (uc *ReportUseCase) LowStockList(ctx context.Context) ([]dto.LowStockItemDTO, error) {
	rows, err := uc.reportRepo.LowStockRows(ctx)
	if err != nil {
		return nil, err
	}

	type scored struct {
		dto   dto.LowStockItemDTO
		sev   int
		ratio float64
	}
	var list []scored
	for _, r := range rows {
		level := stock.Classify(r.Quantity, r.Threshold)
		if level == stock.InStock {
			continue
		}
		ratio := math.Inf(-1) // umbral 0: lo más severo, ordena primero
		if r.Threshold > 0 {
			ratio = float64(r.Quantity) / float64(r.Threshold)
		}
		list = append(list, scored{
			dto: dto.LowStockItemDTO{
				ItemID:    r.ItemID,
				Name:      r.Name,
				Unit:      r.Unit,
				Quantity:  r.Quantity,
				Threshold: r.Threshold,
				Severity:  string(level),
			},
			sev:   stock.Severity(level),
			ratio: ratio,
		})
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].sev != list[j].sev {
			return list[i].sev < list[j].sev
		}
		return list[i].ratio < list[j].ratio
	})

	out := make([]dto.LowStockItemDTO, len(list))
	for i, s := range list {
		out[i] = s.dto
	}
	return out, nil
}

// Turnover calcula la rotación de cada artículo sobre los últimos 90 días:
// rate = salidas / cantidad actual (0 si la cantidad es 0) y
// meses de stock = cantidad / (salidas / 3), acotado en 999 sin consumo.
func (uc *ReportUseCase) Turnover(ctx context.Context) ([]dto.TurnoverDTO, error) {
	since := time.Now().AddDate(0, 0, -turnoverWindowDays)
	rows, err := uc.reportRepo.TurnoverRows(ctx, since)
	if err != nil {
		return nil, err
	}

	out := make([]dto.TurnoverDTO, 0, len(rows))
	for _, r := range rows {
		d := dto.TurnoverDTO{
			ItemID:        r.ItemID,
			Name:          r.Name,
			Quantity:      r.Quantity,
			OutLast90Days: r.OutTrailing,
			MonthsOfStock: maxMonthsOfStock,
		}
		if r.Quantity > 0 && r.OutTrailing > 0 {
			d.TurnoverRate = round2(float64(r.OutTrailing) / float64(r.Quantity))
		}
		if r.OutTrailing > 0 {
			months := round1(float64(r.Quantity) / (float64(r.OutTrailing) / 3.0))
			if months > maxMonthsOfStock {
				months = maxMonthsOfStock
			}
			d.MonthsOfStock = months
		}
		out = append(out, d)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TurnoverRate > out[j].TurnoverRate
	})
	return out, nil
}

// DeadStock devuelve artículos con cantidad > 0 y cero salidas en los últimos
// 180 días, con valor estimado al último costo de entrada conocido.
func (uc *ReportUseCase) DeadStock(ctx context.Context) ([]dto.DeadStockDTO, error) {
	since := time.Now().AddDate(0, 0, -deadStockWindowDays)
	rows, err := uc.reportRepo.DeadStockRows(ctx, since)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DeadStockDTO, 0, len(rows))
	for _, r := range rows {
		d := dto.DeadStockDTO{ItemID: r.ItemID, Name: r.Name, Quantity: r.Quantity}
		if r.LastUnitCost != nil {
			v := r.LastUnitCost.Mul(decimal.NewFromInt(r.Quantity))
			d.EstimatedValue = &v
		}
		out = append(out, d)
	}
	return out, nil
}

// Trends agrupa por día las sumas de entradas y salidas del rango pedido.
func (uc *ReportUseCase) Trends(ctx context.Context, from, to time.Time) ([]dto.TrendPointDTO, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidInput
	}
	flows, err := uc.movRepo.AggregateDaily(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TrendPointDTO, 0, len(flows))
	for _, f := range flows {
		out = append(out, dto.TrendPointDTO{
			Day:    f.Day.Format("2006-01-02"),
			InQty:  f.InQty,
			OutQty: f.OutQty,
		})
	}
	return out, nil
}

// Dashboard resumen agregado para la vista principal.
func (uc *ReportUseCase) Dashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	counts, err := uc.reportRepo.DashboardCounts(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardDTO{
		TotalItems:     counts.TotalItems,
		OutOfStock:     counts.OutOfStock,
		LowStock:       counts.LowStock,
		MovementsToday: counts.MovementsToday,
		GeneratedAt:    time.Now(),
	}, nil
}

// Reconcile audita la invariante de conservación: recalcula la cantidad neta
// de cada artículo desde el libro completo y reporta las discrepancias contra
// items.quantity. Es la única recomputación permitida desde el historial y
// corre fuera de la ruta de escritura.
func (uc *ReportUseCase) Reconcile(ctx context.Context) ([]dto.ReconciliationDTO, error) {
	rows, err := uc.reportRepo.ReconciliationRows(ctx)
	if err != nil {
		return nil, err
	}
	var out []dto.ReconciliationDTO
	for _, r := range rows {
		if r.Stored == r.Derived {
			continue
		}
		out = append(out, dto.ReconciliationDTO{
			ItemID:  r.ItemID,
			Name:    r.Name,
			Stored:  r.Stored,
			Derived: r.Derived,
			Drift:   r.Stored - r.Derived,
		})
	}
	return out, nil
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round1(v float64) float64 { return math.Round(v*10) / 10 }
