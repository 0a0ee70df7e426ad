package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas derivadas de solo lectura sobre items y
// stock_movements. Siempre atado al pool: los reportes no participan en
// transacciones de escritura.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// LowStockRows devuelve los artículos activos candidatos a alerta (cantidad
// dentro del umbral o en cero). La clasificación exacta y el orden por
// severidad los hace el caso de uso con el clasificador de dominio.
func (r *ReportRepo) LowStockRows(ctx context.Context) ([]repository.LowStockRow, error) {
	const query = `
		SELECT id, name, unit, quantity, low_stock_threshold
		FROM items
		WHERE status = 'active'
		  AND (quantity = 0 OR quantity <= low_stock_threshold)
		ORDER BY name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reports.LowStockRows: %w", err)
	}
	defer rows.Close()

	var out []repository.LowStockRow
	for rows.Next() {
		var row repository.LowStockRow
		if err := rows.Scan(&row.ItemID, &row.Name, &row.Unit, &row.Quantity, &row.Threshold); err != nil {
			return nil, fmt.Errorf("reports.LowStockRows scan: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// TurnoverRows devuelve cantidad actual y total de salidas desde `since`
// para cada artículo activo.
func (r *ReportRepo) TurnoverRows(ctx context.Context, since time.Time) ([]repository.TurnoverRow, error) {
	const query = `
		SELECT
		    i.id, i.name, i.quantity,
		    COALESCE(usage.total_out, 0) AS out_trailing
		FROM items i
		LEFT JOIN (
		    SELECT item_id, SUM(quantity) AS total_out
		    FROM stock_movements
		    WHERE direction = 'out' AND occurred_on >= $1
		    GROUP BY item_id
		) usage ON usage.item_id = i.id
		WHERE i.status = 'active'
		ORDER BY i.name ASC`

	rows, err := r.pool.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("reports.TurnoverRows: %w", err)
	}
	defer rows.Close()

	var out []repository.TurnoverRow
	for rows.Next() {
		var row repository.TurnoverRow
		if err := rows.Scan(&row.ItemID, &row.Name, &row.Quantity, &row.OutTrailing); err != nil {
			return nil, fmt.Errorf("reports.TurnoverRows scan: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// DeadStockRows devuelve artículos activos con stock y sin ninguna salida
// desde `since`, con el costo unitario de la entrada más reciente que lo
// tenga informado (para estimar valor inmovilizado).
func (r *ReportRepo) DeadStockRows(ctx context.Context, since time.Time) ([]repository.DeadStockRow, error) {
	const query = `
		SELECT
		    i.id, i.name, i.quantity,
		    (SELECT m.unit_cost
		     FROM stock_movements m
		     WHERE m.item_id = i.id AND m.direction = 'in' AND m.unit_cost IS NOT NULL
		     ORDER BY m.occurred_on DESC, m.recorded_at DESC
		     LIMIT 1) AS last_unit_cost
		FROM items i
		WHERE i.status = 'active'
		  AND i.quantity > 0
		  AND NOT EXISTS (
		      SELECT 1 FROM stock_movements m
		      WHERE m.item_id = i.id AND m.direction = 'out' AND m.occurred_on >= $1
		  )
		ORDER BY i.quantity DESC`

	rows, err := r.pool.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("reports.DeadStockRows: %w", err)
	}
	defer rows.Close()

	var out []repository.DeadStockRow
	for rows.Next() {
		var row repository.DeadStockRow
		if err := rows.Scan(&row.ItemID, &row.Name, &row.Quantity, &row.LastUnitCost); err != nil {
			return nil, fmt.Errorf("reports.DeadStockRows scan: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// DashboardCounts conteos agregados para el tablero.
func (r *ReportRepo) DashboardCounts(ctx context.Context) (*repository.DashboardCounts, error) {
	const query = `
		SELECT
		    (SELECT COUNT(*) FROM items WHERE status = 'active'),
		    (SELECT COUNT(*) FROM items WHERE status = 'active' AND quantity = 0),
		    (SELECT COUNT(*) FROM items WHERE status = 'active' AND quantity > 0 AND quantity <= low_stock_threshold),
		    (SELECT COUNT(*) FROM stock_movements WHERE recorded_at::date = now()::date)`

	var c repository.DashboardCounts
	err := r.pool.QueryRow(ctx, query).Scan(&c.TotalItems, &c.OutOfStock, &c.LowStock, &c.MovementsToday)
	if err != nil {
		return nil, fmt.Errorf("reports.DashboardCounts: %w", err)
	}
	return &c, nil
}

// ReconciliationRows contrasta items.quantity contra la suma neta del libro
// completo. Es la única recomputación desde el historial (auditoría offline);
// la ruta de escritura nunca re-deriva la cantidad.
func (r *ReportRepo) ReconciliationRows(ctx context.Context) ([]repository.ReconciliationRow, error) {
	const query = `
		SELECT
		    i.id, i.name, i.quantity,
		    COALESCE(SUM(CASE WHEN m.direction = 'in' THEN m.quantity
		                      WHEN m.direction = 'out' THEN -m.quantity
		                      ELSE 0 END), 0) AS derived
		FROM items i
		LEFT JOIN stock_movements m ON m.item_id = i.id
		GROUP BY i.id, i.name, i.quantity
		ORDER BY i.name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reports.ReconciliationRows: %w", err)
	}
	defer rows.Close()

	var out []repository.ReconciliationRow
	for rows.Next() {
		var row repository.ReconciliationRow
		if err := rows.Scan(&row.ItemID, &row.Name, &row.Stored, &row.Derived); err != nil {
			return nil, fmt.Errorf("reports.ReconciliationRows scan: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
