package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo almacén append-only del libro de movimientos sobre
// PostgreSQL (usable con pool o tx). No expone UPDATE ni DELETE: el
// historial es inmutable por construcción.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

const movementColumns = `id, item_id, direction, quantity, occurred_on, recorded_at, supplier_id, reason, remarks, unit_cost, recorded_by`

// Append asienta un movimiento. Solo se invoca dentro de la transacción del
// ledger, nunca standalone.
func (r *StockMovementRepo) Append(ctx context.Context, m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.ItemID, m.Direction, m.Quantity, m.OccurredOn, m.RecordedAt,
		m.SupplierID, nullIfEmpty(m.Reason), nullIfEmpty(m.Remarks), m.UnitCost, m.RecordedBy,
	)
	if err != nil {
		return fmt.Errorf("append movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID; nil si no existe.
func (r *StockMovementRepo) GetByID(ctx context.Context, id string) (*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE id = $1`
	m, err := scanMovement(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// Query lista movimientos que cumplen el filtro, ordenados por occurred_on
// DESC con desempate por recorded_at DESC, más el total de filas.
func (r *StockMovementRepo) Query(ctx context.Context, filter repository.MovementFilter, limit, offset int) ([]*entity.StockMovement, int, error) {
	where, args := buildMovementWhere(filter)

	var total int
	if err := r.q.QueryRow(ctx, "SELECT COUNT(*) FROM stock_movements"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count movements: %w", err)
	}

	pos := len(args) + 1
	query := `SELECT ` + movementColumns + ` FROM stock_movements` + where +
		fmt.Sprintf(" ORDER BY occurred_on DESC, recorded_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, total, rows.Err()
}

// AggregateDaily agrupa por día las sumas y conteos de entradas y salidas
// del rango [from, to].
func (r *StockMovementRepo) AggregateDaily(ctx context.Context, from, to time.Time) ([]repository.DailyFlow, error) {
	const query = `
		SELECT
		    occurred_on::date AS day,
		    COALESCE(SUM(quantity) FILTER (WHERE direction = 'in'),  0) AS in_qty,
		    COALESCE(SUM(quantity) FILTER (WHERE direction = 'out'), 0) AS out_qty,
		    COUNT(*) FILTER (WHERE direction = 'in')  AS in_count,
		    COUNT(*) FILTER (WHERE direction = 'out') AS out_count
		FROM stock_movements
		WHERE occurred_on BETWEEN $1 AND $2
		GROUP BY occurred_on::date
		ORDER BY day ASC`

	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("aggregate daily: %w", err)
	}
	defer rows.Close()

	var out []repository.DailyFlow
	for rows.Next() {
		var f repository.DailyFlow
		if err := rows.Scan(&f.Day, &f.InQty, &f.OutQty, &f.InCount, &f.OutCount); err != nil {
			return nil, fmt.Errorf("scan daily flow: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// buildMovementWhere arma la cláusula WHERE parametrizada del filtro.
func buildMovementWhere(filter repository.MovementFilter) (string, []any) {
	where := " WHERE 1=1"
	args := []any{}
	pos := 1
	if filter.ItemID != "" {
		where += fmt.Sprintf(" AND item_id = $%d", pos)
		args = append(args, filter.ItemID)
		pos++
	}
	if filter.SupplierID != "" {
		where += fmt.Sprintf(" AND supplier_id = $%d", pos)
		args = append(args, filter.SupplierID)
		pos++
	}
	if filter.Direction != "" {
		where += fmt.Sprintf(" AND direction = $%d", pos)
		args = append(args, filter.Direction)
		pos++
	}
	if filter.From != nil {
		where += fmt.Sprintf(" AND occurred_on >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		where += fmt.Sprintf(" AND occurred_on <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	if filter.Search != "" {
		where += fmt.Sprintf(" AND (reason ILIKE $%d OR remarks ILIKE $%d)", pos, pos)
		args = append(args, "%"+filter.Search+"%")
		pos++
	}
	return where, args
}

func scanMovement(row pgx.Row) (*entity.StockMovement, error) {
	var m entity.StockMovement
	var reason, remarks *string
	if err := row.Scan(
		&m.ID, &m.ItemID, &m.Direction, &m.Quantity, &m.OccurredOn, &m.RecordedAt,
		&m.SupplierID, &reason, &remarks, &m.UnitCost, &m.RecordedBy,
	); err != nil {
		return nil, err
	}
	if reason != nil {
		m.Reason = *reason
	}
	if remarks != nil {
		m.Remarks = *remarks
	}
	return &m, nil
}
