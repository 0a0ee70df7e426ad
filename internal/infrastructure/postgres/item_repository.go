package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con
// pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id, name, sku, category_id, unit, quantity, low_stock_threshold, status, created_at, updated_at`

// GetByID obtiene un artículo por ID; nil si no existe.
func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	it, err := scanItem(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return it, nil
}

// List lista artículos con filtros y devuelve el total sin paginar.
func (r *ItemRepo) List(ctx context.Context, filter repository.ItemFilter, limit, offset int) ([]*entity.Item, int, error) {
	where := " WHERE 1=1"
	args := []any{}
	pos := 1
	if filter.CategoryID != nil {
		where += fmt.Sprintf(" AND category_id = $%d", pos)
		args = append(args, *filter.CategoryID)
		pos++
	}
	if filter.Status != "" {
		where += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, filter.Status)
		pos++
	}
	if filter.Search != "" {
		where += fmt.Sprintf(" AND (name ILIKE $%d OR sku ILIKE $%d)", pos, pos)
		args = append(args, "%"+filter.Search+"%")
		pos++
	}

	var total int
	if err := r.q.QueryRow(ctx, "SELECT COUNT(*) FROM items"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}

	query := `SELECT ` + itemColumns + ` FROM items` + where +
		fmt.Sprintf(" ORDER BY name ASC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var list []*entity.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, it)
	}
	return list, total, rows.Err()
}

// Create persiste un artículo nuevo.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	query := `
		INSERT INTO items (id, name, sku, category_id, unit, quantity, low_stock_threshold, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Name, nullIfEmpty(item.SKU), item.CategoryID, item.Unit,
		item.Quantity, item.LowStockThreshold, item.Status, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

// Update persiste metadatos. No incluye quantity: la cantidad solo cambia
// por ApplyDelta dentro de la transacción del ledger.
func (r *ItemRepo) Update(ctx context.Context, item *entity.Item) error {
	query := `
		UPDATE items
		SET name = $2, sku = $3, category_id = $4, unit = $5,
		    low_stock_threshold = $6, status = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		item.ID, item.Name, nullIfEmpty(item.SKU), item.CategoryID, item.Unit,
		item.LowStockThreshold, item.Status, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// ApplyDelta aplica el update condicional atómico sobre la cantidad. La
// condición quantity + delta >= 0 serializa salidas concurrentes sobre el
// mismo artículo: dos salidas cuya suma exceda el stock no pueden confirmar
// ambas. Si no alcanza ninguna fila, una lectura posterior (misma tx)
// distingue artículo inexistente de stock insuficiente.
func (r *ItemRepo) ApplyDelta(ctx context.Context, id string, delta int64) (int64, error) {
	query := `
		UPDATE items
		SET quantity = quantity + $2, updated_at = now()
		WHERE id = $1 AND quantity + $2 >= 0
		RETURNING quantity`
	var newQty int64
	err := r.q.QueryRow(ctx, query, id, delta).Scan(&newQty)
	if err == nil {
		return newQty, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("apply delta: %w", err)
	}

	// Ninguna fila cumplió la condición: ¿no existe o no alcanza el stock?
	var available int64
	err = r.q.QueryRow(ctx, `SELECT quantity FROM items WHERE id = $1`, id).Scan(&available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrItemNotFound
		}
		return 0, fmt.Errorf("apply delta (releer cantidad): %w", err)
	}
	return 0, &domain.InsufficientStockError{ItemID: id, Available: available, Requested: -delta}
}

func scanItem(row pgx.Row) (*entity.Item, error) {
	var it entity.Item
	var sku *string
	if err := row.Scan(
		&it.ID, &it.Name, &sku, &it.CategoryID, &it.Unit,
		&it.Quantity, &it.LowStockThreshold, &it.Status, &it.CreatedAt, &it.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if sku != nil {
		it.SKU = *sku
	}
	return &it, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
