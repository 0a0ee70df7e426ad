package repository

import (
	"context"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// ItemFilter filtros para listar artículos.
type ItemFilter struct {
	CategoryID *string
	Status     string // vacío = todos
	Search     string // ILIKE sobre name y sku
}

// ItemRepository acceso a artículos. ApplyDelta es el único camino legal para
// mutar Item.Quantity y solo debe invocarse dentro de la transacción del
// Quantity Ledger; Create/Update nunca escriben la cantidad.
type ItemRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	List(ctx context.Context, filter ItemFilter, limit, offset int) ([]*entity.Item, int, error)
	Create(ctx context.Context, item *entity.Item) error
	// Update persiste metadatos (nombre, unidad, umbral, categoría, estado);
	// ignora Quantity por contrato.
	Update(ctx context.Context, item *entity.Item) error
	// ApplyDelta aplica un update condicional atómico:
	//   UPDATE items SET quantity = quantity + delta
	//   WHERE id = $1 AND quantity + delta >= 0
	// y devuelve la cantidad resultante. Si la condición no alcanza ninguna
	// fila devuelve domain.ErrItemNotFound o *domain.InsufficientStockError
	// según exista o no el artículo.
	ApplyDelta(ctx context.Context, id string, delta int64) (int64, error)
}
