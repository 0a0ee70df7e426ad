package ledger

import (
	"context"

	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es la frontera de atomicidad del ledger:
// el update condicional de items.quantity y el append a stock_movements
// confirman juntos o no confirman ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}
