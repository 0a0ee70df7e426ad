package repository

import (
	"context"
	"time"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// MovementFilter filtros para consultar el libro de movimientos.
type MovementFilter struct {
	ItemID     string
	SupplierID string
	Direction  string // in, out o vacío
	From       *time.Time
	To         *time.Time
	Search     string // texto libre sobre reason y remarks
}

// DailyFlow suma de entradas y salidas de un día.
type DailyFlow struct {
	Day      time.Time
	InQty    int64
	OutQty   int64
	InCount  int64
	OutCount int64
}

// StockMovementRepository es el almacén append-only del libro de movimientos.
// No existe Update ni Delete: la inmutabilidad del historial se fuerza por
// construcción de la interfaz. Append solo se invoca dentro de la unidad
// atómica del Quantity Ledger.
type StockMovementRepository interface {
	Append(ctx context.Context, movement *entity.StockMovement) error
	GetByID(ctx context.Context, id string) (*entity.StockMovement, error)
	// Query devuelve movimientos ordenados por occurred_on DESC con desempate
	// por recorded_at DESC, más el total de filas que cumplen el filtro.
	Query(ctx context.Context, filter MovementFilter, limit, offset int) ([]*entity.StockMovement, int, error)
	// AggregateDaily agrupa por día las sumas de entradas y salidas del rango.
	AggregateDaily(ctx context.Context, from, to time.Time) ([]DailyFlow, error)
}
