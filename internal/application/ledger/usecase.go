package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// LedgerUseCase es el único mutador de Item.Quantity. Aplica movimientos de
// entrada y salida de forma transaccional: un update condicional sobre la
// fila del artículo más un asiento inmutable en stock_movements, ambos en la
// misma transacción. Dos salidas concurrentes sobre el mismo artículo se
// serializan en el update condicional; nunca pueden confirmar ambas si la
// suma excede el stock disponible.
type LedgerUseCase struct {
	txRunner TxRunner
	itemRepo repository.ItemRepository
	movRepo  repository.StockMovementRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(txRunner TxRunner, itemRepo repository.ItemRepository, movRepo repository.StockMovementRepository) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, itemRepo: itemRepo, movRepo: movRepo}
}

// MovementInput entrada para registrar un movimiento.
// SupplierID y UnitCost solo tienen sentido en entradas; Reason en salidas.
type MovementInput struct {
	ItemID     string
	Quantity   int64
	SupplierID *string
	Reason     string
	Remarks    string
	UnitCost   *decimal.Decimal
	OccurredOn time.Time
	RecordedBy string
}

// MovementResult resultado de un movimiento aceptado.
type MovementResult struct {
	MovementID  string
	NewQuantity int64
}

// RecordStockIn registra una entrada: suma Quantity al artículo y asienta el
// movimiento, atómicamente.
func (uc *LedgerUseCase) RecordStockIn(ctx context.Context, in MovementInput) (*MovementResult, error) {
	return uc.apply(ctx, entity.DirectionIn, in)
}

// RecordStockOut registra una salida: resta Quantity si hay stock suficiente
// y asienta el movimiento, atómicamente. Si la resta dejaría la cantidad
// negativa falla con ErrInsufficientStock y no escribe ningún asiento.
func (uc *LedgerUseCase) RecordStockOut(ctx context.Context, in MovementInput) (*MovementResult, error) {
	return uc.apply(ctx, entity.DirectionOut, in)
}

func (uc *LedgerUseCase) apply(ctx context.Context, direction string, in MovementInput) (*MovementResult, error) {
	// La cantidad <= 0 es uniformemente inválida; no se distingue entre 0 y
	// negativa (el campo es un entero positivo por contrato).
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if in.ItemID == "" {
		return nil, domain.ErrItemNotFound
	}
	if in.OccurredOn.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if direction == entity.DirectionOut && in.Reason == "" {
		return nil, domain.ErrInvalidInput
	}
	if direction == entity.DirectionIn && in.UnitCost != nil && in.UnitCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	delta := in.Quantity
	if direction == entity.DirectionOut {
		delta = -in.Quantity
	}

	result := &MovementResult{}
	now := time.Now()

	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		movRepo repository.StockMovementRepository,
	) error {
		newQty, err := itemRepo.ApplyDelta(ctx, in.ItemID, delta)
		if err != nil {
			return err
		}
		mov := &entity.StockMovement{
			ID:         uuid.New().String(),
			ItemID:     in.ItemID,
			Direction:  direction,
			Quantity:   in.Quantity,
			OccurredOn: in.OccurredOn,
			RecordedAt: now,
			Remarks:    in.Remarks,
			RecordedBy: in.RecordedBy,
		}
		// Metadatos según dirección: contraparte y costo solo en entradas,
		// propósito solo en salidas.
		if direction == entity.DirectionIn {
			mov.SupplierID = in.SupplierID
			mov.UnitCost = in.UnitCost
		} else {
			mov.Reason = in.Reason
		}
		if err := movRepo.Append(ctx, mov); err != nil {
			return err
		}
		result.MovementID = mov.ID
		result.NewQuantity = newQty
		return nil
	})
	if err != nil {
		// Los errores de dominio pasan tal cual; cualquier otra falla de la
		// transacción se reporta como error de almacenamiento (la operación
		// completa quedó revertida).
		if isDomainErr(err) {
			return nil, err
		}
		return nil, domain.WrapStorage("aplicar movimiento", err)
	}
	return result, nil
}

func isDomainErr(err error) bool {
	return errors.Is(err, domain.ErrItemNotFound) ||
		errors.Is(err, domain.ErrInvalidQuantity) ||
		errors.Is(err, domain.ErrInsufficientStock) ||
		errors.Is(err, domain.ErrInvalidInput)
}

// GetMovementHistory consulta el libro con filtros y paginación, ordenado por
// occurred_on DESC y recorded_at DESC.
func (uc *LedgerUseCase) GetMovementHistory(ctx context.Context, filter repository.MovementFilter, limit, offset int) ([]*entity.StockMovement, int, error) {
	return uc.movRepo.Query(ctx, filter, limit, offset)
}

// GetItemStock devuelve el artículo con su cantidad actual.
func (uc *LedgerUseCase) GetItemStock(ctx context.Context, itemID string) (*entity.Item, error) {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	return item, nil
}
