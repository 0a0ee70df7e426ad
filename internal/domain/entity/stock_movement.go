package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direcciones de un movimiento de stock.
const (
	DirectionIn  = "in"  // entrada (recepción)
	DirectionOut = "out" // salida (consumo, venta, baja)
)

// StockMovement es un asiento inmutable del libro de movimientos.
// Una vez confirmado nunca se edita ni elimina; una corrección se registra
// como un movimiento compensatorio nuevo. El conjunto de movimientos de un
// artículo debe reconciliar exactamente con Item.Quantity.
type StockMovement struct {
	ID         string
	ItemID     string
	Direction  string           // in, out
	Quantity   int64            // entero positivo
	OccurredOn time.Time        // fecha del movimiento (aportada por el usuario)
	RecordedAt time.Time        // timestamp de registro (asignado por el servidor)
	SupplierID *string          // contraparte, solo con sentido en entradas
	Reason     string           // propósito, solo con sentido en salidas
	Remarks    string           // texto libre opcional
	UnitCost   *decimal.Decimal // costo unitario, solo en entradas
	RecordedBy string           // UserID del principal que registró
}

// SignedQuantity devuelve la cantidad con signo: positiva para entradas,
// negativa para salidas. Útil para la reconciliación contra el libro.
func (m *StockMovement) SignedQuantity() int64 {
	if m.Direction == DirectionOut {
		return -m.Quantity
	}
	return m.Quantity
}
