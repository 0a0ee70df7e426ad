package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockInRequest body para POST /api/stock/in.
type StockInRequest struct {
	ItemID     string           `json:"item_id"`
	Quantity   int64            `json:"quantity"`
	SupplierID *string          `json:"supplier_id,omitempty"`
	OccurredOn string           `json:"occurred_on"` // YYYY-MM-DD
	UnitCost   *decimal.Decimal `json:"unit_cost,omitempty"`
	Remarks    string           `json:"remarks,omitempty"`
}

// StockOutRequest body para POST /api/stock/out.
type StockOutRequest struct {
	ItemID     string `json:"item_id"`
	Quantity   int64  `json:"quantity"`
	Reason     string `json:"reason"`
	OccurredOn string `json:"occurred_on"` // YYYY-MM-DD
	Remarks    string `json:"remarks,omitempty"`
}

// MovementResultResponse resultado de un movimiento aceptado.
type MovementResultResponse struct {
	MovementID  string `json:"movement_id"`
	NewQuantity int64  `json:"new_quantity"`
	StockLevel  string `json:"stock_level"`
}

// MovementDTO asiento del libro para listados y exportes.
type MovementDTO struct {
	ID         string           `json:"id"`
	ItemID     string           `json:"item_id"`
	Direction  string           `json:"direction"`
	Quantity   int64            `json:"quantity"`
	OccurredOn string           `json:"occurred_on"`
	RecordedAt time.Time        `json:"recorded_at"`
	SupplierID *string          `json:"supplier_id,omitempty"`
	Reason     string           `json:"reason,omitempty"`
	Remarks    string           `json:"remarks,omitempty"`
	UnitCost   *decimal.Decimal `json:"unit_cost,omitempty"`
	RecordedBy string           `json:"recorded_by"`
}

// MovementListResponse página de movimientos.
type MovementListResponse struct {
	Movements []MovementDTO `json:"movements"`
	Page      PageResponse  `json:"page"`
}
