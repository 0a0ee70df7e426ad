package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockItemDTO fila de la lista de stock bajo, ya clasificada y ordenada
// por severidad (agotados primero, luego los más cercanos a cero).
type LowStockItemDTO struct {
	ItemID    string `json:"item_id"`
	Name      string `json:"name"`
	Unit      string `json:"unit"`
	Quantity  int64  `json:"quantity"`
	Threshold int64  `json:"threshold"`
	Severity  string `json:"severity"` // out_of_stock, low_stock
}

// TurnoverDTO rotación de un artículo sobre la ventana móvil de 90 días.
type TurnoverDTO struct {
	ItemID        string  `json:"item_id"`
	Name          string  `json:"name"`
	Quantity      int64   `json:"quantity"`
	OutLast90Days int64   `json:"out_last_90d"`
	TurnoverRate  float64 `json:"turnover_rate"`   // salidas 90d / cantidad actual; 0 si cantidad 0
	MonthsOfStock float64 `json:"months_of_stock"` // cantidad / (salidas 90d / 3); 999 sin consumo
}

// DeadStockDTO artículo con stock pero sin salidas en 180 días.
type DeadStockDTO struct {
	ItemID         string           `json:"item_id"`
	Name           string           `json:"name"`
	Quantity       int64            `json:"quantity"`
	EstimatedValue *decimal.Decimal `json:"estimated_value,omitempty"`
}

// TrendPointDTO sumas diarias de entradas y salidas para graficar.
type TrendPointDTO struct {
	Day    string `json:"day"` // YYYY-MM-DD
	InQty  int64  `json:"in_qty"`
	OutQty int64  `json:"out_qty"`
}

// DashboardDTO resumen para el tablero.
type DashboardDTO struct {
	TotalItems     int64     `json:"total_items"`
	OutOfStock     int64     `json:"out_of_stock"`
	LowStock       int64     `json:"low_stock"`
	MovementsToday int64     `json:"movements_today"`
	GeneratedAt    time.Time `json:"generated_at"`
}

// ReconciliationDTO discrepancia entre cantidad almacenada y el libro.
type ReconciliationDTO struct {
	ItemID  string `json:"item_id"`
	Name    string `json:"name"`
	Stored  int64  `json:"stored"`
	Derived int64  `json:"derived"`
	Drift   int64  `json:"drift"` // stored - derived; 0 si conserva
}
