package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// LowStockRow fila cruda para la lista de stock bajo (el ordenamiento y la
// clasificación los hace el caso de uso con el clasificador de dominio).
type LowStockRow struct {
	ItemID    string
	Name      string
	Unit      string
	Quantity  int64
	Threshold int64
}

// TurnoverRow consumo reciente de un artículo para el cálculo de rotación.
type TurnoverRow struct {
	ItemID      string
	Name        string
	Quantity    int64
	OutTrailing int64 // total de salidas en la ventana consultada
}

// DeadStockRow artículo con stock pero sin salidas en la ventana consultada.
type DeadStockRow struct {
	ItemID       string
	Name         string
	Quantity     int64
	LastUnitCost *decimal.Decimal // último costo de entrada conocido, puede ser nil
}

// DashboardCounts conteos agregados para el resumen del tablero.
type DashboardCounts struct {
	TotalItems     int64
	OutOfStock     int64
	LowStock       int64
	MovementsToday int64
}

// ReconciliationRow cantidad almacenada vs neta derivada del libro.
type ReconciliationRow struct {
	ItemID  string
	Name    string
	Stored  int64
	Derived int64 // sum(in) - sum(out) sobre todo el historial
}

// ReportRepository consultas derivadas de solo lectura sobre items y
// stock_movements. Nunca muta estado; tolera movimientos confirmados después
// de iniciada la consulta (sin garantía de snapshot entre consultas).
type ReportRepository interface {
	LowStockRows(ctx context.Context) ([]LowStockRow, error)
	TurnoverRows(ctx context.Context, since time.Time) ([]TurnoverRow, error)
	DeadStockRows(ctx context.Context, since time.Time) ([]DeadStockRow, error)
	DashboardCounts(ctx context.Context) (*DashboardCounts, error)
	// ReconciliationRows recalcula la cantidad neta desde el libro completo
	// y la contrasta con items.quantity (herramienta de auditoría offline).
	ReconciliationRows(ctx context.Context) ([]ReconciliationRow, error)
}
