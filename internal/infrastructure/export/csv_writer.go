// Package export serializa vistas del inventario a formatos descargables
// (CSV y XML). Son adaptadores de solo lectura: reciben DTOs ya consultados
// y nunca tocan repositorios.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/jhoicas/bodega-api/internal/application/dto"
)

// MovementsCSV serializa movimientos al CSV que consumen las hojas de
// cálculo del área de compras.
func MovementsCSV(movements []dto.MovementDTO) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"id", "item_id", "direction", "quantity", "occurred_on", "recorded_at", "supplier_id", "reason", "remarks", "unit_cost", "recorded_by"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("csv header: %w", err)
	}
	for _, m := range movements {
		supplier := ""
		if m.SupplierID != nil {
			supplier = *m.SupplierID
		}
		unitCost := ""
		if m.UnitCost != nil {
			unitCost = m.UnitCost.String()
		}
		record := []string{
			m.ID, m.ItemID, m.Direction,
			fmt.Sprintf("%d", m.Quantity),
			m.OccurredOn,
			m.RecordedAt.Format("2006-01-02 15:04:05"),
			supplier, m.Reason, m.Remarks, unitCost, m.RecordedBy,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv flush: %w", err)
	}
	return buf.Bytes(), nil
}

// LowStockCSV serializa la lista de stock bajo.
func LowStockCSV(items []dto.LowStockItemDTO) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"item_id", "name", "unit", "quantity", "threshold", "severity"}); err != nil {
		return nil, fmt.Errorf("csv header: %w", err)
	}
	for _, it := range items {
		record := []string{
			it.ItemID, it.Name, it.Unit,
			fmt.Sprintf("%d", it.Quantity),
			fmt.Sprintf("%d", it.Threshold),
			it.Severity,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv flush: %w", err)
	}
	return buf.Bytes(), nil
}
