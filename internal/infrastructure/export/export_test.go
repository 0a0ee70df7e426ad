package export_test

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/infrastructure/export"
)

func sampleMovements() []dto.MovementDTO {
	supplier := "sup-1"
	cost := decimal.NewFromFloat(12.50)
	return []dto.MovementDTO{
		{
			ID:         "mov-1",
			ItemID:     "item-1",
			Direction:  "in",
			Quantity:   100,
			OccurredOn: "2026-08-01",
			RecordedAt: time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC),
			SupplierID: &supplier,
			Remarks:    "recepción semanal",
			UnitCost:   &cost,
			RecordedBy: "user-1",
		},
		{
			ID:         "mov-2",
			ItemID:     "item-1",
			Direction:  "out",
			Quantity:   40,
			OccurredOn: "2026-08-02",
			RecordedAt: time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC),
			Reason:     "venta",
			RecordedBy: "user-2",
		},
	}
}

func TestMovementsCSV_EncabezadoYFilas(t *testing.T) {
	out, err := export.MovementsCSV(sampleMovements())
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3, "encabezado + 2 movimientos")

	assert.Equal(t, "id", rows[0][0])
	assert.Equal(t, "mov-1", rows[1][0])
	assert.Equal(t, "100", rows[1][3])
	assert.Equal(t, "12.5", rows[1][9])
	// La salida no lleva proveedor ni costo.
	assert.Equal(t, "", rows[2][6])
	assert.Equal(t, "venta", rows[2][7])
	assert.Equal(t, "", rows[2][9])
}

func TestLowStockCSV(t *testing.T) {
	out, err := export.LowStockCSV([]dto.LowStockItemDTO{
		{ItemID: "item-1", Name: "Tuerca, M8", Unit: "unidad", Quantity: 0, Threshold: 10, Severity: "out_of_stock"},
	})
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// La coma del nombre queda correctamente citada.
	assert.Equal(t, "Tuerca, M8", rows[1][1])
	assert.Equal(t, "out_of_stock", rows[1][5])
}

func TestMovementsXML_Estructura(t *testing.T) {
	out, err := export.MovementsXML(sampleMovements())
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, `<stock_movements count="2">`)
	assert.Contains(t, s, `<movement id="mov-1">`)
	assert.Contains(t, s, "<supplier_id>sup-1</supplier_id>")
	assert.Contains(t, s, "<unit_cost>12.5</unit_cost>")
	assert.Contains(t, s, "<reason>venta</reason>")
	// Los campos vacíos se omiten del documento.
	assert.NotContains(t, s, "<remarks></remarks>")
}

func TestMovementsXML_Vacio(t *testing.T) {
	out, err := export.MovementsXML(nil)
	require.NoError(t, err)
	assert.Contains(t, string(out), `<stock_movements count="0"/>`)
}
