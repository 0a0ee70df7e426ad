package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/bodega-api/internal/domain/stock"
)

// Cantidad 0 siempre es OutOfStock, para cualquier umbral (incluido 0).
func TestClassify_CeroSiempreEsOutOfStock(t *testing.T) {
	for _, threshold := range []int64{0, 1, 5, 100} {
		assert.Equal(t, stock.OutOfStock, stock.Classify(0, threshold),
			"umbral %d", threshold)
	}
}

// Cantidad igual al umbral es LowStock; una unidad por encima es InStock.
func TestClassify_BordeDelUmbral(t *testing.T) {
	assert.Equal(t, stock.LowStock, stock.Classify(5, 5))
	assert.Equal(t, stock.InStock, stock.Classify(6, 5))
	assert.Equal(t, stock.LowStock, stock.Classify(1, 5))
}

// Umbral 0: solo la cantidad exacta 0 genera alerta; el resto es InStock.
func TestClassify_UmbralCeroSoloAlertaEnCero(t *testing.T) {
	assert.Equal(t, stock.InStock, stock.Classify(5, 0))
	assert.Equal(t, stock.InStock, stock.Classify(1, 0))
	assert.Equal(t, stock.OutOfStock, stock.Classify(0, 0))
}

func TestSeverity_OrdenaOutOfStockPrimero(t *testing.T) {
	assert.Less(t, stock.Severity(stock.OutOfStock), stock.Severity(stock.LowStock))
	assert.Less(t, stock.Severity(stock.LowStock), stock.Severity(stock.InStock))
}
