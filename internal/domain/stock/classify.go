// Package stock contiene servicios de dominio puros sobre niveles de stock
// (sin estado, sin I/O).
package stock

// Level es el nivel de stock derivado de (cantidad, umbral).
type Level string

const (
	OutOfStock Level = "out_of_stock"
	LowStock   Level = "low_stock"
	InStock    Level = "in_stock"
)

// Classify deriva el nivel de stock de un artículo.
// La cantidad 0 siempre es OutOfStock, sin importar el umbral (incluido 0).
// Con umbral 0 solo la cantidad exacta 0 genera alerta: todo lo demás es
// InStock; las alertas y reportes dependen de esa semántica exacta.
func Classify(quantity, threshold int64) Level {
	switch {
	case quantity == 0:
		return OutOfStock
	case quantity <= threshold:
		return LowStock
	default:
		return InStock
	}
}

// Severity ordena niveles para reportes: menor = más severo.
// OutOfStock < LowStock < InStock.
func Severity(l Level) int {
	switch l {
	case OutOfStock:
		return 0
	case LowStock:
		return 1
	default:
		return 2
	}
}
