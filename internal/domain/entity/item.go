package entity

import "time"

// Estados válidos para Item.
const (
	ItemStatusActive   = "active"
	ItemStatusArchived = "archived"
)

// Item representa un artículo del inventario.
// Quantity es la cantidad en bodega y es la única fuente de verdad del stock:
// solo el Quantity Ledger la muta (aplicando movimientos); el directorio de
// artículos crea/edita metadatos pero nunca toca Quantity.
type Item struct {
	ID                string
	Name              string
	SKU               string // código único, opcional
	CategoryID        *string
	Unit              string // etiqueta de unidad: pcs, kg, caja...
	Quantity          int64  // entero no negativo
	LowStockThreshold int64  // entero no negativo; 0 = solo alerta en quantity 0
	Status            string // active, archived
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
