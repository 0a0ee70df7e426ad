package dto

import "time"

// CreateItemRequest body para POST /api/items.
type CreateItemRequest struct {
	Name              string  `json:"name"`
	SKU               string  `json:"sku,omitempty"`
	CategoryID        *string `json:"category_id,omitempty"`
	Unit              string  `json:"unit"`
	LowStockThreshold int64   `json:"low_stock_threshold"`
}

// UpdateItemRequest body para PUT /api/items/:id. No incluye cantidad:
// el stock solo cambia registrando movimientos.
type UpdateItemRequest struct {
	Name              string  `json:"name"`
	SKU               string  `json:"sku,omitempty"`
	CategoryID        *string `json:"category_id,omitempty"`
	Unit              string  `json:"unit"`
	LowStockThreshold int64   `json:"low_stock_threshold"`
	Status            string  `json:"status,omitempty"`
}

// ItemResponse artículo con su nivel de stock derivado.
type ItemResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	SKU               string    `json:"sku,omitempty"`
	CategoryID        *string   `json:"category_id,omitempty"`
	Unit              string    `json:"unit"`
	Quantity          int64     `json:"quantity"`
	LowStockThreshold int64     `json:"low_stock_threshold"`
	StockLevel        string    `json:"stock_level"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ItemListResponse página de artículos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// CategoryRequest body para crear/actualizar categorías.
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CategoryResponse categoría serializada.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// SupplierRequest body para crear/actualizar proveedores.
type SupplierRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// SupplierResponse proveedor serializado.
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
