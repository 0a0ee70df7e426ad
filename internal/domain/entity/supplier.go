package entity

import "time"

// Supplier es la contraparte de las entradas de stock.
type Supplier struct {
	ID        string
	Name      string
	Contact   string
	Phone     string
	Email     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
