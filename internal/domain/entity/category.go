package entity

import "time"

// Category agrupa artículos para navegación y reportes.
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
