package repository

import (
	"context"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// SupplierRepository acceso a proveedores.
type SupplierRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	List(ctx context.Context, search string) ([]*entity.Supplier, error)
	Create(ctx context.Context, supplier *entity.Supplier) error
	Update(ctx context.Context, supplier *entity.Supplier) error
	Delete(ctx context.Context, id string) error
}
