package repository

import (
	"context"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// CategoryRepository acceso a categorías.
type CategoryRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id string) error
}
