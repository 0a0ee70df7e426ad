package repository

import (
	"context"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// UserRepository acceso a usuarios (principales).
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
}
