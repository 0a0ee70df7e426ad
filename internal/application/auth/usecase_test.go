package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-api/internal/application/auth"
	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/bodega-api/pkg/jwt"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.byEmail[u.Email] = u
	return nil
}

func newAuthUC() (*auth.AuthUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		ExpMinutes: 60,
		Issuer:     "bodega-api-test",
	})
	return uc, repo
}

func TestRegister_LuegoLogin(t *testing.T) {
	uc, _ := newAuthUC()
	ctx := context.Background()

	user, err := uc.RegisterUser(ctx, dto.RegisterRequest{
		Email:    "ana@example.com",
		Password: "secreto123",
		Name:     "Ana",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStaff, user.Role, "sin rol explícito se asigna staff")

	res, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "secreto123"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)

	// El token debe llevar el user id y el rol.
	userID, role, err := pkgjwt.Parse("test-secret-key-for-unit-tests", res.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, entity.RoleStaff, role)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := newAuthUC()
	ctx := context.Background()

	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "ana@example.com", Password: "x12345"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "ana@example.com", Password: "otro"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_RolDesconocidoEsInvalido(t *testing.T) {
	uc, _ := newAuthUC()

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email: "ana@example.com", Password: "x12345", Role: "superusuario",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _ := newAuthUC()
	ctx := context.Background()

	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "ana@example.com", Password: "secreto123"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "equivocado"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newAuthUC()
	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@example.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioInactivoEsForbidden(t *testing.T) {
	uc, repo := newAuthUC()
	ctx := context.Background()

	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "ana@example.com", Password: "secreto123"})
	require.NoError(t, err)
	repo.byEmail["ana@example.com"].Status = "disabled"

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
