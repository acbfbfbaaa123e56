package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gudang-api/internal/application/dto"
	"github.com/jhoicas/gudang-api/internal/domain"
	"github.com/jhoicas/gudang-api/internal/domain/entity"
	"github.com/jhoicas/gudang-api/internal/infrastructure/memory"
	"github.com/jhoicas/gudang-api/pkg/jwt"
)

const secret = "test-secret"

func newAuth() *AuthUseCase {
	return NewAuthUseCase(memory.NewUserRepository(memory.NewStore()), JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "test"})
}

func TestRegisterYLogin(t *testing.T) {
	uc := newAuth()
	ctx := context.Background()

	u, err := uc.RegisterUser(ctx, dto.RegisterRequest{Name: "Ana", Email: "Ana@Gudang.test ", Password: "secreto123", Role: entity.RoleWarehouseStaff})
	require.NoError(t, err)
	assert.Equal(t, "ana@gudang.test", u.Email)
	assert.Equal(t, entity.RoleWarehouseStaff, u.Role)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "ana@gudang.test", Password: "otro12345"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	resp, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@gudang.test", Password: "secreto123"})
	require.NoError(t, err)
	userID, role, err := jwt.Parse(secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, userID)
	assert.Equal(t, entity.RoleWarehouseStaff, role)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@gudang.test", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@gudang.test", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRegister_RolPorDefectoEInvalido(t *testing.T) {
	uc := newAuth()
	ctx := context.Background()

	u, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "b@gudang.test", Password: "secreto123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, u.Role)
	assert.Equal(t, "b@gudang.test", u.Name)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "c@gudang.test", Password: "secreto123", Role: "superuser"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
