package service

import (
	"context"
	"testing"
	"time"

	"github.com/aziyanck/ita-backoffice/internal/domain/enum"
	"github.com/aziyanck/ita-backoffice/internal/infrastructure/repository"
	"github.com/aziyanck/ita-backoffice/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (*AuthService, *UserService) {
	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(userRepo, jwtManager), NewUserService(userRepo)
}

func TestLogin(t *testing.T) {
	auth, users := newAuthService(t)
	ctx := context.Background()

	_, err := users.Register(ctx, &RegisterUserInput{
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: "secret123",
		Role:     enum.RoleAdmin,
	})
	require.NoError(t, err)

	out, err := auth.Login(ctx, &LoginInput{Email: "admin@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
	assert.Equal(t, enum.RoleAdmin, out.User.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	auth, users := newAuthService(t)
	ctx := context.Background()

	_, err := users.Register(ctx, &RegisterUserInput{
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: "secret123",
		Role:     enum.RoleAdmin,
	})
	require.NoError(t, err)

	_, err = auth.Login(ctx, &LoginInput{Email: "admin@example.com", Password: "wrong"})
	assert.Error(t, err)

	_, err = auth.Login(ctx, &LoginInput{Email: "nobody@example.com", Password: "secret123"})
	assert.Error(t, err)
}

func TestRefreshToken(t *testing.T) {
	auth, users := newAuthService(t)
	ctx := context.Background()

	_, err := users.Register(ctx, &RegisterUserInput{
		Name:     "Emp",
		Email:    "emp@example.com",
		Password: "secret123",
		Role:     enum.RoleEmployee,
	})
	require.NoError(t, err)

	out, err := auth.Login(ctx, &LoginInput{Email: "emp@example.com", Password: "secret123"})
	require.NoError(t, err)

	refreshed, err := auth.RefreshToken(ctx, out.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = auth.RefreshToken(ctx, "not-a-token")
	assert.Error(t, err)
}

func TestChangePassword(t *testing.T) {
	auth, users := newAuthService(t)
	ctx := context.Background()

	user, err := users.Register(ctx, &RegisterUserInput{
		Name:     "Emp",
		Email:    "emp@example.com",
		Password: "secret123",
		Role:     enum.RoleEmployee,
	})
	require.NoError(t, err)

	err = auth.ChangePassword(ctx, &ChangePasswordInput{
		UserID:          user.ID,
		CurrentPassword: "wrong",
		NewPassword:     "newpass456",
	})
	assert.Error(t, err)

	err = auth.ChangePassword(ctx, &ChangePasswordInput{
		UserID:          user.ID,
		CurrentPassword: "secret123",
		NewPassword:     "newpass456",
	})
	require.NoError(t, err)

	_, err = auth.Login(ctx, &LoginInput{Email: "emp@example.com", Password: "newpass456"})
	assert.NoError(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	_, users := newAuthService(t)
	ctx := context.Background()

	input := &RegisterUserInput{
		Name:     "Emp",
		Email:    "emp@example.com",
		Password: "secret123",
		Role:     enum.RoleEmployee,
	}
	_, err := users.Register(ctx, input)
	require.NoError(t, err)

	_, err = users.Register(ctx, input)
	assert.Error(t, err)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	_, users := newAuthService(t)

	_, err := users.Register(context.Background(), &RegisterUserInput{
		Name:     "Emp",
		Email:    "emp@example.com",
		Password: "secret123",
		Role:     enum.Role("owner"),
	})
	assert.Error(t, err)
}
