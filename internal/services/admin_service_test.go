package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gymgate/internal/config"
	"gymgate/internal/models/request_models"
	"gymgate/internal/repositories"
	"gymgate/pkg/utils"
)

func newAdminService(t *testing.T) (AdminServiceInterface, *config.Session) {
	t.Helper()
	db := newTestDB(t)
	store, err := config.NewStore(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	session := config.NewSession(store)
	return NewAdminService(repositories.NewAdminRepository(db), session), session
}

func addAdminRequest() request_models.AddAdminRequest {
	return request_models.AddAdminRequest{
		FirstName: "Jane",
		LastName:  "Smith",
		Email:     "jane.smith@example.com",
		Password:  "Admin1234",
	}
}

func TestAdminService_AddAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("creates admin with hashed password", func(t *testing.T) {
		svc, _ := newAdminService(t)

		admin, err := svc.AddAdmin(ctx, addAdminRequest())
		require.NoError(t, err)
		assert.NotEqual(t, "Admin1234", admin.PasswordHash)
		assert.NoError(t, utils.ComparePasswords(admin.PasswordHash, "Admin1234"))
	})

	t.Run("weak password rejected", func(t *testing.T) {
		svc, _ := newAdminService(t)

		req := addAdminRequest()
		req.Password = "password"
		_, err := svc.AddAdmin(ctx, req)

		var validationErr *utils.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, MsgWeakPassword, validationErr.Message)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		svc, _ := newAdminService(t)

		_, err := svc.AddAdmin(ctx, addAdminRequest())
		require.NoError(t, err)

		_, err = svc.AddAdmin(ctx, addAdminRequest())
		assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
	})
}

func TestAdminService_LoginLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("successful login promotes the session", func(t *testing.T) {
		svc, session := newAdminService(t)
		_, err := svc.AddAdmin(ctx, addAdminRequest())
		require.NoError(t, err)

		assert.Equal(t, config.RoleStaff, session.Role())

		token, err := svc.Login(ctx, request_models.AdminLoginRequest{
			Email:    "jane.smith@example.com",
			Password: "Admin1234",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.True(t, session.IsAdmin())
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, session := newAdminService(t)
		_, err := svc.AddAdmin(ctx, addAdminRequest())
		require.NoError(t, err)

		_, err = svc.Login(ctx, request_models.AdminLoginRequest{
			Email:    "jane.smith@example.com",
			Password: "Wrong123",
		})
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
		assert.Equal(t, config.RoleStaff, session.Role())
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, _ := newAdminService(t)

		_, err := svc.Login(ctx, request_models.AdminLoginRequest{
			Email:    "nobody@example.com",
			Password: "Admin1234",
		})
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})

	t.Run("logout resets the session to staff", func(t *testing.T) {
		svc, session := newAdminService(t)
		_, err := svc.AddAdmin(ctx, addAdminRequest())
		require.NoError(t, err)

		_, err = svc.Login(ctx, request_models.AdminLoginRequest{
			Email:    "jane.smith@example.com",
			Password: "Admin1234",
		})
		require.NoError(t, err)
		require.True(t, session.IsAdmin())

		require.NoError(t, svc.Logout(ctx))
		assert.Equal(t, config.RoleStaff, session.Role())
	})
}
