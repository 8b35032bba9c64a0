package service

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/database"
	"storefront/internal/model"
	"storefront/internal/store"

	"github.com/stretchr/testify/require"
)

func restoreBootstrap() {
	adminExists = store.AdminExists
	createAdmin = store.CreateAdmin
	hashFn = HashPassword
}

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("exists check fails", func(t *testing.T) {
		t.Cleanup(restoreBootstrap)
		adminExists = func(context.Context, database.DB) (bool, error) {
			return false, errors.New("db")
		}
		require.Error(t, EnsureAdmin(ctx, nil, "a@b.com", "pw"))
	})

	t.Run("already bootstrapped is a no-op", func(t *testing.T) {
		t.Cleanup(restoreBootstrap)
		adminExists = func(context.Context, database.DB) (bool, error) { return true, nil }
		createAdmin = func(context.Context, database.DB, *model.Admin) (*model.Admin, error) {
			t.Fatal("createAdmin must not be called")
			return nil, nil
		}
		require.NoError(t, EnsureAdmin(ctx, nil, "", ""))
	})

	t.Run("empty directory requires credentials", func(t *testing.T) {
		t.Cleanup(restoreBootstrap)
		adminExists = func(context.Context, database.DB) (bool, error) { return false, nil }
		err := EnsureAdmin(ctx, nil, "", "")
		require.ErrorIs(t, err, ErrBootstrapCredentials)
		err = EnsureAdmin(ctx, nil, "a@b.com", "")
		require.ErrorIs(t, err, ErrBootstrapCredentials)
	})

	t.Run("hash error", func(t *testing.T) {
		t.Cleanup(restoreBootstrap)
		adminExists = func(context.Context, database.DB) (bool, error) { return false, nil }
		hashFn = func(string) (string, error) { return "", errors.New("hash") }
		require.Error(t, EnsureAdmin(ctx, nil, "a@b.com", "pw"))
	})

	t.Run("creates exactly one admin", func(t *testing.T) {
		t.Cleanup(restoreBootstrap)
		adminExists = func(context.Context, database.DB) (bool, error) { return false, nil }
		hashFn = func(p string) (string, error) {
			require.Equal(t, "pw", p)
			return "hashed", nil
		}
		calls := 0
		createAdmin = func(_ context.Context, _ database.DB, a *model.Admin) (*model.Admin, error) {
			calls++
			require.Equal(t, "admin@example.com", a.Email)
			require.Equal(t, "hashed", a.PasswordHash)
			return a, nil
		}
		require.NoError(t, EnsureAdmin(ctx, nil, "Admin@Example.com", "pw"))
		require.Equal(t, 1, calls)
	})

	t.Run("create error", func(t *testing.T) {
		t.Cleanup(restoreBootstrap)
		adminExists = func(context.Context, database.DB) (bool, error) { return false, nil }
		hashFn = func(string) (string, error) { return "h", nil }
		createAdmin = func(context.Context, database.DB, *model.Admin) (*model.Admin, error) {
			return nil, errors.New("insert")
		}
		require.Error(t, EnsureAdmin(ctx, nil, "a@b.com", "pw"))
	})
}
