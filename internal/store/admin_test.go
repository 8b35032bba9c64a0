package store

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/database"
	"storefront/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func TestGetAdminByEmail(t *testing.T) {
	db := &database.FakeDB{}

	t.Run("success", func(t *testing.T) {
		db.QueryRowFn = func(_ context.Context, _ string, args ...any) pgx.Row {
			require.Equal(t, "a@b.com", args[0])
			return fakeRow{scan: func(dest ...any) error {
				*dest[0].(*int) = 1
				*dest[1].(*string) = "a@b.com"
				*dest[2].(*string) = "hash"
				return nil
			}}
		}
		a, err := GetAdminByEmail(context.Background(), db, "a@b.com")
		require.NoError(t, err)
		require.Equal(t, 1, a.ID)
		require.Equal(t, "a@b.com", a.Email)
		require.Equal(t, "hash", a.PasswordHash)
	})

	t.Run("not found", func(t *testing.T) {
		db.QueryRowFn = func(context.Context, string, ...any) pgx.Row {
			return fakeRow{scan: func(...any) error { return pgx.ErrNoRows }}
		}
		_, err := GetAdminByEmail(context.Background(), db, "x@y.com")
		require.Error(t, err)
		require.ErrorIs(t, err, pgx.ErrNoRows)
	})
}

func TestCreateAdmin(t *testing.T) {
	db := &database.FakeDB{}

	t.Run("success", func(t *testing.T) {
		db.QueryRowFn = func(_ context.Context, _ string, args ...any) pgx.Row {
			require.Equal(t, "a@b.com", args[0])
			require.Equal(t, "hash", args[1])
			return fakeRow{scan: func(dest ...any) error {
				*dest[0].(*int) = 7
				return nil
			}}
		}
		a, err := CreateAdmin(context.Background(), db, &model.Admin{Email: "a@b.com", PasswordHash: "hash"})
		require.NoError(t, err)
		require.Equal(t, 7, a.ID)
	})

	t.Run("scan error", func(t *testing.T) {
		db.QueryRowFn = func(context.Context, string, ...any) pgx.Row {
			return fakeRow{scan: func(...any) error { return errors.New("insert") }}
		}
		_, err := CreateAdmin(context.Background(), db, &model.Admin{})
		require.Error(t, err)
	})
}

func TestAdminExists(t *testing.T) {
	db := &database.FakeDB{}

	db.QueryRowFn = func(context.Context, string, ...any) pgx.Row {
		return fakeRow{scan: func(dest ...any) error {
			*dest[0].(*bool) = true
			return nil
		}}
	}
	exists, err := AdminExists(context.Background(), db)
	require.NoError(t, err)
	require.True(t, exists)

	db.QueryRowFn = func(context.Context, string, ...any) pgx.Row {
		return fakeRow{scan: func(...any) error { return errors.New("scan") }}
	}
	_, err = AdminExists(context.Background(), db)
	require.Error(t, err)
}
