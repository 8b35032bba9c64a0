package store

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/database"
	"storefront/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestListCategories(t *testing.T) {
	db := &database.FakeDB{}
	db.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) {
		return &fakeRows{scans: []scanFunc{
			func(dest ...any) error {
				*dest[0].(*int) = 1
				*dest[1].(*string) = "lighting"
				return nil
			},
		}}, nil
	}
	got, err := ListCategories(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "lighting", got[0].Name)
}

func TestCreateCategory(t *testing.T) {
	db := &database.FakeDB{}
	db.QueryRowFn = func(_ context.Context, _ string, args ...any) pgx.Row {
		require.Equal(t, "decor", args[0])
		return fakeRow{scan: func(dest ...any) error {
			*dest[0].(*int) = 2
			return nil
		}}
	}
	c, err := CreateCategory(context.Background(), db, &model.Category{Name: "decor"})
	require.NoError(t, err)
	require.Equal(t, 2, c.ID)
}

func TestUpdateCategory(t *testing.T) {
	db := &database.FakeDB{}

	db.ExecFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		return pgconn.NewCommandTag("UPDATE 1"), nil
	}
	require.NoError(t, UpdateCategory(context.Background(), db, &model.Category{ID: 1, Name: "n"}))

	db.ExecFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		return pgconn.NewCommandTag("UPDATE 0"), nil
	}
	err := UpdateCategory(context.Background(), db, &model.Category{ID: 9, Name: "n"})
	require.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestDeleteCategory(t *testing.T) {
	db := &database.FakeDB{}

	t.Run("deleted", func(t *testing.T) {
		db.ExecFn = func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
			require.Equal(t, 1, args[0])
			return pgconn.NewCommandTag("DELETE 1"), nil
		}
		require.NoError(t, DeleteCategory(context.Background(), db, 1))
	})

	t.Run("still referenced", func(t *testing.T) {
		db.ExecFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("DELETE 0"), nil
		}
		db.QueryRowFn = func(context.Context, string, ...any) pgx.Row {
			return fakeRow{scan: func(dest ...any) error {
				*dest[0].(*bool) = true
				return nil
			}}
		}
		err := DeleteCategory(context.Background(), db, 1)
		require.ErrorIs(t, err, ErrCategoryInUse)
	})

	t.Run("missing", func(t *testing.T) {
		db.ExecFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("DELETE 0"), nil
		}
		db.QueryRowFn = func(context.Context, string, ...any) pgx.Row {
			return fakeRow{scan: func(dest ...any) error {
				*dest[0].(*bool) = false
				return nil
			}}
		}
		err := DeleteCategory(context.Background(), db, 9)
		require.ErrorIs(t, err, pgx.ErrNoRows)
	})

	t.Run("exec error", func(t *testing.T) {
		db.ExecFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			return pgconn.CommandTag{}, errors.New("exec")
		}
		require.Error(t, DeleteCategory(context.Background(), db, 1))
	})
}
