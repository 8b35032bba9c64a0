package store

import (
	"context"
	"testing"
	"time"

	"storefront/internal/database"
	"storefront/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func TestListContacts(t *testing.T) {
	db := &database.FakeDB{}
	now := time.Now().UTC()
	db.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) {
		return &fakeRows{scans: []scanFunc{
			func(dest ...any) error {
				*dest[0].(*int) = 1
				*dest[1].(*string) = "Jane"
				*dest[2].(*string) = "jane@example.com"
				*dest[3].(*string) = "hello"
				*dest[4].(*time.Time) = now
				return nil
			},
		}}, nil
	}
	got, err := ListContacts(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "jane@example.com", got[0].Email)
	require.Equal(t, now, got[0].CreatedAt)
}

func TestCreateContact(t *testing.T) {
	db := &database.FakeDB{}
	now := time.Now().UTC()
	db.QueryRowFn = func(_ context.Context, _ string, args ...any) pgx.Row {
		require.Equal(t, "Jane", args[0])
		require.Equal(t, "jane@example.com", args[1])
		require.Equal(t, "hello", args[2])
		return fakeRow{scan: func(dest ...any) error {
			*dest[0].(*int) = 8
			*dest[1].(*time.Time) = now
			return nil
		}}
	}
	c, err := CreateContact(context.Background(), db, &model.Contact{
		Name: "Jane", Email: "jane@example.com", Message: "hello",
	})
	require.NoError(t, err)
	require.Equal(t, 8, c.ID)
	require.Equal(t, now, c.CreatedAt)
}
