package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/cache"
	"storefront/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newPingCtx(e *echo.Echo) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestPingHandler(t *testing.T) {
	e := echo.New()

	okSet := func(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
		cmd := redis.NewStatusCmd(ctx)
		cmd.SetVal("OK")
		return cmd
	}

	t.Run("database unhealthy", func(t *testing.T) {
		db := &database.FakeDB{PingFn: func(ctx context.Context) error { return errors.New("down") }}
		ctx, rec := newPingCtx(e)
		require.NoError(t, PingHandler(db, &cache.FakeCache{})(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "database unhealthy")
	})

	t.Run("cache unhealthy", func(t *testing.T) {
		db := &database.FakeDB{PingFn: func(ctx context.Context) error { return nil }}
		rdb := &cache.FakeCache{SetFn: func(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
			cmd := redis.NewStatusCmd(ctx)
			cmd.SetErr(errors.New("down"))
			return cmd
		}}
		ctx, rec := newPingCtx(e)
		require.NoError(t, PingHandler(db, rdb)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "cache unhealthy")
	})

	t.Run("success", func(t *testing.T) {
		db := &database.FakeDB{PingFn: func(ctx context.Context) error { return nil }}
		rdb := &cache.FakeCache{SetFn: okSet}
		ctx, rec := newPingCtx(e)
		require.NoError(t, PingHandler(db, rdb)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "pong")
	})
}
