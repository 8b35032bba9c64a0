package handler

import (
	"net/http"

	"storefront/internal/api"
	"storefront/internal/cache"
	"storefront/internal/database"

	"github.com/labstack/echo/v4"
)

// @Summary     Health check
// @Description Returns pong after verifying the database and cache connections.
// @Tags        health
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /ping [get]
func PingHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "database unhealthy"})
		}
		if err := rdb.Set(c.Request().Context(), "ping", "pong", 0).Err(); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "cache unhealthy"})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "pong"})
	}
}
