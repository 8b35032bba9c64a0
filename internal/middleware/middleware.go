package middleware

import (
	"net/http"

	"storefront/internal/cache"
	"storefront/internal/database"
	"storefront/internal/service"
	"storefront/internal/store"

	"github.com/labstack/echo/v4"
)

// ContextAdminKey holds the *model.Admin resolved by RequireAdmin.
const ContextAdminKey = "admin"

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "adminToken"

var (
	validateSession = service.ValidateSession
	getAdminByEmail = store.GetAdminByEmail
)

// RequireAdmin is the single authorization chokepoint. It turns the session
// cookie into a resolved admin, or rejects with one uniform 401. A missing
// cookie, an unknown or expired token, and a vanished admin row are not
// distinguishable from the outside. Handlers behind it never re-check
// authentication themselves.
func RequireAdmin(db database.DB, rdb cache.Cache) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			rec, err := validateSession(c.Request().Context(), rdb, cookie.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			admin, err := getAdminByEmail(c.Request().Context(), db, rec.Email)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			c.Set(ContextAdminKey, admin)
			return next(c)
		}
	}
}
