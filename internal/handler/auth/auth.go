package auth

import (
	"net/http"
	"os"
	"strings"

	"storefront/internal/api"
	"storefront/internal/cache"
	"storefront/internal/database"
	"storefront/internal/middleware"
	"storefront/internal/service"
	"storefront/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	getAdminByEmail = store.GetAdminByEmail
	comparePassword = service.ComparePassword
	issueSession    = service.IssueSession
	validateSession = service.ValidateSession
	revokeSession   = service.RevokeSession
)

// secureCookie reports whether cookies should carry the Secure attribute;
// on by default outside local development.
func secureCookie() bool {
	return os.Getenv("APP_ENV") == "production"
}

func sessionCookie(token string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   secureCookie(),
	}
}

// LoginHandler verifies the admin credentials and issues a session cookie.
// The response never says whether the email or the password was wrong.
// @Summary     Admin login
// @Description Verify email and password, set the adminToken session cookie
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.LoginRequest true "credentials"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/login [post]
func LoginHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		admin, err := getAdminByEmail(c.Request().Context(), db, strings.ToLower(req.Email))
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid email or password"})
		}
		if err := comparePassword(admin.PasswordHash, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid email or password"})
		}

		token, err := issueSession(c.Request().Context(), rdb, *admin, service.SessionTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to create session"})
		}

		c.SetCookie(sessionCookie(token, int(service.SessionTTL.Seconds())))
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "logged in"})
	}
}

// LogoutHandler revokes the session server-side and clears the cookie.
// Always succeeds, with or without a valid session.
// @Summary     Admin logout
// @Description Revoke the current session and clear the adminToken cookie
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Router      /admin/logout [post]
func LogoutHandler(rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
			if err := revokeSession(c.Request().Context(), rdb, cookie.Value); err != nil {
				c.Logger().Errorf("logout: %v", err)
			}
		}
		c.SetCookie(sessionCookie("", -1))
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "logged out"})
	}
}

// CheckAuthHandler reports whether the request carries a live session.
// Public on purpose: the client uses it to decide which UI to render.
// @Summary     Check admin session
// @Description Returns true when the adminToken cookie maps to a live session
// @Tags        auth
// @Produce     json
// @Success     200 {boolean} boolean
// @Router      /admin/check-auth [get]
func CheckAuthHandler(rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(middleware.SessionCookieName)
		if err != nil || cookie.Value == "" {
			return c.JSON(http.StatusOK, false)
		}
		_, err = validateSession(c.Request().Context(), rdb, cookie.Value)
		return c.JSON(http.StatusOK, err == nil)
	}
}
