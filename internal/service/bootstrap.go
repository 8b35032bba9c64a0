package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storefront/internal/database"
	"storefront/internal/model"
	"storefront/internal/store"
)

var (
	adminExists = store.AdminExists
	createAdmin = store.CreateAdmin
	hashFn      = HashPassword
)

// ErrBootstrapCredentials is returned when the directory is empty and no
// first-run credentials were configured.
var ErrBootstrapCredentials = errors.New("admin directory is empty: set ADMIN_EMAIL and ADMIN_PASSWORD for first run")

// EnsureAdmin creates the single admin account on first run. It is
// idempotent: when any admin row already exists it does nothing, so the
// configured credentials are only consulted on an empty directory.
func EnsureAdmin(ctx context.Context, db database.DB, email, password string) error {
	exists, err := adminExists(ctx, db)
	if err != nil {
		return fmt.Errorf("EnsureAdmin: %w", err)
	}
	if exists {
		return nil
	}
	if email == "" || password == "" {
		return ErrBootstrapCredentials
	}
	hash, err := hashFn(password)
	if err != nil {
		return fmt.Errorf("EnsureAdmin: %w", err)
	}
	if _, err := createAdmin(ctx, db, &model.Admin{
		Email:        strings.ToLower(email),
		PasswordHash: hash,
	}); err != nil {
		return fmt.Errorf("EnsureAdmin: %w", err)
	}
	return nil
}
