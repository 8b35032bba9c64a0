package store

import (
	"context"
	"fmt"

	"storefront/internal/database"
	"storefront/internal/model"
)

func GetAdminByEmail(ctx context.Context, db database.DB, email string) (*model.Admin, error) {
	row := db.QueryRow(ctx,
		`SELECT id, email, password_hash
		 FROM admins WHERE email = $1`,
		email,
	)
	a := &model.Admin{}
	if err := row.Scan(
		&a.ID,
		&a.Email,
		&a.PasswordHash,
	); err != nil {
		return nil, fmt.Errorf("GetAdminByEmail: %w", err)
	}
	return a, nil
}

func CreateAdmin(ctx context.Context, db database.DB, a *model.Admin) (*model.Admin, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO admins (email, password_hash)
		 VALUES ($1, $2)
		 RETURNING id`,
		a.Email,
		a.PasswordHash,
	)
	if err := row.Scan(&a.ID); err != nil {
		return nil, fmt.Errorf("CreateAdmin: %w", err)
	}
	return a, nil
}

func AdminExists(ctx context.Context, db database.DB) (bool, error) {
	row := db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM admins)`)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("AdminExists: %w", err)
	}
	return exists, nil
}
