package store

import (
	"context"
	"fmt"

	"storefront/internal/database"
	"storefront/internal/model"
)

func ListContacts(ctx context.Context, db database.DB) ([]model.Contact, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name, email, message, created_at
		 FROM contacts ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListContacts: %w", err)
	}
	defer rows.Close()

	contacts := []model.Contact{}
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Email,
			&c.Message,
			&c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListContacts: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListContacts: %w", err)
	}
	return contacts, nil
}

func CreateContact(ctx context.Context, db database.DB, c *model.Contact) (*model.Contact, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO contacts (name, email, message)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		c.Name,
		c.Email,
		c.Message,
	)
	if err := row.Scan(&c.ID, &c.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateContact: %w", err)
	}
	return c, nil
}
