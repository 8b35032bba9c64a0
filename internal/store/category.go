package store

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/database"
	"storefront/internal/model"

	"github.com/jackc/pgx/v5"
)

// ErrCategoryInUse marks a delete refused because products still reference
// the category's name.
var ErrCategoryInUse = errors.New("category is referenced by products")

func ListCategories(ctx context.Context, db database.DB) ([]model.Category, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name FROM categories ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListCategories: %w", err)
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("ListCategories: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListCategories: %w", err)
	}
	return categories, nil
}

func CreateCategory(ctx context.Context, db database.DB, c *model.Category) (*model.Category, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO categories (name)
		 VALUES ($1)
		 RETURNING id`,
		c.Name,
	)
	if err := row.Scan(&c.ID); err != nil {
		return nil, fmt.Errorf("CreateCategory: %w", err)
	}
	return c, nil
}

// UpdateCategory reports pgx.ErrNoRows when no category has the given id.
func UpdateCategory(ctx context.Context, db database.DB, c *model.Category) error {
	tag, err := db.Exec(ctx,
		`UPDATE categories SET name = $1 WHERE id = $2`,
		c.Name,
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateCategory: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("UpdateCategory: %w", pgx.ErrNoRows)
	}
	return nil
}

// DeleteCategory deletes only when no product references the category's
// name; check and delete are one statement, so there is no window between
// them. A zero-row result is disambiguated afterwards: ErrCategoryInUse if
// the row still exists, pgx.ErrNoRows if it never did.
func DeleteCategory(ctx context.Context, db database.DB, categoryID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM categories
		 WHERE id = $1
		   AND NOT EXISTS (
		     SELECT 1 FROM products WHERE products.category = categories.name
		   )`,
		categoryID,
	)
	if err != nil {
		return fmt.Errorf("DeleteCategory: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	row := db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`,
		categoryID,
	)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return fmt.Errorf("DeleteCategory: %w", err)
	}
	if exists {
		return fmt.Errorf("DeleteCategory: %w", ErrCategoryInUse)
	}
	return fmt.Errorf("DeleteCategory: %w", pgx.ErrNoRows)
}
