package store

import (
	"context"
	"fmt"

	"storefront/internal/database"
	"storefront/internal/model"

	"github.com/jackc/pgx/v5"
)

func ListProducts(ctx context.Context, db database.DB) ([]model.Product, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name, description, category, image_url, price
		 FROM products ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListProducts: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Description,
			&p.Category,
			&p.ImageURL,
			&p.Price,
		); err != nil {
			return nil, fmt.Errorf("ListProducts: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListProducts: %w", err)
	}
	return products, nil
}

func GetProductByID(ctx context.Context, db database.DB, productID int) (*model.Product, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name, description, category, image_url, price
		 FROM products WHERE id = $1`,
		productID,
	)
	p := &model.Product{}
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Category,
		&p.ImageURL,
		&p.Price,
	); err != nil {
		return nil, fmt.Errorf("GetProductByID: %w", err)
	}
	return p, nil
}

func ListProductsByCategory(ctx context.Context, db database.DB, category string) ([]model.Product, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name, description, category, image_url, price
		 FROM products WHERE category = $1 ORDER BY id`,
		category,
	)
	if err != nil {
		return nil, fmt.Errorf("ListProductsByCategory: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Description,
			&p.Category,
			&p.ImageURL,
			&p.Price,
		); err != nil {
			return nil, fmt.Errorf("ListProductsByCategory: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListProductsByCategory: %w", err)
	}
	return products, nil
}

func CreateProduct(ctx context.Context, db database.DB, p *model.Product) (*model.Product, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO products (name, description, category, image_url, price)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		p.Name,
		p.Description,
		p.Category,
		p.ImageURL,
		p.Price,
	)
	if err := row.Scan(&p.ID); err != nil {
		return nil, fmt.Errorf("CreateProduct: %w", err)
	}
	return p, nil
}

// UpdateProduct reports pgx.ErrNoRows when no product has the given id.
func UpdateProduct(ctx context.Context, db database.DB, p *model.Product) error {
	tag, err := db.Exec(ctx,
		`UPDATE products
		 SET name = $1, description = $2, category = $3, image_url = $4, price = $5
		 WHERE id = $6`,
		p.Name,
		p.Description,
		p.Category,
		p.ImageURL,
		p.Price,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateProduct: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("UpdateProduct: %w", pgx.ErrNoRows)
	}
	return nil
}

// DeleteProduct reports pgx.ErrNoRows when no product has the given id.
func DeleteProduct(ctx context.Context, db database.DB, productID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM products WHERE id = $1`,
		productID,
	)
	if err != nil {
		return fmt.Errorf("DeleteProduct: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteProduct: %w", pgx.ErrNoRows)
	}
	return nil
}
