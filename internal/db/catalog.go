package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/catalog"
	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/logging"
	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/models"
)

// SeedCatalog inserts the given catalog when the tables are empty
func (db *Database) SeedCatalog(ctx context.Context, cat *catalog.Catalog) error {
	var count int
	if err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM request_categories`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	categories, products := cat.All()

	batch := &pgx.Batch{}
	for i, c := range categories {
		batch.Queue(`
			INSERT INTO request_categories (category_id, name, department, sort_order)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (category_id) DO NOTHING
		`, c.ID, c.Name, string(c.Department), i)
	}
	for i, p := range products {
		batch.Queue(`
			INSERT INTO request_products
				(product_id, category_id, name, description, tat, languages, current_inventory, rate, sort_order)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8::numeric, $9)
			ON CONFLICT (product_id) DO NOTHING
		`, p.ID, p.CategoryID, p.Name, p.Description, p.TAT, p.Languages, p.CurrentInventory, p.Rate.StringFixed(2), i)
	}

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit catalog seed: %w", err)
	}

	logging.LogKV("info", "catalog seeded", map[string]interface{}{
		"categories": len(categories),
		"products":   len(products),
	})
	return nil
}

// LoadCatalog reads the catalog tables into an immutable snapshot
func (db *Database) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT category_id, name, department
		FROM request_categories
		ORDER BY sort_order, category_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	var categories []models.Category
	for rows.Next() {
		var c models.Category
		var dept string
		if err := rows.Scan(&c.ID, &c.Name, &dept); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		c.Department = models.Department(dept)
		categories = append(categories, c)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}

	rows, err = db.Pool.Query(ctx, `
		SELECT product_id, category_id, name, description, tat, languages, current_inventory, rate::text
		FROM request_products
		ORDER BY sort_order, product_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		var rate string
		if err := rows.Scan(&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.TAT, &p.Languages, &p.CurrentInventory, &rate); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		if p.Rate, err = decimal.NewFromString(rate); err != nil {
			return nil, fmt.Errorf("product %s: invalid rate %q: %w", p.ID, rate, err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}

	return catalog.New(categories, products)
}
