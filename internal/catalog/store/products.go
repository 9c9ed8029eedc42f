package store

import (
	"context"

	"museum/internal/catalog/models"
	"museum/internal/platform/postgres"
)

const productColumns = `id, name, categories, price::float8, quantity, featuredimage,
	images1, images2, images3, images4, description, additionalinfo, instock, created_at`

func (s *PostgresStore) ListProducts(ctx context.Context) ([]*models.Product, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+productColumns+` FROM products ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, postgres.MapError("list products", err)
	}
	defer rows.Close()

	products := make([]*models.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, postgres.MapError("scan product", err)
		}
		products = append(products, p)
	}
	return products, postgres.MapError("list products", rows.Err())
}

func (s *PostgresStore) CreateProduct(ctx context.Context, p *models.Product) (*models.Product, error) {
	query := `
		INSERT INTO products (name, categories, price, quantity, featuredimage,
			images1, images2, images3, images4, description, additionalinfo, instock)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + productColumns
	row := s.db.QueryRowContext(ctx, query, productArgs(p)...)
	created, err := scanProduct(row)
	return created, postgres.MapError("create product", err)
}

func (s *PostgresStore) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		return nil, postgres.MapError("get product", err)
	}
	return p, nil
}

func (s *PostgresStore) UpdateProduct(ctx context.Context, id int64, p *models.Product) (*models.Product, error) {
	query := `
		UPDATE products
		SET name = $2, categories = $3, price = $4, quantity = $5, featuredimage = $6,
			images1 = $7, images2 = $8, images3 = $9, images4 = $10,
			description = $11, additionalinfo = $12, instock = $13
		WHERE id = $1
		RETURNING ` + productColumns
	row := s.db.QueryRowContext(ctx, query, append([]any{id}, productArgs(p)...)...)
	updated, err := scanProduct(row)
	if err != nil {
		return nil, postgres.MapError("update product", err)
	}
	return updated, nil
}

func (s *PostgresStore) DeleteProduct(ctx context.Context, id int64) (*models.Product, error) {
	row := s.db.QueryRowContext(ctx, `DELETE FROM products WHERE id = $1 RETURNING `+productColumns, id)
	deleted, err := scanProduct(row)
	if err != nil {
		return nil, postgres.MapError("delete product", err)
	}
	return deleted, nil
}

func productArgs(p *models.Product) []any {
	return []any{p.Name, p.Categories, p.Price, p.Quantity, p.FeaturedImage,
		p.Images1, p.Images2, p.Images3, p.Images4, p.Description, p.AdditionalInfo, p.InStock}
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.Name, &p.Categories, &p.Price, &p.Quantity, &p.FeaturedImage,
		&p.Images1, &p.Images2, &p.Images3, &p.Images4, &p.Description, &p.AdditionalInfo,
		&p.InStock, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
