package store

import (
	"context"

	"museum/internal/catalog/models"
	"museum/internal/platform/postgres"
)

const artworkColumns = `id, name, price::float8, featuredimage, description, artist, yearcollected, created_at`

func (s *PostgresStore) ListArtworks(ctx context.Context) ([]*models.Artwork, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+artworkColumns+` FROM gallery ORDER BY id`)
	if err != nil {
		return nil, postgres.MapError("list artworks", err)
	}
	defer rows.Close()

	artworks := make([]*models.Artwork, 0)
	for rows.Next() {
		a, err := scanArtwork(rows)
		if err != nil {
			return nil, postgres.MapError("scan artwork", err)
		}
		artworks = append(artworks, a)
	}
	return artworks, postgres.MapError("list artworks", rows.Err())
}

func (s *PostgresStore) CreateArtwork(ctx context.Context, a *models.Artwork) (*models.Artwork, error) {
	query := `
		INSERT INTO gallery (name, price, featuredimage, description, artist, yearcollected)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + artworkColumns
	created, err := scanArtwork(s.db.QueryRowContext(ctx, query,
		a.Name, a.Price, a.FeaturedImage, a.Description, a.Artist, a.YearCollected))
	return created, postgres.MapError("create artwork", err)
}

func (s *PostgresStore) GetArtwork(ctx context.Context, id int64) (*models.Artwork, error) {
	a, err := scanArtwork(s.db.QueryRowContext(ctx, `SELECT `+artworkColumns+` FROM gallery WHERE id = $1`, id))
	if err != nil {
		return nil, postgres.MapError("get artwork", err)
	}
	return a, nil
}

func (s *PostgresStore) UpdateArtwork(ctx context.Context, id int64, a *models.Artwork) (*models.Artwork, error) {
	query := `
		UPDATE gallery
		SET name = $2, price = $3, featuredimage = $4, description = $5, artist = $6, yearcollected = $7
		WHERE id = $1
		RETURNING ` + artworkColumns
	updated, err := scanArtwork(s.db.QueryRowContext(ctx, query,
		id, a.Name, a.Price, a.FeaturedImage, a.Description, a.Artist, a.YearCollected))
	if err != nil {
		return nil, postgres.MapError("update artwork", err)
	}
	return updated, nil
}

func (s *PostgresStore) DeleteArtwork(ctx context.Context, id int64) (*models.Artwork, error) {
	deleted, err := scanArtwork(s.db.QueryRowContext(ctx, `DELETE FROM gallery WHERE id = $1 RETURNING `+artworkColumns, id))
	if err != nil {
		return nil, postgres.MapError("delete artwork", err)
	}
	return deleted, nil
}

func scanArtwork(row rowScanner) (*models.Artwork, error) {
	var a models.Artwork
	if err := row.Scan(&a.ID, &a.Name, &a.Price, &a.FeaturedImage, &a.Description, &a.Artist,
		&a.YearCollected, &a.CreatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}
