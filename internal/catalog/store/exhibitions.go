package store

import (
	"context"
	"database/sql"

	"museum/internal/catalog/models"
	"museum/internal/platform/postgres"
)

const exhibitionColumns = `id, featuredimage, title, description, start_time, end_time, exhibition_date,
	phonenumber, photo1, photo2, photo3, photo4, location, created_at`

func (s *PostgresStore) ListExhibitions(ctx context.Context) ([]*models.Exhibition, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+exhibitionColumns+` FROM exhibition ORDER BY id`)
	if err != nil {
		return nil, postgres.MapError("list exhibitions", err)
	}
	defer rows.Close()

	exhibitions := make([]*models.Exhibition, 0)
	for rows.Next() {
		e, err := scanExhibition(rows)
		if err != nil {
			return nil, postgres.MapError("scan exhibition", err)
		}
		exhibitions = append(exhibitions, e)
	}
	return exhibitions, postgres.MapError("list exhibitions", rows.Err())
}

func (s *PostgresStore) CreateExhibition(ctx context.Context, e *models.Exhibition) (*models.Exhibition, error) {
	query := `
		INSERT INTO exhibition (featuredimage, title, description, start_time, end_time, exhibition_date,
			phonenumber, photo1, photo2, photo3, photo4, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + exhibitionColumns
	created, err := scanExhibition(s.db.QueryRowContext(ctx, query, exhibitionArgs(e)...))
	return created, postgres.MapError("create exhibition", err)
}

func (s *PostgresStore) GetExhibition(ctx context.Context, id int64) (*models.Exhibition, error) {
	e, err := scanExhibition(s.db.QueryRowContext(ctx, `SELECT `+exhibitionColumns+` FROM exhibition WHERE id = $1`, id))
	if err != nil {
		return nil, postgres.MapError("get exhibition", err)
	}
	return e, nil
}

func (s *PostgresStore) UpdateExhibition(ctx context.Context, id int64, e *models.Exhibition) (*models.Exhibition, error) {
	query := `
		UPDATE exhibition
		SET featuredimage = $2, title = $3, description = $4, start_time = $5, end_time = $6,
			exhibition_date = $7, phonenumber = $8, photo1 = $9, photo2 = $10, photo3 = $11,
			photo4 = $12, location = $13
		WHERE id = $1
		RETURNING ` + exhibitionColumns
	updated, err := scanExhibition(s.db.QueryRowContext(ctx, query, append([]any{id}, exhibitionArgs(e)...)...))
	if err != nil {
		return nil, postgres.MapError("update exhibition", err)
	}
	return updated, nil
}

func (s *PostgresStore) DeleteExhibition(ctx context.Context, id int64) (*models.Exhibition, error) {
	deleted, err := scanExhibition(s.db.QueryRowContext(ctx, `DELETE FROM exhibition WHERE id = $1 RETURNING `+exhibitionColumns, id))
	if err != nil {
		return nil, postgres.MapError("delete exhibition", err)
	}
	return deleted, nil
}

func exhibitionArgs(e *models.Exhibition) []any {
	return []any{e.FeaturedImage, e.Title, e.Description, e.StartTime, e.EndTime, e.ExhibitionDate,
		e.PhoneNumber, e.Photo1, e.Photo2, e.Photo3, e.Photo4, e.Location}
}

func scanExhibition(row rowScanner) (*models.Exhibition, error) {
	var (
		e                              models.Exhibition
		photo1, photo2, photo3, photo4 sql.NullString
	)
	if err := row.Scan(&e.ID, &e.FeaturedImage, &e.Title, &e.Description, &e.StartTime, &e.EndTime,
		&e.ExhibitionDate, &e.PhoneNumber, &photo1, &photo2, &photo3, &photo4, &e.Location, &e.CreatedAt); err != nil {
		return nil, err
	}
	e.Photo1 = nullString(photo1)
	e.Photo2 = nullString(photo2)
	e.Photo3 = nullString(photo3)
	e.Photo4 = nullString(photo4)
	return &e, nil
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
