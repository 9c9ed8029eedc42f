// Package store persists training registrations in PostgreSQL.
package store

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"museum/internal/platform/postgres"
	"museum/internal/training/models"
)

const registrationColumns = `id, first_name, last_name, email, phone_number, date_of_birth, gender,
	country_of_origin, state_of_origin, local_government_area, address, highest_level_of_education,
	field_of_study, institution_name, graduation_year, employment_status, years_of_experience,
	job_title, company_name, preferred_training_track, training_mode, preferred_start_date,
	training_duration_preference, programming_languages, frameworks_and_technologies,
	created_at, updated_at`

type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Create inserts reg. A second registration for the same email returns
// sentinel.ErrConflict from the unique index, which also covers two
// concurrent submissions that both passed the pre-check.
func (s *PostgresStore) Create(ctx context.Context, reg *models.Registration) (*models.Registration, error) {
	query := `
		INSERT INTO trainingform (first_name, last_name, email, phone_number, date_of_birth, gender,
			country_of_origin, state_of_origin, local_government_area, address, highest_level_of_education,
			field_of_study, institution_name, graduation_year, employment_status, years_of_experience,
			job_title, company_name, preferred_training_track, training_mode, preferred_start_date,
			training_duration_preference, programming_languages, frameworks_and_technologies)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
			$19, $20, $21, $22, $23, $24)
		RETURNING ` + registrationColumns
	created, err := scanRegistration(s.db.QueryRowContext(ctx, query, registrationArgs(reg)...))
	if err != nil {
		return nil, postgres.MapError("create training registration", err)
	}
	return created, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]*models.Registration, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+registrationColumns+` FROM trainingform ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, postgres.MapError("list training registrations", err)
	}
	defer rows.Close()

	regs := make([]*models.Registration, 0)
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, postgres.MapError("scan training registration", err)
		}
		regs = append(regs, reg)
	}
	return regs, postgres.MapError("list training registrations", rows.Err())
}

func (s *PostgresStore) Get(ctx context.Context, id int64) (*models.Registration, error) {
	reg, err := scanRegistration(s.db.QueryRowContext(ctx,
		`SELECT `+registrationColumns+` FROM trainingform WHERE id = $1`, id))
	if err != nil {
		return nil, postgres.MapError("get training registration", err)
	}
	return reg, nil
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*models.Registration, error) {
	reg, err := scanRegistration(s.db.QueryRowContext(ctx,
		`SELECT `+registrationColumns+` FROM trainingform WHERE email = $1`, email))
	if err != nil {
		return nil, postgres.MapError("find training registration", err)
	}
	return reg, nil
}

func (s *PostgresStore) Update(ctx context.Context, id int64, reg *models.Registration) (*models.Registration, error) {
	query := `
		UPDATE trainingform
		SET first_name = $2, last_name = $3, email = $4, phone_number = $5, date_of_birth = $6,
			gender = $7, country_of_origin = $8, state_of_origin = $9, local_government_area = $10,
			address = $11, highest_level_of_education = $12, field_of_study = $13,
			institution_name = $14, graduation_year = $15, employment_status = $16,
			years_of_experience = $17, job_title = $18, company_name = $19,
			preferred_training_track = $20, training_mode = $21, preferred_start_date = $22,
			training_duration_preference = $23, programming_languages = $24,
			frameworks_and_technologies = $25, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + registrationColumns
	updated, err := scanRegistration(s.db.QueryRowContext(ctx, query, append([]any{id}, registrationArgs(reg)...)...))
	if err != nil {
		return nil, postgres.MapError("update training registration", err)
	}
	return updated, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id int64) (*models.Registration, error) {
	deleted, err := scanRegistration(s.db.QueryRowContext(ctx,
		`DELETE FROM trainingform WHERE id = $1 RETURNING `+registrationColumns, id))
	if err != nil {
		return nil, postgres.MapError("delete training registration", err)
	}
	return deleted, nil
}

func (s *PostgresStore) Stats(ctx context.Context) (*models.Stats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE training_mode = 'online'),
			COUNT(*) FILTER (WHERE training_mode = 'offline'),
			COUNT(*) FILTER (WHERE training_mode = 'hybrid'),
			COUNT(*) FILTER (WHERE employment_status = 'employed'),
			COUNT(*) FILTER (WHERE employment_status = 'unemployed'),
			COUNT(*) FILTER (WHERE employment_status = 'student')
		FROM trainingform
	`
	var st models.Stats
	err := s.db.QueryRowContext(ctx, query).Scan(&st.TotalRegistrations, &st.OnlineRegistrations,
		&st.OfflineRegistrations, &st.HybridRegistrations, &st.EmployedParticipants,
		&st.UnemployedParticipants, &st.StudentParticipants)
	if err != nil {
		return nil, postgres.MapError("training stats", err)
	}
	return &st, nil
}

func (s *PostgresStore) TrackCounts(ctx context.Context) ([]models.TrackCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT preferred_training_track, COUNT(*) AS count
		FROM trainingform
		GROUP BY preferred_training_track
		ORDER BY count DESC, preferred_training_track
	`)
	if err != nil {
		return nil, postgres.MapError("training track counts", err)
	}
	defer rows.Close()

	counts := make([]models.TrackCount, 0)
	for rows.Next() {
		var tc models.TrackCount
		if err := rows.Scan(&tc.Track, &tc.Count); err != nil {
			return nil, postgres.MapError("scan track count", err)
		}
		counts = append(counts, tc)
	}
	return counts, postgres.MapError("training track counts", rows.Err())
}

func registrationArgs(r *models.Registration) []any {
	return []any{r.FirstName, r.LastName, r.Email, r.PhoneNumber, nullDate(r.DateOfBirth), r.Gender,
		r.CountryOfOrigin, r.StateOfOrigin, r.LocalGovernmentArea, r.Address, r.HighestLevelOfEducation,
		r.FieldOfStudy, r.InstitutionName, r.GraduationYear, r.EmploymentStatus, r.YearsOfExperience,
		r.JobTitle, r.CompanyName, r.PreferredTrainingTrack, r.TrainingMode, nullDate(r.PreferredStartDate),
		r.TrainingDurationPreference, pq.Array(nonNil(r.ProgrammingLanguages)),
		pq.Array(nonNil(r.FrameworksAndTechnologies))}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRegistration(row rowScanner) (*models.Registration, error) {
	var (
		r                                               models.Registration
		dob, startDate                                  sql.NullTime
		gender, field, institution, years, job, company sql.NullString
		duration                                        sql.NullString
		gradYear                                        sql.NullInt64
		languages, frameworks                           pq.StringArray
	)
	err := row.Scan(&r.ID, &r.FirstName, &r.LastName, &r.Email, &r.PhoneNumber, &dob, &gender,
		&r.CountryOfOrigin, &r.StateOfOrigin, &r.LocalGovernmentArea, &r.Address, &r.HighestLevelOfEducation,
		&field, &institution, &gradYear, &r.EmploymentStatus, &years, &job, &company,
		&r.PreferredTrainingTrack, &r.TrainingMode, &startDate, &duration, &languages, &frameworks,
		&r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	r.DateOfBirth = dateOf(dob)
	r.PreferredStartDate = dateOf(startDate)
	r.Gender = stringOf(gender)
	r.FieldOfStudy = stringOf(field)
	r.InstitutionName = stringOf(institution)
	r.YearsOfExperience = stringOf(years)
	r.JobTitle = stringOf(job)
	r.CompanyName = stringOf(company)
	r.TrainingDurationPreference = stringOf(duration)
	if gradYear.Valid {
		y := int(gradYear.Int64)
		r.GraduationYear = &y
	}
	r.ProgrammingLanguages = nonNil(languages)
	r.FrameworksAndTechnologies = nonNil(frameworks)
	return &r, nil
}

func nullDate(d *models.Date) sql.NullTime {
	if d == nil || d.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: d.Time, Valid: true}
}

func dateOf(t sql.NullTime) *models.Date {
	if !t.Valid {
		return nil
	}
	d := models.NewDate(t.Time.Date())
	return &d
}

func stringOf(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
