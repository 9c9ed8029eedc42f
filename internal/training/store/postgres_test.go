package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"museum/internal/training/models"
	"museum/pkg/platform/sentinel"
)

var registrationCols = []string{"id", "first_name", "last_name", "email", "phone_number", "date_of_birth",
	"gender", "country_of_origin", "state_of_origin", "local_government_area", "address",
	"highest_level_of_education", "field_of_study", "institution_name", "graduation_year",
	"employment_status", "years_of_experience", "job_title", "company_name", "preferred_training_track",
	"training_mode", "preferred_start_date", "training_duration_preference", "programming_languages",
	"frameworks_and_technologies", "created_at", "updated_at"}

func newStoreWithMock(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return NewPostgres(db), mock
}

func registrationRow(id int64, email string) []any {
	now := time.Date(2025, time.March, 4, 10, 0, 0, 0, time.UTC)
	return []any{id, "Chinwe", "Okafor", email, "+2348031234567",
		time.Date(2000, time.January, 10, 0, 0, 0, 0, time.UTC), "female", "Nigeria", "Anambra",
		"Awka South", "12 Zik Avenue", "BSc", nil, nil, int64(2022), "student", nil, nil, nil,
		"Backend Engineering", "online", nil, nil, "{Go,Python}", "{}", now, now}
}

func TestCreateReturnsStoredRow(t *testing.T) {
	store, mock := newStoreWithMock(t)
	year := 2022
	dob := models.NewDate(2000, time.January, 10)
	reg := &models.Registration{
		FirstName: "Chinwe", LastName: "Okafor", Email: "chinwe@example.com", PhoneNumber: "+2348031234567",
		DateOfBirth: &dob, GraduationYear: &year, EmploymentStatus: "student",
		PreferredTrainingTrack: "Backend Engineering", TrainingMode: "online",
		ProgrammingLanguages: []string{"Go", "Python"},
	}

	mock.ExpectQuery(`(?s)INSERT INTO trainingform .* RETURNING id, first_name`).
		WithArgs("Chinwe", "Okafor", "chinwe@example.com", "+2348031234567", sqlmock.AnyArg(),
			sqlmock.AnyArg(), "", "", "", "", "", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			"student", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), "Backend Engineering", "online",
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(registrationCols).AddRow(registrationRow(11, "chinwe@example.com")...))

	created, err := store.Create(context.Background(), reg)
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)
	require.NotNil(t, created.DateOfBirth)
	assert.Equal(t, "2000-01-10", created.DateOfBirth.Format("2006-01-02"))
	require.NotNil(t, created.Gender)
	assert.Equal(t, "female", *created.Gender)
	assert.Nil(t, created.JobTitle)
	assert.Nil(t, created.PreferredStartDate)
	assert.Equal(t, 2022, *created.GraduationYear)
	assert.Equal(t, []string{"Go", "Python"}, created.ProgrammingLanguages)
	assert.Equal(t, []string{}, created.FrameworksAndTechnologies)
}

func TestCreateDuplicateEmailIsConflict(t *testing.T) {
	store, mock := newStoreWithMock(t)
	mock.ExpectQuery(`INSERT INTO trainingform`).
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value"})

	_, err := store.Create(context.Background(), &models.Registration{Email: "a@example.com"})
	assert.ErrorIs(t, err, sentinel.ErrConflict)
}

func TestFindByEmailMissing(t *testing.T) {
	store, mock := newStoreWithMock(t)
	mock.ExpectQuery(`FROM trainingform WHERE email = \$1`).
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows(registrationCols))

	_, err := store.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestListNewestFirst(t *testing.T) {
	store, mock := newStoreWithMock(t)
	mock.ExpectQuery(`(?s)FROM trainingform ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows(registrationCols).
			AddRow(registrationRow(2, "b@example.com")...).
			AddRow(registrationRow(1, "a@example.com")...))

	regs, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, regs, 2)
	assert.Equal(t, "b@example.com", regs[0].Email)
}

func TestUpdateTouchesUpdatedAt(t *testing.T) {
	store, mock := newStoreWithMock(t)
	mock.ExpectQuery(`(?s)UPDATE trainingform.*updated_at = NOW\(\).*WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(registrationCols).AddRow(registrationRow(4, "c@example.com")...))

	updated, err := store.Update(context.Background(), 4, &models.Registration{Email: "c@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), updated.ID)
}

func TestDeleteMissingIsNotFound(t *testing.T) {
	store, mock := newStoreWithMock(t)
	mock.ExpectQuery(`DELETE FROM trainingform WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(registrationCols))

	_, err := store.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestStatsAndTrackCounts(t *testing.T) {
	store, mock := newStoreWithMock(t)
	mock.ExpectQuery(`(?s)COUNT\(\*\) FILTER \(WHERE training_mode = 'online'\)`).
		WillReturnRows(sqlmock.NewRows([]string{"total", "online", "offline", "hybrid", "employed", "unemployed", "student"}).
			AddRow(6, 3, 2, 1, 2, 1, 3))
	mock.ExpectQuery(`(?s)GROUP BY preferred_training_track`).
		WillReturnRows(sqlmock.NewRows([]string{"preferred_training_track", "count"}).
			AddRow("Data Science", 4).
			AddRow("Backend Engineering", 2))

	st, err := store.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(6), st.TotalRegistrations)
	assert.Equal(t, int64(3), st.StudentParticipants)

	tracks, err := store.TrackCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.TrackCount{{Track: "Data Science", Count: 4}, {Track: "Backend Engineering", Count: 2}}, tracks)
}

func TestStatsQueryError(t *testing.T) {
	store, mock := newStoreWithMock(t)
	mock.ExpectQuery(`FROM trainingform`).WillReturnError(errors.New("connection refused"))

	_, err := store.Stats(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, sentinel.ErrNotFound)
}
