package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"museum/internal/catalog/models"
	"museum/pkg/platform/sentinel"
)

var (
	productCols = []string{"id", "name", "categories", "price", "quantity", "featuredimage",
		"images1", "images2", "images3", "images4", "description", "additionalinfo", "instock", "created_at"}
	artworkCols    = []string{"id", "name", "price", "featuredimage", "description", "artist", "yearcollected", "created_at"}
	exhibitionCols = []string{"id", "featuredimage", "title", "description", "start_time", "end_time",
		"exhibition_date", "phonenumber", "photo1", "photo2", "photo3", "photo4", "location", "created_at"}
)

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

func TestListProductsNewestFirst(t *testing.T) {
	store, mock := newStoreWithMock(t)
	now := time.Now()

	mock.ExpectQuery(`(?s)SELECT\s+id,\s*name.*FROM\s+products\s+ORDER\s+BY\s+created_at\s+DESC`).
		WillReturnRows(sqlmock.NewRows(productCols).
			AddRow(2, "Mask", "art", 1200.0, "1", "f.jpg", "1.jpg", "2.jpg", "3.jpg", "4.jpg", "d", "i", "yes", now).
			AddRow(1, "Bowl", "craft", 300.0, "5", "f.jpg", "1.jpg", "2.jpg", "3.jpg", "4.jpg", "d", "i", "yes", now))

	products, err := store.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Mask", products[0].Name)
	assert.Equal(t, 1200.0, products[0].Price)
}

func TestListProductsEmptyIsNotNil(t *testing.T) {
	store, mock := newStoreWithMock(t)
	mock.ExpectQuery(`FROM\s+products`).WillReturnRows(sqlmock.NewRows(productCols))

	products, err := store.ListProducts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestCreateProduct(t *testing.T) {
	store, mock := newStoreWithMock(t)
	now := time.Now()
	p := &models.Product{Name: "Mask", Categories: "art", Price: 1200, Quantity: "1", FeaturedImage: "f.jpg",
		Images1: "1.jpg", Images2: "2.jpg", Images3: "3.jpg", Images4: "4.jpg",
		Description: "d", AdditionalInfo: "i", InStock: "yes"}

	mock.ExpectQuery(`(?s)INSERT\s+INTO\s+products.*RETURNING\s+id`).
		WithArgs("Mask", "art", 1200.0, "1", "f.jpg", "1.jpg", "2.jpg", "3.jpg", "4.jpg", "d", "i", "yes").
		WillReturnRows(sqlmock.NewRows(productCols).
			AddRow(9, "Mask", "art", 1200.0, "1", "f.jpg", "1.jpg", "2.jpg", "3.jpg", "4.jpg", "d", "i", "yes", now))

	created, err := store.CreateProduct(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, int64(9), created.ID)
	assert.Equal(t, now, created.CreatedAt)
}

func TestUpdateProductMissing(t *testing.T) {
	store, mock := newStoreWithMock(t)
	mock.ExpectQuery(`(?s)UPDATE\s+products.*WHERE\s+id\s*=\s*\$1`).
		WillReturnError(sql.ErrNoRows)

	_, err := store.UpdateProduct(context.Background(), 404, &models.Product{})
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestDeleteProductReturnsRow(t *testing.T) {
	store, mock := newStoreWithMock(t)
	mock.ExpectQuery(`(?s)DELETE\s+FROM\s+products\s+WHERE\s+id\s*=\s*\$1\s+RETURNING`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(productCols).
			AddRow(3, "Mask", "art", 1200.0, "1", "f", "1", "2", "3", "4", "d", "i", "yes", time.Now()))

	deleted, err := store.DeleteProduct(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted.ID)
}

func TestGetArtwork(t *testing.T) {
	store, mock := newStoreWithMock(t)
	mock.ExpectQuery(`(?s)FROM\s+gallery\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(artworkCols).
			AddRow(2, "Udu", 800.0, "f.jpg", "clay pot", "Ladi Kwali", "1972", time.Now()))

	a, err := store.GetArtwork(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Ladi Kwali", a.Artist)
}

func TestGetArtworkMissing(t *testing.T) {
	store, mock := newStoreWithMock(t)
	mock.ExpectQuery(`FROM\s+gallery`).WillReturnError(sql.ErrNoRows)

	_, err := store.GetArtwork(context.Background(), 2)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestUpdateArtwork(t *testing.T) {
	store, mock := newStoreWithMock(t)
	a := &models.Artwork{Name: "Udu", Price: 900, FeaturedImage: "f.jpg", Description: "d", Artist: "Ladi Kwali", YearCollected: "1972"}
	mock.ExpectQuery(`(?s)UPDATE\s+gallery\s+SET.*WHERE\s+id\s*=\s*\$1`).
		WithArgs(int64(2), "Udu", 900.0, "f.jpg", "d", "Ladi Kwali", "1972").
		WillReturnRows(sqlmock.NewRows(artworkCols).AddRow(2, "Udu", 900.0, "f.jpg", "d", "Ladi Kwali", "1972", time.Now()))

	updated, err := store.UpdateArtwork(context.Background(), 2, a)
	require.NoError(t, err)
	assert.Equal(t, 900.0, updated.Price)
}

func TestCreateExhibitionNullPhotos(t *testing.T) {
	store, mock := newStoreWithMock(t)
	photo := "p1.jpg"
	e := &models.Exhibition{FeaturedImage: "f.jpg", Title: "Nri Bronzes", Description: "d", StartTime: "10:00",
		EndTime: "16:00", ExhibitionDate: "2025-06-01", PhoneNumber: "0803", Photo1: &photo, Location: "Awka"}

	mock.ExpectQuery(`(?s)INSERT\s+INTO\s+exhibition.*RETURNING`).
		WithArgs("f.jpg", "Nri Bronzes", "d", "10:00", "16:00", "2025-06-01", "0803", "p1.jpg", nil, nil, nil, "Awka").
		WillReturnRows(sqlmock.NewRows(exhibitionCols).
			AddRow(1, "f.jpg", "Nri Bronzes", "d", "10:00", "16:00", "2025-06-01", "0803", "p1.jpg", nil, nil, nil, "Awka", time.Now()))

	created, err := store.CreateExhibition(context.Background(), e)
	require.NoError(t, err)
	require.NotNil(t, created.Photo1)
	assert.Equal(t, "p1.jpg", *created.Photo1)
	assert.Nil(t, created.Photo2)
}

func TestListExhibitionsQueryError(t *testing.T) {
	store, mock := newStoreWithMock(t)
	mock.ExpectQuery(`FROM\s+exhibition`).WillReturnError(errors.New("conn reset"))

	_, err := store.ListExhibitions(context.Background())
	assert.ErrorContains(t, err, "list exhibitions")
}

func TestDeleteExhibitionMissing(t *testing.T) {
	store, mock := newStoreWithMock(t)
	mock.ExpectQuery(`DELETE\s+FROM\s+exhibition`).WithArgs(int64(7)).WillReturnError(sql.ErrNoRows)

	_, err := store.DeleteExhibition(context.Background(), 7)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}
