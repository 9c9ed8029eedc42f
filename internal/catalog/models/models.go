// Package models holds the museum catalog: shop products, gallery artworks
// and exhibitions.
package models

import "time"

// Resource names used in error messages.
const (
	ResourceProduct    = "Product"
	ResourceArtwork    = "Artwork"
	ResourceExhibition = "Exhibition"
)

// Product is a row of the products table.
type Product struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Categories     string    `json:"categories"`
	Price          float64   `json:"price"`
	Quantity       string    `json:"quantity"`
	FeaturedImage  string    `json:"featuredimage"`
	Images1        string    `json:"images1"`
	Images2        string    `json:"images2"`
	Images3        string    `json:"images3"`
	Images4        string    `json:"images4"`
	Description    string    `json:"description"`
	AdditionalInfo string    `json:"additionalinfo"`
	InStock        string    `json:"instock"`
	CreatedAt      time.Time `json:"created_at"`
}

// Artwork is a row of the gallery table.
type Artwork struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	FeaturedImage string    `json:"featuredimage"`
	Description   string    `json:"description"`
	Artist        string    `json:"artist"`
	YearCollected string    `json:"yearcollected"`
	CreatedAt     time.Time `json:"created_at"`
}

// Exhibition is a row of the exhibition table. Times and the date are kept as
// the strings the admin form submits.
type Exhibition struct {
	ID             int64     `json:"id"`
	FeaturedImage  string    `json:"featuredimage"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	ExhibitionDate string    `json:"exhibition_date"`
	PhoneNumber    string    `json:"phonenumber"`
	Photo1         *string   `json:"photo1"`
	Photo2         *string   `json:"photo2"`
	Photo3         *string   `json:"photo3"`
	Photo4         *string   `json:"photo4"`
	Location       string    `json:"location"`
	CreatedAt      time.Time `json:"created_at"`
}
