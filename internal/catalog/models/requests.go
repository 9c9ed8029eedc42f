package models

import (
	"strings"

	dErrors "museum/pkg/domain-errors"
)

const exhibitionRequired = "Required fields: title, start_time, featuredimage, description, end_time, exhibition_date, phonenumber, location"

// ProductRequest is the body of product create and update. Update replaces
// every column, so both use the same required set.
type ProductRequest struct {
	Name           string `json:"name"`
	Price          Price  `json:"price"`
	Categories     string `json:"categories"`
	Quantity       Text   `json:"quantity"`
	FeaturedImage  string `json:"featuredimage"`
	Images1        string `json:"images1"`
	Images2        string `json:"images2"`
	Images3        string `json:"images3"`
	Images4        string `json:"images4"`
	Description    string `json:"description"`
	InStock        Text   `json:"instock"`
	AdditionalInfo string `json:"additionalinfo"`
}

func (r *ProductRequest) Validate() error {
	trim(&r.Name, &r.Categories, &r.FeaturedImage, &r.Images1, &r.Images2, &r.Images3, &r.Images4,
		&r.Description, &r.AdditionalInfo)
	if r.Name == "" || r.Price <= 0 || r.Categories == "" || r.Quantity == "" || r.FeaturedImage == "" ||
		r.Images1 == "" || r.Images2 == "" || r.Images3 == "" || r.Images4 == "" ||
		r.Description == "" || r.InStock == "" || r.AdditionalInfo == "" {
		return dErrors.New(dErrors.CodeValidation, "all fields are required")
	}
	return nil
}

func (r *ProductRequest) Product() *Product {
	return &Product{
		Name:           r.Name,
		Categories:     r.Categories,
		Price:          float64(r.Price),
		Quantity:       string(r.Quantity),
		FeaturedImage:  r.FeaturedImage,
		Images1:        r.Images1,
		Images2:        r.Images2,
		Images3:        r.Images3,
		Images4:        r.Images4,
		Description:    r.Description,
		AdditionalInfo: r.AdditionalInfo,
		InStock:        string(r.InStock),
	}
}

type ArtworkRequest struct {
	Name          string `json:"name"`
	Price         Price  `json:"price"`
	FeaturedImage string `json:"featuredimage"`
	Description   string `json:"description"`
	Artist        string `json:"artist"`
	YearCollected Text   `json:"yearcollected"`
}

func (r *ArtworkRequest) Validate() error {
	trim(&r.Name, &r.FeaturedImage, &r.Description, &r.Artist)
	if r.Name == "" || r.Price <= 0 || r.FeaturedImage == "" || r.Description == "" ||
		r.Artist == "" || r.YearCollected == "" {
		return dErrors.New(dErrors.CodeValidation, "all fields are required")
	}
	return nil
}

func (r *ArtworkRequest) Artwork() *Artwork {
	return &Artwork{
		Name:          r.Name,
		Price:         float64(r.Price),
		FeaturedImage: r.FeaturedImage,
		Description:   r.Description,
		Artist:        r.Artist,
		YearCollected: string(r.YearCollected),
	}
}

type ExhibitionRequest struct {
	FeaturedImage  string `json:"featuredimage"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	ExhibitionDate string `json:"exhibition_date"`
	PhoneNumber    Text   `json:"phonenumber"`
	Photo1         string `json:"photo1"`
	Photo2         string `json:"photo2"`
	Photo3         string `json:"photo3"`
	Photo4         string `json:"photo4"`
	Location       string `json:"location"`
}

func (r *ExhibitionRequest) Validate() error {
	trim(&r.FeaturedImage, &r.Title, &r.Description, &r.StartTime, &r.EndTime, &r.ExhibitionDate,
		&r.Photo1, &r.Photo2, &r.Photo3, &r.Photo4, &r.Location)
	if r.Title == "" || r.StartTime == "" || r.FeaturedImage == "" || r.Description == "" ||
		r.EndTime == "" || r.ExhibitionDate == "" || r.PhoneNumber == "" || r.Location == "" {
		return dErrors.New(dErrors.CodeValidation, exhibitionRequired)
	}
	return nil
}

// Exhibition maps blank optional photos to NULL.
func (r *ExhibitionRequest) Exhibition() *Exhibition {
	return &Exhibition{
		FeaturedImage:  r.FeaturedImage,
		Title:          r.Title,
		Description:    r.Description,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		ExhibitionDate: r.ExhibitionDate,
		PhoneNumber:    string(r.PhoneNumber),
		Photo1:         optional(r.Photo1),
		Photo2:         optional(r.Photo2),
		Photo3:         optional(r.Photo3),
		Photo4:         optional(r.Photo4),
		Location:       r.Location,
	}
}

func trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
