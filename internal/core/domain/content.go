package domain

import "time"

// Promotion is the single promotional banner shown at a page
// location. One row per location key.
type Promotion struct {
	Location   string
	Heading    string
	Subheading string
	ButtonText string
	ButtonLink string
	Active     bool
	UpdatedAt  time.Time
}

type BlogPost struct {
	ID               int64
	Title            string
	Slug             string
	Excerpt          string
	Author           string
	Category         string
	FeaturedImageURL string
	Published        bool
	PublishedAt      time.Time
}

type ServiceCategory struct {
	ID           int64
	Name         string
	Slug         string
	Icon         string
	Description  string
	DisplayOrder int
	Active       bool
	UpdatedAt    time.Time
}

// DiveService is a bookable shop service: a course, charter,
// rental, fill, or equipment job.
type DiveService struct {
	ID           int64
	CategoryID   int64
	Name         string
	Slug         string
	Description  string
	Price        float64
	PriceText    string
	Duration     string
	Depth        string
	Includes     []string
	DisplayOrder int
	Active       bool
	Featured     bool
	UpdatedAt    time.Time
}

type SearchResult struct {
	Title       string
	URL         string
	Description string
	Category    string
}
