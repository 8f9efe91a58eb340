package domain

import "time"

// Category groups parts for XP multipliers and browsing.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Part is a replacement part sold by the storefront.
// DifficultyLevel ranges 1-5; 0 means unset and callers fall back to the
// default installation difficulty.
type Part struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	CategoryID      int       `json:"category_id"`
	CategoryName    string    `json:"category_name"`
	DifficultyLevel int       `json:"difficulty_level"`
	PriceCents      int       `json:"price_cents"`
	ImageURL        string    `json:"image_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// Scooter is an electric scooter model parts can be compatible with.
type Scooter struct {
	ID        string    `json:"id"`
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	Year      int       `json:"year,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
