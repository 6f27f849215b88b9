package models

type Game struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	Name        string `gorm:"size:128" json:"name"`
	Slug        string `gorm:"uniqueIndex;size:128" json:"slug"`
	Description string `gorm:"size:512" json:"description"`
	Currency    string `gorm:"size:32" json:"currency"`
	ImageURL    string `gorm:"size:255" json:"image_url"`
	IsPopular   int    `gorm:"default:0" json:"is_popular"`
}

// InsertGame is a game record before the store assigns an id.
// IsPopular is a pointer so "not supplied" can default to 0.
type InsertGame struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Currency    string `json:"currency"`
	ImageURL    string `json:"image_url"`
	IsPopular   *int   `json:"is_popular"`
}
