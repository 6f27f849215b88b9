package models

// Package is a purchasable credit bundle tied to one game.
// Price is in whole rupiah.
type Package struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	GameID    string `gorm:"index;size:36" json:"game_id"`
	Name      string `gorm:"size:128" json:"name"`
	Amount    int    `json:"amount"`
	Price     int64  `json:"price"`
	IsPopular int    `gorm:"default:0" json:"is_popular"`
}

type InsertPackage struct {
	GameID    string `json:"game_id"`
	Name      string `json:"name"`
	Amount    int    `json:"amount"`
	Price     int64  `json:"price"`
	IsPopular *int   `json:"is_popular"`
}
