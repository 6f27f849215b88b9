package models

type Faq struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	Question string `gorm:"size:255" json:"question"`
	Answer   string `gorm:"size:1024" json:"answer"`
	IsActive int    `gorm:"default:1" json:"is_active"`
}

type InsertFaq struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	IsActive *int   `json:"is_active"`
}
