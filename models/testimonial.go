package models

type Testimonial struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	CustomerName string `gorm:"size:128" json:"customer_name"`
	Rating       int    `json:"rating"`
	Comment      string `gorm:"size:512" json:"comment"`
	IsActive     int    `gorm:"default:1" json:"is_active"`
}

type InsertTestimonial struct {
	CustomerName string `json:"customer_name"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	IsActive     *int   `json:"is_active"`
}
