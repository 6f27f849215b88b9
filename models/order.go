package models

import "time"

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusFailed     = "failed"
)

// ValidOrderStatus reports whether s is one of the four known order
// statuses. The store itself never checks this; the HTTP boundary does.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusFailed:
		return true
	}
	return false
}

// Order is one checkout submission. ID is the storage key, OrderID is
// the customer-facing reference shown on the status page.
type Order struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	OrderID        string    `gorm:"uniqueIndex;size:32" json:"order_id"`
	GameID         string    `gorm:"index;size:36" json:"game_id"`
	PackageID      string    `gorm:"index;size:36" json:"package_id"`
	UserID         string    `gorm:"size:64" json:"user_id"`
	ServerID       string    `gorm:"size:64" json:"server_id,omitempty"`
	WhatsappNumber string    `gorm:"size:32" json:"whatsapp_number,omitempty"`
	PaymentMethod  string    `gorm:"size:32" json:"payment_method"`
	TotalAmount    int64     `json:"total_amount"`
	Status         string    `gorm:"size:16;index;default:pending" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
