package storage

import (
	"errors"

	"topzone/models"
)

// ErrNotFound is the absent-value signal for every lookup miss. It is
// the only error the in-memory store ever returns; the Postgres store
// maps driver errors through as-is.
var ErrNotFound = errors.New("record not found")

// Storage is the record-store contract shared by the in-memory and
// Postgres implementations. Catalog and content records are seeded at
// startup and append-only; orders support exactly one mutation, the
// status overwrite by public reference.
type Storage interface {
	// Games
	GetGames() ([]models.Game, error)
	GetGameByID(id string) (models.Game, error)
	GetGameBySlug(slug string) (models.Game, error)
	CreateGame(in models.InsertGame) (models.Game, error)

	// Packages
	GetPackagesByGameID(gameID string) ([]models.Package, error)
	GetPackageByID(id string) (models.Package, error)
	CreatePackage(in models.InsertPackage) (models.Package, error)

	// Orders
	CreateOrder(order models.Order) (models.Order, error)
	GetOrderByOrderID(orderID string) (models.Order, error)
	UpdateOrderStatus(orderID, status string) (models.Order, error)

	// Testimonials (active only on the read path)
	GetTestimonials() ([]models.Testimonial, error)
	CreateTestimonial(in models.InsertTestimonial) (models.Testimonial, error)

	// FAQs (active only on the read path)
	GetFaqs() ([]models.Faq, error)
	CreateFaq(in models.InsertFaq) (models.Faq, error)
}
