package storage

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"topzone/models"
)

// MemoryStorage keeps every collection in process memory. Go maps do
// not iterate in insertion order, so each collection carries a slice of
// ids recording it; list and scan operations walk that slice so that
// "first match wins" stays deterministic.
//
// A single RWMutex guards all collections. Concurrent status updates on
// the same order remain last-write-wins, which is the documented
// semantics of the overwrite.
type MemoryStorage struct {
	mu sync.RWMutex

	games     map[string]models.Game
	gameIDs   []string
	packages  map[string]models.Package
	pkgIDs    []string
	orders    map[string]models.Order
	orderIDs  []string
	reviews   map[string]models.Testimonial
	reviewIDs []string
	faqs      map[string]models.Faq
	faqIDs    []string
}

// NewMemoryStorage returns a store seeded with the storefront fixtures.
func NewMemoryStorage() *MemoryStorage {
	s := NewEmptyMemoryStorage()
	_ = Seed(s) // memory inserts never fail
	return s
}

// NewEmptyMemoryStorage returns a store with no records, mainly for
// tests that want full control over contents.
func NewEmptyMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		games:    make(map[string]models.Game),
		packages: make(map[string]models.Package),
		orders:   make(map[string]models.Order),
		reviews:  make(map[string]models.Testimonial),
		faqs:     make(map[string]models.Faq),
	}
}

func (s *MemoryStorage) GetGames() ([]models.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	games := make([]models.Game, 0, len(s.gameIDs))
	for _, id := range s.gameIDs {
		games = append(games, s.games[id])
	}
	return games, nil
}

func (s *MemoryStorage) GetGameByID(id string) (models.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	game, ok := s.games[id]
	if !ok {
		return models.Game{}, ErrNotFound
	}
	return game, nil
}

func (s *MemoryStorage) GetGameBySlug(slug string) (models.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.gameIDs {
		if s.games[id].Slug == slug {
			return s.games[id], nil
		}
	}
	return models.Game{}, ErrNotFound
}

func (s *MemoryStorage) CreateGame(in models.InsertGame) (models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game := models.Game{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		Currency:    in.Currency,
		ImageURL:    in.ImageURL,
		IsPopular:   flagOr(in.IsPopular, 0),
	}
	s.games[game.ID] = game
	s.gameIDs = append(s.gameIDs, game.ID)
	return game, nil
}

func (s *MemoryStorage) GetPackagesByGameID(gameID string) ([]models.Package, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	packages := make([]models.Package, 0)
	for _, id := range s.pkgIDs {
		if s.packages[id].GameID == gameID {
			packages = append(packages, s.packages[id])
		}
	}
	return packages, nil
}

func (s *MemoryStorage) GetPackageByID(id string) (models.Package, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pkg, ok := s.packages[id]
	if !ok {
		return models.Package{}, ErrNotFound
	}
	return pkg, nil
}

func (s *MemoryStorage) CreatePackage(in models.InsertPackage) (models.Package, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pkg := models.Package{
		ID:        uuid.New().String(),
		GameID:    in.GameID,
		Name:      in.Name,
		Amount:    in.Amount,
		Price:     in.Price,
		IsPopular: flagOr(in.IsPopular, 0),
	}
	s.packages[pkg.ID] = pkg
	s.pkgIDs = append(s.pkgIDs, pkg.ID)
	return pkg, nil
}

func (s *MemoryStorage) CreateOrder(order models.Order) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	order.ID = uuid.New().String()
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	order.CreatedAt = now
	order.UpdatedAt = now

	s.orders[order.ID] = order
	s.orderIDs = append(s.orderIDs, order.ID)
	return order, nil
}

func (s *MemoryStorage) GetOrderByOrderID(orderID string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.orderIDs {
		if s.orders[id].OrderID == orderID {
			return s.orders[id], nil
		}
	}
	return models.Order{}, ErrNotFound
}

// UpdateOrderStatus overwrites the status unconditionally; callers are
// expected to have vetted the value. CreatedAt never changes.
func (s *MemoryStorage) UpdateOrderStatus(orderID, status string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.orderIDs {
		if s.orders[id].OrderID == orderID {
			order := s.orders[id]
			order.Status = status
			order.UpdatedAt = time.Now()
			s.orders[id] = order
			return order, nil
		}
	}
	return models.Order{}, ErrNotFound
}

func (s *MemoryStorage) GetTestimonials() ([]models.Testimonial, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reviews := make([]models.Testimonial, 0, len(s.reviewIDs))
	for _, id := range s.reviewIDs {
		if s.reviews[id].IsActive == 1 {
			reviews = append(reviews, s.reviews[id])
		}
	}
	return reviews, nil
}

func (s *MemoryStorage) CreateTestimonial(in models.InsertTestimonial) (models.Testimonial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	review := models.Testimonial{
		ID:           uuid.New().String(),
		CustomerName: in.CustomerName,
		Rating:       in.Rating,
		Comment:      in.Comment,
		IsActive:     flagOr(in.IsActive, 1),
	}
	s.reviews[review.ID] = review
	s.reviewIDs = append(s.reviewIDs, review.ID)
	return review, nil
}

func (s *MemoryStorage) GetFaqs() ([]models.Faq, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	faqs := make([]models.Faq, 0, len(s.faqIDs))
	for _, id := range s.faqIDs {
		if s.faqs[id].IsActive == 1 {
			faqs = append(faqs, s.faqs[id])
		}
	}
	return faqs, nil
}

func (s *MemoryStorage) CreateFaq(in models.InsertFaq) (models.Faq, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	faq := models.Faq{
		ID:       uuid.New().String(),
		Question: in.Question,
		Answer:   in.Answer,
		IsActive: flagOr(in.IsActive, 1),
	}
	s.faqs[faq.ID] = faq
	s.faqIDs = append(s.faqIDs, faq.ID)
	return faq, nil
}

// flagOr resolves an optional 0/1 flag against its default.
func flagOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
