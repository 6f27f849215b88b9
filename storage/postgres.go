package storage

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"topzone/models"
	"topzone/utils/logger"
)

// PostgresStorage backs the same Storage contract with a database, for
// deployments that want orders to survive a restart. The behavior is
// identical to the memory store except that list order follows the
// database rather than insertion.
type PostgresStorage struct {
	db *gorm.DB
}

func NewPostgresStorage(db *gorm.DB) *PostgresStorage {
	return &PostgresStorage{db: db}
}

// SeedIfEmpty loads the fixtures unless games already exist.
func (s *PostgresStorage) SeedIfEmpty() error {
	var count int64
	if err := s.db.Model(&models.Game{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Info("Fixtures already present, skipping seed")
		return nil
	}
	return Seed(s)
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *PostgresStorage) GetGames() ([]models.Game, error) {
	var games []models.Game
	if err := s.db.Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (s *PostgresStorage) GetGameByID(id string) (models.Game, error) {
	var game models.Game
	if err := s.db.Where("id = ?", id).First(&game).Error; err != nil {
		return models.Game{}, notFound(err)
	}
	return game, nil
}

func (s *PostgresStorage) GetGameBySlug(slug string) (models.Game, error) {
	var game models.Game
	if err := s.db.Where("slug = ?", slug).First(&game).Error; err != nil {
		return models.Game{}, notFound(err)
	}
	return game, nil
}

func (s *PostgresStorage) CreateGame(in models.InsertGame) (models.Game, error) {
	game := models.Game{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		Currency:    in.Currency,
		ImageURL:    in.ImageURL,
		IsPopular:   flagOr(in.IsPopular, 0),
	}
	if err := s.db.Create(&game).Error; err != nil {
		return models.Game{}, err
	}
	return game, nil
}

func (s *PostgresStorage) GetPackagesByGameID(gameID string) ([]models.Package, error) {
	packages := make([]models.Package, 0)
	if err := s.db.Where("game_id = ?", gameID).Find(&packages).Error; err != nil {
		return nil, err
	}
	return packages, nil
}

func (s *PostgresStorage) GetPackageByID(id string) (models.Package, error) {
	var pkg models.Package
	if err := s.db.Where("id = ?", id).First(&pkg).Error; err != nil {
		return models.Package{}, notFound(err)
	}
	return pkg, nil
}

func (s *PostgresStorage) CreatePackage(in models.InsertPackage) (models.Package, error) {
	pkg := models.Package{
		ID:        uuid.New().String(),
		GameID:    in.GameID,
		Name:      in.Name,
		Amount:    in.Amount,
		Price:     in.Price,
		IsPopular: flagOr(in.IsPopular, 0),
	}
	if err := s.db.Create(&pkg).Error; err != nil {
		return models.Package{}, err
	}
	return pkg, nil
}

func (s *PostgresStorage) CreateOrder(order models.Order) (models.Order, error) {
	now := time.Now()
	order.ID = uuid.New().String()
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	order.CreatedAt = now
	order.UpdatedAt = now

	if err := s.db.Create(&order).Error; err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (s *PostgresStorage) GetOrderByOrderID(orderID string) (models.Order, error) {
	var order models.Order
	if err := s.db.Where("order_id = ?", orderID).First(&order).Error; err != nil {
		return models.Order{}, notFound(err)
	}
	return order, nil
}

func (s *PostgresStorage) UpdateOrderStatus(orderID, status string) (models.Order, error) {
	var order models.Order
	if err := s.db.Where("order_id = ?", orderID).First(&order).Error; err != nil {
		return models.Order{}, notFound(err)
	}

	order.Status = status
	order.UpdatedAt = time.Now()
	if err := s.db.Save(&order).Error; err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (s *PostgresStorage) GetTestimonials() ([]models.Testimonial, error) {
	reviews := make([]models.Testimonial, 0)
	if err := s.db.Where("is_active = ?", 1).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *PostgresStorage) CreateTestimonial(in models.InsertTestimonial) (models.Testimonial, error) {
	review := models.Testimonial{
		ID:           uuid.New().String(),
		CustomerName: in.CustomerName,
		Rating:       in.Rating,
		Comment:      in.Comment,
		IsActive:     flagOr(in.IsActive, 1),
	}
	if err := s.db.Create(&review).Error; err != nil {
		return models.Testimonial{}, err
	}
	return review, nil
}

func (s *PostgresStorage) GetFaqs() ([]models.Faq, error) {
	faqs := make([]models.Faq, 0)
	if err := s.db.Where("is_active = ?", 1).Find(&faqs).Error; err != nil {
		return nil, err
	}
	return faqs, nil
}

func (s *PostgresStorage) CreateFaq(in models.InsertFaq) (models.Faq, error) {
	faq := models.Faq{
		ID:       uuid.New().String(),
		Question: in.Question,
		Answer:   in.Answer,
		IsActive: flagOr(in.IsActive, 1),
	}
	if err := s.db.Create(&faq).Error; err != nil {
		return models.Faq{}, err
	}
	return faq, nil
}
