package services

import (
	"errors"

	"topzone/helpers"
	"topzone/models"
	"topzone/storage"
)

var (
	ErrGameNotFound    = errors.New("game not found")
	ErrPackageNotFound = errors.New("package not found")
	ErrAmountMismatch  = errors.New("total amount does not match package price")
	ErrInvalidStatus   = errors.New("unknown order status")
)

// refRetries bounds reference regeneration before falling back to the
// nanosecond form.
const refRetries = 5

type CreateOrderInput struct {
	GameID         string `json:"game_id"`
	PackageID      string `json:"package_id"`
	UserID         string `json:"user_id"`
	ServerID       string `json:"server_id"`
	WhatsappNumber string `json:"whatsapp_number"`
	PaymentMethod  string `json:"payment_method"`
	TotalAmount    int64  `json:"total_amount"`
}

// OrderService owns the checkout workflow: it validates the referenced
// catalog records, issues a unique customer-facing reference and hands
// the finished record to the store. Status changes come only from
// explicit external triggers (admin action or payment callback); there
// is no timer or background job driving them.
type OrderService struct {
	store storage.Storage
}

func NewOrderService(store storage.Storage) *OrderService {
	return &OrderService{store: store}
}

// CreateOrder persists a checkout submission. The store stays agnostic
// about references between records, so dangling game/package ids are
// rejected here at the boundary. Status is always pending at creation
// no matter what the caller sent.
func (s *OrderService) CreateOrder(in CreateOrderInput) (models.Order, error) {
	if _, err := s.store.GetGameByID(in.GameID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Order{}, ErrGameNotFound
		}
		return models.Order{}, err
	}

	pkg, err := s.store.GetPackageByID(in.PackageID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Order{}, ErrPackageNotFound
		}
		return models.Order{}, err
	}
	if in.TotalAmount != pkg.Price {
		return models.Order{}, ErrAmountMismatch
	}

	ref, err := s.newRef()
	if err != nil {
		return models.Order{}, err
	}

	return s.store.CreateOrder(models.Order{
		OrderID:        ref,
		GameID:         in.GameID,
		PackageID:      in.PackageID,
		UserID:         in.UserID,
		ServerID:       in.ServerID,
		WhatsappNumber: in.WhatsappNumber,
		PaymentMethod:  in.PaymentMethod,
		TotalAmount:    in.TotalAmount,
		Status:         models.OrderStatusPending,
	})
}

func (s *OrderService) GetOrder(orderID string) (models.Order, error) {
	return s.store.GetOrderByOrderID(orderID)
}

// UpdateStatus overwrites the order status. Only the four known
// statuses pass; the store itself applies the overwrite
// unconditionally, so any legality beyond the vocabulary is the
// caller's concern.
func (s *OrderService) UpdateStatus(orderID, status string) (models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return models.Order{}, ErrInvalidStatus
	}
	return s.store.UpdateOrderStatus(orderID, status)
}

// newRef generates a TZ reference and checks it against existing
// orders, retrying on collision. The timestamp+random scheme is only
// probabilistically unique, hence the check.
func (s *OrderService) newRef() (string, error) {
	for i := 0; i < refRetries; i++ {
		ref := helpers.NewOrderRef()
		_, err := s.store.GetOrderByOrderID(ref)
		if errors.Is(err, storage.ErrNotFound) {
			return ref, nil
		}
		if err != nil {
			return "", err
		}
		// taken, try again
	}
	return helpers.NewOrderRefNano(), nil
}

// GatewayStatus maps a payment-gateway transaction state onto an order
// status. Unknown states return ok=false and must be acknowledged
// without touching the order.
func GatewayStatus(transactionStatus string) (string, bool) {
	switch transactionStatus {
	case "settlement", "capture":
		return models.OrderStatusCompleted, true
	case "pending", "authorize":
		return models.OrderStatusProcessing, true
	case "deny", "cancel", "expire", "failure":
		return models.OrderStatusFailed, true
	}
	return "", false
}
