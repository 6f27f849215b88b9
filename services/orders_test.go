package services

import (
	"errors"
	"regexp"
	"testing"

	"topzone/models"
	"topzone/storage"
)

var orderRefPattern = regexp.MustCompile(`^TZ\d+$`)

func findPackage(t *testing.T, store storage.Storage, gameID, name string) models.Package {
	t.Helper()
	packages, err := store.GetPackagesByGameID(gameID)
	if err != nil {
		t.Fatalf("GetPackagesByGameID: %v", err)
	}
	for _, pkg := range packages {
		if pkg.Name == name {
			return pkg
		}
	}
	t.Fatalf("package %q not found for game %s", name, gameID)
	return models.Package{}
}

func TestCreateOrderScenario(t *testing.T) {
	store := storage.NewMemoryStorage()
	svc := NewOrderService(store)

	ml, err := store.GetGameBySlug("mobile-legends")
	if err != nil {
		t.Fatalf("GetGameBySlug: %v", err)
	}
	pkg := findPackage(t, store, ml.ID, "172 Diamonds")

	order, err := svc.CreateOrder(CreateOrderInput{
		GameID:        ml.ID,
		PackageID:     pkg.ID,
		UserID:        "12345678",
		PaymentMethod: "qris",
		TotalAmount:   28000,
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	if order.TotalAmount != 28000 {
		t.Errorf("totalAmount = %d, want 28000", order.TotalAmount)
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("status = %q, want pending", order.Status)
	}
	if order.GameID != ml.ID || order.PackageID != pkg.ID {
		t.Errorf("order references %s/%s, want %s/%s", order.GameID, order.PackageID, ml.ID, pkg.ID)
	}
	if !orderRefPattern.MatchString(order.OrderID) {
		t.Errorf("order reference %q does not match TZ<digits>", order.OrderID)
	}
	if order.CreatedAt.IsZero() || !order.CreatedAt.Equal(order.UpdatedAt) {
		t.Errorf("timestamps wrong at creation: created=%v updated=%v", order.CreatedAt, order.UpdatedAt)
	}

	// round-trips by reference
	got, err := svc.GetOrder(order.OrderID)
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	if got.ID != order.ID {
		t.Errorf("GetOrder returned a different record")
	}
}

func TestCreateOrderDanglingReferences(t *testing.T) {
	store := storage.NewMemoryStorage()
	svc := NewOrderService(store)

	ml, _ := store.GetGameBySlug("mobile-legends")
	pkg := findPackage(t, store, ml.ID, "86 Diamonds")

	_, err := svc.CreateOrder(CreateOrderInput{
		GameID:        "no-such-game",
		PackageID:     pkg.ID,
		UserID:        "u",
		PaymentMethod: "qris",
		TotalAmount:   pkg.Price,
	})
	if !errors.Is(err, ErrGameNotFound) {
		t.Errorf("dangling game: got %v, want ErrGameNotFound", err)
	}

	_, err = svc.CreateOrder(CreateOrderInput{
		GameID:        ml.ID,
		PackageID:     "no-such-package",
		UserID:        "u",
		PaymentMethod: "qris",
		TotalAmount:   pkg.Price,
	})
	if !errors.Is(err, ErrPackageNotFound) {
		t.Errorf("dangling package: got %v, want ErrPackageNotFound", err)
	}

	_, err = svc.CreateOrder(CreateOrderInput{
		GameID:        ml.ID,
		PackageID:     pkg.ID,
		UserID:        "u",
		PaymentMethod: "qris",
		TotalAmount:   pkg.Price + 1,
	})
	if !errors.Is(err, ErrAmountMismatch) {
		t.Errorf("wrong amount: got %v, want ErrAmountMismatch", err)
	}
}

func TestGetOrderNeverCreated(t *testing.T) {
	svc := NewOrderService(storage.NewMemoryStorage())

	if _, err := svc.GetOrder("TZ99999999999999"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestUpdateStatusVocabulary(t *testing.T) {
	store := storage.NewMemoryStorage()
	svc := NewOrderService(store)

	ml, _ := store.GetGameBySlug("mobile-legends")
	pkg := findPackage(t, store, ml.ID, "86 Diamonds")
	order, err := svc.CreateOrder(CreateOrderInput{
		GameID:        ml.ID,
		PackageID:     pkg.ID,
		UserID:        "u",
		PaymentMethod: "ovo",
		TotalAmount:   pkg.Price,
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	if _, err := svc.UpdateStatus(order.OrderID, "shipped"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("unknown status: got %v, want ErrInvalidStatus", err)
	}

	updated, err := svc.UpdateStatus(order.OrderID, models.OrderStatusCompleted)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != models.OrderStatusCompleted {
		t.Errorf("status = %q, want completed", updated.Status)
	}

	if _, err := svc.UpdateStatus("TZ-missing", models.OrderStatusFailed); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("missing order: got %v, want ErrNotFound", err)
	}
}

// collisionStore reports the first n generated references as taken.
type collisionStore struct {
	storage.Storage
	collisions int
	lookups    []string
}

func (s *collisionStore) GetOrderByOrderID(orderID string) (models.Order, error) {
	s.lookups = append(s.lookups, orderID)
	if len(s.lookups) <= s.collisions {
		return models.Order{OrderID: orderID}, nil
	}
	return s.Storage.GetOrderByOrderID(orderID)
}

func TestNewRefRetriesOnCollision(t *testing.T) {
	store := &collisionStore{Storage: storage.NewEmptyMemoryStorage(), collisions: 2}
	svc := NewOrderService(store)

	ref, err := svc.newRef()
	if err != nil {
		t.Fatalf("newRef: %v", err)
	}
	if len(store.lookups) != 3 {
		t.Errorf("expected 2 collisions then success, saw %d lookups", len(store.lookups))
	}
	if !orderRefPattern.MatchString(ref) {
		t.Errorf("reference %q does not match TZ<digits>", ref)
	}
}

func TestNewRefFallsBackAfterRetries(t *testing.T) {
	store := &collisionStore{Storage: storage.NewEmptyMemoryStorage(), collisions: refRetries}
	svc := NewOrderService(store)

	ref, err := svc.newRef()
	if err != nil {
		t.Fatalf("newRef: %v", err)
	}
	if !orderRefPattern.MatchString(ref) {
		t.Errorf("fallback reference %q does not match TZ<digits>", ref)
	}
	for _, taken := range store.lookups {
		if taken == ref {
			t.Errorf("fallback returned a reference reported as taken: %q", ref)
		}
	}
}

func TestGatewayStatus(t *testing.T) {
	cases := []struct {
		tx     string
		status string
		ok     bool
	}{
		{"settlement", models.OrderStatusCompleted, true},
		{"capture", models.OrderStatusCompleted, true},
		{"pending", models.OrderStatusProcessing, true},
		{"authorize", models.OrderStatusProcessing, true},
		{"deny", models.OrderStatusFailed, true},
		{"cancel", models.OrderStatusFailed, true},
		{"expire", models.OrderStatusFailed, true},
		{"failure", models.OrderStatusFailed, true},
		{"refund", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		status, ok := GatewayStatus(tc.tx)
		if status != tc.status || ok != tc.ok {
			t.Errorf("GatewayStatus(%q) = (%q, %v), want (%q, %v)", tc.tx, status, ok, tc.status, tc.ok)
		}
	}
}
