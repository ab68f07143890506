package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"ecommerce-api/pkg/models"
)

// Catalog is the product-existence check the order workflow depends on;
// satisfied by *products.Repo.
type Catalog interface {
	Exists(ctx context.Context, productID string) (bool, error)
}

// Store persists and lists order documents; satisfied by *Repo.
type Store interface {
	Insert(ctx context.Context, o models.Order) (string, error)
	ListByUser(ctx context.Context, userID string, limit, offset int64) ([]models.Order, error)
}

// MissingProductError reports an order item whose product_id does not
// resolve to any stored product.
type MissingProductError struct {
	ProductID string
}

func (e *MissingProductError) Error() string {
	return fmt.Sprintf("Product %s not found", e.ProductID)
}

type Service struct {
	catalog Catalog
	store   Store
	logger  *logrus.Logger
}

func NewService(catalog Catalog, store Store, logger *logrus.Logger) *Service {
	return &Service{catalog: catalog, store: store, logger: logger}
}

// Create runs the order-creation workflow: every referenced product must
// exist at creation time. Validation fails fast on the first unresolved
// product_id and nothing is persisted in that case. The existence checks
// and the insert are deliberately not wrapped in a transaction; the store's
// per-document atomicity is the only guarantee carried over.
func (s *Service) Create(ctx context.Context, req models.CreateOrderRequest) (string, models.Order, error) {
	for _, item := range req.Items {
		ok, err := s.catalog.Exists(ctx, item.ProductID)
		if err != nil {
			return "", models.Order{}, fmt.Errorf("check product %s: %w", item.ProductID, err)
		}
		if !ok {
			return "", models.Order{}, &MissingProductError{ProductID: item.ProductID}
		}
	}

	var total float64
	for _, item := range req.Items {
		total += item.TotalAmount
	}

	order := models.Order{
		UserID:      req.UserID,
		Items:       req.Items,
		UserAddress: req.UserAddress,
		Timestamp:   time.Now().UTC(),
		TotalAmount: total,
	}

	id, err := s.store.Insert(ctx, order)
	if err != nil {
		return "", models.Order{}, err
	}

	s.logger.WithFields(logrus.Fields{
		"order_id":     id,
		"user_id":      order.UserID,
		"total_amount": order.TotalAmount,
		"items_count":  len(order.Items),
	}).Info("Order created")

	return id, order, nil
}

// ListForUser returns the user's orders in creation order. A user with no
// orders gets an empty slice, not an error.
func (s *Service) ListForUser(ctx context.Context, userID string, limit, offset int64) ([]models.Order, error) {
	return s.store.ListByUser(ctx, userID, limit, offset)
}
