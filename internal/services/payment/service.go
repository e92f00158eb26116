package payment

import (
	"context"
	"errors"
	"time"

	"eats-marketplace/internal/database"
	"eats-marketplace/internal/logger"
	"eats-marketplace/internal/models"
)

// promotionPeriod is how long a paid promotion lasts.
const promotionPeriod = 7 * 24 * time.Hour

// Store is the persistence boundary for payments
type Store interface {
	InsertPayment(ctx context.Context, p *models.Payment) error
	ListByUser(ctx context.Context, userID int64) ([]models.Payment, error)
}

// Restaurants is the slice of the catalog the payment service needs
type Restaurants interface {
	FindRestaurant(ctx context.Context, id int64) (*models.Restaurant, error)
	Promote(ctx context.Context, restaurantID int64, until time.Time) error
	ClearExpiredPromotions(ctx context.Context) error
}

// Service records promotion payments and applies their effect: a paid
// restaurant is promoted for a fixed period.
type Service struct {
	store       Store
	restaurants Restaurants
	logger      *logger.Logger
}

// NewService creates the payment service
func NewService(store Store, restaurants Restaurants, log *logger.Logger) *Service {
	return &Service{
		store:       store,
		restaurants: restaurants,
		logger:      log,
	}
}

// CreatePayment records a payment by the owner of the restaurant and
// promotes the restaurant.
func (s *Service) CreatePayment(ctx context.Context, owner *models.User, req *models.CreatePaymentRequest) *models.CreatePaymentOutput {
	requestID := logger.GenerateRequestID()

	restaurant, err := s.restaurants.FindRestaurant(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return &models.CreatePaymentOutput{Success: false, Error: "Restaurant Not Found"}
		}
		s.logger.Error("payment_creation_failed", "Restaurant lookup failed", requestID, err, nil)
		return &models.CreatePaymentOutput{Success: false, Error: "Could not create payment"}
	}
	if restaurant.OwnerID != owner.ID {
		return &models.CreatePaymentOutput{Success: false, Error: "Not Allowed to Access"}
	}

	p := &models.Payment{
		TransactionID: req.TransactionID,
		UserID:        owner.ID,
		RestaurantID:  restaurant.ID,
	}
	if err := s.store.InsertPayment(ctx, p); err != nil {
		s.logger.Error("payment_creation_failed", "Failed to persist payment", requestID, err, nil)
		return &models.CreatePaymentOutput{Success: false, Error: "Could not create payment"}
	}

	until := time.Now().UTC().Add(promotionPeriod)
	if err := s.restaurants.Promote(ctx, restaurant.ID, until); err != nil {
		s.logger.Error("promotion_failed", "Failed to promote restaurant", requestID, err, map[string]interface{}{
			"restaurant_id": restaurant.ID,
		})
		return &models.CreatePaymentOutput{Success: false, Error: "Could not create payment"}
	}

	s.logger.Info("payment_created", "Payment recorded and restaurant promoted", requestID, map[string]interface{}{
		"restaurant_id":  restaurant.ID,
		"promoted_until": until,
	})

	return &models.CreatePaymentOutput{Success: true}
}

// GetPayments lists the actor's payments
func (s *Service) GetPayments(ctx context.Context, owner *models.User) *models.GetPaymentsOutput {
	requestID := logger.GenerateRequestID()

	payments, err := s.store.ListByUser(ctx, owner.ID)
	if err != nil {
		s.logger.Error("payments_load_failed", "Failed to load payments", requestID, err, nil)
		return &models.GetPaymentsOutput{Success: false, Error: "Could not load your payments"}
	}
	return &models.GetPaymentsOutput{Success: true, Payments: payments}
}

// RunPromotionSweeper periodically clears lapsed promotions until the
// context is cancelled.
func (s *Service) RunPromotionSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.restaurants.ClearExpiredPromotions(ctx); err != nil {
				s.logger.Error("promotion_sweep_failed", "Failed to clear expired promotions", "", err, nil)
			}
		}
	}
}
