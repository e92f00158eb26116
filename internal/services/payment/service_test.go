package payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"eats-marketplace/internal/database"
	"eats-marketplace/internal/logger"
	"eats-marketplace/internal/models"
)

type fakeStore struct {
	payments  []models.Payment
	insertErr error
}

func (s *fakeStore) InsertPayment(_ context.Context, p *models.Payment) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	p.ID = int64(len(s.payments) + 1)
	s.payments = append(s.payments, *p)
	return nil
}

func (s *fakeStore) ListByUser(_ context.Context, userID int64) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range s.payments {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeRestaurants struct {
	restaurants map[int64]*models.Restaurant
	promoted    map[int64]time.Time
	sweeps      int
}

func (r *fakeRestaurants) FindRestaurant(_ context.Context, id int64) (*models.Restaurant, error) {
	rest, ok := r.restaurants[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return rest, nil
}

func (r *fakeRestaurants) Promote(_ context.Context, restaurantID int64, until time.Time) error {
	r.promoted[restaurantID] = until
	return nil
}

func (r *fakeRestaurants) ClearExpiredPromotions(_ context.Context) error {
	r.sweeps++
	return nil
}

func newTestService() (*Service, *fakeStore, *fakeRestaurants) {
	store := &fakeStore{}
	restaurants := &fakeRestaurants{
		restaurants: map[int64]*models.Restaurant{
			5: {ID: 5, Name: "Pizzeria", OwnerID: 20},
		},
		promoted: map[int64]time.Time{},
	}
	svc := NewService(store, restaurants, logger.New("payment-test"))
	return svc, store, restaurants
}

func TestCreatePayment(t *testing.T) {
	svc, store, restaurants := newTestService()
	owner := &models.User{ID: 20, Role: models.RoleOwner}

	out := svc.CreatePayment(context.Background(), owner, &models.CreatePaymentRequest{
		TransactionID: "tx-123",
		RestaurantID:  5,
	})

	require.True(t, out.Success)
	require.Len(t, store.payments, 1)
	require.Equal(t, "tx-123", store.payments[0].TransactionID)
	require.Equal(t, int64(20), store.payments[0].UserID)

	until, ok := restaurants.promoted[5]
	require.True(t, ok)

	remaining := time.Until(until)
	require.Greater(t, remaining, 6*24*time.Hour)
	require.LessOrEqual(t, remaining, 7*24*time.Hour)
}

func TestCreatePaymentDenied(t *testing.T) {
	svc, store, restaurants := newTestService()

	tests := []struct {
		name         string
		owner        *models.User
		restaurantID int64
		wantErr      string
	}{
		{"unknown restaurant", &models.User{ID: 20, Role: models.RoleOwner}, 99, "Restaurant Not Found"},
		{"not the owner", &models.User{ID: 21, Role: models.RoleOwner}, 5, "Not Allowed to Access"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := svc.CreatePayment(context.Background(), tt.owner, &models.CreatePaymentRequest{
				TransactionID: "tx-999",
				RestaurantID:  tt.restaurantID,
			})

			require.False(t, out.Success)
			require.Equal(t, tt.wantErr, out.Error)
		})
	}

	require.Empty(t, store.payments)
	require.Empty(t, restaurants.promoted)
}

func TestGetPayments(t *testing.T) {
	svc, _, _ := newTestService()
	owner := &models.User{ID: 20, Role: models.RoleOwner}

	require.True(t, svc.CreatePayment(context.Background(), owner, &models.CreatePaymentRequest{
		TransactionID: "tx-1", RestaurantID: 5,
	}).Success)

	out := svc.GetPayments(context.Background(), owner)
	require.True(t, out.Success)
	require.Len(t, out.Payments, 1)

	other := svc.GetPayments(context.Background(), &models.User{ID: 21, Role: models.RoleOwner})
	require.True(t, other.Success)
	require.Empty(t, other.Payments)
}

func TestRunPromotionSweeper(t *testing.T) {
	svc, _, restaurants := newTestService()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	svc.RunPromotionSweeper(ctx, 10*time.Millisecond)

	require.GreaterOrEqual(t, restaurants.sweeps, 1)
}
