package restaurant

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
	restaurants map[int64]*models.Restaurant
	nextRestID  int64
	dishes      map[int64]*models.Dish
	nextDishID  int64
	sweeps      int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		restaurants: map[int64]*models.Restaurant{},
		dishes:      map[int64]*models.Dish{},
	}
}

func (s *fakeStore) InsertRestaurant(_ context.Context, r *models.Restaurant) error {
	s.nextRestID++
	r.ID = s.nextRestID
	saved := *r
	s.restaurants[r.ID] = &saved
	return nil
}

func (s *fakeStore) UpdateRestaurant(_ context.Context, r *models.Restaurant) error {
	saved := *r
	s.restaurants[r.ID] = &saved
	return nil
}

func (s *fakeStore) GetRestaurant(_ context.Context, id int64) (*models.Restaurant, error) {
	r, ok := s.restaurants[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	copied := *r
	return &copied, nil
}

func (s *fakeStore) ListRestaurants(_ context.Context) ([]models.Restaurant, error) {
	var out []models.Restaurant
	for _, r := range s.restaurants {
		out = append(out, *r)
	}
	return out, nil
}

func (s *fakeStore) InsertDish(_ context.Context, d *models.Dish) error {
	s.nextDishID++
	d.ID = s.nextDishID
	saved := *d
	s.dishes[d.ID] = &saved
	return nil
}

func (s *fakeStore) GetDish(_ context.Context, id int64) (*models.Dish, error) {
	d, ok := s.dishes[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	copied := *d
	return &copied, nil
}

func (s *fakeStore) Promote(_ context.Context, restaurantID int64, until time.Time) error {
	if r, ok := s.restaurants[restaurantID]; ok {
		r.Promoted = true
		r.PromotedUntil = &until
	}
	return nil
}

func (s *fakeStore) ClearExpiredPromotions(_ context.Context) error {
	s.sweeps++
	return nil
}

func newTestService() (*Service, *fakeStore) {
	store := newFakeStore()
	svc := NewService(store, nil, logger.New("catalog-test"))
	return svc, store
}

func TestCreateRestaurant(t *testing.T) {
	svc, store := newTestService()
	owner := &models.User{ID: 20, Role: models.RoleOwner}

	out := svc.CreateRestaurant(context.Background(), owner, &models.CreateRestaurantRequest{
		Name:    "Pizzeria",
		Address: "123 Main St",
	})

	require.True(t, out.Success)
	require.NotNil(t, out.Restaurant)
	require.Equal(t, int64(20), out.Restaurant.OwnerID)
	require.Len(t, store.restaurants, 1)
}

func TestUpdateRestaurant(t *testing.T) {
	svc, store := newTestService()
	owner := &models.User{ID: 20, Role: models.RoleOwner}

	created := svc.CreateRestaurant(context.Background(), owner, &models.CreateRestaurantRequest{
		Name:    "Pizzeria",
		Address: "123 Main St",
	})
	require.True(t, created.Success)
	id := created.Restaurant.ID

	out := svc.UpdateRestaurant(context.Background(), owner, &models.UpdateRestaurantRequest{
		ID:   id,
		Name: "New Pizzeria",
	})

	require.True(t, out.Success)
	require.Equal(t, "New Pizzeria", store.restaurants[id].Name)
	require.Equal(t, "123 Main St", store.restaurants[id].Address)
}

func TestUpdateRestaurantDenied(t *testing.T) {
	svc, store := newTestService()
	owner := &models.User{ID: 20, Role: models.RoleOwner}

	created := svc.CreateRestaurant(context.Background(), owner, &models.CreateRestaurantRequest{
		Name: "Pizzeria", Address: "123 Main St",
	})
	require.True(t, created.Success)

	out := svc.UpdateRestaurant(context.Background(), &models.User{ID: 21, Role: models.RoleOwner},
		&models.UpdateRestaurantRequest{ID: created.Restaurant.ID, Name: "Hijacked"})

	require.False(t, out.Success)
	require.Equal(t, "Not Allowed to Access", out.Error)
	require.Equal(t, "Pizzeria", store.restaurants[created.Restaurant.ID].Name)

	out = svc.UpdateRestaurant(context.Background(), owner, &models.UpdateRestaurantRequest{ID: 99, Name: "Ghost"})
	require.False(t, out.Success)
	require.Equal(t, "Restaurant Not Found", out.Error)
}

func TestCreateDish(t *testing.T) {
	svc, store := newTestService()
	owner := &models.User{ID: 20, Role: models.RoleOwner}

	created := svc.CreateRestaurant(context.Background(), owner, &models.CreateRestaurantRequest{
		Name: "Pizzeria", Address: "123 Main St",
	})
	require.True(t, created.Success)

	out := svc.CreateDish(context.Background(), owner, &models.CreateDishRequest{
		RestaurantID: created.Restaurant.ID,
		Name:         "Pizza",
		Price:        10,
		Options: []models.DishOption{
			{Name: "Size", Extra: 2, Choices: []models.DishChoice{{Name: "Large", Extra: 3}}},
		},
	})

	require.True(t, out.Success)
	require.NotNil(t, out.Dish)
	require.Equal(t, created.Restaurant.ID, out.Dish.RestaurantID)
	require.Len(t, store.dishes, 1)

	denied := svc.CreateDish(context.Background(), &models.User{ID: 21, Role: models.RoleOwner},
		&models.CreateDishRequest{RestaurantID: created.Restaurant.ID, Name: "Burger", Price: 8})
	require.False(t, denied.Success)
	require.Equal(t, "Not Allowed to Access", denied.Error)
}

func TestFindRestaurantAndDishWithoutCache(t *testing.T) {
	svc, store := newTestService()
	store.restaurants[5] = &models.Restaurant{ID: 5, Name: "Pizzeria", OwnerID: 20}
	store.dishes[1] = &models.Dish{ID: 1, Name: "Pizza", Price: 10, RestaurantID: 5}

	r, err := svc.FindRestaurant(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, "Pizzeria", r.Name)

	d, err := svc.FindDish(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "Pizza", d.Name)

	_, err = svc.FindRestaurant(context.Background(), 99)
	require.ErrorIs(t, err, database.ErrNotFound)

	_, err = svc.FindDish(context.Background(), 99)
	require.ErrorIs(t, err, database.ErrNotFound)
}

func TestPromote(t *testing.T) {
	svc, store := newTestService()
	store.restaurants[5] = &models.Restaurant{ID: 5, Name: "Pizzeria", OwnerID: 20}

	until := time.Now().UTC().Add(7 * 24 * time.Hour)
	require.NoError(t, svc.Promote(context.Background(), 5, until))

	require.True(t, store.restaurants[5].Promoted)
	require.NotNil(t, store.restaurants[5].PromotedUntil)

	require.NoError(t, svc.ClearExpiredPromotions(context.Background()))
	require.Equal(t, 1, store.sweeps)
}
