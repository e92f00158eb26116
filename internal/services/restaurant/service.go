package restaurant

import (
	"context"
	"errors"
	"time"

	"eats-marketplace/internal/database"
	"eats-marketplace/internal/logger"
	"eats-marketplace/internal/models"
)

// Store is the persistence boundary for the restaurant/dish catalog
type Store interface {
	InsertRestaurant(ctx context.Context, r *models.Restaurant) error
	UpdateRestaurant(ctx context.Context, r *models.Restaurant) error
	GetRestaurant(ctx context.Context, id int64) (*models.Restaurant, error)
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)
	InsertDish(ctx context.Context, d *models.Dish) error
	GetDish(ctx context.Context, id int64) (*models.Dish, error)
	Promote(ctx context.Context, restaurantID int64, until time.Time) error
	ClearExpiredPromotions(ctx context.Context) error
}

// Service manages the restaurant and dish catalog. Reads go through the
// cache when one is configured; writes invalidate it.
type Service struct {
	store  Store
	cache  *Cache
	logger *logger.Logger
}

// NewService creates the catalog service. The cache may be nil.
func NewService(store Store, cache *Cache, log *logger.Logger) *Service {
	return &Service{
		store:  store,
		cache:  cache,
		logger: log,
	}
}

// CreateRestaurant registers a restaurant owned by the actor
func (s *Service) CreateRestaurant(ctx context.Context, owner *models.User, req *models.CreateRestaurantRequest) *models.RestaurantOutput {
	requestID := logger.GenerateRequestID()

	r := &models.Restaurant{
		Name:       req.Name,
		Address:    req.Address,
		CoverImage: req.CoverImage,
		OwnerID:    owner.ID,
	}
	if err := s.store.InsertRestaurant(ctx, r); err != nil {
		s.logger.Error("restaurant_creation_failed", "Failed to persist restaurant", requestID, err, nil)
		return &models.RestaurantOutput{Success: false, Error: "Could not create restaurant"}
	}

	return &models.RestaurantOutput{Success: true, Restaurant: r}
}

// UpdateRestaurant edits a restaurant the actor owns
func (s *Service) UpdateRestaurant(ctx context.Context, owner *models.User, req *models.UpdateRestaurantRequest) *models.RestaurantOutput {
	requestID := logger.GenerateRequestID()

	r, err := s.store.GetRestaurant(ctx, req.ID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return &models.RestaurantOutput{Success: false, Error: "Restaurant Not Found"}
		}
		s.logger.Error("restaurant_update_failed", "Restaurant lookup failed", requestID, err, nil)
		return &models.RestaurantOutput{Success: false, Error: "Could not update restaurant"}
	}
	if r.OwnerID != owner.ID {
		return &models.RestaurantOutput{Success: false, Error: "Not Allowed to Access"}
	}

	if req.Name != "" {
		r.Name = req.Name
	}
	if req.Address != "" {
		r.Address = req.Address
	}
	if err := s.store.UpdateRestaurant(ctx, r); err != nil {
		s.logger.Error("restaurant_update_failed", "Failed to persist restaurant", requestID, err, nil)
		return &models.RestaurantOutput{Success: false, Error: "Could not update restaurant"}
	}

	s.invalidateRestaurant(ctx, r.ID)
	return &models.RestaurantOutput{Success: true, Restaurant: r}
}

// ListRestaurants returns the catalog, promoted restaurants first
func (s *Service) ListRestaurants(ctx context.Context) *models.RestaurantsOutput {
	requestID := logger.GenerateRequestID()

	restaurants, err := s.store.ListRestaurants(ctx)
	if err != nil {
		s.logger.Error("restaurants_load_failed", "Failed to load restaurants", requestID, err, nil)
		return &models.RestaurantsOutput{Success: false, Error: "Could not load restaurants"}
	}
	return &models.RestaurantsOutput{Success: true, Restaurants: restaurants}
}

// CreateDish adds a dish to a restaurant the actor owns
func (s *Service) CreateDish(ctx context.Context, owner *models.User, req *models.CreateDishRequest) *models.DishOutput {
	requestID := logger.GenerateRequestID()

	r, err := s.store.GetRestaurant(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return &models.DishOutput{Success: false, Error: "Restaurant Not Found"}
		}
		s.logger.Error("dish_creation_failed", "Restaurant lookup failed", requestID, err, nil)
		return &models.DishOutput{Success: false, Error: "Could not create dish"}
	}
	if r.OwnerID != owner.ID {
		return &models.DishOutput{Success: false, Error: "Not Allowed to Access"}
	}

	d := &models.Dish{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		RestaurantID: r.ID,
		Options:      req.Options,
	}
	if err := s.store.InsertDish(ctx, d); err != nil {
		s.logger.Error("dish_creation_failed", "Failed to persist dish", requestID, err, nil)
		return &models.DishOutput{Success: false, Error: "Could not create dish"}
	}

	return &models.DishOutput{Success: true, Dish: d}
}

// FindRestaurant resolves a restaurant reference, preferring the cache
func (s *Service) FindRestaurant(ctx context.Context, id int64) (*models.Restaurant, error) {
	if s.cache != nil {
		if r, err := s.cache.GetRestaurant(ctx, id); err == nil {
			return r, nil
		} else if !errors.Is(err, ErrCacheMiss) {
			s.logger.Error("cache_read_failed", "Restaurant cache read failed", "", err, map[string]interface{}{
				"restaurant_id": id,
			})
		}
	}

	r, err := s.store.GetRestaurant(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetRestaurant(ctx, r); err != nil {
			s.logger.Error("cache_write_failed", "Restaurant cache write failed", "", err, nil)
		}
	}
	return r, nil
}

// FindDish resolves a dish reference, preferring the cache
func (s *Service) FindDish(ctx context.Context, id int64) (*models.Dish, error) {
	if s.cache != nil {
		if d, err := s.cache.GetDish(ctx, id); err == nil {
			return d, nil
		} else if !errors.Is(err, ErrCacheMiss) {
			s.logger.Error("cache_read_failed", "Dish cache read failed", "", err, map[string]interface{}{
				"dish_id": id,
			})
		}
	}

	d, err := s.store.GetDish(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetDish(ctx, d); err != nil {
			s.logger.Error("cache_write_failed", "Dish cache write failed", "", err, nil)
		}
	}
	return d, nil
}

// Promote marks a restaurant promoted until the given time
func (s *Service) Promote(ctx context.Context, restaurantID int64, until time.Time) error {
	if err := s.store.Promote(ctx, restaurantID, until); err != nil {
		return err
	}
	s.invalidateRestaurant(ctx, restaurantID)
	return nil
}

// ClearExpiredPromotions unpromotes restaurants whose promotion lapsed
func (s *Service) ClearExpiredPromotions(ctx context.Context) error {
	return s.store.ClearExpiredPromotions(ctx)
}

func (s *Service) invalidateRestaurant(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateRestaurant(ctx, id); err != nil {
		s.logger.Error("cache_invalidate_failed", "Restaurant cache invalidation failed", "", err, map[string]interface{}{
			"restaurant_id": id,
		})
	}
}
