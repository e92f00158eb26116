package restaurant

import (
	"context"
	"fmt"
	"time"

	"eats-marketplace/internal/database"
	"eats-marketplace/internal/models"
)

// PostgresStore implements Store over the shared connection pool
type PostgresStore struct {
	db *database.DB
}

// NewPostgresStore creates the catalog store
func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) InsertRestaurant(ctx context.Context, r *models.Restaurant) error {
	err := s.db.QueryRow(ctx, database.InsertRestaurantSQL,
		r.Name, r.Address, r.CoverImage, r.OwnerID,
	).Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert restaurant: %w", err)
	}
	return nil
}

func (s *PostgresStore) UpdateRestaurant(ctx context.Context, r *models.Restaurant) error {
	if err := s.db.Exec(ctx, database.UpdateRestaurantSQL, r.Name, r.Address, r.ID); err != nil {
		return fmt.Errorf("failed to update restaurant: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetRestaurant(ctx context.Context, id int64) (*models.Restaurant, error) {
	var r models.Restaurant
	err := s.db.QueryRow(ctx, database.GetRestaurantByIDSQL, id).Scan(
		&r.ID, &r.Name, &r.Address, &r.CoverImage, &r.OwnerID,
		&r.Promoted, &r.PromotedUntil, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, database.NotFound(err)
	}
	return &r, nil
}

func (s *PostgresStore) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	rows, err := s.db.Query(ctx, database.GetAllRestaurantsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query restaurants: %w", err)
	}
	defer rows.Close()

	var restaurants []models.Restaurant
	for rows.Next() {
		var r models.Restaurant
		if err := rows.Scan(
			&r.ID, &r.Name, &r.Address, &r.CoverImage, &r.OwnerID,
			&r.Promoted, &r.PromotedUntil, &r.CreatedAt, &r.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan restaurant: %w", err)
		}
		restaurants = append(restaurants, r)
	}
	return restaurants, rows.Err()
}

func (s *PostgresStore) Promote(ctx context.Context, restaurantID int64, until time.Time) error {
	if err := s.db.Exec(ctx, database.PromoteRestaurantSQL, until, restaurantID); err != nil {
		return fmt.Errorf("failed to promote restaurant: %w", err)
	}
	return nil
}

func (s *PostgresStore) ClearExpiredPromotions(ctx context.Context) error {
	if err := s.db.Exec(ctx, database.ClearExpiredPromotionsSQL); err != nil {
		return fmt.Errorf("failed to clear expired promotions: %w", err)
	}
	return nil
}

func (s *PostgresStore) InsertDish(ctx context.Context, d *models.Dish) error {
	if d.Options == nil {
		d.Options = []models.DishOption{}
	}
	err := s.db.QueryRow(ctx, database.InsertDishSQL,
		d.Name, d.Description, d.Price, d.RestaurantID, d.Options,
	).Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert dish: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetDish(ctx context.Context, id int64) (*models.Dish, error) {
	var d models.Dish
	err := s.db.QueryRow(ctx, database.GetDishByIDSQL, id).Scan(
		&d.ID, &d.Name, &d.Description, &d.Price, &d.RestaurantID,
		&d.Options, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, database.NotFound(err)
	}
	return &d, nil
}
