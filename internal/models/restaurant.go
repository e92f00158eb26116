package models

import (
	"fmt"
	"time"
)

// Restaurant represents a restaurant in the catalog
type Restaurant struct {
	ID            int64      `json:"id,omitempty" db:"id"`
	CreatedAt     time.Time  `json:"created_at,omitempty" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at,omitempty" db:"updated_at"`
	Name          string     `json:"name" db:"name"`
	Address       string     `json:"address" db:"address"`
	CoverImage    string     `json:"cover_image,omitempty" db:"cover_image"`
	OwnerID       int64      `json:"owner_id" db:"owner_id"`
	Promoted      bool       `json:"promoted" db:"promoted"`
	PromotedUntil *time.Time `json:"promoted_until,omitempty" db:"promoted_until"`
}

// DishChoice is a named selection within a dish option, optionally
// carrying an additional cost
type DishChoice struct {
	Name  string  `json:"name"`
	Extra float64 `json:"extra,omitempty"`
}

// DishOption is a named customization on a dish. It may carry its own
// extra cost and may offer a list of choices with their own extras.
type DishOption struct {
	Name    string       `json:"name"`
	Extra   float64      `json:"extra,omitempty"`
	Choices []DishChoice `json:"choices,omitempty"`
}

// Dish represents a catalog item belonging to a restaurant
type Dish struct {
	ID           int64        `json:"id,omitempty" db:"id"`
	CreatedAt    time.Time    `json:"created_at,omitempty" db:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at,omitempty" db:"updated_at"`
	Name         string       `json:"name" db:"name"`
	Description  string       `json:"description,omitempty" db:"description"`
	Price        float64      `json:"price" db:"price"`
	RestaurantID int64        `json:"restaurant_id" db:"restaurant_id"`
	Options      []DishOption `json:"options,omitempty" db:"options"`
}

// CreateRestaurantRequest represents the request to register a restaurant
type CreateRestaurantRequest struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	CoverImage string `json:"cover_image,omitempty"`
}

// UpdateRestaurantRequest represents a partial restaurant update
type UpdateRestaurantRequest struct {
	ID      int64  `json:"id"`
	Name    string `json:"name,omitempty"`
	Address string `json:"address,omitempty"`
}

// RestaurantOutput is the result of a single-restaurant operation
type RestaurantOutput struct {
	Success    bool        `json:"success"`
	Error      string      `json:"error,omitempty"`
	Restaurant *Restaurant `json:"restaurant,omitempty"`
}

// RestaurantsOutput is the result of a restaurant listing
type RestaurantsOutput struct {
	Success     bool         `json:"success"`
	Error       string       `json:"error,omitempty"`
	Restaurants []Restaurant `json:"restaurants,omitempty"`
}

// CreateDishRequest represents the request to add a dish to a restaurant
type CreateDishRequest struct {
	RestaurantID int64        `json:"restaurant_id"`
	Name         string       `json:"name"`
	Description  string       `json:"description,omitempty"`
	Price        float64      `json:"price"`
	Options      []DishOption `json:"options,omitempty"`
}

// DishOutput is the result of a single-dish operation
type DishOutput struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Dish    *Dish  `json:"dish,omitempty"`
}

// Validate checks the create restaurant request fields
func (req *CreateRestaurantRequest) Validate() error {
	if req.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(req.Name) > 100 {
		return fmt.Errorf("name must not exceed 100 characters")
	}
	if req.Address == "" {
		return fmt.Errorf("address is required")
	}
	return nil
}

// Validate checks the create dish request fields
func (req *CreateDishRequest) Validate() error {
	if req.RestaurantID <= 0 {
		return fmt.Errorf("restaurant_id is required")
	}
	if req.Name == "" {
		return fmt.Errorf("name is required")
	}
	if req.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	return nil
}
