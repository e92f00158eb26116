package models

import (
	"fmt"
	"time"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusCooking   OrderStatus = "cooking"
	StatusCooked    OrderStatus = "cooked"
	StatusPickedUp  OrderStatus = "picked_up"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// SelectedOption is one customization picked by the customer for an
// order item. Choice is empty when the option has no choices.
type SelectedOption struct {
	Name   string `json:"name"`
	Choice string `json:"choice,omitempty"`
}

// OrderItem represents one dish instance within an order. The selected
// options are immutable once the order is placed.
type OrderItem struct {
	ID      int64            `json:"id,omitempty" db:"id"`
	OrderID int64            `json:"order_id,omitempty" db:"order_id"`
	DishID  int64            `json:"dish_id" db:"dish_id"`
	Options []SelectedOption `json:"options,omitempty" db:"options"`
}

// Order represents a customer's placed purchase against one restaurant
type Order struct {
	ID           int64       `json:"id,omitempty" db:"id"`
	CreatedAt    time.Time   `json:"created_at,omitempty" db:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at,omitempty" db:"updated_at"`
	CustomerID   int64       `json:"customer_id" db:"customer_id"`
	RestaurantID int64       `json:"restaurant_id" db:"restaurant_id"`
	DriverID     *int64      `json:"driver_id,omitempty" db:"driver_id"`
	Status       OrderStatus `json:"status" db:"status"`
	Total        float64     `json:"total" db:"total"`
	Items        []OrderItem `json:"items,omitempty"`

	// Populated on fetch for visibility checks, not a column of the
	// orders table itself.
	RestaurantOwnerID int64 `json:"-"`
}

// CreateOrderItem is one requested dish with its selected options
type CreateOrderItem struct {
	DishID  int64            `json:"dish_id"`
	Options []SelectedOption `json:"options,omitempty"`
}

// CreateOrderRequest represents the request to place an order
type CreateOrderRequest struct {
	RestaurantID int64             `json:"restaurant_id"`
	Items        []CreateOrderItem `json:"items"`
}

// CreateOrderOutput is the result of order placement
type CreateOrderOutput struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// GetOrdersOutput is the result of an order listing
type GetOrdersOutput struct {
	Success bool    `json:"success"`
	Error   string  `json:"error,omitempty"`
	Orders  []Order `json:"orders,omitempty"`
}

// GetOrderOutput is the result of a single-order lookup
type GetOrderOutput struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Order   *Order `json:"order,omitempty"`
}

// EditOrderRequest represents a requested status transition
type EditOrderRequest struct {
	ID     int64       `json:"id"`
	Status OrderStatus `json:"status"`
}

// EditOrderOutput is the result of a status transition
type EditOrderOutput struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// StatusLogEntry is one recorded status change of an order
type StatusLogEntry struct {
	Status    OrderStatus `json:"status" db:"status"`
	ChangedBy int64       `json:"changed_by" db:"changed_by"`
	ChangedAt time.Time   `json:"changed_at" db:"changed_at"`
}

// ParseOrderStatus validates a status string coming from a request
func ParseOrderStatus(status string) (OrderStatus, error) {
	switch OrderStatus(status) {
	case StatusPending, StatusCooking, StatusCooked, StatusPickedUp, StatusDelivered, StatusCancelled:
		return OrderStatus(status), nil
	default:
		return "", fmt.Errorf("status must be one of: pending, cooking, cooked, picked_up, delivered, cancelled")
	}
}

// Validate checks the create order request fields
func (req *CreateOrderRequest) Validate() error {
	if req.RestaurantID <= 0 {
		return fmt.Errorf("restaurant_id is required")
	}
	if len(req.Items) == 0 {
		return fmt.Errorf("items array cannot be empty")
	}
	if len(req.Items) > 20 {
		return fmt.Errorf("items array cannot contain more than 20 items")
	}
	for i, item := range req.Items {
		if item.DishID <= 0 {
			return fmt.Errorf("items[%d].dish_id is required", i)
		}
	}
	return nil
}
