package models

import "time"

// CourierStatus represents the availability of a courier
type CourierStatus string

const (
	CourierOnline  CourierStatus = "online"
	CourierOffline CourierStatus = "offline"
)

// Courier represents a registered delivery partner running a dispatch worker
type Courier struct {
	ID             int64         `json:"id,omitempty" db:"id"`
	UserID         int64         `json:"user_id" db:"user_id"`
	Name           string        `json:"name" db:"name"`
	Status         CourierStatus `json:"status" db:"status"`
	LastSeen       time.Time     `json:"last_seen" db:"last_seen"`
	OrdersAssigned int           `json:"orders_assigned" db:"orders_assigned"`
	CreatedAt      time.Time     `json:"created_at,omitempty" db:"created_at"`
}
