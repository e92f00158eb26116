package models

import (
	"fmt"
	"time"
)

// Payment represents a promotion payment made by a restaurant owner
type Payment struct {
	ID            int64     `json:"id,omitempty" db:"id"`
	CreatedAt     time.Time `json:"created_at,omitempty" db:"created_at"`
	TransactionID string    `json:"transaction_id" db:"transaction_id"`
	UserID        int64     `json:"user_id" db:"user_id"`
	RestaurantID  int64     `json:"restaurant_id" db:"restaurant_id"`
}

// CreatePaymentRequest represents the request to record a payment
type CreatePaymentRequest struct {
	TransactionID string `json:"transaction_id"`
	RestaurantID  int64  `json:"restaurant_id"`
}

// CreatePaymentOutput is the result of payment creation
type CreatePaymentOutput struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// GetPaymentsOutput is the result of a payment listing
type GetPaymentsOutput struct {
	Success  bool      `json:"success"`
	Error    string    `json:"error,omitempty"`
	Payments []Payment `json:"payments,omitempty"`
}

// Validate checks the create payment request fields
func (req *CreatePaymentRequest) Validate() error {
	if req.TransactionID == "" {
		return fmt.Errorf("transaction_id is required")
	}
	if req.RestaurantID <= 0 {
		return fmt.Errorf("restaurant_id is required")
	}
	return nil
}
