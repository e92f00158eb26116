package models

import "time"

// Event bus topics for order lifecycle notifications.
const (
	TopicPendingOrder = "order.pending"
	TopicCookedOrder  = "order.cooked"
	TopicOrderUpdated = "order.updated"
)

// PendingOrderMessage notifies owner-side subscribers of new work
type PendingOrderMessage struct {
	Order   *Order `json:"order"`
	OwnerID int64  `json:"owner_id"`
}

// OrderUpdateMessage carries the updated order for anyone tracking it.
// The same shape serves cooked-order notifications to delivery partners.
type OrderUpdateMessage struct {
	Order     *Order    `json:"order"`
	Timestamp time.Time `json:"timestamp"`
}

// NewOrderUpdateMessage builds an update message stamped with the current time
func NewOrderUpdateMessage(order *Order) *OrderUpdateMessage {
	return &OrderUpdateMessage{
		Order:     order,
		Timestamp: time.Now().UTC(),
	}
}
