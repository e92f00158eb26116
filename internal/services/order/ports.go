package order

import (
	"context"

	"eats-marketplace/internal/models"
)

// Store is the persistence boundary for orders and their line items
type Store interface {
	InsertItem(ctx context.Context, dishID int64, options []models.SelectedOption) (int64, error)
	InsertOrder(ctx context.Context, order *models.Order) (int64, error)
	AttachItems(ctx context.Context, orderID int64, itemIDs []int64) error
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	GetItems(ctx context.Context, orderID int64) ([]models.OrderItem, error)
	ListByCustomer(ctx context.Context, customerID int64, status *models.OrderStatus) ([]models.Order, error)
	ListByDriver(ctx context.Context, driverID int64, status *models.OrderStatus) ([]models.Order, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]models.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status models.OrderStatus) error
	AddStatusLog(ctx context.Context, orderID int64, status models.OrderStatus, changedBy int64) error
	StatusHistory(ctx context.Context, orderID int64) ([]models.StatusLogEntry, error)
}

// Catalog resolves the restaurant and dish references an order carries
type Catalog interface {
	FindRestaurant(ctx context.Context, id int64) (*models.Restaurant, error)
	FindDish(ctx context.Context, id int64) (*models.Dish, error)
}

// EventPublisher pushes lifecycle notifications to subscribers. Publishing
// is best-effort: the service logs failures and never surfaces them to
// callers.
type EventPublisher interface {
	PublishPendingOrder(ctx context.Context, msg *models.PendingOrderMessage) error
	PublishCookedOrder(ctx context.Context, msg *models.OrderUpdateMessage) error
	PublishOrderUpdate(ctx context.Context, msg *models.OrderUpdateMessage) error
}
