package order

import (
	"context"
	"fmt"

	"eats-marketplace/internal/database"
	"eats-marketplace/internal/models"
)

// PostgresStore implements Store over the shared connection pool
type PostgresStore struct {
	db *database.DB
}

// NewPostgresStore creates the order store
func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) InsertItem(ctx context.Context, dishID int64, options []models.SelectedOption) (int64, error) {
	if options == nil {
		options = []models.SelectedOption{}
	}
	var id int64
	err := s.db.QueryRow(ctx, database.InsertOrderItemSQL, dishID, options).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert order item: %w", err)
	}
	return id, nil
}

func (s *PostgresStore) InsertOrder(ctx context.Context, order *models.Order) (int64, error) {
	err := s.db.QueryRow(ctx, database.InsertOrderSQL,
		order.CustomerID, order.RestaurantID, order.Status, order.Total,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}
	return order.ID, nil
}

func (s *PostgresStore) AttachItems(ctx context.Context, orderID int64, itemIDs []int64) error {
	if err := s.db.Exec(ctx, database.AttachOrderItemsSQL, orderID, itemIDs); err != nil {
		return fmt.Errorf("failed to attach order items: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	var o models.Order
	err := s.db.QueryRow(ctx, database.GetOrderByIDSQL, id).Scan(
		&o.ID, &o.CustomerID, &o.RestaurantID, &o.DriverID, &o.Status, &o.Total,
		&o.CreatedAt, &o.UpdatedAt, &o.RestaurantOwnerID,
	)
	if err != nil {
		return nil, database.NotFound(err)
	}
	return &o, nil
}

func (s *PostgresStore) GetItems(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	rows, err := s.db.Query(ctx, database.GetOrderItemsSQL, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.DishID, &item.Options); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *PostgresStore) ListByCustomer(ctx context.Context, customerID int64, status *models.OrderStatus) ([]models.Order, error) {
	if status != nil {
		return s.listOrders(ctx, database.GetOrdersByCustomerStatusSQL, customerID, *status)
	}
	return s.listOrders(ctx, database.GetOrdersByCustomerSQL, customerID)
}

func (s *PostgresStore) ListByDriver(ctx context.Context, driverID int64, status *models.OrderStatus) ([]models.Order, error) {
	if status != nil {
		return s.listOrders(ctx, database.GetOrdersByDriverStatusSQL, driverID, *status)
	}
	return s.listOrders(ctx, database.GetOrdersByDriverSQL, driverID)
}

func (s *PostgresStore) ListByOwner(ctx context.Context, ownerID int64) ([]models.Order, error) {
	return s.listOrders(ctx, database.GetOrdersByOwnerSQL, ownerID)
}

func (s *PostgresStore) listOrders(ctx context.Context, sql string, args ...interface{}) ([]models.Order, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(
			&o.ID, &o.CustomerID, &o.RestaurantID, &o.DriverID, &o.Status, &o.Total,
			&o.CreatedAt, &o.UpdatedAt, &o.RestaurantOwnerID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (s *PostgresStore) UpdateStatus(ctx context.Context, orderID int64, status models.OrderStatus) error {
	if err := s.db.Exec(ctx, database.UpdateOrderStatusSQL, status, orderID); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return nil
}

func (s *PostgresStore) AddStatusLog(ctx context.Context, orderID int64, status models.OrderStatus, changedBy int64) error {
	if err := s.db.Exec(ctx, database.InsertOrderStatusLogSQL, orderID, status, changedBy); err != nil {
		return fmt.Errorf("failed to insert status log: %w", err)
	}
	return nil
}

func (s *PostgresStore) StatusHistory(ctx context.Context, orderID int64) ([]models.StatusLogEntry, error) {
	rows, err := s.db.Query(ctx, database.GetOrderStatusHistorySQL, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query status history: %w", err)
	}
	defer rows.Close()

	var history []models.StatusLogEntry
	for rows.Next() {
		var entry models.StatusLogEntry
		if err := rows.Scan(&entry.Status, &entry.ChangedBy, &entry.ChangedAt); err != nil {
			return nil, fmt.Errorf("failed to scan status log entry: %w", err)
		}
		history = append(history, entry)
	}
	return history, rows.Err()
}
