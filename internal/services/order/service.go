package order

import (
	"context"
	"errors"

	"eats-marketplace/internal/database"
	"eats-marketplace/internal/logger"
	"eats-marketplace/internal/models"
)

// Service orchestrates the order lifecycle: creation with pricing,
// role-filtered retrieval, and authorized status transitions with
// event fan-out.
type Service struct {
	store   Store
	catalog Catalog
	events  EventPublisher
	logger  *logger.Logger
}

// NewService creates the order service. The event publisher is injected
// so tests can substitute a recording implementation.
func NewService(store Store, catalog Catalog, events EventPublisher, log *logger.Logger) *Service {
	return &Service{
		store:   store,
		catalog: catalog,
		events:  events,
		logger:  log,
	}
}

// CreateOrder places an order for the customer: prices every item from
// the dish's base price and selected extras, persists the line items and
// the order in pending status, and notifies owner-side subscribers.
//
// There is no transaction across the item and order saves; a failure
// partway leaves unattached item rows behind. That mirrors the observed
// behavior of the persistence layer this service grew out of.
func (s *Service) CreateOrder(ctx context.Context, customer *models.User, req *models.CreateOrderRequest) *models.CreateOrderOutput {
	requestID := logger.GenerateRequestID()

	restaurant, err := s.catalog.FindRestaurant(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return &models.CreateOrderOutput{Success: false, Error: "Restaurant Not Found"}
		}
		s.logger.Error("order_creation_failed", "Restaurant lookup failed", requestID, err, nil)
		return &models.CreateOrderOutput{Success: false, Error: "Could not create an order"}
	}

	var (
		total   float64
		itemIDs []int64
	)

	for _, item := range req.Items {
		dish, err := s.catalog.FindDish(ctx, item.DishID)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return &models.CreateOrderOutput{Success: false, Error: "Dish Not Found"}
			}
			s.logger.Error("order_creation_failed", "Dish lookup failed", requestID, err, map[string]interface{}{
				"dish_id": item.DishID,
			})
			return &models.CreateOrderOutput{Success: false, Error: "Could not create an order"}
		}

		total += ComputeItemPrice(dish, item.Options)

		itemID, err := s.store.InsertItem(ctx, dish.ID, item.Options)
		if err != nil {
			s.logger.Error("order_creation_failed", "Failed to persist order item", requestID, err, map[string]interface{}{
				"dish_id": dish.ID,
			})
			return &models.CreateOrderOutput{Success: false, Error: "Could not create an order"}
		}
		itemIDs = append(itemIDs, itemID)
	}

	newOrder := &models.Order{
		CustomerID:   customer.ID,
		RestaurantID: restaurant.ID,
		Status:       models.StatusPending,
		Total:        total,
	}

	orderID, err := s.store.InsertOrder(ctx, newOrder)
	if err != nil {
		s.logger.Error("order_creation_failed", "Failed to persist order", requestID, err, nil)
		return &models.CreateOrderOutput{Success: false, Error: "Could not create an order"}
	}
	newOrder.ID = orderID

	if err := s.store.AttachItems(ctx, orderID, itemIDs); err != nil {
		s.logger.Error("order_creation_failed", "Failed to attach order items", requestID, err, map[string]interface{}{
			"order_id": orderID,
		})
		return &models.CreateOrderOutput{Success: false, Error: "Could not create an order"}
	}

	if err := s.store.AddStatusLog(ctx, orderID, models.StatusPending, customer.ID); err != nil {
		s.logger.Error("status_log_failed", "Failed to record initial status", requestID, err, map[string]interface{}{
			"order_id": orderID,
		})
	}

	if err := s.events.PublishPendingOrder(ctx, &models.PendingOrderMessage{
		Order:   newOrder,
		OwnerID: restaurant.OwnerID,
	}); err != nil {
		s.logger.Error("event_publish_failed", "Failed to publish pending order event", requestID, err, map[string]interface{}{
			"order_id": orderID,
		})
	}

	s.logger.Info("order_created", "Order placed", requestID, map[string]interface{}{
		"order_id":      orderID,
		"restaurant_id": restaurant.ID,
		"total":         total,
	})

	return &models.CreateOrderOutput{Success: true}
}

// GetOrders lists the orders visible to the actor: clients see orders
// they placed, drivers the orders assigned to them, owners the union of
// orders across the restaurants they own. The owner path filters by
// status after fetching the union.
func (s *Service) GetOrders(ctx context.Context, user *models.User, status *models.OrderStatus) *models.GetOrdersOutput {
	requestID := logger.GenerateRequestID()

	var (
		orders []models.Order
		err    error
	)

	switch user.Role {
	case models.RoleClient:
		orders, err = s.store.ListByCustomer(ctx, user.ID, status)
	case models.RoleDelivery:
		orders, err = s.store.ListByDriver(ctx, user.ID, status)
	case models.RoleOwner:
		orders, err = s.store.ListByOwner(ctx, user.ID)
		if err == nil && status != nil {
			filtered := orders[:0]
			for _, o := range orders {
				if o.Status == *status {
					filtered = append(filtered, o)
				}
			}
			orders = filtered
		}
	}

	if err != nil {
		s.logger.Error("orders_load_failed", "Failed to load orders", requestID, err, map[string]interface{}{
			"role": user.Role,
		})
		return &models.GetOrdersOutput{Success: false, Error: "Could not load orders"}
	}

	return &models.GetOrdersOutput{Success: true, Orders: orders}
}

// GetOrder fetches one order with its items, enforcing visibility.
func (s *Service) GetOrder(ctx context.Context, user *models.User, id int64) *models.GetOrderOutput {
	requestID := logger.GenerateRequestID()

	o, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return &models.GetOrderOutput{Success: false, Error: "Order Not Found"}
		}
		s.logger.Error("order_load_failed", "Failed to load order", requestID, err, map[string]interface{}{
			"order_id": id,
		})
		return &models.GetOrderOutput{Success: false, Error: "Could not load the order"}
	}

	if !CanView(user, o) {
		return &models.GetOrderOutput{Success: false, Error: "Order Not Allowed to Access"}
	}

	items, err := s.store.GetItems(ctx, o.ID)
	if err != nil {
		s.logger.Error("order_load_failed", "Failed to load order items", requestID, err, map[string]interface{}{
			"order_id": id,
		})
		return &models.GetOrderOutput{Success: false, Error: "Could not load the order"}
	}
	o.Items = items

	return &models.GetOrderOutput{Success: true, Order: o}
}

// EditOrder applies a requested status transition: the actor must be
// able to view the order and the (role, current, requested) triple must
// appear in the transition table. The status change is a partial update
// by id. An owner marking an order cooked additionally notifies delivery
// partners; every successful transition fans out an order update.
func (s *Service) EditOrder(ctx context.Context, user *models.User, req *models.EditOrderRequest) *models.EditOrderOutput {
	requestID := logger.GenerateRequestID()

	o, err := s.store.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return &models.EditOrderOutput{Success: false, Error: "Order Not Found"}
		}
		s.logger.Error("order_edit_failed", "Failed to load order", requestID, err, map[string]interface{}{
			"order_id": req.ID,
		})
		return &models.EditOrderOutput{Success: false, Error: "Could not edit the order"}
	}

	if !CanView(user, o) {
		return &models.EditOrderOutput{Success: false, Error: "Order Not Allowed to Access"}
	}

	if !CanTransition(user.Role, o.Status, req.Status) {
		return &models.EditOrderOutput{Success: false, Error: "Not allowed to update status"}
	}

	if err := s.store.UpdateStatus(ctx, o.ID, req.Status); err != nil {
		s.logger.Error("order_edit_failed", "Failed to update order status", requestID, err, map[string]interface{}{
			"order_id": o.ID,
			"status":   req.Status,
		})
		return &models.EditOrderOutput{Success: false, Error: "Could not edit the order"}
	}

	if err := s.store.AddStatusLog(ctx, o.ID, req.Status, user.ID); err != nil {
		s.logger.Error("status_log_failed", "Failed to record status change", requestID, err, map[string]interface{}{
			"order_id": o.ID,
		})
	}

	updated := *o
	updated.Status = req.Status

	if user.Role == models.RoleOwner && req.Status == models.StatusCooked {
		if err := s.events.PublishCookedOrder(ctx, models.NewOrderUpdateMessage(&updated)); err != nil {
			s.logger.Error("event_publish_failed", "Failed to publish cooked order event", requestID, err, map[string]interface{}{
				"order_id": o.ID,
			})
		}
	}

	if err := s.events.PublishOrderUpdate(ctx, models.NewOrderUpdateMessage(&updated)); err != nil {
		s.logger.Error("event_publish_failed", "Failed to publish order update event", requestID, err, map[string]interface{}{
			"order_id": o.ID,
		})
	}

	s.logger.Info("order_status_changed", "Order status updated", requestID, map[string]interface{}{
		"order_id":   o.ID,
		"old_status": o.Status,
		"new_status": req.Status,
		"changed_by": user.ID,
	})

	return &models.EditOrderOutput{Success: true}
}

// StatusHistory returns the recorded status changes of an order the
// actor may view.
func (s *Service) StatusHistory(ctx context.Context, user *models.User, id int64) ([]models.StatusLogEntry, string) {
	o, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, "Order Not Found"
		}
		return nil, "Could not load the order"
	}
	if !CanView(user, o) {
		return nil, "Order Not Allowed to Access"
	}
	history, err := s.store.StatusHistory(ctx, id)
	if err != nil {
		return nil, "Could not load the order"
	}
	return history, ""
}
