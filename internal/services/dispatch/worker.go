package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"eats-marketplace/internal/database"
	"eats-marketplace/internal/logger"
	"eats-marketplace/internal/messaging"
	"eats-marketplace/internal/models"
)

// Worker is a courier-side agent: it registers the courier, consumes
// cooked-order events, and claims orders for delivery.
type Worker struct {
	courierName       string
	courierUserID     int64
	heartbeatInterval time.Duration

	db        *database.DB
	consumer  *messaging.Consumer
	publisher *messaging.Publisher
	logger    *logger.Logger
}

// NewWorker creates a dispatch worker for one courier
func NewWorker(courierName string, courierUserID int64, heartbeatInterval time.Duration,
	db *database.DB, consumer *messaging.Consumer, publisher *messaging.Publisher, log *logger.Logger) *Worker {

	return &Worker{
		courierName:       courierName,
		courierUserID:     courierUserID,
		heartbeatInterval: heartbeatInterval,
		db:                db,
		consumer:          consumer,
		publisher:         publisher,
		logger:            log,
	}
}

// Start registers the courier and consumes cooked orders until the
// context is cancelled.
func (w *Worker) Start(ctx context.Context) error {
	requestID := logger.GenerateRequestID()

	if err := w.registerCourier(ctx, requestID); err != nil {
		return fmt.Errorf("failed to register courier: %w", err)
	}

	go w.heartbeatLoop(ctx)

	w.logger.Info("worker_started", fmt.Sprintf("Dispatch worker %s started", w.courierName), requestID, map[string]interface{}{
		"courier_name":       w.courierName,
		"courier_user_id":    w.courierUserID,
		"heartbeat_interval": w.heartbeatInterval.Seconds(),
	})

	err := w.consumer.StartConsuming(ctx, w.handleCookedOrder)

	w.goOffline(requestID)

	if err != nil && err != context.Canceled {
		return err
	}
	return nil
}

// registerCourier registers the courier row, refusing duplicate names
func (w *Worker) registerCourier(ctx context.Context, requestID string) error {
	var count int
	if err := w.db.QueryRow(ctx, database.CheckCourierOnlineSQL, w.courierName).Scan(&count); err != nil {
		return fmt.Errorf("failed to check courier status: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("courier %s is already online", w.courierName)
	}

	var courierID int64
	if err := w.db.QueryRow(ctx, database.InsertCourierSQL, w.courierUserID, w.courierName).Scan(&courierID); err != nil {
		return fmt.Errorf("failed to register courier: %w", err)
	}

	w.logger.Info("courier_registered", fmt.Sprintf("Courier %s registered", w.courierName), requestID, map[string]interface{}{
		"courier_id":   courierID,
		"courier_name": w.courierName,
	})
	return nil
}

// handleCookedOrder claims a cooked order for this courier. Orders
// already claimed by another courier are acknowledged and skipped.
func (w *Worker) handleCookedOrder(ctx context.Context, body []byte) error {
	requestID := logger.GenerateRequestID()

	var msg models.OrderUpdateMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		w.logger.Error("message_parsing_failed", "Failed to parse cooked order message", requestID, err, nil)
		return fmt.Errorf("failed to parse message: %w", err)
	}
	if msg.Order == nil {
		return fmt.Errorf("cooked order message has no order")
	}

	tag, err := w.db.Pool.Exec(ctx, database.ClaimOrderDriverSQL, w.courierUserID, msg.Order.ID)
	if err != nil {
		return fmt.Errorf("failed to claim order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		w.logger.Debug("order_already_claimed", fmt.Sprintf("Order %d already has a driver", msg.Order.ID), requestID, map[string]interface{}{
			"order_id": msg.Order.ID,
		})
		return nil
	}

	if err := w.db.Exec(ctx, database.UpdateCourierHeartbeatSQL, 1, w.courierName); err != nil {
		w.logger.Error("heartbeat_failed", "Failed to bump assignment count", requestID, err, nil)
	}

	claimed := *msg.Order
	claimed.DriverID = &w.courierUserID

	if err := w.publisher.PublishOrderUpdate(ctx, models.NewOrderUpdateMessage(&claimed)); err != nil {
		w.logger.Error("event_publish_failed", "Failed to publish driver assignment", requestID, err, map[string]interface{}{
			"order_id": claimed.ID,
		})
	}

	w.logger.Info("order_claimed", fmt.Sprintf("Courier %s claimed order %d", w.courierName, claimed.ID), requestID, map[string]interface{}{
		"order_id":     claimed.ID,
		"courier_name": w.courierName,
	})
	return nil
}

// heartbeatLoop keeps the courier row fresh while the worker runs
func (w *Worker) heartbeatLoop(ctx context.Context) {
	ticker := time.NewTicker(w.heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.db.Exec(ctx, database.UpdateCourierHeartbeatSQL, 0, w.courierName); err != nil {
				w.logger.Error("heartbeat_failed", "Failed to update courier heartbeat", "", err, nil)
			}
		}
	}
}

// goOffline marks the courier offline on shutdown
func (w *Worker) goOffline(requestID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := w.db.Exec(ctx, database.UpdateCourierStatusSQL, models.CourierOffline, w.courierName); err != nil {
		w.logger.Error("courier_offline_failed", "Failed to mark courier offline", requestID, err, nil)
		return
	}
	w.logger.Info("courier_offline", fmt.Sprintf("Courier %s went offline", w.courierName), requestID, nil)
}
