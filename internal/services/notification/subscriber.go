package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"eats-marketplace/internal/logger"
	"eats-marketplace/internal/messaging"
	"eats-marketplace/internal/models"
)

// Subscriber consumes order update events and renders them as
// human-readable notifications.
type Subscriber struct {
	consumer *messaging.Consumer
	logger   *logger.Logger
}

// NewSubscriber creates a notification subscriber
func NewSubscriber(consumer *messaging.Consumer, log *logger.Logger) *Subscriber {
	return &Subscriber{
		consumer: consumer,
		logger:   log,
	}
}

// Start consumes order updates until the context is cancelled
func (s *Subscriber) Start(ctx context.Context) error {
	requestID := logger.GenerateRequestID()
	s.logger.Info("service_started", "Notification subscriber started", requestID, nil)

	err := s.consumer.StartConsuming(ctx, s.handleOrderUpdate)
	if err != nil && err != context.Canceled {
		return err
	}
	return nil
}

// handleOrderUpdate processes one order update event
func (s *Subscriber) handleOrderUpdate(ctx context.Context, body []byte) error {
	requestID := logger.GenerateRequestID()

	var msg models.OrderUpdateMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		s.logger.Error("message_parsing_failed", "Failed to parse order update message", requestID, err, nil)
		return fmt.Errorf("failed to parse notification: %w", err)
	}
	if msg.Order == nil {
		return fmt.Errorf("order update message has no order")
	}

	fmt.Println(FormatNotification(&msg))

	s.logger.Debug("notification_displayed", "Order update displayed", requestID, map[string]interface{}{
		"order_id": msg.Order.ID,
		"status":   msg.Order.Status,
	})
	return nil
}

// FormatNotification creates a human-readable line for an order update
func FormatNotification(msg *models.OrderUpdateMessage) string {
	timestamp := msg.Timestamp.Format("2006-01-02 15:04:05")
	o := msg.Order

	switch o.Status {
	case models.StatusPending:
		return fmt.Sprintf("[%s] Order #%d was placed and is waiting for the restaurant.", timestamp, o.ID)
	case models.StatusCooking:
		return fmt.Sprintf("[%s] Order #%d is being prepared.", timestamp, o.ID)
	case models.StatusCooked:
		return fmt.Sprintf("[%s] Order #%d is cooked and waiting for pickup.", timestamp, o.ID)
	case models.StatusPickedUp:
		return fmt.Sprintf("[%s] Order #%d was picked up and is on its way.", timestamp, o.ID)
	case models.StatusDelivered:
		return fmt.Sprintf("[%s] Order #%d has been delivered. Enjoy!", timestamp, o.ID)
	case models.StatusCancelled:
		return fmt.Sprintf("[%s] Order #%d has been cancelled.", timestamp, o.ID)
	default:
		return fmt.Sprintf("[%s] Order #%d changed status to %s.", timestamp, o.ID, o.Status)
	}
}
