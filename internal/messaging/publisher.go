package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"eats-marketplace/internal/logger"
	"eats-marketplace/internal/models"
)

// Publisher publishes order lifecycle events to RabbitMQ
type Publisher struct {
	conn   *Connection
	logger *logger.Logger
}

// NewPublisher creates a new event publisher
func NewPublisher(conn *Connection, log *logger.Logger) *Publisher {
	return &Publisher{
		conn:   conn,
		logger: log,
	}
}

// PublishPendingOrder notifies owner-side subscribers of a newly placed order
func (p *Publisher) PublishPendingOrder(ctx context.Context, msg *models.PendingOrderMessage) error {
	return p.publishMessage(ctx, OrdersExchange, models.TopicPendingOrder, msg, true)
}

// PublishCookedOrder notifies delivery partners that an order is ready for pickup
func (p *Publisher) PublishCookedOrder(ctx context.Context, msg *models.OrderUpdateMessage) error {
	return p.publishMessage(ctx, OrdersExchange, models.TopicCookedOrder, msg, true)
}

// PublishOrderUpdate fans out the updated order to anyone tracking it
func (p *Publisher) PublishOrderUpdate(ctx context.Context, msg *models.OrderUpdateMessage) error {
	return p.publishMessage(ctx, OrderUpdatesExchange, "", msg, false)
}

// publishMessage is the generic message publishing function
func (p *Publisher) publishMessage(ctx context.Context, exchange, routingKey string, message interface{}, persistent bool) error {
	if p.conn.IsClosed() {
		if err := p.conn.Reconnect(); err != nil {
			return fmt.Errorf("failed to reconnect: %w", err)
		}
	}

	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	deliveryMode := uint8(1) // Non-persistent by default
	if persistent {
		deliveryMode = 2
	}

	publishing := amqp091.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: deliveryMode,
		Timestamp:    time.Now(),
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err = p.conn.Channel().PublishWithContext(
		ctx,
		exchange,   // exchange
		routingKey, // routing key
		false,      // mandatory
		false,      // immediate
		publishing,
	)

	if err != nil {
		p.logger.Error("message_publish_failed",
			fmt.Sprintf("Failed to publish message to exchange %s", exchange),
			"", err, map[string]interface{}{
				"exchange":    exchange,
				"routing_key": routingKey,
			})
		return fmt.Errorf("failed to publish message: %w", err)
	}

	p.logger.Debug("message_published",
		fmt.Sprintf("Published message to exchange %s", exchange),
		"", map[string]interface{}{
			"exchange":     exchange,
			"routing_key":  routingKey,
			"message_size": len(body),
		})

	return nil
}

// Close closes the publisher
func (p *Publisher) Close() error {
	return p.conn.Close()
}
