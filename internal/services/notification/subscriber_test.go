package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"eats-marketplace/internal/models"
)

func TestFormatNotification(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		status models.OrderStatus
		want   string
	}{
		{models.StatusPending, "[2025-06-01 12:30:00] Order #7 was placed and is waiting for the restaurant."},
		{models.StatusCooking, "[2025-06-01 12:30:00] Order #7 is being prepared."},
		{models.StatusCooked, "[2025-06-01 12:30:00] Order #7 is cooked and waiting for pickup."},
		{models.StatusPickedUp, "[2025-06-01 12:30:00] Order #7 was picked up and is on its way."},
		{models.StatusDelivered, "[2025-06-01 12:30:00] Order #7 has been delivered. Enjoy!"},
		{models.StatusCancelled, "[2025-06-01 12:30:00] Order #7 has been cancelled."},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			msg := &models.OrderUpdateMessage{
				Order:     &models.Order{ID: 7, Status: tt.status},
				Timestamp: ts,
			}
			require.Equal(t, tt.want, FormatNotification(msg))
		})
	}
}
