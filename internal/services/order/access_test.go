package order

import (
	"testing"

	"github.com/stretchr/testify/require"

	"eats-marketplace/internal/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name      string
		role      models.UserRole
		current   models.OrderStatus
		requested models.OrderStatus
		want      bool
	}{
		{"client cancels pending", models.RoleClient, models.StatusPending, models.StatusCancelled, true},
		{"client cannot cancel cooking", models.RoleClient, models.StatusCooking, models.StatusCancelled, false},
		{"client cannot mark cooked", models.RoleClient, models.StatusPending, models.StatusCooked, false},
		{"client cannot mark delivered", models.RoleClient, models.StatusPickedUp, models.StatusDelivered, false},

		{"owner starts cooking", models.RoleOwner, models.StatusPending, models.StatusCooking, true},
		{"owner marks cooked", models.RoleOwner, models.StatusCooking, models.StatusCooked, true},
		{"owner cancels any status", models.RoleOwner, models.StatusPickedUp, models.StatusCancelled, true},
		{"owner re-cooks delivered order", models.RoleOwner, models.StatusDelivered, models.StatusCooking, true},
		{"owner cannot mark picked up", models.RoleOwner, models.StatusCooked, models.StatusPickedUp, false},
		{"owner cannot mark delivered", models.RoleOwner, models.StatusPickedUp, models.StatusDelivered, false},
		{"owner cannot reset to pending", models.RoleOwner, models.StatusCooking, models.StatusPending, false},

		{"driver picks up cooked", models.RoleDelivery, models.StatusCooked, models.StatusPickedUp, true},
		{"driver delivers picked up", models.RoleDelivery, models.StatusPickedUp, models.StatusDelivered, true},
		{"driver cannot pick up pending", models.RoleDelivery, models.StatusPending, models.StatusPickedUp, false},
		{"driver cannot deliver cooked", models.RoleDelivery, models.StatusCooked, models.StatusDelivered, false},
		{"driver cannot cancel", models.RoleDelivery, models.StatusCooked, models.StatusCancelled, false},

		{"delivered is terminal for driver", models.RoleDelivery, models.StatusDelivered, models.StatusPickedUp, false},
		{"cancelled is terminal for client", models.RoleClient, models.StatusCancelled, models.StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanTransition(tt.role, tt.current, tt.requested)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCanView(t *testing.T) {
	driverID := int64(30)
	o := &models.Order{
		ID:                1,
		CustomerID:        10,
		RestaurantID:      5,
		RestaurantOwnerID: 20,
		DriverID:          &driverID,
	}

	tests := []struct {
		name string
		user *models.User
		want bool
	}{
		{"customer sees own order", &models.User{ID: 10, Role: models.RoleClient}, true},
		{"other client denied", &models.User{ID: 11, Role: models.RoleClient}, false},
		{"owner sees restaurant order", &models.User{ID: 20, Role: models.RoleOwner}, true},
		{"other owner denied", &models.User{ID: 21, Role: models.RoleOwner}, false},
		{"assigned driver sees order", &models.User{ID: 30, Role: models.RoleDelivery}, true},
		{"other driver denied", &models.User{ID: 31, Role: models.RoleDelivery}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, CanView(tt.user, o))
		})
	}
}

func TestCanViewUnassignedDriver(t *testing.T) {
	o := &models.Order{ID: 1, CustomerID: 10, RestaurantOwnerID: 20}
	driver := &models.User{ID: 30, Role: models.RoleDelivery}

	require.False(t, CanView(driver, o))
}
