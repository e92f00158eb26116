package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateOrderRequestValidate(t *testing.T) {
	tooMany := make([]CreateOrderItem, 21)
	for i := range tooMany {
		tooMany[i] = CreateOrderItem{DishID: int64(i + 1)}
	}

	tests := []struct {
		name    string
		req     *CreateOrderRequest
		wantErr bool
	}{
		{
			name: "valid request",
			req: &CreateOrderRequest{
				RestaurantID: 5,
				Items: []CreateOrderItem{
					{DishID: 1, Options: []SelectedOption{{Name: "Size", Choice: "Large"}}},
				},
			},
			wantErr: false,
		},
		{
			name:    "missing restaurant",
			req:     &CreateOrderRequest{Items: []CreateOrderItem{{DishID: 1}}},
			wantErr: true,
		},
		{
			name:    "empty items",
			req:     &CreateOrderRequest{RestaurantID: 5},
			wantErr: true,
		},
		{
			name:    "too many items",
			req:     &CreateOrderRequest{RestaurantID: 5, Items: tooMany},
			wantErr: true,
		},
		{
			name:    "item without dish id",
			req:     &CreateOrderRequest{RestaurantID: 5, Items: []CreateOrderItem{{}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestParseOrderStatus(t *testing.T) {
	for _, valid := range []string{"pending", "cooking", "cooked", "picked_up", "delivered", "cancelled"} {
		status, err := ParseOrderStatus(valid)
		require.NoError(t, err)
		require.Equal(t, OrderStatus(valid), status)
	}

	_, err := ParseOrderStatus("shipped")
	require.Error(t, err)
}

func TestParseUserRole(t *testing.T) {
	role, err := ParseUserRole("Owner")
	require.NoError(t, err)
	require.Equal(t, RoleOwner, role)

	_, err = ParseUserRole("admin")
	require.Error(t, err)
}

func TestCreateAccountRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     *CreateAccountRequest
		wantErr bool
	}{
		{"valid request", &CreateAccountRequest{Email: "a@b.com", Password: "secret123", Role: "client"}, false},
		{"bad email", &CreateAccountRequest{Email: "not-an-email", Password: "secret123", Role: "client"}, true},
		{"short password", &CreateAccountRequest{Email: "a@b.com", Password: "abc", Role: "client"}, true},
		{"bad role", &CreateAccountRequest{Email: "a@b.com", Password: "secret123", Role: "admin"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
