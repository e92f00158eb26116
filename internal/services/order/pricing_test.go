package order

import (
	"testing"

	"github.com/stretchr/testify/require"

	"eats-marketplace/internal/models"
)

func TestComputeItemPrice(t *testing.T) {
	pizza := &models.Dish{
		ID:    1,
		Name:  "Pizza",
		Price: 10,
		Options: []models.DishOption{
			{
				Name:  "Size",
				Extra: 2,
				Choices: []models.DishChoice{
					{Name: "Large", Extra: 3},
					{Name: "Medium", Extra: 1},
				},
			},
			{Name: "Spicy"},
		},
	}

	tests := []struct {
		name     string
		selected []models.SelectedOption
		want     float64
	}{
		{
			name:     "no options selected",
			selected: nil,
			want:     10,
		},
		{
			name: "option extra plus choice extra",
			selected: []models.SelectedOption{
				{Name: "Size", Choice: "Large"},
			},
			want: 15,
		},
		{
			name: "option without extra",
			selected: []models.SelectedOption{
				{Name: "Spicy"},
			},
			want: 10,
		},
		{
			name: "option extra without choice",
			selected: []models.SelectedOption{
				{Name: "Size"},
			},
			want: 12,
		},
		{
			name: "unknown option name contributes nothing",
			selected: []models.SelectedOption{
				{Name: "Topping", Choice: "Cheese"},
			},
			want: 10,
		},
		{
			name: "unknown choice keeps option extra",
			selected: []models.SelectedOption{
				{Name: "Size", Choice: "Gigantic"},
			},
			want: 12,
		},
		{
			name: "multiple selections accumulate",
			selected: []models.SelectedOption{
				{Name: "Size", Choice: "Medium"},
				{Name: "Spicy"},
			},
			want: 13,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeItemPrice(pizza, tt.selected)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestComputeItemPriceNoOptions(t *testing.T) {
	dish := &models.Dish{ID: 2, Name: "Soda", Price: 2.5}

	got := ComputeItemPrice(dish, []models.SelectedOption{{Name: "Size", Choice: "Large"}})
	require.Equal(t, 2.5, got)
}
