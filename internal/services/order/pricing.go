package order

import "eats-marketplace/internal/models"

// ComputeItemPrice computes the final price of one order item: the dish
// base price plus the extras of every selected option and chosen choice
// that exists on the dish. Selections naming no matching option or
// choice contribute nothing and are not an error.
func ComputeItemPrice(dish *models.Dish, selected []models.SelectedOption) float64 {
	price := dish.Price

	for _, sel := range selected {
		option := findOption(dish.Options, sel.Name)
		if option == nil {
			continue
		}
		price += option.Extra

		if choice := findChoice(option.Choices, sel.Choice); choice != nil {
			price += choice.Extra
		}
	}

	return price
}

func findOption(options []models.DishOption, name string) *models.DishOption {
	for i := range options {
		if options[i].Name == name {
			return &options[i]
		}
	}
	return nil
}

func findChoice(choices []models.DishChoice, name string) *models.DishChoice {
	if name == "" {
		return nil
	}
	for i := range choices {
		if choices[i].Name == name {
			return &choices[i]
		}
	}
	return nil
}
