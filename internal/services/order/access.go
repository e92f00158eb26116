package order

import "eats-marketplace/internal/models"

// statusAny matches any current status in a transition rule.
const statusAny models.OrderStatus = "*"

type transitionRule struct {
	From models.OrderStatus
	To   models.OrderStatus
}

// transitionRules is the full authorization table for status changes.
// A (role, current, requested) triple is allowed iff it matches a rule
// here; everything else is denied, which also makes delivered and
// cancelled terminal.
var transitionRules = map[models.UserRole][]transitionRule{
	models.RoleClient: {
		{From: models.StatusPending, To: models.StatusCancelled},
	},
	models.RoleOwner: {
		{From: statusAny, To: models.StatusCancelled},
		{From: statusAny, To: models.StatusCooking},
		{From: statusAny, To: models.StatusCooked},
	},
	models.RoleDelivery: {
		{From: models.StatusCooked, To: models.StatusPickedUp},
		{From: models.StatusPickedUp, To: models.StatusDelivered},
	},
}

// CanView reports whether the actor may see the order: clients see their
// own orders, drivers the orders assigned to them, owners the orders of
// restaurants they own.
func CanView(user *models.User, o *models.Order) bool {
	switch user.Role {
	case models.RoleClient:
		return o.CustomerID == user.ID
	case models.RoleDelivery:
		return o.DriverID != nil && *o.DriverID == user.ID
	case models.RoleOwner:
		return o.RestaurantOwnerID == user.ID
	default:
		return false
	}
}

// CanTransition reports whether the role may move an order from the
// current status to the requested one. It assumes viewing rights have
// already been established.
func CanTransition(role models.UserRole, current, requested models.OrderStatus) bool {
	for _, rule := range transitionRules[role] {
		if rule.To != requested {
			continue
		}
		if rule.From == statusAny || rule.From == current {
			return true
		}
	}
	return false
}
