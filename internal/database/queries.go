package database

// User queries
const (
	InsertUserSQL = `
		INSERT INTO users (email, password, role)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	GetUserByEmailSQL = `
		SELECT id, email, password, role, verified, created_at, updated_at
		FROM users WHERE email = $1`

	GetUserByIDSQL = `
		SELECT id, email, password, role, verified, created_at, updated_at
		FROM users WHERE id = $1`

	UpdateUserSQL = `
		UPDATE users SET email = $1, password = $2, verified = $3, updated_at = NOW()
		WHERE id = $4`

	InsertVerificationSQL = `
		INSERT INTO verifications (code, user_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET code = $1
		RETURNING id`

	GetVerificationByCodeSQL = `
		SELECT id, code, user_id FROM verifications WHERE code = $1`

	DeleteVerificationSQL = `
		DELETE FROM verifications WHERE id = $1`

	SetUserVerifiedSQL = `
		UPDATE users SET verified = TRUE, updated_at = NOW() WHERE id = $1`
)

// Restaurant and dish queries
const (
	InsertRestaurantSQL = `
		INSERT INTO restaurants (name, address, cover_image, owner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	UpdateRestaurantSQL = `
		UPDATE restaurants SET name = $1, address = $2, updated_at = NOW()
		WHERE id = $3`

	GetRestaurantByIDSQL = `
		SELECT id, name, address, COALESCE(cover_image, ''), owner_id, promoted, promoted_until, created_at, updated_at
		FROM restaurants WHERE id = $1`

	GetAllRestaurantsSQL = `
		SELECT id, name, address, COALESCE(cover_image, ''), owner_id, promoted, promoted_until, created_at, updated_at
		FROM restaurants
		ORDER BY promoted DESC, created_at DESC`

	PromoteRestaurantSQL = `
		UPDATE restaurants SET promoted = TRUE, promoted_until = $1, updated_at = NOW()
		WHERE id = $2`

	ClearExpiredPromotionsSQL = `
		UPDATE restaurants SET promoted = FALSE, promoted_until = NULL, updated_at = NOW()
		WHERE promoted = TRUE AND promoted_until < NOW()`

	InsertDishSQL = `
		INSERT INTO dishes (name, description, price, restaurant_id, options)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	GetDishByIDSQL = `
		SELECT id, name, COALESCE(description, ''), price, restaurant_id, options, created_at, updated_at
		FROM dishes WHERE id = $1`
)

// Order queries
const (
	InsertOrderItemSQL = `
		INSERT INTO order_items (dish_id, options)
		VALUES ($1, $2)
		RETURNING id`

	AttachOrderItemsSQL = `
		UPDATE order_items SET order_id = $1 WHERE id = ANY($2)`

	InsertOrderSQL = `
		INSERT INTO orders (customer_id, restaurant_id, status, total)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	GetOrderByIDSQL = `
		SELECT o.id, o.customer_id, o.restaurant_id, o.driver_id, o.status, o.total,
			   o.created_at, o.updated_at, r.owner_id
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.id = $1`

	GetOrderItemsSQL = `
		SELECT id, order_id, dish_id, options
		FROM order_items
		WHERE order_id = $1
		ORDER BY id ASC`

	GetOrdersByCustomerSQL = `
		SELECT o.id, o.customer_id, o.restaurant_id, o.driver_id, o.status, o.total,
			   o.created_at, o.updated_at, r.owner_id
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.customer_id = $1
		ORDER BY o.created_at DESC`

	GetOrdersByDriverSQL = `
		SELECT o.id, o.customer_id, o.restaurant_id, o.driver_id, o.status, o.total,
			   o.created_at, o.updated_at, r.owner_id
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.driver_id = $1
		ORDER BY o.created_at DESC`

	GetOrdersByCustomerStatusSQL = `
		SELECT o.id, o.customer_id, o.restaurant_id, o.driver_id, o.status, o.total,
			   o.created_at, o.updated_at, r.owner_id
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.customer_id = $1 AND o.status = $2
		ORDER BY o.created_at DESC`

	GetOrdersByDriverStatusSQL = `
		SELECT o.id, o.customer_id, o.restaurant_id, o.driver_id, o.status, o.total,
			   o.created_at, o.updated_at, r.owner_id
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.driver_id = $1 AND o.status = $2
		ORDER BY o.created_at DESC`

	GetOrdersByOwnerSQL = `
		SELECT o.id, o.customer_id, o.restaurant_id, o.driver_id, o.status, o.total,
			   o.created_at, o.updated_at, r.owner_id
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE r.owner_id = $1
		ORDER BY o.created_at DESC`

	UpdateOrderStatusSQL = `
		UPDATE orders SET status = $1, updated_at = NOW()
		WHERE id = $2`

	ClaimOrderDriverSQL = `
		UPDATE orders SET driver_id = $1, updated_at = NOW()
		WHERE id = $2 AND driver_id IS NULL`

	InsertOrderStatusLogSQL = `
		INSERT INTO order_status_log (order_id, status, changed_by)
		VALUES ($1, $2, $3)`

	GetOrderStatusHistorySQL = `
		SELECT status, changed_by, changed_at
		FROM order_status_log
		WHERE order_id = $1
		ORDER BY changed_at ASC`
)

// Payment queries
const (
	InsertPaymentSQL = `
		INSERT INTO payments (transaction_id, user_id, restaurant_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	GetPaymentsByUserSQL = `
		SELECT id, transaction_id, user_id, restaurant_id, created_at
		FROM payments
		WHERE user_id = $1
		ORDER BY created_at DESC`
)

// Courier queries
const (
	InsertCourierSQL = `
		INSERT INTO couriers (user_id, name, status)
		VALUES ($1, $2, 'online')
		ON CONFLICT (name) DO UPDATE SET
			status = 'online',
			last_seen = NOW()
		RETURNING id`

	UpdateCourierStatusSQL = `
		UPDATE couriers SET status = $1, last_seen = NOW()
		WHERE name = $2`

	UpdateCourierHeartbeatSQL = `
		UPDATE couriers SET last_seen = NOW(), orders_assigned = orders_assigned + $1
		WHERE name = $2`

	CheckCourierOnlineSQL = `
		SELECT COUNT(*) FROM couriers WHERE name = $1 AND status = 'online'`

	GetAllCouriersSQL = `
		SELECT id, user_id, name, status, last_seen, orders_assigned, created_at
		FROM couriers
		ORDER BY created_at ASC`
)
