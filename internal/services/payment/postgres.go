package payment

import (
	"context"
	"fmt"

	"eats-marketplace/internal/database"
	"eats-marketplace/internal/models"
)

// PostgresStore implements Store over the shared connection pool
type PostgresStore struct {
	db *database.DB
}

// NewPostgresStore creates the payment store
func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) InsertPayment(ctx context.Context, p *models.Payment) error {
	err := s.db.QueryRow(ctx, database.InsertPaymentSQL,
		p.TransactionID, p.UserID, p.RestaurantID,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByUser(ctx context.Context, userID int64) ([]models.Payment, error) {
	rows, err := s.db.Query(ctx, database.GetPaymentsByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.ID, &p.TransactionID, &p.UserID, &p.RestaurantID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
