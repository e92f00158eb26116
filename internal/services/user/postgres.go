package user

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

// NewPostgresStore creates the user store
func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) InsertUser(ctx context.Context, u *models.User) error {
	err := s.db.QueryRow(ctx, database.InsertUserSQL, u.Email, u.Password, u.Role).
		Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.scanUser(ctx, database.GetUserByEmailSQL, email)
}

func (s *PostgresStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.scanUser(ctx, database.GetUserByIDSQL, id)
}

func (s *PostgresStore) scanUser(ctx context.Context, sql string, arg interface{}) (*models.User, error) {
	var u models.User
	err := s.db.QueryRow(ctx, sql, arg).Scan(
		&u.ID, &u.Email, &u.Password, &u.Role, &u.Verified, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, database.NotFound(err)
	}
	return &u, nil
}

func (s *PostgresStore) UpdateUser(ctx context.Context, u *models.User) error {
	if err := s.db.Exec(ctx, database.UpdateUserSQL, u.Email, u.Password, u.Verified, u.ID); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

func (s *PostgresStore) InsertVerification(ctx context.Context, code string, userID int64) error {
	var id int64
	if err := s.db.QueryRow(ctx, database.InsertVerificationSQL, code, userID).Scan(&id); err != nil {
		return fmt.Errorf("failed to insert verification: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetVerificationByCode(ctx context.Context, code string) (*models.Verification, error) {
	var v models.Verification
	err := s.db.QueryRow(ctx, database.GetVerificationByCodeSQL, code).Scan(&v.ID, &v.Code, &v.UserID)
	if err != nil {
		return nil, database.NotFound(err)
	}
	return &v, nil
}

func (s *PostgresStore) DeleteVerification(ctx context.Context, id int64) error {
	if err := s.db.Exec(ctx, database.DeleteVerificationSQL, id); err != nil {
		return fmt.Errorf("failed to delete verification: %w", err)
	}
	return nil
}

func (s *PostgresStore) SetVerified(ctx context.Context, userID int64) error {
	if err := s.db.Exec(ctx, database.SetUserVerifiedSQL, userID); err != nil {
		return fmt.Errorf("failed to mark user verified: %w", err)
	}
	return nil
}
