package user

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"eats-marketplace/internal/auth"
	"eats-marketplace/internal/database"
	"eats-marketplace/internal/logger"
	"eats-marketplace/internal/models"
)

// Store is the persistence boundary for accounts and verifications
type Store interface {
	InsertUser(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	InsertVerification(ctx context.Context, code string, userID int64) error
	GetVerificationByCode(ctx context.Context, code string) (*models.Verification, error)
	DeleteVerification(ctx context.Context, id int64) error
	SetVerified(ctx context.Context, userID int64) error
}

// Mailer delivers verification mail; delivery is best-effort
type Mailer interface {
	SendVerificationEmail(ctx context.Context, email, code string) error
}

// Service manages accounts: registration, login, profile edits, and
// email verification.
type Service struct {
	store  Store
	tokens *auth.TokenManager
	mailer Mailer
	logger *logger.Logger
}

// NewService creates the user service
func NewService(store Store, tokens *auth.TokenManager, mailer Mailer, log *logger.Logger) *Service {
	return &Service{
		store:  store,
		tokens: tokens,
		mailer: mailer,
		logger: log,
	}
}

// CreateAccount registers a new account, stores a bcrypt hash of the
// password, and mails a verification code.
func (s *Service) CreateAccount(ctx context.Context, req *models.CreateAccountRequest) *models.CreateAccountOutput {
	requestID := logger.GenerateRequestID()

	_, err := s.store.GetByEmail(ctx, req.Email)
	if err == nil {
		return &models.CreateAccountOutput{Success: false, Error: "There already exists a user with that email"}
	}
	if !errors.Is(err, database.ErrNotFound) {
		s.logger.Error("account_creation_failed", "Email lookup failed", requestID, err, nil)
		return &models.CreateAccountOutput{Success: false, Error: "Couldn't create account"}
	}

	role, err := models.ParseUserRole(req.Role)
	if err != nil {
		return &models.CreateAccountOutput{Success: false, Error: err.Error()}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("account_creation_failed", "Password hashing failed", requestID, err, nil)
		return &models.CreateAccountOutput{Success: false, Error: "Couldn't create account"}
	}

	newUser := &models.User{
		Email:    req.Email,
		Password: string(hashed),
		Role:     role,
	}
	if err := s.store.InsertUser(ctx, newUser); err != nil {
		s.logger.Error("account_creation_failed", "Failed to persist user", requestID, err, nil)
		return &models.CreateAccountOutput{Success: false, Error: "Couldn't create account"}
	}

	code := generateVerificationCode()
	if err := s.store.InsertVerification(ctx, code, newUser.ID); err != nil {
		s.logger.Error("account_creation_failed", "Failed to persist verification", requestID, err, nil)
		return &models.CreateAccountOutput{Success: false, Error: "Couldn't create account"}
	}

	if err := s.mailer.SendVerificationEmail(ctx, newUser.Email, code); err != nil {
		s.logger.Error("mail_send_failed", "Failed to send verification email", requestID, err, map[string]interface{}{
			"email": newUser.Email,
		})
	}

	s.logger.Info("account_created", "Account registered", requestID, map[string]interface{}{
		"user_id": newUser.ID,
		"role":    newUser.Role,
	})

	return &models.CreateAccountOutput{Success: true}
}

// Login checks the password and issues a signed token
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) *models.LoginOutput {
	requestID := logger.GenerateRequestID()

	u, err := s.store.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return &models.LoginOutput{Success: false, Error: "User Not Found"}
		}
		s.logger.Error("login_failed", "Email lookup failed", requestID, err, nil)
		return &models.LoginOutput{Success: false, Error: "Could not log in"}
	}

	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)) != nil {
		return &models.LoginOutput{Success: false, Error: "Wrong Password"}
	}

	token, err := s.tokens.Sign(u.ID)
	if err != nil {
		s.logger.Error("login_failed", "Token signing failed", requestID, err, nil)
		return &models.LoginOutput{Success: false, Error: "Could not log in"}
	}

	return &models.LoginOutput{Success: true, Token: token}
}

// FindByID returns the account profile
func (s *Service) FindByID(ctx context.Context, id int64) *models.UserProfileOutput {
	u, err := s.store.GetByID(ctx, id)
	if err != nil {
		return &models.UserProfileOutput{Success: false, Error: "User Not Found"}
	}
	return &models.UserProfileOutput{Success: true, User: u}
}

// FindUserByID implements auth.UserFinder for the token middleware
func (s *Service) FindUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.store.GetByID(ctx, id)
}

// EditProfile updates email and/or password. An email change resets the
// verified flag and mails a fresh verification code.
func (s *Service) EditProfile(ctx context.Context, userID int64, req *models.EditProfileRequest) *models.EditProfileOutput {
	requestID := logger.GenerateRequestID()

	u, err := s.store.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("profile_edit_failed", "User lookup failed", requestID, err, nil)
		return &models.EditProfileOutput{Success: false, Error: "Couldn't update profile"}
	}

	if req.Email != "" {
		u.Email = req.Email
		u.Verified = false

		code := generateVerificationCode()
		if err := s.store.InsertVerification(ctx, code, u.ID); err != nil {
			s.logger.Error("profile_edit_failed", "Failed to persist verification", requestID, err, nil)
			return &models.EditProfileOutput{Success: false, Error: "Couldn't update profile"}
		}
		if err := s.mailer.SendVerificationEmail(ctx, u.Email, code); err != nil {
			s.logger.Error("mail_send_failed", "Failed to send verification email", requestID, err, nil)
		}
	}

	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			s.logger.Error("profile_edit_failed", "Password hashing failed", requestID, err, nil)
			return &models.EditProfileOutput{Success: false, Error: "Couldn't update profile"}
		}
		u.Password = string(hashed)
	}

	if err := s.store.UpdateUser(ctx, u); err != nil {
		s.logger.Error("profile_edit_failed", "Failed to persist user", requestID, err, nil)
		return &models.EditProfileOutput{Success: false, Error: "Couldn't update profile"}
	}

	return &models.EditProfileOutput{Success: true}
}

// VerifyEmail marks the account behind the code as verified
func (s *Service) VerifyEmail(ctx context.Context, code string) *models.VerifyEmailOutput {
	requestID := logger.GenerateRequestID()

	verification, err := s.store.GetVerificationByCode(ctx, code)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return &models.VerifyEmailOutput{Success: false, Error: "Verification Not Found"}
		}
		s.logger.Error("verification_failed", "Verification lookup failed", requestID, err, nil)
		return &models.VerifyEmailOutput{Success: false, Error: "Verification failed"}
	}

	if err := s.store.SetVerified(ctx, verification.UserID); err != nil {
		s.logger.Error("verification_failed", "Failed to mark user verified", requestID, err, nil)
		return &models.VerifyEmailOutput{Success: false, Error: "Verification failed"}
	}
	if err := s.store.DeleteVerification(ctx, verification.ID); err != nil {
		s.logger.Error("verification_failed", "Failed to delete verification", requestID, err, nil)
	}

	return &models.VerifyEmailOutput{Success: true}
}

func generateVerificationCode() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "code_unknown"
	}
	return hex.EncodeToString(buf)
}
