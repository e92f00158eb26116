package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"eats-marketplace/internal/auth"
	"eats-marketplace/internal/database"
	"eats-marketplace/internal/logger"
	"eats-marketplace/internal/models"
)

type fakeStore struct {
	users         map[int64]*models.User
	nextID        int64
	verifications map[string]*models.Verification
	nextVerifID   int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:         map[int64]*models.User{},
		verifications: map[string]*models.Verification{},
	}
}

func (s *fakeStore) InsertUser(_ context.Context, u *models.User) error {
	s.nextID++
	u.ID = s.nextID
	saved := *u
	s.users[u.ID] = &saved
	return nil
}

func (s *fakeStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, database.ErrNotFound
}

func (s *fakeStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (s *fakeStore) UpdateUser(_ context.Context, u *models.User) error {
	saved := *u
	s.users[u.ID] = &saved
	return nil
}

func (s *fakeStore) InsertVerification(_ context.Context, code string, userID int64) error {
	s.nextVerifID++
	s.verifications[code] = &models.Verification{ID: s.nextVerifID, Code: code, UserID: userID}
	return nil
}

func (s *fakeStore) GetVerificationByCode(_ context.Context, code string) (*models.Verification, error) {
	v, ok := s.verifications[code]
	if !ok {
		return nil, database.ErrNotFound
	}
	return v, nil
}

func (s *fakeStore) DeleteVerification(_ context.Context, id int64) error {
	for code, v := range s.verifications {
		if v.ID == id {
			delete(s.verifications, code)
		}
	}
	return nil
}

func (s *fakeStore) SetVerified(_ context.Context, userID int64) error {
	if u, ok := s.users[userID]; ok {
		u.Verified = true
	}
	return nil
}

type recordingMailer struct {
	sent []string
}

func (m *recordingMailer) SendVerificationEmail(_ context.Context, email, code string) error {
	m.sent = append(m.sent, email)
	return nil
}

func newTestService() (*Service, *fakeStore, *recordingMailer) {
	store := newFakeStore()
	mailer := &recordingMailer{}
	svc := NewService(store, auth.NewTokenManager("test-secret"), mailer, logger.New("user-test"))
	return svc, store, mailer
}

func TestCreateAccount(t *testing.T) {
	svc, store, mailer := newTestService()

	out := svc.CreateAccount(context.Background(), &models.CreateAccountRequest{
		Email:    "client@example.com",
		Password: "secret123",
		Role:     "client",
	})

	require.True(t, out.Success)
	require.Len(t, store.users, 1)

	u := store.users[1]
	require.Equal(t, models.RoleClient, u.Role)
	require.NotEqual(t, "secret123", u.Password)
	require.False(t, u.Verified)

	require.Len(t, store.verifications, 1)
	require.Equal(t, []string{"client@example.com"}, mailer.sent)
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	svc, store, _ := newTestService()

	out := svc.CreateAccount(context.Background(), &models.CreateAccountRequest{
		Email: "owner@example.com", Password: "secret123", Role: "owner",
	})
	require.True(t, out.Success)

	out = svc.CreateAccount(context.Background(), &models.CreateAccountRequest{
		Email: "owner@example.com", Password: "other456", Role: "client",
	})
	require.False(t, out.Success)
	require.Equal(t, "There already exists a user with that email", out.Error)
	require.Len(t, store.users, 1)
}

func TestCreateAccountInvalidRole(t *testing.T) {
	svc, _, _ := newTestService()

	out := svc.CreateAccount(context.Background(), &models.CreateAccountRequest{
		Email: "user@example.com", Password: "secret123", Role: "admin",
	})

	require.False(t, out.Success)
	require.Contains(t, out.Error, "role must be one of")
}

func TestLogin(t *testing.T) {
	svc, _, _ := newTestService()

	out := svc.CreateAccount(context.Background(), &models.CreateAccountRequest{
		Email: "client@example.com", Password: "secret123", Role: "client",
	})
	require.True(t, out.Success)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  string
	}{
		{"correct credentials", "client@example.com", "secret123", ""},
		{"wrong password", "client@example.com", "wrong", "Wrong Password"},
		{"unknown email", "nobody@example.com", "secret123", "User Not Found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			login := svc.Login(context.Background(), &models.LoginRequest{Email: tt.email, Password: tt.password})
			if tt.wantErr == "" {
				require.True(t, login.Success)
				require.NotEmpty(t, login.Token)
			} else {
				require.False(t, login.Success)
				require.Equal(t, tt.wantErr, login.Error)
				require.Empty(t, login.Token)
			}
		})
	}
}

func TestLoginTokenRoundTrip(t *testing.T) {
	svc, _, _ := newTestService()
	tokens := auth.NewTokenManager("test-secret")

	require.True(t, svc.CreateAccount(context.Background(), &models.CreateAccountRequest{
		Email: "client@example.com", Password: "secret123", Role: "client",
	}).Success)

	login := svc.Login(context.Background(), &models.LoginRequest{Email: "client@example.com", Password: "secret123"})
	require.True(t, login.Success)

	userID, err := tokens.Verify(login.Token)
	require.NoError(t, err)
	require.Equal(t, int64(1), userID)
}

func TestEditProfileEmailChangeResetsVerified(t *testing.T) {
	svc, store, mailer := newTestService()

	require.True(t, svc.CreateAccount(context.Background(), &models.CreateAccountRequest{
		Email: "old@example.com", Password: "secret123", Role: "client",
	}).Success)
	store.users[1].Verified = true

	out := svc.EditProfile(context.Background(), 1, &models.EditProfileRequest{Email: "new@example.com"})

	require.True(t, out.Success)
	require.Equal(t, "new@example.com", store.users[1].Email)
	require.False(t, store.users[1].Verified)
	require.Equal(t, []string{"old@example.com", "new@example.com"}, mailer.sent)
}

func TestEditProfilePasswordChange(t *testing.T) {
	svc, _, _ := newTestService()

	require.True(t, svc.CreateAccount(context.Background(), &models.CreateAccountRequest{
		Email: "client@example.com", Password: "secret123", Role: "client",
	}).Success)

	out := svc.EditProfile(context.Background(), 1, &models.EditProfileRequest{Password: "changed456"})
	require.True(t, out.Success)

	require.False(t, svc.Login(context.Background(), &models.LoginRequest{
		Email: "client@example.com", Password: "secret123",
	}).Success)
	require.True(t, svc.Login(context.Background(), &models.LoginRequest{
		Email: "client@example.com", Password: "changed456",
	}).Success)
}

func TestVerifyEmail(t *testing.T) {
	svc, store, _ := newTestService()

	require.True(t, svc.CreateAccount(context.Background(), &models.CreateAccountRequest{
		Email: "client@example.com", Password: "secret123", Role: "client",
	}).Success)

	var code string
	for c := range store.verifications {
		code = c
	}

	out := svc.VerifyEmail(context.Background(), code)
	require.True(t, out.Success)
	require.True(t, store.users[1].Verified)
	require.Empty(t, store.verifications)

	out = svc.VerifyEmail(context.Background(), "no-such-code")
	require.False(t, out.Success)
	require.Equal(t, "Verification Not Found", out.Error)
}
