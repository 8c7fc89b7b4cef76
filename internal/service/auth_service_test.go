package service

import (
	"errors"
	"testing"
	"time"

	"noteshare-server/internal/domain"
	"noteshare-server/pkg/hash"
)

type mockUserRepository struct {
	users map[string]*domain.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		users: make(map[string]*domain.User),
	}
}

func (m *mockUserRepository) Create(user *domain.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepository) FindByID(id string) (*domain.User, error) {
	if user, ok := m.users[id]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepository) FindByUsername(username string) (*domain.User, error) {
	for _, user := range m.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepository) FindByEmail(email string) (*domain.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepository) UsernameExists(username string) (bool, error) {
	_, err := m.FindByUsername(username)
	return err == nil, nil
}

func (m *mockUserRepository) EmailExists(email string) (bool, error) {
	_, err := m.FindByEmail(email)
	return err == nil, nil
}

func TestAuthService_Signup(t *testing.T) {
	repo := newMockUserRepository()
	service := NewAuthService(repo, "test-secret", 24*time.Hour)

	if err := service.Signup(&domain.SignupRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password1",
	}); err != nil {
		t.Fatalf("Signup() unexpected error = %v", err)
	}

	created, err := repo.FindByUsername("alice")
	if err != nil {
		t.Fatalf("expected user to be persisted, got %v", err)
	}
	if created.Password == "password1" {
		t.Error("Signup() stored the plaintext password")
	}
	if err := hash.Compare(created.Password, "password1"); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}

	tests := []struct {
		name    string
		req     *domain.SignupRequest
		wantErr error
	}{
		{
			name: "duplicate username",
			req: &domain.SignupRequest{
				Username: "alice",
				Email:    "other@example.com",
				Password: "password1",
			},
			wantErr: domain.ErrUsernameTaken,
		},
		{
			name: "duplicate email",
			req: &domain.SignupRequest{
				Username: "alice2",
				Email:    "alice@example.com",
				Password: "password1",
			},
			wantErr: domain.ErrEmailTaken,
		},
		{
			name: "second unique user",
			req: &domain.SignupRequest{
				Username: "bob",
				Email:    "bob@example.com",
				Password: "password2",
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.Signup(tt.req)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Signup() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Errorf("Signup() unexpected error = %v", err)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	repo := newMockUserRepository()
	service := NewAuthService(repo, "test-secret", 24*time.Hour)

	if err := service.Signup(&domain.SignupRequest{
		Username: "carol",
		Email:    "carol@example.com",
		Password: "carolpass1",
	}); err != nil {
		t.Fatalf("Signup() unexpected error = %v", err)
	}

	tests := []struct {
		name    string
		req     *domain.LoginRequest
		wantErr bool
	}{
		{
			name: "valid credentials",
			req: &domain.LoginRequest{
				Username: "carol",
				Password: "carolpass1",
			},
			wantErr: false,
		},
		{
			name: "wrong password",
			req: &domain.LoginRequest{
				Username: "carol",
				Password: "wrongpass1",
			},
			wantErr: true,
		},
		{
			name: "unknown user",
			req: &domain.LoginRequest{
				Username: "nobody",
				Password: "whatever1",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := service.Login(tt.req)

			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidCredentials) {
					t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
				}
				return
			}

			if err != nil {
				t.Errorf("Login() unexpected error = %v", err)
				return
			}

			if resp.Token == "" {
				t.Error("Login() returned empty token")
			}
			if resp.Message != "Login successful" {
				t.Errorf("Login() message = %q", resp.Message)
			}
		})
	}
}
