package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"noteshare-server/internal/domain"
	"noteshare-server/internal/service"
)

func newAuthHandler(t *testing.T) *AuthHandler {
	t.Helper()

	userRepo := &memUserRepo{users: make(map[string]*domain.User)}
	authService := service.NewAuthService(userRepo, testSecret, time.Hour)
	return NewAuthHandler(authService)
}

func postJSON(t *testing.T, handlerFunc http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		t.Fatalf("failed to encode body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	rec := httptest.NewRecorder()
	handlerFunc(rec, req)
	return rec
}

func TestAuthHandler_Signup(t *testing.T) {
	h := newAuthHandler(t)

	valid := domain.SignupRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password1",
	}

	rec := postJSON(t, h.Signup, valid)
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup status = %d, want 201", rec.Code)
	}

	// Resubmitting the same payload hits the duplicate checks.
	rec = postJSON(t, h.Signup, valid)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("duplicate signup status = %d, want 400", rec.Code)
	}

	tests := []struct {
		name string
		req  domain.SignupRequest
	}{
		{
			name: "non-alphanumeric password",
			req:  domain.SignupRequest{Username: "bob", Email: "bob@example.com", Password: "pass word!"},
		},
		{
			name: "invalid email",
			req:  domain.SignupRequest{Username: "carol", Email: "not-an-email", Password: "password1"},
		},
		{
			name: "missing username",
			req:  domain.SignupRequest{Email: "dave@example.com", Password: "password1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, h.Signup, tt.req)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("signup status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	h := newAuthHandler(t)

	rec := postJSON(t, h.Signup, domain.SignupRequest{
		Username: "erin",
		Email:    "erin@example.com",
		Password: "erinpass1",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup status = %d, want 201", rec.Code)
	}

	rec = postJSON(t, h.Login, domain.LoginRequest{Username: "erin", Password: "erinpass1"})
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, want 200", rec.Code)
	}

	var resp domain.LoginResponse
	if err := json.Unmarshal(decodeEnvelope(t, rec).Data, &resp); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}
	if resp.Token == "" {
		t.Error("login returned empty token")
	}

	rec = postJSON(t, h.Login, domain.LoginRequest{Username: "erin", Password: "wrongpass"})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad password status = %d, want 401", rec.Code)
	}

	rec = postJSON(t, h.Login, domain.LoginRequest{Username: "ghost", Password: "whatever1"})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("unknown user status = %d, want 401", rec.Code)
	}
}
