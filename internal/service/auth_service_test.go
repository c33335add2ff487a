package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/syedsmuzakkir/Gym-Portal/internal/config"
	"github.com/syedsmuzakkir/Gym-Portal/internal/domain"
	"github.com/syedsmuzakkir/Gym-Portal/internal/repository"
)

func newAuthService(t *testing.T) AuthService {
	t.Helper()
	return AuthService{
		Config: config.Config{
			JWTSecret:       "test-secret",
			AccessTokenTTL:  time.Hour,
			RefreshTokenTTL: 24 * time.Hour,
		},
		Users:  repository.UserRepository{DB: newTestStore(t)},
		Logger: testLogger(),
	}
}

func TestLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	res, err := svc.Login(ctx, "admin@gmail.com", "admin123")
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if res.User.Role != domain.RoleAdmin {
		t.Fatalf("role = %s, want admin", res.User.Role)
	}
	if res.AccessToken == "" || res.RefreshToken == "" {
		t.Fatal("tokens must be issued")
	}

	// Phone works as the identifier too.
	if _, err := svc.Login(ctx, "+1234567891", "manager123"); err != nil {
		t.Fatalf("Login(phone) error: %v", err)
	}
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	if _, err := svc.Login(ctx, "admin@gmail.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(ctx, "nobody@gmail.com", "admin123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRefresh(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	res, err := svc.Login(ctx, "employee@gmail.com", "employee123")
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}

	refreshed, err := svc.Refresh(ctx, res.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh() error: %v", err)
	}
	if refreshed.User.ID != res.User.ID {
		t.Fatalf("refresh resolved a different user: %d", refreshed.User.ID)
	}

	// An access token is not accepted as a refresh token.
	if _, err := svc.Refresh(ctx, res.AccessToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("access token as refresh: expected ErrInvalidToken, got %v", err)
	}
	if _, err := svc.Refresh(ctx, "not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("garbage token: expected ErrInvalidToken, got %v", err)
	}
}
