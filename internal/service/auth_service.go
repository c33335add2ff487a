package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/syedsmuzakkir/Gym-Portal/internal/config"
	"github.com/syedsmuzakkir/Gym-Portal/internal/domain"
	"github.com/syedsmuzakkir/Gym-Portal/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// AuthService authenticates against the seeded user list and issues JWT
// pairs. This is a demo credential check, not a security boundary.
type AuthService struct {
	Config config.Config
	Users  repository.UserRepository
	Logger *slog.Logger
}

type AuthResult struct {
	AccessToken  string
	RefreshToken string
	User         domain.User
	ExpiresAt    time.Time
}

// Login matches identifier (email or phone) and password.
func (s AuthService) Login(ctx context.Context, identifier, password string) (*AuthResult, error) {
	user, err := s.Users.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	s.Logger.Info("user logged in", "userId", user.ID, "role", user.Role)
	return s.issueTokens(*user)
}

// Refresh exchanges a refresh token for a new pair.
func (s AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	claims, err := s.parseToken(refreshToken, "refresh")
	if err != nil {
		return nil, err
	}
	sub, _ := claims["sub"].(string)
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}
	user, err := s.Users.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return s.issueTokens(*user)
}

// Me resolves the user behind an authenticated id.
func (s AuthService) Me(ctx context.Context, id int64) (*domain.User, error) {
	return s.Users.Get(ctx, id)
}

func (s AuthService) issueTokens(user domain.User) (*AuthResult, error) {
	now := time.Now()
	expires := now.Add(s.Config.AccessTokenTTL)

	access, err := s.signToken(user, "access", expires)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}
	refresh, err := s.signToken(user, "refresh", now.Add(s.Config.RefreshTokenTTL))
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}
	return &AuthResult{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         user,
		ExpiresAt:    expires,
	}, nil
}

func (s AuthService) signToken(user domain.User, tokenType string, expires time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":        strconv.FormatInt(user.ID, 10),
		"email":      user.Email,
		"role":       string(user.Role),
		"token_type": tokenType,
		"iat":        time.Now().Unix(),
		"exp":        expires.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.Config.JWTSecret))
}

func (s AuthService) parseToken(tokenStr, wantType string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.Config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["token_type"] != wantType {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
