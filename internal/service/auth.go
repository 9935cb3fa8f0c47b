package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/techmarket/storefront/internal/events"
	"github.com/techmarket/storefront/internal/hash"
	"github.com/techmarket/storefront/internal/logging"
	"github.com/techmarket/storefront/internal/models"
	"github.com/techmarket/storefront/internal/repo"
	"github.com/techmarket/storefront/internal/tokens"
	"github.com/techmarket/storefront/internal/transport"
)

type AuthService struct {
	Repo          *repo.GormRepo
	JWTSecret     []byte
	RefreshSecret []byte
	Producer      *events.Producer
}

func (s *AuthService) Register(ctx context.Context, fullName, email, password string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	if fullName == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: full_name, email and password required", ErrValidation)
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("register_error", "reason", "cannot hash password", "error", err)
		return nil, err
	}

	user := &models.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: pwHash,
		Role:         models.RoleCustomer,
	}
	if err := s.Repo.CreateUserIfNotExists(ctx, user); err != nil {
		if errors.Is(err, repo.ErrUserAlreadyExist) {
			l.Warn("register_conflict", "email", email)
			return nil, fmt.Errorf("%w: user already exists", ErrConflict)
		}
		l.Error("register_error", "error", err)
		return nil, err
	}

	if err := s.Producer.PublishEvent(ctx, events.TopicUserEvents, user.ID.String(), map[string]any{
		"type":    "user_registered",
		"user_id": user.ID,
		"email":   user.Email,
	}); err != nil {
		l.Error("kafka_publish_error", "error", err)
	}

	l.Info("user_registered", "user_id", user.ID)
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*transport.LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	user, err := s.Repo.UserByCredentials(ctx, email, password)
	if err != nil {
		if errors.Is(err, repo.ErrInvalidCredentials) {
			l.Warn("login_failed", "reason", "invalid credentials")
			return nil, fmt.Errorf("%w: invalid credentials", ErrInvalidCredentials)
		}
		l.Error("login_failed", "error", err)
		return nil, err
	}

	now := time.Now()
	accessExp := now.Add(tokens.AccessTTL)
	accessToken, err := tokens.CreateAccessToken(s.accessClaims(user), s.JWTSecret, accessExp)
	if err != nil {
		l.Error("login_failed", "reason", "cannot sign access token", "error", err)
		return nil, err
	}

	refreshExp := now.Add(tokens.RefreshTTL)
	refreshToken, err := tokens.CreateRefreshToken(s.refreshClaims(user), s.RefreshSecret, refreshExp)
	if err != nil {
		l.Error("login_failed", "reason", "cannot sign refresh token", "error", err)
		return nil, err
	}

	// Single active session: the new token replaces whatever was stored.
	if err := s.Repo.SetRefreshToken(ctx, user.ID, tokens.Sha256Hex(refreshToken)); err != nil {
		l.Error("login_failed", "reason", "cannot persist refresh token", "error", err)
		return nil, err
	}

	if err := s.Producer.PublishEvent(ctx, events.TopicUserEvents, user.ID.String(), map[string]any{
		"type":    "user_logged_in",
		"user_id": user.ID,
		"email":   user.Email,
	}); err != nil {
		l.Error("kafka_publish_error", "error", err)
	}

	l.Info("login_successful", "user_id", user.ID)
	return &transport.LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		AccessExp:    accessExp,
		RefreshExp:   refreshExp,
		Role:         user.Role,
		User: transport.PublicUser{
			ID:       user.ID,
			FullName: user.FullName,
			Email:    user.Email,
		},
	}, nil
}

// Refresh mints a fresh access token from a verified refresh token. The
// refresh token itself is not rotated, it stays valid until its own
// expiry or an explicit logout.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, time.Time, error) {
	l := logging.FromContext(ctx).With("svc", "auth.refresh")

	if refreshToken == "" {
		return "", time.Time{}, fmt.Errorf("%w: no token provided", ErrUnauthenticated)
	}

	claims, err := tokens.RefreshClaimsFromToken(refreshToken, s.RefreshSecret)
	if err != nil {
		l.Warn("refresh_failed", "reason", "verification failed", "error", err)
		return "", time.Time{}, fmt.Errorf("%w: invalid refresh token", ErrInvalidToken)
	}

	// The token must still occupy the user's session slot, otherwise a
	// logout (or a later login elsewhere) has invalidated it.
	userID, idErr := uuid.Parse(claims.Subject)
	if idErr != nil {
		return "", time.Time{}, fmt.Errorf("%w: invalid refresh token", ErrInvalidToken)
	}
	user, err := s.Repo.GetUserByID(ctx, userID)
	if err != nil || user.RefreshToken != tokens.Sha256Hex(refreshToken) {
		l.Warn("refresh_failed", "reason", "token not active")
		return "", time.Time{}, fmt.Errorf("%w: invalid refresh token", ErrInvalidToken)
	}

	accessExp := time.Now().Add(tokens.AccessTTL)
	accessToken, err := tokens.CreateAccessToken(tokens.AccessClaims{
		Email:    claims.Email,
		FullName: claims.FullName,
		Role:     claims.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: claims.Subject,
		},
	}, s.JWTSecret, accessExp)
	if err != nil {
		l.Error("refresh_failed", "reason", "cannot sign access token", "error", err)
		return "", time.Time{}, err
	}

	l.Info("refresh_successful")
	return accessToken, accessExp, nil
}

func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	l := logging.FromContext(ctx).With("svc", "auth.logout")

	if refreshToken == "" {
		return fmt.Errorf("%w: no token provided", ErrUnauthenticated)
	}

	cleared, err := s.Repo.ClearRefreshToken(ctx, tokens.Sha256Hex(refreshToken))
	if err != nil {
		l.Error("logout_failed", "error", err)
		return err
	}
	if !cleared {
		l.Warn("logout_failed", "reason", "no matching session")
		return fmt.Errorf("%w: invalid token", ErrInvalidToken)
	}

	l.Info("logout_successful")
	return nil
}

func (s *AuthService) accessClaims(user *models.User) tokens.AccessClaims {
	return tokens.AccessClaims{
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: user.ID.String(),
		},
	}
}

func (s *AuthService) refreshClaims(user *models.User) tokens.RefreshClaims {
	return tokens.RefreshClaims{
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: user.ID.String(),
		},
	}
}
