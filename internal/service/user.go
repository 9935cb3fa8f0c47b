package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/techmarket/storefront/internal/models"
	"github.com/techmarket/storefront/internal/transport"
)

// Admin-facing user management lives on AuthService, it owns the
// credential store.

func (s *AuthService) ListCustomers(ctx context.Context) ([]models.User, error) {
	return s.Repo.ListCustomers(ctx)
}

func (s *AuthService) UpdateUser(ctx context.Context, id uuid.UUID, req transport.UpdateUserRequest) (*models.User, error) {
	updates := map[string]any{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Role != nil {
		if *req.Role != models.RoleCustomer && *req.Role != models.RoleAdmin {
			return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, *req.Role)
		}
		updates["role"] = *req.Role
	}

	user, err := s.Repo.UpdateUser(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := s.Repo.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user not found", ErrNotFound)
		}
		return err
	}
	return nil
}
