package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mercadito/marketplace-api/internal/core/domain"
	"github.com/mercadito/marketplace-api/internal/core/ports"
)

// UserService implements account reads, partial updates, and soft deletion.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies a partial update to the account. The actor must be the
// account holder: its session email has to match the target record's email.
func (s *UserService) Update(ctx context.Context, actor domain.Principal, id string, input ports.UpdateUserInput) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.AuthorizeOwner(actor.Email, user.Email); err != nil {
		return err
	}

	update := ports.UserUpdate{
		Username: input.Username,
		Email:    input.Email,
		Name:     input.Name,
		Lastname: input.Lastname,
		Phone:    input.Phone,
		Address:  input.Address,
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		update.PasswordHash = string(hash)
	}

	if err := s.repo.Update(ctx, id, update); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", id).Msg("user updated")
	return nil
}

// Delete soft-deletes the account, leaving a tombstone record. Same ownership
// requirement as Update.
func (s *UserService) Delete(ctx context.Context, actor domain.Principal, id string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.AuthorizeOwner(actor.Email, user.Email); err != nil {
		return err
	}

	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", id).Msg("user soft-deleted")
	return nil
}
