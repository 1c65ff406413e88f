package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mercadito/marketplace-api/internal/core/domain"
	"github.com/mercadito/marketplace-api/internal/core/ports"
)

// DeliveryService implements delivery operations, all scoped to the acting
// user's ownership.
type DeliveryService struct {
	repo     ports.DeliveryRepository
	userRepo ports.UserRepository
	logger   zerolog.Logger
}

func NewDeliveryService(repo ports.DeliveryRepository, userRepo ports.UserRepository, logger zerolog.Logger) *DeliveryService {
	return &DeliveryService{repo: repo, userRepo: userRepo, logger: logger}
}

// Create records a delivery owned by the acting user. Date defaults to now,
// status to pending.
func (s *DeliveryService) Create(ctx context.Context, actor domain.Principal, input ports.CreateDeliveryInput) (*domain.Delivery, error) {
	owner, err := s.userRepo.FindByEmail(ctx, actor.Email)
	if err != nil {
		return nil, err
	}

	status := domain.DeliveryStatus(input.Status)
	if status == "" {
		status = domain.StatusPending
	}
	if !status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	delivery := &domain.Delivery{
		OwnerID:   owner.ID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		Date:      date,
		Status:    status,
		Comments:  input.Comments,
		Score:     input.Score,
	}

	created, err := s.repo.Create(ctx, delivery)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("delivery_id", created.ID).Str("owner_id", owner.ID).Msg("delivery created")
	return created, nil
}

// Get returns the delivery when it exists and is owned by the acting user.
func (s *DeliveryService) Get(ctx context.Context, actor domain.Principal, id string) (*domain.Delivery, error) {
	user, err := s.userRepo.FindByEmail(ctx, actor.Email)
	if err != nil {
		return nil, err
	}

	delivery, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.AuthorizeOwner(user.ID, delivery.OwnerID); err != nil {
		return nil, err
	}
	return delivery, nil
}

// List returns the actor's deliveries, optionally bounded to [start, end]
// inclusive on the delivery date.
func (s *DeliveryService) List(ctx context.Context, actor domain.Principal, start, end time.Time) ([]*domain.Delivery, error) {
	user, err := s.userRepo.FindByEmail(ctx, actor.Email)
	if err != nil {
		return nil, err
	}

	return s.repo.List(ctx, ports.DeliveryFilter{
		OwnerID: user.ID,
		Start:   start,
		End:     end,
	})
}

// Update applies the buyer-editable fields (comments, score). Same existence
// and ownership checks as Get.
func (s *DeliveryService) Update(ctx context.Context, actor domain.Principal, id string, update ports.DeliveryUpdate) error {
	user, err := s.userRepo.FindByEmail(ctx, actor.Email)
	if err != nil {
		return err
	}

	delivery, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := domain.AuthorizeOwner(user.ID, delivery.OwnerID); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, id, update); err != nil {
		return err
	}

	s.logger.Info().Str("delivery_id", id).Msg("delivery updated")
	return nil
}
