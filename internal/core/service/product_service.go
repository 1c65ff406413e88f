package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mercadito/marketplace-api/internal/core/domain"
	"github.com/mercadito/marketplace-api/internal/core/ports"
)

// CategoryCache abstracts the per-user category cache (Redis). Cache failures
// are never fatal: the service logs and falls through to the repository.
type CategoryCache interface {
	Get(ctx context.Context, userID string) ([]string, bool, error)
	Set(ctx context.Context, userID string, categories []string) error
	Invalidate(ctx context.Context, userID string) error
}

// ProductService implements the product catalog.
type ProductService struct {
	repo     ports.ProductRepository
	userRepo ports.UserRepository
	cache    CategoryCache
	logger   zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, userRepo ports.UserRepository, cache CategoryCache, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, userRepo: userRepo, cache: cache, logger: logger}
}

// Create lists a new product owned by the acting user. The actor is resolved
// from its session email and must be an active account.
func (s *ProductService) Create(ctx context.Context, actor domain.Principal, input ports.CreateProductInput) (*domain.Product, error) {
	owner, err := s.userRepo.FindByEmail(ctx, actor.Email)
	if err != nil {
		return nil, err
	}

	product := &domain.Product{
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		Image:       input.Image,
		Category:    input.Category,
		OwnerID:     owner.ID,
		Active:      true,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.invalidateCategories(ctx, owner.ID)
	s.logger.Info().Str("product_id", created.ID).Str("owner_id", owner.ID).Msg("product created")
	return created, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns active products matching the filter. When the filter names an
// owner, that user must resolve to an active account.
func (s *ProductService) List(ctx context.Context, filter ports.ProductFilter) ([]*domain.Product, error) {
	if filter.OwnerID != "" {
		if _, err := s.userRepo.FindByID(ctx, filter.OwnerID); err != nil {
			return nil, err
		}
	}
	return s.repo.List(ctx, filter)
}

// Categories returns the distinct categories across the user's active
// products, served from cache when warm.
func (s *ProductService) Categories(ctx context.Context, userID string) ([]string, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, user.ID)
		if err != nil {
			s.logger.Warn().Err(err).Str("user_id", user.ID).Msg("category cache read failed")
		} else if ok {
			return cached, nil
		}
	}

	categories, err := s.repo.DistinctCategories(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, user.ID, categories); err != nil {
			s.logger.Warn().Err(err).Str("user_id", user.ID).Msg("category cache write failed")
		}
	}
	return categories, nil
}

// Update applies a partial update. The product must be active and owned by
// the acting user.
func (s *ProductService) Update(ctx context.Context, actor domain.Principal, id string, update ports.ProductUpdate) error {
	owner, err := s.authorize(ctx, actor, id)
	if err != nil {
		return err
	}

	if err := s.repo.Update(ctx, id, update); err != nil {
		return err
	}

	s.invalidateCategories(ctx, owner)
	s.logger.Info().Str("product_id", id).Msg("product updated")
	return nil
}

// Delete soft-deletes the product. Same ownership requirement as Update.
func (s *ProductService) Delete(ctx context.Context, actor domain.Principal, id string) error {
	owner, err := s.authorize(ctx, actor, id)
	if err != nil {
		return err
	}

	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}

	s.invalidateCategories(ctx, owner)
	s.logger.Info().Str("product_id", id).Msg("product soft-deleted")
	return nil
}

// authorize resolves the product and the acting user and checks ownership.
// Returns the owner id so callers can invalidate the category cache.
func (s *ProductService) authorize(ctx context.Context, actor domain.Principal, productID string) (string, error) {
	product, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		return "", err
	}

	user, err := s.userRepo.FindByEmail(ctx, actor.Email)
	if err != nil {
		return "", err
	}

	if err := domain.AuthorizeOwner(user.ID, product.OwnerID); err != nil {
		return "", err
	}
	return product.OwnerID, nil
}

func (s *ProductService) invalidateCategories(ctx context.Context, ownerID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, ownerID); err != nil {
		s.logger.Warn().Err(err).Str("user_id", ownerID).Msg("category cache invalidation failed")
	}
}
