package service

import (
	"context"
	"io"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/spec-kit/venue-service/internal/domain"
	"github.com/spec-kit/venue-service/internal/persistence"
	"github.com/spec-kit/venue-service/internal/repository"
	"github.com/spec-kit/venue-service/internal/storage"
	apperrors "github.com/spec-kit/venue-service/pkg/util"
)

// MenuService manages a venue's categories and products, including product
// image storage.
type MenuService struct {
	venues     repository.VenueRepository
	categories repository.CategoryRepository
	products   repository.ProductRepository
	media      storage.MediaStore
	cache      *persistence.EntityCache
	logger     *zap.Logger
}

// MenuDependencies encapsulates collaborator requirements.
type MenuDependencies struct {
	VenueRepo    repository.VenueRepository
	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
	Media        storage.MediaStore
	Cache        *persistence.EntityCache
	Logger       *zap.Logger
}

// NewMenuService constructs the service.
func NewMenuService(deps MenuDependencies) *MenuService {
	return &MenuService{
		venues:     deps.VenueRepo,
		categories: deps.CategoryRepo,
		products:   deps.ProductRepo,
		media:      deps.Media,
		cache:      deps.Cache,
		logger:     deps.Logger,
	}
}

// canEditMenu allows admins and the venue's assigned manager.
func canEditMenu(actor *domain.Profile, venueID string) error {
	if actor == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if actor.Role == domain.RoleAdmin || managesVenue(actor, venueID) {
		return nil
	}
	return apperrors.NewForbidden("insufficient role")
}

// ListCategories returns a venue's categories ordered by display order then
// name, read through the cache.
func (s *MenuService) ListCategories(ctx context.Context, actor *domain.Profile, venueID string) ([]domain.Category, error) {
	if err := canEditMenu(actor, venueID); err != nil {
		return nil, err
	}

	var cached []domain.Category
	if err := s.cache.Get(ctx, persistence.KeyCategories(venueID), &cached); err == nil {
		return cached, nil
	}

	categories, err := s.categories.ListByVenue(ctx, venueID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	s.cache.Set(ctx, persistence.KeyCategories(venueID), categories)
	return categories, nil
}

// CreateCategory adds a category to a venue's menu.
func (s *MenuService) CreateCategory(ctx context.Context, actor *domain.Profile, category *domain.Category) (*domain.Category, error) {
	if err := canEditMenu(actor, category.VenueID); err != nil {
		return nil, err
	}
	if category.Name == "" {
		return nil, apperrors.NewValidationError("name required", nil)
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.cache.Invalidate(ctx, persistence.KeyCategories(category.VenueID))
	return category, nil
}

// UpdateCategory modifies category fields.
func (s *MenuService) UpdateCategory(ctx context.Context, actor *domain.Profile, id string, name, description *string, displayOrder *int) (*domain.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("category", map[string]any{"category_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	if err := canEditMenu(actor, category.VenueID); err != nil {
		return nil, err
	}

	if name != nil && *name != "" {
		category.Name = *name
	}
	if description != nil {
		category.Description = description
	}
	if displayOrder != nil {
		category.DisplayOrder = *displayOrder
	}
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.cache.Invalidate(ctx, persistence.KeyCategories(category.VenueID))
	return category, nil
}

// DeleteCategory removes a category. Products referencing it survive with a
// nulled category reference; the product cache is invalidated so readers see
// the change without a cascade.
func (s *MenuService) DeleteCategory(ctx context.Context, actor *domain.Profile, id string) error {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("category", map[string]any{"category_id": id})
		}
		return apperrors.MapError(err)
	}
	if err := canEditMenu(actor, category.VenueID); err != nil {
		return err
	}
	if err := s.categories.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	s.cache.Invalidate(ctx,
		persistence.KeyCategories(category.VenueID),
		persistence.KeyProducts(category.VenueID),
	)
	return nil
}

// ListProducts returns a venue's products, read through the cache.
func (s *MenuService) ListProducts(ctx context.Context, actor *domain.Profile, venueID string) ([]domain.Product, error) {
	if err := canEditMenu(actor, venueID); err != nil {
		return nil, err
	}

	var cached []domain.Product
	if err := s.cache.Get(ctx, persistence.KeyProducts(venueID), &cached); err == nil {
		return cached, nil
	}

	products, err := s.products.ListByVenue(ctx, venueID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	s.cache.Set(ctx, persistence.KeyProducts(venueID), products)
	return products, nil
}

// ListProductsByCategory returns the products of one category.
func (s *MenuService) ListProductsByCategory(ctx context.Context, actor *domain.Profile, categoryID string) ([]domain.Product, error) {
	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("category", map[string]any{"category_id": categoryID})
		}
		return nil, apperrors.MapError(err)
	}
	if err := canEditMenu(actor, category.VenueID); err != nil {
		return nil, err
	}
	products, err := s.products.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return products, nil
}

// CreateProduct adds a product to a venue's menu.
func (s *MenuService) CreateProduct(ctx context.Context, actor *domain.Profile, product *domain.Product) (*domain.Product, error) {
	if err := canEditMenu(actor, product.VenueID); err != nil {
		return nil, err
	}
	if product.Name == "" {
		return nil, apperrors.NewValidationError("name required", nil)
	}
	if product.Price.IsNegative() {
		return nil, apperrors.NewValidationError("price must not be negative", nil)
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.cache.Invalidate(ctx, persistence.KeyProducts(product.VenueID))
	return product, nil
}

// ProductUpdate carries optional product fields; nil leaves a field as-is.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	CategoryID  **string
	ImageURL    *string
	StoragePath *string
	Available   *bool
}

// UpdateProduct modifies product fields.
func (s *MenuService) UpdateProduct(ctx context.Context, actor *domain.Profile, id string, update ProductUpdate) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("product", map[string]any{"product_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	if err := canEditMenu(actor, product.VenueID); err != nil {
		return nil, err
	}

	if update.Name != nil && *update.Name != "" {
		product.Name = *update.Name
	}
	if update.Description != nil {
		product.Description = update.Description
	}
	if update.Price != nil {
		if update.Price.IsNegative() {
			return nil, apperrors.NewValidationError("price must not be negative", nil)
		}
		product.Price = *update.Price
	}
	if update.CategoryID != nil {
		product.CategoryID = *update.CategoryID
	}
	if update.ImageURL != nil {
		product.ImageURL = update.ImageURL
	}
	if update.StoragePath != nil {
		product.StoragePath = update.StoragePath
	}
	if update.Available != nil {
		product.Available = *update.Available
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.cache.Invalidate(ctx, persistence.KeyProducts(product.VenueID))
	return product, nil
}

// DeleteProduct removes a product and best-effort deletes its stored image.
func (s *MenuService) DeleteProduct(ctx context.Context, actor *domain.Profile, id string) error {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("product", map[string]any{"product_id": id})
		}
		return apperrors.MapError(err)
	}
	if err := canEditMenu(actor, product.VenueID); err != nil {
		return err
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	if product.StoragePath != nil && s.media != nil {
		if err := s.media.Delete(ctx, *product.StoragePath); err != nil {
			s.logger.Warn("product image delete failed",
				zap.String("storage_path", *product.StoragePath), zap.Error(err))
		}
	}
	s.cache.Invalidate(ctx, persistence.KeyProducts(product.VenueID))
	return nil
}

// UploadProductImage stores an image under a key derived from the venue and
// product names plus a timestamp, and returns the key and its public URL.
func (s *MenuService) UploadProductImage(ctx context.Context, actor *domain.Profile, venueID, productName, filename, contentType string, body io.Reader) (string, string, error) {
	if err := canEditMenu(actor, venueID); err != nil {
		return "", "", err
	}
	if s.media == nil {
		return "", "", apperrors.NewInternalError(nil)
	}
	venue, err := s.venues.GetByID(ctx, venueID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", "", apperrors.NewNotFound("venue", map[string]any{"venue_id": venueID})
		}
		return "", "", apperrors.MapError(err)
	}

	key := storage.ProductImageKey(venue.Name, productName, filepath.Ext(filename), time.Now())
	if err := s.media.Upload(ctx, key, contentType, body); err != nil {
		return "", "", apperrors.MapError(err)
	}
	return key, s.media.PublicURL(key), nil
}
