package service

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/venue-service/internal/domain"
	apperrors "github.com/spec-kit/venue-service/pkg/util"
)

func newMenuFixture() (*MenuService, *fakeVenueRepo, *fakeCategoryRepo, *fakeProductRepo, *fakeMediaStore) {
	venues := newFakeVenueRepo()
	categories := newFakeCategoryRepo()
	products := newFakeProductRepo()
	media := &fakeMediaStore{}
	svc := NewMenuService(MenuDependencies{
		VenueRepo:    venues,
		CategoryRepo: categories,
		ProductRepo:  products,
		Media:        media,
		Logger:       zap.NewNop(),
	})
	return svc, venues, categories, products, media
}

func TestCreateCategoryAuthorization(t *testing.T) {
	svc, _, _, _, _ := newMenuFixture()
	category := func() *domain.Category {
		return &domain.Category{VenueID: "venue-1", Name: "Cocktails"}
	}

	_, err := svc.CreateCategory(context.Background(), &domain.Profile{ID: "b-1", Role: domain.RoleBartender, VenueID: strptr("venue-1")}, category())
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)

	_, err = svc.CreateCategory(context.Background(), managerActor("venue-2"), category())
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)

	created, err := svc.CreateCategory(context.Background(), managerActor("venue-1"), category())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	created, err = svc.CreateCategory(context.Background(), adminActor(), category())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}

func TestDeleteCategoryLeavesProducts(t *testing.T) {
	svc, _, categories, products, _ := newMenuFixture()
	categories.categories["cat-1"] = &domain.Category{ID: "cat-1", VenueID: "venue-1", Name: "Cocktails"}
	products.products["prod-1"] = &domain.Product{ID: "prod-1", VenueID: "venue-1", Name: "Negroni", CategoryID: strptr("cat-1")}

	err := svc.DeleteCategory(context.Background(), adminActor(), "cat-1")
	require.NoError(t, err)

	_, ok := categories.categories["cat-1"]
	assert.False(t, ok)
	// The product row is untouched here; the schema nulls the reference.
	_, ok = products.products["prod-1"]
	assert.True(t, ok)
}

func TestCreateProductRejectsNegativePrice(t *testing.T) {
	svc, _, _, _, _ := newMenuFixture()

	_, err := svc.CreateProduct(context.Background(), adminActor(), &domain.Product{
		VenueID: "venue-1",
		Name:    "Negroni",
		Price:   decimal.NewFromInt(-1),
	})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestUpdateProductClearCategory(t *testing.T) {
	svc, _, _, products, _ := newMenuFixture()
	products.products["prod-1"] = &domain.Product{
		ID: "prod-1", VenueID: "venue-1", Name: "Negroni",
		Price: decimal.NewFromInt(12), CategoryID: strptr("cat-1"),
	}

	// Absent pointer: category unchanged.
	updated, err := svc.UpdateProduct(context.Background(), adminActor(), "prod-1", ProductUpdate{
		Name: strptr("Negroni Sbagliato"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.CategoryID)

	// Explicit null: category cleared.
	var cleared *string
	updated, err = svc.UpdateProduct(context.Background(), adminActor(), "prod-1", ProductUpdate{
		CategoryID: &cleared,
	})
	require.NoError(t, err)
	assert.Nil(t, updated.CategoryID)
	assert.Equal(t, "Negroni Sbagliato", updated.Name)
}

func TestDeleteProductRemovesStoredImage(t *testing.T) {
	svc, _, _, products, media := newMenuFixture()
	products.products["prod-1"] = &domain.Product{
		ID: "prod-1", VenueID: "venue-1", Name: "Negroni",
		StoragePath: strptr("taproom/negroni-123.jpg"),
	}

	err := svc.DeleteProduct(context.Background(), adminActor(), "prod-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"taproom/negroni-123.jpg"}, media.deleted)
}

func TestUploadProductImageKey(t *testing.T) {
	svc, venues, _, _, media := newMenuFixture()
	venues.venues["venue-1"] = &domain.Venue{ID: "venue-1", Name: "The Taproom"}

	key, publicURL, err := svc.UploadProductImage(
		context.Background(), managerActor("venue-1"), "venue-1",
		"Gin & Tonic", "photo.JPG", "image/jpeg", strings.NewReader("fake-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(key, "the-taproom/gin---tonic-"), key)
	assert.True(t, strings.HasSuffix(key, ".JPG"), key)
	assert.Equal(t, "https://cdn.example.com/"+key, publicURL)
	assert.Equal(t, []string{key}, media.uploaded)
}

func TestUploadProductImageVenueMissing(t *testing.T) {
	svc, _, _, _, _ := newMenuFixture()

	_, _, err := svc.UploadProductImage(
		context.Background(), adminActor(), "venue-missing",
		"Negroni", "photo.png", "image/png", strings.NewReader("x"))
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}
