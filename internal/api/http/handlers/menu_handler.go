package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/venue-service/internal/api/dto"
	"github.com/spec-kit/venue-service/internal/domain"
	"github.com/spec-kit/venue-service/internal/service"
)

// MenuHandler exposes category and product management for a venue's menu.
type MenuHandler struct {
	menuService *service.MenuService
}

// NewMenuHandler constructs handler.
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// ListCategories handles GET /venues/:id/categories.
func (h *MenuHandler) ListCategories(c *fiber.Ctx) error {
	actor, err := actorProfile(c)
	if err != nil {
		return err
	}
	categories, err := h.menuService.ListCategories(c.UserContext(), actor, c.Params("id"))
	if err != nil {
		return err
	}
	resp := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		resp = append(resp, categoryResponse(&categories[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// CreateCategory handles POST /venues/:id/categories.
func (h *MenuHandler) CreateCategory(c *fiber.Ctx) error {
	actor, err := actorProfile(c)
	if err != nil {
		return err
	}
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == nil || *req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "name required")
	}
	category := &domain.Category{
		VenueID:     c.Params("id"),
		Name:        *req.Name,
		Description: req.Description,
	}
	if req.DisplayOrder != nil {
		category.DisplayOrder = *req.DisplayOrder
	}
	created, err := h.menuService.CreateCategory(c.UserContext(), actor, category)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": categoryResponse(created)})
}

// UpdateCategory handles PUT /categories/:id.
func (h *MenuHandler) UpdateCategory(c *fiber.Ctx) error {
	actor, err := actorProfile(c)
	if err != nil {
		return err
	}
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	updated, err := h.menuService.UpdateCategory(c.UserContext(), actor, c.Params("id"), req.Name, req.Description, req.DisplayOrder)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": categoryResponse(updated)})
}

// DeleteCategory handles DELETE /categories/:id. Products under the
// category survive uncategorized.
func (h *MenuHandler) DeleteCategory(c *fiber.Ctx) error {
	actor, err := actorProfile(c)
	if err != nil {
		return err
	}
	if err := h.menuService.DeleteCategory(c.UserContext(), actor, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "deleted"}})
}

// ListProducts handles GET /venues/:id/products.
func (h *MenuHandler) ListProducts(c *fiber.Ctx) error {
	actor, err := actorProfile(c)
	if err != nil {
		return err
	}
	products, err := h.menuService.ListProducts(c.UserContext(), actor, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": productResponses(products)})
}

// ListCategoryProducts handles GET /categories/:id/products.
func (h *MenuHandler) ListCategoryProducts(c *fiber.Ctx) error {
	actor, err := actorProfile(c)
	if err != nil {
		return err
	}
	products, err := h.menuService.ListProductsByCategory(c.UserContext(), actor, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": productResponses(products)})
}

// CreateProduct handles POST /venues/:id/products.
func (h *MenuHandler) CreateProduct(c *fiber.Ctx) error {
	actor, err := actorProfile(c)
	if err != nil {
		return err
	}
	var req dto.ProductCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "name required")
	}
	product := &domain.Product{
		VenueID:     c.Params("id"),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		ImageURL:    req.ImageURL,
		StoragePath: req.StoragePath,
		Available:   true,
	}
	if req.Available != nil {
		product.Available = *req.Available
	}
	created, err := h.menuService.CreateProduct(c.UserContext(), actor, product)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": productResponse(created)})
}

// UpdateProduct handles PUT /products/:id.
func (h *MenuHandler) UpdateProduct(c *fiber.Ctx) error {
	actor, err := actorProfile(c)
	if err != nil {
		return err
	}
	var req dto.ProductUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	updated, err := h.menuService.UpdateProduct(c.UserContext(), actor, c.Params("id"), service.ProductUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		ImageURL:    req.ImageURL,
		StoragePath: req.StoragePath,
		Available:   req.Available,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": productResponse(updated)})
}

// DeleteProduct handles DELETE /products/:id.
func (h *MenuHandler) DeleteProduct(c *fiber.Ctx) error {
	actor, err := actorProfile(c)
	if err != nil {
		return err
	}
	if err := h.menuService.DeleteProduct(c.UserContext(), actor, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "deleted"}})
}

// UploadProductImage handles POST /venues/:id/products/images. Multipart
// form with an "image" file and a "product_name" field.
func (h *MenuHandler) UploadProductImage(c *fiber.Ctx) error {
	actor, err := actorProfile(c)
	if err != nil {
		return err
	}
	productName := c.FormValue("product_name")
	if productName == "" {
		return fiber.NewError(http.StatusBadRequest, "product_name required")
	}
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "image file required")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "unable to read image file")
	}
	defer file.Close()

	key, publicURL, err := h.menuService.UploadProductImage(
		c.UserContext(), actor, c.Params("id"), productName,
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.UploadResponse{
		StoragePath: key,
		PublicURL:   publicURL,
	}})
}

func categoryResponse(cat *domain.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:           cat.ID,
		VenueID:      cat.VenueID,
		Name:         cat.Name,
		Description:  cat.Description,
		DisplayOrder: cat.DisplayOrder,
		CreatedAt:    cat.CreatedAt,
	}
}

func productResponse(p *domain.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		VenueID:     p.VenueID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
		ImageURL:    p.ImageURL,
		StoragePath: p.StoragePath,
		Available:   p.Available,
		CreatedAt:   p.CreatedAt,
	}
}

func productResponses(products []domain.Product) []dto.ProductResponse {
	resp := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		resp = append(resp, productResponse(&products[i]))
	}
	return resp
}
