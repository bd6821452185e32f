package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"elfateh-admin/application/serviceimpl"
	"elfateh-admin/domain/dto"
	"elfateh-admin/domain/models"
	"elfateh-admin/domain/services"
	"elfateh-admin/pkg/logger"
	"elfateh-admin/pkg/pagination"
	"elfateh-admin/pkg/utils"
)

type ProductHandler struct {
	productService services.ProductService
}

func NewProductHandler(productService services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List สินค้าแบบแบ่งหน้า (upstream เป็นคนแบ่ง)
// GET /api/v1/products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var query dto.ProductListQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	page, err := h.productService.List(ctx, &query)
	if err != nil {
		if errors.Is(err, serviceimpl.ErrProductsLoad) {
			return utils.SuccessWithMessage(c, emptyProductPage(&query), err.Error())
		}
		return upstreamOrInternal(c, err)
	}

	return utils.SuccessResponse(c, page)
}

// ListBySubcategory สินค้าใน subcategory
// GET /api/v1/products/subcategory/:id
func (h *ProductHandler) ListBySubcategory(c *fiber.Ctx) error {
	ctx := c.UserContext()
	subcategoryID := c.Params("id")

	var query dto.ProductListQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	page, err := h.productService.ListBySubcategory(ctx, subcategoryID, &query)
	if err != nil {
		if errors.Is(err, serviceimpl.ErrProductsLoad) {
			return utils.SuccessWithMessage(c, emptyProductPage(&query), err.Error())
		}
		return upstreamOrInternal(c, err)
	}

	return utils.SuccessResponse(c, page)
}

// GetByID ดึงสินค้าเดี่ยว
// GET /api/v1/products/:id
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := c.Params("id")

	product, err := h.productService.GetByID(ctx, id)
	if err != nil {
		return upstreamOrInternal(c, err)
	}
	if product == nil {
		return utils.NotFoundResponse(c, "Product not found")
	}
	return utils.SuccessResponse(c, product)
}

// Create เพิ่มสินค้าใหม่
// POST /api/v1/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	product, err := h.productService.Create(ctx, &req)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	logger.InfoContext(ctx, "Product created", "product_id", product.ID)
	return utils.CreatedResponse(c, product)
}

// Update อัปเดตสินค้า
// PUT /api/v1/products/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := c.Params("id")

	var req dto.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	product, err := h.productService.Update(ctx, id, &req)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, product)
}

// Delete ลบสินค้า
// DELETE /api/v1/products/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := c.Params("id")

	if err := h.productService.Delete(ctx, id); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	logger.InfoContext(ctx, "Product deleted", "product_id", id)
	return utils.SuccessResponse(c, fiber.Map{"deleted": true})
}

func emptyProductPage(query *dto.ProductListQuery) *dto.ProductPage {
	return &dto.ProductPage{
		Items: []models.Product{},
		Info:  pagination.Compute(query.Page, query.Limit, 0),
	}
}
