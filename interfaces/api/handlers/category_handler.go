package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"elfateh-admin/application/serviceimpl"
	"elfateh-admin/domain/dto"
	"elfateh-admin/domain/services"
	"elfateh-admin/pkg/logger"
	"elfateh-admin/pkg/utils"
)

type CategoryHandler struct {
	categoryService services.CategoryService
}

func NewCategoryHandler(categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// List main categories ที่ filter + แบ่งหน้าแล้ว พร้อม subs ที่ prefetch มา
// GET /api/v1/categories
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var query dto.CategoryListQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	resp, err := h.categoryService.List(ctx, &query)
	if err != nil {
		if errors.Is(err, serviceimpl.ErrCategoriesLoad) {
			// read path: ตอบผลว่างพร้อมข้อความ ไม่ให้หน้า admin พัง
			return utils.SuccessWithMessage(c, resp, err.Error())
		}
		return upstreamOrInternal(c, err)
	}

	return utils.SuccessResponse(c, resp)
}

// GetByID ดึง category เดี่ยว
// GET /api/v1/categories/:id
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := c.Params("id")

	category, err := h.categoryService.GetByID(ctx, id)
	if err != nil {
		return upstreamOrInternal(c, err)
	}
	if category == nil {
		return utils.NotFoundResponse(c, "Category not found")
	}
	return utils.SuccessResponse(c, category)
}

// Subcategories lazy load subs ตอนกดขยาย main category
// GET /api/v1/categories/:id/subcategories
func (h *CategoryHandler) Subcategories(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := c.Params("id")

	subs, err := h.categoryService.Expand(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Failed to expand category", "category_id", id, "error", err)
		return utils.SuccessWithMessage(c, dto.SubCategoryListResponse{SubCategories: nil}, serviceimpl.ErrCategoriesLoad.Error())
	}

	return utils.SuccessResponse(c, dto.SubCategoryListResponse{SubCategories: subs})
}

// Create สร้าง category ใหม่
// POST /api/v1/categories
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	category, err := h.categoryService.Create(ctx, &req)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	logger.InfoContext(ctx, "Category created", "category_id", category.ID)
	return utils.CreatedResponse(c, category)
}

// Update อัปเดต category
// PUT /api/v1/categories/:id
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := c.Params("id")

	var req dto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	category, err := h.categoryService.Update(ctx, id, &req)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, category)
}

// Delete ลบ category (subcategories ถูก cascade ฝั่ง upstream)
// DELETE /api/v1/categories/:id
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := c.Params("id")

	if err := h.categoryService.Delete(ctx, id); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	logger.InfoContext(ctx, "Category deleted", "category_id", id)
	return utils.SuccessResponse(c, fiber.Map{"deleted": true})
}
