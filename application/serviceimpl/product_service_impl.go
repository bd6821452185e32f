package serviceimpl

import (
	"context"
	"errors"

	"elfateh-admin/domain/dto"
	"elfateh-admin/domain/models"
	"elfateh-admin/domain/repositories"
	"elfateh-admin/domain/services"
	"elfateh-admin/infrastructure/upstream"
	"elfateh-admin/pkg/logger"
	"elfateh-admin/pkg/pagination"
)

type productService struct {
	repo repositories.ProductRepository
}

func NewProductService(repo repositories.ProductRepository) services.ProductService {
	return &productService{repo: repo}
}

func (s *productService) List(ctx context.Context, query *dto.ProductListQuery) (*dto.ProductPage, error) {
	filters := repositories.ProductFilters{
		Page:        query.Page,
		Limit:       defaultLimit(query.Limit),
		Search:      query.Search,
		Subcategory: query.Subcategory,
		ProductType: query.ProductType,
	}

	products, info, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, s.listError(ctx, err)
	}
	return &dto.ProductPage{Items: products, Info: info}, nil
}

func (s *productService) ListBySubcategory(ctx context.Context, subcategoryID string, query *dto.ProductListQuery) (*dto.ProductPage, error) {
	filters := repositories.ProductFilters{Page: query.Page, Limit: defaultLimit(query.Limit)}

	products, info, err := s.repo.ListBySubcategory(ctx, subcategoryID, filters)
	if err != nil {
		return nil, s.listError(ctx, err)
	}
	return &dto.ProductPage{Items: products, Info: info}, nil
}

func (s *productService) GetByID(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		var envErr *upstream.UnexpectedEnvelopeError
		if errors.As(err, &envErr) {
			return nil, err
		}
		logger.WarnContext(ctx, "Failed to load product", "product_id", id, "error", err)
		return nil, nil
	}
	return product, nil
}

func (s *productService) Create(ctx context.Context, req *dto.CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    models.ProductCategoryRef{ID: req.Category},
		Subcategory: req.Subcategory,
		Images:      req.Images,
		ProductType: req.ProductType,
		Discount:    req.Discount,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create product", "error", err)
		return nil, ErrProductCreate
	}
	return created, nil
}

func (s *productService) Update(ctx context.Context, id string, req *dto.UpdateProductRequest) (*models.Product, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil || existing == nil {
		logger.WarnContext(ctx, "Product to update not found", "product_id", id, "error", err)
		return nil, ErrProductUpdate
	}

	applyString(&existing.Name, req.Name)
	applyString(&existing.Description, req.Description)
	if req.Price != nil {
		existing.Price = *req.Price
	}
	if req.Stock != nil {
		existing.Stock = *req.Stock
	}
	if req.Category != nil {
		existing.Category = models.ProductCategoryRef{ID: *req.Category}
	}
	applyString(&existing.Subcategory, req.Subcategory)
	if req.Images != nil {
		existing.Images = req.Images
	}
	applyString(&existing.ProductType, req.ProductType)
	if req.Discount != nil {
		existing.Discount = *req.Discount
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	updated, err := s.repo.Update(ctx, id, existing)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to update product", "product_id", id, "error", err)
		return nil, ErrProductUpdate
	}
	return updated, nil
}

func (s *productService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete product", "product_id", id, "error", err)
		return ErrProductDelete
	}
	return nil
}

func (s *productService) listError(ctx context.Context, err error) error {
	var envErr *upstream.UnexpectedEnvelopeError
	if errors.As(err, &envErr) {
		return err
	}
	logger.ErrorContext(ctx, "Failed to load products", "error", err)
	return ErrProductsLoad
}

func defaultLimit(limit int) int {
	if limit <= 0 {
		return pagination.DefaultLimit
	}
	return limit
}
