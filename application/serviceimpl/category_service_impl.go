package serviceimpl

import (
	"context"
	"errors"
	"sync"

	"elfateh-admin/domain/dto"
	"elfateh-admin/domain/models"
	"elfateh-admin/domain/repositories"
	"elfateh-admin/domain/services"
	"elfateh-admin/infrastructure/upstream"
	"elfateh-admin/pkg/logger"
	"elfateh-admin/pkg/pagination"
)

// categoryService ประกอบ tree สองระดับจาก flat list ของ upstream
//
// subCache จำ subcategories ต่อ main id ไว้ — โหลดแล้วไม่ refetch
// จนกว่าจะมี write (ยอมรับของเก่าได้ หน้า admin ไม่ได้เปลี่ยนบ่อย)
type categoryService struct {
	repo repositories.CategoryRepository

	mu       sync.Mutex
	subCache map[string][]models.Category
}

func NewCategoryService(repo repositories.CategoryRepository) services.CategoryService {
	return &categoryService{
		repo:     repo,
		subCache: make(map[string][]models.Category),
	}
}

func (s *categoryService) List(ctx context.Context, query *dto.CategoryListQuery) (*dto.CategoryListResponse, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = pagination.DefaultLimit
	}

	all, err := s.fetchAll(ctx)
	if err != nil {
		var envErr *upstream.UnexpectedEnvelopeError
		if errors.As(err, &envErr) {
			// รูป response เพี้ยน — ความผิดฝั่ง integration ต้องดังถึง caller
			return nil, err
		}
		logger.ErrorContext(ctx, "Failed to load categories", "error", err)
		return &dto.CategoryListResponse{
			Categories: []models.Category{},
			Pagination: pagination.Compute(1, limit, 0),
		}, ErrCategoriesLoad
	}

	// main = ไม่มี parent reference ที่เหลือทั้งหมดเป็น sub
	// ลำดับตามที่ server ส่งมา ไม่ sort
	mains := make([]models.Category, 0, len(all))
	for i := range all {
		if all[i].IsMain() {
			mains = append(mains, all[i])
		}
	}

	// แนบ subs ที่โหลดไว้แล้วก่อน filter — กติกาค้นหาเห็นเฉพาะ
	// subcategory ที่โหลดมาแล้วเท่านั้น
	s.mu.Lock()
	for i := range mains {
		if subs, ok := s.subCache[mains[i].ID]; ok {
			mains[i].SubCategories = subs
		}
	}
	s.mu.Unlock()

	filtered := mains
	if query.Search != "" {
		filtered = make([]models.Category, 0, len(mains))
		for i := range mains {
			if mains[i].MatchesWithSubs(query.Search) {
				filtered = append(filtered, mains[i])
			}
		}
	}

	total := len(filtered)
	info := pagination.Compute(query.Page, limit, total)
	start, end := pagination.Window(query.Page, limit, total)
	visible := filtered[start:end]

	// prefetch subs ของ main ที่อยู่ในหน้านี้ — พลาดตัวไหนข้ามตัวนั้น
	for i := range visible {
		if len(visible[i].SubCategories) > 0 {
			continue
		}
		subs, err := s.loadSubs(ctx, visible[i].ID)
		if err != nil {
			logger.WarnContext(ctx, "Failed to prefetch subcategories", "category_id", visible[i].ID, "error", err)
			continue
		}
		visible[i].SubCategories = subs
	}

	return &dto.CategoryListResponse{Categories: visible, Pagination: info}, nil
}

// Expand lazy load ตอนผู้ใช้กดขยาย — cache มีของอยู่แล้วไม่ยิงซ้ำ
func (s *categoryService) Expand(ctx context.Context, id string) ([]models.Category, error) {
	s.mu.Lock()
	if subs, ok := s.subCache[id]; ok && len(subs) > 0 {
		s.mu.Unlock()
		return subs, nil
	}
	s.mu.Unlock()

	return s.loadSubs(ctx, id)
}

func (s *categoryService) GetByID(ctx context.Context, id string) (*models.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		var envErr *upstream.UnexpectedEnvelopeError
		if errors.As(err, &envErr) {
			return nil, err
		}
		logger.WarnContext(ctx, "Failed to load category", "category_id", id, "error", err)
		return nil, nil
	}
	return category, nil
}

func (s *categoryService) Create(ctx context.Context, req *dto.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{
		Name:          req.Name,
		NameAr:        req.NameAr,
		Description:   req.Description,
		DescriptionAr: req.DescriptionAr,
		Image:         req.Image,
		ParentID:      req.ParentID,
		IsActive:      req.IsActive == nil || *req.IsActive,
	}

	created, err := s.repo.Create(ctx, category)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create category", "error", err)
		return nil, ErrCategoryCreate
	}

	s.invalidate()
	return created, nil
}

func (s *categoryService) Update(ctx context.Context, id string, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil || existing == nil {
		logger.WarnContext(ctx, "Category to update not found", "category_id", id, "error", err)
		return nil, ErrCategoryUpdate
	}

	applyString(&existing.Name, req.Name)
	applyString(&existing.NameAr, req.NameAr)
	applyString(&existing.Description, req.Description)
	applyString(&existing.DescriptionAr, req.DescriptionAr)
	applyString(&existing.Image, req.Image)
	if req.ParentID != nil {
		existing.ParentID = req.ParentID
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	updated, err := s.repo.Update(ctx, id, existing)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to update category", "category_id", id, "error", err)
		return nil, ErrCategoryUpdate
	}

	s.invalidate()
	return updated, nil
}

// Delete upstream cascade ลบ subcategories ให้เอง
func (s *categoryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete category", "category_id", id, "error", err)
		return ErrCategoryDelete
	}
	s.invalidate()
	return nil
}

// fetchAll ลอง admin endpoint ก่อน (ได้ของครบรวม inactive)
// พังค่อยถอยไป public
func (s *categoryService) fetchAll(ctx context.Context) ([]models.Category, error) {
	categories, err := s.repo.ListAdmin(ctx)
	if err == nil {
		return categories, nil
	}

	var envErr *upstream.UnexpectedEnvelopeError
	if errors.As(err, &envErr) {
		return nil, err
	}

	logger.WarnContext(ctx, "Admin categories endpoint failed, falling back to public", "error", err)
	return s.repo.List(ctx)
}

func (s *categoryService) loadSubs(ctx context.Context, parentID string) ([]models.Category, error) {
	subs, err := s.repo.ListByParent(ctx, parentID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.subCache[parentID] = subs
	s.mu.Unlock()

	return subs, nil
}

// invalidate ทิ้ง cache ทั้งหมดหลัง write — โหลดใหม่รอบถัดไป
func (s *categoryService) invalidate() {
	s.mu.Lock()
	s.subCache = make(map[string][]models.Category)
	s.mu.Unlock()
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
