package upstream

import (
	"context"
	"encoding/json"

	"elfateh-admin/domain/models"
	"elfateh-admin/domain/repositories"
)

type categoryRepository struct {
	client *Client
}

func NewCategoryRepository(client *Client) repositories.CategoryRepository {
	return &categoryRepository{client: client}
}

func (r *categoryRepository) List(ctx context.Context) ([]models.Category, error) {
	raw, err := r.client.Get(ctx, "/categories", nil)
	if err != nil {
		return nil, err
	}
	return decodeCategories("/categories", raw)
}

func (r *categoryRepository) ListAdmin(ctx context.Context) ([]models.Category, error) {
	raw, err := r.client.Get(ctx, "/categories/admin", nil)
	if err != nil {
		return nil, err
	}
	return decodeCategories("/categories/admin", raw)
}

// ListByParent — upstream ไม่มี endpoint แยกสำหรับ subcategories
// ดึง list ทั้งหมดแล้วกรองด้วย parent id ฝั่งเรา
// (ตัวที่ไม่มี parent คือ main category ต้องไม่ปนเข้ามา)
func (r *categoryRepository) ListByParent(ctx context.Context, parentID string) ([]models.Category, error) {
	categories, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	subs := make([]models.Category, 0, len(categories))
	for i := range categories {
		if categories[i].HasParent(parentID) {
			subs = append(subs, categories[i])
		}
	}
	return subs, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	raw, err := r.client.Get(ctx, "/categories/"+id, nil)
	if err != nil {
		return nil, err
	}
	return decodeCategory("/categories/"+id, raw)
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) (*models.Category, error) {
	raw, err := r.client.Post(ctx, "/categories", categoryPayload(category))
	if err != nil {
		return nil, err
	}
	return decodeCategory("/categories", raw)
}

func (r *categoryRepository) Update(ctx context.Context, id string, category *models.Category) (*models.Category, error) {
	raw, err := r.client.Put(ctx, "/categories/"+id, categoryPayload(category))
	if err != nil {
		return nil, err
	}
	return decodeCategory("/categories/"+id, raw)
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Delete(ctx, "/categories/"+id)
	return err
}

func decodeCategory(endpoint string, raw []byte) (*models.Category, error) {
	obj, err := DecodeObject(endpoint, raw)
	if err != nil {
		return nil, err
	}
	var wire wireCategory
	if err := json.Unmarshal(obj, &wire); err != nil {
		return nil, &UnexpectedEnvelopeError{Endpoint: endpoint, Snippet: snippet(obj)}
	}
	category := wire.toModel()
	return &category, nil
}

// categoryPayload รูปที่ upstream รับตอน create/update
func categoryPayload(c *models.Category) map[string]any {
	payload := map[string]any{
		"name":          c.Name,
		"nameAr":        c.NameAr,
		"description":   c.Description,
		"descriptionAr": c.DescriptionAr,
		"icon":          c.Icon,
		"image":         c.Image,
		"isActive":      c.IsActive,
	}
	if c.ParentID != nil && *c.ParentID != "" {
		payload["parent"] = *c.ParentID
	}
	return payload
}
