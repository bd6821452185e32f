package upstream

import (
	"context"
	"encoding/json"
	"strconv"

	"elfateh-admin/domain/models"
	"elfateh-admin/domain/repositories"
	"elfateh-admin/pkg/pagination"
)

type productRepository struct {
	client *Client
}

func NewProductRepository(client *Client) repositories.ProductRepository {
	return &productRepository{client: client}
}

func (r *productRepository) List(ctx context.Context, filters repositories.ProductFilters) ([]models.Product, pagination.Info, error) {
	query := map[string]string{
		"page":        positiveInt(filters.Page),
		"limit":       positiveInt(filters.Limit),
		"search":      filters.Search,
		"subcategory": filters.Subcategory,
		"productType": filters.ProductType,
	}
	raw, err := r.client.Get(ctx, "/products/admin", query)
	if err != nil {
		return nil, pagination.Info{}, err
	}
	return decodeProducts("/products/admin", raw, filters.Page, filters.Limit)
}

func (r *productRepository) ListBySubcategory(ctx context.Context, subcategoryID string, filters repositories.ProductFilters) ([]models.Product, pagination.Info, error) {
	endpoint := "/products/subcategory/" + subcategoryID
	query := map[string]string{
		"page":  positiveInt(filters.Page),
		"limit": positiveInt(filters.Limit),
	}
	raw, err := r.client.Get(ctx, endpoint, query)
	if err != nil {
		return nil, pagination.Info{}, err
	}
	return decodeProducts(endpoint, raw, filters.Page, filters.Limit)
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	raw, err := r.client.Get(ctx, "/products/"+id, nil)
	if err != nil {
		return nil, err
	}
	return decodeProduct("/products/"+id, raw)
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	raw, err := r.client.Post(ctx, "/products", productPayload(product))
	if err != nil {
		return nil, err
	}
	return decodeProduct("/products", raw)
}

func (r *productRepository) Update(ctx context.Context, id string, product *models.Product) (*models.Product, error) {
	raw, err := r.client.Put(ctx, "/products/"+id, productPayload(product))
	if err != nil {
		return nil, err
	}
	return decodeProduct("/products/"+id, raw)
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Delete(ctx, "/products/"+id)
	return err
}

func decodeProducts(endpoint string, raw []byte, page, limit int) ([]models.Product, pagination.Info, error) {
	env, err := DecodeList(endpoint, raw)
	if err != nil {
		return nil, pagination.Info{}, err
	}
	var wires []wireProduct
	if err := json.Unmarshal(env.Items, &wires); err != nil {
		return nil, pagination.Info{}, &UnexpectedEnvelopeError{Endpoint: endpoint, Snippet: snippet(env.Items)}
	}
	products := make([]models.Product, 0, len(wires))
	for i := range wires {
		products = append(products, wires[i].toModel())
	}
	return products, envInfo(env, page, limit, len(products)), nil
}

func decodeProduct(endpoint string, raw []byte) (*models.Product, error) {
	obj, err := DecodeObject(endpoint, raw)
	if err != nil {
		return nil, err
	}
	var wire wireProduct
	if err := json.Unmarshal(obj, &wire); err != nil {
		return nil, &UnexpectedEnvelopeError{Endpoint: endpoint, Snippet: snippet(obj)}
	}
	product := wire.toModel()
	return &product, nil
}

func productPayload(p *models.Product) map[string]any {
	payload := map[string]any{
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"stock":       p.Stock,
		"images":      p.Images,
		"productType": p.ProductType,
		"isActive":    p.IsActive,
	}
	if p.Category.ID != "" {
		payload["category"] = p.Category.ID
	}
	if p.Subcategory != "" {
		payload["subcategory"] = p.Subcategory
	}
	if p.Discount > 0 {
		payload["discount"] = p.Discount
	}
	return payload
}

// envInfo สร้าง pagination.Info — ใช้ meta จาก upstream ถ้ามี
// ไม่มีก็คำนวณจากจำนวนที่ได้มา
func envInfo(env *ListEnvelope, page, limit, count int) pagination.Info {
	if env.HasMeta {
		info := pagination.Info{
			Current: env.Page,
			Pages:   env.TotalPages,
			Total:   env.Total,
			Limit:   limit,
		}
		if info.Current < 1 {
			info.Current = page
		}
		if info.Pages < 1 {
			info.Pages = pagination.TotalPages(info.Total, limit)
		}
		return info
	}
	return pagination.Compute(page, limit, count)
}

func positiveInt(v int) string {
	if v <= 0 {
		return ""
	}
	return strconv.Itoa(v)
}
