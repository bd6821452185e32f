package upstream

import (
	"bytes"
	"encoding/json"
	"time"

	"elfateh-admin/domain/models"
)

// upstream เป็น Mongo-style API: id มาได้ทั้ง "_id" และ "id"
// และ reference มาได้ทั้ง string id และ object เต็ม

type wireRef struct {
	ID   string `json:"_id"`
	Alt  string `json:"id"`
	Name string `json:"name"`
}

// refID แกะ id จาก raw ที่เป็นได้ทั้ง string และ object
func refID(raw json.RawMessage) string {
	t := bytes.TrimSpace(raw)
	if len(t) == 0 || string(t) == "null" {
		return ""
	}
	if t[0] == '"' {
		var s string
		if json.Unmarshal(t, &s) == nil {
			return s
		}
		return ""
	}
	var ref wireRef
	if json.Unmarshal(t, &ref) == nil {
		if ref.ID != "" {
			return ref.ID
		}
		return ref.Alt
	}
	return ""
}

func refName(raw json.RawMessage) string {
	t := bytes.TrimSpace(raw)
	if len(t) == 0 || t[0] != '{' {
		return ""
	}
	var ref wireRef
	if json.Unmarshal(t, &ref) == nil {
		return ref.Name
	}
	return ""
}

type wireCategory struct {
	MongoID       string          `json:"_id"`
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	NameAr        string          `json:"nameAr"`
	Description   string          `json:"description"`
	DescriptionAr string          `json:"descriptionAr"`
	Icon          string          `json:"icon"`
	Image         string          `json:"image"`
	ParentID      string          `json:"parentId"`
	Parent        json.RawMessage `json:"parent"`
	ProductCount  int             `json:"productCount"`
	IsActive      *bool           `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func (w *wireCategory) toModel() models.Category {
	c := models.Category{
		ID:            firstNonEmpty(w.MongoID, w.ID),
		Name:          w.Name,
		NameAr:        w.NameAr,
		Description:   w.Description,
		DescriptionAr: w.DescriptionAr,
		Icon:          w.Icon,
		Image:         w.Image,
		ProductCount:  w.ProductCount,
		IsActive:      w.IsActive == nil || *w.IsActive,
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
	}
	// main category คือตัวที่ไม่มี parent reference เลย
	if pid := firstNonEmpty(w.ParentID, refID(w.Parent)); pid != "" {
		c.ParentID = &pid
	}
	return c
}

type wireProduct struct {
	MongoID     string          `json:"_id"`
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Stock       int             `json:"stock"`
	Category    json.RawMessage `json:"category"`
	Subcategory json.RawMessage `json:"subcategory"`
	Images      []string        `json:"images"`
	Image       string          `json:"image"`
	ProductType string          `json:"productType"`
	Discount    float64         `json:"discount"`
	IsActive    *bool           `json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (w *wireProduct) toModel() models.Product {
	p := models.Product{
		ID:          firstNonEmpty(w.MongoID, w.ID),
		Name:        w.Name,
		Description: w.Description,
		Price:       w.Price,
		Stock:       w.Stock,
		Category:    models.ProductCategoryRef{ID: refID(w.Category), Name: refName(w.Category)},
		Subcategory: refID(w.Subcategory),
		Images:      w.Images,
		ProductType: w.ProductType,
		Discount:    w.Discount,
		IsActive:    w.IsActive == nil || *w.IsActive,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
	if len(p.Images) == 0 && w.Image != "" {
		p.Images = []string{w.Image}
	}
	return p
}

type wireOrder struct {
	MongoID       string              `json:"_id"`
	ID            string              `json:"id"`
	OrderNumber   string              `json:"orderNumber"`
	CustomerInfo  models.CustomerInfo `json:"customerInfo"`
	Items         []wireOrderItem     `json:"items"`
	TotalAmount   float64             `json:"totalAmount"`
	Total         float64             `json:"total"`
	Status        string              `json:"status"`
	PaymentStatus string              `json:"paymentStatus"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

type wireOrderItem struct {
	Product     json.RawMessage `json:"product"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Name        string          `json:"name"`
	Quantity    int             `json:"quantity"`
	Price       float64         `json:"price"`
}

func (w *wireOrder) toModel() models.Order {
	o := models.Order{
		ID:            firstNonEmpty(w.MongoID, w.ID),
		OrderNumber:   w.OrderNumber,
		CustomerInfo:  w.CustomerInfo,
		TotalAmount:   w.TotalAmount,
		Status:        w.Status,
		PaymentStatus: w.PaymentStatus,
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
	}
	// บาง endpoint ส่ง total แทน totalAmount
	if o.TotalAmount == 0 {
		o.TotalAmount = w.Total
	}
	for _, item := range w.Items {
		o.Items = append(o.Items, models.OrderItem{
			ProductID:   firstNonEmpty(item.ProductID, refID(item.Product)),
			ProductName: firstNonEmpty(item.ProductName, item.Name, refName(item.Product)),
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}
	return o
}

type wireCoupon struct {
	MongoID        string     `json:"_id"`
	ID             string     `json:"id"`
	Code           string     `json:"code"`
	Discount       float64    `json:"discount"`
	DiscountType   string     `json:"discountType"`
	MinOrderAmount float64    `json:"minOrderAmount"`
	MaxDiscount    float64    `json:"maxDiscount"`
	UsageLimit     int        `json:"usageLimit"`
	UsedCount      int        `json:"usedCount"`
	IsActive       *bool      `json:"isActive"`
	Description    string     `json:"description"`
	ExpiresAt      *time.Time `json:"expiresAt"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func (w *wireCoupon) toModel() models.Coupon {
	return models.Coupon{
		ID:             firstNonEmpty(w.MongoID, w.ID),
		Code:           w.Code,
		Discount:       w.Discount,
		DiscountType:   w.DiscountType,
		MinOrderAmount: w.MinOrderAmount,
		MaxDiscount:    w.MaxDiscount,
		UsageLimit:     w.UsageLimit,
		UsedCount:      w.UsedCount,
		IsActive:       w.IsActive == nil || *w.IsActive,
		Description:    w.Description,
		ExpiresAt:      w.ExpiresAt,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
	}
}

type wireUser struct {
	MongoID   string     `json:"_id"`
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Role      string     `json:"role"`
	Avatar    string     `json:"avatar"`
	IsActive  *bool      `json:"isActive"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin"`
}

func (w *wireUser) toModel() models.StoreUser {
	return models.StoreUser{
		ID:        firstNonEmpty(w.MongoID, w.ID),
		Username:  w.Username,
		Email:     w.Email,
		FirstName: w.FirstName,
		LastName:  w.LastName,
		Role:      w.Role,
		Avatar:    w.Avatar,
		IsActive:  w.IsActive == nil || *w.IsActive,
		CreatedAt: w.CreatedAt,
		LastLogin: w.LastLogin,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func decodeCategories(endpoint string, raw []byte) ([]models.Category, error) {
	env, err := DecodeList(endpoint, raw)
	if err != nil {
		return nil, err
	}
	var wires []wireCategory
	if err := json.Unmarshal(env.Items, &wires); err != nil {
		return nil, &UnexpectedEnvelopeError{Endpoint: endpoint, Snippet: snippet(env.Items)}
	}
	out := make([]models.Category, 0, len(wires))
	for i := range wires {
		out = append(out, wires[i].toModel())
	}
	return out, nil
}
