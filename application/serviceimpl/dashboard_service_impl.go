package serviceimpl

import (
	"context"
	"sync"

	"elfateh-admin/domain/dto"
	"elfateh-admin/domain/models"
	"elfateh-admin/domain/repositories"
	"elfateh-admin/domain/services"
	"elfateh-admin/pkg/logger"
)

// ดึงข้อมูลมาคำนวณ stats ทีละก้อนใหญ่ — dashboard เดิมก็ทำแบบนี้
const dashboardFetchLimit = 1000

// dashboardService ยิงทุก resource พร้อมกันแล้วรวมผล
// source ไหนพังนับเป็นศูนย์ ที่เหลือยังแสดงได้
type dashboardService struct {
	products   repositories.ProductRepository
	categories repositories.CategoryRepository
	orders     repositories.OrderRepository
	coupons    repositories.CouponRepository
	users      repositories.UserRepository
}

func NewDashboardService(
	products repositories.ProductRepository,
	categories repositories.CategoryRepository,
	orders repositories.OrderRepository,
	coupons repositories.CouponRepository,
	users repositories.UserRepository,
) services.DashboardService {
	return &dashboardService{
		products:   products,
		categories: categories,
		orders:     orders,
		coupons:    coupons,
		users:      users,
	}
}

func (s *dashboardService) Stats(ctx context.Context) (*dto.DashboardResponse, error) {
	var (
		wg         sync.WaitGroup
		products   []models.Product
		categories []models.Category
		orders     []models.Order
		coupons    []models.Coupon
		users      []models.StoreUser
	)

	wg.Add(5)
	go func() {
		defer wg.Done()
		products = s.fetchProducts(ctx)
	}()
	go func() {
		defer wg.Done()
		categories = s.fetchCategories(ctx)
	}()
	go func() {
		defer wg.Done()
		orders = s.fetchOrders(ctx)
	}()
	go func() {
		defer wg.Done()
		coupons = s.fetchCoupons(ctx)
	}()
	go func() {
		defer wg.Done()
		users = s.fetchUsers(ctx)
	}()
	wg.Wait()

	stats := dto.DashboardStats{
		TotalProducts:   len(products),
		TotalCategories: len(categories),
		TotalOrders:     len(orders),
		TotalCoupons:    len(coupons),
		TotalUsers:      len(users),
	}

	for i := range products {
		if products[i].IsActive {
			stats.ActiveProducts++
		}
		if products[i].IsLowStock() {
			stats.LowStockProducts++
		}
	}

	for i := range orders {
		stats.TotalRevenue += orders[i].TotalAmount
		switch orders[i].Status {
		case models.OrderStatusPending:
			stats.PendingOrders++
		case models.OrderStatusDelivered:
			stats.DeliveredOrders++
		}
	}

	return &dto.DashboardResponse{
		Stats:      stats,
		Products:   products,
		Categories: categories,
		Orders:     orders,
		Coupons:    coupons,
		Users:      users,
	}, nil
}

func (s *dashboardService) ProductAnalytics(ctx context.Context) (*dto.ProductAnalytics, error) {
	products := s.fetchProducts(ctx)

	analytics := &dto.ProductAnalytics{TotalProducts: len(products)}
	for i := range products {
		if products[i].IsActive {
			analytics.ActiveProducts++
		}
		if products[i].ProductType == "featured" {
			analytics.FeaturedProducts++
		}
		if products[i].IsLowStock() {
			analytics.LowStockProducts++
		}
		if products[i].IsOutOfStock() {
			analytics.OutOfStockProducts++
		}
	}
	return analytics, nil
}

func (s *dashboardService) OrderAnalytics(ctx context.Context) (*dto.OrderAnalytics, error) {
	orders := s.fetchOrders(ctx)

	analytics := &dto.OrderAnalytics{
		TotalOrders:  len(orders),
		StatusCounts: make(map[string]int),
	}
	for i := range orders {
		analytics.TotalRevenue += orders[i].TotalAmount
		analytics.StatusCounts[orders[i].Status]++
	}
	analytics.PendingOrders = analytics.StatusCounts[models.OrderStatusPending]
	analytics.ConfirmedOrders = analytics.StatusCounts[models.OrderStatusConfirmed]
	analytics.DeliveredOrders = analytics.StatusCounts[models.OrderStatusDelivered]
	return analytics, nil
}

func (s *dashboardService) fetchProducts(ctx context.Context) []models.Product {
	products, _, err := s.products.List(ctx, repositories.ProductFilters{Page: 1, Limit: dashboardFetchLimit})
	if err != nil {
		logger.WarnContext(ctx, "Dashboard: products source failed", "error", err)
		return []models.Product{}
	}
	return products
}

func (s *dashboardService) fetchCategories(ctx context.Context) []models.Category {
	categories, err := s.categories.List(ctx)
	if err != nil {
		logger.WarnContext(ctx, "Dashboard: categories source failed", "error", err)
		return []models.Category{}
	}
	return categories
}

func (s *dashboardService) fetchOrders(ctx context.Context) []models.Order {
	orders, _, err := s.orders.List(ctx, repositories.OrderFilters{Page: 1, Limit: dashboardFetchLimit})
	if err != nil {
		logger.WarnContext(ctx, "Dashboard: orders source failed", "error", err)
		return []models.Order{}
	}
	return orders
}

func (s *dashboardService) fetchCoupons(ctx context.Context) []models.Coupon {
	coupons, _, err := s.coupons.List(ctx, repositories.CouponFilters{Page: 1, Limit: dashboardFetchLimit})
	if err != nil {
		logger.WarnContext(ctx, "Dashboard: coupons source failed", "error", err)
		return []models.Coupon{}
	}
	return coupons
}

func (s *dashboardService) fetchUsers(ctx context.Context) []models.StoreUser {
	users, err := s.users.List(ctx)
	if err != nil {
		logger.WarnContext(ctx, "Dashboard: users source failed", "error", err)
		return []models.StoreUser{}
	}
	return users
}
