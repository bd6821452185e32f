package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elfateh-admin/domain/repositories"
)

// upstream เรียก resource นี้ว่า discount-codes ไม่ใช่ coupons
func TestCouponRepositoryListUsesDiscountCodesEndpoint(t *testing.T) {
	var got *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(r.Context())
		w.Write([]byte(`[{"_id":"cp1","code":"SAVE10","discount":10}]`))
	}))
	defer server.Close()

	repo := NewCouponRepository(NewClient(server.URL, nil, nil))
	coupons, _, err := repo.List(context.Background(), repositories.CouponFilters{Page: 1, Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, "/discount-codes", got.URL.Path)
	require.Len(t, coupons, 1)
	assert.Equal(t, "SAVE10", coupons[0].Code)
}

func TestCouponRepositoryWritesUseDiscountCodesEndpoint(t *testing.T) {
	type call struct {
		method string
		path   string
	}
	var calls []call
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, call{method: r.Method, path: r.URL.Path})
		w.Write([]byte(`{"_id":"cp1","code":"SAVE10","discount":10,"isActive":false}`))
	}))
	defer server.Close()

	repo := NewCouponRepository(NewClient(server.URL, nil, nil))
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "cp1")
	require.NoError(t, err)

	toggled, err := repo.Toggle(ctx, "cp1", false)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	require.NoError(t, repo.Delete(ctx, "cp1"))

	require.Len(t, calls, 3)
	assert.Equal(t, call{method: http.MethodGet, path: "/discount-codes/cp1"}, calls[0])
	assert.Equal(t, call{method: http.MethodPatch, path: "/discount-codes/cp1"}, calls[1])
	assert.Equal(t, call{method: http.MethodDelete, path: "/discount-codes/cp1"}, calls[2])
}
