package serviceimpl

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elfateh-admin/domain/dto"
	"elfateh-admin/domain/models"
	"elfateh-admin/infrastructure/upstream"
)

func strPtr(s string) *string { return &s }

// fakeCategoryRepo นับจำนวน call เพื่อตรวจพฤติกรรม cache
type fakeCategoryRepo struct {
	all         []models.Category
	subs        map[string][]models.Category
	adminErr    error
	publicErr   error
	subErr      error
	adminCalls  int
	publicCalls int
	subCalls    int
	deleted     []string
}

func (f *fakeCategoryRepo) List(ctx context.Context) ([]models.Category, error) {
	f.publicCalls++
	if f.publicErr != nil {
		return nil, f.publicErr
	}
	return f.all, nil
}

func (f *fakeCategoryRepo) ListAdmin(ctx context.Context) ([]models.Category, error) {
	f.adminCalls++
	if f.adminErr != nil {
		return nil, f.adminErr
	}
	return f.all, nil
}

func (f *fakeCategoryRepo) ListByParent(ctx context.Context, parentID string) ([]models.Category, error) {
	f.subCalls++
	if f.subErr != nil {
		return nil, f.subErr
	}
	return f.subs[parentID], nil
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, id string) (*models.Category, error) {
	for i := range f.all {
		if f.all[i].ID == id {
			c := f.all[i]
			return &c, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *models.Category) (*models.Category, error) {
	created := *category
	created.ID = "new-id"
	return &created, nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, id string, category *models.Category) (*models.Category, error) {
	return category, nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func newCategoryFixture() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		all: []models.Category{
			{ID: "m1", Name: "Kitchen"},
			{ID: "m2", Name: "Garden"},
			{ID: "s1", Name: "Cookware", ParentID: strPtr("m1")},
		},
		subs: map[string][]models.Category{
			"m1": {{ID: "s1", Name: "Cookware", ParentID: strPtr("m1")}},
		},
	}
}

func TestCategoryListBuildsTree(t *testing.T) {
	repo := newCategoryFixture()
	svc := NewCategoryService(repo)

	resp, err := svc.List(context.Background(), &dto.CategoryListQuery{Page: 1, Limit: 10})
	require.NoError(t, err)

	// เฉพาะ main โผล่ที่ระดับบนสุด
	require.Len(t, resp.Categories, 2)
	assert.Equal(t, "m1", resp.Categories[0].ID)
	assert.Equal(t, "m2", resp.Categories[1].ID)

	// subs ของ main ในหน้านี้ถูก prefetch
	require.Len(t, resp.Categories[0].SubCategories, 1)
	assert.Equal(t, "s1", resp.Categories[0].SubCategories[0].ID)

	assert.Equal(t, 2, resp.Pagination.Total)
	assert.Equal(t, 1, resp.Pagination.Current)
}

func TestCategorySearchSeesOnlyLoadedSubs(t *testing.T) {
	repo := newCategoryFixture()
	svc := NewCategoryService(repo)

	// ยังไม่มี sub ใน cache — ค้นด้วยชื่อ sub ไม่เจออะไร
	resp, err := svc.List(context.Background(), &dto.CategoryListQuery{Page: 1, Limit: 10, Search: "cookware"})
	require.NoError(t, err)
	assert.Empty(t, resp.Categories)

	// หลัง expand แล้ว sub อยู่ใน cache — ค้นเจอ main ผ่าน sub
	_, err = svc.Expand(context.Background(), "m1")
	require.NoError(t, err)

	resp, err = svc.List(context.Background(), &dto.CategoryListQuery{Page: 1, Limit: 10, Search: "cookware"})
	require.NoError(t, err)
	require.Len(t, resp.Categories, 1)
	assert.Equal(t, "m1", resp.Categories[0].ID)
}

func TestCategoryExpandUsesCache(t *testing.T) {
	repo := newCategoryFixture()
	svc := NewCategoryService(repo)

	subs, err := svc.Expand(context.Background(), "m1")
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, 1, repo.subCalls)

	// ครั้งที่สองมาจาก cache ไม่ยิงซ้ำ
	_, err = svc.Expand(context.Background(), "m1")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.subCalls)
}

func TestCategoryWriteInvalidatesCache(t *testing.T) {
	repo := newCategoryFixture()
	svc := NewCategoryService(repo)

	_, err := svc.Expand(context.Background(), "m1")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.subCalls)

	err = svc.Delete(context.Background(), "m2")
	require.NoError(t, err)

	// หลัง write cache ว่าง — expand ยิงใหม่
	_, err = svc.Expand(context.Background(), "m1")
	require.NoError(t, err)
	assert.Equal(t, 2, repo.subCalls)
}

func TestCategoryListFallsBackToPublicEndpoint(t *testing.T) {
	repo := newCategoryFixture()
	repo.adminErr = errors.New("admin endpoint down")
	svc := NewCategoryService(repo)

	resp, err := svc.List(context.Background(), &dto.CategoryListQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, resp.Categories, 2)
	assert.Equal(t, 1, repo.adminCalls)
	assert.Equal(t, 1, repo.publicCalls)
}

func TestCategoryListTransportFailureReturnsEmptyWithSentinel(t *testing.T) {
	repo := newCategoryFixture()
	repo.adminErr = errors.New("down")
	repo.publicErr = errors.New("down too")
	svc := NewCategoryService(repo)

	resp, err := svc.List(context.Background(), &dto.CategoryListQuery{Page: 1, Limit: 10})
	require.ErrorIs(t, err, ErrCategoriesLoad)
	require.NotNil(t, resp)
	assert.Empty(t, resp.Categories)
}

func TestCategoryListEnvelopeErrorFailsLoudly(t *testing.T) {
	repo := newCategoryFixture()
	repo.adminErr = &upstream.UnexpectedEnvelopeError{Endpoint: "/categories/admin", Snippet: "<html>"}
	svc := NewCategoryService(repo)

	resp, err := svc.List(context.Background(), &dto.CategoryListQuery{Page: 1, Limit: 10})
	assert.Nil(t, resp)

	var envErr *upstream.UnexpectedEnvelopeError
	require.ErrorAs(t, err, &envErr)
	// envelope เพี้ยนต้องไม่ fallback ไป public endpoint
	assert.Equal(t, 0, repo.publicCalls)
}

func TestCategoryCreateDefaultsActive(t *testing.T) {
	repo := newCategoryFixture()
	svc := NewCategoryService(repo)

	created, err := svc.Create(context.Background(), &dto.CreateCategoryRequest{NameAr: "مطبخ"})
	require.NoError(t, err)
	assert.True(t, created.IsActive)
}
