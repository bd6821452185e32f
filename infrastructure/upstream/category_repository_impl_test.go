package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// upstream ไม่มี endpoint แยกสำหรับ subcategories —
// ListByParent ต้องดึง /categories ทั้งก้อนแล้วกรองเอง
func TestCategoryRepositoryListByParentFiltersFullList(t *testing.T) {
	var got *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(r.Context())
		// flat list ปนกันทั้ง main และ sub ของหลาย parent
		// parent มาได้ทั้ง string id และ object เต็ม
		w.Write([]byte(`[
			{"_id":"p1","name":"Kitchen","nameAr":"مطبخ"},
			{"_id":"p2","name":"Bathroom","nameAr":"حمام"},
			{"_id":"s1","name":"Pots","parentId":"p1"},
			{"_id":"s2","name":"Pans","parent":{"_id":"p1","name":"Kitchen"}},
			{"_id":"s3","name":"Towels","parentId":"p2"}
		]`))
	}))
	defer server.Close()

	repo := NewCategoryRepository(NewClient(server.URL, nil, nil))
	subs, err := repo.ListByParent(context.Background(), "p1")
	require.NoError(t, err)

	assert.Equal(t, "/categories", got.URL.Path)

	// เฉพาะ sub ของ p1 — main (ไม่มี parent) และ sub ของ p2 ต้องไม่ติดมา
	require.Len(t, subs, 2)
	assert.Equal(t, "s1", subs[0].ID)
	assert.Equal(t, "s2", subs[1].ID)
	for _, sub := range subs {
		require.NotNil(t, sub.ParentID)
		assert.Equal(t, "p1", *sub.ParentID)
	}
}

func TestCategoryRepositoryListByParentNoMatches(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"_id":"p1","name":"Kitchen"}]`))
	}))
	defer server.Close()

	repo := NewCategoryRepository(NewClient(server.URL, nil, nil))
	subs, err := repo.ListByParent(context.Background(), "p1")
	require.NoError(t, err)
	assert.Empty(t, subs)
}
