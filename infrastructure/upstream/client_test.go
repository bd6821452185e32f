package upstream

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSetsHeadersAndBearer(t *testing.T) {
	var got *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(r.Context())
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, func(ctx context.Context) string { return "tok-123" }, nil)
	_, err := client.Get(context.Background(), "/products", nil)
	require.NoError(t, err)

	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
	assert.Equal(t, "Bearer tok-123", got.Header.Get("Authorization"))
}

func TestClientOmitsAuthorizationWithoutToken(t *testing.T) {
	var got *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(r.Context())
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, func(ctx context.Context) string { return "" }, nil)
	_, err := client.Get(context.Background(), "/products", nil)
	require.NoError(t, err)
	assert.Empty(t, got.Header.Get("Authorization"))
}

func TestClientSkipsEmptyQueryValues(t *testing.T) {
	var got *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(r.Context())
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, nil)
	_, err := client.Get(context.Background(), "/products", map[string]string{
		"page":   "2",
		"search": "",
		"status": "",
	})
	require.NoError(t, err)

	query := got.URL.Query()
	assert.Equal(t, "2", query.Get("page"))
	assert.False(t, query.Has("search"))
	assert.False(t, query.Has("status"))
}

func TestClientUnauthorizedHookFires(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	var hookCalls int32
	client := NewClient(server.URL, nil, func(ctx context.Context) {
		atomic.AddInt32(&hookCalls, 1)
	})

	_, err := client.Get(context.Background(), "/orders", nil)

	// hook ถูกเรียก แต่ error ยังส่งต่อให้ caller
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hookCalls))
}

func TestClientUnauthorizedHookSkipsAuthEndpoints(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	var hookCalls int32
	client := NewClient(server.URL, nil, func(ctx context.Context) {
		atomic.AddInt32(&hookCalls, 1)
	})

	// รหัสผ่านผิดตอน login ต้องไม่เตะ session ที่มีอยู่
	_, err := client.Post(context.Background(), "/auth/login", map[string]string{"username": "x"})
	require.Error(t, err)
	assert.Equal(t, int32(0), atomic.LoadInt32(&hookCalls))

	_, err = client.Post(context.Background(), "/auth/create-admin", nil)
	require.Error(t, err)
	assert.Equal(t, int32(0), atomic.LoadInt32(&hookCalls))
}

func TestClientStatusErrorAndIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"missing"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, nil)
	_, err := client.Get(context.Background(), "/products/nope", nil)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "/products/nope", se.Endpoint)
	assert.Contains(t, string(se.Body), "missing")
	assert.True(t, IsNotFound(err))
}

func TestClientSendsJSONBody(t *testing.T) {
	var body []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, nil)
	_, err := client.Post(context.Background(), "/categories", map[string]string{"nameAr": "مطبخ"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"nameAr":"مطبخ"}`, string(body))
}
