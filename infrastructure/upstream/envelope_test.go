package upstream

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeListShapes(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		items   string
		hasMeta bool
	}{
		{
			name:  "success envelope",
			raw:   `{"success":true,"data":[{"id":"1"}],"message":"ok"}`,
			items: `[{"id":"1"}]`,
		},
		{
			name:  "bare array",
			raw:   `[{"id":"1"},{"id":"2"}]`,
			items: `[{"id":"1"},{"id":"2"}]`,
		},
		{
			name:  "results wrapper",
			raw:   `{"results":[{"id":"1"}]}`,
			items: `[{"id":"1"}]`,
		},
		{
			name:    "coupons wrapper with meta",
			raw:     `{"coupons":[{"id":"1"}],"total":25,"page":2,"totalPages":3}`,
			items:   `[{"id":"1"}]`,
			hasMeta: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := DecodeList("/test", []byte(tt.raw))
			require.NoError(t, err)
			assert.JSONEq(t, tt.items, string(env.Items))
			assert.Equal(t, tt.hasMeta, env.HasMeta)
		})
	}
}

func TestDecodeListCarriesMeta(t *testing.T) {
	env, err := DecodeList("/discount-codes", []byte(`{"coupons":[],"total":25,"page":2,"totalPages":3}`))
	require.NoError(t, err)
	assert.Equal(t, 25, env.Total)
	assert.Equal(t, 2, env.Page)
	assert.Equal(t, 3, env.TotalPages)
	assert.True(t, env.HasMeta)
}

func TestDecodeListUnrecognizedFailsLoudly(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"unknown wrapper key", `{"products":[{"id":"1"}]}`},
		{"data is an object", `{"success":true,"data":{"id":"1"}}`},
		{"html error page", `<html>502 Bad Gateway</html>`},
		{"empty body", ``},
		{"bare string", `"oops"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeList("/test", []byte(tt.raw))
			var envErr *UnexpectedEnvelopeError
			require.ErrorAs(t, err, &envErr)
			assert.Equal(t, "/test", envErr.Endpoint)
		})
	}
}

func TestDecodeObject(t *testing.T) {
	// object ใต้ data
	obj, err := DecodeObject("/test", []byte(`{"success":true,"data":{"id":"1"}}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1"}`, string(obj))

	// object เพียว ๆ คืนทั้งก้อน
	obj, err = DecodeObject("/test", []byte(`{"id":"1","name":"x"}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1","name":"x"}`, string(obj))

	// ไม่ใช่ object เลย
	_, err = DecodeObject("/test", []byte(`[1,2,3]`))
	var envErr *UnexpectedEnvelopeError
	require.ErrorAs(t, err, &envErr)
}

func TestSnippetTruncates(t *testing.T) {
	long := make([]byte, 500)
	for i := range long {
		long[i] = 'x'
	}
	s := snippet(long)
	assert.Len(t, s, 123) // 120 + "..."
}

func TestDecodeListItemsUnmarshal(t *testing.T) {
	env, err := DecodeList("/categories", []byte(`{"success":true,"data":[{"_id":"c1","nameAr":"مطبخ"}]}`))
	require.NoError(t, err)

	var wires []wireCategory
	require.NoError(t, json.Unmarshal(env.Items, &wires))
	require.Len(t, wires, 1)
	assert.Equal(t, "c1", wires[0].MongoID)
}
