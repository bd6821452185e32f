package upstream

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefID(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"string id", `"cat-1"`, "cat-1"},
		{"object with _id", `{"_id":"cat-1","name":"Kitchen"}`, "cat-1"},
		{"object with id only", `{"id":"cat-2"}`, "cat-2"},
		{"_id wins over id", `{"_id":"a","id":"b"}`, "a"},
		{"null", `null`, ""},
		{"empty", ``, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, refID(json.RawMessage(tt.raw)))
		})
	}
}

func TestRefName(t *testing.T) {
	assert.Equal(t, "Kitchen", refName(json.RawMessage(`{"_id":"c1","name":"Kitchen"}`)))
	assert.Empty(t, refName(json.RawMessage(`"c1"`)), "string ref carries no name")
	assert.Empty(t, refName(json.RawMessage(`null`)))
}

func TestWireCategoryToModel(t *testing.T) {
	var w wireCategory
	require.NoError(t, json.Unmarshal([]byte(`{
		"_id":"c1",
		"nameAr":"مطبخ",
		"parent":{"_id":"main-1","name":"Home"}
	}`), &w))

	c := w.toModel()
	assert.Equal(t, "c1", c.ID)
	require.NotNil(t, c.ParentID)
	assert.Equal(t, "main-1", *c.ParentID)
	assert.True(t, c.IsActive, "isActive defaults to true when absent")
}

func TestWireCategoryMainHasNoParent(t *testing.T) {
	var w wireCategory
	require.NoError(t, json.Unmarshal([]byte(`{"id":"m1","nameAr":"رئيسي","isActive":false}`), &w))

	c := w.toModel()
	assert.Equal(t, "m1", c.ID, "falls back to plain id when _id absent")
	assert.Nil(t, c.ParentID)
	assert.False(t, c.IsActive)
}

func TestWireCategoryParentAsString(t *testing.T) {
	var w wireCategory
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"s1","parent":"m1"}`), &w))

	c := w.toModel()
	require.NotNil(t, c.ParentID)
	assert.Equal(t, "m1", *c.ParentID)
}
