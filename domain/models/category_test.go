package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestCategoryIsMain(t *testing.T) {
	tests := []struct {
		name     string
		parentID *string
		expected bool
	}{
		{"nil parent is main", nil, true},
		{"empty parent is main", strPtr(""), true},
		{"with parent is sub", strPtr("cat-1"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Category{ParentID: tt.parentID}
			assert.Equal(t, tt.expected, c.IsMain())
		})
	}
}

func TestCategoryMatches(t *testing.T) {
	c := Category{
		Name:          "Electronics",
		NameAr:        "إلكترونيات",
		Description:   "Gadgets and devices",
		DescriptionAr: "أجهزة ومعدات",
	}

	tests := []struct {
		name     string
		term     string
		expected bool
	}{
		{"empty term matches everything", "", true},
		{"whitespace-only term matches everything", "   ", true},
		{"match on default name, case-insensitive", "ELECTRO", true},
		{"match on arabic name", "إلكترون", true},
		{"match on description", "gadget", true},
		{"match on arabic description", "أجهزة", true},
		{"no match", "furniture", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Matches(tt.term))
		})
	}
}

func TestCategoryMatchesWithSubs(t *testing.T) {
	main := Category{
		Name: "Kitchen",
		SubCategories: []Category{
			{Name: "Cookware", NameAr: "أواني الطبخ"},
			{Name: "Cutlery"},
		},
	}

	assert.True(t, main.MatchesWithSubs("kitchen"), "match on the main itself")
	assert.True(t, main.MatchesWithSubs("cookware"), "match through a loaded sub")
	assert.True(t, main.MatchesWithSubs("أواني"), "match through a sub's arabic name")
	assert.False(t, main.MatchesWithSubs("garden"))

	// sub ที่ยังไม่ถูกโหลดมองไม่เห็นจากการค้นหา
	bare := Category{Name: "Kitchen"}
	assert.False(t, bare.MatchesWithSubs("cookware"))
}
