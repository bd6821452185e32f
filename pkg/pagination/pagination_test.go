package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{"empty list still has one page", 0, 10, 1},
		{"exact multiple", 30, 10, 3},
		{"partial last page", 31, 10, 4},
		{"single item", 1, 10, 1},
		{"zero limit falls back to default", 25, 0, 3},
		{"negative limit falls back to default", 25, -5, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TotalPages(tt.total, tt.limit))
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		totalPages int
		expected   int
	}{
		{"zero goes to first page", 0, 5, 1},
		{"negative goes to first page", -3, 5, 1},
		{"beyond last goes to last", 99, 5, 5},
		{"in range untouched", 3, 5, 3},
		{"first page", 1, 5, 1},
		{"last page", 5, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clamp(tt.page, tt.totalPages))
		})
	}
}

func TestCompute(t *testing.T) {
	info := Compute(2, 10, 35)
	assert.Equal(t, Info{Current: 2, Pages: 4, Total: 35, Limit: 10}, info)

	// page นอกช่วงถูก clamp
	info = Compute(9, 10, 35)
	assert.Equal(t, 4, info.Current)

	info = Compute(0, 10, 35)
	assert.Equal(t, 1, info.Current)

	// limit ว่างใช้ default
	info = Compute(1, 0, 5)
	assert.Equal(t, DefaultLimit, info.Limit)
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name          string
		page          int
		limit         int
		total         int
		start, end    int
	}{
		{"first page", 1, 10, 35, 0, 10},
		{"middle page", 2, 10, 35, 10, 20},
		{"short last page", 4, 10, 35, 30, 35},
		{"page beyond range clamps to last", 99, 10, 35, 30, 35},
		{"empty list", 1, 10, 0, 0, 0},
		{"total smaller than limit", 1, 10, 3, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := Window(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}
