package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisiblePages(t *testing.T) {
	tests := []struct {
		name       string
		current    int
		total      int
		maxVisible int
		want       []string
	}{
		{"no pages", 1, 0, 7, nil},
		{"single page", 1, 1, 7, []string{"1"}},
		{"fits entirely", 2, 3, 7, []string{"1", "2", "3"}},
		{"start of long range", 1, 10, 7, []string{"1", "2", "3", "4", "5", "6", "7", "...", "10"}},
		{"middle of long range", 5, 10, 7, []string{"1", "2", "3", "4", "5", "6", "7", "8", "...", "10"}},
		{"end of long range", 10, 10, 7, []string{"1", "...", "4", "5", "6", "7", "8", "9", "10"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, VisiblePages(tc.current, tc.total, tc.maxVisible))
		})
	}
}

func TestVisiblePagesNeverDuplicatesEdges(t *testing.T) {
	for total := 1; total <= 15; total++ {
		for current := 1; current <= total; current++ {
			pages := VisiblePages(current, total, 7)
			seen := map[string]bool{}
			for _, p := range pages {
				if p == Ellipsis {
					continue
				}
				assert.False(t, seen[p], "duplicate page %s for current=%d total=%d", p, current, total)
				seen[p] = true
			}
			assert.True(t, seen["1"])
		}
	}
}

func TestDashboardURLOmitsDefaults(t *testing.T) {
	assert.Equal(t, "/dashboard", DashboardURL("", "", 1))
	assert.Equal(t, "/dashboard?page=2", DashboardURL("", "", 2))
	assert.Equal(t, "/dashboard?q=phone&sort=brand", DashboardURL("phone", "brand", 1))
	assert.Equal(t, "/dashboard?page=3&q=galaxy+s10&sort=title", DashboardURL("galaxy s10", "title", 3))
}

func TestDashboardModalURLs(t *testing.T) {
	assert.Equal(t, "/dashboard?modal=new", DashboardNewURL("", "", 1))
	assert.Equal(t, "/dashboard?modal=new&q=phone", DashboardNewURL("phone", "", 1))
	assert.Equal(t, "/dashboard?edit=42", DashboardEditURL(42, "", "", 1))
	assert.Equal(t, "/dashboard?edit=42&page=2&sort=brand", DashboardEditURL(42, "", "brand", 2))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$ 0.00", FormatPrice(0))
	assert.Equal(t, "$ 549.00", FormatPrice(549))
	assert.Equal(t, "$ 1,234.50", FormatPrice(1234.5))
	assert.Equal(t, "$ 1,234,567.89", FormatPrice(1234567.89))
	assert.Equal(t, "-$ 12.30", FormatPrice(-12.3))
}

func TestParsePrice(t *testing.T) {
	assert.Equal(t, 1234.56, ParsePrice("$ 1,234.56"))
	assert.Equal(t, 549.0, ParsePrice("549"))
	assert.Equal(t, 0.0, ParsePrice(""))
	assert.Equal(t, 0.0, ParsePrice("abc"))
	assert.Equal(t, 12.5, ParsePrice("12.50"))
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 9.99, 100, 1234.5, 99999.01} {
		assert.InDelta(t, v, ParsePrice(FormatPrice(v)), 0.005)
	}
}
