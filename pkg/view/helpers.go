package view

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Ellipsis is the placeholder entry produced by VisiblePages for ranges
// that were collapsed.
const Ellipsis = "..."

// VisiblePages computes the numbered pagination window around the current
// page: first page, optional ellipsis, a run of neighbours, optional
// ellipsis, last page. maxVisible bounds the length of the middle run.
func VisiblePages(currentPage, totalPages, maxVisible int) []string {
	if totalPages <= 0 {
		return nil
	}
	if maxVisible < 3 {
		maxVisible = 3
	}

	firstPage := 1
	lastPage := totalPages

	startPage := currentPage - 1
	if startPage < firstPage {
		startPage = firstPage
	}
	endPage := currentPage + 1
	if endPage > lastPage {
		endPage = lastPage
	}

	for endPage-startPage+1 < maxVisible && (startPage > firstPage || endPage < lastPage) {
		if startPage > firstPage {
			startPage--
		}
		if endPage < lastPage && endPage-startPage+1 < maxVisible {
			endPage++
		}
	}

	var pages []string
	if startPage > firstPage {
		pages = append(pages, strconv.Itoa(firstPage))
		if startPage > firstPage+1 {
			pages = append(pages, Ellipsis)
		}
	}
	for i := startPage; i <= endPage; i++ {
		pages = append(pages, strconv.Itoa(i))
	}
	if endPage < lastPage {
		if endPage < lastPage-1 {
			pages = append(pages, Ellipsis)
		}
		pages = append(pages, strconv.Itoa(lastPage))
	}
	return pages
}

// DashboardURL builds a dashboard location carrying the non-default parts
// of the view state. The empty term, no sort and page 1 are omitted.
func DashboardURL(term, sortField string, page int) string {
	return dashboardPath(dashboardValues(term, sortField, page))
}

// DashboardNewURL opens the create modal on top of the current view state.
func DashboardNewURL(term, sortField string, page int) string {
	v := dashboardValues(term, sortField, page)
	v.Set("modal", "new")
	return dashboardPath(v)
}

// DashboardEditURL opens the edit modal for the given product.
func DashboardEditURL(id int, term, sortField string, page int) string {
	v := dashboardValues(term, sortField, page)
	v.Set("edit", strconv.Itoa(id))
	return dashboardPath(v)
}

func dashboardValues(term, sortField string, page int) url.Values {
	v := url.Values{}
	if term != "" {
		v.Set("q", term)
	}
	if sortField != "" {
		v.Set("sort", sortField)
	}
	if page > 1 {
		v.Set("page", strconv.Itoa(page))
	}
	return v
}

func dashboardPath(v url.Values) string {
	if len(v) == 0 {
		return "/dashboard"
	}
	return "/dashboard?" + v.Encode()
}

// FormatPrice renders a price the way the edit form expects it,
// e.g. 1234.5 -> "$ 1,234.50".
func FormatPrice(price float64) string {
	neg := price < 0
	if neg {
		price = -price
	}
	whole := int64(price)
	cents := int64(price*100+0.5) - whole*100
	if cents >= 100 {
		whole++
		cents -= 100
	}
	s := groupThousands(whole)
	out := fmt.Sprintf("$ %s.%02d", s, cents)
	if neg {
		return "-" + out
	}
	return out
}

// ParsePrice strips the currency mask from a submitted price field.
// "$ 1,234.56" -> 1234.56. Empty or unparseable input yields 0.
func ParsePrice(masked string) float64 {
	var b strings.Builder
	for _, r := range masked {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	rem := len(s) % 3
	if rem > 0 {
		b.WriteString(s[:rem])
	}
	for i := rem; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
