// Package catalog filters, sorts and paginates product collections for
// the storefront listing page.
package catalog

import (
	"math"
	"sort"
	"strings"

	"github.com/codewithdark-git/khanana/pkg/models"
)

// Sort keys accepted by Run. SortNewest orders by product id: products
// carry no creation timestamp, so id order stands in for recency.
const (
	SortNewest    = "newest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortNameAsc   = "name-asc"
	SortNameDesc  = "name-desc"
)

// StyleAll disables the style filter; a nil Query.PriceRange disables
// the price filter.
const StyleAll = "all"

// PriceRange is an inclusive-min, exclusive-max band over the
// discounted price.
type PriceRange struct {
	Label string  `json:"label"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// DefaultPriceRanges are the bands offered by the storefront filter UI.
var DefaultPriceRanges = []PriceRange{
	{Label: "Under Rs 3,000", Min: 0, Max: 3000},
	{Label: "Rs 3,000 - Rs 5,000", Min: 3000, Max: 5000},
	{Label: "Rs 5,000 - Rs 7,000", Min: 5000, Max: 7000},
	{Label: "Above Rs 7,000", Min: 7000, Max: math.Inf(1)},
}

// Query describes one storefront listing request. Zero values disable
// each clause: empty search, empty or "all" style, nil price range.
// Page is 1-indexed; PageSize <= 0 means no pagination.
type Query struct {
	Search     string
	Style      string
	PriceRange *PriceRange
	Sort       string
	Page       int
	PageSize   int
}

// Result is one page of a filtered catalog.
type Result struct {
	Items      []models.Product `json:"items"`
	TotalCount int              `json:"totalCount"`
	TotalPages int              `json:"totalPages"`
}

// Run applies the query's filters in order (search, style, price),
// sorts the survivors and slices out the requested page. Filters are
// AND-combined. Sorting is stable, so ties keep the collection order.
func Run(products []models.Product, q Query) Result {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !matches(p, q) {
			continue
		}
		filtered = append(filtered, p)
	}

	sortProducts(filtered, q.Sort)

	total := len(filtered)
	if q.PageSize <= 0 {
		return Result{Items: filtered, TotalCount: total, TotalPages: 1}
	}

	totalPages := (total + q.PageSize - 1) / q.PageSize
	page := q.Page
	if page < 1 {
		page = 1
	}

	start := (page - 1) * q.PageSize
	if start >= total {
		// Past the last page: empty page, not an error.
		return Result{Items: []models.Product{}, TotalCount: total, TotalPages: totalPages}
	}
	end := start + q.PageSize
	if end > total {
		end = total
	}

	return Result{Items: filtered[start:end], TotalCount: total, TotalPages: totalPages}
}

// Styles returns the distinct style labels present in the collection,
// in first-seen order, for the filter UI.
func Styles(products []models.Product) []string {
	seen := make(map[string]bool, len(products))
	var styles []string
	for _, p := range products {
		if !seen[p.Style] {
			seen[p.Style] = true
			styles = append(styles, p.Style)
		}
	}
	return styles
}

func matches(p models.Product, q Query) bool {
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		haystack := strings.ToLower(p.Name + " " + p.Description + " " + p.Style)
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	if q.Style != "" && q.Style != StyleAll && p.Style != q.Style {
		return false
	}
	if r := q.PriceRange; r != nil {
		if p.DiscountedPrice < r.Min || p.DiscountedPrice >= r.Max {
			return false
		}
	}
	return true
}

func sortProducts(products []models.Product, key string) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].DiscountedPrice < products[j].DiscountedPrice
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].DiscountedPrice > products[j].DiscountedPrice
		})
	case SortNameAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Name < products[j].Name
		})
	case SortNameDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Name > products[j].Name
		})
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ID > products[j].ID
		})
	}
}
