package catalog

import (
	"fmt"
	"testing"

	"github.com/codewithdark-git/khanana/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture() []models.Product {
	return []models.Product{
		{ID: "jet-black", Name: "Pathan Jet Black", Description: "Premium handwoven shawl", Style: "Jet Black", DiscountedPrice: 5985},
		{ID: "classic-wool", Name: "Pathan Classic Wool", Description: "Timeless classic wool shawl", Style: "Classic Wool", DiscountedPrice: 4900},
		{ID: "fringed-soft", Name: "Pathan Fringed Soft", Description: "Luxuriously soft fringed shawl", Style: "Fringed", DiscountedPrice: 2500},
		{ID: "heritage-gray", Name: "Pathan Heritage Gray", Description: "Distinguished gray shawl", Style: "Heritage Gray", DiscountedPrice: 4550},
		{ID: "brown-earth", Name: "Pathan Brown Earth", Description: "Earthy brown tones", Style: "Brown Earth", DiscountedPrice: 5040},
		{ID: "navy-wool", Name: "Pathan Navy Wool", Description: "Deep navy wool shawl", Style: "Navy Wool", DiscountedPrice: 5250},
		{ID: "camel-fringe", Name: "Pathan Camel Fringe", Description: "Warm camel tones with fringe", Style: "Camel Fringe", DiscountedPrice: 4760},
	}
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestRunFilters(t *testing.T) {
	products := fixture()

	t.Run("no filters returns everything", func(t *testing.T) {
		res := Run(products, Query{})
		assert.Equal(t, len(products), res.TotalCount)
	})

	t.Run("search is case-insensitive over name description and style", func(t *testing.T) {
		res := Run(products, Query{Search: "WOOL"})
		assert.ElementsMatch(t, []string{"classic-wool", "navy-wool"}, ids(res.Items))
	})

	t.Run("style all disables the filter", func(t *testing.T) {
		res := Run(products, Query{Style: StyleAll})
		assert.Equal(t, len(products), res.TotalCount)
	})

	t.Run("style match is exact", func(t *testing.T) {
		res := Run(products, Query{Style: "Fringed"})
		require.Len(t, res.Items, 1)
		assert.Equal(t, "fringed-soft", res.Items[0].ID)
	})

	t.Run("unknown style yields empty result", func(t *testing.T) {
		res := Run(products, Query{Style: "Crimson"})
		assert.Empty(t, res.Items)
		assert.Equal(t, 0, res.TotalCount)
	})

	t.Run("price range is inclusive-min exclusive-max", func(t *testing.T) {
		r := PriceRange{Min: 4900, Max: 5250}
		res := Run(products, Query{PriceRange: &r})
		assert.ElementsMatch(t, []string{"classic-wool", "brown-earth"}, ids(res.Items))
	})

	t.Run("combined filters narrow monotonically", func(t *testing.T) {
		search := Run(products, Query{Search: "shawl"})
		style := Run(products, Query{Style: "Navy Wool"})
		both := Run(products, Query{Search: "shawl", Style: "Navy Wool"})
		assert.LessOrEqual(t, both.TotalCount, search.TotalCount)
		assert.LessOrEqual(t, both.TotalCount, style.TotalCount)
	})
}

func TestRunSort(t *testing.T) {
	products := fixture()

	t.Run("price-low ascends on discounted price", func(t *testing.T) {
		res := Run(products, Query{Sort: SortPriceLow})
		for i := 1; i < len(res.Items); i++ {
			assert.LessOrEqual(t, res.Items[i-1].DiscountedPrice, res.Items[i].DiscountedPrice)
		}
	})

	t.Run("price-low reversed equals price-high when prices are unique", func(t *testing.T) {
		low := Run(products, Query{Sort: SortPriceLow}).Items
		high := Run(products, Query{Sort: SortPriceHigh}).Items
		for i := range low {
			assert.Equal(t, low[i].ID, high[len(high)-1-i].ID)
		}
	})

	t.Run("name sorts are lexicographic", func(t *testing.T) {
		asc := Run(products, Query{Sort: SortNameAsc}).Items
		for i := 1; i < len(asc); i++ {
			assert.LessOrEqual(t, asc[i-1].Name, asc[i].Name)
		}
		desc := Run(products, Query{Sort: SortNameDesc}).Items
		for i := 1; i < len(desc); i++ {
			assert.GreaterOrEqual(t, desc[i-1].Name, desc[i].Name)
		}
	})

	t.Run("newest falls back to id order", func(t *testing.T) {
		res := Run(products, Query{Sort: SortNewest})
		for i := 1; i < len(res.Items); i++ {
			assert.Greater(t, res.Items[i-1].ID, res.Items[i].ID)
		}
	})

	t.Run("ties keep collection order", func(t *testing.T) {
		tied := []models.Product{
			{ID: "a", Name: "Same", DiscountedPrice: 100},
			{ID: "b", Name: "Same", DiscountedPrice: 100},
			{ID: "c", Name: "Same", DiscountedPrice: 100},
		}
		res := Run(tied, Query{Sort: SortPriceLow})
		assert.Equal(t, []string{"a", "b", "c"}, ids(res.Items))
	})
}

func TestRunPagination(t *testing.T) {
	var products []models.Product
	for i := 0; i < 15; i++ {
		products = append(products, models.Product{ID: fmt.Sprintf("p-%02d", i)})
	}

	t.Run("second page of twelve holds the remaining three", func(t *testing.T) {
		res := Run(products, Query{Page: 2, PageSize: 12})
		assert.Len(t, res.Items, 3)
		assert.Equal(t, 15, res.TotalCount)
		assert.Equal(t, 2, res.TotalPages)
	})

	t.Run("page far past the end is empty not an error", func(t *testing.T) {
		res := Run(products, Query{Page: 99, PageSize: 12})
		assert.Empty(t, res.Items)
		assert.Equal(t, 15, res.TotalCount)
		assert.Equal(t, 2, res.TotalPages)
	})

	t.Run("zero page size disables pagination", func(t *testing.T) {
		res := Run(products, Query{})
		assert.Len(t, res.Items, 15)
		assert.Equal(t, 1, res.TotalPages)
	})
}

func TestStyles(t *testing.T) {
	styles := Styles(fixture())
	assert.Equal(t, []string{"Jet Black", "Classic Wool", "Fringed", "Heritage Gray", "Brown Earth", "Navy Wool", "Camel Fringe"}, styles)

	// Duplicates collapse to first occurrence.
	dup := append(fixture(), models.Product{ID: "x", Style: "Jet Black"})
	assert.Len(t, Styles(dup), 7)
}
