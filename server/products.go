package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/codewithdark-git/khanana/pkg/catalog"
	"github.com/codewithdark-git/khanana/pkg/models"
	"github.com/codewithdark-git/khanana/pkg/repository"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// listProducts serves the catalog. With no query parameters it returns
// the full (or featured-only) list the storefront homepage expects;
// with search/style/price/sort/page parameters it runs the catalog
// query engine and returns a page.
func (s *Server) listProducts(c *gin.Context) {
	featuredOnly := c.Query("featured") == "true"

	products, err := s.loadProducts(c, featuredOnly)
	if err != nil {
		s.logger.Error("Failed to list products", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to fetch products")
		return
	}

	query, filtered := parseCatalogQuery(c)
	if !filtered {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": products, "count": len(products)})
		return
	}

	respondData(c, http.StatusOK, catalog.Run(products, query))
}

func (s *Server) loadProducts(c *gin.Context, featuredOnly bool) ([]models.Product, error) {
	ctx := c.Request.Context()

	if s.cache != nil {
		if products, err := s.cache.GetCachedProducts(ctx, featuredOnly); err == nil {
			return products, nil
		}
	}

	products, err := s.stores.Products.List(ctx, featuredOnly)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.CacheProducts(ctx, featuredOnly, products); err != nil {
			s.logger.Warn("Failed to cache products", zap.Error(err))
		}
	}
	return products, nil
}

func parseCatalogQuery(c *gin.Context) (catalog.Query, bool) {
	q := catalog.Query{
		Search: c.Query("search"),
		Style:  c.Query("style"),
		Sort:   c.Query("sort"),
	}

	filtered := q.Search != "" || q.Style != "" || q.Sort != ""

	if minStr, maxStr := c.Query("minPrice"), c.Query("maxPrice"); minStr != "" || maxStr != "" {
		r := catalog.PriceRange{Min: 0, Max: inf()}
		if v, err := strconv.ParseFloat(minStr, 64); err == nil {
			r.Min = v
		}
		if v, err := strconv.ParseFloat(maxStr, 64); err == nil {
			r.Max = v
		}
		q.PriceRange = &r
		filtered = true
	}

	if pageStr := c.Query("page"); pageStr != "" {
		if v, err := strconv.Atoi(pageStr); err == nil {
			q.Page = v
		}
		q.PageSize = 12
		if v, err := strconv.Atoi(c.Query("pageSize")); err == nil && v > 0 {
			q.PageSize = v
		}
		filtered = true
	}

	return q, filtered
}

func inf() float64 {
	return catalog.DefaultPriceRanges[len(catalog.DefaultPriceRanges)-1].Max
}

func (s *Server) getProduct(c *gin.Context) {
	product, err := s.stores.Products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Product not found")
			return
		}
		s.logger.Error("Failed to get product", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to fetch product")
		return
	}
	respondData(c, http.StatusOK, product)
}

func (s *Server) createProduct(c *gin.Context) {
	var draft models.ProductDraft
	if err := c.BindJSON(&draft); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := draft.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Validation failed", "data": errs})
		return
	}

	product := &models.Product{ID: c.Query("id")}
	if product.ID == "" {
		product.ID = slugify(draft.Name)
	}
	draft.Apply(product)

	if err := s.stores.Products.Create(c.Request.Context(), product); err != nil {
		s.logger.Error("Failed to create product", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to create product")
		return
	}

	s.invalidateCatalogCache(c)
	s.auditAction("create_product", product.ID, map[string]interface{}{"name": product.Name})

	respondMessage(c, http.StatusOK, product, "Product created successfully")
}

func (s *Server) updateProduct(c *gin.Context) {
	var draft models.ProductDraft
	if err := c.BindJSON(&draft); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := draft.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Validation failed", "data": errs})
		return
	}

	product := &models.Product{ID: c.Param("id")}
	draft.Apply(product)

	if err := s.stores.Products.Update(c.Request.Context(), product); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Product not found")
			return
		}
		s.logger.Error("Failed to update product", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to update product")
		return
	}

	s.invalidateCatalogCache(c)
	s.auditAction("update_product", product.ID, map[string]interface{}{"name": product.Name})

	respondMessage(c, http.StatusOK, product, "Product updated successfully")
}

func (s *Server) deleteProduct(c *gin.Context) {
	id := c.Param("id")
	if err := s.stores.Products.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Product not found")
			return
		}
		s.logger.Error("Failed to delete product", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to delete product")
		return
	}

	s.invalidateCatalogCache(c)
	s.auditAction("delete_product", id, nil)

	c.JSON(http.StatusOK, gin.H{"success": true, "id": id, "message": "Product deleted successfully"})
}

// slugify derives a catalog id from the product name, matching the
// kebab-case ids the shop has always used ("jet-black", "navy-wool").
func slugify(name string) string {
	out := make([]rune, 0, len(name))
	lastDash := true
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
			lastDash = false
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			out = append(out, r)
			lastDash = false
		default:
			if !lastDash {
				out = append(out, '-')
				lastDash = true
			}
		}
	}
	for len(out) > 0 && out[len(out)-1] == '-' {
		out = out[:len(out)-1]
	}
	return string(out)
}

func (s *Server) invalidateCatalogCache(c *gin.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateProducts(c.Request.Context()); err != nil {
		s.logger.Warn("Failed to invalidate product cache", zap.Error(err))
	}
}
