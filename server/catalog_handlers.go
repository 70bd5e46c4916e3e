package server

import (
	"errors"
	"net/http"

	"github.com/example/craftshop/pkg/catalog"
	"github.com/example/craftshop/pkg/search"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (s *Server) listProducts(c *gin.Context) {
	var products []catalog.Product
	switch {
	case c.Query("featured") == "true":
		products = catalog.Featured()
	case c.Query("bestseller") == "true":
		products = catalog.Bestsellers()
	case c.Query("new") == "true":
		products = catalog.NewArrivals()
	case c.Query("category") != "":
		products = catalog.ByCategory(c.Query("category"))
	default:
		products = catalog.Products()
	}

	products = s.catalog.Enrich(c.Request.Context(), products)

	counts, err := s.catalog.ReviewCounts(c.Request.Context())
	if err != nil {
		s.logger.Warn("review counts unavailable", zap.Error(err))
		counts = nil
	}

	type productView struct {
		catalog.Product
		ReviewCount int64 `json:"review_count"`
	}
	out := make([]productView, len(products))
	for i, p := range products {
		out[i] = productView{Product: p, ReviewCount: counts[p.ID]}
	}

	c.JSON(http.StatusOK, gin.H{
		"products": out,
		"total":    len(out),
	})
}

func (s *Server) getProduct(c *gin.Context) {
	p, err := catalog.BySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	enriched := s.catalog.Enrich(c.Request.Context(), []catalog.Product{p})
	p = enriched[0]

	var reviewCount int64
	if counts, err := s.catalog.ReviewCounts(c.Request.Context()); err == nil {
		reviewCount = counts[p.ID]
	}

	c.JSON(http.StatusOK, gin.H{
		"product":      p,
		"review_count": reviewCount,
	})
}

func (s *Server) search(c *gin.Context) {
	query := c.Query("q")
	results := search.Search(catalog.Products(), query)
	results = s.catalog.Enrich(c.Request.Context(), results)

	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"results": results,
		"total":   len(results),
	})
}

func (s *Server) recordView(c *gin.Context) {
	var req struct {
		ProductID string `json:"product_id"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := catalog.ByID(req.ProductID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	if err := s.catalog.RecordView(c.Request.Context(), s.sessionID(c), req.ProductID); err != nil {
		s.logger.Error("failed to record view", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record view"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) recentlyViewed(c *gin.Context) {
	products, err := s.catalog.RecentlyViewed(c.Request.Context(), s.sessionID(c))
	if err != nil {
		s.logger.Error("failed to load recently viewed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load recently viewed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"products": s.catalog.Enrich(c.Request.Context(), products),
	})
}
