package server

import (
	"errors"
	"net/http"

	"github.com/example/craftshop/pkg/cart"
	"github.com/example/craftshop/pkg/catalog"
	"github.com/gin-gonic/gin"
)

func cartView(c *cart.Cart) gin.H {
	return gin.H{
		"items":      c.Items(),
		"total":      c.Total(),
		"item_count": c.ItemCount(),
	}
}

func (s *Server) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, cartView(s.session(c).Cart))
}

func (s *Server) addCartItem(c *gin.Context) {
	var req struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := catalog.ByID(req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	sess := s.session(c)
	sess.Cart.AddItem(product, req.Quantity)
	c.JSON(http.StatusOK, cartView(sess.Cart))
}

func (s *Server) updateCartItem(c *gin.Context) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := s.session(c)
	sess.Cart.UpdateQuantity(c.Param("id"), req.Quantity)
	c.JSON(http.StatusOK, cartView(sess.Cart))
}

func (s *Server) removeCartItem(c *gin.Context) {
	sess := s.session(c)
	sess.Cart.RemoveItem(c.Param("id"))
	c.JSON(http.StatusOK, cartView(sess.Cart))
}

func (s *Server) clearCart(c *gin.Context) {
	sess := s.session(c)
	sess.Cart.Clear()
	c.JSON(http.StatusOK, cartView(sess.Cart))
}

func (s *Server) getWishlist(c *gin.Context) {
	wl := s.session(c).Wishlist
	c.JSON(http.StatusOK, gin.H{"items": wl.Items()})
}

func (s *Server) addWishlistItem(c *gin.Context) {
	var req struct {
		ProductID string `json:"product_id"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := catalog.ByID(req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	wl := s.session(c).Wishlist
	added := wl.Add(product)

	notice := "Added to wishlist"
	if !added {
		notice = "Already in wishlist"
	}
	c.JSON(http.StatusOK, gin.H{
		"items":  wl.Items(),
		"added":  added,
		"notice": notice,
	})
}

func (s *Server) removeWishlistItem(c *gin.Context) {
	wl := s.session(c).Wishlist
	wl.Remove(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{
		"items":  wl.Items(),
		"notice": "Removed from wishlist",
	})
}

func (s *Server) clearWishlist(c *gin.Context) {
	wl := s.session(c).Wishlist
	wl.Clear()
	c.JSON(http.StatusOK, gin.H{"items": wl.Items()})
}
