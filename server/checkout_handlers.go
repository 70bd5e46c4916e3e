package server

import (
	"errors"
	"net/http"

	"github.com/example/craftshop/pkg/auth"
	"github.com/example/craftshop/pkg/checkout"
	"github.com/example/craftshop/pkg/repository"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type checkoutRequest struct {
	Shipping      checkout.ShippingInfo `json:"shipping"`
	PaymentMethod string                `json:"payment_method"`
}

// quoteCheckout is the first click: validate the form, show totals and the
// UPI QR target. No order exists after this call.
func (s *Server) quoteCheckout(c *gin.Context) {
	var req checkoutRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quote, err := s.checkout.Quote(s.session(c).Cart, req.Shipping)
	if err != nil {
		s.renderCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// confirmCheckout is the second click, after the user attests the UPI
// transfer happened.
func (s *Server) confirmCheckout(c *gin.Context) {
	var req checkoutRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var userID string
	if user := auth.UserFrom(c); user != nil {
		userID = user.ID
	}

	sess := s.session(c)
	order, err := s.checkout.Confirm(c.Request.Context(), sess.Cart, s.sessionID(c), userID, req.Shipping, req.PaymentMethod)
	if err != nil {
		s.renderCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"order_number":   order.OrderNumber,
		"total":          order.Total,
		"payment_method": order.PaymentMethod,
		"order":          order,
	})
}

func (s *Server) renderCheckoutError(c *gin.Context, err error) {
	var vErr *checkout.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error(), "missing": vErr.Missing})
	case errors.Is(err, checkout.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
	default:
		s.logger.Error("checkout failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to place order"})
	}
}

// recentOrder backs the confirmation page after a refresh, when navigation
// state carrying the order number was lost.
func (s *Server) recentOrder(c *gin.Context) {
	var userID string
	if user := auth.UserFrom(c); user != nil {
		userID = user.ID
	}

	order, err := s.checkout.RecentOrder(c.Request.Context(), s.sessionID(c), userID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no orders found"})
			return
		}
		s.logger.Error("failed to load recent order", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

func (s *Server) getOrder(c *gin.Context) {
	order, err := s.checkout.OrderByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		s.logger.Error("failed to load order", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}
