package server

import (
	"errors"
	"net/http"

	"github.com/example/craftshop/pkg/admin"
	"github.com/example/craftshop/pkg/auth"
	"github.com/example/craftshop/pkg/catalog"
	"github.com/example/craftshop/pkg/newsletter"
	"github.com/example/craftshop/pkg/reviews"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (s *Server) productFromSlug(c *gin.Context) (catalog.Product, bool) {
	p, err := catalog.BySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return catalog.Product{}, false
	}
	return p, true
}

func (s *Server) callerIdentity(c *gin.Context) (userID, name string) {
	if user := auth.UserFrom(c); user != nil {
		return user.ID, user.Name
	}
	return "", ""
}

func (s *Server) listReviews(c *gin.Context) {
	p, ok := s.productFromSlug(c)
	if !ok {
		return
	}

	rows, err := s.reviews.ListReviews(c.Request.Context(), p.ID)
	if err != nil {
		s.logger.Error("failed to list reviews", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load reviews"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": rows, "total": len(rows)})
}

func (s *Server) addReview(c *gin.Context) {
	p, ok := s.productFromSlug(c)
	if !ok {
		return
	}

	var req struct {
		Author string `json:"author"`
		Rating int    `json:"rating"`
		Body   string `json:"body"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, name := s.callerIdentity(c)
	if req.Author == "" {
		req.Author = name
	}

	review, err := s.reviews.AddReview(c.Request.Context(), p.ID, userID, req.Author, req.Rating, req.Body)
	if err != nil {
		s.renderReviewError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"review": review})
}

func (s *Server) listQuestions(c *gin.Context) {
	p, ok := s.productFromSlug(c)
	if !ok {
		return
	}

	rows, err := s.reviews.ListQuestions(c.Request.Context(), p.ID)
	if err != nil {
		s.logger.Error("failed to list questions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load questions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": rows, "total": len(rows)})
}

func (s *Server) addQuestion(c *gin.Context) {
	p, ok := s.productFromSlug(c)
	if !ok {
		return
	}

	var req struct {
		Author string `json:"author"`
		Body   string `json:"body"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, name := s.callerIdentity(c)
	if req.Author == "" {
		req.Author = name
	}

	question, err := s.reviews.AddQuestion(c.Request.Context(), p.ID, userID, req.Author, req.Body)
	if err != nil {
		s.renderReviewError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"question": question})
}

func (s *Server) addAnswer(c *gin.Context) {
	var req struct {
		Author string `json:"author"`
		Body   string `json:"body"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, name := s.callerIdentity(c)
	if req.Author == "" {
		req.Author = name
	}

	answer, err := s.reviews.AddAnswer(c.Request.Context(), c.Param("id"), userID, req.Author, req.Body)
	if err != nil {
		s.renderReviewError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"answer": answer})
}

func (s *Server) renderReviewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, reviews.ErrInvalidRating), errors.Is(err, reviews.ErrEmptyBody):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, reviews.ErrQuestionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		s.logger.Error("review operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "operation failed"})
	}
}

func (s *Server) subscribeNewsletter(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.newsletter.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, newsletter.ErrInvalidEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		s.logger.Error("newsletter subscribe failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to subscribe"})
		return
	}

	switch result {
	case newsletter.AlreadySubscribed:
		c.JSON(http.StatusOK, gin.H{"status": "already_subscribed", "notice": "You're already on the list"})
	default:
		c.JSON(http.StatusCreated, gin.H{"status": "subscribed", "notice": "Thanks for subscribing"})
	}
}

func (s *Server) submitContact(c *gin.Context) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Body    string `json:"body"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := s.admin.CreateMessage(c.Request.Context(), req.Name, req.Email, req.Subject, req.Body)
	if err != nil {
		if errors.Is(err, admin.ErrEmptyMessage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		s.logger.Error("failed to create contact message", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send message"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": msg})
}
