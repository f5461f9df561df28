package api

import (
	"net/http"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/service/contact"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ContactHandler struct {
	service contact.ContactUseCase
	log     *zap.Logger
}

type contactRequest struct {
	Name        string `json:"name" binding:"max=120"`
	Email       string `json:"email" binding:"max=254"`
	Phone       string `json:"phone"`
	InquiryType string `json:"inquiry_type" binding:"omitempty,oneof=General Booking Payment Feedback"`
	Message     string `json:"message" binding:"max=2000"`
}

type feedbackRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment" binding:"max=1000"`
}

type newsletterRequest struct {
	Email string `json:"email" binding:"required,max=254"`
}

func NewContactHandler(service contact.ContactUseCase, log *zap.Logger) *ContactHandler {
	registerValidators()
	return &ContactHandler{service: service, log: log}
}

func (h *ContactHandler) Register(router *gin.RouterGroup) {
	router.POST("/contact", h.submitContact)
	router.POST("/feedback", h.submitFeedback)
	router.POST("/newsletter", h.subscribe)
	router.GET("/faqs", h.faqs)
	router.GET("/offices", h.offices)
}

func (h *ContactHandler) submitContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	err := h.service.SubmitContact(c.Request.Context(), domain.ContactForm{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		InquiryType: domain.InquiryType(req.InquiryType),
		Message:     req.Message,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "Your message has been sent successfully!"})
}

func (h *ContactHandler) submitFeedback(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.service.SubmitFeedback(c.Request.Context(), domain.Feedback{Rating: req.Rating, Comment: req.Comment}); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "Thank you for your feedback!"})
}

func (h *ContactHandler) subscribe(c *gin.Context) {
	var req newsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.service.Subscribe(c.Request.Context(), req.Email); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Subscribed successfully!"})
}

func (h *ContactHandler) faqs(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.SearchFAQ(c.Query("q")))
}

func (h *ContactHandler) offices(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Offices())
}
