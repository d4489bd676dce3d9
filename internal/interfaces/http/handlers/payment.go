// internal/interfaces/http/handlers/payment.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/madhav-gif/Full-stack-project/internal/config"
	"github.com/madhav-gif/Full-stack-project/internal/domain/payment"
	"github.com/madhav-gif/Full-stack-project/internal/interfaces/http/middleware"
	"github.com/madhav-gif/Full-stack-project/internal/pkg/metrics"
	"gorm.io/gorm"
)

// PaymentHandler handles payment endpoints
type PaymentHandler struct {
	paymentService *payment.Service
	config         *config.Config
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(db *gorm.DB, cfg *config.Config) *PaymentHandler {
	return &PaymentHandler{
		paymentService: payment.NewService(db, cfg),
		config:         cfg,
	}
}

// CreateRazorpayOrder handles POST /create-razorpay-order
func (h *PaymentHandler) CreateRazorpayOrder(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	userEmail, _ := middleware.GetUserEmailFromContext(c)

	response, err := h.paymentService.InitiatePayment(userID, userEmail)
	if err != nil {
		if errors.Is(err, payment.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cart is empty",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to initiate payment",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Razorpay order created successfully",
		"data":    response,
	})
}

// VerifyPayment handles POST /verify-payment
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	var req payment.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	metrics.PaymentAttemptsTotal.Inc()

	o, err := h.paymentService.VerifyPayment(userID, &req)
	if err != nil {
		metrics.PaymentFailedTotal.Inc()
		if errors.Is(err, payment.ErrVerificationFailed) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Payment verification failed",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to verify payment",
		})
		return
	}

	metrics.PaymentSuccessTotal.Inc()

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment verified successfully",
		"data":    o,
	})
}
