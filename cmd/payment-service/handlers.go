package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/nanheram/storefront/internal/auth"
	ord "github.com/nanheram/storefront/internal/order"
	"github.com/nanheram/storefront/internal/razorpay"
	"github.com/nanheram/storefront/internal/settings"
)

func bearerToken(c *gin.Context) (string, bool) {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(h, "Bearer "), true
}

// createPaymentOrderHandler originates a gateway order right before the
// client opens the payment widget. Validation failures never reach the
// gateway.
func createPaymentOrderHandler(authn auth.Authenticator, cfgRepo settings.Repository, gw *razorpay.Client, currency string, minorUnitFactor int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if _, err := authn.Authenticate(token); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req ord.CreatePaymentOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
			return
		}

		creds, err := settings.Credentials(c.Request.Context(), cfgRepo)
		if err != nil {
			if errors.Is(err, settings.ErrNotConfigured) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Razorpay is not configured. Please add API keys in admin settings."})
				return
			}
			log.Printf("[payments] settings load failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		receipt := req.OrderID
		if receipt == "" {
			receipt = fmt.Sprintf("receipt_%d", time.Now().UnixMilli())
		}
		gwOrder, err := gw.CreateOrder(c.Request.Context(), creds, razorpay.CreateOrderParams{
			Amount:   razorpay.ToMinorUnits(decimal.NewFromFloat(req.Amount), minorUnitFactor),
			Currency: currency,
			Receipt:  receipt,
			Notes:    map[string]string{"order_id": req.OrderID},
		})
		if err != nil {
			log.Printf("[payments] gateway order create failed order=%s: %v", req.OrderID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Razorpay order"})
			return
		}

		c.JSON(http.StatusOK, ord.CreatePaymentOrderResponse{
			RazorpayOrderID: gwOrder.ID,
			RazorpayKeyID:   creds.KeyID,
			Amount:          gwOrder.Amount,
			Currency:        currency,
		})
	}
}

// verifyPaymentHandler is the trust boundary: the only place that marks a
// payment as genuinely completed. A signature mismatch is not dropped; the
// order is forced to payment_failed so it never lingers in
// awaiting_payment after a forged or corrupted callback.
func verifyPaymentHandler(authn auth.Authenticator, cfgRepo settings.Repository, orders ord.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if _, err := authn.Authenticate(token); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req ord.VerifyPaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil ||
			req.RazorpayOrderID == "" || req.RazorpayPaymentID == "" ||
			req.RazorpaySignature == "" || req.OrderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing payment details"})
			return
		}

		secret, err := settings.KeySecret(c.Request.Context(), cfgRepo)
		if err != nil {
			if errors.Is(err, settings.ErrNotConfigured) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Razorpay not configured"})
				return
			}
			log.Printf("[payments] settings load failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		if !razorpay.VerifySignature(secret, req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
			if err := orders.MarkPaymentFailed(c.Request.Context(), req.OrderID); err != nil {
				log.Printf("[payments] mark failed order=%s: %v", req.OrderID, err)
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "Payment verification failed"})
			return
		}

		if err := orders.ConfirmPayment(c.Request.Context(), req.OrderID, "razorpay"); err != nil {
			log.Printf("[payments] confirm order=%s: %v", req.OrderID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		// payment id is logged for the audit trail; it is not persisted
		log.Printf("[payments] verified order=%s payment=%s", req.OrderID, req.RazorpayPaymentID)
		c.JSON(http.StatusOK, ord.VerifyPaymentResponse{
			Success: true,
			Message: "Payment verified successfully",
		})
	}
}
