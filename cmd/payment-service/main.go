package main

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nanheram/storefront/internal/auth"
	"github.com/nanheram/storefront/internal/config"
	"github.com/nanheram/storefront/internal/httpx"
	"github.com/nanheram/storefront/internal/order"
	"github.com/nanheram/storefront/internal/razorpay"
	"github.com/nanheram/storefront/internal/settings"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("pgx pool: %v", err)
	}
	defer pool.Close()

	factor, err := strconv.ParseInt(cfg.MinorUnitFactor, 10, 64)
	if err != nil || factor <= 0 {
		log.Fatalf("bad MINOR_UNIT_FACTOR %q", cfg.MinorUnitFactor)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	authn := auth.NewTokenService([]byte(cfg.JWTSecret), 24*time.Hour)
	settingsRepo := settings.NewPGRepo(pool)
	orderRepo := order.NewPGRepo(pool)
	gateway := razorpay.NewClient(cfg.RazorpayBaseURL)

	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(), httpx.CORS())

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.POST("/functions/v1/razorpay-create-order",
		createPaymentOrderHandler(authn, settingsRepo, gateway, cfg.Currency, factor))
	r.POST("/functions/v1/razorpay-verify-payment",
		verifyPaymentHandler(authn, settingsRepo, orderRepo))

	log.Printf("payment-service listening on %s", cfg.PaymentSvcAddr)
	log.Fatal(r.Run(cfg.PaymentSvcAddr))
}
