package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nanheram/storefront/internal/cart"
	"github.com/nanheram/storefront/internal/coupon"
	ord "github.com/nanheram/storefront/internal/order"
	"github.com/nanheram/storefront/internal/settings"
)

const (
	MethodCOD      = "cod"
	MethodRazorpay = "razorpay"
)

var (
	ErrIncompleteForm     = errors.New("shipping form incomplete")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrMethodNotEnabled   = errors.New("payment method not enabled")
	ErrPaymentCancelled   = errors.New("payment cancelled")
	ErrVerificationFailed = errors.New("payment verification failed")
)

// Session identifies the buyer: the user id for local records and the
// bearer token the payment-service expects.
type Session struct {
	UserID string
	Token  string
}

type ShippingForm struct {
	Name    string
	Email   string
	Phone   string
	Address string
	City    string
	State   string
	Pincode string
	Notes   string
}

func (f *ShippingForm) Validate() error {
	required := []string{f.Name, f.Email, f.Phone, f.Address, f.City, f.State, f.Pincode}
	for _, v := range required {
		if strings.TrimSpace(v) == "" {
			return ErrIncompleteForm
		}
	}
	return nil
}

type Totals struct {
	Subtotal    decimal.Decimal
	Discount    decimal.Decimal
	ShippingFee decimal.Decimal
	Total       decimal.Decimal
}

// Result reports where a checkout attempt ended up and the states it
// passed through on the way.
type Result struct {
	State   State
	Trace   []State
	OrderID string
	Totals  Totals
}

func (r *Result) advance(s State) {
	r.State = s
	r.Trace = append(r.Trace, s)
}

type Config struct {
	StoreName             string
	FreeShippingThreshold decimal.Decimal
	ShippingFee           decimal.Decimal
}

// Service drives a checkout attempt end to end: totals, local order
// creation, the gateway handshake and the payment widget.
type Service struct {
	orders   ord.Repository
	coupons  coupon.Repository
	carts    cart.Store
	cfgRepo  settings.Repository
	payments PaymentsClient
	widget   Widget
	cfg      Config
	now      func() time.Time
}

func NewService(orders ord.Repository, coupons coupon.Repository, carts cart.Store,
	cfgRepo settings.Repository, payments PaymentsClient, widget Widget, cfg Config) *Service {
	return &Service{
		orders:   orders,
		coupons:  coupons,
		carts:    carts,
		cfgRepo:  cfgRepo,
		payments: payments,
		widget:   widget,
		cfg:      cfg,
		now:      time.Now,
	}
}

// ApplyCoupon validates a code against the current subtotal and returns
// the coupon with its computed discount.
func (s *Service) ApplyCoupon(ctx context.Context, code string, subtotal decimal.Decimal) (*coupon.Coupon, decimal.Decimal, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, decimal.Zero, coupon.ErrInvalid
	}
	c, err := s.coupons.GetByCode(ctx, code)
	if err != nil {
		return nil, decimal.Zero, err
	}
	if err := c.Validate(subtotal, s.now()); err != nil {
		return nil, decimal.Zero, err
	}
	return c, c.Discount(subtotal), nil
}

func (s *Service) computeTotals(subtotal, discount decimal.Decimal) Totals {
	t := Totals{Subtotal: subtotal, Discount: discount}
	if subtotal.LessThan(s.cfg.FreeShippingThreshold) {
		t.ShippingFee = s.cfg.ShippingFee
	}
	t.Total = subtotal.Sub(discount).Add(t.ShippingFee)
	return t
}

// Submit runs one checkout attempt. The COD path terminates after the
// local order is created; the gateway path continues through the widget
// and the verification call. Every collaborator response is inspected
// before the state advances.
func (s *Service) Submit(ctx context.Context, sess Session, form ShippingForm, method, couponCode string) (*Result, error) {
	res := &Result{State: StateIdle, Trace: []State{StateIdle}}

	if err := form.Validate(); err != nil {
		res.advance(StateFailed)
		return res, err
	}
	res.advance(StateFormValid)

	enabled, err := settings.EnabledMethods(ctx, s.cfgRepo)
	if err != nil {
		res.advance(StateFailed)
		return res, err
	}
	if !contains(enabled, method) {
		res.advance(StateFailed)
		return res, ErrMethodNotEnabled
	}

	crt, err := s.carts.Get(ctx, sess.UserID)
	if err != nil || len(crt.Items) == 0 {
		res.advance(StateFailed)
		return res, ErrEmptyCart
	}
	subtotal := crt.Subtotal()

	var appliedCoupon *coupon.Coupon
	discount := decimal.Zero
	if couponCode != "" {
		appliedCoupon, discount, err = s.ApplyCoupon(ctx, couponCode, subtotal)
		if err != nil {
			res.advance(StateFailed)
			return res, err
		}
	}
	res.Totals = s.computeTotals(subtotal, discount)

	o, items := s.buildOrder(sess.UserID, form, method, appliedCoupon, res.Totals, crt)
	if err := s.orders.Create(ctx, o, items); err != nil {
		res.advance(StateFailed)
		return res, fmt.Errorf("create order: %w", err)
	}
	res.OrderID = o.ID
	res.advance(StateOrderCreated)

	// redemption is best-effort after order creation; the counter update
	// itself is atomic in the repository
	if appliedCoupon != nil {
		if err := s.coupons.IncrementUsage(ctx, appliedCoupon.Code); err != nil {
			log.Printf("[checkout] coupon increment code=%s: %v", appliedCoupon.Code, err)
		}
	}

	if method == MethodCOD {
		s.clearCart(ctx, sess.UserID)
		res.advance(StateCompleted)
		return res, nil
	}
	return s.payOnline(ctx, sess, form, o, res)
}

func (s *Service) payOnline(ctx context.Context, sess Session, form ShippingForm, o *ord.Order, res *Result) (*Result, error) {
	gw, err := s.payments.CreateGatewayOrder(ctx, sess.Token, res.Totals.Total, o.ID)
	if err != nil {
		if ferr := s.orders.MarkPaymentFailed(ctx, o.ID); ferr != nil {
			log.Printf("[checkout] mark failed order=%s: %v", o.ID, ferr)
		}
		res.advance(StateFailed)
		return res, fmt.Errorf("initiate payment: %w", err)
	}
	res.advance(StateGatewayOrderCreated)

	res.advance(StateWidgetOpen)
	wres, err := s.widget.Open(ctx, WidgetOptions{
		KeyID:          gw.RazorpayKeyID,
		GatewayOrderID: gw.RazorpayOrderID,
		Amount:         gw.Amount,
		Currency:       gw.Currency,
		Name:           s.cfg.StoreName,
		Description:    orderLabel(o.ID),
		Prefill:        Prefill{Name: form.Name, Email: form.Email, Contact: form.Phone},
	})
	if err != nil || wres == nil || wres.Dismissed {
		// dismissal never triggers verification; the order stays in
		// awaiting_payment so the user can retry or switch method
		res.advance(StateFailed)
		return res, ErrPaymentCancelled
	}

	res.advance(StateVerifying)
	vres, err := s.payments.VerifyPayment(ctx, sess.Token, ord.VerifyPaymentRequest{
		RazorpayOrderID:   wres.GatewayOrderID,
		RazorpayPaymentID: wres.PaymentID,
		RazorpaySignature: wres.Signature,
		OrderID:           o.ID,
	})
	if err != nil || !vres.Success {
		res.advance(StateFailed)
		return res, ErrVerificationFailed
	}

	s.clearCart(ctx, sess.UserID)
	res.advance(StateConfirmed)
	return res, nil
}

func (s *Service) buildOrder(userID string, form ShippingForm, method string, c *coupon.Coupon, t Totals, crt *cart.Cart) (*ord.Order, []ord.Item) {
	status := ord.StatusAwaitingPayment
	if method == MethodCOD {
		status = ord.StatusPending
	}
	o := &ord.Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		Status:          status,
		Total:           t.Total.String(),
		ShippingName:    form.Name,
		ShippingPhone:   form.Phone,
		ShippingAddress: form.Address,
		ShippingCity:    form.City,
		ShippingState:   form.State,
		ShippingPincode: form.Pincode,
		PaymentMethod:   method,
		DiscountAmount:  t.Discount.String(),
	}
	if form.Notes != "" {
		o.Notes = &form.Notes
	}
	if c != nil {
		o.CouponCode = &c.Code
	}

	items := make([]ord.Item, 0, len(crt.Items))
	for _, it := range crt.Items {
		item := ord.Item{
			ID:          uuid.NewString(),
			OrderID:     o.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price.String(),
		}
		if it.ProductImage != "" {
			img := it.ProductImage
			item.ProductImage = &img
		}
		items = append(items, item)
	}
	return o, items
}

func (s *Service) clearCart(ctx context.Context, userID string) {
	if err := s.carts.Clear(ctx, userID); err != nil {
		log.Printf("[checkout] clear cart user=%s: %v", userID, err)
	}
}

func orderLabel(id string) string {
	short := id
	if len(short) > 8 {
		short = short[:8]
	}
	return "Order #" + strings.ToUpper(short)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
