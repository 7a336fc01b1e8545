package order

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound = errors.New("order not found")
)

type Repository interface {
	Create(ctx context.Context, o *Order, items []Item) error
	GetByID(ctx context.Context, id string) (*Order, []Item, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	ConfirmPayment(ctx context.Context, id, method string) error
	MarkPaymentFailed(ctx context.Context, id string) error
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, o *Order, items []Item) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
    INSERT INTO orders (
      id, user_id, status, total,
      shipping_name, shipping_phone, shipping_address,
      shipping_city, shipping_state, shipping_pincode,
      payment_method, notes, coupon_code, discount_amount,
      created_at, updated_at
    )
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,NOW(),NOW())
  `, o.ID, o.UserID, o.Status, o.Total,
		o.ShippingName, o.ShippingPhone, o.ShippingAddress,
		o.ShippingCity, o.ShippingState, o.ShippingPincode,
		o.PaymentMethod, o.Notes, o.CouponCode, o.DiscountAmount); err != nil {
		return err
	}

	for _, it := range items {
		if _, err := tx.Exec(ctx, `
      INSERT INTO order_items (id, order_id, product_id, product_name, product_image, quantity, price)
      VALUES ($1,$2,$3,$4,$5,$6,$7)
    `, it.ID, o.ID, it.ProductID, it.ProductName, it.ProductImage, it.Quantity, it.Price); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Order, []Item, error) {
	var o Order
	if err := r.db.QueryRow(ctx, `
    SELECT id, user_id, status, total::text,
           shipping_name, shipping_phone, shipping_address,
           shipping_city, shipping_state, shipping_pincode,
           payment_method, notes, coupon_code, discount_amount::text,
           created_at, updated_at
    FROM orders WHERE id=$1
  `, id).Scan(&o.ID, &o.UserID, &o.Status, &o.Total,
		&o.ShippingName, &o.ShippingPhone, &o.ShippingAddress,
		&o.ShippingCity, &o.ShippingState, &o.ShippingPincode,
		&o.PaymentMethod, &o.Notes, &o.CouponCode, &o.DiscountAmount,
		&o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, nil, ErrNotFound
	}
	rows, err := r.db.Query(ctx, `
    SELECT id, order_id, product_id, product_name, product_image, quantity, price::text
    FROM order_items WHERE order_id=$1
  `, id)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()
	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.ProductImage, &it.Quantity, &it.Price); err != nil {
			return nil, nil, err
		}
		items = append(items, it)
	}
	return &o, items, rows.Err()
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Order, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.db.Query(ctx, `
    SELECT id, user_id, status, total::text,
           shipping_name, shipping_phone, shipping_address,
           shipping_city, shipping_state, shipping_pincode,
           payment_method, notes, coupon_code, discount_amount::text,
           created_at, updated_at
    FROM orders WHERE user_id=$1
    ORDER BY created_at DESC LIMIT $2 OFFSET $3
  `, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Status, &o.Total,
			&o.ShippingName, &o.ShippingPhone, &o.ShippingAddress,
			&o.ShippingCity, &o.ShippingState, &o.ShippingPincode,
			&o.PaymentMethod, &o.Notes, &o.CouponCode, &o.DiscountAmount,
			&o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *PGRepo) UpdateStatus(ctx context.Context, id string, status Status) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
    UPDATE orders
    SET status = $2, updated_at = NOW()
    WHERE id = $1
  `, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ConfirmPayment flips the order to confirmed and records the gateway as
// its payment method. The status condition makes re-delivery of a valid
// callback a no-op and refuses to resurrect a failed order.
func (r *PGRepo) ConfirmPayment(ctx context.Context, id, method string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
    UPDATE orders
    SET status = $2, payment_method = $3, updated_at = NOW()
    WHERE id = $1 AND status IN ($4, $2)
  `, id, StatusConfirmed, method, StatusAwaitingPayment)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkPaymentFailed transitions only from awaiting_payment, so a late or
// duplicate failure can never downgrade a confirmed order. Updating zero
// rows is not an error: the guard simply did not apply.
func (r *PGRepo) MarkPaymentFailed(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
    UPDATE orders
    SET status = $2, updated_at = NOW()
    WHERE id = $1 AND status = $3
  `, id, StatusPaymentFailed, StatusAwaitingPayment)
	return err
}
