package coupon

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	GetByCode(ctx context.Context, code string) (*Coupon, error)
	IncrementUsage(ctx context.Context, code string) error
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) GetByCode(ctx context.Context, code string) (*Coupon, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var c Coupon
	err := r.db.QueryRow(ctx, `
		SELECT code, discount_type, discount_value::text, min_order_amount::text,
		       max_uses, used_count, is_active, expires_at
		FROM coupons WHERE code=$1 AND is_active
	`, code).Scan(&c.Code, &c.DiscountType, &c.DiscountValue, &c.MinOrderAmount,
		&c.MaxUses, &c.UsedCount, &c.IsActive, &c.ExpiresAt)
	if err != nil {
		return nil, ErrInvalid
	}
	return &c, nil
}

// IncrementUsage bumps used_count in one statement so concurrent
// redemptions never lose an increment.
func (r *PGRepo) IncrementUsage(ctx context.Context, code string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		UPDATE coupons SET used_count = used_count + 1 WHERE code=$1
	`, code)
	return err
}
