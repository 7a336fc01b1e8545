package settings

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nanheram/storefront/internal/razorpay"
)

const (
	KeyRazorpayKeyID     = "razorpay_key_id"
	KeyRazorpayKeySecret = "razorpay_key_secret"
	KeyPaymentGateway    = "payment_gateway"
)

var ErrNotConfigured = errors.New("payment gateway not configured")

type Repository interface {
	Values(ctx context.Context, keys ...string) (map[string]string, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Values(ctx context.Context, keys ...string) (map[string]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT setting_key, setting_value
		FROM admin_settings WHERE setting_key = ANY($1)
	`, keys)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]string, len(keys))
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, rows.Err()
}

// Credentials loads the gateway key pair. Either key missing or empty
// means the operator has not configured the gateway.
func Credentials(ctx context.Context, repo Repository) (razorpay.Credentials, error) {
	vals, err := repo.Values(ctx, KeyRazorpayKeyID, KeyRazorpayKeySecret)
	if err != nil {
		return razorpay.Credentials{}, err
	}
	creds := razorpay.Credentials{
		KeyID:     vals[KeyRazorpayKeyID],
		KeySecret: vals[KeyRazorpayKeySecret],
	}
	if creds.KeyID == "" || creds.KeySecret == "" {
		return razorpay.Credentials{}, ErrNotConfigured
	}
	return creds, nil
}

// KeySecret loads only the signing secret, for verification.
func KeySecret(ctx context.Context, repo Repository) (string, error) {
	vals, err := repo.Values(ctx, KeyRazorpayKeySecret)
	if err != nil {
		return "", err
	}
	if vals[KeyRazorpayKeySecret] == "" {
		return "", ErrNotConfigured
	}
	return vals[KeyRazorpayKeySecret], nil
}

// EnabledMethods returns the payment methods the admin has switched on,
// from the comma-separated payment_gateway setting. Defaults to COD.
func EnabledMethods(ctx context.Context, repo Repository) ([]string, error) {
	vals, err := repo.Values(ctx, KeyPaymentGateway)
	if err != nil {
		return nil, err
	}
	raw := vals[KeyPaymentGateway]
	if raw == "" {
		return []string{"cod"}, nil
	}
	var out []string
	for _, m := range strings.Split(raw, ",") {
		if m = strings.TrimSpace(m); m != "" {
			out = append(out, m)
		}
	}
	if len(out) == 0 {
		out = []string{"cod"}
	}
	return out, nil
}
