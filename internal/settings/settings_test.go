package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapRepo map[string]string

func (m mapRepo) Values(_ context.Context, keys ...string) (map[string]string, error) {
	out := map[string]string{}
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out, nil
}

func TestCredentials(t *testing.T) {
	ctx := context.Background()

	creds, err := Credentials(ctx, mapRepo{
		KeyRazorpayKeyID:     "rzp_test_k1",
		KeyRazorpayKeySecret: "sec",
	})
	require.NoError(t, err)
	assert.Equal(t, "rzp_test_k1", creds.KeyID)
	assert.Equal(t, "sec", creds.KeySecret)

	_, err = Credentials(ctx, mapRepo{KeyRazorpayKeyID: "rzp_test_k1"})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = Credentials(ctx, mapRepo{KeyRazorpayKeyID: "rzp_test_k1", KeyRazorpayKeySecret: ""})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestKeySecret(t *testing.T) {
	ctx := context.Background()

	sec, err := KeySecret(ctx, mapRepo{KeyRazorpayKeySecret: "sec"})
	require.NoError(t, err)
	assert.Equal(t, "sec", sec)

	_, err = KeySecret(ctx, mapRepo{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestEnabledMethods(t *testing.T) {
	ctx := context.Background()

	got, err := EnabledMethods(ctx, mapRepo{KeyPaymentGateway: "cod,razorpay"})
	require.NoError(t, err)
	assert.Equal(t, []string{"cod", "razorpay"}, got)

	got, err = EnabledMethods(ctx, mapRepo{})
	require.NoError(t, err)
	assert.Equal(t, []string{"cod"}, got)

	got, err = EnabledMethods(ctx, mapRepo{KeyPaymentGateway: " , "})
	require.NoError(t, err)
	assert.Equal(t, []string{"cod"}, got)
}
