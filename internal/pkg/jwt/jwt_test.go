//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"resort-engine/internal/domain/customer"
	"resort-engine/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)
	id := uuid.New()

	token, err := svc.GenerateToken(id, customer.RoleStaff, time.Now())
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.CustomerID)
	assert.Equal(t, "staff", claims.Role)
	assert.Equal(t, id.String(), claims.Subject)
}

func TestValidateRejects(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)

	t.Run("expired", func(t *testing.T) {
		token, err := svc.GenerateToken(uuid.New(), customer.RoleCustomer, time.Now().Add(-2*time.Hour))
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := jwt.NewService("other", time.Hour).GenerateToken(uuid.New(), customer.RoleCustomer, time.Now())
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	forged := func(mutate func(*jwt.Claims)) string {
		id := uuid.New()
		claims := jwt.Claims{
			CustomerID: id,
			Role:       "customer",
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    "resort-engine",
				Subject:   id.String(),
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		mutate(&claims)
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)
		return token
	}

	cases := map[string]func(*jwt.Claims){
		"unknown role":       func(c *jwt.Claims) { c.Role = "admin" },
		"subject mismatch":   func(c *jwt.Claims) { c.Subject = uuid.NewString() },
		"foreign issuer":     func(c *jwt.Claims) { c.Issuer = "elsewhere" },
		"missing expiration": func(c *jwt.Claims) { c.ExpiresAt = nil },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ValidateToken(forged(mutate))
			assert.ErrorIs(t, err, jwt.ErrInvalidToken)
		})
	}

	t.Run("well-formed token passes", func(t *testing.T) {
		_, err := svc.ValidateToken(forged(func(*jwt.Claims) {}))
		assert.NoError(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
