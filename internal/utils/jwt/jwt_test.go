package jwt

import (
	"testing"
	"time"

	"github.com/muffme/bakery-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Generate(t *testing.T) {
	tests := []struct {
		name      string
		secretKey string
		tokenTTL  time.Duration
		userID    int64
		role      domain.Role
		wantErr   bool
	}{
		{
			name:      "Valid token generation",
			secretKey: "test-secret-key",
			tokenTTL:  time.Hour,
			userID:    12345,
			role:      domain.RoleUser,
			wantErr:   false,
		},
		{
			name:      "Admin token",
			secretKey: "another-secret",
			tokenTTL:  time.Minute * 30,
			userID:    0,
			role:      domain.RoleAdmin,
			wantErr:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(tt.secretKey, tt.tokenTTL)
			token, err := m.Generate(tt.userID, tt.role)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, token)
			}
		})
	}
}

func TestManager_Validate(t *testing.T) {
	secretKey := "test-secret-key"
	tokenTTL := time.Hour
	userID := int64(12345)

	t.Run("Valid token", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)
		token, err := m.Generate(userID, domain.RoleUser)
		require.NoError(t, err)

		parsedUserID, role, err := m.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, userID, parsedUserID)
		assert.Equal(t, domain.RoleUser, role)
	})

	t.Run("Admin role survives roundtrip", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)
		token, err := m.Generate(0, domain.RoleAdmin)
		require.NoError(t, err)

		parsedUserID, role, err := m.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, int64(0), parsedUserID)
		assert.Equal(t, domain.RoleAdmin, role)
	})

	t.Run("Invalid token - wrong secret", func(t *testing.T) {
		m1 := NewManager(secretKey, tokenTTL)
		token, err := m1.Generate(userID, domain.RoleUser)
		require.NoError(t, err)

		m2 := NewManager("wrong-secret", tokenTTL)
		_, _, err = m2.Validate(token)
		assert.Error(t, err)
	})

	t.Run("Invalid token - malformed", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)
		_, _, err := m.Validate("invalid.token.string")
		assert.Error(t, err)
	})

	t.Run("Invalid token - empty", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)
		_, _, err := m.Validate("")
		assert.Error(t, err)
	})

	t.Run("Expired token", func(t *testing.T) {
		m := NewManager(secretKey, time.Nanosecond)
		token, err := m.Generate(userID, domain.RoleUser)
		require.NoError(t, err)

		// Ждем, чтобы токен истек
		time.Sleep(time.Millisecond * 10)

		_, _, err = m.Validate(token)
		assert.Error(t, err)
	})
}

func TestManager_ValidateWithInvalidSigningMethod(t *testing.T) {
	m := NewManager("secret", time.Hour)

	// Токен с alg=none отклоняется
	_, _, err := m.Validate("eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJ1c2VyX2lkIjoxMjM0NX0.")
	assert.Error(t, err)
}
