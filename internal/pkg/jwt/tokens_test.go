package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTTokenParser_ParseToken(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	issuer := NewJWTTokenIssuer()

	validToken, err := issuer.IssueToken(secret, 42, "student", time.Hour)
	require.NoError(t, err)

	expiredToken, err := issuer.IssueToken(secret, 42, "student", -time.Hour)
	require.NoError(t, err)

	type testCase struct {
		name   string
		secret []byte
		token  string

		expectedUserID int
		expectedErr    error
	}

	tests := []testCase{
		{
			name:           "valid token",
			secret:         secret,
			token:          validToken,
			expectedUserID: 42,
		},
		{
			name:        "wrong secret",
			secret:      []byte("other"),
			token:       validToken,
			expectedErr: jwt.ErrTokenSignatureInvalid,
		},
		{
			name:        "expired token",
			secret:      secret,
			token:       expiredToken,
			expectedErr: jwt.ErrTokenExpired,
		},
		{
			name:        "garbage",
			secret:      secret,
			token:       "not-a-token",
			expectedErr: jwt.ErrTokenMalformed,
		},
	}

	parser := NewJWTTokenParser()

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			claims, err := parser.ParseToken(tt.secret, tt.token)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, claims)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedUserID, claims.UserID)
				assert.Equal(t, "student", claims.Username)
				assert.Equal(t, "42", claims.Subject)
			}
		})
	}
}
