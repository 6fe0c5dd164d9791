package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims carries the standard registered claims plus the user the token acts as.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
}

// Tokens issues and validates signed identity assertions. The signing key is
// fixed at construction and shared process-wide; validation is stateless and
// consults no store.
type Tokens struct {
	key []byte
	ttl time.Duration
}

func NewTokens(key []byte, ttl time.Duration) *Tokens {
	return &Tokens{key: key, ttl: ttl}
}

// Issue mints an HS256 token embedding userID, expiring ttl from now.
func (t *Tokens) Issue(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
		UserID: userID,
	})
	return token.SignedString(t.key)
}

// Validate returns the embedded user id, or ErrInvalidToken when the signature
// does not verify, the token is expired, or the string is malformed.
func (t *Tokens) Validate(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return t.key, nil
	})
	if err != nil {
		return "", errors.Join(ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}
