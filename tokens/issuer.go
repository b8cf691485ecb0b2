// Package tokens signs and verifies the two kinds of HS256 tokens the API
// hands out: short-lived bearer tokens for sessions and reset tokens that
// authorize a single password change. Each kind has its own secret.
package tokens

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/neocodez/portfolio/models"
)

const (
	BearerTTL = time.Hour
	ResetTTL  = 15 * time.Minute

	TypeBearer = "access"
	TypeReset  = "reset"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token expired")
	ErrMissingSecret = errors.New("token signing secret is not set")
)

type Claims struct {
	UserID string      `json:"id"`
	Role   models.Role `json:"role,omitempty"`
	Type   string      `json:"typ"`

	// PasswordStamp ties a reset token to the password it replaces.
	PasswordStamp string `json:"pst,omitempty"`

	jwt.RegisteredClaims
}

type Issuer struct {
	bearerSecret []byte
	resetSecret  []byte
	now          func() time.Time
}

func NewIssuer(bearerSecret, resetSecret string) *Issuer {
	return &Issuer{
		bearerSecret: []byte(bearerSecret),
		resetSecret:  []byte(resetSecret),
		now:          time.Now,
	}
}

// WithClock replaces the time source used for issuing and verifying.
func (i *Issuer) WithClock(now func() time.Time) *Issuer {
	i.now = now
	return i
}

func (i *Issuer) IssueBearerToken(userID string, role models.Role) (string, error) {
	return i.sign(i.bearerSecret, Claims{UserID: userID, Role: role, Type: TypeBearer}, BearerTTL)
}

// IssueResetToken binds the token to passwordHash through PasswordStamp. Once
// the password changes the stamp no longer matches and the token is spent.
func (i *Issuer) IssueResetToken(userID, passwordHash string) (string, error) {
	return i.sign(i.resetSecret, Claims{UserID: userID, Type: TypeReset, PasswordStamp: PasswordStamp(passwordHash)}, ResetTTL)
}

func (i *Issuer) VerifyBearerToken(tokenStr string) (*Claims, error) {
	return Verify(tokenStr, i.bearerSecret, TypeBearer, i.now)
}

func (i *Issuer) VerifyResetToken(tokenStr string) (*Claims, error) {
	return Verify(tokenStr, i.resetSecret, TypeReset, i.now)
}

func (i *Issuer) sign(secret []byte, claims Claims, ttl time.Duration) (string, error) {
	if len(secret) == 0 {
		return "", ErrMissingSecret
	}

	now := i.now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   claims.UserID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", claims.Type, err)
	}
	return signed, nil
}

// Verify checks the signature first and only then the expiry, so a forged
// token is always ErrInvalidToken whatever its exp says. A token is expired
// once now reaches exp.
func Verify(tokenStr string, secret []byte, typ string, now func() time.Time) (*Claims, error) {
	if len(secret) == 0 {
		return nil, ErrMissingSecret
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims,
		func(t *jwt.Token) (interface{}, error) {
			return secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid || claims.Type != typ || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// PasswordStamp is a short fingerprint of a password hash. bcrypt salts every
// hash, so any password update yields a new stamp.
func PasswordStamp(passwordHash string) string {
	sum := sha256.Sum256([]byte(passwordHash))
	return hex.EncodeToString(sum[:8])
}
