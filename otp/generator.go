// Package otp produces the six digit codes mailed out for password resets.
package otp

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"time"
)

const (
	CodeLength = 6
	CodeTTL    = 10 * time.Minute

	minCode = 100000
	maxCode = 999999
)

type Generator struct {
	now func() time.Time
}

func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// WithClock replaces the time source used to stamp expiries.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Generate returns a code drawn uniformly from [100000, 999999] and the
// instant it stops being valid.
func (g *Generator) Generate() (string, time.Time, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(maxCode-minCode+1))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("generate code: %w", err)
	}

	code := fmt.Sprintf("%06d", n.Int64()+minCode)
	return code, g.now().Add(CodeTTL), nil
}

// Expired treats the expiry instant itself as expired.
func Expired(expiresAt, now time.Time) bool {
	return !now.Before(expiresAt)
}

// Matches compares codes as exact strings in constant time.
func Matches(stored, supplied string) bool {
	if stored == "" || len(stored) != len(supplied) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}
