package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/neocodez/portfolio/mailer"
	"github.com/neocodez/portfolio/models"
	"github.com/neocodez/portfolio/repositories"
	"github.com/neocodez/portfolio/tokens"
	"github.com/neocodez/portfolio/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type testClock struct {
	mu sync.Mutex
	t  time.Time
}

func newTestClock() *testClock {
	return &testClock{t: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// memUsers is an in-memory CredentialStore. Reads return copies so tests can
// compare snapshots.
type memUsers struct {
	mu    sync.Mutex
	users map[string]models.User
	now   func() time.Time
}

func newMemUsers(now func() time.Time) *memUsers {
	return &memUsers{users: map[string]models.User{}, now: now}
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (m *memUsers) FindByID(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return &u, nil
}

func (m *memUsers) CreateUser(_ context.Context, name, email, rawPassword string, role models.Role) (*models.User, error) {
	hash, err := utils.HashPassword(rawPassword)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return nil, repositories.ErrDuplicateEmail
		}
	}

	u := models.User{
		ID:           bson.NewObjectID(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    m.now(),
		UpdatedAt:    m.now(),
	}
	m.users[u.ID.Hex()] = u
	return &u, nil
}

func (m *memUsers) DeleteUser(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
	return nil
}

func (m *memUsers) SetResetCode(_ context.Context, id, code string, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.OTP = code
	u.OTPExpires = &expiresAt
	m.users[id] = u
	return nil
}

func (m *memUsers) ConsumeResetCode(_ context.Context, id, code string, now time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return false, repositories.ErrUserNotFound
	}
	if u.OTP != code || u.OTPExpires == nil || !u.OTPExpires.After(now) {
		return false, nil
	}
	u.OTP, u.OTPExpires = "", nil
	m.users[id] = u
	return true, nil
}

func (m *memUsers) RevokeResetCode(_ context.Context, id, code string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return false, repositories.ErrUserNotFound
	}
	if u.OTP != code {
		return false, nil
	}
	u.OTP, u.OTPExpires = "", nil
	m.users[id] = u
	return true, nil
}

func (m *memUsers) ClearResetCode(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.OTP, u.OTPExpires = "", nil
	m.users[id] = u
	return nil
}

func (m *memUsers) UpdatePassword(_ context.Context, id, rawPassword string) error {
	hash, err := utils.HashPassword(rawPassword)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.PasswordHash = hash
	m.users[id] = u
	return nil
}

func (m *memUsers) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}

// storedCodes returns every code currently held, keyed by email.
func (m *memUsers) storedCodes() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[string]string{}
	for _, u := range m.users {
		if u.OTP != "" {
			out[u.Email] = u.OTP
		}
	}
	return out
}

// seqCodes hands out predictable codes.
type seqCodes struct {
	next int
	now  func() time.Time
	err  error
}

func (g *seqCodes) Generate() (string, time.Time, error) {
	if g.err != nil {
		return "", time.Time{}, g.err
	}
	g.next++
	return fmt.Sprintf("%06d", 482900+g.next), g.now().Add(10 * time.Minute), nil
}

type recordingMailer struct {
	mu     sync.Mutex
	sent   []mailer.Message
	err    error
	onSend func(mailer.Message)
}

func (r *recordingMailer) Send(_ context.Context, msg mailer.Message) error {
	if r.onSend != nil {
		r.onSend(msg)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, msg)
	return nil
}

func (r *recordingMailer) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sent)
}

// brokenBearerIssuer signs reset tokens normally but cannot sign bearer tokens.
type brokenBearerIssuer struct {
	*tokens.Issuer
}

func (brokenBearerIssuer) IssueBearerToken(string, models.Role) (string, error) {
	return "", errors.New("signing key unavailable")
}

type authFixture struct {
	svc    *AuthService
	users  *memUsers
	mail   *recordingMailer
	clock  *testClock
	issuer *tokens.Issuer
}

func newAuthFixture() *authFixture {
	clock := newTestClock()
	users := newMemUsers(clock.Now)
	mail := &recordingMailer{}
	issuer := tokens.NewIssuer("bearer-secret", "reset-secret").WithClock(clock.Now)
	svc := NewAuthService(users, issuer, &seqCodes{now: clock.Now}, mail, "https://neocodez.dev").WithClock(clock.Now)

	return &authFixture{svc: svc, users: users, mail: mail, clock: clock, issuer: issuer}
}
