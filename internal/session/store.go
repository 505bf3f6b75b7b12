package session

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/models"
)

// Store keeps live sessions in memory and issues the tokens that reference them.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
}

type Option func(*Store)

// WithClock overrides time.Now, for tests
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(secret string, ttl time.Duration, opts ...Option) *Store {
	s := &Store{
		sessions: make(map[string]*Session),
		secret:   []byte(secret),
		ttl:      ttl,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login is the stub authenticator: any non-empty login id and password succeed.
// It creates the session and returns a signed token for it.
func (s *Store) Login(loginID, password, name string) (*Session, string, error) {
	loginID = strings.TrimSpace(loginID)
	if loginID == "" || strings.TrimSpace(password) == "" {
		return nil, "", ErrInvalidCredentials
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = loginID
	}

	now := s.now()
	s.pruneExpired(now)

	sess := newSession(models.User{Name: name, LoginID: loginID, IsAuthenticated: true}, now, s.ttl)
	token, err := s.sign(sess)
	if err != nil {
		return nil, "", err
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess, token, nil
}

func (s *Store) sign(sess *Session) (string, error) {
	claims := jwt.MapClaims{
		"session_id": sess.ID,
		"login_id":   sess.User.LoginID,
		"name":       sess.User.Name,
		"iat":        sess.CreatedAt.Unix(),
		"exp":        sess.ExpiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Authenticate verifies a token and returns the live session it references
func (s *Store) Authenticate(tokenString string) (*Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	id, _ := claims["session_id"].(string)
	if id == "" {
		return nil, ErrInvalidToken
	}
	return s.Get(id)
}

// Get returns a live session
func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok || !s.now().Before(sess.ExpiresAt) {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Logout tears the session down: its cart, requests and open selection are discarded
func (s *Store) Logout(id string) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	sess.teardown()
	return nil
}

// Len returns the number of stored sessions
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Store) pruneExpired(now time.Time) {
	s.mu.Lock()
	var expired []*Session
	for id, sess := range s.sessions {
		if !now.Before(sess.ExpiresAt) {
			expired = append(expired, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range expired {
		sess.teardown()
	}
}
