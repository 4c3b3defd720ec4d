package application

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SeedUser is a credential provisioned at startup. Accounts are fixed
// for the lifetime of the process; there is no self-registration.
type SeedUser struct {
	Username string
	Password string
	Roles    []string
}

type seededAccount struct {
	principal    Principal
	passwordHash string
}

// AuthService owns login sessions. Credentials are seeded at
// construction and held as argon2id hashes only.
type AuthService struct {
	accounts map[string]seededAccount

	mu       sync.Mutex
	sessions map[string]Session

	tokenGenerator func() string
	now            func() time.Time
	sessionTTL     time.Duration
	logger         *slog.Logger
}

// NewAuthService hashes each seed user's password and prepares an empty
// session table. It fails if any password cannot be hashed.
func NewAuthService(seeds []SeedUser, sessionTTL time.Duration, logger *slog.Logger) (*AuthService, error) {
	accounts := make(map[string]seededAccount, len(seeds))
	for _, seed := range seeds {
		hash, err := CreatePasswordHash(seed.Password, DefaultArgon2idParams)
		if err != nil {
			return nil, fmt.Errorf("hash password for %q: %w", seed.Username, err)
		}
		roles := append([]string(nil), seed.Roles...)
		accounts[seed.Username] = seededAccount{
			principal:    Principal{Username: seed.Username, Roles: roles},
			passwordHash: hash,
		}
	}
	return &AuthService{
		accounts:       accounts,
		sessions:       make(map[string]Session),
		tokenGenerator: uuid.NewString,
		now:            time.Now,
		sessionTTL:     sessionTTL,
		logger:         defaultLogger(logger),
	}, nil
}

// WithClock overrides the time source. Intended for tests.
func (s *AuthService) WithClock(now func() time.Time) *AuthService {
	s.now = now
	return s
}

// WithTokenGenerator overrides token generation. Intended for tests.
func (s *AuthService) WithTokenGenerator(gen func() string) *AuthService {
	s.tokenGenerator = gen
	return s
}

// Login verifies the credentials and opens a new session.
func (s *AuthService) Login(ctx context.Context, username, password string) (session Session, err error) {
	logger := serviceLogger(ctx, s.logger, "AuthService", "Login")
	defer func() {
		if err != nil {
			logger.Error("login failed", slog.String("username", username), slog.String("error_kind", ErrorKind(err)))
			return
		}
		logger.Info("login succeeded", slog.String("username", username))
	}()

	account, ok := s.accounts[username]
	if !ok {
		// Burn a comparison so unknown users cost the same as bad passwords.
		_ = VerifyPassword(unknownUserHash, password)
		return Session{}, ErrInvalidCredentials
	}
	if err := VerifyPassword(account.passwordHash, password); err != nil {
		return Session{}, err
	}

	session = Session{
		Token:     s.tokenGenerator(),
		ExpiresAt: s.now().Add(s.sessionTTL),
		Principal: account.principal,
	}

	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()

	return session, nil
}

// Logout discards the session. Unknown tokens are not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	logger := serviceLogger(ctx, s.logger, "AuthService", "Logout")

	s.mu.Lock()
	_, existed := s.sessions[token]
	delete(s.sessions, token)
	s.mu.Unlock()

	logger.Info("logout", slog.Bool("session_existed", existed))
	return nil
}

// ValidateSession resolves a token to its principal. Expired sessions
// are removed and reported as ErrSessionExpired.
func (s *AuthService) ValidateSession(ctx context.Context, token string) (Principal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return Principal{}, ErrUnauthorized
	}
	if s.now().After(session.ExpiresAt) {
		delete(s.sessions, token)
		return Principal{}, ErrSessionExpired
	}
	return session.Principal, nil
}

// unknownUserHash is a throwaway hash used to equalize timing when the
// username does not exist.
var unknownUserHash = func() string {
	hash, err := CreatePasswordHash(uuid.NewString(), DefaultArgon2idParams)
	if err != nil {
		panic(err)
	}
	return hash
}()
