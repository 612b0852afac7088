// Package auth issues and verifies user credentials. It is a collaborator
// of the news core: the verified Claims it produces are the identity input
// for preference resolution.
package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"newshub/internal/domain"
	"newshub/internal/storage/memory"
)

var (
	// ErrInvalidCredentials — unknown email or wrong password. Deliberately
	// one error for both so responses don't reveal which part failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken — missing, tampered, or expired token.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Claims are the verified identity attributes attached to a request after
// token verification. Preferences travel inside the token, so the news path
// reads them without a user-store lookup.
type Claims struct {
	jwt.RegisteredClaims
	Email       string            `json:"email"`
	Preferences domain.Preference `json:"preferences"`
}

type Service struct {
	users    *memory.Users
	secret   []byte
	tokenTTL time.Duration
	logger   *slog.Logger
}

func NewService(users *memory.Users, secret string, tokenTTL time.Duration, logger *slog.Logger) *Service {
	return &Service{
		users:    users,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

// Register creates an account with a bcrypt-hashed password. Returns
// memory.ErrEmailTaken when the email is already registered.
func (s *Service) Register(fullName, email, password string, prefs domain.Preference) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           uuid.NewString(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		Preferences:  prefs,
		CreatedAt:    time.Now(),
	}

	if err := s.users.Create(user); err != nil {
		return domain.User{}, err
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Login verifies credentials and mints an HS256 token carrying the user's
// id, email, and preference union.
func (s *Service) Login(email, password string) (string, error) {
	user, err := s.users.ByEmail(email)
	if err != nil {
		if errors.Is(err, memory.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
		Email:       user.Email,
		Preferences: user.Preferences,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken parses and validates a token string and returns its claims.
func (s *Service) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Preferences returns the stored preference union for a user.
func (s *Service) Preferences(userID string) (domain.Preference, error) {
	user, err := s.users.ByID(userID)
	if err != nil {
		return domain.Preference{}, err
	}
	return user.Preferences, nil
}

// UpdatePreferences replaces the stored preference union. Tokens minted
// before the update keep the old claim until they are reissued.
func (s *Service) UpdatePreferences(userID string, prefs domain.Preference) (domain.Preference, error) {
	user, err := s.users.UpdatePreferences(userID, prefs)
	if err != nil {
		return domain.Preference{}, err
	}
	return user.Preferences, nil
}
