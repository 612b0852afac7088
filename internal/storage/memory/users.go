package memory

import (
	"errors"
	"strings"
	"sync"

	"newshub/internal/domain"
)

var (
	// ErrUserNotFound — no account with that id/email.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken — an account already exists for the email.
	ErrEmailTaken = errors.New("email already registered")
)

// Users is the in-memory account store. Emails are matched
// case-insensitively.
type Users struct {
	mu      sync.Mutex
	byID    map[string]domain.User
	byEmail map[string]string
}

func NewUsers() *Users {
	return &Users{
		byID:    make(map[string]domain.User),
		byEmail: make(map[string]string),
	}
}

func (u *Users) Create(user domain.User) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	email := normalizeEmail(user.Email)
	if _, exists := u.byEmail[email]; exists {
		return ErrEmailTaken
	}

	u.byID[user.ID] = user
	u.byEmail[email] = user.ID
	return nil
}

func (u *Users) ByEmail(email string) (domain.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	id, ok := u.byEmail[normalizeEmail(email)]
	if !ok {
		return domain.User{}, ErrUserNotFound
	}
	return u.byID[id], nil
}

func (u *Users) ByID(id string) (domain.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	user, ok := u.byID[id]
	if !ok {
		return domain.User{}, ErrUserNotFound
	}
	return user, nil
}

// UpdatePreferences replaces the user's preference union and returns the
// updated record.
func (u *Users) UpdatePreferences(id string, pref domain.Preference) (domain.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	user, ok := u.byID[id]
	if !ok {
		return domain.User{}, ErrUserNotFound
	}

	user.Preferences = pref
	u.byID[id] = user
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
