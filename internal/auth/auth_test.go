package auth

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"newshub/internal/domain"
	"newshub/internal/storage/memory"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewService(memory.NewUsers(), "test-secret", time.Hour, logger)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestService(t)

	prefs := domain.CategoryList([]string{"technology", "science"})
	user, err := svc.Register("Ada Lovelace", "ada@example.com", "s3cret-pass", prefs)
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.NotEqual(t, "s3cret-pass", string(user.PasswordHash))

	token, err := svc.Login("ada@example.com", "s3cret-pass")
	require.NoError(t, err)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.Subject)
	require.Equal(t, "ada@example.com", claims.Email)
	require.Equal(t, prefs, claims.Preferences)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Register("Ada", "ada@example.com", "right", domain.Preference{})
	require.NoError(t, err)

	_, err = svc.Login("ada@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login("nobody@example.com", "whatever")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Register("Ada", "ada@example.com", "pass-one", domain.Preference{})
	require.NoError(t, err)

	_, err = svc.Register("Imposter", "ada@example.com", "pass-two", domain.Preference{})
	require.ErrorIs(t, err, memory.ErrEmailTaken)
}

func TestVerifyToken_Garbage(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.VerifyToken("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	svc := newTestService(t)
	other := NewService(memory.NewUsers(), "other-secret", time.Hour,
		slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError})))

	_, err := svc.Register("Ada", "ada@example.com", "s3cret", domain.Preference{})
	require.NoError(t, err)

	token, err := svc.Login("ada@example.com", "s3cret")
	require.NoError(t, err)

	_, err = other.VerifyToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_Expired(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	svc := NewService(memory.NewUsers(), "test-secret", -time.Minute, logger)

	_, err := svc.Register("Ada", "ada@example.com", "s3cret", domain.Preference{})
	require.NoError(t, err)

	token, err := svc.Login("ada@example.com", "s3cret")
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestUpdatePreferences(t *testing.T) {
	svc := newTestService(t)

	user, err := svc.Register("Ada", "ada@example.com", "s3cret", domain.CategoryList(nil))
	require.NoError(t, err)

	updated, err := svc.UpdatePreferences(user.ID, domain.SingleCategory("sports"))
	require.NoError(t, err)
	require.Equal(t, domain.SingleCategory("sports"), updated)

	stored, err := svc.Preferences(user.ID)
	require.NoError(t, err)
	require.Equal(t, domain.SingleCategory("sports"), stored)
}

func TestUpdatePreferences_UnknownUser(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.UpdatePreferences("nope", domain.SingleCategory("sports"))
	require.ErrorIs(t, err, memory.ErrUserNotFound)
}

func TestClaimsPreferenceRoundTrip(t *testing.T) {
	svc := newTestService(t)

	// Single-category shape must survive the token round trip as an object,
	// not get coerced into a list.
	user, err := svc.Register("Ada", "ada@example.com", "s3cret", domain.SingleCategory("business"))
	require.NoError(t, err)

	token, err := svc.Login("ada@example.com", "s3cret")
	require.NoError(t, err)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	require.Equal(t, domain.PreferenceSingle, claims.Preferences.Kind)
	require.Equal(t, "business", claims.Preferences.Category)
	require.Equal(t, user.ID, claims.Subject)
}
