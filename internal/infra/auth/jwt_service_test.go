package auth

import (
	"strings"
	"testing"
	"time"

	"prestadores/config"
	"prestadores/internal/domain/entity"
	domainerrors "prestadores/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func newTestUser() *entity.User {
	return &entity.User{
		ID:    uuid.New(),
		Name:  "Ana",
		Email: "ana@x.com",
	}
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: testSecret, TTL: DefaultTokenTTL}}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	user := newTestUser()
	token, expiresAt, err := svc.Issue(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), expiresAt, 2*time.Second)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Name, claims.Name)
	assert.Equal(t, 7*24*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt))
}

func TestJWTService_ExpiryWindow(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := newJWTService(testSecret, DefaultTokenTTL, clock.Now)

	token, expiresAt, err := svc.Issue(newTestUser())
	require.NoError(t, err)
	assert.Equal(t, clock.now.Add(7*24*time.Hour), expiresAt)

	clock.now = expiresAt.Add(-time.Minute)
	_, err = svc.Verify(token)
	assert.NoError(t, err, "token must be accepted just before expiry")

	clock.now = expiresAt.Add(time.Minute)
	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	issuer := newJWTService(testSecret, DefaultTokenTTL, time.Now)
	verifier := newJWTService("another_secret_key_entirely_different", DefaultTokenTTL, time.Now)

	token, _, err := issuer.Issue(newTestUser())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_RejectsMalformedAndTampered(t *testing.T) {
	svc := newJWTService(testSecret, DefaultTokenTTL, time.Now)

	token, _, err := svc.Issue(newTestUser())
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	for _, bad := range []string{"", "clearly-not-a-jwt-token-format", tampered} {
		claims, err := svc.Verify(bad)
		assert.Nil(t, claims)
		assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid), "token %q", bad)
	}
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	svc := newJWTService(testSecret, DefaultTokenTTL, time.Now)

	claims := jwt.MapClaims{
		"sub": uuid.NewString(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(unsigned)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_RejectsMissingExpiryAndBadSubject(t *testing.T) {
	svc := newJWTService(testSecret, DefaultTokenTTL, time.Now)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": uuid.NewString(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Verify(noExp)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))

	badSub, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "42",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Verify(badSub)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_IssueWithoutUserID(t *testing.T) {
	svc := newJWTService(testSecret, DefaultTokenTTL, time.Now)

	_, _, err := svc.Issue(&entity.User{Email: "ana@x.com"})
	assert.Error(t, err)
}

func TestJWTService_TTL(t *testing.T) {
	svc := newJWTService(testSecret, 0, time.Now)
	assert.Equal(t, 7*24*time.Hour, svc.TTL())
}
