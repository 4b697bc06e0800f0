package auth

import (
	"time"

	"prestadores/config"
	"prestadores/internal/domain/entity"
	domainerrors "prestadores/internal/domain/errors"
	"prestadores/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// DefaultTokenTTL is the validity window of issued tokens.
const DefaultTokenTTL = 7 * 24 * time.Hour

// tokenClaims is the wire form of entity.TokenClaims.
type tokenClaims struct {
	Email string `json:"email"`
	Name  string `json:"nome"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It refuses to build without a secret; there is no fallback key.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg == nil || cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return newJWTService(cfg.JWT.Secret, cfg.JWT.TTL, time.Now), nil
}

func newJWTService(secret string, ttl time.Duration, now func() time.Time) *jwtService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	return &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    now,
	}
}

// Issue signs an HS256 token for the user that expires exactly ttl after issuance.
func (s *jwtService) Issue(user *entity.User) (string, time.Time, error) {
	if user == nil || user.ID == uuid.Nil {
		return "", time.Time{}, errors.New("cannot issue token without a user id")
	}

	issuedAt := s.now().Truncate(time.Second)
	expiresAt := issuedAt.Add(s.ttl)

	claims := tokenClaims{
		Email: user.Email,
		Name:  user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign token")
	}

	return signed, expiresAt, nil
}

// Verify parses the token, checking algorithm, signature and expiry.
// The cause is kept in the chain for logging; callers only see ErrTokenInvalid.
func (s *jwtService) Verify(tokenString string) (*entity.TokenClaims, error) {
	claims := &tokenClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, err.Error())
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "subject is not a valid user id")
	}

	out := &entity.TokenClaims{
		UserID: userID,
		Email:  claims.Email,
		Name:   claims.Name,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}

	return out, nil
}

// TTL returns the configured token lifetime.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}
