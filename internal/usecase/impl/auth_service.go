// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	deliverycontext "prestadores/internal/delivery/context"
	"prestadores/internal/domain/entity"
	domainerrors "prestadores/internal/domain/errors"
	"prestadores/internal/domain/repository"
	"prestadores/internal/domain/service"
	"prestadores/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// timingPassword is hashed once so logins for unknown emails cost one bcrypt compare.
const timingPassword = "prestadores-timing-equalizer"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger

	timingDigest func() string
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	srv := &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
	srv.timingDigest = sync.OnceValue(func() string {
		digest, err := srv.hasher.Hash(timingPassword)
		if err != nil {
			return ""
		}

		return digest
	})

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register hashes the password, then creates the user and the optional provider
// profile in one transaction.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	wantsProvider := input.WantsProviderProfile()
	srv.log(ctx).Info("Starting registration", slog.Bool("provider", wantsProvider))

	digest, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	newUser := buildUserEntity(input, digest)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, findErr := userRepo.FindByEmail(ctx, newUser.Email)
		if findErr == nil {
			return domainerrors.ErrUserAlreadyExists
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check email availability")
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		if !wantsProvider {
			return nil
		}

		provider := buildProviderEntity(input, newUser)
		if err := repoFactory.ProviderRepo().Create(ctx, provider); err != nil {
			return errors.Wrap(err, "failed to create provider profile")
		}
		newUser.Provider = provider

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			srv.log(ctx).Info("Registration rejected: email in use")

			return nil, err
		}

		srv.log(ctx).Error("Failed to execute registration transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Info("Registration completed", slog.String("userID", newUser.ID.String()), slog.Bool("provider", newUser.IsProvider()))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login checks the credentials and issues an access token. Unknown email and wrong
// password return the same error.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.hasher.Check(input.Password, srv.timingDigest())
		srv.log(ctx).Info("Login rejected")

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login rejected")

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, expiresAt, err := srv.tokenService.Issue(user)
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.String("userID", user.ID.String()), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	srv.log(ctx).Info("Login succeeded", slog.String("userID", user.ID.String()))

	return &usecase.LoginOutput{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}

// Authenticate resolves a bearer token to a live user.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	if strings.TrimSpace(token) == "" {
		return nil, domainerrors.ErrTokenMissing
	}

	claims, err := srv.tokenService.Verify(token)
	if err != nil {
		srv.log(ctx).Debug("Token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrTokenInvalid
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Info("Token subject no longer exists", slog.String("userID", claims.UserID.String()))

		return nil, domainerrors.ErrTokenSubjectNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load token subject")
	}

	return user, nil
}

func buildUserEntity(input *usecase.RegisterInput, digest string) *entity.User {
	return &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: digest,
		Phone:        optionalString(input.Phone),
		CPF:          optionalString(input.CPF),
	}
}

func buildProviderEntity(input *usecase.RegisterInput, owner *entity.User) *entity.Provider {
	return &entity.Provider{
		UserID:         owner.ID,
		Description:    input.Description,
		Available:      true,
		Emergency24h:   input.Emergency24h,
		Address:        optionalString(input.Address),
		BusinessHours:  optionalString(input.BusinessHours),
		BasePrice:      optionalString(input.BasePrice),
		Experience:     optionalString(input.Experience),
		Certifications: optionalString(input.Certifications),
	}
}

// optionalString maps an empty input to NULL.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
