package postgres

import (
	"context"

	"prestadores/internal/domain/entity"
	domainerrors "prestadores/internal/domain/errors"
	"prestadores/internal/domain/repository"
	"prestadores/internal/errors"
	"prestadores/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by ID, with the provider profile when one exists.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	err := repo.db.WithContext(ctx).
		Preload("Provider").
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		return nil, mapFindError(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by exact email.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error
	if err != nil {
		return nil, mapFindError(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create inserts the user row only; the provider profile goes through ProviderRepository.
// The generated ID and timestamps are copied back onto user.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Omit("Provider").Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isTimeout(err) {
			return errors.Wrap(domainerrors.ErrServiceUnavailable.WithDetails(err.Error()), "create user timed out")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

func mapFindError(err error, details string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrUserNotFound
	}
	if isTimeout(err) {
		return errors.Wrap(domainerrors.ErrServiceUnavailable.WithDetails(err.Error()), details)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Phone:        data.Phone,
		CPF:          data.CPF,
		Provider:     toProviderDomain(data.Provider),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Phone:        data.Phone,
		CPF:          data.CPF,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
