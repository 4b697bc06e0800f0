package postgres

import (
	"context"
	"strings"

	"prestadores/internal/domain/entity"
	domainerrors "prestadores/internal/domain/errors"
	"prestadores/internal/domain/repository"
	"prestadores/internal/errors"
	"prestadores/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// categoryMatchClause keeps providers with at least one service whose category name matches.
const categoryMatchClause = `EXISTS (
	SELECT 1 FROM services
	JOIN categories ON categories.id = services.category_id
	WHERE services.provider_id = providers.id AND categories.name ILIKE ? ESCAPE '\'
)`

// likeEscaper escapes LIKE metacharacters so user input is matched literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type providerRepository struct {
	db *gorm.DB
}

// NewProviderRepository is the constructor for providerRepository.
func NewProviderRepository(db *gorm.DB) repository.ProviderRepository {
	return &providerRepository{db: db}
}

// Create inserts a provider profile. Zero-valued columns with a database default
// (id, available, emergency_24h) take that default.
func (repo *providerRepository) Create(ctx context.Context, provider *entity.Provider) error {
	providerM := fromProviderDomain(provider)

	err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(providerM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProviderCreationFailed.WrapMessage("user already has a provider profile")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProviderCreationFailed.WrapMessage("provider owner does not exist")
		}
		if isTimeout(err) {
			return errors.Wrap(domainerrors.ErrServiceUnavailable.WithDetails(err.Error()), "create provider timed out")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create provider")
	}

	provider.ID = providerM.ID
	provider.CreatedAt = providerM.CreatedAt
	provider.UpdatedAt = providerM.UpdatedAt

	return nil
}

// ListAvailable returns available providers matching filter with owner and services preloaded.
func (repo *providerRepository) ListAvailable(ctx context.Context, filter entity.ProviderFilter) ([]*entity.Provider, error) {
	var providersM []*model.ProviderModel

	err := listAvailableQuery(repo.db.WithContext(ctx), filter).
		Preload("User").
		Preload("Services", func(db *gorm.DB) *gorm.DB {
			return db.Order("services.created_at ASC")
		}).
		Preload("Services.Category").
		Find(&providersM).Error
	if err != nil {
		if isTimeout(err) {
			return nil, errors.Wrap(domainerrors.ErrServiceUnavailable.WithDetails(err.Error()), "list providers timed out")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list providers")
	}

	providers := make([]*entity.Provider, 0, len(providersM))
	for _, providerM := range providersM {
		providers = append(providers, toProviderDomain(providerM))
	}

	return providers, nil
}

// listAvailableQuery builds the filtered and ordered provider query without preloads.
func listAvailableQuery(db *gorm.DB, filter entity.ProviderFilter) *gorm.DB {
	query := db.Model(&model.ProviderModel{}).
		Select("providers.*").
		Joins("JOIN users ON users.id = providers.user_id").
		Where("providers.available = ?", true)

	if filter.Emergency {
		query = query.Where("providers.emergency_24h = ?", true)
	}

	if category := strings.TrimSpace(filter.Category); category != "" {
		query = query.Where(categoryMatchClause, "%"+escapeLike(category)+"%")
	}

	if filter.Emergency {
		query = query.Order("providers.emergency_24h DESC")
	}

	return query.Order("users.name ASC").Order("providers.id ASC")
}

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// --- Mapper Functions ---

func toProviderDomain(data *model.ProviderModel) *entity.Provider {
	if data == nil {
		return nil
	}

	provider := &entity.Provider{
		ID:             data.ID,
		UserID:         data.UserID,
		Description:    data.Description,
		Available:      data.Available,
		Emergency24h:   data.Emergency24h,
		Address:        data.Address,
		BusinessHours:  data.BusinessHours,
		BasePrice:      data.BasePrice,
		Experience:     data.Experience,
		Certifications: data.Certifications,
		PhotoURL:       data.PhotoURL,
		Services:       make([]*entity.Service, 0, len(data.Services)),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}

	if data.User != nil {
		provider.Owner = &entity.ProviderOwner{
			ID:        data.User.ID,
			Name:      data.User.Name,
			Email:     data.User.Email,
			Phone:     data.User.Phone,
			CreatedAt: data.User.CreatedAt,
		}
	}

	for _, serviceM := range data.Services {
		provider.Services = append(provider.Services, toServiceDomain(serviceM))
	}

	return provider
}

func toServiceDomain(data *model.ServiceModel) *entity.Service {
	service := &entity.Service{
		ID:          data.ID,
		ProviderID:  data.ProviderID,
		CategoryID:  data.CategoryID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	if data.Category != nil {
		service.Category = &entity.Category{
			ID:        data.Category.ID,
			Name:      data.Category.Name,
			CreatedAt: data.Category.CreatedAt,
		}
	}

	return service
}

func fromProviderDomain(data *entity.Provider) *model.ProviderModel {
	return &model.ProviderModel{
		ID:             data.ID,
		UserID:         data.UserID,
		Description:    data.Description,
		Available:      data.Available,
		Emergency24h:   data.Emergency24h,
		Address:        data.Address,
		BusinessHours:  data.BusinessHours,
		BasePrice:      data.BasePrice,
		Experience:     data.Experience,
		Certifications: data.Certifications,
		PhotoURL:       data.PhotoURL,
	}
}
