package model

import (
	"time"

	"github.com/google/uuid"
)

// ProviderModel mirrors the 'providers' table. UserID is unique: one profile per user.
type ProviderModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID         uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Description    string    `gorm:"type:text;not null;default:''"`
	Available      bool      `gorm:"not null;default:true"`
	Emergency24h   bool      `gorm:"column:emergency_24h;not null;default:false"`
	Address        *string   `gorm:"type:text"`
	BusinessHours  *string   `gorm:"type:varchar(255)"`
	BasePrice      *string   `gorm:"type:varchar(64)"`
	Experience     *string   `gorm:"type:text"`
	Certifications *string   `gorm:"type:text"`
	PhotoURL       *string   `gorm:"column:photo_url;type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	User     *UserModel      `gorm:"foreignKey:UserID"`
	Services []*ServiceModel `gorm:"foreignKey:ProviderID"`
}

// TableName explicitly sets the table name for GORM.
func (ProviderModel) TableName() string {
	return "providers"
}

// ServiceModel mirrors the 'services' table.
type ServiceModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProviderID  uuid.UUID `gorm:"type:uuid;index;not null"`
	CategoryID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description *string   `gorm:"type:text"`
	Price       *string   `gorm:"type:varchar(64)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (ServiceModel) TableName() string {
	return "services"
}

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
