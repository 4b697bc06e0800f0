package postgres

import (
	"strings"
	"testing"

	"prestadores/internal/domain/entity"
	"prestadores/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=test dbname=test sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return db
}

func listSQL(db *gorm.DB, filter entity.ProviderFilter) string {
	return db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var out []*model.ProviderModel

		return listAvailableQuery(tx, filter).Find(&out)
	})
}

func TestListAvailableQuery_Base(t *testing.T) {
	sql := listSQL(newDryRunDB(t), entity.ProviderFilter{})

	assert.Contains(t, sql, "JOIN users ON users.id = providers.user_id")
	assert.Contains(t, sql, "providers.available = true")
	assert.NotContains(t, sql, "emergency_24h")
	assert.NotContains(t, sql, "ILIKE")
	assert.Contains(t, sql, "ORDER BY users.name ASC")
}

func TestListAvailableQuery_Emergency(t *testing.T) {
	sql := listSQL(newDryRunDB(t), entity.ProviderFilter{Emergency: true})

	assert.Contains(t, sql, "providers.available = true")
	assert.Contains(t, sql, "providers.emergency_24h = true")

	emergencyOrder := strings.Index(sql, "providers.emergency_24h DESC")
	nameOrder := strings.Index(sql, "users.name ASC")
	require.NotEqual(t, -1, emergencyOrder)
	require.NotEqual(t, -1, nameOrder)
	assert.Less(t, emergencyOrder, nameOrder, "24h providers sort before the owner name")
}

func TestListAvailableQuery_Category(t *testing.T) {
	tests := []struct {
		name     string
		category string
		want     string
	}{
		{name: "plain substring", category: "plumb", want: "'%plumb%'"},
		{name: "trimmed", category: "  Encanador ", want: "'%Encanador%'"},
		{name: "percent is literal", category: "50%", want: `'%50\%%'`},
		{name: "underscore is literal", category: "a_b", want: `'%a\_b%'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql := listSQL(newDryRunDB(t), entity.ProviderFilter{Category: tt.category})

			assert.Contains(t, sql, "JOIN categories ON categories.id = services.category_id")
			assert.Contains(t, sql, "services.provider_id = providers.id")
			assert.Contains(t, sql, "categories.name ILIKE "+tt.want)
		})
	}
}

func TestListAvailableQuery_BlankCategoryIgnored(t *testing.T) {
	sql := listSQL(newDryRunDB(t), entity.ProviderFilter{Category: "   "})

	assert.NotContains(t, sql, "EXISTS")
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "plumb", escapeLike("plumb"))
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\x`, escapeLike(`c:\x`))
}

func TestToProviderDomain(t *testing.T) {
	phone := "11999999999"
	price := "R$ 80"
	ownerID := uuid.New()
	categoryID := uuid.New()

	got := toProviderDomain(&model.ProviderModel{
		ID:           uuid.New(),
		UserID:       ownerID,
		Description:  "Encanador residencial",
		Available:    true,
		Emergency24h: true,
		User:         &model.UserModel{ID: ownerID, Name: "Ana", Email: "ana@x.com", Phone: &phone, PasswordHash: "digest"},
		Services: []*model.ServiceModel{{
			ID:         uuid.New(),
			CategoryID: categoryID,
			Name:       "Troca de sifão",
			Price:      &price,
			Category:   &model.CategoryModel{ID: categoryID, Name: "Encanador"},
		}},
	})

	require.NotNil(t, got.Owner)
	assert.Equal(t, "Ana", got.Owner.Name)
	assert.Equal(t, &phone, got.Owner.Phone)
	assert.True(t, got.Emergency24h)
	require.Len(t, got.Services, 1)
	assert.Equal(t, "Encanador", got.Services[0].Category.Name)
	assert.Equal(t, &price, got.Services[0].Price)
}

func TestToProviderDomain_NoServices(t *testing.T) {
	got := toProviderDomain(&model.ProviderModel{ID: uuid.New()})

	assert.NotNil(t, got.Services)
	assert.Empty(t, got.Services)
	assert.Nil(t, got.Owner)
	assert.Nil(t, toProviderDomain(nil))
}
