// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"testing"

	"github.com/borsibaar/barpos/internal/database"
	"github.com/borsibaar/barpos/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a migrated and seeded in-memory SQLite database.
// The pool is pinned to one connection so every query sees the same memory database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, database.MigrateDatabase(db))
	return db
}

// CreateOrganization inserts an organization with 0.10 price steps.
func CreateOrganization(t *testing.T, db *gorm.DB, name string) *models.Organization {
	t.Helper()

	org := &models.Organization{
		Name:              name,
		PriceIncreaseStep: decimal.RequireFromString("0.10"),
		PriceDecreaseStep: decimal.RequireFromString("0.10"),
	}
	require.NoError(t, db.Create(org).Error)
	return org
}

// CreateUser inserts a user that has not onboarded yet.
func CreateUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email:        email,
		Name:         email,
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateMember inserts a user already belonging to org with the given role.
func CreateMember(t *testing.T, db *gorm.DB, org *models.Organization, email string, role models.RoleName) *models.User {
	t.Helper()

	var r models.Role
	require.NoError(t, db.Where("name = ?", role).First(&r).Error)

	user := &models.User{
		Email:          email,
		Name:           email,
		PasswordHash:   "x",
		OrganizationID: &org.ID,
		RoleID:         &r.ID,
		Role:           &r,
	}
	require.NoError(t, db.Omit("Role").Create(user).Error)
	return user
}

// CreateProduct inserts a category and a product in it with the given stock.
func CreateProduct(t *testing.T, db *gorm.DB, org *models.Organization, name string, dynamic bool, price string, stock int64) *models.Product {
	t.Helper()

	category := &models.Category{OrganizationID: org.ID, Name: name + " category", DynamicPricing: dynamic}
	require.NoError(t, db.Create(category).Error)

	p := decimal.RequireFromString(price)
	product := &models.Product{
		OrganizationID: org.ID,
		CategoryID:     category.ID,
		Name:           name,
		BasePrice:      p,
		CurrentPrice:   p,
		IsActive:       true,
	}
	require.NoError(t, db.Omit("Category", "Inventory").Create(product).Error)

	inventory := &models.Inventory{
		OrganizationID: org.ID,
		ProductID:      product.ID,
		Quantity:       decimal.NewFromInt(stock),
	}
	require.NoError(t, db.Create(inventory).Error)
	product.Category = *category
	product.Inventory = inventory
	return product
}
