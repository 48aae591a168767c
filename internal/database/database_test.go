package database

import (
	"testing"

	"github.com/borsibaar/barpos/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func TestMigrateDatabase_SeedsRolesIdempotently(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, MigrateDatabase(db))
	require.NoError(t, MigrateDatabase(db), "second run must not fail on existing indexes or roles")

	var roles []models.Role
	require.NoError(t, db.Order("name").Find(&roles).Error)
	require.Len(t, roles, 2)
	require.Equal(t, models.RoleAdmin, roles[0].Name)
	require.Equal(t, models.RoleUser, roles[1].Name)

	require.True(t, db.Migrator().HasIndex("sales", "idx_sales_org_created_at"))
}
