package database

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"
)

// AddIndexes adds the composite indexes the listing queries rely on.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Sales are listed per organization, newest first, optionally per user
		{"sales", "idx_sales_org_created_at", "organization_id, created_at"},
		{"sales", "idx_sales_org_user", "organization_id, user_id"},

		// Inventory history per product
		{"inventory_transactions", "idx_inventory_tx_inventory_created_at", "inventory_id, created_at"},

		// Onboarding checks for an existing admin per organization
		{"users", "idx_users_org_role", "organization_id, role_id"},

		// Product listing by category
		{"products", "idx_products_org_category", "organization_id, category_id"},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.table, idx.name) {
			slog.Debug("index already exists, skipping", "index", idx.name)
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		slog.Info("created index", "index", idx.name, "table", idx.table, "columns", idx.columns)
	}

	return nil
}

// MigrateDatabase runs schema migration, index creation and reference data seeding.
func MigrateDatabase(db *gorm.DB) error {
	if err := Migrate(db); err != nil {
		return err
	}

	if err := AddIndexes(db); err != nil {
		return fmt.Errorf("failed to add indexes: %w", err)
	}

	if err := SeedRoles(db); err != nil {
		return fmt.Errorf("failed to seed roles: %w", err)
	}

	return nil
}
