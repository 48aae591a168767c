package repository

import (
	"context"

	"github.com/borsibaar/barpos/internal/models"
	"github.com/borsibaar/barpos/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID with the role preloaded
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// FindByEmail finds a user by email with the role preloaded
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// Save persists the organization and role of a user
	Save(ctx context.Context, user *models.User) error

	// ExistsByOrganizationAndRole reports whether any user of the organization holds the role
	ExistsByOrganizationAndRole(ctx context.Context, organizationID, roleID uint64) (bool, error)

	// ListByOrganization lists all users of an organization
	ListByOrganization(ctx context.Context, organizationID uint64) ([]models.User, error)

	// FindByIDsInOrganization returns the users among ids that belong to the organization
	FindByIDsInOrganization(ctx context.Context, organizationID uint64, ids []uuid.UUID) ([]models.User, error)
}

// RoleRepository defines the interface for role reference data
type RoleRepository interface {
	// FindByName finds a role by its name
	FindByName(ctx context.Context, name models.RoleName) (*models.Role, error)
}

// OrganizationRepository defines the interface for organization data access
type OrganizationRepository interface {
	// Create creates a new organization
	Create(ctx context.Context, org *models.Organization) error

	// FindByID finds an organization by ID
	FindByID(ctx context.Context, id uint64) (*models.Organization, error)

	// FindByIDForUpdate finds an organization by ID and locks its row until the transaction ends
	FindByIDForUpdate(ctx context.Context, id uint64) (*models.Organization, error)

	// List lists all organizations ordered by name
	List(ctx context.Context) ([]models.Organization, error)

	// Update updates an organization
	Update(ctx context.Context, org *models.Organization) error
}

// BarStationRepository defines the interface for bar station data access
type BarStationRepository interface {
	// Create creates a station together with its user assignments
	Create(ctx context.Context, station *models.BarStation) error

	// FindByID finds a station of the organization with its users
	FindByID(ctx context.Context, organizationID, id uint64) (*models.BarStation, error)

	// ListByOrganization lists all stations of the organization
	ListByOrganization(ctx context.Context, organizationID uint64) ([]models.BarStation, error)

	// ListByUser lists the stations of the organization the user is assigned to
	ListByUser(ctx context.Context, organizationID uint64, userID uuid.UUID) ([]models.BarStation, error)

	// Update updates a station and replaces its user assignments
	Update(ctx context.Context, station *models.BarStation, users []models.User) error

	// Delete deletes a station of the organization and its assignments
	Delete(ctx context.Context, organizationID, id uint64) error

	// IsUserAssigned reports whether the user is assigned to the station
	IsUserAssigned(ctx context.Context, stationID uint64, userID uuid.UUID) (bool, error)
}

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	FindByID(ctx context.Context, organizationID, id uint64) (*models.Category, error)
	List(ctx context.Context, organizationID uint64) ([]models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, organizationID, id uint64) error

	// CountProducts counts the products that reference the category
	CountProducts(ctx context.Context, categoryID uint64) (int64, error)
}

// ProductFilter holds filtering options for listing products
type ProductFilter struct {
	OrganizationID uint64
	CategoryID     *uint64
	ActiveOnly     bool
}

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	// Create creates a product and its empty inventory row
	Create(ctx context.Context, product *models.Product) error

	// FindByID finds a product of the organization with category and inventory
	FindByID(ctx context.Context, organizationID, id uint64) (*models.Product, error)

	// FindByIDForUpdate finds a product of the organization and locks its row
	FindByIDForUpdate(ctx context.Context, organizationID, id uint64) (*models.Product, error)

	// List retrieves products with category and inventory
	List(ctx context.Context, filter ProductFilter) ([]models.Product, error)

	// ListDynamicPriced lists active products of the organization in dynamic pricing categories
	ListDynamicPriced(ctx context.Context, organizationID uint64) ([]models.Product, error)

	// Update updates a product
	Update(ctx context.Context, product *models.Product) error

	// UpdateCurrentPrice sets only the current price of a product
	UpdateCurrentPrice(ctx context.Context, id uint64, price decimal.Decimal) error

	// Delete deletes a product with its inventory and inventory history
	Delete(ctx context.Context, organizationID, id uint64) error

	// CountSaleItems counts the sale lines that reference the product
	CountSaleItems(ctx context.Context, productID uint64) (int64, error)
}

// InventoryRepository defines the interface for stock data access
type InventoryRepository interface {
	// FindByProductForUpdate finds the inventory row of a product and locks it
	FindByProductForUpdate(ctx context.Context, organizationID, productID uint64) (*models.Inventory, error)

	// FindByProduct finds the inventory row of a product
	FindByProduct(ctx context.Context, organizationID, productID uint64) (*models.Inventory, error)

	// UpdateQuantity sets the quantity of an inventory row
	UpdateQuantity(ctx context.Context, inventory *models.Inventory) error

	// CreateTransaction records an inventory change
	CreateTransaction(ctx context.Context, txn *models.InventoryTransaction) error

	// ListTransactions lists the history of an inventory row, newest first
	ListTransactions(ctx context.Context, inventoryID uint64) ([]models.InventoryTransaction, error)
}

// SaleFilter holds filtering options for listing sales
type SaleFilter struct {
	OrganizationID uint64
	UserID         *uuid.UUID
	Pagination     utils.PaginationParams
}

// SaleRepository defines the interface for sale data access
type SaleRepository interface {
	// Create creates a sale with its items
	Create(ctx context.Context, sale *models.Sale) error

	// FindByID finds a sale of the organization with items and products
	FindByID(ctx context.Context, organizationID, id uint64) (*models.Sale, error)

	// List retrieves sales newest first with the total count
	List(ctx context.Context, filter SaleFilter) ([]models.Sale, int64, error)
}

// Repositories bundles every repository over one database handle so that a
// service can run several of them inside a single transaction.
type Repositories struct {
	db *gorm.DB

	Users         UserRepository
	Roles         RoleRepository
	Organizations OrganizationRepository
	BarStations   BarStationRepository
	Categories    CategoryRepository
	Products      ProductRepository
	Inventory     InventoryRepository
	Sales         SaleRepository
}

// NewRepositories creates the GORM repositories backed by db.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:            db,
		Users:         NewUserRepository(db),
		Roles:         NewRoleRepository(db),
		Organizations: NewOrganizationRepository(db),
		BarStations:   NewBarStationRepository(db),
		Categories:    NewCategoryRepository(db),
		Products:      NewProductRepository(db),
		Inventory:     NewInventoryRepository(db),
		Sales:         NewSaleRepository(db),
	}
}

// Transaction runs fn with repositories bound to a single transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
func (r *Repositories) Transaction(ctx context.Context, fn func(tx *Repositories) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
