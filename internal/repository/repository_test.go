package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/borsibaar/barpos/internal/models"
	"github.com/borsibaar/barpos/internal/testutil"
	"github.com/borsibaar/barpos/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRepositories_TransactionRollsBack(t *testing.T) {
	db := testutil.NewDB(t)
	repos := NewRepositories(db)
	ctx := context.Background()

	boom := errors.New("boom")
	err := repos.Transaction(ctx, func(tx *Repositories) error {
		if err := tx.Organizations.Create(ctx, &models.Organization{Name: "Ghost"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	orgs, err := repos.Organizations.List(ctx)
	require.NoError(t, err)
	require.Empty(t, orgs)
}

func TestBarStationRepository_Assignments(t *testing.T) {
	db := testutil.NewDB(t)
	repos := NewRepositories(db)
	ctx := context.Background()

	org := testutil.CreateOrganization(t, db, "Bar")
	alice := testutil.CreateMember(t, db, org, "alice@example.com", models.RoleUser)
	bob := testutil.CreateMember(t, db, org, "bob@example.com", models.RoleUser)

	station := &models.BarStation{
		OrganizationID: org.ID,
		Name:           "Main",
		IsActive:       true,
		Users:          []models.User{*alice},
	}
	require.NoError(t, repos.BarStations.Create(ctx, station))

	assigned, err := repos.BarStations.IsUserAssigned(ctx, station.ID, alice.ID)
	require.NoError(t, err)
	require.True(t, assigned)

	assigned, err = repos.BarStations.IsUserAssigned(ctx, station.ID, bob.ID)
	require.NoError(t, err)
	require.False(t, assigned)

	station.Name = "Terrace"
	require.NoError(t, repos.BarStations.Update(ctx, station, []models.User{*bob}))

	found, err := repos.BarStations.FindByID(ctx, org.ID, station.ID)
	require.NoError(t, err)
	require.Equal(t, "Terrace", found.Name)
	require.Len(t, found.Users, 1)
	require.Equal(t, bob.ID, found.Users[0].ID)

	mine, err := repos.BarStations.ListByUser(ctx, org.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	mine, err = repos.BarStations.ListByUser(ctx, org.ID, alice.ID)
	require.NoError(t, err)
	require.Empty(t, mine)

	other := testutil.CreateOrganization(t, db, "Other")
	_, err = repos.BarStations.FindByID(ctx, other.ID, station.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.ErrorIs(t, repos.BarStations.Delete(ctx, other.ID, station.ID), gorm.ErrRecordNotFound)

	require.NoError(t, repos.BarStations.Delete(ctx, org.ID, station.ID))
	assigned, err = repos.BarStations.IsUserAssigned(ctx, station.ID, bob.ID)
	require.NoError(t, err)
	require.False(t, assigned)
}

func TestCategoryRepository_UniqueNamePerOrganization(t *testing.T) {
	db := testutil.NewDB(t)
	repos := NewRepositories(db)
	ctx := context.Background()

	org := testutil.CreateOrganization(t, db, "Bar")
	other := testutil.CreateOrganization(t, db, "Other")

	require.NoError(t, repos.Categories.Create(ctx, &models.Category{OrganizationID: org.ID, Name: "Beer"}))
	require.NoError(t, repos.Categories.Create(ctx, &models.Category{OrganizationID: other.ID, Name: "Beer"}))

	err := repos.Categories.Create(ctx, &models.Category{OrganizationID: org.ID, Name: "Beer"})
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestProductRepository_CreateAndDelete(t *testing.T) {
	db := testutil.NewDB(t)
	repos := NewRepositories(db)
	ctx := context.Background()

	org := testutil.CreateOrganization(t, db, "Bar")
	category := &models.Category{OrganizationID: org.ID, Name: "Cider", DynamicPricing: true}
	require.NoError(t, repos.Categories.Create(ctx, category))

	product := &models.Product{
		OrganizationID: org.ID,
		CategoryID:     category.ID,
		Name:           "Apple",
		BasePrice:      decimal.RequireFromString("4.00"),
		CurrentPrice:   decimal.RequireFromString("4.00"),
		IsActive:       true,
	}
	require.NoError(t, repos.Products.Create(ctx, product))
	require.NotNil(t, product.Inventory)

	found, err := repos.Products.FindByID(ctx, org.ID, product.ID)
	require.NoError(t, err)
	require.Equal(t, "Cider", found.Category.Name)
	require.NotNil(t, found.Inventory)
	require.True(t, found.Inventory.Quantity.IsZero())

	dynamic, err := repos.Products.ListDynamicPriced(ctx, org.ID)
	require.NoError(t, err)
	require.Len(t, dynamic, 1)

	count, err := repos.Categories.CountProducts(ctx, category.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	require.NoError(t, repos.Products.UpdateCurrentPrice(ctx, product.ID, decimal.RequireFromString("4.50")))
	found, err = repos.Products.FindByID(ctx, org.ID, product.ID)
	require.NoError(t, err)
	require.True(t, found.CurrentPrice.Equal(decimal.RequireFromString("4.50")))

	require.NoError(t, repos.Products.Delete(ctx, org.ID, product.ID))
	_, err = repos.Inventory.FindByProduct(ctx, org.ID, product.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSaleRepository_ListFiltersAndPaginates(t *testing.T) {
	db := testutil.NewDB(t)
	repos := NewRepositories(db)
	ctx := context.Background()

	org := testutil.CreateOrganization(t, db, "Bar")
	alice := testutil.CreateMember(t, db, org, "alice@example.com", models.RoleUser)
	bob := testutil.CreateMember(t, db, org, "bob@example.com", models.RoleUser)
	product := testutil.CreateProduct(t, db, org, "Lager", false, "3.00", 10)

	station := &models.BarStation{OrganizationID: org.ID, Name: "Main", IsActive: true}
	require.NoError(t, repos.BarStations.Create(ctx, station))

	for i, seller := range []*models.User{alice, alice, bob} {
		sale := &models.Sale{
			OrganizationID: org.ID,
			BarStationID:   station.ID,
			UserID:         seller.ID,
			TotalAmount:    decimal.NewFromInt(int64(3 * (i + 1))),
			Items: []models.SaleItem{{
				ProductID:  product.ID,
				Quantity:   decimal.NewFromInt(int64(i + 1)),
				UnitPrice:  decimal.NewFromInt(3),
				TotalPrice: decimal.NewFromInt(int64(3 * (i + 1))),
			}},
		}
		require.NoError(t, repos.Sales.Create(ctx, sale))
	}

	sales, total, err := repos.Sales.List(ctx, SaleFilter{OrganizationID: org.ID})
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
	require.Len(t, sales, 3)

	sales, total, err = repos.Sales.List(ctx, SaleFilter{
		OrganizationID: org.ID,
		UserID:         &alice.ID,
		Pagination:     utils.PaginationParams{Page: 1, Limit: 1, Offset: 0},
	})
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, sales, 1)
	require.Len(t, sales[0].Items, 1)

	found, err := repos.Sales.FindByID(ctx, org.ID, sales[0].ID)
	require.NoError(t, err)
	require.Equal(t, "Lager", found.Items[0].Product.Name)

	sold, err := repos.Products.CountSaleItems(ctx, product.ID)
	require.NoError(t, err)
	require.EqualValues(t, 3, sold)
}
