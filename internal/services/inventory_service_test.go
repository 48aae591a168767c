package services

import (
	"testing"

	apierrors "github.com/borsibaar/barpos/internal/errors"
	"github.com/borsibaar/barpos/internal/models"
	"github.com/borsibaar/barpos/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type inventoryServiceSuite struct {
	serviceSuite
	service *InventoryService
}

func TestInventoryService(t *testing.T) {
	suite.Run(t, new(inventoryServiceSuite))
}

func (s *inventoryServiceSuite) SetupTest() {
	s.serviceSuite.SetupTest()
	s.service = NewInventoryService(s.repos)
}

func (s *inventoryServiceSuite) TestStockMovementsAreRecorded() {
	product := testutil.CreateProduct(s.T(), s.db, s.org, "Lager", false, "3.00", 0)

	updated, err := s.service.AddStock(s.ctx, s.admin, StockChangeInput{ProductID: product.ID, Quantity: dec("24"), Notes: "delivery"})
	s.Require().NoError(err)
	requireDecimal(s.T(), "24", updated.Inventory.Quantity)

	updated, err = s.service.RemoveStock(s.ctx, s.admin, StockChangeInput{ProductID: product.ID, Quantity: dec("2"), ReferenceID: "BRK-1"})
	s.Require().NoError(err)
	requireDecimal(s.T(), "22", updated.Inventory.Quantity)

	updated, err = s.service.AdjustStock(s.ctx, s.admin, StockChangeInput{ProductID: product.ID, Quantity: dec("20"), Notes: "stocktake"})
	s.Require().NoError(err)
	requireDecimal(s.T(), "20", updated.Inventory.Quantity)

	txns, err := s.service.ListTransactions(s.ctx, s.admin, product.ID)
	s.Require().NoError(err)
	s.Require().Len(txns, 3)

	s.Require().Equal(models.InventoryAdjustment, txns[0].Type)
	requireDecimal(s.T(), "-2", txns[0].QuantityChange)
	requireDecimal(s.T(), "22", txns[0].QuantityBefore)
	requireDecimal(s.T(), "20", txns[0].QuantityAfter)

	s.Require().Equal(models.InventoryRemoval, txns[1].Type)
	s.Require().Equal("BRK-1", txns[1].ReferenceID)

	s.Require().Equal(models.InventoryPurchase, txns[2].Type)
	s.Require().Equal(s.admin.ID, txns[2].CreatedBy)
}

func (s *inventoryServiceSuite) TestRemoveMoreThanStocked() {
	product := testutil.CreateProduct(s.T(), s.db, s.org, "Cider", false, "4.00", 1)

	_, err := s.service.RemoveStock(s.ctx, s.admin, StockChangeInput{ProductID: product.ID, Quantity: dec("2")})
	s.Require().ErrorIs(err, ErrInsufficientStock)

	txns, err := s.service.ListTransactions(s.ctx, s.admin, product.ID)
	s.Require().NoError(err)
	s.Require().Empty(txns)
}

func (s *inventoryServiceSuite) TestOtherOrganizationProduct() {
	other := testutil.CreateOrganization(s.T(), s.db, "Other")
	foreign := testutil.CreateProduct(s.T(), s.db, other, "Foreign", false, "4.00", 1)

	_, err := s.service.AddStock(s.ctx, s.admin, StockChangeInput{ProductID: foreign.ID, Quantity: dec("1")})
	s.requireKind(apierrors.KindNotFound, err)

	_, err = s.service.ListTransactions(s.ctx, s.admin, foreign.ID)
	s.requireKind(apierrors.KindNotFound, err)
}
