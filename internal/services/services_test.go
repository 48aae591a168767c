package services

import (
	"context"
	"testing"

	apierrors "github.com/borsibaar/barpos/internal/errors"
	"github.com/borsibaar/barpos/internal/models"
	"github.com/borsibaar/barpos/internal/repository"
	"github.com/borsibaar/barpos/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type serviceSuite struct {
	suite.Suite

	ctx   context.Context
	db    *gorm.DB
	repos *repository.Repositories
	org   *models.Organization
	admin *models.User
}

func (s *serviceSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = testutil.NewDB(s.T())
	s.repos = repository.NewRepositories(s.db)
	s.org = testutil.CreateOrganization(s.T(), s.db, "Pub")
	s.admin = testutil.CreateMember(s.T(), s.db, s.org, "admin@pub.test", models.RoleAdmin)
}

func (s *serviceSuite) requireKind(kind apierrors.Kind, err error) {
	s.T().Helper()
	s.Require().Error(err)
	s.Require().Equal(kind, apierrors.KindOf(err), "unexpected error: %v", err)
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, dec(want).Equal(got), "want %s, got %s", want, got)
}
