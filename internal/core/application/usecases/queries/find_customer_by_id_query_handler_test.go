package queries_test

import (
	"context"
	"testing"

	"rental/internal/adapters/out/inmem"
	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/model/customer"
	"rental/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type FindCustomerByIDQueryHandlerTestSuite struct {
	suite.Suite
	store   *inmem.Store
	handler queries.FindCustomerByIDQueryHandler
}

func (suite *FindCustomerByIDQueryHandlerTestSuite) SetupTest() {
	suite.store = inmem.NewStore()
	suite.handler = queries.NewFindCustomerByIDQueryHandler(suite.store)
}

func (suite *FindCustomerByIDQueryHandlerTestSuite) TestHandle_ExistingCustomer_ReturnsCustomer() {
	c := suite.saveTestCustomer(1, "Alice", "Johnson", "alice@example.com", "555-0101")
	suite.saveTestCustomer(2, "Bob", "Smith", "bob@example.com", "555-0102")

	query, err := queries.NewFindCustomerByIDQuery(c.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(c.ID(), result.ID)
	suite.Equal("Alice", result.FirstName)
	suite.Equal("Johnson", result.LastName)
	suite.Equal("alice@example.com", result.Email)
	suite.Equal("555-0101", result.Phone)
}

func (suite *FindCustomerByIDQueryHandlerTestSuite) TestHandle_NonExistentCustomer_ReturnsNotFoundError() {
	suite.saveTestCustomer(1, "Alice", "Johnson", "alice@example.com", "555-0101")

	query, err := queries.NewFindCustomerByIDQuery(mustID(suite.T(), 999))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
	suite.Contains(err.Error(), "object not found: 999")
	suite.Equal(queries.CustomerResponse{}, result)
}

func (suite *FindCustomerByIDQueryHandlerTestSuite) TestHandle_EmptyStore_ReturnsNotFoundError() {
	query, err := queries.NewFindCustomerByIDQuery(mustID(suite.T(), 1))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
	suite.Equal(queries.CustomerResponse{}, result)
}

func (suite *FindCustomerByIDQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.FindCustomerByIDQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewFindCustomerByIDQuery constructor")
	suite.Equal(queries.CustomerResponse{}, result)
}

func (suite *FindCustomerByIDQueryHandlerTestSuite) saveTestCustomer(id int64, firstName, lastName, email, phone string) *customer.Customer {
	c, err := customer.NewCustomer(mustID(suite.T(), id), firstName, lastName, email, phone)
	suite.Require().NoError(err)

	repo := inmem.NewStoreCustomerRepository(suite.store)
	err = repo.Add(context.Background(), c)
	suite.Require().NoError(err)

	return c
}

func TestFindCustomerByIDQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(FindCustomerByIDQueryHandlerTestSuite))
}
