package queries_test

import (
	"context"
	"testing"
	"time"

	"rental/internal/adapters/out/inmem"
	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/model/rental"

	"github.com/stretchr/testify/suite"
)

type ListRentalsQueryHandlerTestSuite struct {
	suite.Suite
	store   *inmem.Store
	handler queries.ListRentalsQueryHandler
}

func (suite *ListRentalsQueryHandlerTestSuite) SetupTest() {
	suite.store = inmem.NewStore()
	suite.handler = queries.NewListRentalsQueryHandler(suite.store)
}

func (suite *ListRentalsQueryHandlerTestSuite) TestHandle_EmptyStore_ReturnsEmptySlice() {
	query := queries.NewListRentalsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *ListRentalsQueryHandlerTestSuite) TestHandle_WithRentals_ReturnsAllStatusesInInsertionOrder() {
	active := suite.saveRental(1, 10, 20, 180.00)
	returned := suite.saveRental(2, 11, 21, 240.00)
	suite.Require().NoError(returned.Return())
	repo := inmem.NewStoreRentalRepository(suite.store)
	suite.Require().NoError(repo.Update(context.Background(), returned))

	query := queries.NewListRentalsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal(active.ID(), result[0].ID)
	suite.Equal(active.VehicleID(), result[0].VehicleID)
	suite.Equal(active.CustomerID(), result[0].CustomerID)
	suite.InDelta(180.00, result[0].TotalCost, 0.0001)
	suite.Equal(rental.Active, result[0].Status)

	suite.Equal(returned.ID(), result[1].ID)
	suite.InDelta(240.00, result[1].TotalCost, 0.0001)
	suite.Equal(rental.Returned, result[1].Status)
}

func (suite *ListRentalsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.ListRentalsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewListRentalsQuery constructor")
}

func (suite *ListRentalsQueryHandlerTestSuite) saveRental(id, vehicleID, customerID int64, totalCost float64) *rental.Rental {
	period := mustPeriod(suite.T(), date(2025, time.March, 10), date(2025, time.March, 14))

	r, err := rental.NewRental(
		mustID(suite.T(), id),
		mustID(suite.T(), vehicleID),
		mustID(suite.T(), customerID),
		period,
		totalCost,
	)
	suite.Require().NoError(err)

	repo := inmem.NewStoreRentalRepository(suite.store)
	err = repo.Add(context.Background(), r)
	suite.Require().NoError(err)

	return r
}

func TestListRentalsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListRentalsQueryHandlerTestSuite))
}
