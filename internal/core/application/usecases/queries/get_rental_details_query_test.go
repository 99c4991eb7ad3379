package queries_test

import (
	"testing"

	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetRentalDetailsQuery_Valid(t *testing.T) {
	rentalID := mustID(t, 7)

	query, err := queries.NewGetRentalDetailsQuery(rentalID)

	require.NoError(t, err)
	assert.True(t, query.RentalID().IsEqual(rentalID))
	require.NoError(t, query.Validate())
}

func TestNewGetRentalDetailsQuery_InvalidID_ReturnsError(t *testing.T) {
	query, err := queries.NewGetRentalDetailsQuery(kernel.ID{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ID must be created")
	assert.Equal(t, queries.GetRentalDetailsQuery{}, query)
}

func TestGetRentalDetailsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetRentalDetailsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetRentalDetailsQueryIsNotConstructed)
}
