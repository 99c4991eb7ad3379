package queries_test

import (
	"testing"
	"time"

	"rental/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListOverdueRentalsQuery_Valid(t *testing.T) {
	asOf := date(2025, time.March, 20)

	query, err := queries.NewListOverdueRentalsQuery(asOf)

	require.NoError(t, err)
	assert.True(t, query.AsOf().Equal(asOf))
	require.NoError(t, query.Validate())
}

func TestNewListOverdueRentalsQuery_ZeroTime_ReturnsError(t *testing.T) {
	query, err := queries.NewListOverdueRentalsQuery(time.Time{})

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrAsOfIsRequired)
	assert.Equal(t, queries.ListOverdueRentalsQuery{}, query)
}

func TestListOverdueRentalsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.ListOverdueRentalsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListOverdueRentalsQueryIsNotConstructed)
}
