package commands_test

import (
	"context"
	"errors"
	"testing"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/domain/model/customer"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.ID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) NextID(ctx context.Context) (kernel.ID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.ID), args.Error(1)
}

type MockCustomerUoW struct{ mock.Mock }

func (m *MockCustomerUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCustomerUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCustomerUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCustomerUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	args := m.Called()
	return args.Get(0).(commands.CustomerUoW)
}

func TestNewAddCustomerCommandHandler(t *testing.T) {
	// Arrange
	mockFactory := new(MockCustomerUoWFactory)

	// Act
	handler := commands.NewAddCustomerCommandHandler(mockFactory)

	// Assert
	assert.NotNil(t, handler)
}

func TestAddCustomerCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	cmd, err := commands.NewAddCustomerCommand("Alice", "Johnson", "alice@example.com", "555-0101")
	require.NoError(t, err)

	mockRepo := new(MockCustomerRepository)
	mockUoW := new(MockCustomerUoW)
	mockFactory := new(MockCustomerUoWFactory)

	// Set up expectations in order
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CustomerRepository").Return(mockRepo).Once(),
		mockRepo.On("NextID", ctx).Return(mustID(t, 1), nil).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*customer.Customer")).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAddCustomerCommandHandler(mockFactory)

	// Act
	created, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, int64(1), created.ID().Value())
	assert.Equal(t, "Alice Johnson", created.FullName())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestAddCustomerCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := context.Background()
	var invalidCmd commands.AddCustomerCommand // zero value command

	mockFactory := new(MockCustomerUoWFactory)
	handler := commands.NewAddCustomerCommandHandler(mockFactory)

	// Act
	created, err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAddCustomerCommandIsNotConstructed)
	assert.Nil(t, created)
	mockFactory.AssertNotCalled(t, "Create")
}

func TestAddCustomerCommandHandler_Handle_NextIDError(t *testing.T) {
	// Arrange
	ctx := context.Background()
	cmd, err := commands.NewAddCustomerCommand("Alice", "Johnson", "alice@example.com", "555-0101")
	require.NoError(t, err)

	expectedError := errors.New("identifier assignment failed")
	mockRepo := new(MockCustomerRepository)
	mockUoW := new(MockCustomerUoW)
	mockFactory := new(MockCustomerUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CustomerRepository").Return(mockRepo).Once(),
		mockRepo.On("NextID", ctx).Return(kernel.ID{}, expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAddCustomerCommandHandler(mockFactory)

	// Act
	created, err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	assert.Nil(t, created)
	mockRepo.AssertNotCalled(t, "Add")
}

func TestAddCustomerCommandHandler_Handle_RepositoryAddError(t *testing.T) {
	// Arrange
	ctx := context.Background()
	cmd, err := commands.NewAddCustomerCommand("Alice", "Johnson", "alice@example.com", "555-0101")
	require.NoError(t, err)

	expectedError := errors.New("repository add failed")
	mockRepo := new(MockCustomerRepository)
	mockUoW := new(MockCustomerUoW)
	mockFactory := new(MockCustomerUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CustomerRepository").Return(mockRepo).Once(),
		mockRepo.On("NextID", ctx).Return(mustID(t, 1), nil).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*customer.Customer")).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAddCustomerCommandHandler(mockFactory)

	// Act
	created, err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	assert.Nil(t, created)
	mockUoW.AssertNotCalled(t, "Commit")
}

func TestAddCustomerCommandHandler_Handle_VerifiesCustomerDataCorrectness(t *testing.T) {
	// Arrange
	ctx := context.Background()
	cmd, err := commands.NewAddCustomerCommand("Bob", "Smith", "bob@example.com", "555-0102")
	require.NoError(t, err)

	var capturedCustomer *customer.Customer
	mockRepo := new(MockCustomerRepository)
	mockUoW := new(MockCustomerUoW)
	mockFactory := new(MockCustomerUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CustomerRepository").Return(mockRepo).Once(),
		mockRepo.On("NextID", ctx).Return(mustID(t, 3), nil).Once(),
		mockRepo.On("Add", ctx, mock.MatchedBy(func(c *customer.Customer) bool {
			capturedCustomer = c
			return true
		})).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAddCustomerCommandHandler(mockFactory)

	// Act
	created, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, capturedCustomer)
	assert.Same(t, created, capturedCustomer)

	// Verify the customer was created with correct data
	assert.Equal(t, int64(3), capturedCustomer.ID().Value())
	assert.Equal(t, "Bob", capturedCustomer.FirstName())
	assert.Equal(t, "Smith", capturedCustomer.LastName())
	assert.Equal(t, "bob@example.com", capturedCustomer.Email())
	assert.Equal(t, "555-0102", capturedCustomer.Phone())

	// Verify customer is valid
	require.NoError(t, capturedCustomer.Validate())

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}
