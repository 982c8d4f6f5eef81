package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gstmitra/internal/domain"
)

// MockFilingStore is a mock implementation of port.FilingStore.
type MockFilingStore struct {
	mock.Mock
}

func (m *MockFilingStore) Append(ctx context.Context, filing *domain.Filing) (*domain.Filing, error) {
	args := m.Called(ctx, filing)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Filing), args.Error(1)
}

func (m *MockFilingStore) GetByID(ctx context.Context, id int64) (*domain.Filing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Filing), args.Error(1)
}

func (m *MockFilingStore) List(ctx context.Context) ([]domain.Filing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Filing), args.Error(1)
}
