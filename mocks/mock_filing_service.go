package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"gstmitra/internal/domain"
)

// MockFilingService is a mock implementation of service.FilingService.
type MockFilingService struct {
	mock.Mock
}

func (m *MockFilingService) ProcessUpload(ctx context.Context, fileName string, csvData io.Reader) (*domain.Filing, error) {
	args := m.Called(ctx, fileName, csvData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Filing), args.Error(1)
}

func (m *MockFilingService) GetByID(ctx context.Context, id int64) (*domain.Filing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Filing), args.Error(1)
}

func (m *MockFilingService) List(ctx context.Context) ([]domain.Filing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Filing), args.Error(1)
}
