package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gstmitra/internal/domain"
)

// MockAssistantService is a mock implementation of service.AssistantService.
type MockAssistantService struct {
	mock.Mock
}

func (m *MockAssistantService) Ask(ctx context.Context, query string) (*domain.AssistantAnswer, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssistantAnswer), args.Error(1)
}
