package mocks

import (
	"github.com/stretchr/testify/mock"

	"gstmitra/internal/domain"
)

// MockKnowledgeRetriever is a mock implementation of port.KnowledgeRetriever.
type MockKnowledgeRetriever struct {
	mock.Mock
}

func (m *MockKnowledgeRetriever) Retrieve(query string, maxResults int) []domain.ScoredDocument {
	args := m.Called(query, maxResults)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.ScoredDocument)
}

func (m *MockKnowledgeRetriever) Documents() []domain.KnowledgeDocument {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.KnowledgeDocument)
}
