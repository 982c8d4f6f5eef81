package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gstmitra/internal/domain"
	"gstmitra/internal/port"
	"gstmitra/internal/service"
	"gstmitra/internal/textgen"
	"gstmitra/mocks"
)

func compositionMatches() []domain.ScoredDocument {
	return []domain.ScoredDocument{
		{
			Document: domain.KnowledgeDocument{
				ID:      "composition-scheme",
				Content: "The composition scheme lets small businesses pay a flat rate of turnover.",
			},
			Score: 0.6,
		},
	}
}

func TestAssistantService_Ask_EmptyQuery(t *testing.T) {
	retriever := new(mocks.MockKnowledgeRetriever)
	svc := service.NewAssistantService(retriever, nil, 3)

	for _, query := range []string{"", "   ", "\t\n"} {
		_, err := svc.Ask(context.Background(), query)
		assert.ErrorIs(t, err, domain.ErrEmptyQuery)
	}
	retriever.AssertNotCalled(t, "Retrieve", mock.Anything, mock.Anything)
}

func TestAssistantService_Ask_TemplateAnswerWithNoopGenerator(t *testing.T) {
	retriever := new(mocks.MockKnowledgeRetriever)
	retriever.On("Retrieve", "composition scheme", 3).Return(compositionMatches())

	svc := service.NewAssistantService(retriever, textgen.NewNoopGenerator(), 3)

	answer, err := svc.Ask(context.Background(), "composition scheme")

	require.NoError(t, err)
	assert.Equal(t, "template", answer.Source)
	assert.Contains(t, answer.Answer, "flat rate of turnover")
	assert.Len(t, answer.Matches, 1)
}

func TestAssistantService_Ask_NoMatchesMessage(t *testing.T) {
	retriever := new(mocks.MockKnowledgeRetriever)
	retriever.On("Retrieve", "unrelated topic", 3).Return(nil)

	svc := service.NewAssistantService(retriever, nil, 3)

	answer, err := svc.Ask(context.Background(), "unrelated topic")

	require.NoError(t, err)
	assert.Equal(t, "template", answer.Source)
	assert.Contains(t, answer.Answer, "No matching GST guidance")
	assert.Empty(t, answer.Matches)
}

func TestAssistantService_Ask_GeneratorElaborates(t *testing.T) {
	retriever := new(mocks.MockKnowledgeRetriever)
	retriever.On("Retrieve", "composition scheme", 3).Return(compositionMatches())

	gen := new(mocks.MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.AnythingOfType("port.GenerateInput")).
		Return(&port.GenerateOutput{Text: "Small businesses under the threshold can opt in.", ModelUsed: "claude"}, nil)

	svc := service.NewAssistantService(retriever, gen, 3)

	answer, err := svc.Ask(context.Background(), "composition scheme")

	require.NoError(t, err)
	assert.Equal(t, "claude", answer.Source)
	assert.Equal(t, "Small businesses under the threshold can opt in.", answer.Answer)

	input := gen.Calls[0].Arguments.Get(1).(port.GenerateInput)
	assert.Contains(t, input.Prompt, "[composition-scheme]")
	assert.Contains(t, input.Prompt, "Question: composition scheme")
}

func TestAssistantService_Ask_GeneratorFailureFallsBack(t *testing.T) {
	retriever := new(mocks.MockKnowledgeRetriever)
	retriever.On("Retrieve", "composition scheme", 3).Return(compositionMatches())

	gen := new(mocks.MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.AnythingOfType("port.GenerateInput")).
		Return(nil, errors.New("provider down"))

	svc := service.NewAssistantService(retriever, gen, 3)

	answer, err := svc.Ask(context.Background(), "composition scheme")

	require.NoError(t, err)
	assert.Equal(t, "template", answer.Source)
	assert.Contains(t, answer.Answer, "flat rate of turnover")
}

func TestAssistantService_Ask_BlankGenerationKeepsTemplate(t *testing.T) {
	retriever := new(mocks.MockKnowledgeRetriever)
	retriever.On("Retrieve", "composition scheme", 3).Return(compositionMatches())

	gen := new(mocks.MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.AnythingOfType("port.GenerateInput")).
		Return(&port.GenerateOutput{Text: "   ", ModelUsed: "claude"}, nil)

	svc := service.NewAssistantService(retriever, gen, 3)

	answer, err := svc.Ask(context.Background(), "composition scheme")

	require.NoError(t, err)
	assert.Equal(t, "template", answer.Source)
	assert.Contains(t, answer.Answer, "flat rate of turnover")
}
