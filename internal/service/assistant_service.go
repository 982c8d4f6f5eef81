package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gstmitra/internal/domain"
	"gstmitra/internal/port"
	"gstmitra/internal/textgen"
)

// answerTimeout bounds the generation call for assistant answers.
const answerTimeout = 20 * time.Second

// answerSourceTemplate marks answers composed from retrieved excerpts
// rather than a generation provider.
const answerSourceTemplate = "template"

// AssistantService answers free-text GST questions against the knowledge
// corpus, optionally elaborated by a text generation provider.
type AssistantService interface {
	Ask(ctx context.Context, query string) (*domain.AssistantAnswer, error)
}

type assistantService struct {
	retriever  port.KnowledgeRetriever
	gen        port.TextGenerator
	maxResults int
}

// NewAssistantService creates a new AssistantService implementation.
// A nil gen is replaced with the noop generator, which keeps every answer
// on the deterministic excerpt template.
func NewAssistantService(retriever port.KnowledgeRetriever, gen port.TextGenerator, maxResults int) AssistantService {
	if gen == nil {
		gen = textgen.NewNoopGenerator()
	}
	return &assistantService{
		retriever:  retriever,
		gen:        gen,
		maxResults: maxResults,
	}
}

// Ask retrieves the top-ranked corpus documents for the query and composes
// an answer from them. Generation failures degrade to the deterministic
// excerpt answer, never to a user-facing error.
func (s *assistantService) Ask(ctx context.Context, query string) (*domain.AssistantAnswer, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.ErrEmptyQuery
	}

	matches := s.retriever.Retrieve(query, s.maxResults)

	answer := &domain.AssistantAnswer{
		Answer:  templateAnswer(matches),
		Source:  answerSourceTemplate,
		Matches: matches,
	}

	genCtx, cancel := context.WithTimeout(ctx, answerTimeout)
	defer cancel()

	out, err := s.gen.Generate(genCtx, port.GenerateInput{
		Prompt:    answerPrompt(query, matches),
		MaxTokens: 1024,
	})
	if err != nil {
		if !errors.Is(err, textgen.ErrUnavailable) {
			log.Printf("service.AssistantService: generation failed, using template answer: %v", err)
		}
		return answer, nil
	}
	if text := strings.TrimSpace(out.Text); text != "" {
		answer.Answer = text
		answer.Source = out.ModelUsed
	}
	return answer, nil
}

// templateAnswer composes a deterministic answer from retrieved excerpts.
func templateAnswer(matches []domain.ScoredDocument) string {
	if len(matches) == 0 {
		return "No matching GST guidance was found for this question. " +
			"Try rephrasing with terms like registration, returns, input tax credit, or composition scheme."
	}

	var b strings.Builder
	b.WriteString("Based on GST guidance:\n")
	for _, m := range matches {
		fmt.Fprintf(&b, "\n%s\n", m.Document.Content)
	}
	return b.String()
}

// answerPrompt instructs the generator to answer strictly from the
// retrieved context.
func answerPrompt(query string, matches []domain.ScoredDocument) string {
	var b strings.Builder
	b.WriteString("You are a GST compliance assistant for Indian businesses. " +
		"Answer the question using only the reference material below. " +
		"If the material does not cover the question, say so.\n\nReference material:\n")
	for _, m := range matches {
		fmt.Fprintf(&b, "\n[%s]\n%s\n", m.Document.ID, m.Document.Content)
	}
	fmt.Fprintf(&b, "\nQuestion: %s\n", query)
	return b.String()
}
