package port

import "gstmitra/internal/domain"

// KnowledgeRetriever ranks the fixed GST policy corpus against a free-text
// query. The corpus is built once at startup and read-only afterward, so
// implementations need no locking for concurrent retrieval.
type KnowledgeRetriever interface {
	Retrieve(query string, maxResults int) []domain.ScoredDocument
	Documents() []domain.KnowledgeDocument
}
