package knowledge

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"gstmitra/internal/domain"
)

// DefaultMaxResults caps retrieval when the caller passes no limit.
const DefaultMaxResults = 3

// Index is a TF-IDF index over the knowledge corpus. It is built once at
// startup and read-only afterward, so concurrent retrieval needs no locking.
type Index struct {
	docs      []domain.KnowledgeDocument
	termFreqs []map[string]float64 // per-document normalized term frequency
	docFreq   map[string]int       // documents containing each term
	totalDocs int
}

// NewIndex builds a TF-IDF index over the given corpus. Document order does
// not affect scoring; ranked ties break by document id.
func NewIndex(docs []domain.KnowledgeDocument) *Index {
	idx := &Index{
		docs:      docs,
		termFreqs: make([]map[string]float64, len(docs)),
		docFreq:   make(map[string]int),
		totalDocs: len(docs),
	}

	for i := range docs {
		tokens := Tokenize(docs[i].Content + " " + strings.Join(docs[i].Tags, " "))
		tf := make(map[string]float64, len(tokens))
		for _, tok := range tokens {
			tf[tok]++
		}
		for term := range tf {
			tf[term] /= float64(len(tokens))
			idx.docFreq[term]++
		}
		idx.termFreqs[i] = tf
	}

	return idx
}

// Documents returns the indexed corpus.
func (idx *Index) Documents() []domain.KnowledgeDocument {
	docs := make([]domain.KnowledgeDocument, len(idx.docs))
	copy(docs, idx.docs)
	return docs
}

// Retrieve scores the corpus against a free-text query and returns up to
// maxResults documents in descending score order. Documents scoring zero
// are excluded entirely. A non-positive maxResults uses DefaultMaxResults.
func (idx *Index) Retrieve(query string, maxResults int) []domain.ScoredDocument {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	tokens := Tokenize(query)
	if len(tokens) == 0 || idx.totalDocs == 0 {
		return nil
	}

	scored := make([]domain.ScoredDocument, 0, idx.totalDocs)
	for i := range idx.docs {
		var score float64
		for _, tok := range tokens {
			tf := idx.termFreqs[i][tok]
			if tf == 0 {
				continue
			}
			score += tf * idx.idf(tok)
		}
		if score > 0 {
			scored = append(scored, domain.ScoredDocument{Document: idx.docs[i], Score: score})
		}
	}

	sort.SliceStable(scored, func(a, b int) bool {
		if scored[a].Score != scored[b].Score {
			return scored[a].Score > scored[b].Score
		}
		return scored[a].Document.ID < scored[b].Document.ID
	})

	if len(scored) > maxResults {
		scored = scored[:maxResults]
	}
	return scored
}

// idf uses the smoothed form ln(N/df)+1 so a term appearing in every
// document still carries positive weight.
func (idx *Index) idf(term string) float64 {
	df := idx.docFreq[term]
	if df == 0 {
		return 0
	}
	return math.Log(float64(idx.totalDocs)/float64(df)) + 1
}

// Tokenize lowercases text and splits it on any non-alphanumeric rune,
// dropping single-character tokens.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := fields[:0]
	for _, f := range fields {
		if len(f) > 1 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
