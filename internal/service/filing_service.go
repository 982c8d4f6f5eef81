package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"gstmitra/internal/domain"
	"gstmitra/internal/gst"
	"gstmitra/internal/port"
)

// FilingService runs the upload pipeline and reads back stored filings.
type FilingService interface {
	ProcessUpload(ctx context.Context, fileName string, csvData io.Reader) (*domain.Filing, error)
	GetByID(ctx context.Context, id int64) (*domain.Filing, error)
	List(ctx context.Context) ([]domain.Filing, error)
}

type filingService struct {
	store     port.FilingStore
	retriever port.KnowledgeRetriever
	composer  *gst.Composer
	maxRows   int
}

// NewFilingService creates a new FilingService implementation.
func NewFilingService(store port.FilingStore, retriever port.KnowledgeRetriever, composer *gst.Composer, maxRows int) FilingService {
	return &filingService{
		store:     store,
		retriever: retriever,
		composer:  composer,
		maxRows:   maxRows,
	}
}

// ProcessUpload runs the full pipeline over a CSV stream: decode rows,
// normalize, aggregate, analyze, retrieve supporting knowledge for a
// synthesized query, compose the compliance plan, render the filing
// documents, and append the completed filing to the store.
func (s *filingService) ProcessUpload(ctx context.Context, fileName string, csvData io.Reader) (*domain.Filing, error) {
	rows, err := s.decodeRows(csvData)
	if err != nil {
		return nil, err
	}

	records := gst.NormalizeRows(rows)
	calc := gst.Aggregate(records)

	analysis, err := gst.Analyze(records, calc)
	if err != nil {
		return nil, err
	}

	matches := s.retriever.Retrieve(synthesizeQuery(analysis), 0)
	plan := s.composer.Compose(ctx, analysis)

	documents := gst.BuildFilingDocuments(calc, plan)
	if ref := referenceDocument(matches); ref != nil {
		documents = append(documents, *ref)
	}

	filing := &domain.Filing{
		FileName:  fileName,
		Records:   records,
		Calc:      calc,
		Analysis:  analysis,
		Plan:      plan,
		Documents: documents,
		CreatedAt: time.Now(),
	}

	stored, err := s.store.Append(ctx, filing)
	if err != nil {
		return nil, fmt.Errorf("storing filing: %w", err)
	}

	log.Printf("service.FilingService: processed %s (%d records, total tax %.2f, risk %s)",
		fileName, len(records), calc.TotalTax, analysis.ComplianceRisk)
	return stored, nil
}

func (s *filingService) GetByID(ctx context.Context, id int64) (*domain.Filing, error) {
	return s.store.GetByID(ctx, id)
}

func (s *filingService) List(ctx context.Context) ([]domain.Filing, error) {
	return s.store.List(ctx)
}

// decodeRows reads a header-keyed CSV into raw rows. Short or long data
// rows are tolerated; rows past the configured cap are dropped with a log
// line rather than failing the upload.
func (s *filingService) decodeRows(csvData io.Reader) ([]gst.RawRow, error) {
	r := csv.NewReader(csvData)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, domain.ErrInvalidCSV
	}

	var rows []gst.RawRow
	for {
		fields, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, domain.ErrInvalidCSV
		}
		if s.maxRows > 0 && len(rows) >= s.maxRows {
			log.Printf("service.FilingService: row cap %d reached, ignoring remaining rows", s.maxRows)
			break
		}

		row := make(gst.RawRow, len(header))
		for i, name := range header {
			if i < len(fields) {
				row[name] = fields[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// synthesizeQuery derives a knowledge query from the analysis so each
// filing is annotated with the policy documents that matter for it.
func synthesizeQuery(analysis domain.BusinessAnalysis) string {
	terms := []string{"gst", "returns", "filing", "deadlines"}
	if analysis.BusinessSize == domain.SizeMicro {
		terms = append(terms, "composition", "scheme", "small", "business")
	}
	if analysis.ComplianceRisk != domain.RiskLow {
		terms = append(terms, "interstate", "igst", "place", "of", "supply")
	}
	return strings.Join(terms, " ")
}

// referenceDocument renders retrieved knowledge matches into a filing
// document. Returns nil when nothing matched.
func referenceDocument(matches []domain.ScoredDocument) *domain.FilingDocument {
	if len(matches) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("Relevant GST guidance for this filing:\n")
	for _, m := range matches {
		fmt.Fprintf(&b, "\n[%s]\n%s\n", m.Document.ID, m.Document.Content)
	}

	return &domain.FilingDocument{
		Type:    "reference",
		Title:   "Compliance Reference Notes",
		Content: b.String(),
	}
}
