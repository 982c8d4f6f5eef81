package domain

import "time"

// SaleRecord is one normalized row of an uploaded sales file.
// Records are immutable once created and are retained only inside the
// Filing they were aggregated into.
type SaleRecord struct {
	Amount  float64 `json:"amount"`
	TaxRate float64 `json:"tax_rate"`
	State   string  `json:"state"`
	Product string  `json:"product"`
}

// IsIntraState reports whether the record is an intra-state sale,
// attracting CGST+SGST rather than IGST.
func (r *SaleRecord) IsIntraState() bool {
	return r.State == HomeState
}

// TaxCalculation is the aggregate GST liability for one upload.
type TaxCalculation struct {
	TotalSales     float64             `json:"total_sales"`
	CGST           float64             `json:"cgst"`
	SGST           float64             `json:"sgst"`
	IGST           float64             `json:"igst"`
	TotalTax       float64             `json:"total_tax"`
	SalesByState   map[string]float64  `json:"sales_by_state"`
	SalesByTaxSlab map[float64]float64 `json:"sales_by_tax_slab"`
}

// BusinessAnalysis holds secondary metrics derived from a TaxCalculation.
type BusinessAnalysis struct {
	PrimaryTaxSlab     float64      `json:"primary_tax_slab"`
	PrimaryState       string       `json:"primary_state"`
	AverageTransaction float64      `json:"average_transaction"`
	BusinessSize       BusinessSize `json:"business_size"`
	ComplianceRisk     RiskLevel    `json:"compliance_risk"`
	RiskScore          int          `json:"risk_score"`
}

// CompliancePlan is the structured filing guidance composed for one upload.
type CompliancePlan struct {
	GSTR1DueDate      time.Time `json:"gstr1_due_date"`
	GSTR3BDueDate     time.Time `json:"gstr3b_due_date"`
	PaymentDueDate    time.Time `json:"payment_due_date"`
	ApplicableReturns []string  `json:"applicable_returns"`
	SpecialSchemes    []string  `json:"special_schemes"`
	RiskAreas         []string  `json:"risk_areas"`
	Advisory          string    `json:"advisory"`
	AdvisorySource    string    `json:"advisory_source"`
}

// FilingDocument is a generated return summary attached to a filing.
type FilingDocument struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Filing is the full record of one processed upload. Filings are owned
// by the in-memory filing store and live only for the process lifetime.
type Filing struct {
	ID        int64            `json:"id"`
	FileName  string           `json:"file_name"`
	Records   []SaleRecord     `json:"records"`
	Calc      TaxCalculation   `json:"tax_calculation"`
	Analysis  BusinessAnalysis `json:"business_analysis"`
	Plan      CompliancePlan   `json:"compliance_plan"`
	Documents []FilingDocument `json:"documents"`
	CreatedAt time.Time        `json:"created_at"`
}

// KnowledgeDocument is one entry of the static GST policy corpus.
type KnowledgeDocument struct {
	ID      string   `json:"id"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// ScoredDocument pairs a corpus document with its relevance to a query.
type ScoredDocument struct {
	Document KnowledgeDocument `json:"document"`
	Score    float64           `json:"score"`
}

// AssistantAnswer is the response to a free-text question: the composed
// answer plus the corpus documents it was grounded on.
type AssistantAnswer struct {
	Answer  string           `json:"answer"`
	Source  string           `json:"source"`
	Matches []ScoredDocument `json:"matches"`
}
