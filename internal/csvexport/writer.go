// Package csvexport renders a filing's tax breakdown as CSV.
package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"time"

	"gstmitra/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row.
var columns = []string{"Section", "Label", "Amount"}

// Writer wraps csv.Writer for exporting a filing as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteFiling writes the filing's liability summary, analysis, per-state
// breakdown, and per-slab breakdown. Map keys are written in sorted order
// so repeated exports of the same filing are identical.
func (w *Writer) WriteFiling(filing *domain.Filing) error {
	rows := filingToRows(filing)
	for _, row := range rows {
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func filingToRows(filing *domain.Filing) [][]string {
	calc := &filing.Calc

	rows := [][]string{
		{"Filing", "File Name", filing.FileName},
		{"Filing", "Created At", filing.CreatedAt.Format(time.RFC3339)},
		{"Filing", "Record Count", fmt.Sprintf("%d", len(filing.Records))},
		{"Liability", "Total Sales", fmtf(calc.TotalSales)},
		{"Liability", "CGST", fmtf(calc.CGST)},
		{"Liability", "SGST", fmtf(calc.SGST)},
		{"Liability", "IGST", fmtf(calc.IGST)},
		{"Liability", "Total Tax", fmtf(calc.TotalTax)},
		{"Analysis", "Business Size", string(filing.Analysis.BusinessSize)},
		{"Analysis", "Compliance Risk", string(filing.Analysis.ComplianceRisk)},
		{"Analysis", "Primary State", filing.Analysis.PrimaryState},
		{"Analysis", "Primary Tax Slab", fmt.Sprintf("%.0f%%", filing.Analysis.PrimaryTaxSlab)},
		{"Analysis", "Average Transaction", fmtf(filing.Analysis.AverageTransaction)},
	}

	states := make([]string, 0, len(calc.SalesByState))
	for state := range calc.SalesByState {
		states = append(states, state)
	}
	sort.Strings(states)
	for _, state := range states {
		rows = append(rows, []string{"Sales By State", state, fmtf(calc.SalesByState[state])})
	}

	slabs := make([]float64, 0, len(calc.SalesByTaxSlab))
	for slab := range calc.SalesByTaxSlab {
		slabs = append(slabs, slab)
	}
	sort.Float64s(slabs)
	for _, slab := range slabs {
		rows = append(rows, []string{"Sales By Tax Slab", fmt.Sprintf("%.0f%%", slab), fmtf(calc.SalesByTaxSlab[slab])})
	}

	return rows
}

func fmtf(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
