package gst

import (
	"fmt"
	"sort"
	"strings"

	"gstmitra/internal/domain"
)

// BuildFilingDocuments renders the deterministic return summaries attached
// to a filing: an outward-supplies statement for GSTR-1 and a liability
// summary for GSTR-3B.
func BuildFilingDocuments(calc domain.TaxCalculation, plan domain.CompliancePlan) []domain.FilingDocument {
	return []domain.FilingDocument{
		{
			Type:    domain.ReturnGSTR1,
			Title:   "GSTR-1 Outward Supplies Statement",
			Content: renderGSTR1(calc, plan),
		},
		{
			Type:    domain.ReturnGSTR3B,
			Title:   "GSTR-3B Summary Return",
			Content: renderGSTR3B(calc, plan),
		},
	}
}

func renderGSTR1(calc domain.TaxCalculation, plan domain.CompliancePlan) string {
	var b strings.Builder

	b.WriteString("GSTR-1: Details of outward supplies\n")
	fmt.Fprintf(&b, "Due date: %s\n\n", plan.GSTR1DueDate.Format("02 Jan 2006"))
	fmt.Fprintf(&b, "Total outward supplies: %.2f\n\n", calc.TotalSales)

	b.WriteString("Supplies by rate:\n")
	for _, slab := range sortedSlabs(calc.SalesByTaxSlab) {
		fmt.Fprintf(&b, "  %.0f%%: %.2f\n", slab, calc.SalesByTaxSlab[slab])
	}

	b.WriteString("\nSupplies by place of supply:\n")
	for _, state := range sortedStates(calc.SalesByState) {
		fmt.Fprintf(&b, "  %s: %.2f\n", state, calc.SalesByState[state])
	}

	return b.String()
}

func renderGSTR3B(calc domain.TaxCalculation, plan domain.CompliancePlan) string {
	var b strings.Builder

	b.WriteString("GSTR-3B: Summary return\n")
	fmt.Fprintf(&b, "Due date: %s (tax payment due the same day)\n\n", plan.GSTR3BDueDate.Format("02 Jan 2006"))
	fmt.Fprintf(&b, "Taxable value: %.2f\n", calc.TotalSales)
	fmt.Fprintf(&b, "CGST: %.2f\n", calc.CGST)
	fmt.Fprintf(&b, "SGST: %.2f\n", calc.SGST)
	fmt.Fprintf(&b, "IGST: %.2f\n", calc.IGST)
	fmt.Fprintf(&b, "Total tax liability: %.2f\n", calc.TotalTax)
	b.WriteString("\nOffset eligible input tax credit (ITC) before cash payment.")

	return b.String()
}

// Map iteration order is randomized; exports and documents sort keys so
// repeated renders of the same filing are identical.

func sortedSlabs(bySlab map[float64]float64) []float64 {
	slabs := make([]float64, 0, len(bySlab))
	for slab := range bySlab {
		slabs = append(slabs, slab)
	}
	sort.Float64s(slabs)
	return slabs
}

func sortedStates(byState map[string]float64) []string {
	states := make([]string, 0, len(byState))
	for state := range byState {
		states = append(states, state)
	}
	sort.Strings(states)
	return states
}
