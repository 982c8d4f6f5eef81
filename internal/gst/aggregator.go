package gst

import "gstmitra/internal/domain"

// Aggregate folds sale records into a single tax calculation in one O(n)
// pass without mutating the input. An intra-state sale splits its tax
// evenly between CGST and SGST; any other sale contributes to IGST.
// Empty input yields an all-zero result with empty maps, not an error.
func Aggregate(records []domain.SaleRecord) domain.TaxCalculation {
	calc := domain.TaxCalculation{
		SalesByState:   make(map[string]float64),
		SalesByTaxSlab: make(map[float64]float64),
	}

	for i := range records {
		r := &records[i]
		calc.TotalSales += r.Amount
		calc.SalesByState[r.State] += r.Amount
		calc.SalesByTaxSlab[r.TaxRate] += r.Amount

		taxAmount := r.Amount * r.TaxRate / 100
		if r.IsIntraState() {
			calc.CGST += taxAmount / 2
			calc.SGST += taxAmount / 2
		} else {
			calc.IGST += taxAmount
		}
	}

	// Computed once at the end so the invariant totalTax == cgst+sgst+igst
	// holds exactly and cannot drift from partial updates.
	calc.TotalTax = calc.CGST + calc.SGST + calc.IGST
	return calc
}
