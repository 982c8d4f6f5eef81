package gst

import "gstmitra/internal/domain"

// riskRatioThreshold flags an unusually high effective tax rate.
const riskRatioThreshold = 0.15

// Analyze derives business metrics from an aggregated calculation and the
// original record sequence. Returns domain.ErrEmptyDataset for an empty
// record sequence: the average transaction is undefined and must surface
// as a typed error, never as NaN or Inf.
func Analyze(records []domain.SaleRecord, calc domain.TaxCalculation) (domain.BusinessAnalysis, error) {
	if len(records) == 0 {
		return domain.BusinessAnalysis{}, domain.ErrEmptyDataset
	}

	score := riskScore(calc)

	return domain.BusinessAnalysis{
		PrimaryTaxSlab:     primarySlab(records, calc.SalesByTaxSlab),
		PrimaryState:       primaryState(records, calc.SalesByState),
		AverageTransaction: calc.TotalSales / float64(len(records)),
		BusinessSize:       classifySize(calc.TotalSales),
		ComplianceRisk:     classifyRisk(score),
		RiskScore:          score,
	}, nil
}

// primaryState returns the state with the maximal summed amount. The scan
// follows first-encounter order in the record sequence, so ties break
// deterministically in favor of the earlier state.
func primaryState(records []domain.SaleRecord, byState map[string]float64) string {
	var best string
	bestAmount := -1.0
	seen := make(map[string]bool, len(byState))
	for i := range records {
		state := records[i].State
		if seen[state] {
			continue
		}
		seen[state] = true
		if amount := byState[state]; amount > bestAmount {
			best, bestAmount = state, amount
		}
	}
	return best
}

// primarySlab returns the tax slab with the maximal summed amount, ties
// broken by first encounter in the record sequence.
func primarySlab(records []domain.SaleRecord, bySlab map[float64]float64) float64 {
	var best float64
	bestAmount := -1.0
	seen := make(map[float64]bool, len(bySlab))
	for i := range records {
		slab := records[i].TaxRate
		if seen[slab] {
			continue
		}
		seen[slab] = true
		if amount := bySlab[slab]; amount > bestAmount {
			best, bestAmount = slab, amount
		}
	}
	return best
}

func classifySize(totalSales float64) domain.BusinessSize {
	switch {
	case totalSales < domain.MicroThreshold:
		return domain.SizeMicro
	case totalSales < domain.SmallThreshold:
		return domain.SizeSmall
	case totalSales < domain.MediumThreshold:
		return domain.SizeMedium
	default:
		return domain.SizeLarge
	}
}

// riskScore awards one point each for interstate exposure, slab spread,
// and an effective tax rate above riskRatioThreshold. With three checks
// only scores 0 through 3 are reachable.
func riskScore(calc domain.TaxCalculation) int {
	score := 0
	if calc.IGST > 0 {
		score++
	}
	if len(calc.SalesByTaxSlab) > 3 {
		score++
	}
	if calc.TotalSales > 0 && calc.TotalTax/calc.TotalSales > riskRatioThreshold {
		score++
	}
	return score
}

func classifyRisk(score int) domain.RiskLevel {
	switch {
	case score <= 1:
		return domain.RiskLow
	case score == 2:
		return domain.RiskMedium
	default:
		return domain.RiskHigh
	}
}
