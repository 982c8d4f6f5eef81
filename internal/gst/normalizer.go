// Package gst implements the GST liability computation pipeline:
// row normalization, single-pass aggregation, business pattern analysis,
// and compliance plan composition.
package gst

import (
	"strconv"
	"strings"

	"gstmitra/internal/domain"
)

// RawRow is one CSV-decoded row keyed by header name.
type RawRow map[string]string

// rateRule maps product label substrings to a default tax rate.
type rateRule struct {
	keywords []string
	rate     float64
}

// rateRules is checked in order; the first matching rule wins.
var rateRules = []rateRule{
	{keywords: []string{"essential", "food"}, rate: 0},
	{keywords: []string{"common", "basic"}, rate: 5},
	{keywords: []string{"standard", "processed"}, rate: 12},
	{keywords: []string{"luxury", "premium"}, rate: 28},
}

// NormalizeRows converts raw CSV rows into typed sale records. Malformed
// numeric fields default rather than error: uploads with partially missing
// data are processed, never rejected.
func NormalizeRows(rows []RawRow) []domain.SaleRecord {
	records := make([]domain.SaleRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, NormalizeRow(row))
	}
	return records
}

// NormalizeRow converts a single raw row into a SaleRecord.
func NormalizeRow(row RawRow) domain.SaleRecord {
	product := strings.TrimSpace(rowValue(row, "product", "item", "description"))

	amount, err := strconv.ParseFloat(strings.TrimSpace(rowValue(row, "amount", "value", "total")), 64)
	if err != nil || amount < 0 {
		amount = 0
	}

	rate, err := strconv.ParseFloat(strings.TrimSpace(rowValue(row, "taxrate", "tax_rate", "rate")), 64)
	if err != nil || !plausibleRate(rate) {
		rate = InferTaxRate(product)
	}

	state := strings.TrimSpace(rowValue(row, "state", "place_of_supply"))
	if state == "" {
		state = domain.UnknownState
	}

	return domain.SaleRecord{
		Amount:  amount,
		TaxRate: rate,
		State:   state,
		Product: product,
	}
}

// plausibleRate bounds an explicit rate to the recognized slab range. GST
// rates never exceed the top slab, so a negative or oversize value is junk
// data and falls back to product inference.
func plausibleRate(rate float64) bool {
	top := domain.StandardTaxSlabs[len(domain.StandardTaxSlabs)-1]
	return rate >= 0 && rate <= top
}

// InferTaxRate derives a tax rate from a product label by ordered substring
// match, defaulting to the standard 18% slab when no rule matches.
func InferTaxRate(product string) float64 {
	label := strings.ToLower(product)
	for _, rule := range rateRules {
		for _, kw := range rule.keywords {
			if strings.Contains(label, kw) {
				return rule.rate
			}
		}
	}
	return domain.DefaultTaxRate
}

// rowValue returns the first non-empty value among the candidate keys,
// matching header names case-insensitively and ignoring spaces/underscores.
func rowValue(row RawRow, keys ...string) string {
	for _, want := range keys {
		for k, v := range row {
			if canonicalHeader(k) == canonicalHeader(want) && v != "" {
				return v
			}
		}
	}
	return ""
}

func canonicalHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}
