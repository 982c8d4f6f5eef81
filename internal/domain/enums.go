package domain

// HomeState is the sentinel state label marking an intra-state sale.
// Any other state value, including "Unknown", is treated as inter-state.
const HomeState = "Home State"

// UnknownState is assigned to rows with no state value.
const UnknownState = "Unknown"

// BusinessSize classifies total sales volume into turnover bands.
type BusinessSize string

const (
	SizeMicro  BusinessSize = "Micro"
	SizeSmall  BusinessSize = "Small"
	SizeMedium BusinessSize = "Medium"
	SizeLarge  BusinessSize = "Large"
)

// Business size thresholds in rupees. Strict less-than on the lower band.
const (
	MicroThreshold  = 100_000
	SmallThreshold  = 1_000_000
	MediumThreshold = 5_000_000
)

// RiskLevel is the ordinal compliance risk classification.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// GST return form identifiers used in compliance plans and generated documents.
const (
	ReturnGSTR1  = "GSTR-1"
	ReturnGSTR3B = "GSTR-3B"
)

// StandardTaxSlabs lists the recognized GST rate slabs. Explicit rates
// outside this range are treated as malformed during normalization.
var StandardTaxSlabs = []float64{0, 5, 12, 18, 28}

// DefaultTaxRate applies when a row carries no rate and no product rule matches.
const DefaultTaxRate = 18
