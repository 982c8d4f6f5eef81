package gst

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gstmitra/internal/domain"
	"gstmitra/internal/port"
	"gstmitra/internal/textgen"
	"gstmitra/mocks"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func lowRiskAnalysis() domain.BusinessAnalysis {
	return domain.BusinessAnalysis{
		PrimaryTaxSlab:     18,
		PrimaryState:       domain.HomeState,
		AverageTransaction: 1500,
		BusinessSize:       domain.SizeSmall,
		ComplianceRisk:     domain.RiskLow,
		RiskScore:          1,
	}
}

func TestCompose_Deadlines(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	c := NewComposerWithClock(nil, fixedClock(now))

	plan := c.Compose(context.Background(), lowRiskAnalysis())

	assert.Equal(t, time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC), plan.GSTR1DueDate)
	assert.Equal(t, time.Date(2026, time.September, 20, 0, 0, 0, 0, time.UTC), plan.GSTR3BDueDate)
	assert.Equal(t, plan.GSTR3BDueDate, plan.PaymentDueDate)
}

func TestCompose_DeadlinesRollOverYearEnd(t *testing.T) {
	now := time.Date(2026, time.December, 5, 0, 0, 0, 0, time.UTC)
	c := NewComposerWithClock(nil, fixedClock(now))

	plan := c.Compose(context.Background(), lowRiskAnalysis())

	assert.Equal(t, time.Date(2027, time.January, 10, 0, 0, 0, 0, time.UTC), plan.GSTR1DueDate)
	assert.Equal(t, time.Date(2027, time.January, 20, 0, 0, 0, 0, time.UTC), plan.GSTR3BDueDate)
}

func TestCompose_ApplicableReturnsAlwaysBoth(t *testing.T) {
	c := NewComposer(nil)

	plan := c.Compose(context.Background(), lowRiskAnalysis())

	assert.Equal(t, []string{domain.ReturnGSTR1, domain.ReturnGSTR3B}, plan.ApplicableReturns)
}

func TestCompose_CompositionSchemeOnlyForMicro(t *testing.T) {
	c := NewComposer(nil)

	micro := lowRiskAnalysis()
	micro.BusinessSize = domain.SizeMicro
	plan := c.Compose(context.Background(), micro)
	assert.Contains(t, plan.SpecialSchemes, "Composition Scheme")

	plan = c.Compose(context.Background(), lowRiskAnalysis())
	assert.Empty(t, plan.SpecialSchemes)
}

func TestCompose_RiskAreasOnlyAboveLow(t *testing.T) {
	c := NewComposer(nil)

	risky := lowRiskAnalysis()
	risky.ComplianceRisk = domain.RiskMedium
	plan := c.Compose(context.Background(), risky)
	assert.Equal(t, []string{"Interstate Sales", "Multiple Tax Rates"}, plan.RiskAreas)

	plan = c.Compose(context.Background(), lowRiskAnalysis())
	assert.Empty(t, plan.RiskAreas)
}

func TestCompose_NoopGeneratorUsesTemplate(t *testing.T) {
	now := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)
	c := NewComposerWithClock(textgen.NewNoopGenerator(), fixedClock(now))

	plan := c.Compose(context.Background(), lowRiskAnalysis())

	assert.Equal(t, AdvisorySourceTemplate, plan.AdvisorySource)
	assert.NotEmpty(t, plan.Advisory)
	assert.Contains(t, plan.Advisory, "10 Sep 2026")
	assert.Contains(t, plan.Advisory, "20 Sep 2026")
	assert.Contains(t, plan.Advisory, "Small")
}

func TestNewComposer_NilGeneratorDefaultsToNoop(t *testing.T) {
	c := NewComposer(nil)

	plan := c.Compose(context.Background(), lowRiskAnalysis())

	assert.Equal(t, AdvisorySourceTemplate, plan.AdvisorySource)
	assert.NotEmpty(t, plan.Advisory)
}

func TestCompose_GeneratorFailureFallsBackToTemplate(t *testing.T) {
	gen := new(mocks.MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.AnythingOfType("port.GenerateInput")).
		Return(nil, errors.New("provider down"))

	risky := lowRiskAnalysis()
	risky.ComplianceRisk = domain.RiskHigh
	c := NewComposer(gen)

	plan := c.Compose(context.Background(), risky)

	assert.Equal(t, AdvisorySourceTemplate, plan.AdvisorySource)
	assert.NotEmpty(t, plan.Advisory)
	assert.Equal(t, []string{"Interstate Sales", "Multiple Tax Rates"}, plan.RiskAreas)
	assert.Equal(t, []string{domain.ReturnGSTR1, domain.ReturnGSTR3B}, plan.ApplicableReturns)
	gen.AssertExpectations(t)
}

func TestCompose_GeneratorSuccessReplacesAdvisory(t *testing.T) {
	gen := new(mocks.MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.AnythingOfType("port.GenerateInput")).
		Return(&port.GenerateOutput{Text: "elaborated advice", ModelUsed: "claude-sonnet-4-20250514"}, nil)

	c := NewComposer(gen)

	plan := c.Compose(context.Background(), lowRiskAnalysis())

	assert.Equal(t, "elaborated advice", plan.Advisory)
	assert.Equal(t, "claude-sonnet-4-20250514", plan.AdvisorySource)
	gen.AssertExpectations(t)
}

func TestCompose_GeneratorBlankOutputKeepsTemplate(t *testing.T) {
	gen := new(mocks.MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.AnythingOfType("port.GenerateInput")).
		Return(&port.GenerateOutput{Text: "   ", ModelUsed: "claude-sonnet-4-20250514"}, nil)

	c := NewComposer(gen)

	plan := c.Compose(context.Background(), lowRiskAnalysis())

	assert.Equal(t, AdvisorySourceTemplate, plan.AdvisorySource)
	assert.NotEmpty(t, plan.Advisory)
}
