package gst

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gstmitra/internal/domain"
	"gstmitra/internal/port"
	"gstmitra/internal/textgen"
)

// advisoryTimeout bounds the optional text generation call so a slow
// provider can never hang the upload pipeline.
const advisoryTimeout = 20 * time.Second

// AdvisorySourceTemplate marks advisory text rendered from the
// deterministic template rather than a generation provider.
const AdvisorySourceTemplate = "template"

// Composer builds compliance plans from a business analysis. Advisory text
// delegates to a TextGenerator; the deterministic template is always the
// fallback when the generator is unavailable, fails, or times out.
type Composer struct {
	gen port.TextGenerator
	now func() time.Time
}

// NewComposer creates a Composer. A nil gen is replaced with the noop
// generator, so advisory text always comes from the deterministic template.
func NewComposer(gen port.TextGenerator) *Composer {
	return newComposer(gen, time.Now)
}

// NewComposerWithClock creates a Composer with a fixed clock (for testing).
func NewComposerWithClock(gen port.TextGenerator, now func() time.Time) *Composer {
	return newComposer(gen, now)
}

func newComposer(gen port.TextGenerator, now func() time.Time) *Composer {
	if gen == nil {
		gen = textgen.NewNoopGenerator()
	}
	return &Composer{gen: gen, now: now}
}

// Compose builds the structured compliance plan for an analysis. The
// structured fields are always computed deterministically; only the
// advisory elaboration may come from the generator.
func (c *Composer) Compose(ctx context.Context, analysis domain.BusinessAnalysis) domain.CompliancePlan {
	now := c.now()

	plan := domain.CompliancePlan{
		// Fixed calendar rule: GSTR-1 on the 10th of the following month,
		// GSTR-3B and tax payment on the 20th.
		GSTR1DueDate:      nextMonthDay(now, 10),
		GSTR3BDueDate:     nextMonthDay(now, 20),
		PaymentDueDate:    nextMonthDay(now, 20),
		ApplicableReturns: []string{domain.ReturnGSTR1, domain.ReturnGSTR3B},
	}

	if analysis.BusinessSize == domain.SizeMicro {
		plan.SpecialSchemes = append(plan.SpecialSchemes, "Composition Scheme")
	}
	if analysis.ComplianceRisk != domain.RiskLow {
		plan.RiskAreas = append(plan.RiskAreas, "Interstate Sales", "Multiple Tax Rates")
	}

	plan.Advisory = renderAdvisory(analysis, plan)
	plan.AdvisorySource = AdvisorySourceTemplate

	genCtx, cancel := context.WithTimeout(ctx, advisoryTimeout)
	defer cancel()

	out, err := c.gen.Generate(genCtx, port.GenerateInput{
		Prompt:    advisoryPrompt(analysis, plan),
		MaxTokens: 1024,
	})
	if err != nil {
		// The noop generator's unavailability is the normal unconfigured
		// path, not worth a log line on every upload.
		if !errors.Is(err, textgen.ErrUnavailable) {
			log.Printf("gst.Composer: advisory generation failed, using template: %v", err)
		}
		return plan
	}
	if text := strings.TrimSpace(out.Text); text != "" {
		plan.Advisory = text
		plan.AdvisorySource = out.ModelUsed
	}
	return plan
}

// nextMonthDay returns the given day of the month following t, at midnight
// in t's location. time.Date normalizes month overflow across year ends.
func nextMonthDay(t time.Time, day int) time.Time {
	return time.Date(t.Year(), t.Month()+1, day, 0, 0, 0, 0, t.Location())
}

// renderAdvisory produces the deterministic advisory text from the
// computed fields. This is the mandatory fallback path and must stand on
// its own without any generation provider present.
func renderAdvisory(analysis domain.BusinessAnalysis, plan domain.CompliancePlan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Your business is classified as %s with a compliance risk of %s.\n",
		analysis.BusinessSize, analysis.ComplianceRisk)
	fmt.Fprintf(&b, "Most sales fall in the %.0f%% tax slab, concentrated in %s, with an average transaction of %.2f.\n",
		analysis.PrimaryTaxSlab, analysis.PrimaryState, analysis.AverageTransaction)
	fmt.Fprintf(&b, "File %s by %s and %s with tax payment by %s.\n",
		domain.ReturnGSTR1, plan.GSTR1DueDate.Format("02 Jan 2006"),
		domain.ReturnGSTR3B, plan.GSTR3BDueDate.Format("02 Jan 2006"))

	if len(plan.SpecialSchemes) > 0 {
		fmt.Fprintf(&b, "You may be eligible for: %s.\n", strings.Join(plan.SpecialSchemes, ", "))
	}
	if len(plan.RiskAreas) > 0 {
		fmt.Fprintf(&b, "Review these risk areas before filing: %s.\n", strings.Join(plan.RiskAreas, ", "))
	}
	b.WriteString("Reconcile input tax credit (ITC) against purchase invoices before payment.")

	return b.String()
}

// advisoryPrompt asks the generator to elaborate on the deterministic
// plan without changing any computed figure or date.
func advisoryPrompt(analysis domain.BusinessAnalysis, plan domain.CompliancePlan) string {
	return fmt.Sprintf(
		"You are a GST compliance advisor for Indian businesses. "+
			"Expand the following computed compliance summary into clear, practical advice. "+
			"Keep every figure, date, and classification exactly as given. "+
			"Do not invent deadlines or schemes.\n\n%s",
		renderAdvisory(analysis, plan),
	)
}
