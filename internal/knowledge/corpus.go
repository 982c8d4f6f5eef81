// Package knowledge holds the fixed GST policy corpus and the TF-IDF
// retriever used to answer assistant questions. The corpus is assembled
// once at startup and is read-only afterward.
package knowledge

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gstmitra/internal/domain"
)

// builtinDocuments is the corpus every deployment starts with.
var builtinDocuments = []domain.KnowledgeDocument{
	{
		ID: "gst-registration",
		Content: "GST registration is mandatory for businesses with aggregate turnover above " +
			"40 lakh rupees for goods (20 lakh for services, 10 lakh in special category states). " +
			"Registration is done on the GST portal with PAN, proof of business, and bank details. " +
			"Voluntary registration is allowed below the threshold and enables input tax credit claims. " +
			"Each state of operation needs its own GSTIN under the same PAN.",
		Tags: []string{"registration", "threshold", "gstin"},
	},
	{
		ID: "gst-returns-filing",
		Content: "Regular taxpayers file GSTR-1 for outward supplies by the 10th of the following " +
			"month and GSTR-3B with tax payment by the 20th. Annual return GSTR-9 is due by 31 December " +
			"of the next financial year. Late filing attracts a late fee per day plus interest at 18 " +
			"percent per annum on unpaid tax. Nil returns must be filed even with no business activity.",
		Tags: []string{"returns", "gstr-1", "gstr-3b", "deadlines", "late fee"},
	},
	{
		ID: "composition-scheme",
		Content: "The composition scheme lets small businesses with turnover up to 1.5 crore rupees " +
			"pay tax at a flat rate: 1 percent for traders and manufacturers, 5 percent for restaurants. " +
			"Composition dealers file quarterly CMP-08 and annual GSTR-4, cannot collect tax from " +
			"customers, cannot claim input tax credit, and cannot make inter-state outward supplies.",
		Tags: []string{"composition", "small business", "flat rate"},
	},
	{
		ID: "input-tax-credit",
		Content: "Input tax credit (ITC) lets registered buyers offset GST paid on purchases against " +
			"output liability. Claiming ITC requires a valid tax invoice, receipt of goods or services, " +
			"tax actually paid by the supplier, and the supplier's return reflecting the invoice. ITC " +
			"is blocked on personal consumption, motor vehicles with exceptions, and composition purchases. " +
			"Unmatched credit must be reversed with interest.",
		Tags: []string{"itc", "credit", "invoices"},
	},
	{
		ID: "interstate-supplies",
		Content: "Inter-state supplies attract IGST while intra-state supplies are split equally " +
			"between CGST and SGST. Place of supply rules determine which applies: for goods it is " +
			"generally the delivery destination, for services the recipient's location. Inter-state " +
			"suppliers must register regardless of turnover. E-way bills are required for goods " +
			"movement above 50,000 rupees in value.",
		Tags: []string{"igst", "cgst", "sgst", "interstate", "place of supply", "e-way bill"},
	},
	{
		ID: "tax-slabs",
		Content: "GST has five main rate slabs: 0 percent for essential goods like fresh food grains, " +
			"5 percent for items of common consumption, 12 percent and 18 percent as standard rates " +
			"for most goods and services, and 28 percent for luxury and sin goods. The applicable " +
			"rate is determined by the HSN code for goods or SAC code for services.",
		Tags: []string{"slabs", "rates", "hsn", "sac"},
	},
	{
		ID: "e-invoicing",
		Content: "E-invoicing is mandatory for businesses with aggregate turnover above 5 crore rupees. " +
			"Invoices are registered on the Invoice Registration Portal which returns a signed invoice " +
			"with an IRN and QR code. Invoices without an IRN are invalid for B2B supplies, and e-invoice " +
			"data auto-populates GSTR-1.",
		Tags: []string{"e-invoice", "irn", "portal"},
	},
}

// BuiltinDocuments returns a copy of the built-in corpus.
func BuiltinDocuments() []domain.KnowledgeDocument {
	docs := make([]domain.KnowledgeDocument, len(builtinDocuments))
	copy(docs, builtinDocuments)
	return docs
}

// LoadCorpus builds the full corpus: every built-in document plus every
// .txt/.md file under dir (file base name becomes the document id). A
// missing or empty dir yields just the built-in corpus. The load is a
// one-time, order-independent bulk read; files that cannot be read are
// logged and skipped rather than failing startup.
func LoadCorpus(dir string) ([]domain.KnowledgeDocument, error) {
	docs := BuiltinDocuments()
	if dir == "" {
		return docs, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("knowledge.LoadCorpus: directory %s does not exist, using built-in corpus only", dir)
			return docs, nil
		}
		return nil, fmt.Errorf("reading knowledge directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".txt" && ext != ".md" {
			continue
		}
		content, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			log.Printf("knowledge.LoadCorpus: skipping %s: %v", entry.Name(), err)
			continue
		}
		docs = append(docs, domain.KnowledgeDocument{
			ID:      strings.TrimSuffix(entry.Name(), ext),
			Content: string(content),
		})
	}

	return docs, nil
}
