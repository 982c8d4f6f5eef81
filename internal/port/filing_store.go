package port

import (
	"context"

	"gstmitra/internal/domain"
)

// FilingStore is the process-wide, append-only store of completed filings.
// Append assigns the filing its id. Filings are never updated or deleted;
// the store is discarded on process exit.
type FilingStore interface {
	Append(ctx context.Context, filing *domain.Filing) (*domain.Filing, error)
	GetByID(ctx context.Context, id int64) (*domain.Filing, error)
	List(ctx context.Context) ([]domain.Filing, error)
}
