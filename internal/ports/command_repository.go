package ports

import (
	"context"

	"github.com/bnema/litebot/internal/domain"
)

type CommandRepository interface {
	// Lookup never fails: any read problem is reported as no match.
	Lookup(ctx context.Context, conversationID, command string) (domain.CommandRecord, bool)
	List(ctx context.Context, conversationID string) ([]domain.CommandRecord, error)
}
