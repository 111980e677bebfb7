package ports

import (
	"context"

	"github.com/bnema/litebot/internal/domain"
)

type CredentialStore interface {
	Load(ctx context.Context) (domain.CredentialBundle, error)
	Save(ctx context.Context, bundle domain.CredentialBundle) error
	Clear(ctx context.Context) error
}
