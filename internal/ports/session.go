package ports

import (
	"context"
	"time"

	"github.com/bnema/litebot/internal/domain"
)

// EventHandler receives a session's events, one method per event class.
// Calls are sequential and in emission order.
type EventHandler interface {
	OnConnectionUpdate(ctx context.Context, update domain.ConnectionUpdate) error
	OnCredentialsUpdate(ctx context.Context, bundle domain.CredentialBundle) error
	OnMessages(ctx context.Context, batch domain.MessageBatch) error
	OnGroupParticipants(ctx context.Context, update domain.GroupParticipantsUpdate) error
}

// Session is one live connection to the messaging service.
type Session interface {
	// Registered reports whether the loaded credentials completed pairing.
	Registered() bool
	// Connect starts event delivery to h. It returns once the transport is up.
	Connect(ctx context.Context, h EventHandler) error
	SendText(ctx context.Context, chatID, text string, mentions []string) error
	Close() error
	// Done is closed once every event of the session has been delivered.
	Done() <-chan struct{}
}

type SessionConfig struct {
	Version             domain.ProtocolVersion
	Browser             domain.Browser
	QueryTimeout        time.Duration
	KeepAliveInterval   time.Duration
	MarkOnlineOnConnect bool
	SyncHistory         bool
	Credentials         domain.CredentialBundle
	ShouldIgnoreChat    func(chatID string) bool
	RetryCounter        RetryCounter
	GetMessage          func(ctx context.Context, key domain.MessageKey) (domain.Message, bool)
}

type SessionFactory interface {
	NewSession(ctx context.Context, cfg SessionConfig) (Session, error)
}

type VersionSource interface {
	LatestVersion(ctx context.Context) (domain.ProtocolVersion, error)
}
