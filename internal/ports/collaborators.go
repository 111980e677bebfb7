package ports

import (
	"context"
	"time"

	"github.com/bnema/litebot/internal/domain"
)

type MessageHandler interface {
	HandleMessages(ctx context.Context, session Session, batch domain.MessageBatch) error
}

type GroupWelcomer interface {
	Welcome(ctx context.Context, session Session, update domain.GroupParticipantsUpdate) error
}

// Notifier shows user-facing notices, separate from logs.
type Notifier interface {
	Notify(level domain.NoticeLevel, message string)
}

type PairingRenderer interface {
	RenderPairing(code string, validity time.Duration) error
}

type Prompter interface {
	Confirm(ctx context.Context, question string) (bool, error)
}

type MessageStore interface {
	Record(msg domain.Message)
	Load(chatID, id string) (domain.Message, bool)
}

// RetryCounter counts outgoing message retries by message id.
type RetryCounter interface {
	Increment(key string) int
}
