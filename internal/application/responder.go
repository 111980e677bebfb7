package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/litebot/internal/domain"
	"github.com/bnema/litebot/internal/ports"
	"go.uber.org/zap"
)

// CommandResponder answers prefixed chat commands with the response stored
// for that conversation.
type CommandResponder struct {
	commands ports.CommandRepository
	prefix   string
	logger   *zap.Logger
}

var _ ports.MessageHandler = (*CommandResponder)(nil)

func NewCommandResponder(commands ports.CommandRepository, prefix string, logger *zap.Logger) *CommandResponder {
	if prefix == "" {
		prefix = "/"
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &CommandResponder{commands: commands, prefix: prefix, logger: logger}
}

func (r *CommandResponder) HandleMessages(ctx context.Context, session ports.Session, batch domain.MessageBatch) error {
	if batch.Kind != domain.UpsertNotify {
		return nil
	}

	var errs []error
	for _, msg := range batch.Messages {
		if msg.Key.FromMe {
			continue
		}

		name, ok := r.commandName(msg.Text)
		if !ok {
			continue
		}

		record, found := r.commands.Lookup(ctx, msg.Key.ChatID, name)
		if !found {
			r.logger.Debug("no stored response for command",
				zap.String("chat_id", msg.Key.ChatID),
				zap.String("command", name))
			continue
		}

		if err := session.SendText(ctx, msg.Key.ChatID, record.Response, nil); err != nil {
			errs = append(errs, fmt.Errorf("reply to %q in %s: %w", name, msg.Key.ChatID, err))
			continue
		}
		r.logger.Info("command answered", zap.String("chat_id", msg.Key.ChatID), zap.String("command", name))
	}

	return errors.Join(errs...)
}

// commandName returns the first word after the prefix.
func (r *CommandResponder) commandName(text string) (string, bool) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(text), r.prefix)
	if !ok {
		return "", false
	}

	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return "", false
	}
	return fields[0], true
}
