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

const userPlaceholder = "{user}"

// Welcomer greets participants added to a group.
type Welcomer struct {
	enabled  bool
	template string
	logger   *zap.Logger
}

var _ ports.GroupWelcomer = (*Welcomer)(nil)

func NewWelcomer(enabled bool, template string, logger *zap.Logger) *Welcomer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Welcomer{enabled: enabled, template: template, logger: logger}
}

func (w *Welcomer) Welcome(ctx context.Context, session ports.Session, update domain.GroupParticipantsUpdate) error {
	if !w.enabled || update.Action != domain.ParticipantAdd || strings.TrimSpace(w.template) == "" {
		return nil
	}
	if !domain.IsGroupID(update.GroupID) {
		w.logger.Debug("participants update outside a group ignored", zap.String("group_id", update.GroupID))
		return nil
	}

	var errs []error
	for _, participant := range update.Participants {
		text := strings.ReplaceAll(w.template, userPlaceholder, "@"+domain.UserNumber(participant))
		if err := session.SendText(ctx, update.GroupID, text, []string{participant}); err != nil {
			errs = append(errs, fmt.Errorf("welcome %s to %s: %w", participant, update.GroupID, err))
			continue
		}
		w.logger.Info("participant welcomed", zap.String("group_id", update.GroupID), zap.String("participant", participant))
	}

	return errors.Join(errs...)
}
