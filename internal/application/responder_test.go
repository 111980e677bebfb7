package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/litebot/internal/domain"
	"github.com/bnema/litebot/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mockAnyContext() interface{} {
	return mock.Anything
}

func inbound(chatID, text string) domain.Message {
	return domain.Message{Key: domain.MessageKey{ChatID: chatID, ID: "M-" + text}, Text: text}
}

func TestCommandResponderRepliesWithStoredResponse(t *testing.T) {
	commands := mocks.NewMockCommandRepository(t)
	session := mocks.NewMockSession(t)
	responder := NewCommandResponder(commands, "/", nil)

	commands.EXPECT().Lookup(mockAnyContext(), "5511999@s.whatsapp.net", "menu").
		Return(domain.CommandRecord{Command: "menu", Response: "Hi"}, true)
	session.EXPECT().SendText(mockAnyContext(), "5511999@s.whatsapp.net", "Hi", []string(nil)).Return(nil)

	err := responder.HandleMessages(context.Background(), session, domain.MessageBatch{
		Kind:     domain.UpsertNotify,
		Messages: []domain.Message{inbound("5511999@s.whatsapp.net", "  /menu please")},
	})
	require.NoError(t, err)
}

func TestCommandResponderSkipsNonCommands(t *testing.T) {
	commands := mocks.NewMockCommandRepository(t)
	session := mocks.NewMockSession(t)
	responder := NewCommandResponder(commands, "!", nil)

	fromMe := inbound("5511999@s.whatsapp.net", "!menu")
	fromMe.Key.FromMe = true

	err := responder.HandleMessages(context.Background(), session, domain.MessageBatch{
		Kind: domain.UpsertNotify,
		Messages: []domain.Message{
			inbound("5511999@s.whatsapp.net", "hello"),
			inbound("5511999@s.whatsapp.net", "!"),
			inbound("5511999@s.whatsapp.net", "/menu"),
			fromMe,
		},
	})
	require.NoError(t, err)
}

func TestCommandResponderIgnoresAppendBatches(t *testing.T) {
	responder := NewCommandResponder(mocks.NewMockCommandRepository(t), "/", nil)

	err := responder.HandleMessages(context.Background(), mocks.NewMockSession(t), domain.MessageBatch{
		Kind:     domain.UpsertAppend,
		Messages: []domain.Message{inbound("120363@g.us", "/menu")},
	})
	require.NoError(t, err)
}

func TestCommandResponderUnknownCommandSendsNothing(t *testing.T) {
	commands := mocks.NewMockCommandRepository(t)
	responder := NewCommandResponder(commands, "/", nil)

	commands.EXPECT().Lookup(mockAnyContext(), "120363@g.us", "missing").Return(domain.CommandRecord{}, false)

	err := responder.HandleMessages(context.Background(), mocks.NewMockSession(t), domain.MessageBatch{
		Kind:     domain.UpsertNotify,
		Messages: []domain.Message{inbound("120363@g.us", "/missing")},
	})
	require.NoError(t, err)
}

func TestCommandResponderJoinsSendErrors(t *testing.T) {
	commands := mocks.NewMockCommandRepository(t)
	session := mocks.NewMockSession(t)
	responder := NewCommandResponder(commands, "/", nil)

	commands.EXPECT().Lookup(mockAnyContext(), "120363@g.us", "menu").
		Return(domain.CommandRecord{Command: "menu", Response: "Hi"}, true)
	commands.EXPECT().Lookup(mockAnyContext(), "120363@g.us", "rules").
		Return(domain.CommandRecord{Command: "rules", Response: "Be nice"}, true)
	session.EXPECT().SendText(mockAnyContext(), "120363@g.us", "Hi", []string(nil)).Return(domain.ErrSendTimeout)
	session.EXPECT().SendText(mockAnyContext(), "120363@g.us", "Be nice", []string(nil)).Return(nil)

	err := responder.HandleMessages(context.Background(), session, domain.MessageBatch{
		Kind: domain.UpsertNotify,
		Messages: []domain.Message{
			inbound("120363@g.us", "/menu"),
			inbound("120363@g.us", "/rules"),
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSendTimeout)
	assert.Contains(t, err.Error(), `reply to "menu"`)
}

func TestCommandResponderDefaultsPrefix(t *testing.T) {
	responder := NewCommandResponder(mocks.NewMockCommandRepository(t), "", nil)

	name, ok := responder.commandName("/menu extra")
	assert.True(t, ok)
	assert.Equal(t, "menu", name)
}

func TestWelcomerGreetsAddedParticipants(t *testing.T) {
	session := mocks.NewMockSession(t)
	welcomer := NewWelcomer(true, "Welcome {user}! Read the rules, {user}.", nil)

	session.EXPECT().SendText(mockAnyContext(), "120363@g.us", "Welcome @5511888! Read the rules, @5511888.", []string{"5511888@s.whatsapp.net"}).Return(nil)
	session.EXPECT().SendText(mockAnyContext(), "120363@g.us", "Welcome @5511777! Read the rules, @5511777.", []string{"5511777:3@s.whatsapp.net"}).Return(nil)

	err := welcomer.Welcome(context.Background(), session, domain.GroupParticipantsUpdate{
		GroupID:      "120363@g.us",
		Participants: []string{"5511888@s.whatsapp.net", "5511777:3@s.whatsapp.net"},
		Action:       domain.ParticipantAdd,
	})
	require.NoError(t, err)
}

func TestWelcomerIgnoresOtherActionsAndDisabled(t *testing.T) {
	session := mocks.NewMockSession(t)
	update := domain.GroupParticipantsUpdate{
		GroupID:      "120363@g.us",
		Participants: []string{"5511888@s.whatsapp.net"},
		Action:       domain.ParticipantRemove,
	}

	require.NoError(t, NewWelcomer(true, "Welcome {user}", nil).Welcome(context.Background(), session, update))

	update.Action = domain.ParticipantAdd
	require.NoError(t, NewWelcomer(false, "Welcome {user}", nil).Welcome(context.Background(), session, update))
	require.NoError(t, NewWelcomer(true, "  ", nil).Welcome(context.Background(), session, update))

	update.GroupID = "5511999@s.whatsapp.net"
	require.NoError(t, NewWelcomer(true, "Welcome {user}", nil).Welcome(context.Background(), session, update))
}

func TestWelcomerReturnsSendErrors(t *testing.T) {
	session := mocks.NewMockSession(t)
	sendErr := errors.New("gateway unavailable")
	session.EXPECT().SendText(mockAnyContext(), "120363@g.us", "Hi @5511888", []string{"5511888@s.whatsapp.net"}).Return(sendErr)

	err := NewWelcomer(true, "Hi {user}", nil).Welcome(context.Background(), session, domain.GroupParticipantsUpdate{
		GroupID:      "120363@g.us",
		Participants: []string{"5511888@s.whatsapp.net"},
		Action:       domain.ParticipantAdd,
	})
	assert.ErrorIs(t, err, sendErr)
}
