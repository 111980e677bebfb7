package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisconnectReasonClassify(t *testing.T) {
	tests := []struct {
		name     string
		reason   DisconnectReason
		label    string
		level    NoticeLevel
		terminal bool
	}{
		{name: "logged out is terminal", reason: ReasonLoggedOut, label: "logged_out", level: NoticeError, terminal: true},
		{name: "bad session", reason: ReasonBadSession, label: "bad_session", level: NoticeWarning},
		{name: "connection closed", reason: ReasonConnectionClosed, label: "connection_closed", level: NoticeWarning},
		{name: "connection lost", reason: ReasonConnectionLost, label: "connection_lost", level: NoticeWarning},
		{name: "timed out shares connection lost", reason: ReasonTimedOut, label: "connection_lost", level: NoticeWarning},
		{name: "connection replaced", reason: ReasonConnectionReplaced, label: "connection_replaced", level: NoticeWarning},
		{name: "multidevice mismatch", reason: ReasonMultideviceMismatch, label: "multidevice_mismatch", level: NoticeWarning},
		{name: "forbidden", reason: ReasonForbidden, label: "forbidden", level: NoticeWarning},
		{name: "restart required", reason: ReasonRestartRequired, label: "restart_required", level: NoticeInfo},
		{name: "unavailable service", reason: ReasonUnavailableService, label: "unavailable_service", level: NoticeWarning},
		{name: "unknown code is retried", reason: DisconnectReason(499), label: "unknown", level: NoticeWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category := tt.reason.Classify()
			assert.Equal(t, tt.reason, category.Reason)
			assert.Equal(t, tt.label, category.Label)
			assert.Equal(t, tt.level, category.Level)
			assert.Equal(t, tt.terminal, category.Terminal)
			assert.NotEmpty(t, category.Notice)
		})
	}
}

func TestDisconnectNoticesAreDistinct(t *testing.T) {
	seen := map[string]DisconnectReason{}
	for reason := range disconnectTable {
		notice := reason.Classify().Notice
		other, dup := seen[notice]
		assert.False(t, dup, "reasons %d and %d share notice %q", reason, other, notice)
		seen[notice] = reason
	}
}

func TestUnknownReasonNoticeIncludesCode(t *testing.T) {
	assert.Contains(t, DisconnectReason(999).Classify().Notice, "999")
}

func TestConversationFileID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{name: "direct chat", id: "5511999@s.whatsapp.net", want: "5511999"},
		{name: "group", id: "5511999@g.us", want: "5511999"},
		{name: "bare number", id: "5511999", want: "5511999"},
		{name: "group suffix only at end", id: "a@g.us.b", want: "a@g.us.b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConversationFileID(tt.id))
		})
	}
}

func TestIgnoredChat(t *testing.T) {
	assert.True(t, IgnoredChat("status@broadcast"))
	assert.True(t, IgnoredChat("12345@broadcast"))
	assert.True(t, IgnoredChat("1203630@newsletter"))
	assert.False(t, IgnoredChat("5511999@s.whatsapp.net"))
	assert.False(t, IgnoredChat("5511999@g.us"))
}

func TestUserNumber(t *testing.T) {
	assert.Equal(t, "5511999", UserNumber("5511999@s.whatsapp.net"))
	assert.Equal(t, "5511999", UserNumber("5511999:12@s.whatsapp.net"))
	assert.Equal(t, "5511999", UserNumber("5511999"))
}

func TestCredentialBundleNamesSorted(t *testing.T) {
	bundle := CredentialBundle{Entries: map[string][]byte{"pre-key-2": nil, "creds": nil, "app-state": nil}}

	assert.False(t, bundle.Empty())
	assert.Equal(t, []string{"app-state", "creds", "pre-key-2"}, bundle.Names())
	assert.True(t, CredentialBundle{}.Empty())
}
