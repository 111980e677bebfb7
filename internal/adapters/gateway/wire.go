package gateway

import (
	"time"

	"github.com/bnema/litebot/internal/domain"
	"github.com/bnema/litebot/internal/ports"
)

const (
	frameHello             = "hello"
	frameConnectionUpdate  = "connection.update"
	frameCredsUpdate       = "creds.update"
	frameMessagesUpsert    = "messages.upsert"
	frameGroupParticipants = "group-participants.update"
	frameGetMessage        = "get-message"
	frameGetMessageResult  = "get-message.result"
	frameRetryCounter      = "retry-counter"
	frameRetryCounterReply = "retry-counter.result"
	frameSend              = "send"
	frameSendResult        = "send.result"
)

type helloFrame struct {
	Type                string            `json:"type"`
	Version             [3]int            `json:"version"`
	Browser             [3]string         `json:"browser"`
	QueryTimeoutMS      int64             `json:"query_timeout_ms"`
	KeepAliveMS         int64             `json:"keep_alive_ms"`
	MarkOnlineOnConnect bool              `json:"mark_online_on_connect"`
	SyncHistory         bool              `json:"sync_history"`
	Auth                map[string][]byte `json:"auth"`
}

// frame is the union of every frame the gateway sends or receives.
type frame struct {
	Type      string `json:"type"`
	RequestID string `json:"request_id,omitempty"`

	Connection string           `json:"connection,omitempty"`
	QR         string           `json:"qr,omitempty"`
	Disconnect *disconnectFrame `json:"disconnect,omitempty"`

	// Auth carries changed credential entries; a null entry deletes it.
	Auth map[string][]byte `json:"auth,omitempty"`

	Kind     string         `json:"kind,omitempty"`
	Messages []messageFrame `json:"messages,omitempty"`

	GroupID      string   `json:"group_id,omitempty"`
	Participants []string `json:"participants,omitempty"`
	Action       string   `json:"action,omitempty"`

	Key     *keyFrame     `json:"key,omitempty"`
	Message *messageFrame `json:"message,omitempty"`
	Found   bool          `json:"found,omitempty"`
	Count   int           `json:"count,omitempty"`

	ChatID   string   `json:"chat_id,omitempty"`
	Text     string   `json:"text,omitempty"`
	Mentions []string `json:"mentions,omitempty"`
	Error    string   `json:"error,omitempty"`
}

type disconnectFrame struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message,omitempty"`
}

type keyFrame struct {
	RemoteJID   string `json:"remote_jid"`
	ID          string `json:"id"`
	FromMe      bool   `json:"from_me,omitempty"`
	Participant string `json:"participant,omitempty"`
}

type messageFrame struct {
	Key       keyFrame `json:"key"`
	PushName  string   `json:"push_name,omitempty"`
	Text      string   `json:"text,omitempty"`
	Timestamp int64    `json:"timestamp,omitempty"`
}

func newHello(cfg ports.SessionConfig) helloFrame {
	auth := cfg.Credentials.Entries
	if auth == nil {
		auth = map[string][]byte{}
	}

	return helloFrame{
		Type:                frameHello,
		Version:             cfg.Version,
		Browser:             [3]string{cfg.Browser.Name, cfg.Browser.Platform, cfg.Browser.Version},
		QueryTimeoutMS:      cfg.QueryTimeout.Milliseconds(),
		KeepAliveMS:         cfg.KeepAliveInterval.Milliseconds(),
		MarkOnlineOnConnect: cfg.MarkOnlineOnConnect,
		SyncHistory:         cfg.SyncHistory,
		Auth:                auth,
	}
}

func (f frame) connectionUpdate() domain.ConnectionUpdate {
	update := domain.ConnectionUpdate{
		Connection: domain.Connection(f.Connection),
		QR:         f.QR,
	}
	if f.Disconnect != nil {
		update.Reason = domain.DisconnectReason(f.Disconnect.StatusCode)
		update.Message = f.Disconnect.Message
	}
	return update
}

func (f frame) messageBatch() domain.MessageBatch {
	batch := domain.MessageBatch{
		Kind:     domain.UpsertKind(f.Kind),
		Messages: make([]domain.Message, 0, len(f.Messages)),
	}
	for _, m := range f.Messages {
		batch.Messages = append(batch.Messages, m.toDomain())
	}
	return batch
}

func (f frame) groupParticipants() domain.GroupParticipantsUpdate {
	return domain.GroupParticipantsUpdate{
		GroupID:      f.GroupID,
		Participants: f.Participants,
		Action:       domain.ParticipantAction(f.Action),
	}
}

func (k keyFrame) toDomain() domain.MessageKey {
	return domain.MessageKey{
		ChatID:      k.RemoteJID,
		ID:          k.ID,
		FromMe:      k.FromMe,
		Participant: k.Participant,
	}
}

func (m messageFrame) toDomain() domain.Message {
	msg := domain.Message{
		Key:      m.Key.toDomain(),
		PushName: m.PushName,
		Text:     m.Text,
	}
	if m.Timestamp > 0 {
		msg.Timestamp = time.Unix(m.Timestamp, 0).UTC()
	}
	return msg
}

func fromDomainMessage(msg domain.Message) *messageFrame {
	out := &messageFrame{
		Key: keyFrame{
			RemoteJID:   msg.Key.ChatID,
			ID:          msg.Key.ID,
			FromMe:      msg.Key.FromMe,
			Participant: msg.Key.Participant,
		},
		PushName: msg.PushName,
		Text:     msg.Text,
	}
	if !msg.Timestamp.IsZero() {
		out.Timestamp = msg.Timestamp.Unix()
	}
	return out
}
