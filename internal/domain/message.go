package domain

import (
	"strings"
	"time"
)

const (
	GroupSuffix      = "@g.us"
	UserSuffix       = "@s.whatsapp.net"
	BroadcastSuffix  = "@broadcast"
	StatusBroadcast  = "status@broadcast"
	NewsletterSuffix = "@newsletter"
)

type MessageKey struct {
	ChatID      string
	ID          string
	FromMe      bool
	Participant string
}

type Message struct {
	Key       MessageKey
	PushName  string
	Text      string
	Timestamp time.Time
}

type UpsertKind string

const (
	UpsertNotify UpsertKind = "notify"
	UpsertAppend UpsertKind = "append"
)

type MessageBatch struct {
	Kind     UpsertKind
	Messages []Message
}

type ParticipantAction string

const (
	ParticipantAdd     ParticipantAction = "add"
	ParticipantRemove  ParticipantAction = "remove"
	ParticipantPromote ParticipantAction = "promote"
	ParticipantDemote  ParticipantAction = "demote"
)

type GroupParticipantsUpdate struct {
	GroupID      string
	Participants []string
	Action       ParticipantAction
}

func IsGroupID(id string) bool {
	return strings.HasSuffix(id, GroupSuffix)
}

func IsBroadcastID(id string) bool {
	return strings.HasSuffix(id, BroadcastSuffix)
}

func IsStatusBroadcastID(id string) bool {
	return id == StatusBroadcast
}

func IsNewsletterID(id string) bool {
	return strings.HasSuffix(id, NewsletterSuffix)
}

// IgnoredChat reports chats the session never delivers: broadcast lists,
// status updates and newsletters.
func IgnoredChat(id string) bool {
	return IsBroadcastID(id) || IsStatusBroadcastID(id) || IsNewsletterID(id)
}

// UserNumber returns the numeric part of a user id ("5511999@s.whatsapp.net"
// -> "5511999"), dropping any device suffix.
func UserNumber(id string) string {
	number, _, _ := strings.Cut(id, "@")
	number, _, _ = strings.Cut(number, ":")
	return number
}
