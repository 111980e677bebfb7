package domain

import "fmt"

// DisconnectReason is the status code the protocol library reports when a
// session ends.
type DisconnectReason int

const (
	ReasonUnknown             DisconnectReason = 0
	ReasonLoggedOut           DisconnectReason = 401
	ReasonForbidden           DisconnectReason = 403
	ReasonConnectionLost      DisconnectReason = 408
	ReasonMultideviceMismatch DisconnectReason = 411
	ReasonConnectionClosed    DisconnectReason = 428
	ReasonConnectionReplaced  DisconnectReason = 440
	ReasonBadSession          DisconnectReason = 500
	ReasonUnavailableService  DisconnectReason = 503
	ReasonRestartRequired     DisconnectReason = 515
)

// ReasonTimedOut shares its code with ReasonConnectionLost.
const ReasonTimedOut = ReasonConnectionLost

type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeInfo    NoticeLevel = "info"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
	NoticeTutor   NoticeLevel = "tutor"
)

// DisconnectCategory is how a close is presented and whether the
// supervisor may acquire a new session afterwards.
type DisconnectCategory struct {
	Reason   DisconnectReason
	Label    string
	Notice   string
	Level    NoticeLevel
	Terminal bool
}

var disconnectTable = map[DisconnectReason]DisconnectCategory{
	ReasonLoggedOut: {
		Label:    "logged_out",
		Notice:   "Bot disconnected! The device was logged out, pair it again.",
		Level:    NoticeError,
		Terminal: true,
	},
	ReasonBadSession:          {Label: "bad_session", Notice: "Invalid session!", Level: NoticeWarning},
	ReasonConnectionClosed:    {Label: "connection_closed", Notice: "Connection closed!", Level: NoticeWarning},
	ReasonConnectionLost:      {Label: "connection_lost", Notice: "Connection lost!", Level: NoticeWarning},
	ReasonConnectionReplaced:  {Label: "connection_replaced", Notice: "Connection replaced!", Level: NoticeWarning},
	ReasonMultideviceMismatch: {Label: "multidevice_mismatch", Notice: "Incompatible device!", Level: NoticeWarning},
	ReasonForbidden:           {Label: "forbidden", Notice: "Connection forbidden!", Level: NoticeWarning},
	ReasonRestartRequired:     {Label: "restart_required", Notice: "Restart required, reconnecting.", Level: NoticeInfo},
	ReasonUnavailableService:  {Label: "unavailable_service", Notice: "Service unavailable!", Level: NoticeWarning},
}

// Classify maps the raw reason to its category. Unknown codes are retried.
func (r DisconnectReason) Classify() DisconnectCategory {
	category, ok := disconnectTable[r]
	if !ok {
		return DisconnectCategory{
			Reason: r,
			Label:  "unknown",
			Notice: fmt.Sprintf("Connection closed for an unknown reason (code %d)!", int(r)),
			Level:  NoticeWarning,
		}
	}

	category.Reason = r
	return category
}

func (r DisconnectReason) String() string {
	return r.Classify().Label
}
