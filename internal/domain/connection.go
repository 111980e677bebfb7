package domain

import "time"

type SessionState string

const (
	StateInit           SessionState = "init"
	StateConnecting     SessionState = "connecting"
	StatePairing        SessionState = "pairing"
	StateOpen           SessionState = "open"
	StateClosedRetrying SessionState = "closed_retrying"
	StateClosedTerminal SessionState = "closed_terminal"
)

type Connection string

const (
	ConnectionConnecting Connection = "connecting"
	ConnectionOpen       Connection = "open"
	ConnectionClose      Connection = "close"
)

// ConnectionUpdate carries any combination of a pairing code and a
// connection transition. Reason and Message are only meaningful on close.
type ConnectionUpdate struct {
	Connection Connection
	QR         string
	Reason     DisconnectReason
	Message    string
}

type ProtocolVersion [3]int

// Browser is the identity the session announces as linked device.
type Browser struct {
	Name     string
	Platform string
	Version  string
}

func DefaultBrowser() Browser {
	return Browser{Name: "Chrome", Platform: "Linux", Version: "latest"}
}

const (
	DefaultQueryTimeout      = 60 * time.Second
	DefaultKeepAliveInterval = 60 * time.Second
	DefaultPairingValidity   = 60 * time.Second
)
