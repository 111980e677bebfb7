package domain

import "errors"

var (
	ErrLoggedOut     = errors.New("session logged out")
	ErrSessionClosed = errors.New("session closed")
	ErrSendTimeout   = errors.New("timed out waiting for send acknowledgement")
)
