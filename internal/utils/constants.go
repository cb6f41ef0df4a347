package utils

const (
	AppName = "sitzy"

	StatusSuccess = "success"
	StatusError   = "error"
)

// InviteTokenBytes is the entropy fed into the URL-safe invitation token.
const InviteTokenBytes = 32
