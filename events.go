package verigo

// EventType identifies a session lifecycle event.
type EventType string

const (
	// EventConnected fires after a successful Connect.
	EventConnected EventType = "connected"

	// EventDisconnected fires when Logout tears down a connected session.
	// Logout on an already-disconnected session fires nothing.
	EventDisconnected EventType = "disconnected"

	// EventProfileRefreshed fires when GetProfile resolves a profile.
	EventProfileRefreshed EventType = "profile_refreshed"
)

// Event carries one session lifecycle notification. DID is the account the
// event concerns: the session's own DID for connect and disconnect, the
// resolved profile's DID for a refresh.
type Event struct {
	Type EventType
	DID  string
}
