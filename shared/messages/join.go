package messages

// JoinRequest is sent by a client after connecting.
type JoinRequest struct {
	Version string
	Name    string
}

// JoinAccepted is sent by the server when a client may watch. Pilot is set
// for the one client whose input drives the level.
type JoinAccepted struct {
	ServerName string
	TickRate   int
	Level      string
	Pilot      bool
}

// JoinRejected is sent by the server when a client's join request is rejected.
type JoinRejected struct {
	Reason string
}

// PilotAssigned is sent to a spectator promoted after the pilot left.
type PilotAssigned struct{}
