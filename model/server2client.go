package model

// ServerMessage is one gob encoded websocket frame sent to a client.
type ServerMessage struct {
	Setup  []Setup
	States []Snapshot
}

// Setup is sent once, before any state.
type Setup struct {
	SessionId  string
	Variant    string
	Cols, Rows int
	Tokens     []TokenKind
	Hazards    []HazardKind
}

type ClientMessage struct {
	Action Action
}

func NewSetup(sessionId string, bp *Blueprint) Setup {
	return Setup{
		SessionId: sessionId,
		Variant:   bp.Name,
		Cols:      bp.Grid.Cols,
		Rows:      bp.Grid.Rows,
		Tokens:    bp.Tokens.Kinds(),
		Hazards:   bp.Hazards.Kinds(),
	}
}
