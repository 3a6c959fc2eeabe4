package model

// Seat identifies which side of the board a player occupies.
type Seat string

const (
	SeatPlayerOne Seat = "playerOne"
	SeatPlayerTwo Seat = "playerTwo"
)

// Player is a participant known to the matchmaking queue.
type Player struct {
	ID string
}

// ClientPlayer is the serializable view of a seated player.
type ClientPlayer struct {
	ID    string `json:"name"`
	Seat  Seat   `json:"seat"`
	Color string `json:"color"`
}

// MatchFoundEvent notifies a queued player that a game has been created for
// them.
type MatchFoundEvent struct {
	GameID string `json:"gameId"`
	Seat   Seat   `json:"seat"`
}
