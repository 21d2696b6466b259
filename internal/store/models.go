package store

import "time"

// Move kinds stored in the journal.
const (
	KindBlind = "blind"
	KindMove  = "move"
	KindReset = "reset"
)

// MoveRecord is one journal row: a blind post, a resolved move, or a round
// reset on a table.
type MoveRecord struct {
	ID         string    `json:"id"`
	TableID    string    `json:"table_id"`
	PlayerID   string    `json:"player_id,omitempty"`
	Kind       string    `json:"kind"`
	Action     string    `json:"action,omitempty"`
	RiseAmount int64     `json:"rise_amount,omitempty"`
	// Amount is the posted blind for KindBlind rows.
	Amount     int64     `json:"amount,omitempty"`
	Status     string    `json:"status,omitempty"`
	Bet        int64     `json:"bet"`
	CallValue  int64     `json:"call_value"`
	PotDelta   int64     `json:"pot_delta"`
	Pot        int64     `json:"pot"`
	CreatedAt  time.Time `json:"created_at"`
}
