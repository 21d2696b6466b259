package game

// PlayerStatus is the recorded outcome of a player's last move. It mirrors
// ActionType but can differ from what was declared: a rise or call the
// player cannot afford is recorded as StatusAllIn.
type PlayerStatus string

const (
	StatusPending PlayerStatus = "pending"
	StatusFold    PlayerStatus = "fold"
	StatusCheck   PlayerStatus = "check"
	StatusCall    PlayerStatus = "call"
	StatusRise    PlayerStatus = "rise"
	StatusAllIn   PlayerStatus = "allin"
)

// StatusFor maps a declared action to the status it records. allIn reports
// whether the resolved bet consumed the player's whole balance, which
// overrides the declared action.
func StatusFor(t ActionType, allIn bool) PlayerStatus {
	if allIn {
		return StatusAllIn
	}
	switch t {
	case ActionFold:
		return StatusFold
	case ActionCheck:
		return StatusCheck
	case ActionCall:
		return StatusCall
	case ActionRise:
		return StatusRise
	case ActionAllIn:
		return StatusAllIn
	default:
		return StatusPending
	}
}

// Acted reports whether the status was produced by a move this round.
func (s PlayerStatus) Acted() bool {
	return s != "" && s != StatusPending
}
