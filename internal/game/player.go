package game

// DecisionSource produces the action a player declares when asked to move.
type DecisionSource interface {
	NextAction(p *Player) Action
}

// DecisionFunc adapts a function to DecisionSource.
type DecisionFunc func(p *Player) Action

func (f DecisionFunc) NextAction(p *Player) Action { return f(p) }

// Player holds one seat's money and status for the current hand.
// Balance is the stack available this round; the resolver reads it but
// never decrements it.
type Player struct {
	ID      string
	Name    string
	Seat    int
	Balance int64
	Bet     int64
	Status  PlayerStatus

	source   DecisionSource
	declared Action
}

func NewPlayer(id, name string, seat int, balance int64) *Player {
	return &Player{
		ID:      id,
		Name:    name,
		Seat:    seat,
		Balance: balance,
		Status:  StatusPending,
	}
}

// SetDecisionSource installs the source consulted by Move.
func (p *Player) SetDecisionSource(src DecisionSource) {
	p.source = src
}

// Declare records the action Move returns when no decision source is set.
func (p *Player) Declare(a Action) {
	p.declared = a
}

// Move returns the player's declared action.
func (p *Player) Move() Action {
	if p.source != nil {
		return p.source.NextAction(p)
	}
	return p.declared
}

func (p *Player) SetBet(bet int64) {
	p.Bet = bet
}

func (p *Player) SetStatus(s PlayerStatus) {
	p.Status = s
}

// ResetRound clears per-round state. Balance is left alone.
func (p *Player) ResetRound() {
	p.Bet = 0
	p.Status = StatusPending
	p.declared = Action{}
}
