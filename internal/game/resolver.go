package game

// Ledger is the table-level money state the resolver reads and updates.
type Ledger interface {
	CallValue() int64
	SetCallValue(v int64)
	AddToPot(amount int64)
}

// TurnTracker is told who acted after every resolved move.
type TurnTracker interface {
	SetLastMovedPlayer(p *Player)
}

// Stake is the part of a player's state a decision depends on.
type Stake struct {
	Balance int64
	Bet     int64
}

// Outcome is the result of resolving one action. The caller applies it.
type Outcome struct {
	Bet          int64        `json:"bet"`
	Status       PlayerStatus `json:"status"`
	SetCallValue bool         `json:"set_call_value"`
	CallValue    int64        `json:"call_value,omitempty"`
	PotDelta     int64        `json:"pot_delta"`
	NotifyTurn   bool         `json:"notify_turn"`
}

// Resolver turns declared actions into bet, status and ledger changes.
// It is not safe for concurrent use against the same ledger.
type Resolver struct {
	ledger     Ledger
	turns      TurnTracker
	smallBlind int64
}

func NewResolver(ledger Ledger, turns TurnTracker, smallBlind int64) *Resolver {
	if smallBlind < 0 {
		smallBlind = 0
	}
	return &Resolver{ledger: ledger, turns: turns, smallBlind: smallBlind}
}

// MinRaise is the smallest increment a rise can add: two small blinds.
func (r *Resolver) MinRaise() int64 {
	return 2 * r.smallBlind
}

// PostInitialBet establishes the round's call value from a forced blind.
// Player state is not touched.
func (r *Resolver) PostInitialBet(_ *Player, amount int64) {
	if amount < 0 {
		amount = 0
	}
	r.ledger.SetCallValue(amount)
}

// MakeMove resolves p's declared action, applies the outcome and reports p
// as the last mover.
func (r *Resolver) MakeMove(p *Player) Outcome {
	action := p.Move()
	out := r.Decide(action, Stake{Balance: p.Balance, Bet: p.Bet}, r.ledger.CallValue())
	r.Apply(p, out)
	return out
}

// Apply writes an outcome to the player, the ledger and the turn tracker.
func (r *Resolver) Apply(p *Player, out Outcome) {
	p.SetBet(out.Bet)
	p.SetStatus(out.Status)
	if out.SetCallValue {
		r.ledger.SetCallValue(out.CallValue)
	}
	if out.PotDelta > 0 {
		r.ledger.AddToPot(out.PotDelta)
	}
	if out.NotifyTurn && r.turns != nil {
		r.turns.SetLastMovedPlayer(p)
	}
}

// Decide is the pure part of MakeMove.
func (r *Resolver) Decide(a Action, st Stake, callValue int64) Outcome {
	st.Balance = max(st.Balance, 0)
	st.Bet = max(st.Bet, 0)
	callValue = max(callValue, 0)

	out := Outcome{Bet: st.Bet, NotifyTurn: true}
	switch a.Type {
	case ActionFold, ActionCheck:
		out.Status = StatusFor(a.Type, false)
	case ActionCall:
		if st.Balance < callValue {
			out.Bet = st.Balance
			out.Status = StatusFor(ActionCall, true)
			out.PotDelta = st.Balance
			return out
		}
		// A call never lowers a bet already above the call value.
		out.Bet = max(st.Bet, callValue)
		out.Status = StatusFor(ActionCall, false)
	case ActionRise:
		desired := r.riseTarget(a.RiseAmount, st.Bet, callValue)
		if desired >= st.Balance {
			out.Bet = st.Balance
			out.Status = StatusFor(ActionRise, true)
			return out
		}
		out.Bet = desired
		out.Status = StatusFor(ActionRise, false)
		out.SetCallValue = true
		out.CallValue = desired
	case ActionAllIn:
		out.Bet = st.Balance
		out.Status = StatusFor(ActionAllIn, true)
	default:
		// Undeclared moves leave the player pending but still count as a turn.
		out.Status = StatusPending
	}
	return out
}

// riseTarget returns the total bet a rise asks for. A player with money
// already in this round adds the raise on top of it; otherwise the raise is
// measured from zero. Either way the result clears the current call value
// by at least the minimum raise.
func (r *Resolver) riseTarget(requested, bet, callValue int64) int64 {
	raise := max(requested, r.MinRaise())
	floor := callValue + r.MinRaise()
	if bet > 0 {
		return max(bet+raise, floor)
	}
	return max(raise, floor)
}
