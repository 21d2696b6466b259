package ledger

// Ledger holds a hand's pot and the call value for the current round.
// The call value only moves up between ResetRound calls.
type Ledger struct {
	pot       int64
	callValue int64
}

func New() *Ledger {
	return &Ledger{}
}

func (l *Ledger) Pot() int64 {
	return l.pot
}

func (l *Ledger) CallValue() int64 {
	return l.callValue
}

func (l *Ledger) SetCallValue(v int64) {
	if v < 0 {
		v = 0
	}
	l.callValue = v
}

func (l *Ledger) AddToPot(amount int64) {
	if amount <= 0 {
		return
	}
	l.pot += amount
}

// ResetRound starts a new betting round. The pot carries over.
func (l *Ledger) ResetRound() {
	l.callValue = 0
}
