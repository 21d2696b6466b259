package game

// PlayersList is the table's ordered seats. It tracks who moved last; the
// rest of turn ordering is left to the caller.
type PlayersList struct {
	players   []*Player
	lastMoved *Player
}

func NewPlayersList(players ...*Player) *PlayersList {
	return &PlayersList{players: append([]*Player(nil), players...)}
}

func (l *PlayersList) Add(p *Player) {
	l.players = append(l.players, p)
}

func (l *PlayersList) Len() int {
	return len(l.players)
}

// All returns the players in seat order. The slice is a copy.
func (l *PlayersList) All() []*Player {
	return append([]*Player(nil), l.players...)
}

func (l *PlayersList) ByID(id string) (*Player, bool) {
	for _, p := range l.players {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

func (l *PlayersList) SetLastMovedPlayer(p *Player) {
	l.lastMoved = p
}

// LastMovedPlayer returns nil until someone has moved.
func (l *PlayersList) LastMovedPlayer() *Player {
	return l.lastMoved
}

// Next returns the seat after the last mover, wrapping around. Before any
// move it returns the first seat.
func (l *PlayersList) Next() *Player {
	if len(l.players) == 0 {
		return nil
	}
	if l.lastMoved == nil {
		return l.players[0]
	}
	for i, p := range l.players {
		if p == l.lastMoved {
			return l.players[(i+1)%len(l.players)]
		}
	}
	return l.players[0]
}

func (l *PlayersList) ResetRound() {
	for _, p := range l.players {
		p.ResetRound()
	}
	l.lastMoved = nil
}
