package table

import (
	"time"

	"holdem-dealer/internal/game"
)

type PlayerView struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	Seat    int               `json:"seat"`
	Balance int64             `json:"balance"`
	Bet     int64             `json:"bet"`
	Status  game.PlayerStatus `json:"status"`
	Acted   bool              `json:"acted"`
	// Legal is advisory; see game.Resolver.LegalActions.
	Legal   []game.ActionType `json:"legal_actions,omitempty"`
}

type Snapshot struct {
	TableID      string       `json:"table_id"`
	SmallBlind   int64        `json:"small_blind"`
	MinRaise     int64        `json:"min_raise"`
	Pot          int64        `json:"pot"`
	CallValue    int64        `json:"call_value"`
	Players      []PlayerView `json:"players"`
	LastMovedID  string       `json:"last_moved_player_id,omitempty"`
	NextPlayerID string       `json:"next_player_id,omitempty"`
	Moves        int          `json:"moves"`
	CreatedAt    time.Time    `json:"created_at"`
}

func viewOf(p *game.Player) PlayerView {
	return PlayerView{
		ID:      p.ID,
		Name:    p.Name,
		Seat:    p.Seat,
		Balance: p.Balance,
		Bet:     p.Bet,
		Status:  p.Status,
		Acted:   p.Status.Acted(),
	}
}

func (t *Table) snapshotLocked() Snapshot {
	all := t.players.All()
	views := make([]PlayerView, 0, len(all))
	for _, p := range all {
		v := viewOf(p)
		v.Legal = t.resolver.LegalActions(game.Stake{Balance: p.Balance, Bet: p.Bet}, t.ledger.CallValue())
		views = append(views, v)
	}
	s := Snapshot{
		TableID:    t.ID,
		SmallBlind: t.cfg.SmallBlind,
		MinRaise:   t.resolver.MinRaise(),
		Pot:        t.ledger.Pot(),
		CallValue:  t.ledger.CallValue(),
		Players:    views,
		Moves:      t.moves,
		CreatedAt:  t.CreatedAt,
	}
	if p := t.players.LastMovedPlayer(); p != nil {
		s.LastMovedID = p.ID
	}
	if p := t.players.Next(); p != nil {
		s.NextPlayerID = p.ID
	}
	return s
}
