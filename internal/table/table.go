package table

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"holdem-dealer/internal/config"
	"holdem-dealer/internal/game"
	"holdem-dealer/internal/ledger"
	"holdem-dealer/internal/store"

	"github.com/rs/zerolog/log"
)

var (
	ErrTableNotFound   = errors.New("table_not_found")
	ErrPlayerNotFound  = errors.New("player_not_found")
	ErrDuplicatePlayer = errors.New("duplicate_player")
	ErrTableFull       = errors.New("table_full")
	ErrInvalidAction   = errors.New("invalid_action")
	ErrInvalidAmount   = errors.New("invalid_amount")
	ErrInvalidName     = errors.New("invalid_name")
	ErrInvalidConfig   = errors.New("invalid_config")
)

var _ game.Ledger = (*ledger.Ledger)(nil)
var _ game.TurnTracker = (*game.PlayersList)(nil)

// Journal receives every blind, move and round reset applied to a table.
type Journal interface {
	RecordMove(ctx context.Context, m store.MoveRecord) (string, error)
}

// Table is one hand's isolated state. All methods are safe for concurrent
// use; moves on a table are serialized.
type Table struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	cfg      config.TableConfig
	ledger   *ledger.Ledger
	players  *game.PlayersList
	resolver *game.Resolver
	journal  Journal
	moves    int
}

func New(id string, cfg config.TableConfig, journal Journal) *Table {
	l := ledger.New()
	players := game.NewPlayersList()
	return &Table{
		ID:        id,
		CreatedAt: time.Now().UTC(),
		cfg:       cfg,
		ledger:    l,
		players:   players,
		resolver:  game.NewResolver(l, players, cfg.SmallBlind),
		journal:   journal,
	}
}

func (t *Table) Config() config.TableConfig {
	return t.cfg
}

// Seat adds a player. A zero balance means COINS_AT_START.
func (t *Table) Seat(name string, balance int64) (PlayerView, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return PlayerView{}, ErrInvalidName
	}
	if balance < 0 {
		return PlayerView{}, ErrInvalidAmount
	}
	if balance == 0 {
		balance = t.cfg.CoinsAtStart
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.players.Len() >= t.cfg.MaxSeats {
		return PlayerView{}, ErrTableFull
	}
	for _, p := range t.players.All() {
		if strings.EqualFold(p.Name, name) {
			return PlayerView{}, fmt.Errorf("%w: %s", ErrDuplicatePlayer, name)
		}
	}
	p := game.NewPlayer(store.NewPrefixedID("ply"), name, t.players.Len(), balance)
	t.players.Add(p)
	log.Info().Str("table_id", t.ID).Str("player_id", p.ID).Str("name", name).Int64("balance", balance).Msg("player seated")
	return viewOf(p), nil
}

// PostBlind sets the round's call value from a forced bet.
func (t *Table) PostBlind(ctx context.Context, playerID string, amount int64) (Snapshot, error) {
	if amount < 0 {
		return Snapshot{}, ErrInvalidAmount
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	p, ok := t.players.ByID(playerID)
	if !ok {
		return Snapshot{}, ErrPlayerNotFound
	}
	t.resolver.PostInitialBet(p, amount)
	log.Debug().Str("table_id", t.ID).Str("player_id", p.ID).Int64("amount", amount).Msg("blind posted")
	t.record(ctx, store.MoveRecord{PlayerID: p.ID, Kind: store.KindBlind, Amount: amount, Bet: p.Bet})
	return t.snapshotLocked(), nil
}

// MoveResult is what a submitted move changed.
type MoveResult struct {
	TableID   string       `json:"table_id"`
	Player    PlayerView   `json:"player"`
	Action    game.Action  `json:"declared"`
	Outcome   game.Outcome `json:"outcome"`
	Pot       int64        `json:"pot"`
	CallValue int64        `json:"call_value"`
	Sequence  int          `json:"sequence"`
}

// SubmitMove declares a on the player and resolves it.
func (t *Table) SubmitMove(ctx context.Context, playerID string, a game.Action) (MoveResult, error) {
	if !a.Type.Valid() {
		return MoveResult{}, ErrInvalidAction
	}
	if a.RiseAmount < 0 {
		return MoveResult{}, ErrInvalidAmount
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	p, ok := t.players.ByID(playerID)
	if !ok {
		return MoveResult{}, ErrPlayerNotFound
	}

	p.Declare(a)
	out := t.resolver.MakeMove(p)
	t.moves++

	log.Info().
		Str("table_id", t.ID).
		Str("player_id", p.ID).
		Stringer("declared", a).
		Str("status", string(out.Status)).
		Int64("bet", out.Bet).
		Int64("call_value", t.ledger.CallValue()).
		Int64("pot", t.ledger.Pot()).
		Msg("move resolved")

	t.record(ctx, store.MoveRecord{
		PlayerID:   p.ID,
		Kind:       store.KindMove,
		Action:     string(a.Type),
		RiseAmount: a.RiseAmount,
		Status:     string(out.Status),
		Bet:        out.Bet,
		PotDelta:   out.PotDelta,
	})
	return MoveResult{
		TableID:   t.ID,
		Player:    viewOf(p),
		Action:    a,
		Outcome:   out,
		Pot:       t.ledger.Pot(),
		CallValue: t.ledger.CallValue(),
		Sequence:  t.moves,
	}, nil
}

// ResetRound closes the betting round: call value, bets and statuses go
// back to their starting values. The pot is kept.
func (t *Table) ResetRound(ctx context.Context) Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ledger.ResetRound()
	t.players.ResetRound()
	log.Info().Str("table_id", t.ID).Int64("pot", t.ledger.Pot()).Msg("round reset")
	t.record(ctx, store.MoveRecord{Kind: store.KindReset})
	return t.snapshotLocked()
}

func (t *Table) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

// record must be called with mu held. Journal failures are logged, never
// surfaced: the in-memory state is authoritative.
func (t *Table) record(ctx context.Context, m store.MoveRecord) {
	if t.journal == nil {
		return
	}
	m.TableID = t.ID
	m.CallValue = t.ledger.CallValue()
	m.Pot = t.ledger.Pot()
	if _, err := t.journal.RecordMove(ctx, m); err != nil {
		log.Error().Err(err).Str("table_id", t.ID).Str("kind", m.Kind).Msg("journal write failed")
	}
}
