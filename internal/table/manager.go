package table

import (
	"fmt"
	"sort"
	"sync"

	"holdem-dealer/internal/config"
	"holdem-dealer/internal/store"

	"github.com/rs/zerolog/log"
)

// Manager keeps every open table in memory. Tables never share state.
type Manager struct {
	mu       sync.RWMutex
	defaults config.TableConfig
	journal  Journal
	tables   map[string]*Table
}

// NewManager returns an empty registry. journal may be nil.
func NewManager(defaults config.TableConfig, journal Journal) *Manager {
	return &Manager{
		defaults: defaults,
		journal:  journal,
		tables:   make(map[string]*Table),
	}
}

// Options overrides the manager defaults for one table. Zero fields keep
// the default.
type Options struct {
	SmallBlind   int64 `json:"small_blind,omitempty"`
	CoinsAtStart int64 `json:"coins_at_start,omitempty"`
	MaxSeats     int   `json:"max_seats,omitempty"`
}

func (m *Manager) Create(opts Options) (*Table, error) {
	cfg := m.defaults
	if opts.SmallBlind != 0 {
		cfg.SmallBlind = opts.SmallBlind
	}
	if opts.CoinsAtStart != 0 {
		cfg.CoinsAtStart = opts.CoinsAtStart
	}
	if opts.MaxSeats != 0 {
		cfg.MaxSeats = opts.MaxSeats
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	t := New(store.NewPrefixedID("tbl"), cfg, m.journal)
	m.mu.Lock()
	m.tables[t.ID] = t
	m.mu.Unlock()
	log.Info().Str("table_id", t.ID).Int64("small_blind", cfg.SmallBlind).Int64("coins_at_start", cfg.CoinsAtStart).Msg("table created")
	return t, nil
}

func (m *Manager) Get(id string) (*Table, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.tables[id]
	if !ok {
		return nil, ErrTableNotFound
	}
	return t, nil
}

// List returns tables oldest first.
func (m *Manager) List() []*Table {
	m.mu.RLock()
	out := make([]*Table, 0, len(m.tables))
	for _, t := range m.tables {
		out = append(out, t)
	}
	m.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *Manager) Close(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tables[id]; !ok {
		return ErrTableNotFound
	}
	delete(m.tables, id)
	log.Info().Str("table_id", id).Msg("table closed")
	return nil
}
