package store

import (
	"context"
	"time"
)

func (s *Store) RecordMove(ctx context.Context, m MoveRecord) (string, error) {
	if m.ID == "" {
		m.ID = NewID()
	}
	_, err := s.Pool.Exec(ctx, `INSERT INTO table_moves
		(id, table_id, player_id, kind, action, rise_amount, amount, status, bet, call_value, pot_delta, pot)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		m.ID, m.TableID, m.PlayerID, m.Kind, m.Action, m.RiseAmount, m.Amount, m.Status, m.Bet, m.CallValue, m.PotDelta, m.Pot)
	if err != nil {
		return "", err
	}
	return m.ID, nil
}

// ListMoves returns a table's journal oldest first.
func (s *Store) ListMoves(ctx context.Context, tableID string, limit, offset int) ([]MoveRecord, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := s.Pool.Query(ctx, `SELECT id, table_id, player_id, kind, action, rise_amount, amount, status, bet, call_value, pot_delta, pot, created_at
		FROM table_moves WHERE table_id = $1 ORDER BY id ASC LIMIT $2 OFFSET $3`, tableID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]MoveRecord, 0, limit)
	for rows.Next() {
		var m MoveRecord
		var created time.Time
		if err := rows.Scan(&m.ID, &m.TableID, &m.PlayerID, &m.Kind, &m.Action, &m.RiseAmount, &m.Amount, &m.Status,
			&m.Bet, &m.CallValue, &m.PotDelta, &m.Pot, &created); err != nil {
			return nil, err
		}
		m.CreatedAt = created
		out = append(out, m)
	}
	return out, rows.Err()
}

// PotTotal sums the pot contributions journaled for a table.
func (s *Store) PotTotal(ctx context.Context, tableID string) (int64, error) {
	var total int64
	err := s.Pool.QueryRow(ctx, `SELECT COALESCE(SUM(pot_delta), 0)::BIGINT FROM table_moves WHERE table_id = $1`, tableID).Scan(&total)
	return total, err
}
