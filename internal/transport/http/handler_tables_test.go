package httptransport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"holdem-dealer/internal/config"
	"holdem-dealer/internal/store"
	"holdem-dealer/internal/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJournal struct {
	records []store.MoveRecord
	err     error
}

func (f *fakeJournal) RecordMove(_ context.Context, m store.MoveRecord) (string, error) {
	f.records = append(f.records, m)
	return store.NewID(), nil
}

func (f *fakeJournal) ListMoves(_ context.Context, tableID string, limit, offset int) ([]store.MoveRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []store.MoveRecord{}
	for _, m := range f.records {
		if m.TableID == tableID {
			out = append(out, m)
		}
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeJournal) PotTotal(_ context.Context, tableID string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var total int64
	for _, m := range f.records {
		if m.TableID == tableID {
			total += m.PotDelta
		}
	}
	return total, nil
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func newTestRouter(t *testing.T, j *fakeJournal) http.Handler {
	t.Helper()
	cfg := config.TableConfig{SmallBlind: 20, CoinsAtStart: 1000, MaxSeats: 6}
	deps := Deps{Server: config.ServerConfig{AdminAPIKey: "admin"}}
	if j != nil {
		deps.Tables = table.NewManager(cfg, j)
		deps.Journal = j
	} else {
		deps.Tables = table.NewManager(cfg, nil)
	}
	return NewRouter(deps)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any, out any) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if out != nil && w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	}
	return w.Code
}

func createTableWithPlayers(t *testing.T, h http.Handler) (string, string, string) {
	t.Helper()
	var snap table.Snapshot
	require.Equal(t, http.StatusCreated, doJSON(t, h, http.MethodPost, "/api/tables", nil, &snap))
	var a, b table.PlayerView
	require.Equal(t, http.StatusCreated, doJSON(t, h, http.MethodPost, "/api/tables/"+snap.TableID+"/players", seatRequest{Name: "alice"}, &a))
	require.Equal(t, http.StatusCreated, doJSON(t, h, http.MethodPost, "/api/tables/"+snap.TableID+"/players", seatRequest{Name: "bob", Balance: 300}, &b))
	return snap.TableID, a.ID, b.ID
}

func TestCreateTableDefaults(t *testing.T) {
	h := newTestRouter(t, nil)

	var snap table.Snapshot
	code := doJSON(t, h, http.MethodPost, "/api/tables", table.Options{SmallBlind: 25}, &snap)

	require.Equal(t, http.StatusCreated, code)
	assert.NotEmpty(t, snap.TableID)
	assert.Equal(t, int64(25), snap.SmallBlind)
	assert.Equal(t, int64(50), snap.MinRaise)
}

func TestCreateTableRejectsBadOptions(t *testing.T) {
	h := newTestRouter(t, nil)

	var resp map[string]any
	code := doJSON(t, h, http.MethodPost, "/api/tables", table.Options{MaxSeats: 1}, &resp)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "invalid_config", resp["error"])
}

func TestMoveFlow(t *testing.T) {
	j := &fakeJournal{}
	h := newTestRouter(t, j)
	tableID, alice, bob := createTableWithPlayers(t, h)
	base := "/api/tables/" + tableID

	var snap table.Snapshot
	require.Equal(t, http.StatusOK, doJSON(t, h, http.MethodPost, base+"/blinds", blindRequest{PlayerID: alice, Amount: 40}, &snap))
	assert.Equal(t, int64(40), snap.CallValue)

	var res table.MoveResult
	require.Equal(t, http.StatusOK, doJSON(t, h, http.MethodPost, base+"/moves", moveRequest{PlayerID: alice, Action: "raise", Amount: 500}, &res))
	assert.Equal(t, int64(500), res.Outcome.Bet)
	assert.Equal(t, "rise", string(res.Outcome.Status))
	assert.Equal(t, int64(500), res.CallValue)

	require.Equal(t, http.StatusOK, doJSON(t, h, http.MethodPost, base+"/moves", moveRequest{PlayerID: bob, Action: "call"}, &res))
	assert.Equal(t, "allin", string(res.Outcome.Status))
	assert.Equal(t, int64(300), res.Pot)

	require.Equal(t, http.StatusOK, doJSON(t, h, http.MethodGet, base, nil, &snap))
	assert.Equal(t, bob, snap.LastMovedID)
	assert.Equal(t, 2, snap.Moves)

	var page struct {
		Items    []store.MoveRecord `json:"items"`
		PotTotal int64              `json:"pot_total"`
	}
	require.Equal(t, http.StatusOK, doJSON(t, h, http.MethodGet, base+"/moves?limit=10", nil, &page))
	require.Len(t, page.Items, 3)
	assert.Equal(t, int64(300), page.PotTotal)
	assert.Equal(t, store.KindBlind, page.Items[0].Kind)

	require.Equal(t, http.StatusOK, doJSON(t, h, http.MethodPost, base+"/rounds", nil, &snap))
	assert.Zero(t, snap.CallValue)
	assert.Equal(t, int64(300), snap.Pot)
}

func TestMoveErrors(t *testing.T) {
	h := newTestRouter(t, nil)
	tableID, alice, _ := createTableWithPlayers(t, h)
	base := "/api/tables/" + tableID

	tests := []struct {
		name   string
		path   string
		body   any
		status int
		code   string
	}{
		{"unknown table", "/api/tables/nope/moves", moveRequest{PlayerID: alice, Action: "call"}, http.StatusNotFound, "table_not_found"},
		{"unknown player", base + "/moves", moveRequest{PlayerID: "ghost", Action: "call"}, http.StatusNotFound, "player_not_found"},
		{"unknown action", base + "/moves", moveRequest{PlayerID: alice, Action: "shove"}, http.StatusBadRequest, "invalid_action"},
		{"negative rise", base + "/moves", moveRequest{PlayerID: alice, Action: "rise", Amount: -1}, http.StatusBadRequest, "invalid_amount"},
		{"bad json", base + "/moves", "not an object", http.StatusBadRequest, "invalid_json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp map[string]any
			code := doJSON(t, h, http.MethodPost, tt.path, tt.body, &resp)
			assert.Equal(t, tt.status, code)
			assert.Equal(t, tt.code, resp["error"])
		})
	}
}

func TestSeatDuplicate(t *testing.T) {
	h := newTestRouter(t, nil)
	tableID, _, _ := createTableWithPlayers(t, h)

	var resp map[string]any
	code := doJSON(t, h, http.MethodPost, "/api/tables/"+tableID+"/players", seatRequest{Name: "Alice"}, &resp)

	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "duplicate_player", resp["error"])
}

func TestJournalDisabledWithoutStore(t *testing.T) {
	h := newTestRouter(t, nil)
	tableID, _, _ := createTableWithPlayers(t, h)

	var resp map[string]any
	code := doJSON(t, h, http.MethodGet, "/api/tables/"+tableID+"/moves", nil, &resp)

	assert.Equal(t, http.StatusNotImplemented, code)
	assert.Equal(t, "journal_disabled", resp["error"])
}

func TestJournalUnknownTable(t *testing.T) {
	h := newTestRouter(t, &fakeJournal{})

	var resp map[string]any
	code := doJSON(t, h, http.MethodGet, "/api/tables/nope/moves", nil, &resp)

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "table_not_found", resp["error"])
}

func TestJournalQueryFailure(t *testing.T) {
	j := &fakeJournal{err: errors.New("db down")}
	h := newTestRouter(t, j)
	tableID, _, _ := createTableWithPlayers(t, h)

	var resp map[string]any
	code := doJSON(t, h, http.MethodGet, "/api/tables/"+tableID+"/moves", nil, &resp)

	assert.Equal(t, http.StatusInternalServerError, code)
}

func TestListAndDeleteTables(t *testing.T) {
	h := newTestRouter(t, nil)
	tableID, _, _ := createTableWithPlayers(t, h)

	var list struct {
		Items []table.Snapshot `json:"items"`
	}
	require.Equal(t, http.StatusOK, doJSON(t, h, http.MethodGet, "/api/tables", nil, &list))
	require.Len(t, list.Items, 1)
	assert.Len(t, list.Items[0].Players, 2)

	require.Equal(t, http.StatusOK, doJSON(t, h, http.MethodDelete, "/api/tables/"+tableID, nil, nil))
	assert.Equal(t, http.StatusNotFound, doJSON(t, h, http.MethodGet, "/api/tables/"+tableID, nil, nil))
}

func TestDebugVarsRequiresAdminKey(t *testing.T) {
	h := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/debug/vars", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/debug/vars", nil)
	req.Header.Set("X-Admin-Key", "admin")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "move_submit_total")
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name   string
		db     Pinger
		status int
	}{
		{"no journal", nil, http.StatusOK},
		{"journal up", fakePinger{}, http.StatusOK},
		{"journal down", fakePinger{err: errors.New("down")}, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewRouter(Deps{Tables: table.NewManager(config.TableConfig{MaxSeats: 2}, nil), DB: tt.db})
			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
