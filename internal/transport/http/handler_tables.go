package httptransport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"holdem-dealer/internal/game"
	"holdem-dealer/internal/store"
	"holdem-dealer/internal/table"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// MoveReader lists a table's journal. It is nil when no database is
// configured.
type MoveReader interface {
	ListMoves(ctx context.Context, tableID string, limit, offset int) ([]store.MoveRecord, error)
	PotTotal(ctx context.Context, tableID string) (int64, error)
}

type TableHandlers struct {
	tables *table.Manager
	moves  MoveReader
}

func NewTableHandlers(tables *table.Manager, moves MoveReader) *TableHandlers {
	return &TableHandlers{tables: tables, moves: moves}
}

type seatRequest struct {
	Name    string `json:"name"`
	Balance int64  `json:"balance,omitempty"`
}

type blindRequest struct {
	PlayerID string `json:"player_id"`
	Amount   int64  `json:"amount"`
}

type moveRequest struct {
	PlayerID string `json:"player_id"`
	Action   string `json:"action"`
	Amount   int64  `json:"amount,omitempty"`
}

func (h *TableHandlers) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var opts table.Options
		if err := decodeOptional(r, &opts); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		t, err := h.tables.Create(opts)
		if err != nil {
			writeTableError(w, err)
			return
		}
		metricTableCreateTotal.Add(1)
		WriteJSON(w, http.StatusCreated, t.Snapshot())
	}
}

func (h *TableHandlers) List() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		all := h.tables.List()
		items := make([]table.Snapshot, 0, len(all))
		for _, t := range all {
			items = append(items, t.Snapshot())
		}
		WriteJSON(w, http.StatusOK, map[string]any{"items": items})
	}
}

func (h *TableHandlers) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, ok := h.lookup(w, r)
		if !ok {
			return
		}
		WriteJSON(w, http.StatusOK, t.Snapshot())
	}
}

func (h *TableHandlers) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.tables.Close(chi.URLParam(r, "table_id")); err != nil {
			writeTableError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, map[string]any{"ok": true})
	}
}

func (h *TableHandlers) Seat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, ok := h.lookup(w, r)
		if !ok {
			return
		}
		var req seatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		p, err := t.Seat(req.Name, req.Balance)
		if err != nil {
			writeTableError(w, err)
			return
		}
		WriteJSON(w, http.StatusCreated, p)
	}
}

func (h *TableHandlers) Blind() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, ok := h.lookup(w, r)
		if !ok {
			return
		}
		var req blindRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		snap, err := t.PostBlind(r.Context(), req.PlayerID, req.Amount)
		if err != nil {
			writeTableError(w, err)
			return
		}
		metricBlindPostTotal.Add(1)
		WriteJSON(w, http.StatusOK, snap)
	}
}

func (h *TableHandlers) Move() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metricMoveSubmitTotal.Add(1)
		t, ok := h.lookup(w, r)
		if !ok {
			metricMoveSubmitErrors.Add(1)
			return
		}
		var req moveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			metricMoveSubmitErrors.Add(1)
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		at, err := game.ParseActionType(req.Action)
		if err != nil {
			metricMoveSubmitErrors.Add(1)
			WriteHTTPError(w, http.StatusBadRequest, table.ErrInvalidAction.Error())
			return
		}
		res, err := t.SubmitMove(r.Context(), req.PlayerID, game.Action{Type: at, RiseAmount: req.Amount})
		if err != nil {
			metricMoveSubmitErrors.Add(1)
			writeTableError(w, err)
			return
		}
		if res.Outcome.Status == game.StatusAllIn {
			metricMoveAllInTotal.Add(1)
		}
		WriteJSON(w, http.StatusOK, res)
	}
}

func (h *TableHandlers) ResetRound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, ok := h.lookup(w, r)
		if !ok {
			return
		}
		WriteJSON(w, http.StatusOK, t.ResetRound(r.Context()))
	}
}

func (h *TableHandlers) Journal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, ok := h.lookup(w, r)
		if !ok {
			return
		}
		if h.moves == nil {
			WriteHTTPError(w, http.StatusNotImplemented, "journal_disabled")
			return
		}
		metricJournalQueryTotal.Add(1)
		tableID := t.ID
		limit, offset := ParsePagination(r)
		items, err := h.moves.ListMoves(r.Context(), tableID, limit, offset)
		if err != nil {
			metricJournalQueryErrors.Add(1)
			log.Error().Err(err).Str("table_id", tableID).Msg("list moves failed")
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		potTotal, err := h.moves.PotTotal(r.Context(), tableID)
		if err != nil {
			metricJournalQueryErrors.Add(1)
			log.Error().Err(err).Str("table_id", tableID).Msg("pot total failed")
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		WriteJSON(w, http.StatusOK, map[string]any{"items": items, "pot_total": potTotal, "limit": limit, "offset": offset})
	}
}

func (h *TableHandlers) lookup(w http.ResponseWriter, r *http.Request) (*table.Table, bool) {
	t, err := h.tables.Get(chi.URLParam(r, "table_id"))
	if err != nil {
		writeTableError(w, err)
		return nil, false
	}
	return t, true
}

func writeTableError(w http.ResponseWriter, err error) {
	status, code := table.MapError(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Msg("table request failed")
	}
	WriteHTTPError(w, status, code)
}

// decodeOptional accepts an empty body as the zero value.
func decodeOptional(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == io.EOF {
		return nil
	}
	return err
}
