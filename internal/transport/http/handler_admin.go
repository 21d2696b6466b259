package httptransport

import (
	"context"
	"net/http"
)

// Pinger reports database health. It is nil when no database is configured.
type Pinger interface {
	Ping(ctx context.Context) error
}

func Health(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{"ok": true, "journal": "disabled"}
		if db != nil {
			if err := db.Ping(r.Context()); err != nil {
				WriteJSON(w, http.StatusServiceUnavailable, map[string]any{"ok": false, "journal": "down"})
				return
			}
			resp["journal"] = "up"
		}
		WriteJSON(w, http.StatusOK, resp)
	}
}
