package httptransport

import (
	"expvar"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"holdem-dealer/internal/config"
	"holdem-dealer/internal/table"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

// Deps are the router's collaborators. Journal and DB may be nil.
type Deps struct {
	Tables    *table.Manager
	Journal   MoveReader
	DB        Pinger
	Server    config.ServerConfig
	AccessLog bool
}

func NewRouter(d Deps) *chi.Mux {
	h := NewTableHandlers(d.Tables, d.Journal)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	logged := func(r chi.Router) chi.Router {
		if d.AccessLog {
			return r.With(APILogMiddleware())
		}
		return r.With()
	}

	logged(r).Get("/healthz", Health(d.DB))

	r.Route("/api", func(r chi.Router) {
		if d.AccessLog {
			r.Use(APILogMiddleware())
			r.Use(BodyCaptureMiddleware(d.Server.MaxCaptureBytes))
		}
		r.Get("/tables", h.List())
		r.Post("/tables", h.Create())
		r.Route("/tables/{table_id}", func(r chi.Router) {
			r.Get("/", h.Get())
			r.Delete("/", h.Delete())
			r.Post("/players", h.Seat())
			r.Post("/blinds", h.Blind())
			r.Post("/moves", h.Move())
			r.Get("/moves", h.Journal())
			r.Post("/rounds", h.ResetRound())
		})

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(d.Server.AdminAPIKey))
			r.Get("/debug/vars", expvar.Handler().ServeHTTP)
		})
	})
	return r
}

func LogRoutes(r chi.Router) {
	type routeDef struct {
		Method string
		Path   string
	}
	routes := make([]routeDef, 0, 16)
	err := chi.Walk(r, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, routeDef{Method: method, Path: route})
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("walk routes failed")
		return
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Registered routes (%d):\n", len(routes)))
	for _, rt := range routes {
		b.WriteString(fmt.Sprintf("  %-6s %s\n", rt.Method, rt.Path))
	}
	fmt.Print(b.String())
}
