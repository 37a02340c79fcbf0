package http

import (
	"net/http"
	"time"

	httpmw "github.com/cwrk-planet/rooms-api/internal/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	middlewareChi "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type RouterOptions struct {
	AllowedOrigins []string
	Timeout        time.Duration // 30s по умолчанию
}

func NewRouter(h *Handler, opts RouterOptions) http.Handler {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}

	r := chi.NewRouter()
	r.Use(middlewareChi.RealIP)
	r.Use(httpmw.RequestID)
	r.Use(httpmw.RequestLogger)
	r.Use(middlewareChi.Recoverer)

	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.AllowedOrigins,
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	r.Group(func(pr chi.Router) {
		pr.Use(middlewareChi.Timeout(opts.Timeout))

		pr.Route("/api", func(api chi.Router) {
			api.Get("/room", h.ListRooms)
		})
	})

	// health
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r
}
