package server

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rcweston90/Weight2Plate/internal/plates"
	"github.com/rcweston90/Weight2Plate/internal/storage"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store       storage.Store
	log         *slog.Logger
	apiKey      string
	defaultUnit plates.Unit
	router      chi.Router
}

// New creates a new Server with all routes configured.
func New(store storage.Store, apiKey string, defaultUnit plates.Unit, log *slog.Logger) *Server {
	s := &Server{
		store:       store,
		log:         log,
		apiKey:      apiKey,
		defaultUnit: defaultUnit,
		router:      chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Calculator endpoints (read-only, no auth)
	s.router.Post("/api/v1/calculate", s.handleCalculate)
	s.router.Get("/api/v1/barbells", s.handleBarbells)
	s.router.Get("/api/v1/denominations", s.handleDenominations)
	s.router.Get("/api/v1/chart", s.handleChart)

	// Presets: reads are open, writes require the API key
	s.router.Route("/api/v1/presets", func(r chi.Router) {
		r.Get("/", s.handleListPresets)
		r.Get("/{name}", s.handleGetPreset)
		r.With(APIKeyAuth(s.apiKey)).Put("/{name}", s.handlePutPreset)
		r.With(APIKeyAuth(s.apiKey)).Delete("/{name}", s.handleDeletePreset)
	})
}

// SetFrontend mounts the embedded form page filesystem. Unmatched routes
// serve index.html.
func (s *Server) SetFrontend(webFS fs.FS) {
	fileServer := http.FileServerFS(webFS)

	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		// Try to serve the exact file first
		f, err := webFS.Open(r.URL.Path[1:]) // strip leading /
		if err == nil {
			f.Close()
			fileServer.ServeHTTP(w, r)
			return
		}
		r.URL.Path = "/"
		fileServer.ServeHTTP(w, r)
	})
}
