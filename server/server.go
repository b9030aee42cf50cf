package server

import (
	"embed"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"business_idea_generator/config"
	"business_idea_generator/generator"
	"business_idea_generator/mailer"
)

//go:embed web
var embeddedStatic embed.FS

// Server wires the proxy endpoints and the form page.
type Server struct {
	genAgent *generator.Agent
	mail     *mailer.Mailer
	cfg      *config.Config
	logger   *slog.Logger
	staticFS http.Handler
}

// New creates a Server. mail may be nil, in which case /send-email answers
// with an error envelope.
func New(genAgent *generator.Agent, mail *mailer.Mailer, cfg *config.Config, logger *slog.Logger) (*Server, error) {
	if genAgent == nil {
		return nil, errors.New("generator agent required")
	}
	if cfg == nil {
		return nil, errors.New("config required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	var static http.FileSystem
	if cfg.StaticDir != "" {
		static = http.Dir(cfg.StaticDir)
	} else {
		sub, err := fs.Sub(embeddedStatic, "web")
		if err != nil {
			return nil, err
		}
		static = http.FS(sub)
	}

	return &Server{
		genAgent: genAgent,
		mail:     mail,
		cfg:      cfg,
		logger:   logger,
		staticFS: http.FileServer(static),
	}, nil
}

// Routes returns the HTTP handler for the whole service.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(RequestID)
	r.Use(Logger(s.logger))
	r.Use(Recoverer(s.logger))
	r.Use(Security(!s.cfg.IsDevelopment()))

	r.Get("/healthz", s.handleHealthz)

	r.Group(func(r chi.Router) {
		r.Use(MaxBodySize(s.cfg.MaxRequestBodySize))
		r.Post("/generate-ideas", s.handleGenerateIdeas)
		r.Post("/send-email", s.handleSendEmail)
	})

	// GET would otherwise fall through to the static catch-all and 404.
	for _, path := range []string{"/generate-ideas", "/send-email"} {
		r.Get(path, postOnly)
	}

	// The file server answers "/" with index.html.
	r.Get("/*", s.staticFS.ServeHTTP)

	r.MethodNotAllowed(methodNotAllowed)
	return r
}
