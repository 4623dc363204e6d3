package server

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/nuggetscustoms/site/auth"
	"github.com/nuggetscustoms/site/contact"
	"github.com/nuggetscustoms/site/gallery"
	"github.com/nuggetscustoms/site/internal/config"
	"github.com/nuggetscustoms/site/orders"
	"github.com/rs/zerolog/log"
)

// Services are the collaborators the HTTP surface delegates to
type Services struct {
	Auth     *auth.AuthorizationService
	Orders   orders.Repo
	Notifier contact.Notifier
	Site     fs.FS // Root of the static site (HTML pages, css, js, images)
}

type Server struct {
	env        string // Environment (e.g., "DEV", "PROD")
	router     chi.Router
	routes     []string
	fileServer http.Handler
	config     config.Config
	auth       *auth.AuthorizationService
	orders     orders.Repo
	notifier   contact.Notifier
	gallery    *gallery.Lister
	site       fs.FS
}

func New(config config.Config, services Services) (*Server, error) {
	if services.Auth == nil {
		return nil, errors.New("[Server New] authorization service is required")
	}
	if services.Orders == nil {
		return nil, errors.New("[Server New] order repo is required")
	}
	if services.Site == nil {
		return nil, errors.New("[Server New] site filesystem is required")
	}
	if services.Notifier == nil {
		services.Notifier = contact.NewWebhookNotifier("", config.GetWebhookTimeout())
	}

	s := &Server{
		env:      config.GetEnv(),
		router:   chi.NewRouter(),
		config:   config,
		auth:     services.Auth,
		orders:   services.Orders,
		notifier: services.Notifier,
		gallery:  gallery.NewLister(services.Site, galleryDir, galleryDir),
		site:     services.Site,
	}
	s.fileServer = http.FileServer(http.FS(services.Site))

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// RegisterRoute mounts handler for method + pattern and records it for the route table.
func (s *Server) RegisterRoute(method, pattern string, handler http.Handler) {
	s.routes = append(s.routes, method+" "+pattern)
	s.router.Method(method, pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	log.Info().Msg(fmt.Sprintf("[%-19s] %s", coloredMethod(method), path))
}

func logError(method, path, error string) {
	log.Error().Msg(fmt.Sprintf("[%-19s] %s %s", coloredMethod(method), path, Red+error+ResetColor))
}

func coloredMethod(method string) string {
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		return color + paddedMethod + ResetColor
	}
	return Gray + paddedMethod + ResetColor
}

// Helper function to determine the scheme (http/https)
func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}
