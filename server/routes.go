package server

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/nuggetscustoms/site/roles"
)

func (s *Server) initRoutes() {
	// Mux-level middleware runs before routing: protected board files are
	// checked before the static file server sees them and CORS preflights
	// are answered for every /api path.
	s.router.Use(
		middleware.RequestID,
		s.RecoverMiddleware,
		s.WWWRedirectMiddleware,
		s.LoggingMiddleware,
		s.FrameSecurityMiddleware,
		s.ProtectedPagesMiddleware,
		s.APICorsMiddleware,
	)

	// PAGES
	s.RegisterRoute(http.MethodGet, RouteIndex, ChainMiddleware(s.pageHandler(pageIndex), s.HTMLMiddleware()...))
	s.RegisterRoute(http.MethodGet, RouteAbout, ChainMiddleware(s.pageHandler(pageAbout), s.HTMLMiddleware()...))
	s.RegisterRoute(http.MethodGet, RouteClients, ChainMiddleware(s.pageHandler(pageClients), s.HTMLMiddleware()...))
	s.RegisterRoute(http.MethodGet, RoutePastWork, ChainMiddleware(s.pageHandler(pagePastWork), s.HTMLMiddleware()...))
	s.RegisterRoute(http.MethodGet, RoutePastWorkItem, ChainMiddleware(s.pageHandler(pagePastWork), s.HTMLMiddleware()...))
	s.RegisterRoute(http.MethodGet, RouteContact, ChainMiddleware(s.pageHandler(pageContact), s.HTMLMiddleware()...))

	// PORTAL
	s.RegisterRoute(http.MethodGet, RoutePortal, ChainMiddleware(s.pageHandler(pagePortal), s.HTMLMiddleware()...))
	s.RegisterRoute(http.MethodGet, RouteClientBoard, ChainMiddleware(s.pageHandler(pageClientBoard), s.HTMLMiddleware(s.RequirePageRole(roles.Client))...))
	s.RegisterRoute(http.MethodGet, RouteAdminBoard, ChainMiddleware(s.pageHandler(pageAdminBoard), s.HTMLMiddleware(s.RequirePageRole(roles.Admin))...))

	// AUTH API
	s.RegisterRoute(http.MethodPost, RouteAPILogin, ChainMiddleware(s.LoginHandler(), s.APIMiddleware()...))
	s.RegisterRoute(http.MethodGet, RouteAPILogout, ChainMiddleware(s.LogoutHandler(), s.APIMiddleware()...))

	// ORDERS API
	s.RegisterRoute(http.MethodGet, RouteAPIOrders, ChainMiddleware(s.ListOrdersHandler(), s.APIMiddleware(s.RequireAPIRole(roles.Client))...))
	s.RegisterRoute(http.MethodPost, RouteAPIOrders, ChainMiddleware(s.CreateOrderHandler(), s.APIMiddleware(s.RequireAPIRole(roles.Admin))...))
	s.RegisterRoute(http.MethodPatch, RouteAPIOrder, ChainMiddleware(s.UpdateOrderHandler(), s.APIMiddleware(s.RequireAPIRole(roles.Admin))...))
	s.RegisterRoute(http.MethodDelete, RouteAPIOrder, ChainMiddleware(s.DeleteOrderHandler(), s.APIMiddleware(s.RequireAPIRole(roles.Admin))...))

	// SITE API
	s.RegisterRoute(http.MethodPost, RouteAPIContact, ChainMiddleware(s.ContactHandler(), s.APIMiddleware()...))
	s.RegisterRoute(http.MethodGet, RouteAPIGallery, ChainMiddleware(s.GalleryHandler(), s.APIMiddleware()...))

	// STATIC
	s.RegisterRoute(http.MethodGet, RouteStatic, ChainMiddleware(s.serveFileHandler(), s.StaticMiddleware()...))
	s.router.NotFound(s.notFound)
}

