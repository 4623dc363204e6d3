package server

import "github.com/nuggetscustoms/site/auth"

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Page Routes
	RouteIndex        = "/"
	RouteAbout        = "/about"
	RouteClients      = "/clients"
	RoutePastWork     = "/past-work"
	RoutePastWorkItem = "/past-work/{id}"
	RouteContact      = "/contact"

	// Portal Routes
	RoutePortal      = "/portal"
	RouteClientBoard = auth.ClientDestination
	RouteAdminBoard  = auth.AdminDestination

	// Auth API Routes
	RouteAPILogin  = "/api/login"
	RouteAPILogout = "/api/logout"

	// Orders API Routes
	RouteAPIOrders = "/api/orders"
	RouteAPIOrder  = "/api/orders/{id}"

	// Site API Routes
	RouteAPIContact = "/api/contact"
	RouteAPIGallery = "/api/gallery"

	// Static Asset Routes (patterns)
	RouteStatic = "/*"
)

// Site files behind the page routes
const (
	pageIndex       = "index.html"
	pageAbout       = "about.html"
	pageClients     = "clients.html"
	pagePastWork    = "past-work.html"
	pageContact     = "contact.html"
	pagePortal      = "portal.html"
	pageClientBoard = "client-board.html"
	pageAdminBoard  = "admin-board.html"

	galleryDir = "images/work"
)
