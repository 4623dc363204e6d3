package server_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/nuggetscustoms/site/auth"
	"github.com/nuggetscustoms/site/contact"
	"github.com/nuggetscustoms/site/internal/config"
	"github.com/nuggetscustoms/site/orders"
	"github.com/nuggetscustoms/site/orders/filerepo"
	"github.com/nuggetscustoms/site/server"
	"github.com/nuggetscustoms/site/sessions"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

const (
	testClientSecret = "client-pass"
	testAdminSecret  = "admin-pass"
	testOrigin       = "https://nuggets.example"
)

// envelope covers every API response shape
type envelope struct {
	OK       bool           `json:"ok"`
	Error    string         `json:"error"`
	Details  string         `json:"details"`
	Role     string         `json:"role"`
	Redirect string         `json:"redirect"`
	ID       string         `json:"id"`
	Order    orders.Order   `json:"order"`
	Orders   []orders.Order `json:"orders"`
	Items    []struct {
		File string `json:"file"`
		URL  string `json:"url"`
		ID   string `json:"id"`
	} `json:"items"`
}

type serverFixture struct {
	t           *testing.T
	server      *server.Server
	orders      *filerepo.Repo
	sessionRepo *sessions.InMemoryRepo
}

func testSite() fstest.MapFS {
	page := func(body string) *fstest.MapFile { return &fstest.MapFile{Data: []byte(body)} }
	return fstest.MapFS{
		"index.html":               page("<h1>home</h1>"),
		"about.html":               page("<h1>about</h1>"),
		"clients.html":             page("<h1>clients</h1>"),
		"past-work.html":           page("<h1>past work</h1>"),
		"contact.html":             page("<h1>contact</h1>"),
		"portal.html":              page("<h1>portal</h1>"),
		"client-board.html":        page("<h1>client board</h1>"),
		"admin-board.html":         page("<h1>admin board</h1>"),
		"404.html":                 page("<h1>lost</h1>"),
		"terms.html":               page("<h1>terms</h1>"),
		"css/site.css":             page("body{}"),
		".env":                     page("SECRET=1"),
		"images/work/work-2.png":   page("png"),
		"images/work/work-10.png":  page("png"),
		"images/work/logo.png":     page("png"),
		"images/work/work-1.txt":   page("txt"),
		"images/icons/favicon.ico": page("ico"),
	}
}

func setupServerFixture(t *testing.T, webhookURL string) *serverFixture {
	t.Helper()

	t.Setenv("ENV", "TEST")
	t.Setenv("CLIENT_SECRET", testClientSecret)
	t.Setenv("ADMIN_SECRET", testAdminSecret)
	t.Setenv("DISCORD_WEBHOOK_URL", webhookURL)
	t.Setenv("ALLOWED_ORIGINS", testOrigin)
	cfg := config.New()

	f := &serverFixture{t: t, sessionRepo: sessions.NewInMemoryRepo()}

	authService, err := auth.NewAuthorizationService(f.sessionRepo, cfg)
	require.NoError(t, err)

	f.orders, err = filerepo.New(filepath.Join(t.TempDir(), "orders.json"))
	require.NoError(t, err)

	f.server, err = server.New(cfg, server.Services{
		Auth:     authService,
		Orders:   f.orders,
		Notifier: contact.NewWebhookNotifier(webhookURL, cfg.GetWebhookTimeout()),
		Site:     testSite(),
	})
	require.NoError(t, err)
	return f
}

func (f *serverFixture) do(method, target, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	f.t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if strings.HasPrefix(body, "{") {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)
	return rec
}

func (f *serverFixture) login(secret string) []*http.Cookie {
	f.t.Helper()

	rec := f.do(http.MethodPost, server.RouteAPILogin, `{"secret":"`+secret+`"}`)
	require.Equal(f.t, http.StatusOK, rec.Code, rec.Body.String())
	return rec.Result().Cookies()
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestNew_RequiresServices(t *testing.T) {
	cfg := config.New()
	_, err := server.New(cfg, server.Services{})
	require.Error(t, err)
}

func TestPages(t *testing.T) {
	f := setupServerFixture(t, "")

	tests := []struct {
		name   string
		target string
		status int
		body   string
	}{
		{"home", "/", http.StatusOK, "home"},
		{"about", "/about", http.StatusOK, "about"},
		{"clients", "/clients", http.StatusOK, "clients"},
		{"past work", "/past-work", http.StatusOK, "past work"},
		{"past work item", "/past-work/work-3", http.StatusOK, "past work"},
		{"contact", "/contact", http.StatusOK, "contact"},
		{"portal", "/portal", http.StatusOK, "portal"},
		{"clean path fallback", "/terms", http.StatusOK, "terms"},
		{"html file", "/terms.html", http.StatusOK, "terms"},
		{"stylesheet", "/css/site.css", http.StatusOK, "body{}"},
		{"missing page", "/nope", http.StatusNotFound, "lost"},
		{"dot file", "/.env", http.StatusNotFound, "lost"},
		{"directory listing", "/images/work/", http.StatusNotFound, "lost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(http.MethodGet, tt.target, "")
			require.Equal(t, tt.status, rec.Code)
			require.Contains(t, rec.Body.String(), tt.body)
			require.Equal(t, "SAMEORIGIN", rec.Header().Get("X-Frame-Options"))
		})
	}
}

func TestPages_WWWRedirect(t *testing.T) {
	f := setupServerFixture(t, "")

	req := httptest.NewRequest(http.MethodGet, "/about", nil)
	req.Host = "www.nuggets.example"
	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusMovedPermanently, rec.Code)
	require.Equal(t, "https://nuggets.example/about", rec.Header().Get("Location"))
}

func TestProtectedPages(t *testing.T) {
	f := setupServerFixture(t, "")
	clientCookies := f.login(testClientSecret)
	adminCookies := f.login(testAdminSecret)

	t.Run("anonymous callers are sent to the portal", func(t *testing.T) {
		for _, target := range []string{
			"/client-board", "/client-board.html", "/client-board/",
			"/admin-board", "/admin-board.html", "/ADMIN-BOARD.HTML", "/css/../admin-board.html",
		} {
			rec := f.do(http.MethodGet, target, "")
			require.Equal(t, http.StatusSeeOther, rec.Code, target)
			require.Equal(t, server.RoutePortal, rec.Header().Get("Location"), target)
			require.NotContains(t, rec.Body.String(), "board</h1>", target)
		}
	})

	t.Run("client reaches the client board only", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/client-board", "", clientCookies...)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "client board")

		rec = f.do(http.MethodGet, "/client-board.html", "", clientCookies...)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "client board")

		for _, target := range []string{"/admin-board", "/admin-board.html"} {
			rec = f.do(http.MethodGet, target, "", clientCookies...)
			require.Equal(t, http.StatusSeeOther, rec.Code, target)
			require.Equal(t, server.RoutePortal, rec.Header().Get("Location"))
		}
	})

	t.Run("admin reaches both boards", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/admin-board", "", adminCookies...)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "admin board")

		rec = f.do(http.MethodGet, "/client-board", "", adminCookies...)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("role cookie alone is not trusted", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/admin-board", "", &http.Cookie{Name: "role", Value: "admin"})
		require.Equal(t, http.StatusSeeOther, rec.Code)
	})

	t.Run("unknown session token is anonymous", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/client-board", "", &http.Cookie{Name: "session_id", Value: "forged"})
		require.Equal(t, http.StatusSeeOther, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	f := setupServerFixture(t, "")

	t.Run("admin secret", func(t *testing.T) {
		rec := f.do(http.MethodPost, server.RouteAPILogin, `{"secret":"admin-pass"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		env := decodeEnvelope(t, rec)
		require.True(t, env.OK)
		require.Equal(t, "admin", env.Role)
		require.Equal(t, server.RouteAdminBoard, env.Redirect)

		cookies := rec.Result().Cookies()
		session := findCookie(cookies, "session_id")
		require.NotNil(t, session)
		require.True(t, session.HttpOnly)
		require.NotEmpty(t, session.Value)
		require.Equal(t, 6*60*60, session.MaxAge)

		role := findCookie(cookies, "role")
		require.NotNil(t, role)
		require.False(t, role.HttpOnly)
		require.Equal(t, "admin", role.Value)
	})

	t.Run("client secret as a form post", func(t *testing.T) {
		form := url.Values{"secret": {testClientSecret}}
		req := httptest.NewRequest(http.MethodPost, server.RouteAPILogin, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		f.server.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		require.Equal(t, "client", env.Role)
		require.Equal(t, server.RouteClientBoard, env.Redirect)
	})

	t.Run("wrong secret", func(t *testing.T) {
		before := f.sessionRepo.Len()
		rec := f.do(http.MethodPost, server.RouteAPILogin, `{"secret":"guess"}`)
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		env := decodeEnvelope(t, rec)
		require.False(t, env.OK)
		require.NotEmpty(t, env.Error)
		require.Nil(t, findCookie(rec.Result().Cookies(), "session_id"))
		require.Equal(t, before, f.sessionRepo.Len())
	})

	t.Run("malformed form body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, server.RouteAPILogin, strings.NewReader("secret=%zz"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		f.server.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		require.False(t, env.OK)
		require.Equal(t, "invalid form body", env.Error)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := f.do(http.MethodPost, server.RouteAPILogin, `{"secret":`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.False(t, decodeEnvelope(t, rec).OK)
	})

	t.Run("login rotates the previous session", func(t *testing.T) {
		first := f.login(testClientSecret)
		rec := f.do(http.MethodPost, server.RouteAPILogin, `{"secret":"admin-pass"}`, first...)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = f.do(http.MethodGet, server.RouteAPIOrders, "", first...)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestLogout(t *testing.T) {
	f := setupServerFixture(t, "")
	cookies := f.login(testAdminSecret)

	rec := f.do(http.MethodGet, server.RouteAPILogout, "", cookies...)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, server.RoutePortal, rec.Header().Get("Location"))

	for _, name := range []string{"session_id", "role"} {
		cleared := findCookie(rec.Result().Cookies(), name)
		require.NotNil(t, cleared, name)
		require.Less(t, cleared.MaxAge, 0, name)
	}

	// The old cookie no longer grants anything
	rec = f.do(http.MethodGet, server.RouteAPIOrders, "", cookies...)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Logging out without a session still succeeds
	rec = f.do(http.MethodGet, server.RouteAPILogout, "")
	require.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestOrdersAPI_Authorization(t *testing.T) {
	f := setupServerFixture(t, "")
	clientCookies := f.login(testClientSecret)

	t.Run("anonymous list", func(t *testing.T) {
		rec := f.do(http.MethodGet, server.RouteAPIOrders, "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t, `{"ok":false,"error":"unauthorized"}`, rec.Body.String())
	})

	t.Run("client can read", func(t *testing.T) {
		rec := f.do(http.MethodGet, server.RouteAPIOrders, "", clientCookies...)
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"ok":true,"orders":[]}`, rec.Body.String())
	})

	t.Run("client cannot write", func(t *testing.T) {
		rec := f.do(http.MethodPost, server.RouteAPIOrders, `{"client":"A","title":"B"}`, clientCookies...)
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		rec = f.do(http.MethodPatch, "/api/orders/order-1", `{"status":"Done"}`, clientCookies...)
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		rec = f.do(http.MethodDelete, "/api/orders/order-1", "", clientCookies...)
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		list, err := f.orders.List()
		require.NoError(t, err)
		require.Empty(t, list)
	})

	t.Run("forged role cookie cannot write", func(t *testing.T) {
		rec := f.do(http.MethodPost, server.RouteAPIOrders, `{"client":"A","title":"B"}`,
			&http.Cookie{Name: "role", Value: "admin"})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestOrdersAPI_AdminCRUD(t *testing.T) {
	f := setupServerFixture(t, "")
	adminCookies := f.login(testAdminSecret)

	rec := f.do(http.MethodPost, server.RouteAPIOrders, `{"client":"  Nugget  ","title":"Badge"}`, adminCookies...)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeEnvelope(t, rec)
	require.True(t, created.OK)
	require.NotEmpty(t, created.ID)
	require.Equal(t, created.ID, created.Order.ID)
	require.Equal(t, "Nugget", created.Order.Client)
	require.Equal(t, orders.DefaultStatus, created.Order.Status)

	t.Run("list includes the new order", func(t *testing.T) {
		rec := f.do(http.MethodGet, server.RouteAPIOrders, "", adminCookies...)
		require.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		require.Len(t, env.Orders, 1)
		require.Equal(t, created.ID, env.Orders[0].ID)
	})

	t.Run("create validates", func(t *testing.T) {
		rec := f.do(http.MethodPost, server.RouteAPIOrders, `{"client":"Nugget","title":"   "}`, adminCookies...)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		require.False(t, env.OK)
		require.Equal(t, "title is required", env.Error)
	})

	t.Run("create rejects malformed json", func(t *testing.T) {
		rec := f.do(http.MethodPost, server.RouteAPIOrders, `{"client":`, adminCookies...)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("patch status", func(t *testing.T) {
		rec := f.do(http.MethodPatch, "/api/orders/"+created.ID, `{"status":"Painting"}`, adminCookies...)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		env := decodeEnvelope(t, rec)
		require.Equal(t, "Painting", env.Order.Status)
		require.Equal(t, "Badge", env.Order.Title)
		require.False(t, env.Order.UpdatedAt.Before(created.Order.UpdatedAt))
	})

	t.Run("patch unknown order", func(t *testing.T) {
		rec := f.do(http.MethodPatch, "/api/orders/order-missing", `{"status":"Done"}`, adminCookies...)
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, "order not found", decodeEnvelope(t, rec).Error)
	})

	t.Run("delete", func(t *testing.T) {
		rec := f.do(http.MethodDelete, "/api/orders/"+created.ID, "", adminCookies...)
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"ok":true}`, rec.Body.String())

		rec = f.do(http.MethodDelete, "/api/orders/"+created.ID, "", adminCookies...)
		require.Equal(t, http.StatusNotFound, rec.Code)

		list, err := f.orders.List()
		require.NoError(t, err)
		require.Empty(t, list)
	})
}

func TestOrdersAPI_BodyLimit(t *testing.T) {
	f := setupServerFixture(t, "")
	adminCookies := f.login(testAdminSecret)

	t.Run("json body", func(t *testing.T) {
		huge := `{"client":"A","title":"` + strings.Repeat("x", 2<<20) + `"}`
		rec := f.do(http.MethodPost, server.RouteAPIOrders, huge, adminCookies...)
		require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		require.Equal(t, "request body too large", decodeEnvelope(t, rec).Error)

		list, err := f.orders.List()
		require.NoError(t, err)
		require.Empty(t, list)
	})

	t.Run("form body", func(t *testing.T) {
		body := "secret=" + strings.Repeat("x", 2<<20)
		req := httptest.NewRequest(http.MethodPost, server.RouteAPILogin, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		f.server.ServeHTTP(rec, req)

		require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}

func TestOrdersAPI_LogsCallerRole(t *testing.T) {
	var buf bytes.Buffer
	previous := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = previous })

	f := setupServerFixture(t, "")
	adminCookies := f.login(testAdminSecret)

	rec := f.do(http.MethodPost, server.RouteAPIOrders, `{"client":"Nugget","title":"Badge"}`, adminCookies...)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decodeEnvelope(t, rec).ID

	rec = f.do(http.MethodDelete, "/api/orders/"+id, "", adminCookies...)
	require.Equal(t, http.StatusOK, rec.Code)

	var changes []map[string]string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		if msg, _ := entry["message"].(string); strings.HasPrefix(msg, "Order ") {
			changes = append(changes, map[string]string{
				"message": msg,
				"role":    entry["role"].(string),
				"order":   entry["order"].(string),
			})
		}
	}

	require.Equal(t, []map[string]string{
		{"message": "Order created", "role": "admin", "order": id},
		{"message": "Order deleted", "role": "admin", "order": id},
	}, changes)
}

func TestCors(t *testing.T) {
	f := setupServerFixture(t, "")

	t.Run("preflight from an allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, server.RouteAPIOrders, nil)
		req.Header.Set("Origin", testOrigin)
		rec := httptest.NewRecorder()
		f.server.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, testOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		require.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("unknown origin gets no cors headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, server.RouteAPIGallery, nil)
		req.Header.Set("Origin", "https://elsewhere.example")
		rec := httptest.NewRecorder()
		f.server.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestContact(t *testing.T) {
	var (
		calls       atomic.Int32
		status      atomic.Int32
		mu          sync.Mutex
		lastPayload contact.Payload
	)
	status.Store(http.StatusNoContent)
	webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		mu.Lock()
		_ = json.NewDecoder(r.Body).Decode(&lastPayload)
		mu.Unlock()

		code := int(status.Load())
		w.WriteHeader(code)
		if code >= 300 {
			_, _ = w.Write([]byte(strings.Repeat("e", 500)))
		}
	}))
	defer webhook.Close()

	f := setupServerFixture(t, webhook.URL)
	valid := `{"discordUsername":"nugget","discordId":"123","message":"Please make a badge"}`

	t.Run("forwards a valid submission", func(t *testing.T) {
		rec := f.do(http.MethodPost, server.RouteAPIContact, valid)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		require.JSONEq(t, `{"ok":true}`, rec.Body.String())
		require.Equal(t, int32(1), calls.Load())

		mu.Lock()
		defer mu.Unlock()
		require.Len(t, lastPayload.Embeds, 1)
		require.Equal(t, "nugget", lastPayload.Embeds[0].Fields[0].Value)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		before := calls.Load()
		rec := f.do(http.MethodPost, server.RouteAPIContact, `{"discordUsername":"nugget","discordId":"123"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "Discord Username, Discord ID, and message are required", decodeEnvelope(t, rec).Error)
		require.Equal(t, before, calls.Load())
	})

	t.Run("reports upstream failure", func(t *testing.T) {
		status.Store(http.StatusInternalServerError)
		defer status.Store(http.StatusNoContent)

		rec := f.do(http.MethodPost, server.RouteAPIContact, valid)
		require.Equal(t, http.StatusBadGateway, rec.Code)
		env := decodeEnvelope(t, rec)
		require.False(t, env.OK)
		require.Equal(t, "Discord webhook failed", env.Error)
		require.Len(t, env.Details, 300)
	})
}

func TestContact_NotConfigured(t *testing.T) {
	f := setupServerFixture(t, "")

	rec := f.do(http.MethodPost, server.RouteAPIContact, `{"discordUsername":"n","discordId":"1","message":"hi"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "DISCORD_WEBHOOK_URL not set", decodeEnvelope(t, rec).Error)
}

func TestGallery(t *testing.T) {
	f := setupServerFixture(t, "")

	rec := f.do(http.MethodGet, server.RouteAPIGallery, "")
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	require.True(t, env.OK)
	require.Len(t, env.Items, 2)
	require.Equal(t, "work-2.png", env.Items[0].File)
	require.Equal(t, "/images/work/work-2.png", env.Items[0].URL)
	require.Equal(t, "work-10", env.Items[1].ID)
}
