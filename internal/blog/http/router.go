package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/blog/internal/blog/service"
	"github.com/aussiebroadwan/blog/internal/blog/store"
	"github.com/aussiebroadwan/blog/pkg/httpx"
	"github.com/aussiebroadwan/blog/pkg/slogx"

	_ "github.com/aussiebroadwan/blog/api/blog" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	SessionService  *service.SessionService
	OAuthBridge     *service.OAuthBridge
	UserService     *service.UserService
	PostService     *service.PostService
	CategoryService *service.CategoryService

	// CookieSecure sets the Secure flag on the refresh cookie.
	CookieSecure bool
	// ExposeResetToken echoes reset tokens in the reset-request response.
	ExposeResetToken bool
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		CookieSecure: true,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerPosts()
	r.registerCategories()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Blog API
//	@version		0.1.0
//	@description	Blog backend with posts, categories and account management.
//	@description
//	@description				Access tokens are HS256 JWTs sent as "Authorization: Bearer {token}". Refresh tokens
//	@description				only travel in the HTTP-only refresh_token cookie.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/blog
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// authenticated requires a valid, unrevoked bearer token.
func (r *Router) authenticated(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h, httpx.AuthnMiddleware(r.SessionService))
}

// adminOnly additionally requires the caller to be an admin.
func (r *Router) adminOnly(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h, httpx.AuthnMiddleware(r.SessionService), httpx.RequireAdmin())
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		Sessions:         r.SessionService,
		OAuth:            r.OAuthBridge,
		Users:            r.UserService,
		CookieSecure:     r.CookieSecure,
		ExposeResetToken: r.ExposeResetToken,
	}

	r.Mux.HandleFunc("POST /api/auth/register", h.HandleRegister)
	r.Mux.HandleFunc("POST /api/auth/login", h.HandleLogin)
	r.Mux.HandleFunc("POST /api/auth/refresh", h.HandleRefresh)
	r.Mux.HandleFunc("POST /api/auth/logout", h.HandleLogout)
	r.Mux.HandleFunc("GET /api/auth/me", h.HandleMe)
	r.Mux.HandleFunc("POST /api/auth/password-reset", h.HandlePasswordReset)
	r.Mux.HandleFunc("POST /api/auth/reset-password", h.HandleResetPassword)
	r.Mux.HandleFunc("GET /api/auth/google/auth-url", h.HandleGoogleAuthURL)
	r.Mux.HandleFunc("POST /api/auth/google/login", h.HandleGoogleLogin)

	// SetAdmin re-checks the actor against the store
	r.Mux.Handle("PUT /api/auth/users/{id}/admin", r.authenticated(h.HandleSetAdmin))
}

func (r *Router) registerPosts() {
	h := &PostsHandler{Posts: r.PostService}

	r.Mux.HandleFunc("GET /api/posts", h.HandleList)
	r.Mux.HandleFunc("GET /api/posts/{id}", h.HandleGet)
	r.Mux.Handle("POST /api/posts", r.adminOnly(h.HandleCreate))
	r.Mux.Handle("PUT /api/posts/{id}", r.adminOnly(h.HandleUpdate))
	r.Mux.Handle("DELETE /api/posts/{id}", r.adminOnly(h.HandleDelete))
}

func (r *Router) registerCategories() {
	h := &CategoriesHandler{Categories: r.CategoryService}

	r.Mux.HandleFunc("GET /api/categories", h.HandleList)
	r.Mux.HandleFunc("GET /api/categories/{id}", h.HandleGet)
	r.Mux.Handle("POST /api/categories", r.adminOnly(h.HandleCreate))
	r.Mux.Handle("PUT /api/categories/{id}", r.adminOnly(h.HandleUpdate))
	r.Mux.Handle("DELETE /api/categories/{id}", r.adminOnly(h.HandleDelete))
}

func (r *Router) registerSystem() {
	deps := map[string]Pinger{"database": r.store}
	if r.SessionService != nil && r.SessionService.Revoked != nil {
		deps["revocation"] = r.SessionService.Revoked
	}

	r.Mux.HandleFunc("GET /{$}", RootHandler)
	r.Mux.HandleFunc("GET /api/health", HealthHandler)
	r.Mux.HandleFunc("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.HandleFunc("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, deps))
}
