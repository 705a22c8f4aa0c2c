// Package server assembles the domain services and the HTTP router that
// exposes them under /api.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/georgemunganga/storeadmin/internal/config"
	"github.com/georgemunganga/storeadmin/internal/db"
	"github.com/georgemunganga/storeadmin/internal/httpapi"
	"github.com/georgemunganga/storeadmin/internal/modules/auth"
	"github.com/georgemunganga/storeadmin/internal/modules/billboard"
	"github.com/georgemunganga/storeadmin/internal/modules/category"
	"github.com/georgemunganga/storeadmin/internal/modules/color"
	"github.com/georgemunganga/storeadmin/internal/modules/order"
	"github.com/georgemunganga/storeadmin/internal/modules/overview"
	"github.com/georgemunganga/storeadmin/internal/modules/product"
	"github.com/georgemunganga/storeadmin/internal/modules/size"
	"github.com/georgemunganga/storeadmin/internal/modules/store"
	"github.com/georgemunganga/storeadmin/internal/modules/upload"
	"github.com/georgemunganga/storeadmin/internal/modules/user"
)

// Services holds every domain service. The web pages read list data from
// the same instances the API serves.
type Services struct {
	Users      user.Service
	Auth       auth.Service
	Stores     store.Service
	Billboards billboard.Service
	Categories category.Service
	Sizes      size.Service
	Colors     color.Service
	Products   product.Service
	Orders     order.Service
	Overview   overview.Service
	Uploader   upload.Uploader
}

// NewServices builds the repositories over d and the services over them.
func NewServices(d *db.DB, cfg *config.Config, uploader upload.Uploader) *Services {
	// ── Identity ─────────────────────────────────────────────
	userRepo := user.NewSQLRepository(d)
	users := user.NewService(userRepo)

	// ── Catalog ──────────────────────────────────────────────
	billboardRepo := billboard.NewSQLRepository(d)
	categoryRepo := category.NewSQLRepository(d)
	sizeRepo := size.NewSQLRepository(d)
	colorRepo := color.NewSQLRepository(d)
	productRepo := product.NewSQLRepository(d)

	return &Services{
		Users:      users,
		Auth:       auth.NewService(users, userRepo, cfg.JWTSecret, cfg.SessionTTL),
		Stores:     store.NewService(store.NewSQLRepository(d)),
		Billboards: billboard.NewService(billboardRepo),
		Categories: category.NewService(categoryRepo, billboardRepo),
		Sizes:      size.NewService(sizeRepo),
		Colors:     color.NewService(colorRepo),
		Products:   product.NewService(productRepo, categoryRepo, sizeRepo, colorRepo),
		Orders:     order.NewService(order.NewSQLRepository(d), productRepo),
		Overview:   overview.NewService(overview.NewSQLRepository(d), nil),
		Uploader:   uploader,
	}
}

// Mounter adds routes outside /api, such as the HTML pages.
type Mounter interface {
	RegisterRoutes(r chi.Router)
}

// NewRouter returns the application handler.
func NewRouter(svc *Services, logger *zap.Logger, mounts ...Mounter) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(httpapi.RequestLogger(logger))
	router.Use(middleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httpapi.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	requireUser := auth.RequireUser(svc.Auth)
	requireOwner := store.RequireOwner(svc.Stores)
	admin := func(next http.Handler) http.Handler { return requireUser(requireOwner(next)) }

	router.Route("/api", func(r chi.Router) {
		auth.NewHandler(svc.Auth).RegisterRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(requireUser)
			user.NewHandler(svc.Users).RegisterRoutes(r)
			store.NewHandler(svc.Stores).RegisterRoutes(r)
			upload.NewHandler(svc.Uploader).RegisterRoutes(r)
		})

		// Store-scoped entities: reads are public, writes need the owner.
		r.Route("/{storeId}", func(r chi.Router) {
			billboard.NewHandler(svc.Billboards).RegisterRoutes(r, admin)
			category.NewHandler(svc.Categories).RegisterRoutes(r, admin)
			size.NewHandler(svc.Sizes).RegisterRoutes(r, admin)
			color.NewHandler(svc.Colors).RegisterRoutes(r, admin)
			product.NewHandler(svc.Products).RegisterRoutes(r, admin)
			order.NewHandler(svc.Orders).RegisterRoutes(r, admin)
			overview.NewHandler(svc.Overview).RegisterRoutes(r, admin)
		})
	})

	for _, m := range mounts {
		m.RegisterRoutes(router)
	}
	return router
}
