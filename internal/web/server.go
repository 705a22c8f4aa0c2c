// Package web serves the dashboard as server-rendered HTML driven by htmx.
// Pages read from the domain services; every mutation goes through the
// dashboard components and the REST API.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/georgemunganga/storeadmin/internal/dashboard"
	"github.com/georgemunganga/storeadmin/internal/db"
	"github.com/georgemunganga/storeadmin/internal/httpapi"
	"github.com/georgemunganga/storeadmin/internal/modules/auth"
	"github.com/georgemunganga/storeadmin/internal/modules/store"
	"github.com/georgemunganga/storeadmin/internal/server"
)

//go:embed templates
var templateFS embed.FS

type Server struct {
	svc       *server.Services
	api       *dashboard.Client
	origin    string
	templates fs.FS
	funcs     template.FuncMap
	logger    *zap.Logger
}

// New returns the page server. api reaches the REST API; origin is the
// public base URL shown in the API reference panels.
func New(svc *server.Services, api *dashboard.Client, origin string, logger *zap.Logger) *Server {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		panic(err)
	}
	return &Server{
		svc:       svc,
		api:       api,
		origin:    strings.TrimRight(origin, "/"),
		templates: sub,
		logger:    logger,
		funcs: template.FuncMap{
			"usd":  dashboard.FormatUSD,
			"date": dashboard.FormatDate,
			"inc":  func(i int) int { return i + 1 },
			"dec":  func(i int) int { return i - 1 },
		},
	}
}

func (s *Server) RegisterRoutes(r chi.Router) {
	r.Get("/sign-in", s.handleSignInPage)
	r.Post("/sign-in", s.handleSignIn)
	r.Get("/sign-up", s.handleSignUpPage)
	r.Post("/sign-up", s.handleSignUp)
	r.Post("/sign-out", s.handleSignOut)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequirePageUser(s.svc.Auth))
		r.Get("/", s.handleRoot)
		r.Post("/stores", s.handleCreateStore)

		r.Route("/{storeId}", func(r chi.Router) {
			r.Use(s.ownedStore)
			r.Get("/", s.handleOverview)
			r.Get("/settings", s.handleSettings)
			r.Post("/settings", s.handleRenameStore)
			r.Get("/settings/delete", s.handleOpenDeleteStore)
			r.Post("/settings/delete", s.handleDeleteStore)

			r.Get("/{entity}", s.handleList)
			r.Get("/{entity}/{id}", s.handleForm)
			r.Post("/{entity}/{id}", s.handleSubmit)
			r.Get("/{entity}/{id}/delete", s.handleOpenDelete)
			r.Post("/{entity}/{id}/delete", s.handleConfirmDelete)
			r.Post("/{entity}/rows/{rowId}/copy", s.handleCopyRow)
			r.Post("/{entity}/rows/{rowId}/edit", s.handleEditRow)
			r.Get("/{entity}/rows/{rowId}/delete", s.handleOpenDeleteRow)
			r.Post("/{entity}/rows/{rowId}/delete", s.handleDeleteRow)
		})
	})
}

type ctxKey int

const storeKey ctxKey = iota

// ownedStore loads the {storeId} store for its owner and sends everyone
// else back to the root page.
func (s *Server) ownedStore(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _ := httpapi.UserID(r.Context())
		id, err := uuid.Parse(chi.URLParam(r, "storeId"))
		if err != nil {
			http.NotFound(w, r)
			return
		}
		st, err := s.svc.Stores.GetOwnedStore(r.Context(), userID, id)
		switch {
		case errors.Is(err, db.ErrNotFound), errors.Is(err, httpapi.ErrForbidden):
			redirect(w, r, "/")
			return
		case err != nil:
			s.fail(w, r, "load store", err)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), storeKey, st)))
	})
}

func activeStore(ctx context.Context) *store.Store {
	st, _ := ctx.Value(storeKey).(*store.Store)
	return st
}

// client returns the API client authenticated as the request's user.
func (s *Server) client(r *http.Request) *dashboard.Client {
	return s.api.WithToken(auth.Token(r))
}

// layout is the data every dashboard page carries.
type layout struct {
	Title      string
	Store      *store.Store
	Switcher   *dashboard.StoreSwitcher
	// StoreModal is the switcher's "Create Store" dialog.
	StoreModal storeModalView
	Nav        []navItem
}

type navItem struct {
	Label  string
	Href   string
	Active bool
}

func (s *Server) layout(r *http.Request, title, active string) (layout, error) {
	st := activeStore(r.Context())
	userID, _ := httpapi.UserID(r.Context())
	stores, err := s.svc.Stores.ListStores(r.Context(), userID)
	if err != nil {
		return layout{}, err
	}
	items := make([]dashboard.StoreItem, 0, len(stores))
	for _, it := range stores {
		items = append(items, dashboard.StoreItem{Label: it.Name, Value: it.ID.String()})
	}
	l := layout{Title: title, Store: st}
	if st != nil {
		fx := (&dashboard.Recorder{}).Effects()
		modal := dashboard.NewStoreModal(s.client(r), fx, s.logger)
		l.Switcher = dashboard.NewStoreSwitcher(items, st.ID.String(), modal, fx)
		l.StoreModal = storeModalFor(modal, "", true)
		base := "/" + st.ID.String()
		l.Nav = append(l.Nav, navItem{Label: "Overview", Href: base, Active: active == ""})
		for _, e := range dashboard.Entities {
			l.Nav = append(l.Nav, navItem{Label: e.Plural, Href: base + "/" + e.Path, Active: active == e.Path})
		}
		l.Nav = append(l.Nav, navItem{Label: "Settings", Href: base + "/settings", Active: active == "settings"})
	}
	return l, nil
}

// renderPage parses and executes a full-page template set. The store modal
// partial is always included since the navbar embeds it.
func (s *Server) renderPage(w http.ResponseWriter, data any, files ...string) error {
	if !slices.Contains(files, "partials/store_modal.html") {
		files = append(files, "partials/store_modal.html")
	}
	tmpl, err := template.New("").Funcs(s.funcs).ParseFS(s.templates, files...)
	if err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return tmpl.ExecuteTemplate(w, "base", data)
}

// renderPartial executes the template named name from files.
func (s *Server) renderPartial(w http.ResponseWriter, name string, data any, files ...string) error {
	tmpl, err := template.New("").Funcs(s.funcs).ParseFS(s.templates, files...)
	if err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return tmpl.ExecuteTemplate(w, name, data)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	httpapi.Logger(r.Context()).Error(op+" failed", zap.Error(err), zap.String("path", r.URL.Path))
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func (s *Server) logRender(r *http.Request, err error) {
	if err != nil {
		httpapi.Logger(r.Context()).Error("render failed", zap.Error(err), zap.String("path", r.URL.Path))
	}
}

// rejectForm marks a re-rendered form as rejected. htmx only swaps 2xx
// responses, so its requests keep the 200.
func rejectForm(w http.ResponseWriter, r *http.Request) {
	if isHTMX(r) {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusUnprocessableEntity)
}

func isHTMX(r *http.Request) bool { return r.Header.Get("HX-Request") == "true" }

// redirect sends the browser to path, through htmx when the request came
// from it.
func redirect(w http.ResponseWriter, r *http.Request, path string) {
	if isHTMX(r) {
		w.Header().Set("HX-Redirect", path)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}
