package web

import (
	"errors"
	"net/http"

	"github.com/georgemunganga/storeadmin/internal/dashboard"
	"github.com/georgemunganga/storeadmin/internal/httpapi"
	"github.com/georgemunganga/storeadmin/internal/modules/overview"
	"github.com/georgemunganga/storeadmin/internal/validation"
)

type storeModalView struct {
	Open        bool
	Title       string
	Description string
	Name        string
	Errors      validation.Errors
	Busy        bool
	// Closable is false on the setup page, where a store must be created.
	Closable    bool
}

func storeModalFor(m *dashboard.StoreModal, name string, closable bool) storeModalView {
	return storeModalView{
		Open:        m.IsOpen(),
		Title:       m.Title(),
		Description: m.Description(),
		Name:        name,
		Errors:      m.Errors(),
		Busy:        m.Busy(),
		Closable:    closable,
	}
}

type setupPage struct {
	layout
	Modal storeModalView
}

// handleRoot sends the user to their first store, or to the setup page
// when they have none.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpapi.UserID(r.Context())
	stores, err := s.svc.Stores.ListStores(r.Context(), userID)
	if err != nil {
		s.fail(w, r, "list stores", err)
		return
	}
	if len(stores) > 0 {
		redirect(w, r, "/"+stores[0].ID.String())
		return
	}

	modal := dashboard.NewStoreModal(s.client(r), dashboard.Effects{}, s.logger)
	modal.Open()
	l, err := s.layout(r, "Setup", "")
	if err != nil {
		s.fail(w, r, "build layout", err)
		return
	}
	s.logRender(r, s.renderPage(w, setupPage{layout: l, Modal: storeModalFor(modal, "", false)},
		"base.html", "pages/setup.html", "partials/store_modal.html"))
}

func (s *Server) handleCreateStore(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	name := r.PostForm.Get("name")
	rec := &dashboard.Recorder{}
	modal := dashboard.NewStoreModal(s.client(r), rec.Effects(), s.logger)
	modal.Open()

	id, err := modal.Submit(r.Context(), name)
	if err == nil {
		if !isHTMX(r) {
			http.Redirect(w, r, "/"+id, http.StatusSeeOther)
			return
		}
		applyEffects(w, rec)
		w.WriteHeader(http.StatusOK)
		return
	}

	applyEffects(w, rec)
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		rejectForm(w, r)
	}
	s.logRender(r, s.renderPartial(w, "store_modal",
		storeModalFor(modal, name, r.PostForm.Get("closable") == "true"), "partials/store_modal.html"))
}

type overviewPage struct {
	layout
	Overview *overview.Overview
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	st := activeStore(r.Context())
	ov, err := s.svc.Overview.Overview(r.Context(), st.ID)
	if err != nil {
		s.fail(w, r, "load overview", err)
		return
	}
	l, err := s.layout(r, "Dashboard", "")
	if err != nil {
		s.fail(w, r, "build layout", err)
		return
	}
	s.logRender(r, s.renderPage(w, overviewPage{layout: l, Overview: ov}, "base.html", "pages/overview.html"))
}

type settingsView struct {
	Heading     string
	Description string
	Name        string
	Errors      validation.Errors
	PostURL     string
	DeleteURL   string
}

type settingsPage struct {
	layout
	Settings  settingsView
	APIRoutes []dashboard.APIRoute
}

func (s *Server) settingsView(f *dashboard.SettingsForm, storeID, name string) settingsView {
	base := "/" + storeID + "/settings"
	return settingsView{
		Heading:     f.Title(),
		Description: f.Description(),
		Name:        name,
		Errors:      f.Errors(),
		PostURL:     base,
		DeleteURL:   base + "/delete",
	}
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	st := activeStore(r.Context())
	f := dashboard.NewSettingsForm(s.client(r), st.ID.String(), dashboard.Effects{})
	l, err := s.layout(r, "Settings", "settings")
	if err != nil {
		s.fail(w, r, "build layout", err)
		return
	}
	s.logRender(r, s.renderPage(w, settingsPage{
		layout:    l,
		Settings:  s.settingsView(f, st.ID.String(), st.Name),
		APIRoutes: []dashboard.APIRoute{{Title: "NEXT_PUBLIC_API_URL", Variant: dashboard.VariantPublic, Value: s.origin + "/api/" + st.ID.String()}},
	}, "base.html", "pages/settings.html", "partials/settings_form.html", "partials/api_list.html"))
}

func (s *Server) handleRenameStore(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	st := activeStore(r.Context())
	name := r.PostForm.Get("name")
	rec := &dashboard.Recorder{}
	f := dashboard.NewSettingsForm(s.client(r), st.ID.String(), rec.Effects())
	err := f.Submit(r.Context(), name)
	applyEffects(w, rec)
	if errors.As(err, new(validation.Errors)) {
		rejectForm(w, r)
	}
	s.logRender(r, s.renderPartial(w, "settings_form", s.settingsView(f, st.ID.String(), name), "partials/settings_form.html"))
}

func (s *Server) handleOpenDeleteStore(w http.ResponseWriter, r *http.Request) {
	st := activeStore(r.Context())
	f := dashboard.NewSettingsForm(s.client(r), st.ID.String(), dashboard.Effects{})
	if err := f.OpenDelete(); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	f.Modal().Mount()
	s.logRender(r, s.renderPartial(w, "alert_modal",
		modalFor(f.Modal(), "/"+st.ID.String()+"/settings/delete"), "partials/alert_modal.html"))
}

func (s *Server) handleDeleteStore(w http.ResponseWriter, r *http.Request) {
	st := activeStore(r.Context())
	rec := &dashboard.Recorder{}
	f := dashboard.NewSettingsForm(s.client(r), st.ID.String(), rec.Effects())
	_ = f.OpenDelete()
	_ = f.ConfirmDelete(r.Context())
	applyEffects(w, rec)
	s.logRender(r, s.renderPartial(w, "alert_modal", modalFor(f.Modal(), ""), "partials/alert_modal.html"))
}
