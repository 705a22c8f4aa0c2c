package web

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/georgemunganga/storeadmin/internal/dashboard"
	"github.com/georgemunganga/storeadmin/internal/db"
	"github.com/georgemunganga/storeadmin/internal/modules/product"
	"github.com/georgemunganga/storeadmin/internal/validation"
)

// formHandler serves the create/edit page of one entity.
type formHandler interface {
	page(s *Server, w http.ResponseWriter, r *http.Request, storeID uuid.UUID, id string)
	submit(s *Server, w http.ResponseWriter, r *http.Request, storeID uuid.UUID, id string)
	openDelete(s *Server, w http.ResponseWriter, r *http.Request, storeID uuid.UUID, id string)
	confirmDelete(s *Server, w http.ResponseWriter, r *http.Request, storeID uuid.UUID, id string)
}

type formView struct {
	Heading     string
	Description string
	Action      string
	IsEdit      bool
	PostURL     string
	DeleteURL   string
	Fields      []Field
	Busy        bool
}

type formPage struct {
	layout
	Form formView
}

func (b binding[T]) newForm(s *Server, r *http.Request, storeID uuid.UUID, id string, initial T, fx dashboard.Effects) *dashboard.Form[T] {
	return dashboard.NewForm(s.client(r), b.entity, storeID.String(), id, initial, fx)
}

func (b binding[T]) view(ctx context.Context, s *Server, storeID uuid.UUID, id string, f *dashboard.Form[T], errs validation.Errors) (formView, error) {
	fields, err := b.fields(ctx, s.svc, storeID, f.Values())
	if err != nil {
		return formView{}, err
	}
	if id == "" {
		id = "new"
	}
	return formView{
		Heading:     f.Title(),
		Description: f.Description(),
		Action:      f.Action(),
		IsEdit:      f.IsEdit(),
		PostURL:     b.entity.ItemRoute(storeID.String(), id),
		DeleteURL:   b.entity.ItemRoute(storeID.String(), id) + "/delete",
		Fields:      withErrors(fields, errs),
		Busy:        f.Busy(),
	}, nil
}

func (b binding[T]) page(s *Server, w http.ResponseWriter, r *http.Request, storeID uuid.UUID, id string) {
	var initial T
	if id != "new" {
		entityID, err := uuid.Parse(id)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		initial, err = b.load(r.Context(), s.svc, storeID, entityID)
		if errors.Is(err, db.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		if err != nil {
			s.fail(w, r, "load "+strings.ToLower(b.entity.Singular), err)
			return
		}
	}

	f := b.newForm(s, r, storeID, id, initial, dashboard.Effects{})
	fv, err := b.view(r.Context(), s, storeID, id, f, nil)
	if err != nil {
		s.fail(w, r, "build form", err)
		return
	}
	l, err := s.layout(r, fv.Heading, b.entity.Path)
	if err != nil {
		s.fail(w, r, "build layout", err)
		return
	}
	s.logRender(r, s.renderPage(w, formPage{layout: l, Form: fv},
		"base.html", "pages/form.html", "partials/entity_form.html"))
}

func (b binding[T]) submit(s *Server, w http.ResponseWriter, r *http.Request, storeID uuid.UUID, id string) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	var in T
	decodeErr := decodeForm(&in, r.PostForm)
	if b.clean != nil {
		b.clean(&in)
	}

	rec := &dashboard.Recorder{}
	f := b.newForm(s, r, storeID, id, in, rec.Effects())

	var errs validation.Errors
	if decodeErr != nil {
		if !errors.As(decodeErr, &errs) {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
	} else if err := f.Submit(r.Context(), in); err != nil {
		errors.As(err, &errs)
	} else {
		applyEffects(w, rec)
		w.WriteHeader(http.StatusOK)
		return
	}

	applyEffects(w, rec)
	fv, err := b.view(r.Context(), s, storeID, id, f, errs)
	if err != nil {
		s.fail(w, r, "build form", err)
		return
	}
	if len(errs) > 0 {
		rejectForm(w, r)
	}
	s.logRender(r, s.renderPartial(w, "entity_form", fv, "partials/entity_form.html"))
}

type modalView struct {
	Visible     bool
	Title       string
	Description string
	ConfirmURL  string
	Busy        bool
}

func modalFor(m *dashboard.AlertModal, confirmURL string) modalView {
	return modalView{
		Visible:     m.Visible(),
		Title:       m.Title(),
		Description: m.Description(),
		ConfirmURL:  confirmURL,
		Busy:        m.Loading(),
	}
}

func (b binding[T]) openDelete(s *Server, w http.ResponseWriter, r *http.Request, storeID uuid.UUID, id string) {
	var zero T
	f := b.newForm(s, r, storeID, id, zero, dashboard.Effects{})
	if err := f.OpenDelete(); err != nil {
		http.NotFound(w, r)
		return
	}
	f.Modal().Mount()
	s.logRender(r, s.renderPartial(w, "alert_modal",
		modalFor(f.Modal(), b.entity.ItemRoute(storeID.String(), id)+"/delete"), "partials/alert_modal.html"))
}

func (b binding[T]) confirmDelete(s *Server, w http.ResponseWriter, r *http.Request, storeID uuid.UUID, id string) {
	var zero T
	rec := &dashboard.Recorder{}
	f := b.newForm(s, r, storeID, id, zero, rec.Effects())
	if err := f.OpenDelete(); err != nil {
		http.NotFound(w, r)
		return
	}
	_ = f.ConfirmDelete(r.Context())
	applyEffects(w, rec)
	s.logRender(r, s.renderPartial(w, "alert_modal", modalFor(f.Modal(), ""), "partials/alert_modal.html"))
}

func formFor(w http.ResponseWriter, r *http.Request) (formHandler, bool) {
	h, ok := bindings[chi.URLParam(r, "entity")]
	if !ok {
		http.NotFound(w, r)
	}
	return h, ok
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	if h, ok := formFor(w, r); ok {
		h.page(s, w, r, activeStore(r.Context()).ID, chi.URLParam(r, "id"))
	}
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if h, ok := formFor(w, r); ok {
		h.submit(s, w, r, activeStore(r.Context()).ID, chi.URLParam(r, "id"))
	}
}

func (s *Server) handleOpenDelete(w http.ResponseWriter, r *http.Request) {
	if h, ok := formFor(w, r); ok {
		h.openDelete(s, w, r, activeStore(r.Context()).ID, chi.URLParam(r, "id"))
	}
}

func (s *Server) handleConfirmDelete(w http.ResponseWriter, r *http.Request) {
	if h, ok := formFor(w, r); ok {
		h.confirmDelete(s, w, r, activeStore(r.Context()).ID, chi.URLParam(r, "id"))
	}
}

// ── lists ────────────────────────────────────────────────────────────────────

type listPage struct {
	layout
	Entity    dashboard.Entity
	Heading   string
	Desc      string
	CanCreate bool
	NewRoute  string
	Table     tableView
	APIRoutes []dashboard.APIRoute
}

type tableView struct {
	URL         string
	Query       string
	SearchKey   string
	Sort        string
	Desc        bool
	Columns     []dashboard.Column
	Rows        []rowView
	Actions     bool
	Page        int
	PageCount   int
	CanPrevious bool
	CanNext     bool
}

type rowView struct {
	ID     string
	Cells  []cellView
	Action string // base URL of the row's actions
}

type cellView struct {
	Key   string
	Value string
}

func (s *Server) rows(ctx context.Context, e dashboard.Entity, storeID uuid.UUID) ([]dashboard.Row, error) {
	var out []dashboard.Row
	switch e.Path {
	case dashboard.Billboards.Path:
		items, err := s.svc.Billboards.ListBillboards(ctx, storeID)
		if err != nil {
			return nil, err
		}
		for _, r := range dashboard.BillboardRows(items) {
			out = append(out, r)
		}
	case dashboard.Categories.Path:
		items, err := s.svc.Categories.ListCategories(ctx, storeID)
		if err != nil {
			return nil, err
		}
		for _, r := range dashboard.CategoryRows(items) {
			out = append(out, r)
		}
	case dashboard.Sizes.Path:
		items, err := s.svc.Sizes.ListSizes(ctx, storeID)
		if err != nil {
			return nil, err
		}
		for _, r := range dashboard.SizeRows(items) {
			out = append(out, r)
		}
	case dashboard.Colors.Path:
		items, err := s.svc.Colors.ListColors(ctx, storeID)
		if err != nil {
			return nil, err
		}
		for _, r := range dashboard.ColorRows(items) {
			out = append(out, r)
		}
	case dashboard.Products.Path:
		items, err := s.svc.Products.ListProducts(ctx, storeID, product.Filter{IncludeArchived: true})
		if err != nil {
			return nil, err
		}
		for _, r := range dashboard.ProductRows(items) {
			out = append(out, r)
		}
	case dashboard.Orders.Path:
		items, err := s.svc.Orders.ListStoreOrders(ctx, storeID)
		if err != nil {
			return nil, err
		}
		for _, r := range dashboard.OrderRows(items) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	e, ok := dashboard.Lookup(chi.URLParam(r, "entity"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	st := activeStore(r.Context())
	rows, err := s.rows(r.Context(), e, st.ID)
	if err != nil {
		s.fail(w, r, "list "+e.Path, err)
		return
	}

	list := dashboard.NewListClient(e, st.ID.String(), rows)
	q := r.URL.Query()
	table := list.Table(q.Get("q"))
	sortKey, desc := q.Get("sort"), q.Get("desc") == "true"
	if sortKey != "" {
		table.SortBy(sortKey, desc)
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		table.SetPage(page)
	}

	tv := tableView{
		URL:         e.ListRoute(st.ID.String()),
		Query:       table.Query(),
		SearchKey:   e.SearchKey,
		Sort:        sortKey,
		Desc:        desc,
		Columns:     dashboard.Columns(e),
		Actions:     !e.ReadOnly,
		Page:        table.PageIndex(),
		PageCount:   table.PageCount(),
		CanPrevious: table.CanPrevious(),
		CanNext:     table.CanNext(),
	}
	for _, row := range table.Rows() {
		rv := rowView{ID: row.RowID(), Action: e.ListRoute(st.ID.String()) + "/rows/" + row.RowID()}
		for _, c := range tv.Columns {
			rv.Cells = append(rv.Cells, cellView{Key: c.Key, Value: row.Field(c.Key)})
		}
		tv.Rows = append(tv.Rows, rv)
	}

	if isHTMX(r) && r.Header.Get("HX-Target") == "data-table" {
		s.logRender(r, s.renderPartial(w, "data_table", tv, "partials/data_table.html"))
		return
	}

	l, err := s.layout(r, e.Plural, e.Path)
	if err != nil {
		s.fail(w, r, "build layout", err)
		return
	}
	s.logRender(r, s.renderPage(w, listPage{
		layout:    l,
		Entity:    e,
		Heading:   list.Heading(),
		Desc:      list.Description(),
		CanCreate: list.CanCreate(),
		NewRoute:  list.NewRoute(),
		Table:     tv,
		APIRoutes: list.APIRoutes(s.origin),
	}, "base.html", "pages/list.html", "partials/data_table.html", "partials/api_list.html"))
}

// ── row actions ──────────────────────────────────────────────────────────────

func (s *Server) cellAction(w http.ResponseWriter, r *http.Request, fx dashboard.Effects) (*dashboard.CellAction, bool) {
	e, ok := dashboard.Lookup(chi.URLParam(r, "entity"))
	if !ok || e.ReadOnly {
		http.NotFound(w, r)
		return nil, false
	}
	st := activeStore(r.Context())
	return dashboard.NewCellAction(s.client(r), e, st.ID.String(), chi.URLParam(r, "rowId"), fx), true
}

func (s *Server) handleCopyRow(w http.ResponseWriter, r *http.Request) {
	rec := &dashboard.Recorder{}
	a, ok := s.cellAction(w, r, rec.Effects())
	if !ok {
		return
	}
	a.Copy()
	applyEffects(w, rec)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleEditRow(w http.ResponseWriter, r *http.Request) {
	rec := &dashboard.Recorder{}
	a, ok := s.cellAction(w, r, rec.Effects())
	if !ok {
		return
	}
	a.Edit()
	applyEffects(w, rec)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleOpenDeleteRow(w http.ResponseWriter, r *http.Request) {
	a, ok := s.cellAction(w, r, dashboard.Effects{})
	if !ok {
		return
	}
	if err := a.OpenDelete(); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	a.Modal().Mount()
	s.logRender(r, s.renderPartial(w, "alert_modal", modalFor(a.Modal(), r.URL.Path), "partials/alert_modal.html"))
}

func (s *Server) handleDeleteRow(w http.ResponseWriter, r *http.Request) {
	rec := &dashboard.Recorder{}
	a, ok := s.cellAction(w, r, rec.Effects())
	if !ok {
		return
	}
	_ = a.OpenDelete()
	_ = a.ConfirmDelete(r.Context())
	applyEffects(w, rec)
	s.logRender(r, s.renderPartial(w, "alert_modal", modalFor(a.Modal(), ""), "partials/alert_modal.html"))
}
