package product

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/georgemunganga/storeadmin/internal/httpapi"
)

// Handler exposes product HTTP endpoints under /{storeId}.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router, admin func(http.Handler) http.Handler) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.listProducts) // ?categoryId=&colorId=&sizeId=&isFeatured=
		r.Get("/{productId}", h.getProduct)
		r.With(admin).Post("/", h.createProduct)
		r.With(admin).Patch("/{productId}", h.updateProduct)
		r.With(admin).Delete("/{productId}", h.deleteProduct)
	})
}

// parseFilter reads the public listing filters. Archived products are never
// listed publicly.
func parseFilter(r *http.Request) (Filter, error) {
	var f Filter
	q := r.URL.Query()
	for key, dst := range map[string]**uuid.UUID{
		"categoryId": &f.CategoryID,
		"colorId":    &f.ColorID,
		"sizeId":     &f.SizeID,
	} {
		if v := q.Get(key); v != "" {
			id, err := uuid.Parse(v)
			if err != nil {
				return f, err
			}
			*dst = &id
		}
	}
	if v := q.Get("isFeatured"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return f, err
		}
		f.IsFeatured = &b
	}
	return f, nil
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	storeID, ok := httpapi.ParseUUID(w, r, "storeId")
	if !ok {
		return
	}
	f, err := parseFilter(r)
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "INVALID_FILTER", err.Error())
		return
	}
	products, err := h.service.ListProducts(r.Context(), storeID, f)
	if err != nil {
		httpapi.WriteServiceError(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, products)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	storeID, ok := httpapi.ParseUUID(w, r, "storeId")
	if !ok {
		return
	}
	id, ok := httpapi.ParseUUID(w, r, "productId")
	if !ok {
		return
	}
	p, err := h.service.GetProduct(r.Context(), storeID, id)
	if err != nil {
		httpapi.WriteServiceError(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	storeID, ok := httpapi.ParseUUID(w, r, "storeId")
	if !ok {
		return
	}
	var req Input
	if !httpapi.DecodeOrReject(w, r, &req) {
		return
	}
	p, err := h.service.CreateProduct(r.Context(), storeID, req)
	if err != nil {
		httpapi.WriteServiceError(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, p)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	storeID, ok := httpapi.ParseUUID(w, r, "storeId")
	if !ok {
		return
	}
	id, ok := httpapi.ParseUUID(w, r, "productId")
	if !ok {
		return
	}
	var req Input
	if !httpapi.DecodeOrReject(w, r, &req) {
		return
	}
	p, err := h.service.UpdateProduct(r.Context(), storeID, id, req)
	if err != nil {
		httpapi.WriteServiceError(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	storeID, ok := httpapi.ParseUUID(w, r, "storeId")
	if !ok {
		return
	}
	id, ok := httpapi.ParseUUID(w, r, "productId")
	if !ok {
		return
	}
	if err := h.service.DeleteProduct(r.Context(), storeID, id); err != nil {
		httpapi.WriteServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
