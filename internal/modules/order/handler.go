package order

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/georgemunganga/storeadmin/internal/httpapi"
)

// Handler exposes order HTTP endpoints under /{storeId}.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router, admin func(http.Handler) http.Handler) {
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.placeOrder)                         // POST   /api/{storeId}/orders (storefront checkout)
		r.Get("/", h.listStoreOrders)                     // GET    /api/{storeId}/orders
		r.Get("/{orderId}", h.getOrder)                   // GET    /api/{storeId}/orders/{orderId}
		r.With(admin).Patch("/{orderId}", h.updateOrder)  // PATCH  /api/{storeId}/orders/{orderId}
		r.With(admin).Delete("/{orderId}", h.deleteOrder) // DELETE /api/{storeId}/orders/{orderId}
	})
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	storeID, ok := httpapi.ParseUUID(w, r, "storeId")
	if !ok {
		return
	}
	var req PlaceOrderRequest
	if !httpapi.DecodeOrReject(w, r, &req) {
		return
	}
	o, err := h.service.PlaceOrder(r.Context(), storeID, req)
	if err != nil {
		httpapi.WriteServiceError(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, o)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	storeID, ok := httpapi.ParseUUID(w, r, "storeId")
	if !ok {
		return
	}
	id, ok := httpapi.ParseUUID(w, r, "orderId")
	if !ok {
		return
	}
	o, err := h.service.GetOrder(r.Context(), storeID, id)
	if err != nil {
		httpapi.WriteServiceError(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, o)
}

func (h *Handler) listStoreOrders(w http.ResponseWriter, r *http.Request) {
	storeID, ok := httpapi.ParseUUID(w, r, "storeId")
	if !ok {
		return
	}
	orders, err := h.service.ListStoreOrders(r.Context(), storeID)
	if err != nil {
		httpapi.WriteServiceError(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, orders)
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	storeID, ok := httpapi.ParseUUID(w, r, "storeId")
	if !ok {
		return
	}
	id, ok := httpapi.ParseUUID(w, r, "orderId")
	if !ok {
		return
	}
	var req UpdateOrderRequest
	if !httpapi.DecodeOrReject(w, r, &req) {
		return
	}
	o, err := h.service.UpdateOrder(r.Context(), storeID, id, req)
	if err != nil {
		httpapi.WriteServiceError(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, o)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	storeID, ok := httpapi.ParseUUID(w, r, "storeId")
	if !ok {
		return
	}
	id, ok := httpapi.ParseUUID(w, r, "orderId")
	if !ok {
		return
	}
	if err := h.service.DeleteOrder(r.Context(), storeID, id); err != nil {
		httpapi.WriteServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
