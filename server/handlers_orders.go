package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nuggetscustoms/site/orders"
	"github.com/rs/zerolog/log"
)

// logOrderChange records who changed which order. The role comes from the API guard.
func logOrderChange(r *http.Request, action, id string) {
	log.Info().
		Str("role", RoleFromContext(r.Context()).String()).
		Str("order", id).
		Msg("Order " + action)
}

func (s *Server) ListOrdersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := s.orders.List()
		if err != nil {
			writeError(w, r, err)
			return
		}
		if list == nil {
			list = []orders.Order{}
		}
		writeJSON(w, http.StatusOK, ordersResponse{OK: true, Orders: list})
	}
}

func (s *Server) CreateOrderHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req orders.NewOrder
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		order, err := s.orders.Create(req)
		if err != nil {
			writeError(w, r, err)
			return
		}
		logOrderChange(r, "created", order.ID)
		writeJSON(w, http.StatusCreated, orderResponse{OK: true, Order: order, ID: order.ID})
	}
}

func (s *Server) UpdateOrderHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch orders.Patch
		if err := decodeJSON(r, &patch); err != nil {
			writeError(w, r, err)
			return
		}

		order, err := s.orders.Update(chi.URLParam(r, "id"), patch)
		if err != nil {
			writeError(w, r, err)
			return
		}
		logOrderChange(r, "updated", order.ID)
		writeJSON(w, http.StatusOK, orderResponse{OK: true, Order: order})
	}
}

func (s *Server) DeleteOrderHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := s.orders.Delete(id); err != nil {
			writeError(w, r, err)
			return
		}
		logOrderChange(r, "deleted", id)
		writeJSON(w, http.StatusOK, okResponse{OK: true})
	}
}
