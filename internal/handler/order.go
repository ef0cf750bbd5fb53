package handler

import (
	"net/http"

	"storefront-be/internal/order"
	"storefront-be/internal/utils"

	"github.com/gorilla/mux"
)

func (h *Handler) ListUserOrders(w http.ResponseWriter, r *http.Request) {
	u, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	orders, err := h.OrderSvc.GetUserOrders(r.Context(), u.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, orders, http.StatusOK)
}

// GetOrder returns an order with its items to the user who placed it.
// Orders of other customers are reported as missing.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	u, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	detail, err := h.OrderSvc.GetOrderDetail(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	if utils.PtrString(detail.CustomerEmail) != u.Email {
		writeError(w, r, order.ErrOrderNotFound)
		return
	}

	utils.WriteJSON(w, detail, http.StatusOK)
}
