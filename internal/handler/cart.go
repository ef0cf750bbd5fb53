package handler

import (
	"net/http"

	"storefront-be/internal/cart"
	"storefront-be/internal/utils"

	"github.com/gorilla/mux"
)

type addToCartRequest struct {
	SessionID string `json:"sessionId" validate:"required"`
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
}

type updateCartRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	lines, err := h.CartSvc.GetCart(r.Context(), mux.Vars(r)["sessionId"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, lines, http.StatusOK)
}

func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req addToCartRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	item, err := h.CartSvc.AddToCart(r.Context(), cart.AddToCartParams{
		SessionID: req.SessionID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var req updateCartRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	vars := mux.Vars(r)
	err := h.CartSvc.UpdateCartQuantity(r.Context(), cart.UpdateCartParams{
		SessionID: vars["sessionId"],
		ProductID: vars["productId"],
		Quantity:  *req.Quantity,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, successResponse{Success: true}, http.StatusOK)
}

func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	err := h.CartSvc.RemoveFromCart(r.Context(), cart.RemoveFromCartParams{
		SessionID: vars["sessionId"],
		ProductID: vars["productId"],
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, successResponse{Success: true}, http.StatusOK)
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.CartSvc.ClearCart(r.Context(), mux.Vars(r)["sessionId"]); err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, successResponse{Success: true}, http.StatusOK)
}
