package handler

import (
	"encoding/json"
	"net/http"

	"storefront-be/internal/checkout"
	"storefront-be/internal/utils"
)

type customerInfo struct {
	Email   string `json:"email" validate:"omitempty,email"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type createPaymentIntentRequest struct {
	// Amount accepts a JSON number or a numeric string.
	Amount       json.Number   `json:"amount" validate:"required"`
	SessionID    string        `json:"sessionId" validate:"required"`
	CustomerInfo *customerInfo `json:"customerInfo"`
}

func (h *Handler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req createPaymentIntentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	params := checkout.CreatePaymentParams{
		Amount:    req.Amount.String(),
		SessionID: req.SessionID,
	}
	if req.CustomerInfo != nil {
		params.Customer = checkout.Customer{
			Email:   req.CustomerInfo.Email,
			Name:    req.CustomerInfo.Name,
			Address: req.CustomerInfo.Address,
		}
	}

	res, err := h.CheckoutSvc.CreatePaymentIntent(r.Context(), params)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, res, http.StatusOK)
}
