package handler

import (
	"net/http"

	"storefront-be/internal/utils"

	"github.com/gorilla/mux"
)

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.ProductSvc.GetProducts(r.Context()), http.StatusOK)
}

func (h *Handler) ListFeaturedProducts(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.ProductSvc.GetFeaturedProducts(r.Context()), http.StatusOK)
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.ProductSvc.GetProductByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, p, http.StatusOK)
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.CategorySvc.GetCategories(r.Context()), http.StatusOK)
}

func (h *Handler) ListCategoryProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.CategorySvc.GetProductsByCategory(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, products, http.StatusOK)
}
