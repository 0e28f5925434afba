package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/rmarquez/shopcore-backend/api/responses"
	"github.com/rmarquez/shopcore-backend/internal/store"
	pkgerrors "github.com/rmarquez/shopcore-backend/pkg/errors"
	"github.com/rmarquez/shopcore-backend/pkg/logger"
)

// ListProducts serves the public catalog. The optional category and q
// parameters mirror the storefront's list filters; matching is a linear
// scan over the snapshot.
func ListProducts(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := strings.TrimSpace(r.URL.Query().Get("category"))
		query := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))

		products := st.Products()
		filtered := make([]store.Product, 0, len(products))
		for _, p := range products {
			if category != "" && !strings.EqualFold(p.Category, category) {
				continue
			}
			if query != "" &&
				!strings.Contains(strings.ToLower(p.Name), query) &&
				!strings.Contains(strings.ToLower(p.Description), query) {
				continue
			}
			filtered = append(filtered, p)
		}

		responses.WriteSuccess(w, filtered)
	}
}

// GetProduct serves one catalog entry.
func GetProduct(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "productID")
		product, ok := st.Product(id)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}
		responses.WriteSuccess(w, product)
	}
}
