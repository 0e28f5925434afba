package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rmarquez/shopcore-backend/api/responses"
	"github.com/rmarquez/shopcore-backend/api/validators"
	checkoutsvc "github.com/rmarquez/shopcore-backend/internal/checkout"
	"github.com/rmarquez/shopcore-backend/internal/store"
	pkgerrors "github.com/rmarquez/shopcore-backend/pkg/errors"
	"github.com/rmarquez/shopcore-backend/pkg/logger"
)

// CartShow returns the current cart contents.
func CartShow(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, st.Cart())
	}
}

type addCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  *int   `json:"quantity" validate:"omitempty,min=1"`
}

// CartAdd resolves the product and adds its snapshot to the cart,
// merging quantities on a repeat add. Quantity defaults to 1. Stock is
// not enforced here; gating the add control on stock is the UI's job.
func CartAdd(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body addCartItemRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, ok := st.Product(body.ProductID)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}

		quantity := 1
		if body.Quantity != nil {
			quantity = *body.Quantity
		}
		st.AddToCart(product, quantity)

		responses.WriteSuccessStatus(w, http.StatusCreated, st.Cart())
	}
}

type updateCartQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// CartUpdateQuantity sets an entry's quantity outright; zero or below
// removes the entry.
func CartUpdateQuantity(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body updateCartQuantityRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		productID := chi.URLParam(r, "productID")
		quantity := *body.Quantity

		found := st.UpdateCartQuantity(productID, quantity)
		if !found && quantity > 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "cart entry not found"))
			return
		}

		responses.WriteSuccess(w, st.Cart())
	}
}

// CartRemove drops one entry.
func CartRemove(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID := chi.URLParam(r, "productID")
		if !st.RemoveFromCart(productID) {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "cart entry not found"))
			return
		}
		responses.WriteSuccess(w, st.Cart())
	}
}

// CartClear empties the cart.
func CartClear(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st.ClearCart()
		responses.WriteSuccess(w, st.Cart())
	}
}

// CartQuote prices the current cart with the fixed 12% tax.
func CartQuote(svc *checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}
		responses.WriteSuccess(w, svc.Quote(r.Context()))
	}
}
