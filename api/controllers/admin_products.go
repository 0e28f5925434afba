package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/rmarquez/shopcore-backend/api/responses"
	"github.com/rmarquez/shopcore-backend/api/validators"
	"github.com/rmarquez/shopcore-backend/internal/store"
	pkgerrors "github.com/rmarquez/shopcore-backend/pkg/errors"
	"github.com/rmarquez/shopcore-backend/pkg/logger"
)

type productCreateRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image" validate:"omitempty,url"`
	Category    string          `json:"category" validate:"required"`
	Stock       int             `json:"stock" validate:"min=0"`
	KeyFeatures []string        `json:"keyFeatures"`
}

// AdminCreateProduct adds a catalog entry. Field validation lives here;
// the store itself accepts any values.
func AdminCreateProduct(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body productCreateRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if body.Price.IsNegative() {
			err := pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
				WithDetails(map[string]string{"price": "must not be negative"})
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product := st.AddProduct(store.ProductInput{
			Name:        body.Name,
			Description: body.Description,
			Price:       body.Price,
			Image:       body.Image,
			Category:    body.Category,
			Stock:       body.Stock,
			KeyFeatures: body.KeyFeatures,
		})

		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

type productUpdateRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Image       *string          `json:"image" validate:"omitempty,url"`
	Category    *string          `json:"category"`
	Stock       *int             `json:"stock" validate:"omitempty,min=0"`
	KeyFeatures *[]string        `json:"keyFeatures"`
}

// AdminUpdateProduct merges a partial overwrite onto one product.
func AdminUpdateProduct(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body productUpdateRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if body.Price != nil && body.Price.IsNegative() {
			err := pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
				WithDetails(map[string]string{"price": "must not be negative"})
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id := chi.URLParam(r, "productID")
		found := st.UpdateProduct(id, store.ProductPatch{
			Name:        body.Name,
			Description: body.Description,
			Price:       body.Price,
			Image:       body.Image,
			Category:    body.Category,
			Stock:       body.Stock,
			KeyFeatures: body.KeyFeatures,
		})
		if !found {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}

		product, _ := st.Product(id)
		responses.WriteSuccess(w, product)
	}
}

// AdminDeleteProduct removes one product. Historical orders keep their
// snapshots.
func AdminDeleteProduct(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "productID")
		if !st.DeleteProduct(id) {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
