package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rmarquez/shopcore-backend/api/responses"
	"github.com/rmarquez/shopcore-backend/api/validators"
	"github.com/rmarquez/shopcore-backend/internal/store"
	"github.com/rmarquez/shopcore-backend/pkg/enums"
	pkgerrors "github.com/rmarquez/shopcore-backend/pkg/errors"
	"github.com/rmarquez/shopcore-backend/pkg/logger"
)

// AdminListOrders lists every order, most recent first.
func AdminListOrders(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, st.Orders())
	}
}

type orderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AdminUpdateOrderStatus overwrites an order's status. Transitions are
// unrestricted; only the value itself is checked against the enum.
func AdminUpdateOrderStatus(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body orderStatusRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status, err := enums.ParseOrderStatus(body.Status)
		if err != nil {
			typed := pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order status").
				WithDetails(map[string]string{"status": "must be one of pending, processing, shipped, delivered, cancelled"})
			responses.WriteError(r.Context(), logg, w, typed)
			return
		}

		id := chi.URLParam(r, "orderID")
		if !st.UpdateOrderStatus(id, status) {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "order not found"))
			return
		}

		order, _ := st.Order(id)
		responses.WriteSuccess(w, order)
	}
}
