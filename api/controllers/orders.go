package controllers

import (
	"net/http"

	"github.com/rmarquez/shopcore-backend/api/responses"
	"github.com/rmarquez/shopcore-backend/internal/store"
	pkgerrors "github.com/rmarquez/shopcore-backend/pkg/errors"
	"github.com/rmarquez/shopcore-backend/pkg/logger"
)

// MyOrders lists the signed-in user's orders, most recent first.
func MyOrders(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := st.Session()
		if session == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "login required"))
			return
		}

		orders := st.OrdersForUser(session.ID)
		if orders == nil {
			orders = []store.Order{}
		}
		responses.WriteSuccess(w, orders)
	}
}
